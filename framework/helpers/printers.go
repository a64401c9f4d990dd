package helpers

import (
	"fmt"
	"io"
)

// MustFprintln writes to w and panics on a write error. Console output of the suite is
// best-effort, so a broken stdout is treated as fatal rather than checked at every call site.
func MustFprintln(w io.Writer, a ...any) {
	if _, err := fmt.Fprintln(w, a...); err != nil {
		panic(err)
	}
}

// MustFprintf is the formatted counterpart of MustFprintln.
func MustFprintf(w io.Writer, format string, a ...any) {
	if _, err := fmt.Fprintf(w, format, a...); err != nil {
		panic(err)
	}
}
