// Package internal holds functions that the ctest unit tests need to live outside of ctest, so
// that stacktrace trimming can be observed.
package internal

// CallThrough invokes action from a frame that does not belong to the ctest package.
func CallThrough(action func()) {
	action()
}
