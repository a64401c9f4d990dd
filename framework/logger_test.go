package framework

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messages(output CapturedOutput) []string {
	ret := make([]string, 0, len(output))
	for _, m := range output {
		ret = append(ret, m.Message)
	}
	return ret
}

func TestCapturingLoggerRecordsMessages(t *testing.T) {
	var l CapturingLogger
	l.Printf("a %d", 1)
	l.Println("b", 2)
	assert.Equal(t, []string{"a 1", "b 2"}, messages(l.Output()))
}

func TestCapturingLoggerChildInheritsAndReceivesOutput(t *testing.T) {
	var parent, child CapturingLogger
	parent.Printf("before")
	parent.AddChildLogger(&child)
	parent.Printf("during")
	parent.RemoveChildLogger(&child)
	parent.Printf("after")

	assert.Equal(t, []string{"before", "after"}, messages(parent.Output()))
	assert.Equal(t, []string{"before", "during"}, messages(child.Output()))
}

func TestCapturedOutputToString(t *testing.T) {
	var l CapturingLogger
	l.Printf("first")
	l.Printf("second")
	lines := strings.Split(l.Output().ToString("DEBUG "), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "DEBUG ["))
	assert.True(t, strings.HasSuffix(lines[0], "] first"))
	assert.True(t, strings.HasSuffix(lines[1], "] second"))

	assert.Equal(t, "", CapturedOutput(nil).ToString("x"))
}

func TestLoggerWithPrefix(t *testing.T) {
	var l CapturingLogger
	p := LoggerWithPrefix(&l, "[x] ")
	p.Printf("hello %s", "there")
	p.Println("bye")
	assert.Equal(t, []string{"[x] hello there", "[x] bye"}, messages(l.Output()))

	assert.NotPanics(t, func() { LoggerWithPrefix(nil, "y").Printf("z") })
}
