package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestReadLine_TrimsAndDetectsEOF(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("  O \n2\n"), &out, false)

	line, ok := c.ReadLine("answer: ")
	assert.True(t, ok)
	assert.Equal(t, "O", line)

	line, ok = c.ReadLine("answer: ")
	assert.True(t, ok)
	assert.Equal(t, "2", line)

	_, ok = c.ReadLine("answer: ")
	assert.False(t, ok)
	assert.Equal(t, 3, strings.Count(out.String(), "answer: "))
}

func TestPlainStylesWriteTextUnchanged(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, false)

	c.Heading("=== Progress ===")
	c.Correct("Correct!")
	c.Explanation("Explanation: because")

	assert.Equal(t, "=== Progress ===\nCorrect!\nExplanation: because\n", out.String())
}

func TestReadLine_LongLine(t *testing.T) {
	long := strings.Repeat("Z", 200*1024)
	c := New(strings.NewReader(long+"\nO\n"), io.Discard, false)

	line, ok := c.ReadLine("")
	assert.True(t, ok)
	assert.Len(t, line, len(long))

	line, ok = c.ReadLine("")
	assert.True(t, ok)
	assert.Equal(t, "O", line)
}

func TestReadLine_LastLineWithoutNewline(t *testing.T) {
	c := New(strings.NewReader("q"), io.Discard, false)

	line, ok := c.ReadLine("")
	assert.True(t, ok)
	assert.Equal(t, "q", line)

	_, ok = c.ReadLine("")
	assert.False(t, ok)
}

func TestReadLine_ReadErrorClosesInput(t *testing.T) {
	c := New(iotest.ErrReader(errors.New("tty gone")), io.Discard, false)

	_, ok := c.ReadLine("")
	assert.False(t, ok)
}
