package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/quizdrill/internal/logger"
	"github.com/abhisek/quizdrill/internal/ui/theme"
)

// Prompter is the line-oriented boundary between the trainer and the user.
type Prompter interface {
	// ReadLine prints prompt and blocks for one line of input. It returns
	// false when the input is closed.
	ReadLine(prompt string) (string, bool)

	Println(a ...any)
	Printf(format string, a ...any)

	Heading(s string)
	Correct(s string)
	Incorrect(s string)
	Explanation(s string)
	Hint(s string)

	Styles() theme.Styles
}

// Console reads lines from an io.Reader and writes styled text to an
// io.Writer.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	styles theme.Styles
}

// New creates a Console. color selects the lipgloss palette or plain text.
func New(in io.Reader, out io.Writer, color bool) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		styles: theme.New(color),
	}
}

// ReadLine has no line length limit. A final line without a newline is
// still returned; a read error is logged and treated as closed input.
func (c *Console) ReadLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			logger.Get().Warn("reading input failed", zap.Error(err))
			fmt.Fprintln(c.out)
			return "", false
		}
		if line == "" {
			fmt.Fprintln(c.out)
			return "", false
		}
	}
	return strings.TrimSpace(line), true
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Heading(s string) {
	fmt.Fprintln(c.out, c.styles.Heading.Render(s))
}

func (c *Console) Correct(s string) {
	fmt.Fprintln(c.out, c.styles.Correct.Render(s))
}

func (c *Console) Incorrect(s string) {
	fmt.Fprintln(c.out, c.styles.Incorrect.Render(s))
}

func (c *Console) Explanation(s string) {
	fmt.Fprintln(c.out, c.styles.Explanation.Render(s))
}

func (c *Console) Hint(s string) {
	fmt.Fprintln(c.out, c.styles.Hint.Render(s))
}

func (c *Console) Styles() theme.Styles {
	return c.styles
}
