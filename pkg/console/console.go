// Package console prints the user-facing messages of pinit.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=console.go -destination=mocks/console.gen.go -package=mocks

// Console renders styled messages.
type Console interface {
	Title(text string)
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Failure(format string, args ...interface{})
	Hint(format string, args ...interface{})
	// List prints items indented under the previous message.
	List(items []string)
	// Table prints aligned key/value rows.
	Table(rows [][2]string)
}

type styles struct {
	title   lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	hint    lipgloss.Style
	key     lipgloss.Style
	dim     lipgloss.Style
}

type realConsole struct {
	out    io.Writer
	styles styles
}

// NewConsole creates a console writing to stdout.
func NewConsole() Console {
	return NewConsoleWithWriter(os.Stdout)
}

// NewConsoleWithWriter creates a console writing to w. Colors are only used when w is a
// terminal.
func NewConsoleWithWriter(w io.Writer) Console {
	r := lipgloss.NewRenderer(w)
	return &realConsole{
		out: w,
		styles: styles{
			title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
			info:    r.NewStyle().Foreground(lipgloss.Color("231")),
			success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
			warning: r.NewStyle().Foreground(lipgloss.Color("226")),
			failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
			hint:    r.NewStyle().Italic(true).Foreground(lipgloss.Color("45")),
			key:     r.NewStyle().Foreground(lipgloss.Color("45")),
			dim:     r.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

func (c *realConsole) println(style lipgloss.Style, text string) {
	fmt.Fprintln(c.out, style.Render(text))
}

func (c *realConsole) Title(text string) {
	c.println(c.styles.title, text)
}

func (c *realConsole) Info(format string, args ...interface{}) {
	c.println(c.styles.info, fmt.Sprintf(format, args...))
}

func (c *realConsole) Success(format string, args ...interface{}) {
	c.println(c.styles.success, "✓ "+fmt.Sprintf(format, args...))
}

func (c *realConsole) Warning(format string, args ...interface{}) {
	c.println(c.styles.warning, "⚠ "+fmt.Sprintf(format, args...))
}

func (c *realConsole) Failure(format string, args ...interface{}) {
	c.println(c.styles.failure, "✗ "+fmt.Sprintf(format, args...))
}

func (c *realConsole) Hint(format string, args ...interface{}) {
	c.println(c.styles.hint, "  "+fmt.Sprintf(format, args...))
}

func (c *realConsole) List(items []string) {
	for _, item := range items {
		c.println(c.styles.dim, "    "+item)
	}
}

func (c *realConsole) Table(rows [][2]string) {
	width := 0
	for _, row := range rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}
	for _, row := range rows {
		key := c.styles.key.Render(row[0] + ":" + strings.Repeat(" ", width-len(row[0])))
		fmt.Fprintf(c.out, "  %s %s\n", key, row[1])
	}
}
