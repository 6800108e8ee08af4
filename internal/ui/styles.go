package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Printer renders status messages with a Theme.
type Printer struct {
	Theme Theme
	Out   io.Writer
	// Plain disables styling, e.g. when Out is not a terminal.
	Plain bool
}

// NewPrinter returns a Printer writing to out. Styling is disabled when out
// is not a terminal.
func NewPrinter(theme Theme, out io.Writer) *Printer {
	return &Printer{Theme: theme, Out: out, Plain: !IsTTY(out)}
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Printer) render(style lipgloss.Style, text string) string {
	if p.Plain {
		return text
	}
	return style.Render(text)
}

func (p *Printer) println(text string) {
	fmt.Fprintln(p.Out, text)
}

// Banner returns the minipress banner
func (p *Printer) Banner() string {
	banner := `
 █▀▄▀█ ▀█▀ █▄  █ ▀█▀ █▀▀█ █▀▀█ █▀▀ █▀▀ █▀▀
 █ ▀ █  █  █ █ █  █  █▄▄█ █▄▄▀ █▀▀ ▀▀█ ▀▀█
 ▀   ▀ ▀▀▀ ▀  ▀▀ ▀▀▀ ▀    ▀ ▀▀ ▀▀▀ ▀▀▀ ▀▀▀`
	return p.render(p.Theme.Title, banner)
}

// Header returns a section header
func (p *Printer) Header(text string) string {
	return p.render(p.Theme.Title, "▸ "+text)
}

// Success prints a success message
func (p *Printer) Success(format string, args ...interface{}) {
	p.println(p.render(p.Theme.Success, "✓ "+fmt.Sprintf(format, args...)))
}

// Info prints an info message
func (p *Printer) Info(format string, args ...interface{}) {
	p.println(p.render(p.Theme.Info, "• "+fmt.Sprintf(format, args...)))
}

// Error prints an error message
func (p *Printer) Error(format string, args ...interface{}) {
	p.println(p.render(p.Theme.Error, "✗ "+fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func (p *Printer) Warning(format string, args ...interface{}) {
	p.println(p.render(p.Theme.Warning, "⚠ "+fmt.Sprintf(format, args...)))
}

// KeyValue prints a key-value pair
func (p *Printer) KeyValue(key, value string) {
	fmt.Fprintf(p.Out, "  %s %s\n", p.render(p.Theme.Key, key+":"), p.render(p.Theme.Value, value))
}

// Divider returns a divider line
func (p *Printer) Divider() string {
	return p.render(p.Theme.Muted, "─────────────────────────────────────────")
}

// Stats prints a size summary line
func (p *Printer) Stats(summary string) {
	p.println(p.render(p.Theme.Stats, summary))
}

// PrintHeader prints the standard header
func (p *Printer) PrintHeader(version string) {
	p.println("")
	p.println(p.Divider())
	p.println(p.Banner())
	p.println(p.render(p.Theme.Value, " Version: "+version))
	p.println("")
	p.println(p.Divider())
	p.println("")
}
