package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer writes styled lines to an output and an error stream.
// Colour is detected from the output writer, so buffers and pipes get
// plain text.
type Printer struct {
	out, errOut io.Writer
	theme       Theme

	title, muted, accent, success, fail, usagi lipgloss.Style
	border                                     lipgloss.Style
}

// Options tune colour handling.
type Options struct {
	Theme   Theme
	NoColor bool
}

func NewPrinter(out, errOut io.Writer, opt Options) *Printer {
	r := lipgloss.NewRenderer(out)
	if opt.NoColor || opt.Theme.Plain || os.Getenv("NO_COLOR") != "" {
		r.SetColorProfile(termenv.Ascii)
	}
	t := opt.Theme
	if t.Name == "" {
		t = ThemeByName("classic")
	}
	return &Printer{
		out:     out,
		errOut:  errOut,
		theme:   t,
		title:   r.NewStyle().Bold(true).Foreground(t.Title),
		muted:   r.NewStyle().Foreground(t.Muted),
		accent:  r.NewStyle().Foreground(t.Accent),
		success: r.NewStyle().Foreground(t.Success),
		fail:    r.NewStyle().Foreground(t.Error).Bold(true),
		usagi:   r.NewStyle().Foreground(t.Usagi).Bold(true),
		border: r.NewStyle().
			Border(t.Border).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}

func (p *Printer) Theme() Theme { return p.theme }

// Line prints s unstyled.
func (p *Printer) Line(s string) { fmt.Fprintln(p.out, s) }

// Linef prints a formatted unstyled line.
func (p *Printer) Linef(format string, args ...any) { fmt.Fprintf(p.out, format+"\n", args...) }

// Success prints s in the success colour.
func (p *Printer) Success(s string) { fmt.Fprintln(p.out, p.success.Render(s)) }

// Warn prints a recoverable problem on the regular output.
func (p *Printer) Warn(s string) { fmt.Fprintln(p.out, p.fail.Render(s)) }

// Hint prints s muted.
func (p *Printer) Hint(s string) { fmt.Fprintln(p.out, p.muted.Render(s)) }

// Say prints a line spoken by Usagi, e.g. "Usagi: Anything else? (y/n)".
func (p *Printer) Say(msg string) {
	fmt.Fprintln(p.out, p.usagi.Render("Usagi:")+" "+msg)
}

// OK and Fail are the one-shot command acknowledgments.
func (p *Printer) OK(msg string) { fmt.Fprintln(p.out, p.success.Render(p.theme.SymOK+" "+msg)) }
func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.errOut, p.fail.Render(p.theme.SymFail+" "+msg))
}

func (p *Printer) Title(s string) string  { return p.title.Render(s) }
func (p *Printer) Muted(s string) string  { return p.muted.Render(s) }
func (p *Printer) Accent(s string) string { return p.accent.Render(s) }
