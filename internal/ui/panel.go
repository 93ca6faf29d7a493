package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Makepad-fr/usagi/internal/model"
)

// maxTitle is the display width long items are truncated to in panels.
const maxTitle = 80

// ListLines renders items as numbered rows for a panel.
func (p *Printer) ListLines(items []model.Item) []string {
	if len(items) == 0 {
		return []string{p.Muted("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		title := runewidth.Truncate(it, maxTitle, "...")
		out = append(out, fmt.Sprintf("%s %s %s",
			p.Muted(idx), p.Accent(p.theme.Bullet), title))
	}
	return out
}

// Header is the count line shown above a list panel.
func (p *Printer) Header(name string, count int) string {
	return fmt.Sprintf("%s  %s %d", p.Title(name), p.Accent("Total"), count)
}

// Panel draws a framed box around lines.
func (p *Printer) Panel(lines []string) {
	fmt.Fprintln(p.out, p.border.Render(strings.Join(lines, "\n")))
}
