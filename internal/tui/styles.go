package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/usagi/internal/ui"
)

// styles are derived from the active theme once per program.
type styles struct {
	title, accent, muted, err, selected, help lipgloss.Style
	frame                                     lipgloss.Style
	bullet                                    string
}

func newStyles(t ui.Theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		accent:   lipgloss.NewStyle().Foreground(t.Accent),
		muted:    lipgloss.NewStyle().Foreground(t.Muted),
		err:      lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		help:     lipgloss.NewStyle().Faint(true),
		bullet:   t.Bullet,
		frame: lipgloss.NewStyle().
			Border(t.Border).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}
