package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Usagi lipgloss.TerminalColor
	Border                                      lipgloss.Border
	SymOK, SymFail, Bullet                      string
	// Plain disables colour regardless of the terminal.
	Plain bool
}

// ThemeNames lists the accepted --theme values.
var ThemeNames = []string{"classic", "neon", "mono"}

// ThemeByName returns the named theme; unknown names fall back to classic.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:    "neon",
			Title:   lipgloss.Color("13"),
			Muted:   lipgloss.Color("8"),
			Accent:  lipgloss.Color("14"),
			Success: lipgloss.Color("10"),
			Error:   lipgloss.Color("9"),
			Usagi:   lipgloss.Color("11"),
			Border:  lipgloss.RoundedBorder(),
			SymOK:   "✔",
			SymFail: "✖",
			Bullet:  "•",
		}
	case "mono":
		return Theme{
			Name:    "mono",
			Title:   lipgloss.NoColor{},
			Muted:   lipgloss.NoColor{},
			Accent:  lipgloss.NoColor{},
			Success: lipgloss.NoColor{},
			Error:   lipgloss.NoColor{},
			Usagi:   lipgloss.NoColor{},
			Border:  lipgloss.ASCIIBorder(),
			SymOK:   "ok:",
			SymFail: "error:",
			Bullet:  "-",
			Plain:   true,
		}
	default: // classic
		return Theme{
			Name:    "classic",
			Title:   lipgloss.NoColor{},
			Muted:   lipgloss.Color("8"),
			Accent:  lipgloss.Color("12"),
			Success: lipgloss.Color("42"),
			Error:   lipgloss.Color("9"),
			Usagi:   lipgloss.Color("214"),
			Border:  lipgloss.NormalBorder(),
			SymOK:   "✔",
			SymFail: "✖",
			Bullet:  "•",
		}
	}
}
