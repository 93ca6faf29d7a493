// Package tui is a full-screen browser for a saved shopping list.
//
// Keys: a adds an item, d removes the selected one, q or esc quits.
// Changes are written back to the file on quit.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/Makepad-fr/usagi/internal/model"
	"github.com/Makepad-fr/usagi/internal/store"
	"github.com/Makepad-fr/usagi/internal/ui"
)

// listItem adapts a model.Item to bubbles/list.Item.
type listItem struct {
	Text string
}

func (i listItem) Title() string       { return i.Text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Text }

// itemDelegate renders one numbered row per item.
type itemDelegate struct {
	st styles
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	line := fmt.Sprintf("%s %s %s",
		d.st.muted.Render(fmt.Sprintf("%2d.", index+1)),
		d.st.accent.Render(d.st.bullet),
		trimTitle(it.Text, m.Width()-8))
	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Model is the bubbletea model of the browser.
type Model struct {
	list    list.Model
	st      styles
	name    string
	changed bool

	adding bool
	ti     textinput.Model
	addErr string

	width, height int
}

// New builds a browser over items; name is shown in the header.
func New(items []model.Item, name string, theme ui.Theme) Model {
	st := newStyles(theme)
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{Text: it})
	}

	l := list.New(li, itemDelegate{st: st}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = st.title
	l.Styles.HelpStyle = st.help
	l.Styles.PaginationStyle = st.help
	l.SetStatusBarItemName("item", "items")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, delBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, delBind} }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item..."
	ti.CharLimit = 200

	m := Model{list: l, st: st, name: name, ti: ti, width: 80, height: 24}
	m.refreshTitle()
	return m
}

func (m *Model) refreshTitle() {
	m.list.Title = fmt.Sprintf("%s   %s %d",
		m.st.title.Render(m.name),
		m.st.accent.Render("Total"), len(m.list.Items()))
}

// Items returns the list as currently shown.
func (m Model) Items() []model.Item {
	out := make([]model.Item, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.Text)
		}
	}
	return out
}

// Changed reports whether the list was edited.
func (m Model) Changed() bool { return m.changed }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
	}

	if m.adding {
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				text := model.Normalize(m.ti.Value())
				if text == "" {
					m.addErr = "Item cannot be empty"
					return m, nil
				}
				n := len(m.list.Items())
				cmd := m.list.InsertItem(n, listItem{Text: text})
				m.list.Select(n)
				m.changed = true
				m.stopAdding()
				m.refreshTitle()
				return m, cmd
			case "esc":
				m.stopAdding()
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "d":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				m.list.RemoveItem(i)
				m.changed = true
				m.refreshTitle()
			}
			return m, nil
		case "a":
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			return m, m.ti.Focus()
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) stopAdding() {
	m.adding = false
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m Model) View() string {
	listHeight := m.height - 4
	if m.adding {
		listHeight = m.height - 8
	}
	m.list.SetSize(m.width-4, max(listHeight, 1))

	content := m.list.View()
	if m.adding {
		title := "Add item"
		if m.addErr != "" {
			title += ": " + m.st.err.Render(m.addErr)
		}
		content += "\n" + m.st.frame.Render(title+"\n"+m.ti.View())
	}
	return m.st.frame.Render(content)
}

// Run opens path in the browser and saves it with c on quit when it
// changed. A missing file starts an empty list.
func Run(path string, c store.Codec, p *ui.Printer, log *zap.Logger) error {
	items, err := c.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load: %w", err)
	}

	prog := tea.NewProgram(New(items, filepath.Base(path), p.Theme()), tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return err
	}
	fm, ok := final.(Model)
	if !ok || !fm.Changed() {
		return nil
	}
	out := fm.Items()
	if err := c.Save(path, out); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	log.Debug("browser saved", zap.String("path", path), zap.Int("count", len(out)))
	p.OK(fmt.Sprintf("saved %d items to %s", len(out), path))
	return nil
}

// trimTitle keeps rows on one line in narrow terminals. width is in
// terminal cells.
func trimTitle(s string, width int) string {
	if width <= 3 || runewidth.StringWidth(s) <= width {
		return s
	}
	return strings.TrimSpace(runewidth.Truncate(s, width-3, "")) + "..."
}
