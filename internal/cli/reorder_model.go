package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sehyunpark/jindo/internal/cli/formatter"
)

// reorderModel is the interactive list for rearranging a subject's summary
// order. Arrow keys move the cursor, shift-arrows carry the selected item
// with the cursor, enter saves and esc discards.
type reorderModel struct {
	subject  string
	contents []string

	cursor int
	saved  bool
}

func newReorderModel(subject string, contents []string) *reorderModel {
	items := make([]string, len(contents))
	copy(items, contents)
	return &reorderModel{subject: subject, contents: items}
}

func (m *reorderModel) keys() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("shift+up", "shift+down"), key.WithHelp("shift+↑/↓", "reorder")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (m *reorderModel) Init() tea.Cmd { return nil }

func (m *reorderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.contents)-1 {
			m.cursor++
		}
	case "shift+up", "K":
		if m.cursor > 0 {
			m.contents[m.cursor-1], m.contents[m.cursor] = m.contents[m.cursor], m.contents[m.cursor-1]
			m.cursor--
		}
	case "shift+down", "J":
		if m.cursor < len(m.contents)-1 {
			m.contents[m.cursor+1], m.contents[m.cursor] = m.contents[m.cursor], m.contents[m.cursor+1]
			m.cursor++
		}
	case "enter":
		m.saved = true
		return m, tea.Quit
	case "esc", "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m *reorderModel) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header(m.subject+" 진도 순서 편집") + "\n\n")

	for i, content := range m.contents {
		cursor := "  "
		line := content
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			line = formatter.Bold(content)
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n", cursor, formatter.Dim(fmt.Sprintf("%2d.", i+1)), line))
	}

	b.WriteString("\n  ")
	parts := make([]string, 0, 4)
	for _, binding := range m.keys() {
		h := binding.Help()
		parts = append(parts, formatter.Dim(h.Key+" "+h.Desc))
	}
	b.WriteString(strings.Join(parts, formatter.Dim("  ·  ")))
	b.WriteString("\n")
	return b.String()
}
