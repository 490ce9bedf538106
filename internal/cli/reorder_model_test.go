package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pressKey(t *testing.T, m tea.Model, key string) tea.Model {
	t.Helper()
	var msg tea.Msg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "shift+up":
		msg = tea.KeyMsg{Type: tea.KeyShiftUp}
	case "shift+down":
		msg = tea.KeyMsg{Type: tea.KeyShiftDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next
}

func TestReorderModel_MoveItemDown(t *testing.T) {
	m := tea.Model(newReorderModel("과학A", []string{"A", "B", "C"}))

	m = pressKey(t, m, "shift+down")
	m = pressKey(t, m, "enter")

	result, ok := m.(*reorderModel)
	require.True(t, ok)
	assert.True(t, result.saved)
	assert.Equal(t, []string{"B", "A", "C"}, result.contents)
}

func TestReorderModel_CursorBounds(t *testing.T) {
	m := tea.Model(newReorderModel("과학A", []string{"A", "B"}))

	m = pressKey(t, m, "up")
	m = pressKey(t, m, "down")
	m = pressKey(t, m, "down")
	m = pressKey(t, m, "down")

	result := m.(*reorderModel)
	assert.Equal(t, 1, result.cursor)
}

func TestReorderModel_EscDiscards(t *testing.T) {
	m := tea.Model(newReorderModel("과학A", []string{"A", "B"}))

	m = pressKey(t, m, "shift+down")
	m = pressKey(t, m, "esc")

	result := m.(*reorderModel)
	assert.False(t, result.saved)
}

func TestReorderModel_InputCopyIsIsolated(t *testing.T) {
	original := []string{"A", "B"}
	m := tea.Model(newReorderModel("과학A", original))

	m = pressKey(t, m, "shift+down")

	assert.Equal(t, []string{"A", "B"}, original)
	assert.Equal(t, []string{"B", "A"}, m.(*reorderModel).contents)
}

func TestReorderModel_ViewListsContents(t *testing.T) {
	m := newReorderModel("과학A", []string{"1단원", "2단원"})

	view := m.View()
	assert.Contains(t, view, "1단원")
	assert.Contains(t, view, "2단원")
	assert.Contains(t, view, "과학A")
}
