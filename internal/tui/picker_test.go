package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLines = []string{
	"a@b.com\tAda\t",
	"b@c.org\tBob\t",
	"garbage with no tabs",
	"c@d.net\tCyd\t",
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestSelectionDefaultsToCursorLine(t *testing.T) {
	m := NewModel(testLines)
	assert.Equal(t, []string{"a@b.com\tAda\t"}, m.Selection())

	m = update(t, m, key("j"))
	assert.Equal(t, []string{"b@c.org\tBob\t"}, m.Selection())
}

func TestTogglePreservesPickOrder(t *testing.T) {
	m := NewModel(testLines)

	// Pick Bob first, then Ada
	m = update(t, m, key("j"), key(" "))
	m = update(t, m, key("k"), key("k"), key(" "))

	assert.Equal(t, []string{"b@c.org\tBob\t", "a@b.com\tAda\t"}, m.Selection())
}

func TestToggleOffRemovesFromOrder(t *testing.T) {
	m := NewModel(testLines)

	m = update(t, m, key(" "))           // pick Ada, cursor advances to Bob
	m = update(t, m, key(" "))           // pick Bob, cursor advances again
	m = update(t, m, key("k"), key("k")) // back up to Ada
	m = update(t, m, key(" "))           // unpick Ada

	assert.Equal(t, []string{"b@c.org\tBob\t"}, m.Selection())
}

func TestFilterNarrowsRows(t *testing.T) {
	m := NewModel(testLines)

	m = update(t, m, key("/"))
	assert.True(t, m.filterMode)

	m = update(t, m, key("cyd"))
	visible := m.visibleRows()
	require.Len(t, visible, 1)
	assert.Equal(t, "c@d.net\tCyd\t", m.rows[visible[0]].raw)

	// Confirm filter, cursor clamped into the narrowed list
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.filterMode)
	assert.Equal(t, []string{"c@d.net\tCyd\t"}, m.Selection())
}

func TestFilterMatchesEmail(t *testing.T) {
	m := NewModel(testLines)

	m = update(t, m, key("/"), key("b@c"))
	visible := m.visibleRows()
	require.Len(t, visible, 1)
	assert.Equal(t, "b@c.org\tBob\t", m.rows[visible[0]].raw)
}

func TestUnparsedLinesAreStillVisibleUnfiltered(t *testing.T) {
	m := NewModel(testLines)
	assert.Len(t, m.visibleRows(), len(testLines))
}

func TestCancelKeys(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		m := NewModel(testLines)

		var msg tea.Msg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = key(k)
		}

		next, cmd := m.Update(msg)
		m = next.(Model)
		assert.True(t, m.Canceled(), "key %s should cancel", k)
		assert.NotNil(t, cmd)
	}
}

func TestConfirmQuits(t *testing.T) {
	m := NewModel(testLines)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.False(t, m.Canceled())
	assert.NotNil(t, cmd)
}

func TestEmptyListSelection(t *testing.T) {
	m := NewModel(nil)
	assert.Nil(t, m.Selection())
}
