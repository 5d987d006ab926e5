//go:build unit

package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var notesChoices = []FileChoice{
	{Path: "inputs/acme.md", Name: "acme.md", Detail: "2024-03-02 10:00"},
	{Path: "inputs/globex.md", Name: "globex.md"},
	{Path: "inputs/acme-v2.md", Name: "acme-v2.md"},
}

func press(t *testing.T, m selectModel, msgs ...tea.KeyMsg) (selectModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(selectModel)
		require.True(t, ok, "Update must return a selectModel value")
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelectModel_Navigate(t *testing.T) {
	m, cmd := press(t, initialSelectModel(notesChoices),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	require.NotNil(t, m.selected)
	assert.Equal(t, "inputs/globex.md", m.selected.Path)
	assert.NotNil(t, cmd)
}

func TestSelectModel_Filter(t *testing.T) {
	m, _ := press(t, initialSelectModel(notesChoices), runes("AC"))
	require.Len(t, m.filtered, 2)
	assert.Equal(t, "acme.md", m.filtered[0].Name)
	assert.Contains(t, m.View(), "Filter: AC")

	m, _ = press(t, m, runes("me-"))
	require.Len(t, m.filtered, 1)
	assert.Equal(t, "acme-v2.md", m.filtered[0].Name)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.filter)
	assert.Len(t, m.filtered, 3)
}

func TestSelectModel_FilterWithoutMatch(t *testing.T) {
	m, _ := press(t, initialSelectModel(notesChoices), runes("zzz"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.selected)
	assert.Contains(t, m.View(), "(no match)")
}

func TestSelectModel_Quit(t *testing.T) {
	m, cmd := press(t, initialSelectModel(notesChoices), tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.quitting)
	assert.Nil(t, m.selected)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestFormatFileChoice(t *testing.T) {
	assert.Equal(t, "acme.md  (2024-03-02 10:00)", formatFileChoice(notesChoices[0]))
	assert.Equal(t, "globex.md", formatFileChoice(notesChoices[1]))
}
