package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/Shivenrastogi59/hackathon-evaluation/internal/tui/styles"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAlertDialog_ShowHide(t *testing.T) {
	d := NewAlertDialog(styles.DefaultTheme())
	assert.False(t, d.IsVisible())
	assert.Empty(t, d.Render())

	d.SetSize(100, 40)
	d.Show("Validation Error", "Please provide your personalized feedback before submitting.", true)
	assert.True(t, d.IsVisible())
	assert.Contains(t, d.Render(), "Validation Error")
	assert.Contains(t, d.Render(), "personalized feedback")

	d.Hide()
	assert.False(t, d.IsVisible())
}

func TestAlertDialog_HandleKey(t *testing.T) {
	d := NewAlertDialog(styles.DefaultTheme())
	d.Show("Note", "message", false)

	// Other keys are swallowed without dismissing.
	assert.False(t, d.HandleKey(keyMsg("x")))
	assert.True(t, d.IsVisible())

	assert.True(t, d.HandleKey(keyMsg("enter")))
	assert.False(t, d.IsVisible())

	d.Show("Note", "message", false)
	assert.True(t, d.HandleKey(keyMsg("esc")))
	assert.False(t, d.IsVisible())
}

func TestStatusBar_Render(t *testing.T) {
	s := NewStatusBar(styles.DefaultTheme())
	s.SetWidth(80)
	s.SetHints("? help • q quit")
	s.SetStatus("Submitting evaluation...", StatusWorking)

	out := s.Render()
	assert.Contains(t, out, "Submitting evaluation...")
	assert.Contains(t, out, "? help")

	s.Clear()
	assert.NotContains(t, s.Render(), "Submitting")
}

func TestHelpOverlay_Toggle(t *testing.T) {
	h := NewHelpOverlay(styles.DefaultTheme())
	h.SetSize(100, 40)
	h.AddSection("Navigation", []Binding{{Keys: "tab", Desc: "next field"}})
	h.AddSection("Actions", []Binding{{Keys: "ctrl+s", Desc: "submit evaluation"}})

	assert.False(t, h.IsVisible())
	h.Toggle()
	assert.True(t, h.IsVisible())

	out := h.Render()
	assert.Contains(t, out, "Navigation")
	assert.Contains(t, out, "next field")
	assert.Contains(t, out, "ctrl+s")

	h.Hide()
	assert.False(t, h.IsVisible())
	assert.Empty(t, h.Render())
}

func TestPanel_Render(t *testing.T) {
	p := NewPanel("Team Details", styles.DefaultTheme())
	p.SetContent("Null Pointers")
	out := p.Render()
	assert.Contains(t, out, "Team Details")
	assert.Contains(t, out, "Null Pointers")
}
