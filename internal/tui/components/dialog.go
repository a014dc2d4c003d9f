package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Shivenrastogi59/hackathon-evaluation/internal/tui/styles"
)

// AlertDialog is a modal message box. While visible it swallows all key
// input except enter and esc, which dismiss it.
type AlertDialog struct {
	title   string
	message string
	isError bool
	visible bool
	width   int
	height  int
	theme   *styles.Theme
}

// NewAlertDialog creates a hidden alert dialog.
func NewAlertDialog(theme *styles.Theme) *AlertDialog {
	return &AlertDialog{theme: theme}
}

// Show makes the dialog visible with the given content.
func (d *AlertDialog) Show(title, message string, isError bool) {
	d.title = title
	d.message = message
	d.isError = isError
	d.visible = true
}

// Hide dismisses the dialog.
func (d *AlertDialog) Hide() {
	d.visible = false
}

// IsVisible reports whether the dialog is on screen.
func (d *AlertDialog) IsVisible() bool {
	return d.visible
}

// SetSize sets the terminal dimensions used to center the dialog.
func (d *AlertDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// HandleKey processes a key press while the dialog is visible. It returns
// true when the key dismissed the dialog; every other key is swallowed.
func (d *AlertDialog) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "enter", "esc":
		d.Hide()
		return true
	}
	return false
}

// Render renders the dialog centered on the screen.
func (d *AlertDialog) Render() string {
	if !d.visible {
		return ""
	}

	titleStyle := d.theme.TitleStyle
	borderColor := d.theme.Primary
	if d.isError {
		titleStyle = lipgloss.NewStyle().Foreground(d.theme.Danger).Bold(true)
		borderColor = d.theme.Danger
	}

	boxWidth := d.width / 2
	if boxWidth < 40 {
		boxWidth = 40
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2).
		Width(boxWidth).
		Render(titleStyle.Render(d.title) + "\n\n" +
			d.message + "\n\n" +
			lipgloss.NewStyle().Foreground(d.theme.Muted).Render("press enter to dismiss"))

	return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, box)
}
