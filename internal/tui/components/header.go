package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Shivenrastogi59/hackathon-evaluation/internal/tui/styles"
)

// Header renders the top bar with the application title and the current
// context (selected team, round).
type Header struct {
	title   string
	context string
	width   int
	theme   *styles.Theme
}

// NewHeader creates a header with the given title.
func NewHeader(title string, theme *styles.Theme) *Header {
	return &Header{
		title: title,
		theme: theme,
	}
}

// SetWidth sets the header width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetContext sets the context string shown on the right side.
func (h *Header) SetContext(context string) {
	h.context = context
}

// Render renders the header bar.
func (h *Header) Render() string {
	left := h.theme.TitleStyle.Render(h.title)
	right := lipgloss.NewStyle().Foreground(h.theme.Muted).Render(h.context)

	gap := h.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	bar := left + lipgloss.NewStyle().Width(gap).Render("") + right
	return lipgloss.NewStyle().
		Width(h.width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(h.theme.Muted).
		Render(bar)
}
