package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Shivenrastogi59/hackathon-evaluation/internal/tui/styles"
)

// Binding is a single key binding row in the help overlay.
type Binding struct {
	Keys string
	Desc string
}

// HelpOverlay renders a full-screen list of key bindings.
type HelpOverlay struct {
	sections map[string][]Binding
	order    []string
	visible  bool
	width    int
	height   int
	theme    *styles.Theme
}

// NewHelpOverlay creates a hidden help overlay.
func NewHelpOverlay(theme *styles.Theme) *HelpOverlay {
	return &HelpOverlay{
		sections: make(map[string][]Binding),
		theme:    theme,
	}
}

// AddSection registers a named group of bindings. Sections render in
// registration order.
func (h *HelpOverlay) AddSection(name string, bindings []Binding) {
	if _, ok := h.sections[name]; !ok {
		h.order = append(h.order, name)
	}
	h.sections[name] = bindings
}

// Toggle flips visibility.
func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
}

// Hide dismisses the overlay.
func (h *HelpOverlay) Hide() {
	h.visible = false
}

// IsVisible reports whether the overlay is on screen.
func (h *HelpOverlay) IsVisible() bool {
	return h.visible
}

// SetSize sets the terminal dimensions.
func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// Render renders the overlay centered on the screen.
func (h *HelpOverlay) Render() string {
	if !h.visible {
		return ""
	}

	keyStyle := lipgloss.NewStyle().Foreground(h.theme.Primary).Bold(true).Width(14)
	var body strings.Builder
	body.WriteString(h.theme.TitleStyle.Render("Key Bindings"))
	body.WriteString("\n")
	for _, name := range h.order {
		body.WriteString("\n")
		body.WriteString(lipgloss.NewStyle().Foreground(h.theme.Muted).Bold(true).Render(name))
		body.WriteString("\n")
		for _, b := range h.sections[name] {
			body.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(b.Keys), b.Desc))
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(h.theme.Primary).
		Padding(1, 2).
		Render(body.String())

	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, box)
}
