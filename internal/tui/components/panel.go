package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Shivenrastogi59/hackathon-evaluation/internal/tui/styles"
)

// Panel is a bordered container with a title, used to group related
// content in a view.
type Panel struct {
	title   string
	content string
	width   int
	height  int
	focused bool
	theme   *styles.Theme
}

// NewPanel creates a panel with the given title.
func NewPanel(title string, theme *styles.Theme) *Panel {
	return &Panel{
		title: title,
		theme: theme,
	}
}

// SetSize sets the outer dimensions of the panel.
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetContent replaces the panel body.
func (p *Panel) SetContent(content string) {
	p.content = content
}

// SetFocused toggles the focused border style.
func (p *Panel) SetFocused(focused bool) {
	p.focused = focused
}

// Focused reports whether the panel is focused.
func (p *Panel) Focused() bool {
	return p.focused
}

// Render renders the panel with its border and title.
func (p *Panel) Render() string {
	style := p.theme.PanelStyle
	if p.focused {
		style = p.theme.FocusedPanelStyle
	}
	if p.width > 0 {
		style = style.Width(p.width - 2)
	}
	if p.height > 0 {
		style = style.Height(p.height - 2)
	}

	var body strings.Builder
	if p.title != "" {
		body.WriteString(p.theme.TitleStyle.Render(p.title))
		body.WriteString("\n")
	}
	body.WriteString(p.content)

	return style.Render(body.String())
}

// JoinVertical stacks rendered blocks top to bottom.
func JoinVertical(blocks ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
