package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Shivenrastogi59/hackathon-evaluation/internal/evaluation"
)

// Theme defines the color palette and styles for the TUI.
type Theme struct {
	// Color palette
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color
	Muted   lipgloss.Color
	Info    lipgloss.Color

	// Panel styles
	PanelStyle        lipgloss.Style
	FocusedPanelStyle lipgloss.Style
	TitleStyle        lipgloss.Style

	// Score band styles
	BandFavorable   lipgloss.Style
	BandCaution     lipgloss.Style
	BandUnfavorable lipgloss.Style

	// Submission status styles
	StatusBusy    lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
}

// DefaultTheme returns a theme with default colors and styles.
func DefaultTheme() *Theme {
	theme := &Theme{
		Primary: lipgloss.Color("#7D56F4"),
		Success: lipgloss.Color("#3DDC97"),
		Warning: lipgloss.Color("#F2C14E"),
		Danger:  lipgloss.Color("#E4572E"),
		Muted:   lipgloss.Color("#6C6F85"),
		Info:    lipgloss.Color("#89B4FA"),
	}

	theme.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Muted).
		Padding(0, 1)

	theme.FocusedPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	theme.TitleStyle = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	theme.BandFavorable = lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true)

	theme.BandCaution = lipgloss.NewStyle().
		Foreground(theme.Warning)

	theme.BandUnfavorable = lipgloss.NewStyle().
		Foreground(theme.Danger)

	theme.StatusBusy = lipgloss.NewStyle().
		Foreground(theme.Info).
		Italic(true)

	theme.StatusSuccess = lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true)

	theme.StatusError = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(theme.Danger).
		Bold(true)

	return theme
}

// BandStyle returns the style for a score band.
func (t *Theme) BandStyle(band evaluation.Band) lipgloss.Style {
	switch band {
	case evaluation.BandFavorable:
		return t.BandFavorable
	case evaluation.BandCaution:
		return t.BandCaution
	default:
		return t.BandUnfavorable
	}
}
