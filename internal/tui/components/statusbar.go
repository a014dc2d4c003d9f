package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Shivenrastogi59/hackathon-evaluation/internal/tui/styles"
)

// StatusKind classifies the message shown in the status bar.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusWorking
	StatusOK
	StatusFailed
)

// StatusBar renders the bottom bar with a transient status message and
// the key hints for the current view.
type StatusBar struct {
	message string
	kind    StatusKind
	hints   string
	width   int
	theme   *styles.Theme
}

// NewStatusBar creates an empty status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{theme: theme}
}

// SetWidth sets the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetHints sets the key hint text shown on the right.
func (s *StatusBar) SetHints(hints string) {
	s.hints = hints
}

// SetStatus sets the transient status message.
func (s *StatusBar) SetStatus(message string, kind StatusKind) {
	s.message = message
	s.kind = kind
}

// Clear removes the status message.
func (s *StatusBar) Clear() {
	s.message = ""
	s.kind = StatusInfo
}

// Render renders the status bar.
func (s *StatusBar) Render() string {
	var left string
	switch s.kind {
	case StatusWorking:
		left = s.theme.StatusBusy.Render(s.message)
	case StatusOK:
		left = s.theme.StatusSuccess.Render(s.message)
	case StatusFailed:
		left = s.theme.StatusError.Render(s.message)
	default:
		left = s.message
	}

	right := lipgloss.NewStyle().Foreground(s.theme.Muted).Render(s.hints)

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}
