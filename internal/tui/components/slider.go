package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Shivenrastogi59/hackathon-evaluation/internal/evaluation"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/tui/styles"
)

// Slider is a bounded integer gauge for one rating criterion. Values are
// clamped to the rating range; the fill is colored by score band.
type Slider struct {
	label   string
	value   int
	focused bool
	width   int
	scale   evaluation.Scale
	theme   *styles.Theme
}

// NewSlider creates a slider at the default rating.
func NewSlider(label string, theme *styles.Theme) *Slider {
	return &Slider{
		label: label,
		value: evaluation.DefaultRating,
		scale: evaluation.RatingScale,
		theme: theme,
	}
}

// Value returns the current rating.
func (s *Slider) Value() int {
	return s.value
}

// SetValue sets the rating. Out-of-range values are ignored and the
// current value is kept.
func (s *Slider) SetValue(value int) bool {
	if value < evaluation.MinRating || value > evaluation.MaxRating {
		return false
	}
	s.value = value
	return true
}

// Increment raises the rating by one, saturating at the maximum.
func (s *Slider) Increment() {
	if s.value < evaluation.MaxRating {
		s.value++
	}
}

// Decrement lowers the rating by one, saturating at the minimum.
func (s *Slider) Decrement() {
	if s.value > evaluation.MinRating {
		s.value--
	}
}

// SetFocused toggles the focus highlight.
func (s *Slider) SetFocused(focused bool) {
	s.focused = focused
}

// Focused reports whether the slider has focus.
func (s *Slider) Focused() bool {
	return s.focused
}

// SetWidth sets the render width.
func (s *Slider) SetWidth(width int) {
	s.width = width
}

// Render renders the label, gauge and numeric value on one line.
func (s *Slider) Render() string {
	labelStyle := lipgloss.NewStyle().Width(26)
	marker := "  "
	if s.focused {
		labelStyle = labelStyle.Foreground(s.theme.Primary).Bold(true)
		marker = lipgloss.NewStyle().Foreground(s.theme.Primary).Render("> ")
	}

	bandStyle := s.theme.BandStyle(s.scale.Classify(float64(s.value)))
	filled := bandStyle.Render(strings.Repeat("█", s.value))
	empty := lipgloss.NewStyle().Foreground(s.theme.Muted).
		Render(strings.Repeat("░", evaluation.MaxRating-s.value))

	return fmt.Sprintf("%s%s %s%s %s",
		marker,
		labelStyle.Render(s.label),
		filled,
		empty,
		bandStyle.Render(fmt.Sprintf("%2d/%d", s.value, evaluation.MaxRating)))
}
