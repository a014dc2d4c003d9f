package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shivenrastogi59/hackathon-evaluation/internal/evaluation"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/tui/styles"
)

func TestSlider_Defaults(t *testing.T) {
	s := NewSlider("Innovation", styles.DefaultTheme())
	assert.Equal(t, evaluation.DefaultRating, s.Value())
	assert.False(t, s.Focused())
}

func TestSlider_SetValue(t *testing.T) {
	s := NewSlider("Innovation", styles.DefaultTheme())

	assert.True(t, s.SetValue(8))
	assert.Equal(t, 8, s.Value())

	// Out-of-range values are rejected and the current value kept.
	assert.False(t, s.SetValue(0))
	assert.Equal(t, 8, s.Value())
	assert.False(t, s.SetValue(11))
	assert.Equal(t, 8, s.Value())
}

func TestSlider_IncrementDecrementSaturate(t *testing.T) {
	s := NewSlider("Innovation", styles.DefaultTheme())

	s.SetValue(evaluation.MaxRating)
	s.Increment()
	assert.Equal(t, evaluation.MaxRating, s.Value())

	s.SetValue(evaluation.MinRating)
	s.Decrement()
	assert.Equal(t, evaluation.MinRating, s.Value())

	s.Increment()
	assert.Equal(t, evaluation.MinRating+1, s.Value())
}

func TestSlider_RenderShowsValue(t *testing.T) {
	s := NewSlider("Innovation", styles.DefaultTheme())
	s.SetValue(7)

	out := s.Render()
	assert.Contains(t, out, "Innovation")
	assert.Contains(t, out, "7/10")
}
