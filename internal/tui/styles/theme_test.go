package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivenrastogi59/hackathon-evaluation/internal/evaluation"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()
	require.NotNil(t, theme)

	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.Success))
	assert.NotEmpty(t, string(theme.Danger))
	assert.True(t, theme.TitleStyle.GetBold())
}

func TestTheme_BandStyle(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, theme.BandFavorable, theme.BandStyle(evaluation.BandFavorable))
	assert.Equal(t, theme.BandCaution, theme.BandStyle(evaluation.BandCaution))
	assert.Equal(t, theme.BandUnfavorable, theme.BandStyle(evaluation.BandUnfavorable))
}
