package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int          { return &v }
func strPtr(s string) *string    { return &s }

func TestNewDraft_Defaults(t *testing.T) {
	d := NewDraft()

	for _, f := range RatingFields {
		assert.Equal(t, DefaultRating, d.Rating(f), "field %s should default to %d", f, DefaultRating)
	}
	assert.Empty(t, d.PersonalizedFeedback)
	assert.Empty(t, d.FinalRecommendation)
}

func TestDraft_SetRating_WithinRange(t *testing.T) {
	d := NewDraft()

	ok := d.SetRating(InnovationCreativity, 9)

	require.True(t, ok)
	assert.Equal(t, 9, d.Rating(InnovationCreativity))

	// All other fields keep their prior value.
	for _, f := range RatingFields {
		if f == InnovationCreativity {
			continue
		}
		assert.Equal(t, DefaultRating, d.Rating(f), "field %s must be unchanged", f)
	}
}

func TestDraft_SetRating_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		value int
	}{
		{"below minimum", 0},
		{"negative", -3},
		{"above maximum", 11},
		{"far above maximum", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDraft()
			ok := d.SetRating(UserExperience, tt.value)

			assert.False(t, ok)
			assert.Equal(t, DefaultRating, d.Rating(UserExperience))
		})
	}
}

func TestDraft_SetRating_UnknownField(t *testing.T) {
	d := NewDraft()
	assert.False(t, d.SetRating(RatingField("total_score"), 5))
}

func TestDraft_Validate(t *testing.T) {
	tests := []struct {
		name     string
		feedback string
		wantErr  error
	}{
		{"empty feedback", "", ErrBlankFeedback},
		{"whitespace only", "   \t\n ", ErrBlankFeedback},
		{"non-empty feedback", "Solid demo, unclear data model.", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDraft()
			d.PersonalizedFeedback = tt.feedback

			err := d.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDraft_ApplySaved_AllFields(t *testing.T) {
	d := NewDraft()
	saved := &Saved{
		ProblemSolutionFit:      intPtr(9),
		FunctionalityFeatures:   intPtr(8),
		TechnicalFeasibility:    intPtr(7),
		InnovationCreativity:    intPtr(10),
		UserExperience:          intPtr(6),
		ImpactValue:             intPtr(4),
		PresentationDemoQuality: intPtr(3),
		TeamCollaboration:       intPtr(2),
		FinalRecommendation:     strPtr("shortlist"),
		PersonalizedFeedback:    strPtr("Great pitch."),
	}

	d.ApplySaved(saved)

	assert.Equal(t, 9, d.Rating(ProblemSolutionFit))
	assert.Equal(t, 8, d.Rating(FunctionalityFeatures))
	assert.Equal(t, 7, d.Rating(TechnicalFeasibility))
	assert.Equal(t, 10, d.Rating(InnovationCreativity))
	assert.Equal(t, 6, d.Rating(UserExperience))
	assert.Equal(t, 4, d.Rating(ImpactValue))
	assert.Equal(t, 3, d.Rating(PresentationDemoQuality))
	assert.Equal(t, 2, d.Rating(TeamCollaboration))
	assert.Equal(t, "shortlist", d.FinalRecommendation)
	assert.Equal(t, "Great pitch.", d.PersonalizedFeedback)
}

func TestDraft_ApplySaved_MissingFieldsFallBack(t *testing.T) {
	d := NewDraft()
	d.SetRating(ImpactValue, 2)
	d.PersonalizedFeedback = "will be overwritten"

	// Only one rating present; everything else falls back.
	d.ApplySaved(&Saved{TechnicalFeasibility: intPtr(8)})

	assert.Equal(t, 8, d.Rating(TechnicalFeasibility))
	assert.Equal(t, DefaultRating, d.Rating(ImpactValue))
	assert.Equal(t, DefaultRating, d.Rating(ProblemSolutionFit))
	assert.Empty(t, d.PersonalizedFeedback)
	assert.Empty(t, d.FinalRecommendation)
}

func TestDraft_ApplySaved_OutOfRangeFallsBack(t *testing.T) {
	d := NewDraft()

	d.ApplySaved(&Saved{UserExperience: intPtr(42)})

	assert.Equal(t, DefaultRating, d.Rating(UserExperience))
}

func TestDraft_ApplySaved_Nil(t *testing.T) {
	d := NewDraft()
	d.SetRating(ImpactValue, 7)

	d.ApplySaved(nil)

	assert.Equal(t, 7, d.Rating(ImpactValue))
}

func TestRatingField_Label(t *testing.T) {
	assert.Equal(t, "Problem-Solution Fit", ProblemSolutionFit.Label())
	assert.Equal(t, "Presentation & Demo Quality", PresentationDemoQuality.Label())
	assert.Equal(t, "custom_field", RatingField("custom_field").Label())
}
