package evaluation

import (
	"errors"
	"strings"
)

// RatingField identifies one of the eight weighted scoring criteria.
// The string value is the field name used on the wire.
type RatingField string

const (
	ProblemSolutionFit      RatingField = "problem_solution_fit"
	FunctionalityFeatures   RatingField = "functionality_features"
	TechnicalFeasibility    RatingField = "technical_feasibility"
	InnovationCreativity    RatingField = "innovation_creativity"
	UserExperience          RatingField = "user_experience"
	ImpactValue             RatingField = "impact_value"
	PresentationDemoQuality RatingField = "presentation_demo_quality"
	TeamCollaboration       RatingField = "team_collaboration"
)

// RatingFields lists the eight criteria in form display order.
var RatingFields = []RatingField{
	ProblemSolutionFit,
	FunctionalityFeatures,
	TechnicalFeasibility,
	InnovationCreativity,
	UserExperience,
	ImpactValue,
	PresentationDemoQuality,
	TeamCollaboration,
}

// Rating bounds. Every rating is an integer in [MinRating, MaxRating].
const (
	MinRating     = 1
	MaxRating     = 10
	DefaultRating = 5
)

// ErrBlankFeedback is returned by Validate when the personalized feedback
// field is empty or whitespace-only.
var ErrBlankFeedback = errors.New("personalized feedback is required before submitting")

// Label returns the human-readable name of a rating field.
func (f RatingField) Label() string {
	switch f {
	case ProblemSolutionFit:
		return "Problem-Solution Fit"
	case FunctionalityFeatures:
		return "Functionality & Features"
	case TechnicalFeasibility:
		return "Technical Feasibility"
	case InnovationCreativity:
		return "Innovation & Creativity"
	case UserExperience:
		return "User Experience"
	case ImpactValue:
		return "Impact & Value"
	case PresentationDemoQuality:
		return "Presentation & Demo Quality"
	case TeamCollaboration:
		return "Team Collaboration"
	default:
		return string(f)
	}
}

// Draft holds the judge's in-progress evaluation for a single team.
// It is initialized to defaults, optionally overwritten by a previously
// saved evaluation, mutated by form interaction, and finally serialized
// into a Submission.
type Draft struct {
	ratings map[RatingField]int

	// FinalRecommendation is kept in form state but deliberately absent
	// from the Submission wire format; see DESIGN.md.
	FinalRecommendation string

	PersonalizedFeedback string
}

// NewDraft returns a draft with every rating at DefaultRating and both text
// fields empty.
func NewDraft() *Draft {
	ratings := make(map[RatingField]int, len(RatingFields))
	for _, f := range RatingFields {
		ratings[f] = DefaultRating
	}
	return &Draft{ratings: ratings}
}

// Rating returns the current value for a field, or DefaultRating for an
// unknown field.
func (d *Draft) Rating(field RatingField) int {
	if v, ok := d.ratings[field]; ok {
		return v
	}
	return DefaultRating
}

// SetRating stores value for the given field and reports whether the value
// was accepted. Values outside [MinRating, MaxRating] are rejected and leave
// the draft untouched; no other field is ever modified.
func (d *Draft) SetRating(field RatingField, value int) bool {
	if value < MinRating || value > MaxRating {
		return false
	}
	if _, ok := d.ratings[field]; !ok {
		return false
	}
	d.ratings[field] = value
	return true
}

// Validate reports whether the draft may be submitted. Only the feedback
// field can fail: ratings are range-enforced at mutation time.
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.PersonalizedFeedback) == "" {
		return ErrBlankFeedback
	}
	return nil
}

// Saved is a previously stored evaluation as returned by the lookup
// endpoint. Pointer fields distinguish absent values from zero values so
// ApplySaved can fall back per field.
type Saved struct {
	ProblemSolutionFit      *int    `json:"problem_solution_fit"`
	FunctionalityFeatures   *int    `json:"functionality_features"`
	TechnicalFeasibility    *int    `json:"technical_feasibility"`
	InnovationCreativity    *int    `json:"innovation_creativity"`
	UserExperience          *int    `json:"user_experience"`
	ImpactValue             *int    `json:"impact_value"`
	PresentationDemoQuality *int    `json:"presentation_demo_quality"`
	TeamCollaboration       *int    `json:"team_collaboration"`
	FinalRecommendation     *string `json:"final_recommendation"`
	PersonalizedFeedback    *string `json:"personalized_feedback"`
}

// rating returns the saved value for a field, if present.
func (s *Saved) rating(field RatingField) *int {
	switch field {
	case ProblemSolutionFit:
		return s.ProblemSolutionFit
	case FunctionalityFeatures:
		return s.FunctionalityFeatures
	case TechnicalFeasibility:
		return s.TechnicalFeasibility
	case InnovationCreativity:
		return s.InnovationCreativity
	case UserExperience:
		return s.UserExperience
	case ImpactValue:
		return s.ImpactValue
	case PresentationDemoQuality:
		return s.PresentationDemoQuality
	case TeamCollaboration:
		return s.TeamCollaboration
	default:
		return nil
	}
}

// ApplySaved overwrites the draft with a previously saved evaluation,
// falling back to DefaultRating for missing or out-of-range numeric fields
// and to the empty string for missing text fields.
func (d *Draft) ApplySaved(s *Saved) {
	if s == nil {
		return
	}
	for _, f := range RatingFields {
		value := DefaultRating
		if v := s.rating(f); v != nil && *v >= MinRating && *v <= MaxRating {
			value = *v
		}
		d.ratings[f] = value
	}
	d.FinalRecommendation = ""
	if s.FinalRecommendation != nil {
		d.FinalRecommendation = *s.FinalRecommendation
	}
	d.PersonalizedFeedback = ""
	if s.PersonalizedFeedback != nil {
		d.PersonalizedFeedback = *s.PersonalizedFeedback
	}
}
