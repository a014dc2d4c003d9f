package evaluation

import (
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/team"
)

// Fallback literals used when a team record carries no problem statement.
// FallbackProblemStatement keeps the exact literal the backend expects.
const (
	FallbackProblemStatement = "No problem statement statement"
	FallbackCategory         = "General"
)

// DefaultRound is the round identifier attached to every submission.
const DefaultRound = "Round 1"

// Submission is the JSON body posted to both the submit and the save-draft
// endpoints.
type Submission struct {
	TeamID           string `json:"team_id"`
	TeamName         string `json:"team_name"`
	ProblemStatement string `json:"problem_statement"`
	PSCategory       string `json:"ps_category"`
	Round            string `json:"round"`

	ProblemSolutionFit      int `json:"problem_solution_fit"`
	FunctionalityFeatures   int `json:"functionality_features"`
	TechnicalFeasibility    int `json:"technical_feasibility"`
	InnovationCreativity    int `json:"innovation_creativity"`
	UserExperience          int `json:"user_experience"`
	ImpactValue             int `json:"impact_value"`
	PresentationDemoQuality int `json:"presentation_demo_quality"`
	TeamCollaboration       int `json:"team_collaboration"`

	PersonalizedFeedback string `json:"personalized_feedback"`
}

// NewSubmission assembles the wire payload for a team and draft. The round
// identifier is fixed per deployment and injected from configuration.
// Draft.FinalRecommendation is intentionally not serialized.
func NewSubmission(t *team.Team, d *Draft, round string) Submission {
	if round == "" {
		round = DefaultRound
	}

	sub := Submission{
		TeamID:           t.ID,
		TeamName:         t.Name,
		ProblemStatement: FallbackProblemStatement,
		PSCategory:       FallbackCategory,
		Round:            round,

		ProblemSolutionFit:      d.Rating(ProblemSolutionFit),
		FunctionalityFeatures:   d.Rating(FunctionalityFeatures),
		TechnicalFeasibility:    d.Rating(TechnicalFeasibility),
		InnovationCreativity:    d.Rating(InnovationCreativity),
		UserExperience:          d.Rating(UserExperience),
		ImpactValue:             d.Rating(ImpactValue),
		PresentationDemoQuality: d.Rating(PresentationDemoQuality),
		TeamCollaboration:       d.Rating(TeamCollaboration),

		PersonalizedFeedback: d.PersonalizedFeedback,
	}

	if ps := t.ProblemStatement; ps != nil {
		if ps.Title != "" {
			sub.ProblemStatement = ps.Title
		}
		if ps.Category != "" {
			sub.PSCategory = ps.Category
		}
	}

	return sub
}

// Result is the scoring summary returned by the backend on a successful
// submit or draft save.
type Result struct {
	TotalScore   float64 `json:"total_score"`
	AverageScore float64 `json:"average_score"`
}
