package api

import "sort"

// Report is the automated slide-deck analysis stored for a team. The shape
// mirrors the backend's ppt-report response: a prose summary, a score map
// holding named category scores plus the raw and weighted totals, and four
// feedback paragraphs.
type Report struct {
	TeamName string `json:"team_name"`
	Summary  string `json:"summary"`

	// Scores maps category names (e.g. "Innovation & Uniqueness") to
	// numeric values, alongside the reserved "total_raw" and
	// "total_weighted" keys.
	Scores map[string]float64 `json:"scores"`

	WorkflowOverall string `json:"workflow_overall"`

	FeedbackPositive    string `json:"feedback_positive"`
	FeedbackCriticism   string `json:"feedback_criticism"`
	FeedbackTechnical   string `json:"feedback_technical"`
	FeedbackSuggestions string `json:"feedback_suggestions"`

	RecordID        string `json:"record_id"`
	UploadTimestamp string `json:"upload_timestamp"`
}

// Reserved keys in the Scores map.
const (
	scoreKeyTotalWeighted = "total_weighted"
	scoreKeyTotalRaw      = "total_raw"
)

// TotalWeighted returns the weighted total and whether it was present.
func (r *Report) TotalWeighted() (float64, bool) {
	v, ok := r.Scores[scoreKeyTotalWeighted]
	return v, ok
}

// TotalRaw returns the raw total and whether it was present.
func (r *Report) TotalRaw() (float64, bool) {
	v, ok := r.Scores[scoreKeyTotalRaw]
	return v, ok
}

// CategoryScore is one named analysis score.
type CategoryScore struct {
	Name  string
	Value float64
}

// CategoryScores returns the named category scores sorted by name, with the
// reserved total keys excluded.
func (r *Report) CategoryScores() []CategoryScore {
	scores := make([]CategoryScore, 0, len(r.Scores))
	for name, value := range r.Scores {
		if name == scoreKeyTotalWeighted || name == scoreKeyTotalRaw {
			continue
		}
		scores = append(scores, CategoryScore{Name: name, Value: value})
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].Name < scores[j].Name })
	return scores
}
