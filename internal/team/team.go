package team

import "time"

// Member is one person on a team roster.
type Member struct {
	Name       string `json:"name"`
	RollNumber string `json:"roll_number"`
	Email      string `json:"email"`
	Contact    string `json:"contact"`
	Role       string `json:"role"`
}

// ProblemStatement is the challenge a team is building against.
type ProblemStatement struct {
	ID          string `json:"ps_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Domain      string `json:"domain"`
}

// Team is the submission record for a registered team as served by the
// judging backend. The client treats it as read-only: it is fetched for the
// overview screen, handed to the evaluation form on selection, and never
// mutated locally.
type Team struct {
	ID               string            `json:"team_id"`
	Name             string            `json:"team_name"`
	ProblemStatement *ProblemStatement `json:"problem_statement,omitempty"`
	Leader           Member            `json:"leader"`
	Members          []Member          `json:"members"`
	Status           string            `json:"status"`
	SubmittedAt      *time.Time        `json:"submitted_at,omitempty"`
}

// Roster returns the leader followed by the remaining members.
func (t *Team) Roster() []Member {
	roster := make([]Member, 0, len(t.Members)+1)
	roster = append(roster, t.Leader)
	roster = append(roster, t.Members...)
	return roster
}
