package views

import "github.com/Shivenrastogi59/hackathon-evaluation/internal/team"

// TeamSelectedMsg is emitted by the teams view when the judge picks a team
// to evaluate. The app switches to the evaluation view in response.
type TeamSelectedMsg struct {
	Team *team.Team
}

// BackToTeamsMsg is emitted by the evaluation view when the judge leaves the
// form, either by pressing esc or after a successful submission.
type BackToTeamsMsg struct{}
