package tui

// Mode identifies which view owns the screen.
type Mode int

const (
	// ModeTeams shows the team list.
	ModeTeams Mode = iota

	// ModeEvaluation shows the scoring form for the selected team.
	ModeEvaluation
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeTeams:
		return "teams"
	case ModeEvaluation:
		return "evaluation"
	default:
		return "unknown"
	}
}
