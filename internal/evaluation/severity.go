package evaluation

// Band is a three-level presentational classification of a score. It drives
// display color-coding only and carries no scoring semantics.
type Band int

const (
	BandFavorable Band = iota
	BandCaution
	BandUnfavorable
)

// String returns the band name used by theme style lookups.
func (b Band) String() string {
	switch b {
	case BandFavorable:
		return "favorable"
	case BandCaution:
		return "caution"
	default:
		return "unfavorable"
	}
}

// Scale classifies a numeric score into a Band. Favorable and Caution are
// the band cutoffs; LowerIsBetter flips the comparison for scales where a
// low score is the good outcome.
type Scale struct {
	Favorable     float64
	Caution       float64
	LowerIsBetter bool
}

// Classify returns the band for a score under this scale.
func (s Scale) Classify(score float64) Band {
	if s.LowerIsBetter {
		switch {
		case score <= s.Favorable:
			return BandFavorable
		case score <= s.Caution:
			return BandCaution
		default:
			return BandUnfavorable
		}
	}
	switch {
	case score >= s.Favorable:
		return BandFavorable
	case score >= s.Caution:
		return BandCaution
	default:
		return BandUnfavorable
	}
}

// Preset scales for the three score families the panel displays.
var (
	// RatingScale bands the 1-10 form ratings.
	RatingScale = Scale{Favorable: 8, Caution: 6}

	// PercentScale bands 0-100 report scores such as uniqueness.
	PercentScale = Scale{Favorable: 80, Caution: 60}

	// InvertedPercentScale bands 0-100 scores where lower is better,
	// such as a plagiarism percentage.
	InvertedPercentScale = Scale{Favorable: 15, Caution: 30, LowerIsBetter: true}
)
