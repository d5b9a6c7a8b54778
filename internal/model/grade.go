package model

import (
	"encoding/json"
	"fmt"
)

// Grade is the qualitative label for a numeric score band.
//
// Design decision: We use iota-based constants rather than string constants
// for cheap comparisons, with JSON marshaling to the display string so
// exports stay human-readable.
type Grade int

const (
	// GradePoor covers scores below the needs-improvement threshold.
	GradePoor Grade = iota

	// GradeNeedsImprovement covers scores in the lowest configured band.
	GradeNeedsImprovement

	// GradeGood covers scores in the middle configured band.
	GradeGood

	// GradeExcellent covers scores at or above the top configured band.
	GradeExcellent
)

// String returns the human-readable representation of the grade.
func (g Grade) String() string {
	switch g {
	case GradeExcellent:
		return "EXCELLENT"
	case GradeGood:
		return "GOOD"
	case GradeNeedsImprovement:
		return "NEEDS IMPROVEMENT"
	case GradePoor:
		return "POOR"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON encodes the grade as its display string.
func (g Grade) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

// UnmarshalJSON decodes a grade from its display string.
func (g *Grade) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	switch s {
	case "EXCELLENT":
		*g = GradeExcellent
	case "GOOD":
		*g = GradeGood
	case "NEEDS IMPROVEMENT":
		*g = GradeNeedsImprovement
	case "POOR":
		*g = GradePoor
	default:
		return fmt.Errorf("unknown grade %q", s)
	}
	return nil
}

// GradeForScore maps a score to its band using the given thresholds.
// Thresholds are inclusive lower bounds: a score equal to the excellent
// threshold grades EXCELLENT.
func GradeForScore(score, excellent, good, needsImprovement float64) Grade {
	switch {
	case score >= excellent:
		return GradeExcellent
	case score >= good:
		return GradeGood
	case score >= needsImprovement:
		return GradeNeedsImprovement
	default:
		return GradePoor
	}
}
