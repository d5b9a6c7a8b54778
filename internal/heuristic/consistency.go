package heuristic

import (
	"fmt"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

// Fixed penalty for each failed consistency check.
const consistencyPenalty = 15

// ConsistencyEvaluator scores uniformity of the page's visual language:
// how many distinct colors, font families, spacing values, and button
// styles the page mixes.
type ConsistencyEvaluator struct{}

// NewConsistencyEvaluator creates a new ConsistencyEvaluator.
func NewConsistencyEvaluator() *ConsistencyEvaluator {
	return &ConsistencyEvaluator{}
}

// Principle returns the principle this evaluator scores.
func (e *ConsistencyEvaluator) Principle() model.Principle {
	return model.PrincipleConsistency
}

// Evaluate checks the style variation counts against the configured
// maximums. All four checks are "count at most max" style, so an empty
// snapshot passes every one.
func (e *ConsistencyEvaluator) Evaluate(snap *model.PageSnapshot, cfg *config.Config) model.PrincipleResult {
	t := cfg.Thresholds.Consistency
	sc := newScorecard()

	if len(snap.DistinctColors) > t.MaxColors {
		sc.fail(consistencyPenalty, fmt.Sprintf(
			"Consolidate the color palette: %d distinct colors found, aim for at most %d.",
			len(snap.DistinctColors), t.MaxColors))
	}

	if len(snap.DistinctFonts) > t.MaxFonts {
		sc.fail(consistencyPenalty, fmt.Sprintf(
			"Reduce font variety: %d font families found, aim for at most %d.",
			len(snap.DistinctFonts), t.MaxFonts))
	}

	if len(snap.SpacingValues) > t.MaxSpacingVariants {
		sc.fail(consistencyPenalty, fmt.Sprintf(
			"Standardize spacing: %d distinct spacing values found, aim for at most %d.",
			len(snap.SpacingValues), t.MaxSpacingVariants))
	}

	if snap.ButtonStyleCount > t.MaxButtonStyles {
		sc.fail(consistencyPenalty, fmt.Sprintf(
			"Unify button styling: %d distinct button styles found, aim for at most %d.",
			snap.ButtonStyleCount, t.MaxButtonStyles))
	}

	return sc.result(e.Principle())
}
