package heuristic

import (
	"fmt"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

// Fixed penalty for each call-to-action that fails the prominence check.
const visibilityPenalty = 20

// VisibilityEvaluator scores whether primary actions stand out.
// Up to MaxCTAToCheck call-to-action candidates are checked for contrast
// and rendered size; a button users cannot see is a button they will not
// press.
type VisibilityEvaluator struct{}

// NewVisibilityEvaluator creates a new VisibilityEvaluator.
func NewVisibilityEvaluator() *VisibilityEvaluator {
	return &VisibilityEvaluator{}
}

// Principle returns the principle this evaluator scores.
func (e *VisibilityEvaluator) Principle() model.Principle {
	return model.PrincipleVisibility
}

// Evaluate checks the prominence of the first N call-to-action buttons.
// A zero contrast or area means the signal was not measured and that
// dimension passes vacuously.
func (e *VisibilityEvaluator) Evaluate(snap *model.PageSnapshot, cfg *config.Config) model.PrincipleResult {
	t := cfg.Thresholds.Visibility
	sc := newScorecard()

	// A non-positive limit slips past validation only for hand-built
	// configs; evaluators must never panic, so check every button then.
	buttons := snap.CTAButtons
	if t.MaxCTAToCheck > 0 && len(buttons) > t.MaxCTAToCheck {
		buttons = buttons[:t.MaxCTAToCheck]
	}

	for _, b := range buttons {
		lowContrast := b.ContrastRatio > 0 && b.ContrastRatio < t.MinCTAContrast
		tooSmall := b.Area > 0 && b.Area < t.MinCTAArea
		if !lowContrast && !tooSmall {
			continue
		}

		label := b.Text
		if label == "" {
			label = "(unlabelled)"
		}

		switch {
		case lowContrast && tooSmall:
			sc.fail(visibilityPenalty, fmt.Sprintf(
				"Make the %q call-to-action more prominent: contrast %.1f is below %.1f and it is undersized.",
				label, b.ContrastRatio, t.MinCTAContrast))
		case lowContrast:
			sc.fail(visibilityPenalty, fmt.Sprintf(
				"Increase the contrast of the %q call-to-action: %.1f is below the %.1f minimum.",
				label, b.ContrastRatio, t.MinCTAContrast))
		default:
			sc.fail(visibilityPenalty, fmt.Sprintf(
				"Enlarge the %q call-to-action: %.0f square pixels is below the %.0f minimum.",
				label, b.Area, t.MinCTAArea))
		}
	}

	return sc.result(e.Principle())
}
