package heuristic

import (
	"fmt"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

// Fixed penalty for each failed efficiency check.
const efficiencyPenalty = 15

// EfficiencyEvaluator scores the resource weight of the page: image
// count, cross-origin resources, and form input count.
type EfficiencyEvaluator struct{}

// NewEfficiencyEvaluator creates a new EfficiencyEvaluator.
func NewEfficiencyEvaluator() *EfficiencyEvaluator {
	return &EfficiencyEvaluator{}
}

// Principle returns the principle this evaluator scores.
func (e *EfficiencyEvaluator) Principle() model.Principle {
	return model.PrincipleEfficiency
}

// Evaluate checks the resource counts against the configured maximums.
// All checks are "count at most max" style; an empty snapshot passes.
func (e *EfficiencyEvaluator) Evaluate(snap *model.PageSnapshot, cfg *config.Config) model.PrincipleResult {
	t := cfg.Thresholds.Efficiency
	sc := newScorecard()

	if snap.ImageCount > t.MaxImages {
		sc.fail(efficiencyPenalty, fmt.Sprintf(
			"Reduce image count: %d images found, aim for at most %d.",
			snap.ImageCount, t.MaxImages))
	}

	if snap.ExternalResourceCount > t.MaxExternalResources {
		sc.fail(efficiencyPenalty, fmt.Sprintf(
			"Reduce external resources: %d cross-origin requests found, aim for at most %d.",
			snap.ExternalResourceCount, t.MaxExternalResources))
	}

	if snap.FormInputCount > t.MaxFormInputs {
		sc.fail(efficiencyPenalty, fmt.Sprintf(
			"Shorten forms: %d input fields found, aim for at most %d.",
			snap.FormInputCount, t.MaxFormInputs))
	}

	return sc.result(e.Principle())
}
