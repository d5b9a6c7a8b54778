package heuristic

import (
	"fmt"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

// Fixed penalties for the load time checks. Exceeding double the budget
// is a second, separate check so that a severely slow page is not graded
// the same as a marginally slow one.
const (
	usabilityPenalty       = 30
	usabilitySeverePenalty = 40
)

// UsabilityEvaluator scores the measured load time against the configured
// budget. A snapshot without a load time measurement passes vacuously.
type UsabilityEvaluator struct{}

// NewUsabilityEvaluator creates a new UsabilityEvaluator.
func NewUsabilityEvaluator() *UsabilityEvaluator {
	return &UsabilityEvaluator{}
}

// Principle returns the principle this evaluator scores.
func (e *UsabilityEvaluator) Principle() model.Principle {
	return model.PrincipleUsability
}

// Evaluate checks the load time budget.
func (e *UsabilityEvaluator) Evaluate(snap *model.PageSnapshot, cfg *config.Config) model.PrincipleResult {
	t := cfg.Thresholds.Usability
	sc := newScorecard()

	if snap.LoadTimeMillis > 0 && snap.LoadTimeMillis > t.MaxLoadTimeMillis {
		sc.fail(usabilityPenalty, fmt.Sprintf(
			"Improve load time: %dms measured against a %dms budget.",
			snap.LoadTimeMillis, t.MaxLoadTimeMillis))

		if snap.LoadTimeMillis > 2*t.MaxLoadTimeMillis {
			sc.fail(usabilitySeverePenalty, fmt.Sprintf(
				"Load time is more than double the budget (%dms); audit render-blocking resources.",
				snap.LoadTimeMillis))
		}
	}

	return sc.result(e.Principle())
}
