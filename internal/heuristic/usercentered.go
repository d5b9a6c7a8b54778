package heuristic

import (
	"fmt"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

// Fixed penalty for each failed user-centered design check.
const userCenteredPenalty = 25

// UserCenteredEvaluator scores whether the page is built for real users:
// keyboard reachability and ARIA labelling of its interactive surface.
type UserCenteredEvaluator struct{}

// NewUserCenteredEvaluator creates a new UserCenteredEvaluator.
func NewUserCenteredEvaluator() *UserCenteredEvaluator {
	return &UserCenteredEvaluator{}
}

// Principle returns the principle this evaluator scores.
func (e *UserCenteredEvaluator) Principle() model.Principle {
	return model.PrincipleUserCentered
}

// Evaluate checks focusability and ARIA labelling.
// Both checks gate on the page actually having interactive elements;
// a page without any (or an unmeasured snapshot) passes vacuously.
func (e *UserCenteredEvaluator) Evaluate(snap *model.PageSnapshot, cfg *config.Config) model.PrincipleResult {
	t := cfg.Thresholds.UserCentered
	sc := newScorecard()

	if snap.InteractiveElementCount > 0 {
		if snap.FocusableElementCount < t.MinFocusableElements {
			sc.fail(userCenteredPenalty, fmt.Sprintf(
				"Make interactive elements keyboard-focusable: %d interactive elements found but only %d are focusable.",
				snap.InteractiveElementCount, snap.FocusableElementCount))
		}

		if snap.AriaLabelCount < t.MinAriaLabels {
			sc.fail(userCenteredPenalty, fmt.Sprintf(
				"Add ARIA labels: at least %d labelled element expected for an interactive page.",
				t.MinAriaLabels))
		}
	}

	return sc.result(e.Principle())
}
