package heuristic

import (
	"fmt"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

// Fixed penalty for each form without feedback affordances.
const feedbackPenalty = 20

// FeedbackEvaluator scores whether forms communicate state to the user:
// validation messages and loading indicators. A page with no forms passes
// vacuously.
type FeedbackEvaluator struct{}

// NewFeedbackEvaluator creates a new FeedbackEvaluator.
func NewFeedbackEvaluator() *FeedbackEvaluator {
	return &FeedbackEvaluator{}
}

// Principle returns the principle this evaluator scores.
func (e *FeedbackEvaluator) Principle() model.Principle {
	return model.PrincipleFeedback
}

// Evaluate checks the first MaxFormsToCheck forms for a validation or
// loading affordance. A form with neither fails its check.
func (e *FeedbackEvaluator) Evaluate(snap *model.PageSnapshot, cfg *config.Config) model.PrincipleResult {
	t := cfg.Thresholds.Feedback
	sc := newScorecard()

	// A non-positive limit slips past validation only for hand-built
	// configs; evaluators must never panic, so check every form then.
	forms := snap.Forms
	if t.MaxFormsToCheck > 0 && len(forms) > t.MaxFormsToCheck {
		forms = forms[:t.MaxFormsToCheck]
	}

	for i, f := range forms {
		if f.HasValidation || f.HasLoadingIndicator {
			continue
		}

		name := f.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		sc.fail(feedbackPenalty, fmt.Sprintf(
			"Add visible validation or a loading indicator to form %s so users see the result of submitting.",
			name))
	}

	return sc.result(e.Principle())
}
