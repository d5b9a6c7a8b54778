package heuristic

import (
	"fmt"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

// Fixed penalty for each failed simplicity check.
const simplicityPenalty = 15

// SimplicityEvaluator scores visual and structural restraint.
// A page with a compact navigation, moderate text density, and a bounded
// set of interactive elements is easier to take in at a glance.
type SimplicityEvaluator struct{}

// NewSimplicityEvaluator creates a new SimplicityEvaluator.
func NewSimplicityEvaluator() *SimplicityEvaluator {
	return &SimplicityEvaluator{}
}

// Principle returns the principle this evaluator scores.
func (e *SimplicityEvaluator) Principle() model.Principle {
	return model.PrincipleSimplicity
}

// Evaluate checks the element counts against the configured maximums.
func (e *SimplicityEvaluator) Evaluate(snap *model.PageSnapshot, cfg *config.Config) model.PrincipleResult {
	t := cfg.Thresholds.Simplicity
	sc := newScorecard()

	if snap.NavElementCount > t.MaxNavElements {
		sc.fail(simplicityPenalty, fmt.Sprintf(
			"Reduce navigation complexity: %d navigation elements found, aim for at most %d.",
			snap.NavElementCount, t.MaxNavElements))
	}

	if snap.TextElementCount > t.MaxTextElements {
		sc.fail(simplicityPenalty, fmt.Sprintf(
			"Reduce text density: %d text elements found, aim for at most %d.",
			snap.TextElementCount, t.MaxTextElements))
	}

	if snap.InteractiveElementCount > t.MaxInteractiveElements {
		sc.fail(simplicityPenalty, fmt.Sprintf(
			"Reduce the number of interactive elements: %d found, aim for at most %d.",
			snap.InteractiveElementCount, t.MaxInteractiveElements))
	}

	// The minimum-headings side of the range only applies when the page
	// has text at all; an empty or unmeasured page passes vacuously.
	if snap.HeadingCount > 0 && snap.HeadingCount > t.MaxHeadings {
		sc.fail(simplicityPenalty, fmt.Sprintf(
			"Simplify the document outline: %d headings found, aim for at most %d.",
			snap.HeadingCount, t.MaxHeadings))
	} else if snap.HeadingCount < t.MinHeadings && snap.TextElementCount > 0 {
		sc.fail(simplicityPenalty, fmt.Sprintf(
			"Add structure: the page has text content but fewer than %d headings.",
			t.MinHeadings))
	}

	return sc.result(e.Principle())
}
