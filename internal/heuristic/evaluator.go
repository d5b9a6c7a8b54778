package heuristic

import (
	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

// Evaluator scores one principle against a page snapshot.
//
// Design decision: We use an interface rather than function values, like
// the analyzer registry this engine grew out of, because evaluators carry
// their principle identity and the aggregator logs and orders them by it.
type Evaluator interface {
	// Principle returns the principle this evaluator scores.
	Principle() model.Principle

	// Evaluate scores the snapshot. It is deterministic and pure with
	// respect to its two inputs: no I/O, no randomness, no shared state.
	// It must be total over partial snapshots; an unmeasured signal is a
	// vacuous pass, never an error.
	Evaluate(snap *model.PageSnapshot, cfg *config.Config) model.PrincipleResult
}

// Evaluators returns all ten evaluators in the fixed, documented
// evaluation order. The order matches model.Principles().
func Evaluators() []Evaluator {
	return []Evaluator{
		NewSimplicityEvaluator(),
		NewUserCenteredEvaluator(),
		NewVisibilityEvaluator(),
		NewConsistencyEvaluator(),
		NewFeedbackEvaluator(),
		NewClarityEvaluator(),
		NewAccessibilityEvaluator(),
		NewUsabilityEvaluator(),
		NewEfficiencyEvaluator(),
		NewDelightEvaluator(),
	}
}
