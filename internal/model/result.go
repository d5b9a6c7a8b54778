package model

// PrincipleResult is the outcome of evaluating one principle against one
// snapshot. It is immutable once produced.
type PrincipleResult struct {
	// Principle identifies which heuristic this result belongs to.
	Principle Principle `json:"principle"`

	// Score is the final score in [0,100]. Every evaluator clamps to
	// this range before returning.
	Score float64 `json:"score"`

	// Grade is the qualitative band for Score, assigned by the
	// aggregator from the configured scoring thresholds.
	Grade Grade `json:"grade"`

	// Recommendations lists one message per failed check, in check
	// order. An empty slice means every check passed; writers substitute
	// Principle.DefaultRecommendation() at render time.
	Recommendations []string `json:"recommendations,omitempty"`
}

// Passed reports whether the evaluation produced no recommendations.
func (r PrincipleResult) Passed() bool {
	return len(r.Recommendations) == 0
}
