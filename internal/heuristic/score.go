package heuristic

import "github.com/uxscan/uxscan/internal/model"

// scorecard accumulates the outcome of one evaluator run: a running score
// that starts at 100 and one recommendation per failed check.
type scorecard struct {
	score           float64
	recommendations []string
}

// newScorecard returns a scorecard with the full starting score.
func newScorecard() *scorecard {
	return &scorecard{score: 100}
}

// fail records one failed check: it subtracts the fixed penalty and
// appends the recommendation. The score may go below zero here; result()
// clamps it.
func (s *scorecard) fail(penalty float64, recommendation string) {
	s.score -= penalty
	s.recommendations = append(s.recommendations, recommendation)
}

// result finalizes the scorecard into a PrincipleResult for the given
// principle, clamping the score to [0,100]. The grade is left for the
// aggregator, which owns the scoring bands.
func (s *scorecard) result(p model.Principle) model.PrincipleResult {
	score := s.score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return model.PrincipleResult{
		Principle:       p,
		Score:           score,
		Recommendations: s.recommendations,
	}
}
