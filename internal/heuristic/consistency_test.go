package heuristic

import (
	"fmt"
	"testing"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

// colorList builds n distinct color strings for threshold tests.
func colorList(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("rgb(%d, 0, 0)", i)
	}
	return out
}

func TestConsistencyEvaluator(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	t.Run("empty snapshot passes vacuously", func(t *testing.T) {
		t.Parallel()

		result := NewConsistencyEvaluator().Evaluate(&model.PageSnapshot{}, cfg)

		if result.Score != 100 {
			t.Errorf("Score = %v, want 100", result.Score)
		}
	})

	t.Run("restrained palette passes", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			DistinctColors:   colorList(3),
			DistinctFonts:    []string{"Inter", "monospace"},
			SpacingValues:    []string{"8px", "16px"},
			ButtonStyleCount: 2,
		}
		result := NewConsistencyEvaluator().Evaluate(snap, cfg)

		if result.Score != 100 {
			t.Errorf("Score = %v, want 100", result.Score)
		}
	})

	t.Run("too many colors costs one penalty", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			DistinctColors: colorList(cfg.Thresholds.Consistency.MaxColors + 1),
		}
		result := NewConsistencyEvaluator().Evaluate(snap, cfg)

		if result.Score != 85 {
			t.Errorf("Score = %v, want 85", result.Score)
		}
	})

	t.Run("all four checks failing", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			DistinctColors:   colorList(20),
			DistinctFonts:    []string{"a", "b", "c", "d"},
			SpacingValues:    colorList(9),
			ButtonStyleCount: 5,
		}
		result := NewConsistencyEvaluator().Evaluate(snap, cfg)

		if result.Score != 40 {
			t.Errorf("Score = %v, want 40", result.Score)
		}
		if len(result.Recommendations) != 4 {
			t.Errorf("len(Recommendations) = %d, want 4", len(result.Recommendations))
		}
	})
}
