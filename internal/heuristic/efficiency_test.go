package heuristic

import (
	"testing"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

func TestEfficiencyEvaluator(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	t.Run("empty snapshot passes vacuously", func(t *testing.T) {
		t.Parallel()

		result := NewEfficiencyEvaluator().Evaluate(&model.PageSnapshot{}, cfg)

		if result.Score != 100 {
			t.Errorf("Score = %v, want 100", result.Score)
		}
	})

	t.Run("lean page passes", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			ImageCount:            10,
			ExternalResourceCount: 5,
			FormInputCount:        6,
		}
		result := NewEfficiencyEvaluator().Evaluate(snap, cfg)

		if result.Score != 100 {
			t.Errorf("Score = %v, want 100", result.Score)
		}
	})

	t.Run("heavy page fails all three checks", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			ImageCount:            100,
			ExternalResourceCount: 60,
			FormInputCount:        40,
		}
		result := NewEfficiencyEvaluator().Evaluate(snap, cfg)

		if result.Score != 55 {
			t.Errorf("Score = %v, want 55", result.Score)
		}
		if len(result.Recommendations) != 3 {
			t.Errorf("len(Recommendations) = %d, want 3", len(result.Recommendations))
		}
	})
}
