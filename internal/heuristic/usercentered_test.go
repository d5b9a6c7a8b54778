package heuristic

import (
	"testing"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

func TestUserCenteredEvaluator(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	t.Run("page without interactive elements passes vacuously", func(t *testing.T) {
		t.Parallel()

		result := NewUserCenteredEvaluator().Evaluate(&model.PageSnapshot{}, cfg)

		if result.Score != 100 {
			t.Errorf("Score = %v, want 100", result.Score)
		}
	})

	t.Run("interactive page with focus and labels passes", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			InteractiveElementCount: 12,
			FocusableElementCount:   12,
			AriaLabelCount:          3,
		}
		result := NewUserCenteredEvaluator().Evaluate(snap, cfg)

		if result.Score != 100 {
			t.Errorf("Score = %v, want 100", result.Score)
		}
	})

	t.Run("interactive page with nothing focusable fails", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			InteractiveElementCount: 8,
			AriaLabelCount:          2,
		}
		result := NewUserCenteredEvaluator().Evaluate(snap, cfg)

		if result.Score != 75 {
			t.Errorf("Score = %v, want 75", result.Score)
		}
	})

	t.Run("both checks failing stacks penalties", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			InteractiveElementCount: 8,
		}
		result := NewUserCenteredEvaluator().Evaluate(snap, cfg)

		if result.Score != 50 {
			t.Errorf("Score = %v, want 50", result.Score)
		}
		if len(result.Recommendations) != 2 {
			t.Errorf("len(Recommendations) = %d, want 2", len(result.Recommendations))
		}
	})
}
