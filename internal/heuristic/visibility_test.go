package heuristic

import (
	"strings"
	"testing"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

func TestVisibilityEvaluator(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	t.Run("no call-to-action candidates passes vacuously", func(t *testing.T) {
		t.Parallel()

		result := NewVisibilityEvaluator().Evaluate(&model.PageSnapshot{}, cfg)

		if result.Score != 100 {
			t.Errorf("Score = %v, want 100", result.Score)
		}
	})

	t.Run("unmeasured contrast and area pass", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			CTAButtons: []model.CTAButton{{Text: "Sign up"}},
		}
		result := NewVisibilityEvaluator().Evaluate(snap, cfg)

		if result.Score != 100 {
			t.Errorf("Score = %v, want 100", result.Score)
		}
	})

	t.Run("low contrast button fails", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			CTAButtons: []model.CTAButton{
				{Text: "Buy now", ContrastRatio: 2.1, Area: 2000},
			},
		}
		result := NewVisibilityEvaluator().Evaluate(snap, cfg)

		if result.Score != 80 {
			t.Errorf("Score = %v, want 80", result.Score)
		}
		if !strings.Contains(result.Recommendations[0], `"Buy now"`) {
			t.Errorf("Recommendations[0] = %q, want the button label quoted", result.Recommendations[0])
		}
	})

	t.Run("undersized button fails", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			CTAButtons: []model.CTAButton{
				{Text: "Go", ContrastRatio: 7.0, Area: 500},
			},
		}
		result := NewVisibilityEvaluator().Evaluate(snap, cfg)

		if result.Score != 80 {
			t.Errorf("Score = %v, want 80", result.Score)
		}
	})

	t.Run("only the first N candidates are checked", func(t *testing.T) {
		t.Parallel()

		bad := model.CTAButton{Text: "x", ContrastRatio: 1.1, Area: 10}
		snap := &model.PageSnapshot{
			CTAButtons: []model.CTAButton{bad, bad, bad, bad, bad, bad},
		}
		result := NewVisibilityEvaluator().Evaluate(snap, cfg)

		// Three candidates checked, 20 points each.
		if result.Score != 40 {
			t.Errorf("Score = %v, want 40", result.Score)
		}
		if len(result.Recommendations) != cfg.Thresholds.Visibility.MaxCTAToCheck {
			t.Errorf("len(Recommendations) = %d, want %d",
				len(result.Recommendations), cfg.Thresholds.Visibility.MaxCTAToCheck)
		}
	})

	t.Run("negative candidate limit checks every button without panicking", func(t *testing.T) {
		t.Parallel()

		broken := config.NewConfig()
		broken.Thresholds.Visibility.MaxCTAToCheck = -1

		bad := model.CTAButton{Text: "x", ContrastRatio: 1.1, Area: 10}
		snap := &model.PageSnapshot{
			CTAButtons: []model.CTAButton{bad, bad},
		}
		result := NewVisibilityEvaluator().Evaluate(snap, broken)

		if len(result.Recommendations) != 2 {
			t.Errorf("len(Recommendations) = %d, want every button checked", len(result.Recommendations))
		}
		if result.Score != 60 {
			t.Errorf("Score = %v, want 60", result.Score)
		}
	})
}
