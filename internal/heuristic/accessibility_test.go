package heuristic

import (
	"strings"
	"testing"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

func TestAccessibilityEvaluator(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	t.Run("empty snapshot passes vacuously", func(t *testing.T) {
		t.Parallel()

		result := NewAccessibilityEvaluator().Evaluate(&model.PageSnapshot{}, cfg)

		if result.Score != 100 {
			t.Errorf("Score = %v, want 100", result.Score)
		}
	})

	t.Run("missing alt text lowers the score", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			ImageCount:       5,
			ImagesMissingAlt: 2,
		}
		result := NewAccessibilityEvaluator().Evaluate(snap, cfg)

		if result.Score != 75 {
			t.Errorf("Score = %v, want 75", result.Score)
		}
		if len(result.Recommendations) != 1 {
			t.Fatalf("len(Recommendations) = %d, want 1", len(result.Recommendations))
		}
		if !strings.Contains(result.Recommendations[0], "alt") {
			t.Errorf("Recommendations[0] = %q, want mention of alt text", result.Recommendations[0])
		}
	})

	t.Run("content without semantic elements fails", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			TextElementCount:     10,
			SemanticElementCount: 0,
		}
		result := NewAccessibilityEvaluator().Evaluate(snap, cfg)

		if result.Score != 80 {
			t.Errorf("Score = %v, want 80", result.Score)
		}
	})

	t.Run("skipped heading level is flagged", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			HeadingLevels: []int{1, 3, 4},
		}
		result := NewAccessibilityEvaluator().Evaluate(snap, cfg)

		if result.Score != 80 {
			t.Errorf("Score = %v, want 80", result.Score)
		}
		if !strings.Contains(result.Recommendations[0], "h1->h3") {
			t.Errorf("Recommendations[0] = %q, want h1->h3", result.Recommendations[0])
		}
	})

	t.Run("descending heading transitions are fine", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			HeadingLevels: []int{1, 2, 3, 2, 3, 1},
		}
		result := NewAccessibilityEvaluator().Evaluate(snap, cfg)

		if result.Score != 100 {
			t.Errorf("Score = %v, want 100", result.Score)
		}
	})

	t.Run("unlabelled inputs fail the label check", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			FormInputCount:     4,
			InputsMissingLabel: 3,
		}
		result := NewAccessibilityEvaluator().Evaluate(snap, cfg)

		if result.Score != 80 {
			t.Errorf("Score = %v, want 80", result.Score)
		}
	})

	t.Run("disabled checks are skipped", func(t *testing.T) {
		t.Parallel()

		disabled := config.NewConfig()
		disabled.Accessibility = config.AccessibilityChecks{}

		snap := &model.PageSnapshot{
			TextElementCount:   10,
			ImageCount:         5,
			ImagesMissingAlt:   5,
			HeadingLevels:      []int{1, 4},
			InputsMissingLabel: 3,
		}
		result := NewAccessibilityEvaluator().Evaluate(snap, disabled)

		if result.Score != 100 {
			t.Errorf("Score = %v, want 100 with all checks disabled", result.Score)
		}
	})

	t.Run("all checks failing clamps at zero", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			TextElementCount:   10,
			ImageCount:         5,
			ImagesMissingAlt:   5,
			HeadingLevels:      []int{1, 4},
			InputsMissingLabel: 3,
		}
		result := NewAccessibilityEvaluator().Evaluate(snap, cfg)

		// 100 - 20 - 25 - 20 - 20 = 15
		if result.Score != 15 {
			t.Errorf("Score = %v, want 15", result.Score)
		}
		if len(result.Recommendations) != 4 {
			t.Errorf("len(Recommendations) = %d, want 4", len(result.Recommendations))
		}
	})
}
