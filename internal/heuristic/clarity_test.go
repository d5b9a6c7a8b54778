package heuristic

import (
	"strings"
	"testing"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

func TestClarityEvaluator(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	t.Run("empty snapshot passes vacuously", func(t *testing.T) {
		t.Parallel()

		result := NewClarityEvaluator().Evaluate(&model.PageSnapshot{}, cfg)

		if result.Score != 100 {
			t.Errorf("Score = %v, want 100", result.Score)
		}
	})

	t.Run("unclear link text is flagged with the offending text", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			LinkTexts: []string{"Click here", "Pricing", "Documentation"},
		}
		result := NewClarityEvaluator().Evaluate(snap, cfg)

		if result.Score != 85 {
			t.Errorf("Score = %v, want 85", result.Score)
		}
		if len(result.Recommendations) != 1 {
			t.Fatalf("len(Recommendations) = %d, want 1", len(result.Recommendations))
		}
		if !strings.Contains(result.Recommendations[0], `"Click here"`) {
			t.Errorf("Recommendations[0] = %q, want the unclear link text quoted", result.Recommendations[0])
		}
	})

	t.Run("multiple unclear links cost a single penalty", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			LinkTexts: []string{"Click here", "read more", "MORE", "..."},
		}
		result := NewClarityEvaluator().Evaluate(snap, cfg)

		if result.Score != 85 {
			t.Errorf("Score = %v, want 85", result.Score)
		}
	})

	t.Run("duplicate unclear texts are reported once", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			LinkTexts: []string{"click here", "Click Here", "CLICK HERE"},
		}
		result := NewClarityEvaluator().Evaluate(snap, cfg)

		if got := strings.Count(result.Recommendations[0], "lick"); got != 1 {
			t.Errorf("offending text reported %d times, want 1: %q", got, result.Recommendations[0])
		}
	})

	t.Run("long title and duplicate h1 each cost a penalty", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			Title:   strings.Repeat("x", cfg.Thresholds.Clarity.MaxTitleLength+1),
			H1Count: 2,
		}
		result := NewClarityEvaluator().Evaluate(snap, cfg)

		if result.Score != 70 {
			t.Errorf("Score = %v, want 70", result.Score)
		}
		if len(result.Recommendations) != 2 {
			t.Errorf("len(Recommendations) = %d, want 2", len(result.Recommendations))
		}
	})

	t.Run("title at the limit passes", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			Title:   strings.Repeat("x", cfg.Thresholds.Clarity.MaxTitleLength),
			H1Count: 1,
		}
		result := NewClarityEvaluator().Evaluate(snap, cfg)

		if result.Score != 100 {
			t.Errorf("Score = %v, want 100", result.Score)
		}
	})

	t.Run("title length counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		// 40 characters, 120 bytes: well under the 60-character limit.
		snap := &model.PageSnapshot{
			Title: strings.Repeat("日", 40),
		}
		result := NewClarityEvaluator().Evaluate(snap, cfg)

		if result.Score != 100 {
			t.Errorf("Score = %v, want 100 for a 40-character title", result.Score)
		}
	})
}
