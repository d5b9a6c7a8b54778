package heuristic

import (
	"fmt"
	"math"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

// Aggregate runs all ten evaluators against the snapshot in the fixed
// evaluation order and builds the report: per-principle results with
// grades, the unweighted overall average, the total score, the truncated
// recommendation list, and the diagnostic blocks carried over from the
// snapshot.
//
// Aggregate is deterministic and sets no timestamps; calling it twice with
// the same snapshot and config produces identical content. The pipeline
// stamps the audit time on the report it actually emits.
func Aggregate(url string, snap *model.PageSnapshot, cfg *config.Config) *model.Report {
	report := &model.Report{
		URL:      url,
		Snapshot: snap,
	}

	evaluators := Evaluators()
	report.Results = make([]model.PrincipleResult, 0, len(evaluators))

	var sum float64
	for _, ev := range evaluators {
		result := ev.Evaluate(snap, cfg)
		result.Grade = gradeFor(result.Score, cfg)
		report.Results = append(report.Results, result)
		sum += result.Score
	}

	report.OverallAverage = sum / float64(len(evaluators))
	report.TotalScore = int(math.Round(sum))
	report.OverallGrade = gradeFor(report.OverallAverage, cfg)
	report.RankedRecommendations = rankRecommendations(report.Results, cfg.TopRecommendations)

	// Diagnostics the snapshot already carries.
	report.LoadTimeMillis = snap.LoadTimeMillis
	report.PerformanceMetrics = snap.Timing
	report.MetaTags = snap.MetaTags
	report.ConsoleErrors = snap.ConsoleErrors
	report.ResponsiveIssues = responsiveIssues(snap.ViewportScrolls)

	return report
}

// gradeFor maps a score to its qualitative band using the configured
// scoring thresholds.
func gradeFor(score float64, cfg *config.Config) model.Grade {
	b := cfg.Scoring
	return model.GradeForScore(score, b.Excellent, b.Good, b.NeedsImprovement)
}

// rankRecommendations flattens all recommendations in evaluator order and
// truncates to the top N. This is a documented truncation, not a severity
// ranking: the order reflects the fixed evaluation order and check order
// within each evaluator.
func rankRecommendations(results []model.PrincipleResult, topN int) []string {
	var ranked []string
	for _, r := range results {
		ranked = append(ranked, r.Recommendations...)
	}
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// responsiveIssues converts per-viewport scroll measurements into
// human-readable issue strings, one per overflowing viewport.
func responsiveIssues(scrolls []model.ViewportScroll) []string {
	var issues []string
	for _, vs := range scrolls {
		if vs.HasHorizontalScroll() {
			issues = append(issues, fmt.Sprintf(
				"Horizontal scrolling at %dx%d (content width: %dpx)",
				vs.Width, vs.Height, vs.ScrollWidth))
		}
	}
	return issues
}
