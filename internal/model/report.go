package model

import "time"

// Report is the complete result of one audit run: the ten principle
// results plus the diagnostic data captured alongside them. It is built
// once by the aggregator and then only read.
//
// Design decision: Principle results are stored as an ordered slice, not a
// map, so that the fixed evaluation order survives serialization and the
// JSON export is byte-stable across runs (the idempotence guarantee would
// not survive Go's randomized map iteration in custom marshaling).
type Report struct {
	// URL is the audited page address.
	URL string `json:"url"`

	// AuditedAt is when the audit was performed. Set by the pipeline,
	// not the aggregator, so repeated aggregation of the same snapshot
	// is byte-identical.
	AuditedAt time.Time `json:"audited_at"`

	// Results holds one result per principle in fixed evaluation order.
	Results []PrincipleResult `json:"principles,omitempty"`

	// OverallAverage is the unweighted arithmetic mean of the ten scores.
	OverallAverage float64 `json:"overall_average"`

	// TotalScore is the sum of the ten scores, rounded to an integer.
	// Equivalently OverallAverage times ten.
	TotalScore int `json:"total_score"`

	// OverallGrade is the qualitative band for OverallAverage.
	OverallGrade Grade `json:"overall_grade"`

	// RankedRecommendations is the flattened, evaluator-order list of all
	// recommendations, truncated to the configured top-N. The order
	// reflects evaluation order, not computed severity.
	RankedRecommendations []string `json:"ranked_recommendations,omitempty"`

	// === Diagnostics carried from the snapshot ===

	// LoadTimeMillis is the measured full load time in milliseconds.
	LoadTimeMillis int64 `json:"load_time_ms,omitempty"`

	// PerformanceMetrics is the navigation timing breakdown, if measured.
	PerformanceMetrics *NavigationTiming `json:"performance_metrics,omitempty"`

	// MetaTags maps meta tag names to content.
	MetaTags map[string]string `json:"meta_tags,omitempty"`

	// ConsoleErrors contains browser console errors seen during load.
	ConsoleErrors []string `json:"console_errors,omitempty"`

	// BrokenLinks lists link targets that failed the HEAD probe.
	BrokenLinks []string `json:"broken_links,omitempty"`

	// BrokenImages lists image sources that failed the HEAD probe.
	BrokenImages []string `json:"broken_images,omitempty"`

	// ResponsiveIssues describes horizontal overflow found at the
	// configured viewports.
	ResponsiveIssues []string `json:"responsive_issues,omitempty"`

	// === Run state ===

	// PerformedSteps lists the pipeline steps that ran, in order.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Snapshot is the captured page state this report was scored from.
	// Excluded from JSON; the report carries the derived data instead.
	Snapshot *PageSnapshot `json:"-"`

	// Error holds a fatal run error, if any. Only the capture boundary
	// can fail; the scoring core is total.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewReport creates an empty report for the given URL with the audit
// timestamp set to now.
func NewReport(url string) *Report {
	return &Report{
		URL:       url,
		AuditedAt: time.Now(),
	}
}

// Result returns the result for the given principle.
// The second return value is false if the principle is not in the report.
func (r *Report) Result(p Principle) (PrincipleResult, bool) {
	for _, pr := range r.Results {
		if pr.Principle == p {
			return pr, true
		}
	}
	return PrincipleResult{}, false
}

// Score returns the score for the given principle, or zero if absent.
func (r *Report) Score(p Principle) float64 {
	pr, _ := r.Result(p)
	return pr.Score
}

// RecommendationCount returns the total number of recommendations across
// all principles, before truncation.
func (r *Report) RecommendationCount() int {
	total := 0
	for _, pr := range r.Results {
		total += len(pr.Recommendations)
	}
	return total
}

// SetError records a fatal run error on the report.
func (r *Report) SetError(err error) {
	r.Error = err
	if err != nil {
		r.ErrorMessage = err.Error()
	}
}
