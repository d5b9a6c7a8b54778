package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/uxscan/uxscan/internal/model"
)

// TextWriter outputs human-readable text reports for terminal display.
//
// Design decision: We use plain ASCII formatting rather than ANSI colors
// because:
//  1. It works in all terminals without compatibility issues
//  2. It's easier to pipe to files or other tools
type TextWriter struct {
	baseWriter

	// showEmpty controls whether sections with no content are shown.
	showEmpty bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) TextWriterOption {
	return func(w *TextWriter) {
		w.showEmpty = show
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full report in human-readable format.
// A run that failed before producing any results renders only the header
// with its error status; there are no scores to show for a page that was
// never measured.
func (w *TextWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	if report.ErrorMessage == "" || len(report.Results) > 0 {
		w.writeScores(&sb, report)
		w.writeRecommendations(&sb, report)
		w.writeTopRecommendations(&sb, report)
		w.writePerformance(&sb, report)
		w.writeDiagnostics(&sb, report)
	}
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with audit information.
func (w *TextWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                          UXSCAN AUDIT REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("URL:        %s\n", report.URL))
	if !report.AuditedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("Audited:    %s\n", report.AuditedAt.Format("2006-01-02 15:04:05 MST")))
	}

	if report.ErrorMessage != "" {
		sb.WriteString(fmt.Sprintf("Status:     ERROR - %s\n", report.ErrorMessage))
	} else {
		sb.WriteString("Status:     Complete\n")
	}
	sb.WriteString("\n")
}

// writeScores writes the per-principle score table and the overall line.
func (w *TextWriter) writeScores(sb *strings.Builder, report *model.Report) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SCORES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, r := range report.Results {
		name := r.Principle.DisplayName()
		dots := strings.Repeat(".", 30-len(name))
		sb.WriteString(fmt.Sprintf("  %s %s %5.1f  [%s]\n", name, dots, r.Score, r.Grade))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Overall average: %.1f / 100  [%s]\n", report.OverallAverage, report.OverallGrade))
	sb.WriteString(fmt.Sprintf("  Total score:     %d / 1000\n", report.TotalScore))
	sb.WriteString("\n")
}

// writeRecommendations writes each principle's recommendations, falling
// back to the default message for principles with a clean pass.
func (w *TextWriter) writeRecommendations(sb *strings.Builder, report *model.Report) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("RECOMMENDATIONS BY PRINCIPLE\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, r := range report.Results {
		if r.Passed() && !w.showEmpty {
			continue
		}
		sb.WriteString(fmt.Sprintf("[%s]\n", r.Principle.DisplayName()))
		for _, rec := range recommendationsOrDefault(r) {
			sb.WriteString(fmt.Sprintf("  - %s\n", rec))
		}
		sb.WriteString("\n")
	}

	if report.RecommendationCount() == 0 {
		sb.WriteString("  All principles passed without recommendations.\n\n")
	}
}

// writeTopRecommendations writes the truncated evaluator-order list.
func (w *TextWriter) writeTopRecommendations(sb *strings.Builder, report *model.Report) {
	if len(report.RankedRecommendations) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("TOP RECOMMENDATIONS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(report.RankedRecommendations) == 0 {
		sb.WriteString("  None.\n")
	}
	for i, rec := range report.RankedRecommendations {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, rec))
	}
	sb.WriteString("\n")
}

// writePerformance writes the navigation timing breakdown.
func (w *TextWriter) writePerformance(sb *strings.Builder, report *model.Report) {
	if report.PerformanceMetrics == nil && report.LoadTimeMillis <= 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("PERFORMANCE METRICS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if report.LoadTimeMillis > 0 {
		sb.WriteString(fmt.Sprintf("  Page Load:      %dms\n", report.LoadTimeMillis))
	}

	if m := report.PerformanceMetrics; m != nil {
		sb.WriteString(fmt.Sprintf("  DNS Lookup:     %dms\n", m.DNSMillis))
		sb.WriteString(fmt.Sprintf("  TCP Connection: %dms\n", m.TCPMillis))
		sb.WriteString(fmt.Sprintf("  Request:        %dms\n", m.RequestMillis))
		sb.WriteString(fmt.Sprintf("  Response:       %dms\n", m.ResponseMillis))
		sb.WriteString(fmt.Sprintf("  DOM Load:       %dms\n", m.DOMLoadMillis))
		sb.WriteString(fmt.Sprintf("  Full Load:      %dms\n", m.FullLoadMillis))
	} else if report.LoadTimeMillis <= 0 {
		sb.WriteString("  Performance metrics not available\n")
	}
	sb.WriteString("\n")
}

// writeDiagnostics writes console errors, broken links/images, responsive
// issues, and meta tags.
func (w *TextWriter) writeDiagnostics(sb *strings.Builder, report *model.Report) {
	w.writeList(sb, "CONSOLE ERRORS", report.ConsoleErrors, "No console errors found")
	w.writeList(sb, "BROKEN LINKS", report.BrokenLinks, "No broken links found")
	w.writeList(sb, "BROKEN IMAGES", report.BrokenImages, "No broken images found")
	w.writeList(sb, "RESPONSIVE ISSUES", report.ResponsiveIssues, "No responsive issues found")
	w.writeMetaTags(sb, report)
}

// writeList writes one diagnostic section as a dashed list.
func (w *TextWriter) writeList(sb *strings.Builder, title string, items []string, emptyMsg string) {
	if len(items) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(items) == 0 {
		sb.WriteString(fmt.Sprintf("  %s\n", emptyMsg))
	}
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("  - %s\n", item))
	}
	sb.WriteString("\n")
}

// writeMetaTags writes the meta tag mapping with stable key order.
func (w *TextWriter) writeMetaTags(sb *strings.Builder, report *model.Report) {
	if len(report.MetaTags) == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("META TAGS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	keys := make([]string, 0, len(report.MetaTags))
	for k := range report.MetaTags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", k, report.MetaTags[k]))
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *TextWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by uxscan\n")
	sb.WriteString("https://github.com/uxscan/uxscan\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
