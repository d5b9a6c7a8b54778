package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/uxscan/uxscan/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter

	titleCaser cases.Caser
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		titleCaser: cases.Title(language.English),
	}
}

// Write outputs the full report in Markdown format.
// A run that failed before producing any results renders only the header
// with its error status.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	if report.ErrorMessage == "" || len(report.Results) > 0 {
		w.writeScores(md, report)
		w.writeRecommendations(md, report)
		w.writeDiagnostics(md, report)
	}
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with audit information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("UX Audit Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"URL", "`" + report.URL + "`"},
			{"Audit Date", report.AuditedAt.Format("2006-01-02 15:04:05 MST")},
			{"Overall Grade", w.gradeLabel(report.OverallGrade)},
			{"Status", w.getStatusText(report)},
		},
	})
	md.PlainText("")
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.Report) string {
	if report.ErrorMessage != "" {
		return "❌ Error - " + report.ErrorMessage
	}
	return "✅ Complete"
}

// gradeLabel renders a grade band as a title-cased label.
func (w *MarkdownWriter) gradeLabel(g model.Grade) string {
	return w.titleCaser.String(strings.ToLower(g.String()))
}

// writeScores writes the per-principle score table and overall summary.
func (w *MarkdownWriter) writeScores(md *markdown.Markdown, report *model.Report) {
	md.H2("Scores")
	md.PlainText("")

	rows := make([][]string, 0, len(report.Results)+1)
	for _, r := range report.Results {
		rows = append(rows, []string{
			r.Principle.DisplayName(),
			fmt.Sprintf("%.1f", r.Score),
			w.gradeLabel(r.Grade),
		})
	}
	rows = append(rows, []string{
		"**Overall**",
		fmt.Sprintf("**%.1f**", report.OverallAverage),
		"**" + w.gradeLabel(report.OverallGrade) + "**",
	})

	md.Table(markdown.TableSet{
		Header: []string{"Principle", "Score", "Grade"},
		Rows:   rows,
	})
	md.PlainText("")

	md.PlainTextf("Total score: %d / 1000", report.TotalScore)
	md.PlainText("")

	w.writePieChart(md, report)
	w.writeAlert(md, report)
}

// writePieChart writes a mermaid pie chart of the grade distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.Report) {
	counts := make(map[model.Grade]int)
	for _, r := range report.Results {
		counts[r.Grade]++
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Principle Grade Distribution"),
		piechart.WithShowData(true),
	)

	for _, g := range []model.Grade{
		model.GradeExcellent,
		model.GradeGood,
		model.GradeNeedsImprovement,
		model.GradePoor,
	} {
		if counts[g] > 0 {
			chart.LabelAndIntValue(w.gradeLabel(g), uint64(counts[g]))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the overall grade.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.Report) {
	switch report.OverallGrade {
	case model.GradePoor:
		md.Cautionf(
			"This page scores POOR overall (%.1f/100). Fundamental UX work is needed.",
			report.OverallAverage,
		)
	case model.GradeNeedsImprovement:
		md.Warningf(
			"This page needs improvement (%.1f/100). Address the recommendations below.",
			report.OverallAverage,
		)
	case model.GradeGood:
		md.Importantf(
			"This page scores GOOD (%.1f/100). A few refinements would lift it further.",
			report.OverallAverage,
		)
	default:
		md.Tip("This page scores EXCELLENT. Keep up the consistent design.")
	}
	md.PlainText("")
}

// writeRecommendations writes the ranked list and per-principle details.
func (w *MarkdownWriter) writeRecommendations(md *markdown.Markdown, report *model.Report) {
	md.H2("Top Recommendations")
	md.PlainText("")

	if len(report.RankedRecommendations) == 0 {
		md.PlainText("No recommendations. Every principle passed.")
		md.PlainText("")
	} else {
		md.OrderedList(report.RankedRecommendations...)
		md.PlainText("")
	}

	md.H2("Recommendations by Principle")
	md.PlainText("")

	for _, r := range report.Results {
		if r.Passed() {
			continue
		}
		md.PlainText("### " + r.Principle.DisplayName())
		md.PlainText("")
		md.BulletList(recommendationsOrDefault(r)...)
		md.PlainText("")
	}

	if report.RecommendationCount() == 0 {
		md.PlainText("All principles passed without recommendations.")
		md.PlainText("")
	}
}

// writeDiagnostics writes performance, console, probe, and responsive data.
func (w *MarkdownWriter) writeDiagnostics(md *markdown.Markdown, report *model.Report) {
	if m := report.PerformanceMetrics; m != nil {
		md.H2("Performance Metrics")
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Phase", "Duration"},
			Rows: [][]string{
				{"DNS Lookup", strconv.FormatInt(m.DNSMillis, 10) + "ms"},
				{"TCP Connection", strconv.FormatInt(m.TCPMillis, 10) + "ms"},
				{"Request", strconv.FormatInt(m.RequestMillis, 10) + "ms"},
				{"Response", strconv.FormatInt(m.ResponseMillis, 10) + "ms"},
				{"DOM Load", strconv.FormatInt(m.DOMLoadMillis, 10) + "ms"},
				{"Full Load", strconv.FormatInt(m.FullLoadMillis, 10) + "ms"},
			},
		})
		md.PlainText("")
	}

	w.writeList(md, "Console Errors", report.ConsoleErrors)
	w.writeList(md, "Broken Links", report.BrokenLinks)
	w.writeList(md, "Broken Images", report.BrokenImages)
	w.writeList(md, "Responsive Issues", report.ResponsiveIssues)
}

// writeList writes one diagnostic section as a bullet list, skipping empty
// sections entirely.
func (w *MarkdownWriter) writeList(md *markdown.Markdown, title string, items []string) {
	if len(items) == 0 {
		return
	}

	md.H2(title)
	md.PlainText("")
	md.BulletList(truncateAll(items, 120)...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [uxscan](https://github.com/uxscan/uxscan)*")
}

// truncateAll truncates every string to maxLen characters with ellipsis.
func truncateAll(items []string, maxLen int) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = truncateString(s, maxLen)
	}
	return out
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
