package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string

	// exportOptions selects the optional blocks of the export document.
	exportOptions config.ExportOptions
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// WithExportOptions selects which optional blocks appear in the export.
func WithExportOptions(opts config.ExportOptions) JSONWriterOption {
	return func(w *JSONWriter) {
		w.exportOptions = opts
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
// All optional export blocks are included unless WithExportOptions says
// otherwise.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
		exportOptions: config.ExportOptions{
			IncludePerformanceMetrics: true,
			IncludeMetaTags:           true,
			IncludeConsoleErrors:      true,
			IncludeRecommendations:    true,
		},
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report as a JSON export document.
func (w *JSONWriter) Write(report *model.Report) (int, error) {
	return w.writeJSON(NewExportDocument(report, w.exportOptions))
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// ExportDocument is the JSON export shape. The scoring blocks are always
// present; the diagnostic blocks are included or dropped according to the
// configured export options.
//
// Design decision: We wrap the report rather than marshaling model.Report
// directly because the toggles are an output concern. Keeping them here
// means the core data structure carries no presentation flags.
type ExportDocument struct {
	// URL is the audited page address.
	URL string `json:"url"`

	// AuditedAt is when the audit ran, RFC 3339.
	AuditedAt time.Time `json:"audited_at"`

	// Principles are the ten per-principle results in evaluation order.
	Principles []model.PrincipleResult `json:"principles"`

	// OverallAverage is the unweighted mean of the ten scores.
	OverallAverage float64 `json:"overall_average"`

	// TotalScore is the rounded sum of the ten scores.
	TotalScore int `json:"total_score"`

	// OverallGrade is the qualitative band of the overall average.
	OverallGrade model.Grade `json:"overall_grade"`

	// RankedRecommendations is the truncated recommendation list.
	RankedRecommendations []string `json:"ranked_recommendations,omitempty"`

	// LoadTimeMillis is the measured page load time.
	LoadTimeMillis int64 `json:"load_time_ms,omitempty"`

	// PerformanceMetrics is the navigation timing breakdown.
	PerformanceMetrics *model.NavigationTiming `json:"performance_metrics,omitempty"`

	// MetaTags are the page's meta tags.
	MetaTags map[string]string `json:"meta_tags,omitempty"`

	// ConsoleErrors are the browser console error messages.
	ConsoleErrors []string `json:"console_errors,omitempty"`

	// BrokenLinks are link targets that failed the HTTP probe.
	BrokenLinks []string `json:"broken_links,omitempty"`

	// BrokenImages are image sources that failed the HTTP probe.
	BrokenImages []string `json:"broken_images,omitempty"`

	// ResponsiveIssues are the horizontal-scroll findings per viewport.
	ResponsiveIssues []string `json:"responsive_issues,omitempty"`

	// ErrorMessage carries the audit failure, if any.
	ErrorMessage string `json:"error,omitempty"`
}

// NewExportDocument builds the export document from a finished report,
// applying the export option toggles.
func NewExportDocument(report *model.Report, opts config.ExportOptions) *ExportDocument {
	doc := &ExportDocument{
		URL:              report.URL,
		AuditedAt:        report.AuditedAt,
		Principles:       report.Results,
		OverallAverage:   report.OverallAverage,
		TotalScore:       report.TotalScore,
		OverallGrade:     report.OverallGrade,
		BrokenLinks:      report.BrokenLinks,
		BrokenImages:     report.BrokenImages,
		ResponsiveIssues: report.ResponsiveIssues,
		ErrorMessage:     report.ErrorMessage,
	}

	if opts.IncludeRecommendations {
		doc.RankedRecommendations = report.RankedRecommendations
	}
	if opts.IncludePerformanceMetrics {
		doc.LoadTimeMillis = report.LoadTimeMillis
		doc.PerformanceMetrics = report.PerformanceMetrics
	}
	if opts.IncludeMetaTags {
		doc.MetaTags = report.MetaTags
	}
	if opts.IncludeConsoleErrors {
		doc.ConsoleErrors = report.ConsoleErrors
	}

	return doc
}

// ExportJSON writes the report's JSON export document to path, creating or
// overwriting the file. An export failure never invalidates the audit run;
// the caller decides how loudly to report it.
func ExportJSON(report *model.Report, path string, opts config.ExportOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close() //nolint:errcheck // close error is checked below

	w := NewJSONWriter(f, WithPrettyPrint(), WithExportOptions(opts))
	if _, err := w.Write(report); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}
