package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/uxscan/uxscan/internal/model"
)

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("renders the report sections", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatalf("Write() = %v", err)
		}
		out := buf.String()

		for _, want := range []string{
			"# UX Audit Report",
			"`https://example.com`",
			"✅ Complete",
			"## Scores",
			"Simplicity",
			"**Overall**",
			"Total score: 240 / 1000",
			"```mermaid",
			"Principle Grade Distribution",
			"## Top Recommendations",
			"Shorten the page title",
			"## Performance Metrics",
			"## Broken Links",
			"## Responsive Issues",
			"[uxscan](https://github.com/uxscan/uxscan)",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q", want)
			}
		}
	})

	t.Run("grade labels are title-cased", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatal(err)
		}
		out := buf.String()

		if !strings.Contains(out, "Needs Improvement") {
			t.Error("output missing the title-cased grade label")
		}
		if strings.Contains(out, "| NEEDS IMPROVEMENT") {
			t.Error("score table contains an uppercase grade band")
		}
	})

	t.Run("passed principles are skipped in the detail section", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatal(err)
		}

		if strings.Contains(buf.String(), "### Simplicity") {
			t.Error("detail section contains a passed principle")
		}
	})

	t.Run("failed run renders only the error status", func(t *testing.T) {
		t.Parallel()

		report := model.NewReport("https://example.com")
		report.ErrorMessage = "navigation failed"

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
			t.Fatal(err)
		}
		out := buf.String()

		if !strings.Contains(out, "❌ Error - navigation failed") {
			t.Error("error status missing from the header table")
		}
		for _, fabricated := range []string{
			"## Scores",
			"Total score",
			"Every principle passed",
		} {
			if strings.Contains(out, fabricated) {
				t.Errorf("failed run output contains %q, want the error frame only", fabricated)
			}
		}
	})
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "short string untouched", input: "hello", maxLen: 10, want: "hello"},
		{name: "exact length untouched", input: "hello", maxLen: 5, want: "hello"},
		{name: "long string gets ellipsis", input: "hello world", maxLen: 8, want: "hello..."},
		{name: "tiny limit hard-cuts", input: "hello", maxLen: 2, want: "he"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := truncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}
