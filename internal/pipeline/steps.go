package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/uxscan/uxscan/internal/capture"
	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/database"
	"github.com/uxscan/uxscan/internal/heuristic"
	"github.com/uxscan/uxscan/internal/model"
)

// ErrNoSnapshot is returned by steps that need a captured snapshot when
// the capture step has not run or failed.
var ErrNoSnapshot = errors.New("pipeline: no page snapshot captured")

// CaptureStep loads the target page and attaches its snapshot to the
// report. It must run first; every later step consumes the snapshot.
type CaptureStep struct {
	capturer capture.Capturer
}

// NewCaptureStep creates a CaptureStep using the given capturer.
func NewCaptureStep(capturer capture.Capturer) *CaptureStep {
	return &CaptureStep{capturer: capturer}
}

// Name returns the step name.
func (s *CaptureStep) Name() string { return "capture" }

// Do captures the page snapshot.
func (s *CaptureStep) Do(ctx context.Context, report *model.Report) error {
	snap, err := s.capturer.Capture(ctx, report.URL)
	if err != nil {
		return fmt.Errorf("capture %s: %w", report.URL, err)
	}
	report.Snapshot = snap
	return nil
}

// ProbeStep checks the captured link and image URLs for broken targets.
//
// Probe failures never abort the run: a page score is still meaningful
// without broken-resource data, so errors are logged and swallowed.
type ProbeStep struct {
	prober *capture.Prober
	logger *slog.Logger
}

// NewProbeStep creates a ProbeStep.
func NewProbeStep(prober *capture.Prober, logger *slog.Logger) *ProbeStep {
	return &ProbeStep{prober: prober, logger: logger}
}

// Name returns the step name.
func (s *ProbeStep) Name() string { return "probe" }

// Do probes the snapshot's resources and records the broken ones.
func (s *ProbeStep) Do(ctx context.Context, report *model.Report) error {
	if report.Snapshot == nil {
		return ErrNoSnapshot
	}

	result, err := s.prober.Probe(ctx, report.Snapshot)
	if err != nil {
		// Context cancellation must still stop the pipeline.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		s.logger.Warn("resource probe failed", "url", report.URL, "error", err)
		return nil
	}

	report.BrokenLinks = result.BrokenLinks
	report.BrokenImages = result.BrokenImages
	return nil
}

// EvaluateStep scores the captured snapshot against the ten principles
// and merges the results into the report.
type EvaluateStep struct {
	cfg *config.Config
}

// NewEvaluateStep creates an EvaluateStep.
func NewEvaluateStep(cfg *config.Config) *EvaluateStep {
	return &EvaluateStep{cfg: cfg}
}

// Name returns the step name.
func (s *EvaluateStep) Name() string { return "evaluate" }

// Do scores the snapshot. The aggregator builds a fresh report value; its
// scoring and diagnostic fields are merged into the pipeline's report,
// which keeps its own timestamp, step history, and probe results.
func (s *EvaluateStep) Do(_ context.Context, report *model.Report) error {
	if report.Snapshot == nil {
		return ErrNoSnapshot
	}

	scored := heuristic.Aggregate(report.URL, report.Snapshot, s.cfg)

	report.Results = scored.Results
	report.OverallAverage = scored.OverallAverage
	report.TotalScore = scored.TotalScore
	report.OverallGrade = scored.OverallGrade
	report.RankedRecommendations = scored.RankedRecommendations
	report.LoadTimeMillis = scored.LoadTimeMillis
	report.PerformanceMetrics = scored.PerformanceMetrics
	report.MetaTags = scored.MetaTags
	report.ConsoleErrors = scored.ConsoleErrors
	report.ResponsiveIssues = scored.ResponsiveIssues

	return nil
}

// PersistStep archives the finished report in the SQLite store.
type PersistStep struct {
	db *database.AuditDB
}

// NewPersistStep creates a PersistStep.
func NewPersistStep(db *database.AuditDB) *PersistStep {
	return &PersistStep{db: db}
}

// Name returns the step name.
func (s *PersistStep) Name() string { return "persist" }

// Do saves the report.
func (s *PersistStep) Do(ctx context.Context, report *model.Report) error {
	if err := s.db.SaveReport(ctx, report); err != nil {
		return fmt.Errorf("persist report: %w", err)
	}
	return nil
}
