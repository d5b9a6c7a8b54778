package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/uxscan/uxscan/internal/model"
)

// recordStep appends its name to a shared execution log.
type recordStep struct {
	name string
	log  *[]string
	err  error
}

func (s *recordStep) Name() string { return s.name }

func (s *recordStep) Do(_ context.Context, _ *model.Report) error {
	*s.log = append(*s.log, s.name)
	return s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("runs steps in order", func(t *testing.T) {
		t.Parallel()

		var log []string
		p := New(WithLogger(discardLogger()))
		p.AddSteps(
			&recordStep{name: "first", log: &log},
			&recordStep{name: "second", log: &log},
			&recordStep{name: "third", log: &log},
		)

		report := model.NewReport("https://example.com")
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("Execute() = %v", err)
		}

		want := []string{"first", "second", "third"}
		for i, name := range want {
			if log[i] != name {
				t.Errorf("execution order[%d] = %q, want %q", i, log[i], name)
			}
			if report.PerformedSteps[i] != name {
				t.Errorf("PerformedSteps[%d] = %q, want %q", i, report.PerformedSteps[i], name)
			}
		}
	})

	t.Run("stops on first error by default", func(t *testing.T) {
		t.Parallel()

		var log []string
		stepErr := errors.New("capture blew up")
		p := New(WithLogger(discardLogger()))
		p.AddSteps(
			&recordStep{name: "first", log: &log, err: stepErr},
			&recordStep{name: "second", log: &log},
		)

		report := model.NewReport("https://example.com")
		err := p.Execute(context.Background(), report)
		if !errors.Is(err, stepErr) {
			t.Fatalf("Execute() = %v, want the step error", err)
		}
		if len(log) != 1 {
			t.Errorf("executed steps = %v, want only the failing one", log)
		}
		if report.ErrorMessage != "capture blew up" {
			t.Errorf("ErrorMessage = %q, want the step error text", report.ErrorMessage)
		}
	})

	t.Run("continue-on-error runs every step", func(t *testing.T) {
		t.Parallel()

		var log []string
		p := New(WithLogger(discardLogger()), WithContinueOnError(true))
		p.AddSteps(
			&recordStep{name: "first", log: &log, err: errors.New("transient")},
			&recordStep{name: "second", log: &log},
		)

		report := model.NewReport("https://example.com")
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("Execute() = %v, want nil with continue-on-error", err)
		}
		if len(log) != 2 {
			t.Errorf("executed steps = %v, want both", log)
		}
		if report.Error == nil {
			t.Error("Error = nil, want the recorded step failure")
		}
	})

	t.Run("canceled context stops before the next step", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var log []string
		p := New(WithLogger(discardLogger()))
		p.AddStep(&recordStep{name: "never", log: &log})

		report := model.NewReport("https://example.com")
		err := p.Execute(ctx, report)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Execute() = %v, want context.Canceled", err)
		}
		if len(log) != 0 {
			t.Errorf("executed steps = %v, want none", log)
		}
		if report.ErrorMessage == "" {
			t.Error("ErrorMessage empty, want the cancellation recorded")
		}
	})

	t.Run("step bookkeeping", func(t *testing.T) {
		t.Parallel()

		var log []string
		p := New(WithLogger(discardLogger()))
		p.AddSteps(
			&recordStep{name: "capture", log: &log},
			&recordStep{name: "evaluate", log: &log},
		)

		if p.StepCount() != 2 {
			t.Errorf("StepCount() = %d, want 2", p.StepCount())
		}
		names := p.StepNames()
		if len(names) != 2 || names[0] != "capture" || names[1] != "evaluate" {
			t.Errorf("StepNames() = %v, want [capture evaluate]", names)
		}
	})
}
