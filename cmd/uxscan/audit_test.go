package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/uxscan/uxscan/internal/config"
)

// TestNewAuditCmd tests the audit command creation.
func TestNewAuditCmd(t *testing.T) {
	t.Parallel()

	cmd := NewAuditCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "audit [url]" {
			t.Errorf("expected use 'audit [url]', got %q", cmd.Use)
		}
	})

	t.Run("has expected flags", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{
			"url", "timeout", "static", "export", "output",
			"markdown", "report-file", "config", "no-save",
		} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %q flag", name)
			}
		}
	})

	t.Run("timeout default", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("timeout")
		if flag == nil {
			t.Fatal("expected timeout flag")
		}
		if flag.DefValue != config.DefaultTimeout.String() {
			t.Errorf("expected default %q, got %q", config.DefaultTimeout, flag.DefValue)
		}
	})
}

// TestBuildConfig tests the flag-to-config mapping.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("positional argument becomes the target", func(t *testing.T) {
		t.Parallel()

		cmd := NewAuditCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("buildConfig() = %v", err)
		}
		if cfg.TargetURL != "https://example.com" {
			t.Errorf("TargetURL = %q, want the positional argument", cfg.TargetURL)
		}
		if !cfg.SaveToDB {
			t.Error("SaveToDB = false, want true by default")
		}
	})

	t.Run("url flag wins over the positional argument", func(t *testing.T) {
		t.Parallel()

		cmd := NewAuditCmd()
		if err := cmd.ParseFlags([]string{"--url", "https://flagged.example"}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"https://positional.example"})
		if err != nil {
			t.Fatalf("buildConfig() = %v", err)
		}
		if cfg.TargetURL != "https://flagged.example" {
			t.Errorf("TargetURL = %q, want the flag value", cfg.TargetURL)
		}
	})

	t.Run("flags map onto the config", func(t *testing.T) {
		t.Parallel()

		cmd := NewAuditCmd()
		err := cmd.ParseFlags([]string{
			"--timeout", "5s",
			"--static",
			"--export",
			"--output", "out.json",
			"--markdown",
			"--no-save",
		})
		if err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("buildConfig() = %v", err)
		}

		if cfg.Capture.Timeout != 5*time.Second {
			t.Errorf("Timeout = %v, want 5s", cfg.Capture.Timeout)
		}
		if !cfg.StaticCapture {
			t.Error("StaticCapture = false, want true")
		}
		if !cfg.ExportEnabled || cfg.ExportPath != "out.json" {
			t.Errorf("export = %v/%q, want enabled with out.json", cfg.ExportEnabled, cfg.ExportPath)
		}
		if !cfg.MarkdownReport {
			t.Error("MarkdownReport = false, want true")
		}
		if cfg.SaveToDB {
			t.Error("SaveToDB = true, want false with --no-save")
		}
	})

	t.Run("config file values are overridden by flags", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "uxscan.yml")
		content := "top_recommendations: 3\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewAuditCmd()
		if err := cmd.ParseFlags([]string{"-c", path, "--timeout", "7s"}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("buildConfig() = %v", err)
		}

		if cfg.TopRecommendations != 3 {
			t.Errorf("TopRecommendations = %d, want 3 from the file", cfg.TopRecommendations)
		}
		if cfg.Capture.Timeout != 7*time.Second {
			t.Errorf("Timeout = %v, want the flag to win over the file", cfg.Capture.Timeout)
		}
	})

	t.Run("missing explicit config file is fatal", func(t *testing.T) {
		t.Parallel()

		cmd := NewAuditCmd()
		missing := filepath.Join(t.TempDir(), "absent.yml")
		if err := cmd.ParseFlags([]string{"-c", missing}); err != nil {
			t.Fatal(err)
		}

		_, err := buildConfig(cmd, nil)
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("buildConfig() = %v, want ErrConfigNotFound", err)
		}
	})
}

// TestPromptForURL tests the interactive URL prompt.
func TestPromptForURL(t *testing.T) {
	t.Parallel()

	t.Run("reads and trims the entered URL", func(t *testing.T) {
		t.Parallel()

		cmd := NewAuditCmd()
		cmd.SetIn(strings.NewReader("  https://example.com  \n"))
		var out strings.Builder
		cmd.SetOut(&out)

		if got := promptForURL(cmd); got != "https://example.com" {
			t.Errorf("promptForURL() = %q, want the trimmed URL", got)
		}
		if !strings.Contains(out.String(), "Enter website URL to audit:") {
			t.Errorf("prompt text missing: %q", out.String())
		}
	})

	t.Run("empty input returns empty", func(t *testing.T) {
		t.Parallel()

		cmd := NewAuditCmd()
		cmd.SetIn(strings.NewReader(""))
		cmd.SetOut(&strings.Builder{})

		if got := promptForURL(cmd); got != "" {
			t.Errorf("promptForURL() = %q, want empty", got)
		}
	})
}
