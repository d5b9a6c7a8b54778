package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/uxscan/uxscan/internal/capture"
	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/database"
	"github.com/uxscan/uxscan/internal/log"
	"github.com/uxscan/uxscan/internal/model"
	"github.com/uxscan/uxscan/internal/pipeline"
	"github.com/uxscan/uxscan/internal/report"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [url]",
		Short: "Audit a website's UI/UX quality",
		Long: `Audit loads a web page and scores it against ten usability principles:
Simplicity, User-Centered Design, Visibility, Consistency, Feedback,
Clarity, Accessibility, Usability, Efficiency, and Delight.

Each principle is scored 0-100 with concrete recommendations for every
failed check. The page is rendered with headless Chrome so computed
styles, navigation timing, and console errors are measured; --static
falls back to a plain HTTP fetch.

Examples:
  # Audit a page and print the text report
  uxscan audit https://example.com

  # Export the results as JSON
  uxscan audit --export --output report.json https://example.com

  # Render the report as Markdown
  uxscan audit --markdown https://example.com

  # Audit without a browser (static HTML only)
  uxscan audit --static https://example.com

  # Use a custom configuration file
  uxscan audit -c myconfig.yml https://example.com`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAuditCmd,
	}

	cmd.Flags().StringP("url", "u", "",
		"URL to audit (alternative to the positional argument)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Navigation timeout for the page capture")
	cmd.Flags().Bool("static", false,
		"Fetch the page with plain HTTP instead of a headless browser")

	// Report flags
	cmd.Flags().BoolP("export", "e", false,
		"Export the report as JSON")
	cmd.Flags().StringP("output", "o", config.DefaultExportFile,
		"JSON export file path (used with --export)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Render the report as Markdown instead of text")
	cmd.Flags().StringP("report-file", "r", "",
		"Write the rendered report to a file instead of stdout")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .uxscan.yml in current or XDG config directory)")

	cmd.Flags().Bool("no-save", false,
		"Do not archive the report in the local database")

	return cmd
}

// runAuditCmd executes the audit command.
func runAuditCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if cfg.TargetURL == "" {
		cfg.TargetURL = promptForURL(cmd)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	verbose := getVerboseFlag(cmd)
	logger := log.NewLogger(os.Stderr, verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runAudit(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// promptForURL asks interactively for a target URL when none was given.
func promptForURL(cmd *cobra.Command) string {
	fmt.Fprint(cmd.OutOrStdout(), "Enter website URL to audit: ")
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Overlay the config file before flags so flags win.
	// If the user explicitly named a file, its absence is fatal; an
	// absent default file just means defaults apply.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		if err := config.Load(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	cfg.TargetURL, err = cmd.Flags().GetString("url")
	if err != nil {
		return nil, err
	}
	if cfg.TargetURL == "" && len(args) > 0 {
		cfg.TargetURL = args[0]
	}

	cfg.Capture.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.StaticCapture, err = cmd.Flags().GetBool("static")
	if err != nil {
		return nil, err
	}

	cfg.ExportEnabled, err = cmd.Flags().GetBool("export")
	if err != nil {
		return nil, err
	}

	cfg.ExportPath, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("report-file")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave
	cfg.DBDir = config.XDGDataDir()

	return cfg, nil
}

// runAudit executes the audit end to end: capture, probe, score, render,
// export, archive.
func runAudit(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting audit",
		"url", cfg.TargetURL,
		"static", cfg.StaticCapture,
		"saveToDB", cfg.SaveToDB,
	)

	var db *database.AuditDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close() //nolint:errcheck // read-mostly handle
		logger.Info("database opened", "dir", cfg.DBDir)
	}

	var capturer capture.Capturer
	if cfg.StaticCapture {
		capturer = capture.NewStaticCapturer(cfg, logger)
	} else {
		capturer = capture.NewBrowserCapturer(cfg, logger)
	}

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewCaptureStep(capturer),
		pipeline.NewProbeStep(capture.NewProber(cfg, logger), logger),
		pipeline.NewEvaluateStep(cfg),
	)
	if db != nil {
		p.AddStep(pipeline.NewPersistStep(db))
	}

	auditReport := model.NewReport(cfg.TargetURL)

	fmt.Printf("Auditing %s...\n", cfg.TargetURL)
	startTime := time.Now()

	pipelineErr := p.Execute(ctx, auditReport)
	if pipelineErr != nil {
		logger.Error("audit failed", "url", cfg.TargetURL, "error", pipelineErr)
	} else {
		fmt.Printf("Audit completed in %s\n", time.Since(startTime).Round(time.Millisecond))
	}

	// Render whatever we have, even for a failed run: the report carries
	// the error status and any partial diagnostics.
	if err := outputReport(cfg, auditReport); err != nil {
		logger.Error("report output failed", "url", cfg.TargetURL, "error", err)
		if pipelineErr == nil {
			return err
		}
	}

	if pipelineErr == nil && cfg.ExportEnabled {
		if err := report.ExportJSON(auditReport, cfg.ExportPath, cfg.Export); err != nil {
			// Export failure does not invalidate the finished audit.
			logger.Error("JSON export failed", "path", cfg.ExportPath, "error", err)
			fmt.Fprintf(os.Stderr, "Warning: JSON export failed: %v\n", err)
		} else {
			fmt.Printf("Report exported to %s\n", cfg.ExportPath)
		}
	}

	return pipelineErr
}

// outputReport renders the audit report in the requested format.
func outputReport(cfg *config.Config, auditReport *model.Report) error {
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close() //nolint:errcheck // flushed by writer
		output = f
	} else {
		output = os.Stdout
	}

	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(auditReport)
		return err
	}

	writer := report.NewTextWriter(output)
	_, err := writer.Write(auditReport)
	return err
}
