package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/database"
	"github.com/uxscan/uxscan/internal/model"
	"github.com/uxscan/uxscan/internal/report"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived audit reports",
		Long: `History lists the audit reports archived in the local database, newest
first. Use "history show <id>" to render one archived report in full.

Examples:
  # List the last 20 archived reports
  uxscan history

  # List more rows
  uxscan history --limit 50

  # Render one archived report
  uxscan history show 12`,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of reports to list")

	cmd.AddCommand(NewHistoryShowCmd())

	return cmd
}

// runHistoryCmd lists archived reports.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	db, err := database.Open(config.XDGDataDir(), database.Options{
		CreateIfNotExists: false,
		EnableWAL:         true,
	})
	if err != nil {
		return fmt.Errorf("no audit archive found (run an audit first): %w", err)
	}
	defer db.Close() //nolint:errcheck // read-only session

	rows, err := db.ListReports(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No archived reports.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tSCORE\tGRADE\tURL")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%.1f\t%s\t%s\n",
			r.ID,
			r.AuditedAt.Format("2006-01-02 15:04"),
			r.OverallAverage,
			r.OverallGrade,
			r.URL,
		)
	}
	return w.Flush()
}

// NewHistoryShowCmd creates the "history show" subcommand.
func NewHistoryShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Render one archived audit report",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShowCmd,
	}

	cmd.Flags().BoolP("markdown", "m", false,
		"Render the report as Markdown instead of text")

	return cmd
}

// runHistoryShowCmd renders one archived report by row ID.
func runHistoryShowCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid report id %q: %w", args[0], err)
	}

	markdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	db, err := database.Open(config.XDGDataDir(), database.Options{
		CreateIfNotExists: false,
		EnableWAL:         true,
	})
	if err != nil {
		return fmt.Errorf("no audit archive found (run an audit first): %w", err)
	}
	defer db.Close() //nolint:errcheck // read-only session

	archived, err := db.GetReport(cmd.Context(), id)
	if err != nil {
		return err
	}

	return renderArchived(cmd.OutOrStdout(), archived, markdown)
}

// renderArchived renders one archived report to the command's output.
func renderArchived(w io.Writer, archived *model.Report, markdown bool) error {
	if markdown {
		_, err := report.NewMarkdownWriter(w).Write(archived)
		return err
	}
	_, err := report.NewTextWriter(w).Write(archived)
	return err
}
