package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for uxscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uxscan",
		Short: "UI/UX auditing tool for websites",
		Long: `uxscan audits the UI/UX quality of a website. It loads the page in a
headless browser, captures structure, styling, accessibility, and timing
signals, and scores them against ten usability principles.

By default, uxscan renders the page with headless Chrome. Use --static
to fall back to a plain HTTP fetch without JavaScript execution.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAuditCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
