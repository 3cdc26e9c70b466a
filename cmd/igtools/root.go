// Package main provides the entry point for the ig-tools CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for igtools.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "igtools",
		Short: "Find Instagram accounts that do not follow back",
		Long: `igtools compares two pages of an Instagram data export, the followers
list and the followings list, and finds the accounts you follow that do
not follow you back. The detected profiles are opened in your default
browser in timed batches so you can review them one group at a time.

No network access is required: both inputs are local HTML files.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON for structured aggregation")

	// Add subcommands
	cmd.AddCommand(NewDetectCmd())
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
