// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sequel-tui/sequel/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "sequel",
	Short: "Sequel - terminal UI for browsing GCP resources",
	Long: `Sequel is a terminal UI for browsing Google Cloud resources.

This build is the infrastructure phase: the interactive browser ships in
Phase 6. Running sequel without arguments prints the phase banner.`,
	Run: func(cmd *cobra.Command, _ []string) {
		// Fixed two-line banner, always exit 0.
		fmt.Fprintf(cmd.OutOrStdout(), "Sequel v%s - Infrastructure phase complete\n", version.GetVersion())
		fmt.Fprintln(cmd.OutOrStdout(), "Full application will be available after Phase 6")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetBuildInfo())
	},
}
