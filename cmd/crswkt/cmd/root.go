// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crswkt",
	Short: "Inspect OGC WKT coordinate reference system descriptions",
	Long: `crswkt reads coordinate reference system descriptions in OGC
well-known text format and prints their structure.

The parser tolerates real-world WKT: '#' comments anywhere, children in
non-canonical order and mixed bracket styles.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
	}

	return err
}

func init() {
	// color output only when talking to a terminal
	color.NoColor = color.NoColor ||
		!(isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))
}
