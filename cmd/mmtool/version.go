// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mmcsr/internal/version"
)

func newVersionCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show mmtool build fingerprints",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mmtool %s\n", version.Pretty())
			if full {
				fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(version.GitCommit))
				fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(version.BuildDate))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "include commit and build date")

	return cmd
}

func valueOrUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}

	return s
}
