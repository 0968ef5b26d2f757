// SPDX-License-Identifier: MIT
package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mmcsr/mmio"
	"github.com/katalvlaran/mmcsr/spd"
)

// Verdict lines printed by checkpd.
const (
	verdictPD    = "Positive Definite"
	verdictNotPD = "Not Positive Definite"
)

var (
	pdColor    = color.New(color.FgGreen, color.Bold)
	notPDColor = color.New(color.FgRed, color.Bold)
)

func newCheckPDCmd(a *app) *cobra.Command {
	var noWait bool

	cmd := &cobra.Command{
		Use:   "checkpd [input.mtx]",
		Short: "Report whether a matrix is positive definite",
		Long: `Checkpd reads a Matrix Market file and prints "Positive Definite" or
"Not Positive Definite". A malformed file is an error, not a verdict.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.argOrAsk(cmd, args, 0, promptCheckInput)
			if err != nil {
				return err
			}
			m, _, err := mmio.ReadFile(in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if spd.IsPositiveDefinite(m, spd.WithFactorizer(a.cfg.Factorizer()), spd.WithLogger(a.log)) {
				pdColor.Fprintln(out, verdictPD)
			} else {
				notPDColor.Fprintln(out, verdictNotPD)
			}

			if !noWait {
				a.waitForKey(cmd)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&noWait, "no-wait", false, "do not wait for Enter after the verdict")

	return cmd
}
