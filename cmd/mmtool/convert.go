// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mmcsr/csrtext"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [input.mtx] [output.csr]",
		Short: "Convert a Matrix Market file to a CSR text document",
		Long: `Convert reads a Matrix Market file and writes the CSR text document.
Missing paths are asked for on stdin. The output appears only when the
conversion succeeds.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.argOrAsk(cmd, args, 0, promptInput)
			if err != nil {
				return fmt.Errorf("input: %w", err)
			}
			out, err := a.argOrAsk(cmd, args, 1, promptOutput)
			if err != nil {
				return fmt.Errorf("output: %w", err)
			}

			return csrtext.ConvertFile(in, out, csrtext.WithLogger(a.log))
		},
	}
}
