// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mmcsr/mmio"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <input.mtx>...",
		Short: "Print the metadata tuple of Matrix Market files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range args {
				info, err := mmio.ReadInfoFile(p)
				if err != nil {
					return err
				}
				a.log.Debug("read header", "path", p, "entries", info.Entries)
				if len(args) > 1 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", p, info)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), info)
				}
			}

			return nil
		},
	}
}
