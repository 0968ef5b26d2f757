// SPDX-License-Identifier: MIT

// Command mmtool converts Matrix Market files to CSR text documents and checks
// matrices for positive definiteness.
//
//	mmtool convert [input.mtx] [output.csr]
//	mmtool checkpd [input.mtx]
//	mmtool info <input.mtx>...
//	mmtool version
package main

import (
	"os"
)

// main executes the root command; any returned error exits with status 1.
// cobra has already printed "Error: ..." to stderr at that point.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
