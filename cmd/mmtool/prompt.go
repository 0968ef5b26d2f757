// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Interactive prompts.
const (
	promptInput      = "input MATRIX file name: "
	promptOutput     = "output MATRIX file name: "
	promptCheckInput = "file name: "
	promptEnd        = "press to end"
)

var errNoInput = errors.New("no file name given")

// ask prints label and returns the next non-empty line of stdin.
func (a *app) ask(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)
	line, err := a.reader(cmd).ReadString('\n')
	line = strings.TrimSpace(line)
	if line != "" {
		return line, nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	return "", errNoInput
}

// argOrAsk returns args[i] when present, otherwise prompts with label.
func (a *app) argOrAsk(cmd *cobra.Command, args []string, i int, label string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}

	return a.ask(cmd, label)
}

// waitForKey blocks until Enter when stdin is an interactive terminal.
func (a *app) waitForKey(cmd *cobra.Command) {
	if !a.cfg.CLI.WaitForKey || !isTerminal(cmd.InOrStdin()) {
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), promptEnd)
	_, _ = a.reader(cmd).ReadString('\n')
}

// isTerminal reports whether r is a console file.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
