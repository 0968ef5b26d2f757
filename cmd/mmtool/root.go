// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/mmcsr/internal/config"
	"github.com/katalvlaran/mmcsr/internal/logging"
	"github.com/katalvlaran/mmcsr/internal/version"
)

// app is the per-invocation state shared by the subcommands.
type app struct {
	configPath string
	factorizer string
	colorMode  string
	verbose    bool

	cfg config.Config
	log *slog.Logger
	in  *bufio.Reader
}

// newRootCmd builds a fresh command tree; tests call it once per run.
func newRootCmd() *cobra.Command {
	a := &app{log: logging.Discard()}

	root := &cobra.Command{
		Use:          "mmtool",
		Short:        "Matrix Market to CSR converter and SPD checker",
		Long:         `mmtool converts Matrix Market (.mtx) files into CSR text documents and tests matrices for positive definiteness.`,
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "settings file (default: nearest "+config.FileName+")")
	root.PersistentFlags().StringVar(&a.factorizer, "factorizer", "", "Cholesky backend (native|gonum), overrides [spd].factorizer")
	root.PersistentFlags().StringVar(&a.colorMode, "color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug records to stderr")

	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newCheckPDCmd(a))
	root.AddCommand(newInfoCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// setup loads settings, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		found, ok, err := config.Find(".")
		if err != nil {
			return err
		}
		if ok {
			path = found
		}
	}
	cfg, _, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("factorizer") {
		cfg.SPD.Factorizer = a.factorizer
	}
	if a.verbose {
		cfg.Log.Level = logging.LevelDebug.String()
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if err = applyColorMode(a.colorMode, cmd.OutOrStdout()); err != nil {
		return err
	}

	a.log = logging.New(logging.Config{
		Level:  cfg.LogLevel(),
		JSON:   cfg.Log.JSON,
		Output: cmd.ErrOrStderr(),
	})
	a.log.Debug("settings loaded", "path", path, "factorizer", cfg.SPD.Factorizer)

	return nil
}

// applyColorMode sets the fatih/color global switch. In auto mode color is
// enabled only when out is a terminal.
func applyColorMode(mode string, out io.Writer) error {
	switch strings.ToLower(mode) {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto", "":
		f, ok := out.(*os.File)
		color.NoColor = !ok || !term.IsTerminal(int(f.Fd()))
	default:
		return fmt.Errorf("unsupported color mode %q (must be auto, on or off)", mode)
	}

	return nil
}

// reader returns the shared buffered stdin of cmd.
func (a *app) reader(cmd *cobra.Command) *bufio.Reader {
	if a.in == nil {
		a.in = bufio.NewReader(cmd.InOrStdin())
	}

	return a.in
}
