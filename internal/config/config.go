// SPDX-License-Identifier: MIT

// Package config loads the optional mmtool.toml settings file.
//
//	[spd]
//	factorizer = "native"   # or "gonum"
//
//	[log]
//	level = "warn"          # debug | info | warn | error
//	json  = false
//
//	[cli]
//	wait_for_key = true     # checkpd waits for Enter on a terminal
//
// Every key is optional; missing keys keep their Default values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/mmcsr/internal/logging"
	"github.com/katalvlaran/mmcsr/spd"
)

// FileName is the settings file Find looks for.
const FileName = "mmtool.toml"

// ErrInvalid indicates a settings file that parsed but holds a bad value.
var ErrInvalid = errors.New("config: invalid value")

// Config is the decoded settings file.
type Config struct {
	SPD SPDConfig `toml:"spd"`
	Log LogConfig `toml:"log"`
	CLI CLIConfig `toml:"cli"`
}

// SPDConfig selects the Cholesky backend.
type SPDConfig struct {
	Factorizer string `toml:"factorizer"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// CLIConfig holds interactive behavior switches.
type CLIConfig struct {
	WaitForKey bool `toml:"wait_for_key"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		SPD: SPDConfig{Factorizer: spd.NameNative},
		Log: LogConfig{Level: logging.LevelWarn.String()},
		CLI: CLIConfig{WaitForKey: true},
	}
}

// Load decodes path over Default. The empty path returns the defaults with
// found == false; a named file must exist.
// Errors: os.ErrNotExist and other read errors, TOML syntax errors (wrapped
// with path) and ErrInvalid.
func Load(path string) (cfg Config, found bool, err error) {
	cfg = Default()
	if path == "" {
		return cfg, false, nil
	}
	if _, err = toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, false, fmt.Errorf("config file: %w", err)
		}

		return Config{}, false, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, true, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, true, nil
}

// Validate checks the enumerated values.
func (c Config) Validate() error {
	if _, err := spd.FactorizerByName(strings.TrimSpace(c.SPD.Factorizer)); err != nil {
		return fmt.Errorf("[spd].factorizer %q: %w", c.SPD.Factorizer, ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("[log].level %q: %w", c.Log.Level, ErrInvalid)
	}

	return nil
}

// Factorizer returns the configured backend. Call after Validate.
func (c Config) Factorizer() spd.Factorizer {
	f, err := spd.FactorizerByName(strings.TrimSpace(c.SPD.Factorizer))
	if err != nil {
		return spd.Native{}
	}

	return f
}

// LogLevel returns the configured level, Warn when unset or invalid.
func (c Config) LogLevel() logging.Level {
	l, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logging.LevelWarn
	}

	return l
}

// Find walks from startDir up to the filesystem root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false, nil
}
