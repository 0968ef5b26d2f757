// SPDX-License-Identifier: MIT
package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mmcsr/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want logging.Level
	}{
		{"debug", logging.LevelDebug},
		{"INFO", logging.LevelInfo},
		{" warn ", logging.LevelWarn},
		{"warning", logging.LevelWarn},
		{"Error", logging.LevelError},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := logging.ParseLevel(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := logging.ParseLevel("loud")
	require.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "debug", logging.LevelDebug.String())
	require.Equal(t, "error", logging.LevelError.String())
	require.Equal(t, "unknown", logging.Level(42).String())
	require.Equal(t, "unknown", logging.Level(-1).String())
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: logging.LevelWarn, Output: &buf})
	log.Info("hidden")
	log.Warn("shown", "k", 1)

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=shown")
	require.Contains(t, buf.String(), "k=1")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: logging.LevelDebug, JSON: true, Output: &buf})
	log.Debug("converted", "rows", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "converted", rec["msg"])
	require.Equal(t, "DEBUG", rec["level"])
	require.EqualValues(t, 3, rec["rows"])
}

func TestDiscard(t *testing.T) {
	log := logging.Discard()
	require.NotNil(t, log)
	log.Error("dropped")
}
