package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))

	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, slog.LevelDebug, ParseLevel(""))
}

func TestSetup(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := Setup(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown", "kind", "bill_too_large")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "kind=bill_too_large")
	assert.Same(t, logger, slog.Default())
}

func TestSetupFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "tipcalc.log")
	logger, f, err := SetupFile(path, "info")
	require.NoError(t, err)

	logger.Info("Form reset")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Form reset")
}

func TestSetupFile_BadPath(t *testing.T) {
	_, _, err := SetupFile(filepath.Join(t.TempDir(), "missing", "x.log"), "info")
	assert.Error(t, err)
}
