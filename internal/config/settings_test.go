package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadSettings_Defaults(t *testing.T) {
	for _, k := range []string{"CALC_LOG_LEVEL", "CALC_LOG_FORMAT", "CALC_FORMAT", "CALC_OUTPUT_DIR", "CALC_METRICS_FILE", "CALC_START_YEAR"} {
		unsetEnv(t, k)
	}

	s, err := LoadSettings(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "console", s.LogFormat)
	assert.Equal(t, "console", s.Format)
	assert.Equal(t, ".", s.OutputDir)
	assert.Empty(t, s.MetricsFile)
	assert.Zero(t, s.StartYear)
}

func TestLoadSettings_Environment(t *testing.T) {
	t.Setenv("CALC_LOG_LEVEL", "debug")
	t.Setenv("CALC_FORMAT", "json")
	t.Setenv("CALC_START_YEAR", "2030")

	s, err := LoadSettings(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "json", s.Format)
	assert.Equal(t, 2030, s.StartYear)
}

func TestLoadSettings_EnvFile(t *testing.T) {
	unsetEnv(t, "CALC_OUTPUT_DIR")
	unsetEnv(t, "CALC_METRICS_FILE")
	t.Setenv("CALC_LOG_FORMAT", "json")

	path := filepath.Join(t.TempDir(), "calc.env")
	content := "CALC_OUTPUT_DIR=/tmp/reports\nCALC_METRICS_FILE=calc.prom\nCALC_LOG_FORMAT=console\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := LoadSettings(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/reports", s.OutputDir)
	assert.Equal(t, "calc.prom", s.MetricsFile)
	// The real environment wins over the file.
	assert.Equal(t, "json", s.LogFormat)
}

func TestLoadSettings_Errors(t *testing.T) {
	_, err := LoadSettings(NewViper(), filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load env file")

	t.Setenv("CALC_START_YEAR", "-1")
	_, err = LoadSettings(NewViper(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
