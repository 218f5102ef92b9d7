package aoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"AOC_INPUT", "AOC_SESSION_FILE", "AOC_YEAR", "AOC_LOG_LEVEL", "AOC_BASE_URL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Input:       "input",
		SessionFile: filepath.Join(home, "keys", "aoc.session"),
		Year:        2024,
		LogLevel:    "info",
		BaseURL:     "https://adventofcode.com",
	}, c)
	assert.Equal(t, defaultConfig(), c)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("AOC_INPUT", "testdata/day06.txt")
	t.Setenv("AOC_SESSION_FILE", "/tmp/session")
	t.Setenv("AOC_YEAR", "2023")
	t.Setenv("AOC_LOG_LEVEL", "debug")
	t.Setenv("AOC_BASE_URL", "http://127.0.0.1:8080")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "testdata/day06.txt", c.Input)
	assert.Equal(t, "/tmp/session", c.SessionFile)
	assert.Equal(t, 2023, c.Year)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "http://127.0.0.1:8080", c.BaseURL)
}

func TestLoadConfig_BadYear(t *testing.T) {
	t.Setenv("AOC_YEAR", "next")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "parse env")
}
