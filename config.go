package aoc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config is the runner configuration. Flags parsed by Main take
// precedence over the environment.
type Config struct {
	Input       string `env:"AOC_INPUT" envDefault:"input"`
	SessionFile string `env:"AOC_SESSION_FILE"`
	Year        int    `env:"AOC_YEAR" envDefault:"2024"`
	LogLevel    string `env:"AOC_LOG_LEVEL" envDefault:"info"`
	BaseURL     string `env:"AOC_BASE_URL" envDefault:"https://adventofcode.com"`
}

func defaultConfig() Config {
	return Config{
		Input:       "input",
		SessionFile: defaultSessionFile(),
		Year:        2024,
		LogLevel:    "info",
		BaseURL:     "https://adventofcode.com",
	}
}

func defaultSessionFile() string {
	return filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if c.SessionFile == "" {
		c.SessionFile = defaultSessionFile()
	}
	return c, nil
}
