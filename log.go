package aoc

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func initLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(lvl)
}

// exitFunc is what Die exits through.
var exitFunc = os.Exit

// SwapExit makes Die call f instead of os.Exit and returns the function
// it replaced. Callers of Die assume it never returns, so f must
// panic or exit.
func SwapExit(f func(status int)) (prev func(status int)) {
	prev, exitFunc = exitFunc, f
	return prev
}

// Die logs the formatted message and exits with status.
func Die(status int, format string, args ...any) {
	log.Error().Msgf(format, args...)
	exitFunc(status)
}
