package internal

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// NewLogger creates a diagnostic logger writing to stderr at info level.
func NewLogger(name string) hclog.Logger {
	return newLogger(name, os.Stderr)
}

func newLogger(name string, out io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  hclog.Info,
		Output: out,
	})
}

// SetLogLevel applies a named level, such as "debug" or "warn", to logger.
// Unrecognized names leave the level unchanged and return false.
func SetLogLevel(logger hclog.Logger, level string) bool {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		return false
	}
	logger.SetLevel(lvl)
	return true
}
