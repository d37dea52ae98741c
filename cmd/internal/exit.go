package internal

import (
	"fmt"
	"os"
	"strings"
)

const (
	ExitError       = 1
	ExitNoCandidate = 2
)

// Fatal will Echo the message and os.Exit with ExitError.
func Fatal(msg string, args ...any) {
	FatalCode(ExitError, msg, args...)
}

// FatalCode will Echo the message and os.Exit with the given code.
func FatalCode(code int, msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(code)
}

// Echo will emit the given message to stderr without any logging formatting.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, msg, args...)
}
