package main

import (
	"errors"
	"os"

	"github.com/saylorsolutions/cryptopals/cmd/internal"
	"github.com/saylorsolutions/cryptopals/pkg/codec"
	"github.com/saylorsolutions/cryptopals/pkg/xor"
)

var (
	version = "dev"
)

func main() {
	logger := internal.NewLogger("xortool")
	root := newRootCmd(os.Stdout, logger)
	if err := root.Execute(); err != nil {
		exit(err)
	}
}

func exit(err error) {
	switch {
	case errors.Is(err, errNoCandidates):
		internal.FatalCode(internal.ExitNoCandidate, "No candidate key found: %v", err)
	case isMalformed(err):
		internal.Fatal("Malformed input: %v", err)
	default:
		internal.Fatal("Error: %v", err)
	}
}

func isMalformed(err error) bool {
	return errors.Is(err, codec.ErrInvalidLength) ||
		errors.Is(err, codec.ErrInvalidCharacter) ||
		errors.Is(err, xor.ErrLengthMismatch)
}
