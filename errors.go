package gtp

import (
	"errors"
	"fmt"
)

// Errors of the line parser. Every parse either returns a complete
// RawCommand or exactly one of these, never both.
var (
	// ErrNoWhitespace reports a missing mandatory whitespace separator,
	// i.e. a leading count that is not followed by whitespace. End of
	// input counts as missing whitespace.
	ErrNoWhitespace = errors.New("missing whitespace separator")

	// ErrNoCommand reports a line without a single identifier token,
	// e.g. an empty line.
	ErrNoCommand = errors.New("no command name")
)

// PatternError reports that one of the fixed lexical patterns failed to
// compile. All lexing primitives depend on the pattern engine, so a
// failure shows up on every parse.
type PatternError struct {
	Pattern string
	err     error
}

func (e PatternError) Error() string {
	return fmt.Sprintf("lex pattern '%s': %s", e.Pattern, e.err)
}

func (e PatternError) Unwrap() error { return e.err }
