package gtp

import (
	"slices"
	"strconv"
	"strings"
)

// RawCommand is the untyped result of parsing one protocol line: the
// optional count, the command name and the arguments in their original
// order. Name is never empty when a parse succeeds.
type RawCommand struct {
	// Count is the optional id of the command, valid only if HasCount.
	Count    uint32
	HasCount bool

	// Name of the command itself.
	Name string

	// Zero or more arguments for the command.
	Args []string
}

// FromRawCommand makes RawCommand its own degenerate conversion target,
// so Parse[RawCommand] returns the parse result as is.
func (c RawCommand) FromRawCommand(raw RawCommand) RawCommand { return raw }

// String returns the canonical protocol line of c. Parsing that line
// again yields a command equal to c.
func (c RawCommand) String() string {
	var sb strings.Builder
	if c.HasCount {
		sb.WriteString(strconv.FormatUint(uint64(c.Count), 10))
		sb.WriteByte(' ')
	}
	sb.WriteString(c.Name)
	for _, arg := range c.Args {
		sb.WriteByte(' ')
		sb.WriteString(arg)
	}
	return sb.String()
}

// Equal compares c and d by value, including argument order.
func (c RawCommand) Equal(d RawCommand) bool {
	if c.HasCount != d.HasCount || (c.HasCount && c.Count != d.Count) {
		return false
	}
	return c.Name == d.Name && slices.Equal(c.Args, d.Args)
}

// FromRawCommand is the capability to be built from a parsed protocol
// line. Implement it on your own command type to use it with Parse. The
// conversion is expected to be a pure function of raw; a Registry
// provides ready-made conversions for closed command sets.
type FromRawCommand[C any] interface {
	FromRawCommand(raw RawCommand) C
}

// Parse parses a single protocol line and converts it to C. Errors of
// the line parser are passed through unchanged, the conversion itself
// cannot fail.
func Parse[C FromRawCommand[C]](line string) (C, error) {
	raw, err := NewParser(line).Parse()
	if err != nil {
		var zero C
		return zero, err
	}
	var c C
	return c.FromRawCommand(raw), nil
}
