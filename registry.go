package gtp

import (
	"strings"

	"git.fractalqb.de/fractalqb/icontainer/islist"
)

// Registry maps parsed protocol lines onto a closed set of commands
// tagged with values of T. Command names are declared with Register and
// compared case-insensitively in declaration order. Names that are
// equal under case folding must not be declared twice; the registry
// does not check this. After declaration a Registry is read-only and
// safe for concurrent use.
type Registry[T any] struct {
	variants *islist.List
}

// NewRegistry creates an empty command registry.
func NewRegistry[T any]() *Registry[T] {
	return new(Registry[T])
}

// Register declares name as a command mapped to tag and returns r for
// chaining.
func (r *Registry[T]) Register(name string, tag T) *Registry[T] {
	v := &variant[T]{name: name, lower: strings.ToLower(name), tag: tag}
	if r.variants == nil {
		r.variants = islist.New(v)
	} else {
		r.variants.PushBack(v)
	}
	return r
}

// Map converts raw into a Command of this registry. The first declared
// name equal to raw.Name under case folding wins; without a match the
// result is the catch-all carrying raw. Map is a pure function, it
// cannot fail and leaves raw untouched.
func (r *Registry[T]) Map(raw RawCommand) Command[T] {
	if r.variants != nil {
		name := strings.ToLower(raw.Name)
		next := r.variants.Front()
		for i := r.variants.Len(); i > 0; i-- {
			v := next.(*variant[T])
			if v.lower == name {
				return Command[T]{Tag: v.tag}
			}
			next = v.ListNext()
		}
	}
	return Command[T]{Raw: &raw}
}

// Parse parses a single protocol line and maps it with r. Errors of the
// line parser are passed through unchanged.
func (r *Registry[T]) Parse(line string) (Command[T], error) {
	raw, err := NewParser(line).Parse()
	if err != nil {
		return Command[T]{}, err
	}
	return r.Map(raw), nil
}

// Command is a protocol line mapped by a Registry: either one of the
// declared tags or, with Raw set, the catch-all for an unrecognized
// command name. Raw keeps the complete parse result, so mapping loses
// no information.
type Command[T any] struct {
	// Tag of the matched variant, zero value for the catch-all.
	Tag T
	// Raw is nil for recognized commands and holds the original parse
	// result otherwise.
	Raw *RawCommand
}

// Unrecognized reports whether c is the catch-all of its registry.
func (c Command[T]) Unrecognized() bool { return c.Raw != nil }

type variant[T any] struct {
	name, lower string
	tag         T
	lsNext      *variant[T]
}

// ListNext to implement intrusive singly linked list
func (v *variant[T]) ListNext() islist.Node {
	if v.lsNext == nil {
		return nil
	}
	return v.lsNext
}

// SetListNext to implement intrusive singly linked list
func (v *variant[T]) SetListNext(n islist.Node) {
	if n == nil {
		v.lsNext = nil
	} else {
		v.lsNext = n.(*variant[T])
	}
}
