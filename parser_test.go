package gtp

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func newTestParser(t *testing.T, line string) *Parser {
	p := NewParser(line)
	p.pat = testerr.Shall1(lexPatterns()).BeNil(t)
	return p
}

func TestParser_readNumber(t *testing.T) {
	t.Run("digit run", func(t *testing.T) {
		p := newTestParser(t, "123")
		num, ok, err := p.readNumber()
		testerr.Shall(err).BeNil(t)
		if !ok {
			t.Fatal("no number found")
		}
		if num != 123 {
			t.Errorf("read %d, want 123", num)
		}
		if p.pos != 3 {
			t.Errorf("cursor at %d, want 3", p.pos)
		}
	})
	t.Run("no digit", func(t *testing.T) {
		p := newTestParser(t, "play 123")
		_, ok, err := p.readNumber()
		testerr.Shall(err).BeNil(t)
		if ok {
			t.Error("unexpected number match")
		}
		if p.pos != 0 {
			t.Errorf("cursor moved to %d", p.pos)
		}
	})
	t.Run("overflows uint32", func(t *testing.T) {
		p := newTestParser(t, "4294967296 play")
		_, _, err := p.readNumber()
		if !errors.Is(err, strconv.ErrRange) {
			t.Errorf("expect range error, got %v", err)
		}
		if p.pos != 0 {
			t.Errorf("cursor moved to %d", p.pos)
		}
	})
}

func TestParser_skipWhitespace(t *testing.T) {
	t.Run("whitespace run", func(t *testing.T) {
		p := newTestParser(t, " \t  x")
		testerr.Shall(p.skipWhitespace(true)).BeNil(t)
		if p.pos != 4 {
			t.Errorf("cursor at %d, want 4", p.pos)
		}
	})
	t.Run("mandatory but missing", func(t *testing.T) {
		p := newTestParser(t, "x")
		if err := p.skipWhitespace(true); !errors.Is(err, ErrNoWhitespace) {
			t.Errorf("expect ErrNoWhitespace, got %v", err)
		}
	})
	t.Run("optional and missing", func(t *testing.T) {
		p := newTestParser(t, "x")
		testerr.Shall(p.skipWhitespace(false)).BeNil(t)
		if p.pos != 0 {
			t.Errorf("cursor moved to %d", p.pos)
		}
	})
}

func TestParser_lexIdentifier(t *testing.T) {
	p := newTestParser(t, "show_board 1")
	id, ok := p.lexIdentifier()
	if !ok {
		t.Fatal("no identifier found")
	}
	if id != "show_board" {
		t.Errorf("lexed '%s'", id)
	}
	if p.pos != 10 {
		t.Errorf("cursor at %d, want 10", p.pos)
	}
	if _, ok = p.lexIdentifier(); ok {
		t.Error("identifier match on whitespace")
	}
}

func TestParser_Parse(t *testing.T) {
	check := func(t *testing.T, line string, want RawCommand) {
		got := testerr.Shall1(NewParser(line).Parse()).BeNil(t)
		if !got.Equal(want) {
			t.Errorf("parsed %+v, want %+v", got, want)
		}
	}

	t.Run("count, name and args", func(t *testing.T) {
		check(t, "123 hello arg1 arg2 arg3", RawCommand{
			Count: 123, HasCount: true,
			Name: "hello",
			Args: []string{"arg1", "arg2", "arg3"},
		})
	})
	t.Run("name only", func(t *testing.T) {
		check(t, "quit", RawCommand{Name: "quit"})
	})
	t.Run("play command", func(t *testing.T) {
		check(t, "3 play black D5", RawCommand{
			Count: 3, HasCount: true,
			Name: "play",
			Args: []string{"black", "D5"},
		})
	})
	t.Run("unicode identifiers", func(t *testing.T) {
		check(t, "café au lait", RawCommand{
			Name: "café",
			Args: []string{"au", "lait"},
		})
		check(t, "играть чёрные D5", RawCommand{
			Name: "играть",
			Args: []string{"чёрные", "D5"},
		})
	})
	t.Run("unicode separators", func(t *testing.T) {
		check(t, "7 play black D5", RawCommand{
			Count: 7, HasCount: true,
			Name: "play",
			Args: []string{"black", "D5"},
		})
	})
	t.Run("trailing junk ignored", func(t *testing.T) {
		check(t, "play black!?", RawCommand{
			Name: "play",
			Args: []string{"black"},
		})
	})

	t.Run("empty line", func(t *testing.T) {
		_, err := NewParser("").Parse()
		if !errors.Is(err, ErrNoCommand) {
			t.Errorf("expect ErrNoCommand, got %v", err)
		}
	})
	t.Run("count without command", func(t *testing.T) {
		_, err := NewParser("42").Parse()
		if !errors.Is(err, ErrNoWhitespace) {
			t.Errorf("expect ErrNoWhitespace, got %v", err)
		}
	})
	t.Run("count glued to command", func(t *testing.T) {
		_, err := NewParser("42play").Parse()
		if !errors.Is(err, ErrNoWhitespace) {
			t.Errorf("expect ErrNoWhitespace, got %v", err)
		}
	})
	t.Run("leading whitespace", func(t *testing.T) {
		_, err := NewParser("  quit").Parse()
		if !errors.Is(err, ErrNoCommand) {
			t.Errorf("expect ErrNoCommand, got %v", err)
		}
	})
}

func TestParser_tokenSplit(t *testing.T) {
	// lines of word tokens without leading digit parse like Fields
	lines := []string{
		"quit",
		"genmove white",
		"known_command final_score",
		"play\tblack D5",
		"a b c d e f g",
	}
	for _, line := range lines {
		raw := testerr.Shall1(NewParser(line).Parse()).BeNil(t)
		if raw.HasCount {
			t.Errorf("[%s] unexpected count %d", line, raw.Count)
		}
		fields := strings.Fields(line)
		if raw.Name != fields[0] {
			t.Errorf("[%s] name '%s'", line, raw.Name)
		}
		if !slices.Equal(raw.Args, fields[1:]) {
			t.Errorf("[%s] args %v, want %v", line, raw.Args, fields[1:])
		}
	}
}

func TestRawCommand_roundTrip(t *testing.T) {
	check := func(t *testing.T, line string) {
		raw := testerr.Shall1(NewParser(line).Parse()).BeNil(t)
		again := testerr.Shall1(NewParser(raw.String()).Parse()).BeNil(t)
		if !again.Equal(raw) {
			t.Errorf("reparsed %+v, want %+v", again, raw)
		}
	}
	t.Run("with count", func(t *testing.T) { check(t, "3 play black D5") })
	t.Run("without count", func(t *testing.T) { check(t, "showboard") })
	t.Run("ragged whitespace", func(t *testing.T) { check(t, "7   play\t black  D5") })
}
