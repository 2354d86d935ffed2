package gtp

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"
)

// The lexical classes of the protocol. Counts are decimal digit runs,
// separators and identifiers use the Unicode whitespace and word
// classes, not just their ASCII subsets.
const (
	patNumber = `^\d+`
	patSpace  = `^[\t\n\v\f\r\x{85}\p{Z}]+`
	patWord   = `^[\p{L}\p{N}_]+`
)

type patterns struct {
	number, space, word *regexp.Regexp
}

var (
	lexOnce sync.Once
	lexPats patterns
	lexErr  error
)

func lexPatterns() (*patterns, error) {
	lexOnce.Do(func() {
		compile := func(pat string) *regexp.Regexp {
			if lexErr != nil {
				return nil
			}
			rgx, err := regexp.Compile(pat)
			if err != nil {
				lexErr = PatternError{Pattern: pat, err: err}
			}
			return rgx
		}
		lexPats.number = compile(patNumber)
		lexPats.space = compile(patSpace)
		lexPats.word = compile(patWord)
	})
	if lexErr != nil {
		return nil, lexErr
	}
	return &lexPats, nil
}

// Parser parses a single protocol line. The cursor only moves forward,
// a Parser is consumed by Parse and must not be reused for another
// line.
type Parser struct {
	src string
	pos int
	pat *patterns
}

// NewParser creates a parser for one protocol line.
func NewParser(line string) *Parser {
	return &Parser{src: line}
}

// Parse consumes the parser and returns the line as a RawCommand. A
// leading digit run becomes the count and must be followed by
// whitespace, then the command name and its arguments are collected as
// whitespace separated identifiers. Trailing bytes that fit no lexical
// class are ignored.
func (p *Parser) Parse() (cmd RawCommand, err error) {
	if p.pat, err = lexPatterns(); err != nil {
		return RawCommand{}, err
	}
	num, hasNum, err := p.readNumber()
	if err != nil {
		return RawCommand{}, err
	}
	if hasNum {
		cmd.Count, cmd.HasCount = num, true
		if err = p.skipWhitespace(true); err != nil {
			return RawCommand{}, err
		}
	}
	var idents []string
	for {
		id, ok := p.lexIdentifier()
		if !ok {
			break
		}
		idents = append(idents, id)
		_ = p.skipWhitespace(false)
	}
	if len(idents) == 0 {
		return RawCommand{}, ErrNoCommand
	}
	cmd.Name = idents[0]
	cmd.Args = idents[1:]
	return cmd, nil
}

// readNumber matches the longest leading digit run and advances the
// cursor past it. With no leading digit it reports no match and leaves
// the cursor alone. A run that does not fit into 32 bits is an error.
func (p *Parser) readNumber() (uint32, bool, error) {
	m := p.pat.number.FindString(p.src[p.pos:])
	if m == "" {
		return 0, false, nil
	}
	num, err := strconv.ParseUint(m, 10, 32)
	if err != nil {
		return 0, false, fmt.Errorf("command count %s: %w", m, err)
	}
	p.pos += len(m)
	return uint32(num), true, nil
}

// skipWhitespace advances the cursor past the longest leading
// whitespace run. Finding none is an error only if the separator is
// mandatory.
func (p *Parser) skipWhitespace(mandatory bool) error {
	m := p.pat.space.FindString(p.src[p.pos:])
	p.pos += len(m)
	if m == "" && mandatory {
		return ErrNoWhitespace
	}
	return nil
}

// lexIdentifier matches the longest leading run of word characters,
// i.e. letters, digits and underscore, and advances the cursor past it.
func (p *Parser) lexIdentifier() (string, bool) {
	m := p.pat.word.FindString(p.src[p.pos:])
	if m == "" {
		return "", false
	}
	p.pos += len(m)
	return m, true
}
