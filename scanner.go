package dustydevil

import (
	"bufio"
	"errors"
	"strings"

	"github.com/JeffThomas/lexx"
	"github.com/JeffThomas/lexx/matchers"
)

type matcherFactory = func() func(r rune, currentText *string) matchers.MatcherResult

// scanner drives a Lexx over a string and keeps the byte position that
// Lexx itself does not track. Every token, whitespace included, moves the
// position by the length of its Value.
type scanner struct {
	lx   *lexx.Lexx
	text string
	pos  Position
}

func newScanner(script, text string, ms ...matcherFactory) *scanner {
	lx := &lexx.Lexx{Input: bufio.NewReader(strings.NewReader(text))}
	for _, m := range ms {
		lx.AddMatcher(m)
	}
	return &scanner{
		lx:   lx,
		text: text,
		pos:  Position{Script: script, Text: text},
	}
}

// next returns the next token with its span. A nil token means scanning
// stopped: at end of input when atEnd reports true, otherwise at a rune no
// matcher accepts, which sits at s.pos.
func (s *scanner) next() (*matchers.Token, Position, Position, error) {
	t, err := s.lx.GetNextToken()
	if err != nil {
		return nil, s.pos, s.pos, err
	}
	if t == nil || t.Type == matchers.SYSTEM {
		return nil, s.pos, s.pos, nil
	}

	start := s.pos
	for i := 0; i < len(t.Value); i++ {
		s.pos = s.pos.Advance(t.Value[i])
	}
	return t, start, s.pos, nil
}

// atEnd reports whether every byte of the text has been scanned. Lexx
// reports EOF on a NUL rune and after a trailing unmatched rune, so its
// SYSTEM token alone is not enough.
func (s *scanner) atEnd() bool {
	return s.pos.Offset >= len(s.text)
}

var errNoMatch = errors.New("no match")

func matched(kind matchers.TokenType, text string) matchers.MatcherResult {
	return matchers.MatcherResult{Token: &matchers.Token{Type: kind, Value: text, Column: len(text)}}
}

func noMatch() matchers.MatcherResult {
	return matchers.MatcherResult{Err: errNoMatch}
}

func more() matchers.MatcherResult {
	return matchers.MatcherResult{}
}

// startBlankMatcher takes runs of space, tab and newline. Unlike
// matchers.StartWhitespaceMatcher it rejects '\r' and other Unicode space.
func startBlankMatcher() func(r rune, currentText *string) matchers.MatcherResult {
	return func(r rune, currentText *string) matchers.MatcherResult {
		if r == ' ' || r == '\t' || r == '\n' {
			return more()
		}
		if len(*currentText) == 0 {
			return noMatch()
		}
		return matched(matchers.WHITESPACE, *currentText)
	}
}

// startNumberMatcher takes ASCII digits with at most one dot. A second dot
// ends the number.
func startNumberMatcher() func(r rune, currentText *string) matchers.MatcherResult {
	dots := 0
	return func(r rune, currentText *string) matchers.MatcherResult {
		if isDigit(r) {
			return more()
		}
		if len(*currentText) == 0 {
			return noMatch()
		}
		if r == '.' && dots == 0 {
			dots++
			return more()
		}
		if dots > 0 {
			return matched(matchers.FLOAT, *currentText)
		}
		return matched(matchers.INTEGER, *currentText)
	}
}

// startWordMatcher takes an ASCII letter followed by letters and
// underscores. Digits end a word.
func startWordMatcher() func(r rune, currentText *string) matchers.MatcherResult {
	return func(r rune, currentText *string) matchers.MatcherResult {
		if isLetter(r) || (r == '_' && len(*currentText) > 0) {
			return more()
		}
		if len(*currentText) == 0 {
			return noMatch()
		}
		return matched(matchers.WORD, *currentText)
	}
}

// startColonMatcher takes ":=" when it can and a lone ":" otherwise.
func startColonMatcher() func(r rune, currentText *string) matchers.MatcherResult {
	return func(r rune, currentText *string) matchers.MatcherResult {
		switch {
		case *currentText == "" && r == ':':
			return more()
		case *currentText == ":" && r == '=':
			return more()
		case *currentText == "":
			return noMatch()
		}
		return matched(matchers.SYMBOL, *currentText)
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
