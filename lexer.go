package dustydevil

import (
	"strconv"
	"unicode/utf8"

	"github.com/JeffThomas/lexx/matchers"
)

// Lexer turns script text into tokens.
type Lexer struct {
	Script string
	Text   string

	scan *scanner
}

func NewLexer(script, text string) *Lexer {
	return &Lexer{
		Script: script,
		Text:   text,
		scan: newScanner(script, text,
			startBlankMatcher,
			startNumberMatcher,
			startWordMatcher,
			startColonMatcher,
			matchers.InitSymbolMatcher(symbolSpellings),
		),
	}
}

// Tokenize lexes text in one call.
func Tokenize(script, text string) ([]Token, error) {
	return NewLexer(script, text).MakeTokens()
}

// MakeTokens returns every token of the script followed by EOF. It stops at
// the first rune that cannot start a token and returns no tokens at all in
// that case.
func (l *Lexer) MakeTokens() ([]Token, error) {
	tokens := make([]Token, 0)

	for {
		t, start, end, err := l.scan.next()
		if err != nil {
			return []Token{}, err
		}
		if t == nil {
			if !l.scan.atEnd() {
				return []Token{}, l.illegalChar(start)
			}
			break
		}
		if t.Type == matchers.WHITESPACE {
			continue
		}
		tokens = append(tokens, l.makeToken(t, start, end))
	}

	tokens = append(tokens, NewToken(EOF, l.scan.pos))
	return tokens, nil
}

func (l *Lexer) illegalChar(start Position) *Error {
	r, size := utf8.DecodeRuneInString(l.Text[start.Offset:])
	end := start
	for i := 0; i < size; i++ {
		end = end.Advance(l.Text[start.Offset+i])
	}
	return NewIllegalCharError(start, end, "'"+string(r)+"'")
}

func (l *Lexer) makeToken(t *matchers.Token, start, end Position) Token {
	tok := Token{Start: start, End: end}

	switch t.Type {
	case matchers.FLOAT:
		f, _ := strconv.ParseFloat(t.Value, 64)
		tok.Kind = FLOAT
		tok.Number = FloatNumber(f)
	case matchers.INTEGER:
		tok.Kind = INTEGER
		if len(t.Value) == 1 {
			tok.Kind = DIGIT
		}
		if i, err := strconv.ParseInt(t.Value, 10, 64); err == nil {
			tok.Number = IntNumber(i)
		} else {
			f, _ := strconv.ParseFloat(t.Value, 64)
			tok.Number = FloatNumber(f)
		}
	case matchers.WORD:
		kind, ok := keywords[t.Value]
		if !ok {
			kind = IDENT
		}
		tok.Kind = kind
		tok.Value = t.Value
	default:
		tok.Kind = symbolKinds[t.Value]
	}
	return tok
}
