package dustydevil

import "fmt"

type TokenKind int

const (
	FLOAT TokenKind = iota
	INTEGER
	DIGIT
	PLUS
	MINUS
	MUL
	DIV
	LPAREN
	RPAREN
	COLON
	ASSIGN
	EQUALS
	SEMICOLON
	COMMA
	PROG_START
	PROG_END
	WRITE
	READ
	IDENT
	EOF
)

var tokenKindNames = [...]string{
	FLOAT:      "<float>",
	INTEGER:    "<integer>",
	DIGIT:      "<digit>",
	PLUS:       "<addition>",
	MINUS:      "<subtraction>",
	MUL:        "<multiplication>",
	DIV:        "<division>",
	LPAREN:     "<lparenthesis>",
	RPAREN:     "<rparenthesis>",
	COLON:      "<colon>",
	ASSIGN:     "<assign>",
	EQUALS:     "<equal>",
	SEMICOLON:  "<semicolon>",
	COMMA:      "<comma>",
	PROG_START: "<prog_start>",
	PROG_END:   "<prog_end>",
	WRITE:      "<write>",
	READ:       "<read>",
	IDENT:      "<ident>",
	EOF:        "<eof>",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return fmt.Sprintf("<kind %d>", int(k))
	}
	return tokenKindNames[k]
}

var keywords = map[string]TokenKind{
	"PROG_START": PROG_START,
	"PROG_END":   PROG_END,
	"Write":      WRITE,
	"Read":       READ,
}

var symbolKinds = map[string]TokenKind{
	"+":  PLUS,
	"-":  MINUS,
	"*":  MUL,
	"/":  DIV,
	"(":  LPAREN,
	")":  RPAREN,
	":":  COLON,
	":=": ASSIGN,
	"=":  EQUALS,
	";":  SEMICOLON,
	",":  COMMA,
}

// symbolSpellings are the one-character symbols; ':' and ":=" have their
// own matcher.
var symbolSpellings = []string{"+", "-", "*", "/", "(", ")", "=", ";", ","}

// Token is a classified lexeme. Value holds the word for identifiers and
// keywords; Number holds the literal for FLOAT, INTEGER and DIGIT.
type Token struct {
	Kind   TokenKind
	Value  string
	Number Number
	Start  Position
	End    Position
}

// NewToken builds a token whose span covers the single byte at start.
func NewToken(kind TokenKind, start Position) Token {
	end := start.Advance(0)
	return Token{Kind: kind, Start: start, End: end}
}

// IsNumber reports whether the token is any of the numeric literal kinds.
func (t Token) IsNumber() bool {
	return t.Kind == FLOAT || t.Kind == INTEGER || t.Kind == DIGIT
}

func (t Token) String() string {
	switch {
	case t.IsNumber():
		return t.Number.String()
	case t.Value != "":
		return t.Value
	}
	return t.Kind.String()
}
