package dustydevil

// ParseEnvironment is the cursor the productions in parser.go share. It
// never moves backwards: each token is consumed once, in order.
type ParseEnvironment struct {
	Tokens  []Token
	Index   int
	Current Token
}

func NewParseEnvironment(tokens []Token) *ParseEnvironment {
	pe := &ParseEnvironment{
		Tokens: tokens,
		Index:  -1,
	}
	pe.advance()
	return pe
}

// advance moves to the next token. Past the end it stays on the last one,
// which the lexer guarantees is EOF.
func (pe *ParseEnvironment) advance() Token {
	pe.Index++
	if pe.Index < len(pe.Tokens) {
		pe.Current = pe.Tokens[pe.Index]
	}
	return pe.Current
}

// expect consumes the current token if it has the given kind, otherwise it
// reports details as a syntax error at that token.
func (pe *ParseEnvironment) expect(kind TokenKind, details string) (Token, error) {
	t := pe.Current
	if t.Kind != kind {
		return t, pe.syntaxError(details)
	}
	pe.advance()
	return t, nil
}

func (pe *ParseEnvironment) syntaxError(details string) *Error {
	return NewInvalidSyntaxError(pe.Current.Start, pe.Current.End, details)
}
