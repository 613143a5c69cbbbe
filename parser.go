package dustydevil

import "errors"

// Parse builds the program tree from a lexed token sequence. Parsing stops
// at the first mismatch; the tokens must be fully consumed.
func Parse(tokens []Token) (*Program, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		return nil, errors.New("parse: token sequence must end with EOF")
	}

	pe := NewParseEnvironment(tokens)
	program, err := pe.program()
	if err != nil {
		return nil, err
	}
	if pe.Current.Kind != EOF {
		return nil, pe.syntaxError("Input Error")
	}
	return program, nil
}

// program := prog_name PROG_START ';' stmts PROG_END ';'
func (pe *ParseEnvironment) program() (*Program, error) {
	name, err := pe.progName()
	if err != nil {
		return nil, err
	}
	start, err := pe.expect(PROG_START, "Syntax Error")
	if err != nil {
		return nil, err
	}
	startSemi, err := pe.semicolon()
	if err != nil {
		return nil, err
	}
	body, err := pe.stmts()
	if err != nil {
		return nil, err
	}
	end, err := pe.expect(PROG_END, "Syntax Error")
	if err != nil {
		return nil, err
	}
	endSemi, err := pe.semicolon()
	if err != nil {
		return nil, err
	}

	return &Program{
		Name:      name,
		Start:     &StartMarker{Token: start},
		StartSemi: startSemi,
		Body:      body,
		End:       &EndMarker{Token: end},
		EndSemi:   endSemi,
	}, nil
}

// prog_name := IDENT
func (pe *ParseEnvironment) progName() (*ProgramName, error) {
	t, err := pe.expect(IDENT, "Input Error")
	if err != nil {
		return nil, err
	}
	return &ProgramName{Token: t}, nil
}

func (pe *ParseEnvironment) semicolon() (*Semicolon, error) {
	t, err := pe.expect(SEMICOLON, "Syntax Error")
	if err != nil {
		return nil, err
	}
	return &Semicolon{Token: t}, nil
}

func startsStatement(k TokenKind) bool {
	return k == READ || k == WRITE || k == IDENT
}

// stmts := stmt { stmt }
func (pe *ParseEnvironment) stmts() (*StatementList, error) {
	first, err := pe.stmt()
	if err != nil {
		return nil, err
	}
	list := &StatementList{Statements: []*Statement{first}}

	for startsStatement(pe.Current.Kind) {
		s, err := pe.stmt()
		if err != nil {
			return nil, err
		}
		list.Statements = append(list.Statements, s)
	}
	return list, nil
}

// stmt := write | read | assign
func (pe *ParseEnvironment) stmt() (*Statement, error) {
	var body Node
	var err error

	switch pe.Current.Kind {
	case WRITE:
		body, err = pe.write()
	case READ:
		body, err = pe.read()
	default:
		body, err = pe.assign()
	}
	if err != nil {
		return nil, err
	}
	return &Statement{Body: body}, nil
}

// write := 'Write' '(' varlist ')' ';'
func (pe *ParseEnvironment) write() (*Write, error) {
	keyword, lparen, args, rparen, semi, err := pe.ioStatement(WRITE)
	if err != nil {
		return nil, err
	}
	return &Write{Keyword: keyword, LParen: lparen, Args: args, RParen: rparen, Semi: semi}, nil
}

// read := 'Read' '(' varlist ')' ';'
func (pe *ParseEnvironment) read() (*Read, error) {
	keyword, lparen, args, rparen, semi, err := pe.ioStatement(READ)
	if err != nil {
		return nil, err
	}
	return &Read{Keyword: keyword, LParen: lparen, Args: args, RParen: rparen, Semi: semi}, nil
}

func (pe *ParseEnvironment) ioStatement(keywordKind TokenKind) (keyword, lparen Token, args *VariableList, rparen Token, semi *Semicolon, err error) {
	if keyword, err = pe.expect(keywordKind, "Invalid Statement"); err != nil {
		return
	}
	if lparen, err = pe.expect(LPAREN, "Syntax Error"); err != nil {
		return
	}
	if args, err = pe.varList(); err != nil {
		return
	}
	if rparen, err = pe.expect(RPAREN, "Syntax Error"); err != nil {
		return
	}
	semi, err = pe.semicolon()
	return
}

// assign := IDENT ':=' expr ';'
func (pe *ParseEnvironment) assign() (*Assign, error) {
	target, err := pe.expect(IDENT, "Invalid Statement")
	if err != nil {
		return nil, err
	}
	op, err := pe.expect(ASSIGN, "Invalid Statement")
	if err != nil {
		return nil, err
	}
	value, err := pe.expr()
	if err != nil {
		return nil, err
	}
	semi, err := pe.semicolon()
	if err != nil {
		return nil, err
	}
	return &Assign{Target: &VarRef{Name: target}, Op: op, Value: value, Semi: semi}, nil
}

// varlist := expr { ',' expr }
func (pe *ParseEnvironment) varList() (*VariableList, error) {
	first, err := pe.expr()
	if err != nil {
		return nil, err
	}
	list := &VariableList{Items: []Node{first}}

	for pe.Current.Kind == COMMA {
		list.Commas = append(list.Commas, pe.Current)
		pe.advance()
		item, err := pe.expr()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}
	return list, nil
}

// expr := term { ('+' | '-') term }
func (pe *ParseEnvironment) expr() (Node, error) {
	return pe.binaryOp(pe.term, PRECEDENCE_SUM)
}

// term := factor { ('*' | '/') factor }
func (pe *ParseEnvironment) term() (Node, error) {
	return pe.binaryOp(pe.factor, PRECEDENCE_PRODUCT)
}

// binaryOp folds operands of one precedence level to the left.
func (pe *ParseEnvironment) binaryOp(operand func() (Node, error), level PrecedenceType) (Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for infixPrecedence(pe.Current.Kind) == level {
		op := pe.Current
		pe.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// factor := ('+' | '-') factor | NUMBER | IDENT | '(' expr ')'
func (pe *ParseEnvironment) factor() (Node, error) {
	t := pe.Current

	switch {
	case t.Kind == PLUS || t.Kind == MINUS:
		pe.advance()
		operand, err := pe.factor()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Op: t, Operand: operand}, nil

	case t.IsNumber():
		pe.advance()
		return &NumberLiteral{Token: t}, nil

	case t.Kind == IDENT:
		pe.advance()
		return &VarRef{Name: t}, nil

	case t.Kind == LPAREN:
		pe.advance()
		inner, err := pe.expr()
		if err != nil {
			return nil, err
		}
		if _, err := pe.expect(RPAREN, "Expected ')'"); err != nil {
			return nil, err
		}
		return inner, nil
	}

	return nil, NewInvalidSyntaxError(t.Start, t.End, "Invalid Expression")
}

// IsIncomplete reports whether err is a syntax error raised at the end of
// input, meaning more text could still make the program valid.
func IsIncomplete(err error) bool {
	var e *Error
	if !errors.As(err, &e) || e.Kind != InvalidSyntax {
		return false
	}
	return e.Start.Offset >= len(e.Start.Text)
}
