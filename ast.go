package dustydevil

import "strings"

// Node is any element of a parsed program. The set of node types is closed:
// Accept dispatches to exactly one Visitor method per type.
type Node interface {
	Span() (start, end Position)
	Accept(v Visitor, ctx *Context) (Number, error)
	String() string
}

// Visitor has one method per node type. An evaluator that implements it
// cannot leave a node type unhandled.
type Visitor interface {
	VisitProgram(*Program, *Context) (Number, error)
	VisitProgramName(*ProgramName, *Context) (Number, error)
	VisitStartMarker(*StartMarker, *Context) (Number, error)
	VisitEndMarker(*EndMarker, *Context) (Number, error)
	VisitSemicolon(*Semicolon, *Context) (Number, error)
	VisitStatementList(*StatementList, *Context) (Number, error)
	VisitStatement(*Statement, *Context) (Number, error)
	VisitWrite(*Write, *Context) (Number, error)
	VisitRead(*Read, *Context) (Number, error)
	VisitAssign(*Assign, *Context) (Number, error)
	VisitVariableList(*VariableList, *Context) (Number, error)
	VisitVarRef(*VarRef, *Context) (Number, error)
	VisitNumberLiteral(*NumberLiteral, *Context) (Number, error)
	VisitBinaryOp(*BinaryOp, *Context) (Number, error)
	VisitUnaryOp(*UnaryOp, *Context) (Number, error)
}

// Program is the root: name PROG_START ; statements PROG_END ;
type Program struct {
	Name      *ProgramName
	Start     *StartMarker
	StartSemi *Semicolon
	Body      *StatementList
	End       *EndMarker
	EndSemi   *Semicolon
}

func (n *Program) Span() (Position, Position) {
	return n.Name.Token.Start, n.EndSemi.Token.End
}

func (n *Program) Accept(v Visitor, ctx *Context) (Number, error) { return v.VisitProgram(n, ctx) }

func (n *Program) String() string {
	return n.Name.String() + " " + n.Start.String() + n.StartSemi.String() + "\n" +
		n.Body.String() + n.End.String() + n.EndSemi.String()
}

type ProgramName struct {
	Token Token
}

func (n *ProgramName) Span() (Position, Position) { return n.Token.Start, n.Token.End }

func (n *ProgramName) Accept(v Visitor, ctx *Context) (Number, error) {
	return v.VisitProgramName(n, ctx)
}

func (n *ProgramName) String() string { return n.Token.Value }

type StartMarker struct {
	Token Token
}

func (n *StartMarker) Span() (Position, Position) { return n.Token.Start, n.Token.End }

func (n *StartMarker) Accept(v Visitor, ctx *Context) (Number, error) {
	return v.VisitStartMarker(n, ctx)
}

func (n *StartMarker) String() string { return "PROG_START" }

type EndMarker struct {
	Token Token
}

func (n *EndMarker) Span() (Position, Position) { return n.Token.Start, n.Token.End }

func (n *EndMarker) Accept(v Visitor, ctx *Context) (Number, error) {
	return v.VisitEndMarker(n, ctx)
}

func (n *EndMarker) String() string { return "PROG_END" }

type Semicolon struct {
	Token Token
}

func (n *Semicolon) Span() (Position, Position) { return n.Token.Start, n.Token.End }

func (n *Semicolon) Accept(v Visitor, ctx *Context) (Number, error) {
	return v.VisitSemicolon(n, ctx)
}

func (n *Semicolon) String() string { return ";" }

// StatementList always holds at least one statement.
type StatementList struct {
	Statements []*Statement
}

func (n *StatementList) Span() (Position, Position) {
	start, _ := n.Statements[0].Span()
	_, end := n.Statements[len(n.Statements)-1].Span()
	return start, end
}

func (n *StatementList) Accept(v Visitor, ctx *Context) (Number, error) {
	return v.VisitStatementList(n, ctx)
}

func (n *StatementList) String() string {
	var b strings.Builder
	for _, s := range n.Statements {
		b.WriteString("    " + s.String() + "\n")
	}
	return b.String()
}

// Statement wraps one of *Write, *Read or *Assign.
type Statement struct {
	Body Node
}

func (n *Statement) Span() (Position, Position) { return n.Body.Span() }

func (n *Statement) Accept(v Visitor, ctx *Context) (Number, error) {
	return v.VisitStatement(n, ctx)
}

func (n *Statement) String() string { return n.Body.String() }

type Write struct {
	Keyword Token
	LParen  Token
	Args    *VariableList
	RParen  Token
	Semi    *Semicolon
}

func (n *Write) Span() (Position, Position) { return n.Keyword.Start, n.Semi.Token.End }

func (n *Write) Accept(v Visitor, ctx *Context) (Number, error) { return v.VisitWrite(n, ctx) }

func (n *Write) String() string { return "Write(" + n.Args.String() + ");" }

type Read struct {
	Keyword Token
	LParen  Token
	Args    *VariableList
	RParen  Token
	Semi    *Semicolon
}

func (n *Read) Span() (Position, Position) { return n.Keyword.Start, n.Semi.Token.End }

func (n *Read) Accept(v Visitor, ctx *Context) (Number, error) { return v.VisitRead(n, ctx) }

func (n *Read) String() string { return "Read(" + n.Args.String() + ");" }

type Assign struct {
	Target *VarRef
	Op     Token
	Value  Node
	Semi   *Semicolon
}

func (n *Assign) Span() (Position, Position) { return n.Target.Name.Start, n.Semi.Token.End }

func (n *Assign) Accept(v Visitor, ctx *Context) (Number, error) { return v.VisitAssign(n, ctx) }

func (n *Assign) String() string {
	return n.Target.String() + " := " + n.Value.String() + ";"
}

// VariableList is the comma separated argument list of Read and Write. Its
// items are expressions; Read additionally requires each to be a *VarRef.
type VariableList struct {
	Items  []Node
	Commas []Token
}

func (n *VariableList) Span() (Position, Position) {
	start, _ := n.Items[0].Span()
	_, end := n.Items[len(n.Items)-1].Span()
	return start, end
}

func (n *VariableList) Accept(v Visitor, ctx *Context) (Number, error) {
	return v.VisitVariableList(n, ctx)
}

func (n *VariableList) String() string {
	parts := make([]string, len(n.Items))
	for i, item := range n.Items {
		parts[i] = item.String()
	}
	return strings.Join(parts, ", ")
}

type VarRef struct {
	Name Token
}

func (n *VarRef) Span() (Position, Position) { return n.Name.Start, n.Name.End }

func (n *VarRef) Accept(v Visitor, ctx *Context) (Number, error) { return v.VisitVarRef(n, ctx) }

func (n *VarRef) String() string { return n.Name.Value }

type NumberLiteral struct {
	Token Token
}

func (n *NumberLiteral) Span() (Position, Position) { return n.Token.Start, n.Token.End }

func (n *NumberLiteral) Accept(v Visitor, ctx *Context) (Number, error) {
	return v.VisitNumberLiteral(n, ctx)
}

func (n *NumberLiteral) String() string { return n.Token.Number.String() }

type BinaryOp struct {
	Left  Node
	Op    Token
	Right Node
}

func (n *BinaryOp) Span() (Position, Position) {
	start, _ := n.Left.Span()
	_, end := n.Right.Span()
	return start, end
}

func (n *BinaryOp) Accept(v Visitor, ctx *Context) (Number, error) { return v.VisitBinaryOp(n, ctx) }

// String parenthesises an operand only when it binds looser than the
// operator, or equally loose on the right of a left-associative operator.
func (n *BinaryOp) String() string {
	p := infixPrecedence(n.Op.Kind)
	left := n.Left.String()
	if nodePrecedence(n.Left) < p {
		left = "(" + left + ")"
	}
	right := n.Right.String()
	if nodePrecedence(n.Right) <= p {
		right = "(" + right + ")"
	}
	return left + " " + operatorSymbol(n.Op.Kind) + " " + right
}

type UnaryOp struct {
	Op      Token
	Operand Node
}

func (n *UnaryOp) Span() (Position, Position) {
	_, end := n.Operand.Span()
	return n.Op.Start, end
}

func (n *UnaryOp) Accept(v Visitor, ctx *Context) (Number, error) { return v.VisitUnaryOp(n, ctx) }

func (n *UnaryOp) String() string {
	operand := n.Operand.String()
	if nodePrecedence(n.Operand) < PRECEDENCE_PREFIX {
		operand = "(" + operand + ")"
	}
	return operatorSymbol(n.Op.Kind) + operand
}

func operatorSymbol(k TokenKind) string {
	switch k {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	}
	return k.String()
}
