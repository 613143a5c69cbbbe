package dustydevil

import (
	"fmt"
	"io"
)

// Interpreter evaluates a parsed program. Variable lookups and Write
// statements echo to Out; Read statements take their answers from In.
type Interpreter struct {
	Out io.Writer
	In  LineReader
}

var _ Visitor = (*Interpreter)(nil)

func NewInterpreter(out io.Writer, in LineReader) *Interpreter {
	if out == nil {
		out = io.Discard
	}
	return &Interpreter{Out: out, In: in}
}

// Interpret runs program in ctx and returns the value of its last
// statement. Effects of statements that ran before an error are kept.
func (i *Interpreter) Interpret(program *Program, ctx *Context) (Number, error) {
	return program.Accept(i, ctx)
}

func (i *Interpreter) VisitProgram(n *Program, ctx *Context) (Number, error) {
	if _, err := n.Name.Accept(i, ctx); err != nil {
		return Number{}, err
	}
	if _, err := n.Start.Accept(i, ctx); err != nil {
		return Number{}, err
	}
	result, err := n.Body.Accept(i, ctx)
	if err != nil {
		return Number{}, err
	}
	if _, err := n.End.Accept(i, ctx); err != nil {
		return Number{}, err
	}
	return result, nil
}

func (i *Interpreter) VisitProgramName(n *ProgramName, ctx *Context) (Number, error) {
	return Number{}, nil
}

func (i *Interpreter) VisitStartMarker(n *StartMarker, ctx *Context) (Number, error) {
	return Number{}, nil
}

func (i *Interpreter) VisitEndMarker(n *EndMarker, ctx *Context) (Number, error) {
	return Number{}, nil
}

func (i *Interpreter) VisitSemicolon(n *Semicolon, ctx *Context) (Number, error) {
	return Number{}, nil
}

func (i *Interpreter) VisitStatementList(n *StatementList, ctx *Context) (Number, error) {
	var result Number
	for _, s := range n.Statements {
		v, err := s.Accept(i, ctx)
		if err != nil {
			return Number{}, err
		}
		result = v
	}
	return result, nil
}

func (i *Interpreter) VisitStatement(n *Statement, ctx *Context) (Number, error) {
	return n.Body.Accept(i, ctx)
}

// VisitWrite echoes "<expr> = <value>" for every argument that is not a
// plain variable. Plain variables already echo when they are looked up.
func (i *Interpreter) VisitWrite(n *Write, ctx *Context) (Number, error) {
	return i.eachItem(n.Args, ctx, func(item Node, v Number) error {
		if _, ok := item.(*VarRef); ok {
			return nil
		}
		return i.echo(item.String(), v)
	})
}

func (i *Interpreter) echo(label string, v Number) error {
	_, err := fmt.Fprintf(i.Out, "%s = %s\n", label, v.String())
	return err
}

func (i *Interpreter) VisitRead(n *Read, ctx *Context) (Number, error) {
	var result Number
	for _, item := range n.Args.Items {
		start, end := item.Span()
		ref, ok := item.(*VarRef)
		if !ok {
			return Number{}, NewRuntimeError(start, end, "Read expects a variable name", ctx)
		}
		name := ref.Name.Value

		if i.In == nil {
			return Number{}, NewInputFormatError(start, end, "No input available for '"+name+"'", ctx)
		}
		line, err := i.In.Prompt("Enter a value for " + name + ": ")
		if err != nil {
			return Number{}, NewInputFormatError(start, end, "No input available for '"+name+"'", ctx)
		}
		value, err := ParseInteger(line)
		if err != nil {
			return Number{}, NewInputFormatError(start, end,
				fmt.Sprintf("'%s' is not a valid integer for '%s'", line, name), ctx)
		}

		result = IntNumber(value).SetPos(start, end).SetContext(ctx)
		ctx.Symbols.Set(name, result)
	}
	return result, nil
}

func (i *Interpreter) VisitAssign(n *Assign, ctx *Context) (Number, error) {
	value, err := n.Value.Accept(i, ctx)
	if err != nil {
		return Number{}, err
	}
	ctx.Symbols.Set(n.Target.Name.Value, value)
	return value, nil
}

func (i *Interpreter) VisitVariableList(n *VariableList, ctx *Context) (Number, error) {
	return i.eachItem(n, ctx, nil)
}

// eachItem evaluates the list left to right, calling fn after each item,
// and returns the last value.
func (i *Interpreter) eachItem(n *VariableList, ctx *Context, fn func(Node, Number) error) (Number, error) {
	var result Number
	for _, item := range n.Items {
		v, err := item.Accept(i, ctx)
		if err != nil {
			return Number{}, err
		}
		if fn != nil {
			if err := fn(item, v); err != nil {
				return Number{}, err
			}
		}
		result = v
	}
	return result, nil
}

// VisitVarRef echoes "<name> = <value>" on every successful lookup.
func (i *Interpreter) VisitVarRef(n *VarRef, ctx *Context) (Number, error) {
	name := n.Name.Value
	start, end := n.Span()
	value, ok := ctx.Symbols.Get(name)
	if !ok {
		return Number{}, NewRuntimeError(start, end, "'"+name+"' is not defined", ctx)
	}
	if err := i.echo(name, value); err != nil {
		return Number{}, err
	}
	return value.SetPos(start, end), nil
}

func (i *Interpreter) VisitNumberLiteral(n *NumberLiteral, ctx *Context) (Number, error) {
	start, end := n.Span()
	return n.Token.Number.SetContext(ctx).SetPos(start, end), nil
}

func (i *Interpreter) VisitBinaryOp(n *BinaryOp, ctx *Context) (Number, error) {
	left, err := n.Left.Accept(i, ctx)
	if err != nil {
		return Number{}, err
	}
	right, err := n.Right.Accept(i, ctx)
	if err != nil {
		return Number{}, err
	}

	var result Number
	switch n.Op.Kind {
	case PLUS:
		result = left.AddedTo(right)
	case MINUS:
		result = left.SubbedBy(right)
	case MUL:
		result = left.MultedBy(right)
	case DIV:
		var ok bool
		result, ok = left.DivedBy(right)
		if !ok {
			return Number{}, NewRuntimeError(right.Start, right.End, "Division by zero", ctx)
		}
	default:
		return Number{}, fmt.Errorf("interpreter: unknown binary operator %s", n.Op.Kind)
	}

	start, end := n.Span()
	return result.SetPos(start, end), nil
}

func (i *Interpreter) VisitUnaryOp(n *UnaryOp, ctx *Context) (Number, error) {
	number, err := n.Operand.Accept(i, ctx)
	if err != nil {
		return Number{}, err
	}
	if n.Op.Kind == MINUS {
		number = number.Negated()
	}
	start, end := n.Span()
	return number.SetPos(start, end), nil
}
