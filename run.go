package dustydevil

import "io"

// Runner drives the whole pipeline for one Context. Reusing a Runner keeps
// variables from earlier runs, which is what the REPL wants; Run uses a
// fresh one every time.
type Runner struct {
	Interpreter *Interpreter
	Context     *Context

	// Parsed, when set, is called after a program parses and before it is
	// interpreted. An error from it aborts the run.
	Parsed func(*Program) error
}

func NewRunner(out io.Writer, in LineReader) *Runner {
	return &Runner{
		Interpreter: NewInterpreter(out, in),
		Context:     NewGlobalContext(),
	}
}

func (r *Runner) Run(script, text string) (Number, error) {
	tokens, err := Tokenize(script, text)
	if err != nil {
		return Number{}, err
	}
	program, err := Parse(tokens)
	if err != nil {
		return Number{}, err
	}
	if r.Parsed != nil {
		if err := r.Parsed(program); err != nil {
			return Number{}, err
		}
	}
	return r.Interpreter.Interpret(program, r.Context)
}

// Run lexes, parses and interprets text against a fresh global context.
func Run(script, text string, out io.Writer, in LineReader) (Number, error) {
	return NewRunner(out, in).Run(script, text)
}
