package dustydevil_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"dustydevil"
)

// scriptedInput answers prompts from a fixed list and records them.
type scriptedInput struct {
	answers []string
	prompts []string
}

func (s *scriptedInput) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func run(t *testing.T, statements string, answers ...string) (dustydevil.Number, string, error) {
	t.Helper()
	var out strings.Builder
	in := &scriptedInput{answers: answers}
	result, err := dustydevil.Run("test.dd", wrap(statements), &out, in)
	return result, out.String(), err
}

func expectOutput(t *testing.T, statements, want string, answers ...string) {
	t.Helper()
	_, out, err := run(t, statements, answers...)
	if err != nil {
		t.Fatalf("running %q failed: %v", statements, err)
	}
	if out != want {
		t.Errorf("running %q: expected output\n%q\ngot\n%q", statements, want, out)
	}
}

func expectRunError(t *testing.T, statements string, kind dustydevil.ErrorKind, details string, answers ...string) *dustydevil.Error {
	t.Helper()
	_, _, err := run(t, statements, answers...)
	var e *dustydevil.Error
	if !errors.As(err, &e) {
		t.Fatalf("running %q: expected *dustydevil.Error got %v", statements, err)
	}
	if e.Kind != kind || e.Details != details {
		t.Errorf("running %q: expected %s %q got %s %q", statements, kind, details, e.Kind, e.Details)
	}
	return e
}

func TestInterpreter_Arithmetic(t *testing.T) {
	expectOutput(t, "X := 2 + 3 * 4;\nWrite(X);", "X = 14\n")
	expectOutput(t, "X := (2 + 3) * 4;\nWrite(X);", "X = 20\n")
	expectOutput(t, "X := 8 - 2 - 1;\nWrite(X);", "X = 5\n")
	expectOutput(t, "X := 7 / 2;\nWrite(X);", "X = 3.5\n")
	expectOutput(t, "X := 4 / 2;\nWrite(X);", "X = 2.0\n")
	expectOutput(t, "X := 1.5 * 2;\nWrite(X);", "X = 3.0\n")
}

func TestInterpreter_Unary(t *testing.T) {
	expectOutput(t, "X := -5;\nY := --5;\nZ := -+5;\nWrite(X, Y, Z);", "X = -5\nY = 5\nZ = -5\n")
	expectOutput(t, "X := 3;\nY := -X * 2;\nWrite(Y);", "X = 3\nY = -6\n")
}

func TestInterpreter_ResultIsLastStatement(t *testing.T) {
	result, _, err := run(t, "X := 10;\nY := X * 3;")
	if err != nil {
		t.Fatal(err)
	}
	if result.String() != "30" {
		t.Errorf("expected 30 got %s", result)
	}
}

func TestInterpreter_WriteLabels(t *testing.T) {
	expectOutput(t, "X := 10;\nWrite(X);", "X = 10\n")
	expectOutput(t, "X := 10;\nWrite(X + 1, 2 * (X - 1));", "X = 10\nX + 1 = 11\nX = 10\n2 * (X - 1) = 18\n")
	expectOutput(t, "Write(null);", "null = 0\n")
}

func TestInterpreter_LookupEchoes(t *testing.T) {
	expectOutput(t, "X := 10;\nY := X + 1;", "X = 10\n")
	expectOutput(t, "X := 1;\nY := X + X;\nWrite(Y);", "X = 1\nX = 1\nY = 2\n")
	expectOutput(t, "X := 2;\nWrite(X);", "X = 2\n")
}

func TestInterpreter_DivisionByZero(t *testing.T) {
	text := wrap("X := 5 / (2 - 2);")
	_, err := dustydevil.Run("test.dd", text, nil, nil)
	var e *dustydevil.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *dustydevil.Error got %v", err)
	}
	if e.Kind != dustydevil.Runtime || e.Details != "Division by zero" {
		t.Errorf("expected Runtime Division by zero got %s %q", e.Kind, e.Details)
	}
	if got := text[e.Start.Offset:e.End.Offset]; got != "2 - 2" {
		t.Errorf("expected the divisor to be highlighted got %q", got)
	}
	if e.Context == nil || e.Context.DisplayName != "<program>" {
		t.Errorf("expected the error to carry the program context")
	}
}

func TestInterpreter_UndefinedVariable(t *testing.T) {
	e := expectRunError(t, "X := Y + 1;", dustydevil.Runtime, "'Y' is not defined")
	if e.Start.Line != 1 || e.Start.Column != 5 {
		t.Errorf("expected the error at line 1 column 5 got %+v", e.Start)
	}
	expectRunError(t, "Write(Y);", dustydevil.Runtime, "'Y' is not defined")
}

func TestInterpreter_EffectsBeforeAnErrorAreKept(t *testing.T) {
	var out strings.Builder
	runner := dustydevil.NewRunner(&out, nil)
	_, err := runner.Run("test.dd", wrap("X := 1;\nWrite(X);\nY := X / 0;\nWrite(Y);"))
	if err == nil {
		t.Fatal("expected division by zero")
	}
	if out.String() != "X = 1\nX = 1\n" {
		t.Errorf("expected the Write and the lookup before the error got %q", out.String())
	}
	if v, ok := runner.Context.Symbols.Get("X"); !ok || v.Int != 1 {
		t.Errorf("expected X to stay bound after the error")
	}
	if _, ok := runner.Context.Symbols.Get("Y"); ok {
		t.Errorf("expected Y to stay unbound")
	}
}

func TestInterpreter_Read(t *testing.T) {
	var out strings.Builder
	in := &scriptedInput{answers: []string{"3", " -4 "}}
	result, err := dustydevil.Run("test.dd", wrap("Read(A, B);\nWrite(A, B);"), &out, in)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "A = 3\nB = -4\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	if result.Int != -4 {
		t.Errorf("expected the last value written got %s", result)
	}
	want := []string{"Enter a value for A: ", "Enter a value for B: "}
	if strings.Join(in.prompts, "|") != strings.Join(want, "|") {
		t.Errorf("expected prompts %q got %q", want, in.prompts)
	}
}

func TestInterpreter_ReadReturnsLastValue(t *testing.T) {
	in := &scriptedInput{answers: []string{"1", "2"}}
	result, err := dustydevil.Run("test.dd", wrap("Read(A, B);"), nil, in)
	if err != nil {
		t.Fatal(err)
	}
	if result.Int != 2 {
		t.Errorf("expected 2 got %s", result)
	}
}

func TestInterpreter_ReadErrors(t *testing.T) {
	expectRunError(t, "Read(A);", dustydevil.InputFormat, "'abc' is not a valid integer for 'A'", "abc")
	expectRunError(t, "Read(A);", dustydevil.InputFormat, "'1.5' is not a valid integer for 'A'", "1.5")
	expectRunError(t, "Read(A);", dustydevil.InputFormat, "No input available for 'A'")
	expectRunError(t, "Read(A + 1);", dustydevil.Runtime, "Read expects a variable name", "1")

	_, err := dustydevil.Run("test.dd", wrap("Read(A);"), nil, nil)
	var e *dustydevil.Error
	if !errors.As(err, &e) || e.Kind != dustydevil.InputFormat {
		t.Errorf("expected an input error without a reader got %v", err)
	}
}

func TestInterpreter_ReadStopsAtFirstBadValue(t *testing.T) {
	runner := dustydevil.NewRunner(nil, &scriptedInput{answers: []string{"7", "x", "9"}})
	if _, err := runner.Run("test.dd", wrap("Read(A, B, C);")); err == nil {
		t.Fatal("expected an input error")
	}
	if v, ok := runner.Context.Symbols.Get("A"); !ok || v.Int != 7 {
		t.Errorf("expected A to be bound before the error")
	}
	if _, ok := runner.Context.Symbols.Get("C"); ok {
		t.Errorf("expected C never to be read")
	}
}

func TestInterpreter_IsRepeatable(t *testing.T) {
	statements := "X := 3;\nY := X * X - 1;\nWrite(X, Y);"
	_, first, err := run(t, statements)
	if err != nil {
		t.Fatal(err)
	}
	_, second, err := run(t, statements)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("expected identical output from identical runs, got %q and %q", first, second)
	}
}

func TestRunner_KeepsVariablesBetweenRuns(t *testing.T) {
	var out strings.Builder
	runner := dustydevil.NewRunner(&out, nil)
	if _, err := runner.Run("repl", wrap("X := 41;")); err != nil {
		t.Fatal(err)
	}
	if _, err := runner.Run("repl", wrap("Write(X + 1);")); err != nil {
		t.Fatal(err)
	}
	if out.String() != "X = 41\nX + 1 = 42\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRunner_ParsedHook(t *testing.T) {
	var out strings.Builder
	runner := dustydevil.NewRunner(&out, nil)

	var seen *dustydevil.Program
	runner.Parsed = func(p *dustydevil.Program) error {
		seen = p
		return nil
	}
	if _, err := runner.Run("test.dd", wrap("Write(1);")); err != nil {
		t.Fatal(err)
	}
	if seen == nil || seen.Name.Token.Value != "Test" {
		t.Errorf("expected the hook to see the parsed program")
	}

	stop := errors.New("stop")
	runner.Parsed = func(*dustydevil.Program) error { return stop }
	out.Reset()
	if _, err := runner.Run("test.dd", wrap("Write(2);")); !errors.Is(err, stop) {
		t.Errorf("expected the hook error got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected nothing to run after the hook failed got %q", out.String())
	}

	seen = nil
	runner.Parsed = func(p *dustydevil.Program) error {
		seen = p
		return nil
	}
	if _, err := runner.Run("test.dd", "Test PROG_START; Write(1)"); err == nil {
		t.Fatal("expected a syntax error")
	}
	if seen != nil {
		t.Errorf("expected the hook not to run for a program that does not parse")
	}
}
