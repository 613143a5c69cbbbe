package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dustydevil"
)

type testApp struct {
	*app
	out    *strings.Builder
	errOut *strings.Builder
	dir    string
}

func newTestApp(t *testing.T, stdin string) *testApp {
	t.Helper()
	stdout, stderr := &strings.Builder{}, &strings.Builder{}
	return &testApp{
		app: &app{
			stdin:  strings.NewReader(stdin),
			stdout: stdout,
			stderr: stderr,
			log:    log.New(stderr, appName+": ", 0),
		},
		out:    stdout,
		errOut: stderr,
		dir:    t.TempDir(),
	}
}

// args prefixes every invocation with a transcript inside the test's
// temporary directory.
func (ta *testApp) args(extra ...string) []string {
	return append([]string{"-log", filepath.Join(ta.dir, "out.txt")}, extra...)
}

func (ta *testApp) transcript(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(ta.dir, "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestRun_Program(t *testing.T) {
	ta := newTestApp(t, "5\n")
	src := writeFile(t, ta.dir, "prog.dd", "Sq PROG_START;\nRead(N);\nS := N * N;\nWrite(S);\nPROG_END;")

	if code := ta.run(ta.args(src)); code != 0 {
		t.Fatalf("expected exit 0 got %d, stderr %q", code, ta.errOut)
	}
	wantOut := "Enter a value for N: N = 5\nN = 5\nS = 25\n25\n"
	if ta.out.String() != wantOut {
		t.Errorf("expected stdout %q got %q", wantOut, ta.out)
	}
	wantLog := dustydevil.DefaultBanner + "\nN = 5\nN = 5\nS = 25\n25\n"
	if got := ta.transcript(t); got != wantLog {
		t.Errorf("expected transcript %q got %q", wantLog, got)
	}
}

func TestRun_InputFile(t *testing.T) {
	ta := newTestApp(t, "")
	src := writeFile(t, ta.dir, "prog.dd", "P PROG_START;\nRead(A, B);\nWrite(A - B);\nPROG_END;")
	answers := writeFile(t, ta.dir, "answers.txt", "10\n4\n")

	if code := ta.run(ta.args("-input", answers, "run", src)); code != 0 {
		t.Fatalf("expected exit 0 got %d, stderr %q", code, ta.errOut)
	}
	if !strings.HasSuffix(ta.out.String(), "A = 10\nB = 4\nA - B = 6\n6\n") {
		t.Errorf("unexpected stdout %q", ta.out)
	}
}

func TestRun_RuntimeError(t *testing.T) {
	ta := newTestApp(t, "")
	src := writeFile(t, ta.dir, "prog.dd", "P PROG_START;\nX := 1;\nWrite(X);\nY := X / 0;\nPROG_END;")

	if code := ta.run(ta.args(src)); code != 1 {
		t.Errorf("expected exit 1 got %d", code)
	}
	out := ta.out.String()
	if !strings.HasPrefix(out, "X = 1\nX = 1\nTraceback (most recent call last):\n") {
		t.Errorf("unexpected stdout %q", out)
	}
	if !strings.Contains(out, "Runtime Error: Division by zero") {
		t.Errorf("expected the runtime error on stdout got %q", out)
	}
	if got := ta.transcript(t); !strings.HasPrefix(got, dustydevil.DefaultBanner+"\nX = 1\nX = 1\nTraceback") {
		t.Errorf("unexpected transcript %q", got)
	}
}

func TestRun_SyntaxErrorSkipsBanner(t *testing.T) {
	ta := newTestApp(t, "")
	src := writeFile(t, ta.dir, "prog.dd", "P PROG_START;\nX := 1\nPROG_END;")

	if code := ta.run(ta.args(src)); code != 1 {
		t.Errorf("expected exit 1 got %d", code)
	}
	got := ta.transcript(t)
	if !strings.HasPrefix(got, "Invalid Syntax: Syntax Error\n") {
		t.Errorf("expected only the diagnostic in the transcript got %q", got)
	}
}

func TestRun_MissingSource(t *testing.T) {
	ta := newTestApp(t, "")
	if code := ta.run(ta.args(filepath.Join(ta.dir, "missing.dd"))); code != 1 {
		t.Errorf("expected exit 1 got %d", code)
	}
	if !strings.HasPrefix(ta.errOut.String(), appName+": ") {
		t.Errorf("expected a logged error got %q", ta.errOut)
	}
}

func TestRun_Usage(t *testing.T) {
	ta := newTestApp(t, "")
	if code := ta.run([]string{"run", "a", "b"}); code != 2 {
		t.Errorf("expected exit 2 for extra arguments got %d", code)
	}
	if code := ta.run([]string{"-nope"}); code != 2 {
		t.Errorf("expected exit 2 for an unknown flag got %d", code)
	}
	ta.errOut.Reset()
	if code := ta.run([]string{"help"}); code != 0 {
		t.Errorf("expected exit 0 for help got %d", code)
	}
	if !strings.Contains(ta.errOut.String(), "Usage:") {
		t.Errorf("expected usage text got %q", ta.errOut)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	ta := newTestApp(t, "")
	src := writeFile(t, ta.dir, "prog.dd", "P PROG_START;\nX := 6 * 7;\nPROG_END;")
	logPath := filepath.Join(ta.dir, "configured.txt")
	cfg := writeFile(t, ta.dir, "dd.yaml", "source: "+src+"\nlog: "+logPath+"\nbanner: Howdy\n")

	if code := ta.run([]string{"-config", cfg}); code != 0 {
		t.Fatalf("expected exit 0 got %d, stderr %q", code, ta.errOut)
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "Howdy\n42\n" {
		t.Errorf("unexpected transcript %q", b)
	}
}

func TestTokens(t *testing.T) {
	ta := newTestApp(t, "")
	src := writeFile(t, ta.dir, "prog.dd", "P PROG_START;")

	if code := ta.run([]string{"tokens", src}); code != 0 {
		t.Fatalf("expected exit 0 got %d", code)
	}
	lines := strings.Split(strings.TrimSpace(ta.out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 tokens got %q", lines)
	}
	if !strings.HasPrefix(lines[1], "1:3\t") {
		t.Errorf("expected PROG_START at 1:3 got %q", lines[1])
	}
}

func TestAst(t *testing.T) {
	ta := newTestApp(t, "")
	src := writeFile(t, ta.dir, "prog.dd", "P PROG_START; X:=(1+2)*3; PROG_END;")

	if code := ta.run([]string{"ast", src}); code != 0 {
		t.Fatalf("expected exit 0 got %d", code)
	}
	want := "P PROG_START;\n    X := (1 + 2) * 3;\nPROG_END;\n"
	if ta.out.String() != want {
		t.Errorf("expected %q got %q", want, ta.out)
	}
}

func TestNeedsMore(t *testing.T) {
	cases := map[string]bool{
		"":                                false,
		"P PROG_START;":                   true,
		"P PROG_START;\nX := 1;":          true,
		"P PROG_START; X := 1; PROG_END;": false,
		"P PROG_START X":                  false,
		"P #":                             false,
	}
	for src, want := range cases {
		if got := needsMore(src); got != want {
			t.Errorf("needsMore(%q): expected %v got %v", src, want, got)
		}
	}
}
