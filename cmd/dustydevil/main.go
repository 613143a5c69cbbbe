package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/peterh/liner"

	"dustydevil"
)

const appName = "dustydevil"

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *log.Logger

	// terminal selects liner for Read prompts instead of plain stdin.
	terminal bool
}

func main() {
	a := &app{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		log:      log.New(os.Stderr, appName+": ", 0),
		terminal: true,
	}
	os.Exit(a.run(os.Args[1:]))
}

func (a *app) usage(fs *flag.FlagSet) {
	fmt.Fprintf(a.stderr, `Usage:
  %[1]s [flags] [run] [file]    Run a program (default file from config)
  %[1]s [flags] tokens [file]   Print the token stream
  %[1]s [flags] ast [file]      Print the parsed program
  %[1]s [flags] repl            Start an interactive session

Flags:
`, appName)
	fs.PrintDefaults()
}

func (a *app) run(args []string) int {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	configPath := fs.String("config", "", "YAML configuration file (default "+defaultConfigFile+" when present)")
	logPath := fs.String("log", "", "transcript file")
	inputPath := fs.String("input", "", "answer Read prompts from this file instead of the terminal")
	fs.Usage = func() { a.usage(fs) }
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		a.log.Print(err)
		return 1
	}
	if *logPath != "" {
		cfg.Log = *logPath
	}

	rest := fs.Args()
	cmd := "run"
	if len(rest) > 0 {
		switch rest[0] {
		case "run", "tokens", "ast", "repl", "help":
			cmd, rest = rest[0], rest[1:]
		}
	}
	if len(rest) > 1 {
		a.usage(fs)
		return 2
	}
	if len(rest) == 1 {
		cfg.Source = rest[0]
	}

	switch cmd {
	case "tokens":
		return a.cmdTokens(cfg)
	case "ast":
		return a.cmdAst(cfg)
	case "repl":
		return a.cmdRepl(cfg)
	case "help":
		a.usage(fs)
		return 0
	}
	return a.cmdRun(cfg, *inputPath)
}

// lineReader picks where Read statements get their answers. The returned
// func releases it.
func (a *app) lineReader(inputPath string) (dustydevil.LineReader, func(), error) {
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, nil, err
		}
		return dustydevil.NewLineReader(f, a.stdout), func() { f.Close() }, nil
	}
	if a.terminal {
		ln := liner.NewLiner()
		ln.SetCtrlCAborts(true)
		return ln, func() { ln.Close() }, nil
	}
	return dustydevil.NewLineReader(a.stdin, a.stdout), func() {}, nil
}

func (a *app) readSource(cfg Config) (string, bool) {
	text, err := os.ReadFile(cfg.Source)
	if err != nil {
		a.log.Print(err)
		return "", false
	}
	return string(text), true
}

func (a *app) cmdRun(cfg Config, inputPath string) int {
	text, ok := a.readSource(cfg)
	if !ok {
		return 1
	}

	in, release, err := a.lineReader(inputPath)
	if err != nil {
		a.log.Print(err)
		return 1
	}
	defer release()

	transcript := dustydevil.NewTranscript(cfg.Log, cfg.Banner)
	defer transcript.Close()

	runner := dustydevil.NewRunner(io.MultiWriter(a.stdout, transcript), in)
	runner.Parsed = func(*dustydevil.Program) error {
		return transcript.Begin()
	}

	result, runErr := runner.Run(cfg.Source, text)
	out := result.String()
	if runErr != nil {
		out = runErr.Error()
	}

	fmt.Fprintln(a.stdout, out)
	if err := transcript.Println(out); err != nil {
		a.log.Print(err)
		return 1
	}
	if runErr != nil {
		return 1
	}
	return 0
}

func (a *app) cmdTokens(cfg Config) int {
	text, ok := a.readSource(cfg)
	if !ok {
		return 1
	}
	tokens, err := dustydevil.Tokenize(cfg.Source, text)
	if err != nil {
		fmt.Fprintln(a.stdout, err.Error())
		return 1
	}
	for _, t := range tokens {
		fmt.Fprintf(a.stdout, "%d:%d\t%s\t%s\n", t.Start.Line+1, t.Start.Column+1, t.Kind, t)
	}
	return 0
}

func (a *app) cmdAst(cfg Config) int {
	text, ok := a.readSource(cfg)
	if !ok {
		return 1
	}
	tokens, err := dustydevil.Tokenize(cfg.Source, text)
	if err != nil {
		fmt.Fprintln(a.stdout, err.Error())
		return 1
	}
	program, err := dustydevil.Parse(tokens)
	if err != nil {
		fmt.Fprintln(a.stdout, err.Error())
		return 1
	}
	fmt.Fprintln(a.stdout, program.String())
	return 0
}
