package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"dustydevil"
)

const (
	promptMain = "dustydevil > "
	promptCont = "... "
)

func (a *app) cmdRepl(cfg Config) int {
	fmt.Fprintln(a.stdout, strings.TrimRight(cfg.Banner, " \n"))
	fmt.Fprintln(a.stdout, "Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.History
	if histPath != "" && !filepath.IsAbs(histPath) {
		if home, err := os.UserHomeDir(); err == nil {
			histPath = filepath.Join(home, histPath)
		}
	}
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	// One runner for the whole session, so variables carry over.
	runner := dustydevil.NewRunner(a.stdout, ln)
	for {
		src, ok := readProgram(ln)
		if !ok {
			fmt.Fprintln(a.stdout)
			return 0
		}
		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return 0
		}

		result, err := runner.Run("<stdin>", src)
		if err != nil {
			fmt.Fprintln(a.stdout, err.Error())
		} else {
			fmt.Fprintln(a.stdout, result.String())
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// readProgram keeps prompting until the collected lines parse, or fail for
// a reason more input cannot fix.
func readProgram(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !needsMore(src) {
			return src, true
		}
	}
}

func needsMore(src string) bool {
	if strings.TrimSpace(src) == "" {
		return false
	}
	tokens, err := dustydevil.Tokenize("<stdin>", src)
	if err != nil {
		return false
	}
	_, err = dustydevil.Parse(tokens)
	return dustydevil.IsIncomplete(err)
}
