package dustydevil

import (
	"strconv"
	"strings"
)

type ErrorKind uint8

const (
	IllegalCharacter ErrorKind = iota
	InvalidSyntax
	Runtime
	InputFormat
)

var errorNames = [...]string{
	IllegalCharacter: "Illegal Character",
	InvalidSyntax:    "Invalid Syntax",
	Runtime:          "Runtime Error",
	InputFormat:      "Input Format Error",
}

func (k ErrorKind) String() string {
	if int(k) >= len(errorNames) {
		return "Error"
	}
	return errorNames[k]
}

// Error is a diagnostic from any stage of the pipeline. Runtime and
// InputFormat errors also carry the Context they were raised in, which is
// walked to build the traceback.
type Error struct {
	Kind    ErrorKind
	Details string
	Start   Position
	End     Position
	Context *Context
}

func NewIllegalCharError(start, end Position, details string) *Error {
	return &Error{Kind: IllegalCharacter, Details: details, Start: start, End: end}
}

func NewInvalidSyntaxError(start, end Position, details string) *Error {
	return &Error{Kind: InvalidSyntax, Details: details, Start: start, End: end}
}

func NewRuntimeError(start, end Position, details string, ctx *Context) *Error {
	return &Error{Kind: Runtime, Details: details, Start: start, End: end, Context: ctx}
}

func NewInputFormatError(start, end Position, details string, ctx *Context) *Error {
	return &Error{Kind: InputFormat, Details: details, Start: start, End: end, Context: ctx}
}

// Error renders the full diagnostic, source excerpt included.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Kind == Runtime || e.Kind == InputFormat {
		b.WriteString(e.traceback())
		b.WriteString(e.Kind.String() + ": " + e.Details)
	} else {
		b.WriteString(e.Kind.String() + ": " + e.Details + "\n")
		b.WriteString("File " + e.Start.Script + ", line " + strconv.Itoa(e.Start.Line+1))
	}
	b.WriteString("\n\n")
	b.WriteString(StringWithArrows(e.Start.Text, e.Start, e.End))
	return b.String()
}

func (e *Error) traceback() string {
	result := ""
	pos := e.Start
	for ctx := e.Context; ctx != nil; ctx = ctx.Parent {
		result = "  File " + pos.Script + ", line " + strconv.Itoa(pos.Line+1) + ", in " + ctx.DisplayName + "\n" + result
		pos = ctx.ParentEntryPos
	}
	return "Traceback (most recent call last):\n" + result
}

// StringWithArrows returns the lines of text covered by start..end, each
// followed by a line of carets under the covered columns. Tabs are dropped
// from the result.
func StringWithArrows(text string, start, end Position) string {
	var b strings.Builder

	idxStart := strings.LastIndex(text[:clamp(start.Offset, 0, len(text))], "\n")
	if idxStart < 0 {
		idxStart = 0
	}
	idxEnd := nextNewline(text, idxStart+1)

	lineCount := end.Line - start.Line + 1
	for i := 0; i < lineCount; i++ {
		line := text[idxStart:idxEnd]
		colStart := 0
		if i == 0 {
			colStart = start.Column
		}
		colEnd := len(line) - 1
		if i == lineCount-1 {
			colEnd = end.Column
		}

		b.WriteString(line + "\n")
		b.WriteString(strings.Repeat(" ", nonNegative(colStart)))
		b.WriteString(strings.Repeat("^", nonNegative(colEnd-colStart)))

		idxStart = idxEnd
		idxEnd = nextNewline(text, idxStart+1)
	}

	return strings.ReplaceAll(b.String(), "\t", "")
}

func nextNewline(text string, from int) int {
	if from >= len(text) {
		return len(text)
	}
	i := strings.IndexByte(text[from:], '\n')
	if i < 0 {
		return len(text)
	}
	return from + i
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
