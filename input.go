package dustydevil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JeffThomas/lexx/matchers"
)

// LineReader supplies the answers to Read statements. *liner.State
// satisfies it directly.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

type promptReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineReader prompts on out and reads one line per call from in.
func NewLineReader(in io.Reader, out io.Writer) LineReader {
	return &promptReader{in: bufio.NewReader(in), out: out}
}

func (r *promptReader) Prompt(prompt string) (string, error) {
	if r.out != nil {
		if _, err := io.WriteString(r.out, prompt); err != nil {
			return "", err
		}
	}
	line, err := r.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

var errNotInteger = errors.New("not an integer")

func integerMatchers() []matcherFactory {
	return []matcherFactory{
		matchers.StartIntegerMatcher,
		matchers.StartWhitespaceMatcher,
		matchers.InitSymbolMatcher([]string{"+", "-"}),
	}
}

// ParseInteger accepts an optionally signed decimal integer with optional
// surrounding whitespace, and nothing else.
func ParseInteger(text string) (int64, error) {
	s := newScanner("<input>", text, integerMatchers()...)

	sign := ""
	digits := ""
	for {
		t, _, _, err := s.next()
		if err != nil {
			return 0, err
		}
		if t == nil {
			if !s.atEnd() {
				return 0, errNotInteger
			}
			break
		}

		switch t.Type {
		case matchers.WHITESPACE:
			if sign != "" && digits == "" {
				return 0, errNotInteger
			}
		case matchers.SYMBOL:
			if sign != "" || digits != "" {
				return 0, errNotInteger
			}
			sign = t.Value
		case matchers.INTEGER:
			if digits != "" {
				return 0, errNotInteger
			}
			digits = t.Value
		default:
			return 0, errNotInteger
		}
	}

	if digits == "" {
		return 0, errNotInteger
	}
	v, err := strconv.ParseInt(sign+digits, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("integer out of range")
		}
		return 0, errNotInteger
	}
	return v, nil
}
