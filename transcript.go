package dustydevil

import (
	"io"
	"os"
	"sync"
)

// DefaultBanner opens every transcript of a successfully parsed program.
const DefaultBanner = "Welcome to the DustyDevil Programming Language! \n"

// Transcript is the append-only output log of a run. Begin starts a fresh
// file; writes before Begin append to whatever is already there.
type Transcript struct {
	Path   string
	Banner string

	mu sync.Mutex
	f  *os.File
}

func NewTranscript(path, banner string) *Transcript {
	return &Transcript{Path: path, Banner: banner}
}

// Begin truncates the log and writes the banner line.
func (t *Transcript) Begin() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.f != nil {
		if err := t.f.Close(); err != nil {
			return err
		}
		t.f = nil
	}
	f, err := os.OpenFile(t.Path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	t.f = f
	_, err = io.WriteString(t.f, t.Banner+"\n")
	return err
}

func (t *Transcript) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.f == nil {
		f, err := os.OpenFile(t.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return 0, err
		}
		t.f = f
	}
	return t.f.Write(p)
}

func (t *Transcript) Println(s string) error {
	_, err := t.Write([]byte(s + "\n"))
	return err
}

func (t *Transcript) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.f == nil {
		return nil
	}
	err := t.f.Close()
	t.f = nil
	return err
}
