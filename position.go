package dustydevil

import "strconv"

// Position is a snapshot of a point in a script. Tokens and nodes keep their
// own copies, so advancing a lexer never moves a recorded position.
type Position struct {
	Offset int
	Line   int
	Column int
	Script string
	Text   string
}

// Advance returns the position one byte further on. current is the byte
// being stepped over; stepping over a newline starts a new line.
func (p Position) Advance(current byte) Position {
	p.Offset++
	p.Column++
	if current == '\n' {
		p.Line++
		p.Column = 0
	}
	return p
}

func (p Position) String() string {
	return p.Script + ":" + strconv.Itoa(p.Line+1) + ":" + strconv.Itoa(p.Column+1)
}
