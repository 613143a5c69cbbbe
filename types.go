package dustydevil

import (
	"math"
	"strconv"
	"strings"
)

// Number is the only runtime value of the language. Integers stay integers
// through + - * until a result no longer fits in an int64; division always
// produces a float.
type Number struct {
	Int     int64
	Float   float64
	IsFloat bool

	Start   Position
	End     Position
	Context *Context
}

func IntNumber(i int64) Number {
	return Number{Int: i}
}

func FloatNumber(f float64) Number {
	return Number{Float: f, IsFloat: true}
}

// SetPos returns a copy of n carrying the given span.
func (n Number) SetPos(start, end Position) Number {
	n.Start = start
	n.End = end
	return n
}

// SetContext returns a copy of n attributed to ctx.
func (n Number) SetContext(ctx *Context) Number {
	n.Context = ctx
	return n
}

func (n Number) Float64() float64 {
	if n.IsFloat {
		return n.Float
	}
	return float64(n.Int)
}

func (n Number) IsZero() bool {
	if n.IsFloat {
		return n.Float == 0
	}
	return n.Int == 0
}

// Equal compares numeric values only, ignoring span and context.
func (n Number) Equal(other Number) bool {
	if !n.IsFloat && !other.IsFloat {
		return n.Int == other.Int
	}
	return n.Float64() == other.Float64()
}

func (n Number) AddedTo(other Number) Number {
	if !n.IsFloat && !other.IsFloat {
		r := n.Int + other.Int
		if !((n.Int > 0 && other.Int > 0 && r < 0) || (n.Int < 0 && other.Int < 0 && r >= 0)) {
			return IntNumber(r).SetContext(n.Context)
		}
	}
	return FloatNumber(n.Float64() + other.Float64()).SetContext(n.Context)
}

func (n Number) SubbedBy(other Number) Number {
	if !n.IsFloat && !other.IsFloat {
		r := n.Int - other.Int
		if !((n.Int >= 0 && other.Int < 0 && r < 0) || (n.Int < 0 && other.Int > 0 && r >= 0)) {
			return IntNumber(r).SetContext(n.Context)
		}
	}
	return FloatNumber(n.Float64() - other.Float64()).SetContext(n.Context)
}

func (n Number) MultedBy(other Number) Number {
	if !n.IsFloat && !other.IsFloat {
		a, b := n.Int, other.Int
		if a == 0 || b == 0 {
			return IntNumber(0).SetContext(n.Context)
		}
		r := a * b
		overflow := r/b != a ||
			(a == -1 && b == math.MinInt64) ||
			(b == -1 && a == math.MinInt64)
		if !overflow {
			return IntNumber(r).SetContext(n.Context)
		}
	}
	return FloatNumber(n.Float64() * other.Float64()).SetContext(n.Context)
}

// DivedBy divides n by other. ok is false when other is zero.
func (n Number) DivedBy(other Number) (result Number, ok bool) {
	if other.IsZero() {
		return Number{}, false
	}
	return FloatNumber(n.Float64() / other.Float64()).SetContext(n.Context), true
}

func (n Number) Negated() Number {
	return n.MultedBy(IntNumber(-1))
}

func (n Number) String() string {
	if !n.IsFloat {
		return strconv.FormatInt(n.Int, 10)
	}
	return formatFloat(n.Float)
}

// formatFloat renders f the way the reference output files show floats:
// shortest round-trip digits, always with a fractional part, and exponent
// form outside [1e-4, 1e16).
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(f)
	if abs >= 1e-4 && abs < 1e16 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.ContainsAny(s, ".") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatFloat(f, 'e', -1, 64)
}
