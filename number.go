package symcore

import (
	"math"
	"strconv"
)

type numberKind uint8

const (
	numInt numberKind = iota
	numRational
	numDouble
	numUndefined
)

// doubleTolerance is the absolute-and-relative tolerance used to
// compare doubles, per spec.md §3's Number invariant (~1e-10).
const doubleTolerance = 1e-10

// Number is a tagged union of {integer, rational, double, undefined},
// per spec.md §3. Rational form is always reduced to lowest terms with
// a positive denominator; an integer is never stored as a rational
// with denominator 1.
type Number struct {
	kind   numberKind
	num    Int // integer value, or rational numerator
	denom  Int // rational denominator (> 0); unused otherwise
	double float64
}

// NumberFromInt builds an integer Number.
func NumberFromInt(n Int) Number { return Number{kind: numInt, num: n} }

// NumberFromInt64 builds an integer Number from a machine integer.
func NumberFromInt64(n int64) Number { return NumberFromInt(IntFromInt64(n)) }

// NumberFromRational builds a Number from a numerator/denominator
// pair, reducing to lowest terms with a positive denominator. Returns
// an *InvalidPolynomialError if denom is zero; there is no separate
// domain-error type.
func NumberFromRational(n, d Int) (Number, error) {
	if d.IsZero() {
		return Number{}, &InvalidPolynomialError{Reason: "rational with zero denominator"}
	}
	if d.Sign() < 0 {
		n, d = n.Neg(), d.Neg()
	}
	g := n.Gcd(d)
	if !g.IsZero() && !g.IsOne() {
		n, d = n.Quo(g), d.Quo(g)
	}
	if d.IsOne() {
		return NumberFromInt(n), nil
	}
	return Number{kind: numRational, num: n, denom: d}, nil
}

// NumberFromDouble builds a double Number.
func NumberFromDouble(d float64) Number {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return NumberUndefined()
	}
	return Number{kind: numDouble, double: d}
}

// NumberUndefined builds the undefined Number.
func NumberUndefined() Number { return Number{kind: numUndefined} }

var (
	numZero = NumberFromInt64(0)
	numOne  = NumberFromInt64(1)
	numTwo  = NumberFromInt64(2)
	numHalf = mustRational(1, 2)
)

func mustRational(n, d int64) Number {
	r, err := NumberFromRational(IntFromInt64(n), IntFromInt64(d))
	if err != nil {
		panic(err)
	}
	return r
}

func (n Number) IsInt() bool       { return n.kind == numInt }
func (n Number) IsRational() bool  { return n.kind == numInt || n.kind == numRational }
func (n Number) IsDouble() bool    { return n.kind == numDouble }
func (n Number) IsUndefined() bool { return n.kind == numUndefined }

func (n Number) IsZero() bool {
	switch n.kind {
	case numInt:
		return n.num.IsZero()
	case numRational:
		return n.num.IsZero()
	case numDouble:
		return math.Abs(n.double) < doubleTolerance
	default:
		return false
	}
}

func (n Number) IsOne() bool {
	switch n.kind {
	case numInt:
		return n.num.IsOne()
	case numRational:
		return false // always reduced, so rational 1 can't occur
	case numDouble:
		return math.Abs(n.double-1) < doubleTolerance
	default:
		return false
	}
}

// Sign returns -1, 0 or +1; undefined has no sign (returns 0).
func (n Number) Sign() int {
	switch n.kind {
	case numInt:
		return n.num.Sign()
	case numRational:
		return n.num.Sign()
	case numDouble:
		if n.IsZero() {
			return 0
		}
		if n.double < 0 {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (n Number) Abs() Number {
	switch n.kind {
	case numInt:
		return NumberFromInt(n.num.Abs())
	case numRational:
		r, _ := NumberFromRational(n.num.Abs(), n.denom)
		return r
	case numDouble:
		return NumberFromDouble(math.Abs(n.double))
	default:
		return NumberUndefined()
	}
}

// Float64 converts n to a double. Only valid for non-undefined n.
func (n Number) Float64() float64 {
	switch n.kind {
	case numInt:
		return n.num.Float64()
	case numRational:
		return n.num.Float64() / n.denom.Float64()
	case numDouble:
		return n.double
	default:
		panic("symcore: Float64 of undefined Number")
	}
}

// Numerator and Denominator expose the rational components; for an
// integer Number the denominator is 1.
func (n Number) Numerator() Int {
	if n.kind == numInt || n.kind == numRational {
		return n.num
	}
	return IntFromInt64(0)
}

func (n Number) Denominator() Int {
	if n.kind == numRational {
		return n.denom
	}
	return IntFromInt64(1)
}

func (n Number) Add(m Number) Number {
	if n.IsUndefined() || m.IsUndefined() {
		return NumberUndefined()
	}
	if n.IsDouble() || m.IsDouble() {
		return NumberFromDouble(n.Float64() + m.Float64())
	}
	r, _ := NumberFromRational(
		n.Numerator().Mul(m.Denominator()).Add(m.Numerator().Mul(n.Denominator())),
		n.Denominator().Mul(m.Denominator()),
	)
	return r
}

func (n Number) Sub(m Number) Number { return n.Add(m.Neg()) }

func (n Number) Neg() Number {
	switch n.kind {
	case numInt:
		return NumberFromInt(n.num.Neg())
	case numRational:
		r, _ := NumberFromRational(n.num.Neg(), n.denom)
		return r
	case numDouble:
		return NumberFromDouble(-n.double)
	default:
		return NumberUndefined()
	}
}

func (n Number) Mul(m Number) Number {
	if n.IsUndefined() || m.IsUndefined() {
		return NumberUndefined()
	}
	if n.IsDouble() || m.IsDouble() {
		return NumberFromDouble(n.Float64() * m.Float64())
	}
	r, _ := NumberFromRational(n.Numerator().Mul(m.Numerator()), n.Denominator().Mul(m.Denominator()))
	return r
}

// Div returns n/m; division by zero is undefined.
func (n Number) Div(m Number) Number {
	if n.IsUndefined() || m.IsUndefined() || m.IsZero() {
		return NumberUndefined()
	}
	if n.IsDouble() || m.IsDouble() {
		return NumberFromDouble(n.Float64() / m.Float64())
	}
	r, _ := NumberFromRational(n.Numerator().Mul(m.Denominator()), n.Denominator().Mul(m.Numerator()))
	return r
}

func (n Number) Equal(m Number) bool {
	if n.IsUndefined() || m.IsUndefined() {
		return false
	}
	if n.IsDouble() || m.IsDouble() {
		a, b := n.Float64(), m.Float64()
		diff := math.Abs(a - b)
		return diff < doubleTolerance || diff < doubleTolerance*math.Max(math.Abs(a), math.Abs(b))
	}
	return n.Numerator().Mul(m.Denominator()).Equal(m.Numerator().Mul(n.Denominator()))
}

func (n Number) Less(m Number) bool {
	if n.IsUndefined() || m.IsUndefined() {
		return false
	}
	if n.IsDouble() || m.IsDouble() {
		return n.Float64() < m.Float64()
	}
	return n.Numerator().Mul(m.Denominator()).Cmp(m.Numerator().Mul(n.Denominator())) < 0
}

func (n Number) LessEqual(m Number) bool    { return n.Less(m) || n.Equal(m) }
func (n Number) Greater(m Number) bool      { return m.Less(n) }
func (n Number) GreaterEqual(m Number) bool { return m.LessEqual(n) }

// Power implements spec.md §4.1/§3's Number power, with overflow-to-
// undefined semantics: a negative base with a fractional exponent
// whose reduced denominator is even is undefined (would need a
// complex result); an odd denominator carries the sign on the
// numerator when rational exponent simplification extracts it.
func (n Number) Power(exp Number) Number {
	if n.IsUndefined() || exp.IsUndefined() {
		return NumberUndefined()
	}
	if exp.IsZero() {
		if n.IsZero() {
			return NumberUndefined() // 0^0
		}
		return numOne
	}
	if n.IsZero() {
		if exp.Sign() > 0 {
			return numZero
		}
		return NumberUndefined() // 0^negative
	}
	if n.IsDouble() || exp.IsDouble() {
		v := math.Pow(n.Float64(), exp.Float64())
		return NumberFromDouble(v)
	}
	// both rational
	if exp.IsInt() && exp.Numerator().FitsInt64() {
		e := exp.Numerator().Int64()
		if e >= 0 {
			return NumberFromInt(n.Numerator().Pow(e)).Div(NumberFromInt(n.Denominator().Pow(e)))
		}
		return NumberFromInt(n.Denominator().Pow(-e)).Div(NumberFromInt(n.Numerator().Pow(-e)))
	}
	// Fractional rational exponent applied to a rational base: only
	// defined in closed rational form for a negative base when the
	// reduced exponent's denominator is odd (real odd root); even
	// denominator has no real value.
	if n.Sign() < 0 {
		d := exp.Denominator()
		two := IntFromInt64(2)
		if d.Rem(two).IsZero() {
			return NumberUndefined()
		}
		v := math.Pow(-n.Float64(), exp.Float64())
		if exp.Numerator().Rem(two).Sign() != 0 {
			v = -v
		}
		return NumberFromDouble(v)
	}
	return NumberFromDouble(math.Pow(n.Float64(), exp.Float64()))
}

func (n Number) String() string {
	switch n.kind {
	case numInt:
		return n.num.String()
	case numRational:
		return n.num.String() + "/" + n.denom.String()
	case numDouble:
		return floatString(n.double)
	default:
		return "undefined"
	}
}

func floatString(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
