package symcore

import "hash/fnv"

// NumericExpr wraps a Number as an expression leaf.
type NumericExpr struct {
	value Number
}

// MakeInteger builds a Numeric expression from a machine integer.
func MakeInteger(i int64) Expr { return makeNumeric(NumberFromInt64(i)) }

// MakeBigInt builds a Numeric expression from an arbitrary-precision Int.
func MakeBigInt(i Int) Expr { return makeNumeric(NumberFromInt(i)) }

// MakeRational builds a Numeric expression from a numerator/denominator
// pair; a zero denominator yields Undefined (DomainError).
func MakeRational(num, denom int64) Expr {
	n, err := NumberFromRational(IntFromInt64(num), IntFromInt64(denom))
	if err != nil {
		return Undefined()
	}
	return makeNumeric(n)
}

// MakeDouble builds a Numeric expression from a float64.
func MakeDouble(d float64) Expr { return makeNumeric(NumberFromDouble(d)) }

// MakeUndefined returns the shared Undefined expression.
func MakeUndefined() Expr { return Undefined() }

func makeNumeric(n Number) Expr {
	if n.IsUndefined() {
		return Undefined()
	}
	return &NumericExpr{value: n}
}

var (
	zeroExpr    = makeNumeric(numZero)
	oneExpr     = makeNumeric(numOne)
	minusOneExpr = makeNumeric(numOne.Neg())
	twoExpr     = makeNumeric(numTwo)
	halfExpr    = makeNumeric(numHalf)
)

func (n *NumericExpr) Kind() Kind       { return KindNumeric }
func (n *NumericExpr) Operands() []Expr { return nil }
func (n *NumericExpr) Equal(other Expr) bool {
	o, ok := other.(*NumericExpr)
	return ok && n.value.Equal(o.value)
}
func (n *NumericExpr) Contains(sub Expr) bool { return n.Equal(sub) }
func (n *NumericExpr) NumericValue() (Number, bool) { return n.value, true }
func (n *NumericExpr) IsPositive() bool             { return n.value.Sign() > 0 }
func (n *NumericExpr) IsNegative() bool             { return n.value.Sign() < 0 }
func (n *NumericExpr) IsZero() bool                 { return n.value.IsZero() }
func (n *NumericExpr) Diff(*SymbolExpr) Expr        { return zeroExpr }
func (n *NumericExpr) Subst(from, to Expr) Expr {
	if n.Equal(from) {
		return to
	}
	return n
}
func (n *NumericExpr) Expand() Expr  { return n }
func (n *NumericExpr) String() string { return n.value.String() }
func (n *NumericExpr) hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte("numeric:" + n.value.String()))
	return h.Sum64()
}
func (n *NumericExpr) complexity() int {
	switch {
	case n.value.IsInt():
		return 1
	case n.value.IsRational():
		return 2
	default:
		return 3
	}
}

// Value exposes the underlying Number of a Numeric expression.
func (n *NumericExpr) Value() Number { return n.value }
