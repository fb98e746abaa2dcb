package symcore

import (
	"hash/fnv"
	"math"
)

// ConstantExpr represents the symbolic constants pi and e.
type ConstantExpr struct {
	kind ConstantKind
}

var (
	piExpr = &ConstantExpr{kind: ConstPi}
	eExpr  = &ConstantExpr{kind: ConstE}
)

// MakeConstant returns the shared pi or e expression.
func MakeConstant(k ConstantKind) Expr {
	if k == ConstPi {
		return piExpr
	}
	return eExpr
}

func (c *ConstantExpr) Kind() Kind       { return KindConstant }
func (c *ConstantExpr) ConstKind() ConstantKind { return c.kind }
func (c *ConstantExpr) Operands() []Expr { return nil }
func (c *ConstantExpr) Equal(other Expr) bool {
	o, ok := other.(*ConstantExpr)
	return ok && o.kind == c.kind
}
func (c *ConstantExpr) Contains(sub Expr) bool { return c.Equal(sub) }
func (c *ConstantExpr) NumericValue() (Number, bool) {
	if c.kind == ConstPi {
		return NumberFromDouble(math.Pi), true
	}
	return NumberFromDouble(math.E), true
}
func (c *ConstantExpr) IsPositive() bool      { return true }
func (c *ConstantExpr) IsNegative() bool      { return false }
func (c *ConstantExpr) IsZero() bool          { return false }
func (c *ConstantExpr) Diff(*SymbolExpr) Expr { return zeroExpr }
func (c *ConstantExpr) Subst(from, to Expr) Expr {
	if c.Equal(from) {
		return to
	}
	return c
}
func (c *ConstantExpr) Expand() Expr  { return c }
func (c *ConstantExpr) String() string { return c.kind.String() }
func (c *ConstantExpr) hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte("constant:" + c.kind.String()))
	return h.Sum64()
}
func (c *ConstantExpr) complexity() int { return 4 }
