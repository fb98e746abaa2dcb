package symcore

import "testing"

func TestMakeSumSingletonReturnsOperand(t *testing.T) {
	x := MakeSymbol("x", false)
	if got := MakeSum([]Expr{x}); !got.Equal(x) {
		t.Errorf("MakeSum([x]) = %s, want x", got)
	}
}

func TestMakeSumDropsZero(t *testing.T) {
	x := MakeSymbol("x", false)
	if got := MakeSum([]Expr{x, zeroExpr}); !got.Equal(x) {
		t.Errorf("MakeSum([x, 0]) = %s, want x", got)
	}
}

func TestMakeSumUndefinedPropagates(t *testing.T) {
	x := MakeSymbol("x", false)
	if !IsUndefinedExpr(MakeSum([]Expr{x, Undefined()})) {
		t.Error("MakeSum([x, Undefined]) must be Undefined")
	}
}

func TestMakeSumCancelsOpposites(t *testing.T) {
	n := MakeInteger(5)
	if got := MakeSum([]Expr{n, negated(n)}); !got.Equal(zeroExpr) {
		t.Errorf("n + -n = %s, want 0", got)
	}
}

func TestMakeSumCollectsLikeTerms(t *testing.T) {
	x := MakeSymbol("x", false)
	sum := MakeSum([]Expr{x, x, x})
	want := MakeProduct([]Expr{MakeInteger(3), x})
	if !sum.Equal(want) {
		t.Errorf("x+x+x = %s, want %s", sum, want)
	}
}

func TestSumSubstIdentity(t *testing.T) {
	x := MakeSymbol("x", false)
	e := MakeSum([]Expr{x, MakeInteger(1)})
	if got := e.Subst(x, x); !got.Equal(e) {
		t.Errorf("subst(e, x, x) = %s, want %s", got, e)
	}
}

func TestExpandDistributesProductOverSum(t *testing.T) {
	a := MakeSymbol("a", false)
	b := MakeSymbol("b", false)
	c := MakeSymbol("c", false)
	d := MakeSymbol("d", false)
	lhs := MakeProduct([]Expr{MakeSum([]Expr{a, b}), MakeSum([]Expr{c, d})})
	got := lhs.Expand()

	want := MakeSum([]Expr{
		MakeProduct([]Expr{a, c}),
		MakeProduct([]Expr{a, d}),
		MakeProduct([]Expr{b, c}),
		MakeProduct([]Expr{b, d}),
	})
	if !got.Equal(want) {
		t.Errorf("expand((a+b)*(c+d)) = %s, want %s", got, want)
	}
}
