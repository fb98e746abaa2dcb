package symcore

import "testing"

func TestGcdOfZeroAndZeroIsUndefined(t *testing.T) {
	x := sym("x")
	if !IsUndefinedExpr(gcd(zeroExpr, zeroExpr, x, GcdSubresultant)) {
		t.Error("gcd(0, 0) must be Undefined")
	}
}

func TestGcdWithZeroReturnsOther(t *testing.T) {
	x := sym("x")
	p := MakeSum([]Expr{x, oneExpr})
	if g := gcd(p, zeroExpr, x, GcdSubresultant); !g.Equal(p) {
		t.Errorf("gcd(p, 0) = %s, want %s", g, p)
	}
	if g := gcd(zeroExpr, p, x, GcdSubresultant); !g.Equal(p) {
		t.Errorf("gcd(0, p) = %s, want %s", g, p)
	}
}

func TestGcdOfTwoRationalsIsPositiveIntegerGcd(t *testing.T) {
	x := sym("x")
	g := gcd(MakeInteger(12), MakeInteger(-18), x, GcdSubresultant)
	if !g.Equal(MakeInteger(6)) {
		t.Errorf("gcd(12, -18) = %s, want 6", g)
	}
}

func TestGcdDividesBothOperandsExactly(t *testing.T) {
	x := sym("x")
	// b^2 - 4 and b + 2 share the factor b + 2; whatever gcd returns
	// must divide both operands with zero remainder.
	b := sym("b")
	u := MakeSum([]Expr{MakePower(b, MakeInteger(2)), negated(MakeInteger(4))}) // b^2 - 4 = (b-2)(b+2)
	v := MakeSum([]Expr{b, MakeInteger(2)})                                    // b + 2

	g := gcd(u, v, b, GcdSubresultant)
	_, r1 := divide(u, g, b)
	_, r2 := divide(v, g, b)
	if !r1.Equal(zeroExpr) {
		t.Errorf("gcd does not divide u exactly, remainder = %s", r1)
	}
	if !r2.Equal(zeroExpr) {
		t.Errorf("gcd does not divide v exactly, remainder = %s", r2)
	}
	_ = x
}

// TestGcdAutoSelectsMainVariable reproduces spec.md §8 end-to-end
// scenario 4 through the public Gcd API: gcd(a*b^2-a*c^2, a*b+a*c) with
// the main variable chosen automatically (here, "a", the first of the
// three shared symbols a/b/c in canonical sorted order) -> a*(b+c).
func TestGcdAutoSelectsMainVariable(t *testing.T) {
	a, b, c := sym("a"), sym("b"), sym("c")
	u := MakeSum([]Expr{
		MakeProduct([]Expr{a, MakePower(b, MakeInteger(2))}),
		negated(MakeProduct([]Expr{a, MakePower(c, MakeInteger(2))})),
	})
	v := MakeSum([]Expr{MakeProduct([]Expr{a, b}), MakeProduct([]Expr{a, c})})

	want := MakeProduct([]Expr{a, MakeSum([]Expr{b, c})}).Expand()

	for _, algo := range []GcdAlgo{GcdSubresultant, GcdPrimitive} {
		got := Gcd(u, v, algo).Expand()
		if !got.Equal(want) {
			t.Errorf("Gcd(u, v, %v) = %s, want %s", algo, got, want)
		}
	}
}

func TestGcdNoSharedVariableFallsBackToContent(t *testing.T) {
	x, y := sym("x"), sym("y")
	u := MakeProduct([]Expr{MakeInteger(6), x})
	v := MakeProduct([]Expr{MakeInteger(9), y})
	if g := Gcd(u, v, GcdSubresultant); !g.Equal(MakeInteger(3)) {
		t.Errorf("Gcd(6x, 9y) = %s, want 3 (numeric content gcd, no shared symbol)", g)
	}
}

func TestGcdUndefinedOperandIsUndefined(t *testing.T) {
	x := sym("x")
	if !IsUndefinedExpr(Gcd(Undefined(), x, GcdSubresultant)) {
		t.Error("Gcd(Undefined, x) should be Undefined")
	}
}

func TestContentDegreeCoeffExportedWrappers(t *testing.T) {
	x := sym("x")
	p := MakeSum([]Expr{
		MakeProduct([]Expr{MakeInteger(6), MakePower(x, MakeInteger(2))}),
		MakeProduct([]Expr{MakeInteger(9), x}),
	})
	if c := Content(p, x); !c.Equal(MakeInteger(3)) {
		t.Errorf("Content(6x^2+9x, x) = %s, want 3", c)
	}
	if d := Degree(p, x); !d.Equal(MakeInteger(2)) {
		t.Errorf("Degree(6x^2+9x, x) = %s, want 2", d)
	}
	if co := Coeff(p, x, 1); !co.Equal(MakeInteger(9)) {
		t.Errorf("Coeff(6x^2+9x, x, 1) = %s, want 9", co)
	}
}
