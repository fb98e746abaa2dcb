package symcore

import "testing"

func sym(name string) *SymbolExpr { return MakeSymbol(name, false).(*SymbolExpr) }

func TestDegreeAndMinDegree(t *testing.T) {
	x := sym("x")
	// x^3 + x^2
	p := MakeSum([]Expr{MakePower(x, MakeInteger(3)), MakePower(x, MakeInteger(2))})
	if d := degree(p, x); d != 3 {
		t.Errorf("degree = %d, want 3", d)
	}
	if d := minDegree(p, x); d != 2 {
		t.Errorf("minDegree = %d, want 2", d)
	}
}

func TestLeadingCoeffAndCoeff(t *testing.T) {
	x := sym("x")
	y := sym("y")
	// 3*y*x^2 + x + 7
	p := MakeSum([]Expr{
		MakeProduct([]Expr{MakeInteger(3), y, MakePower(x, MakeInteger(2))}),
		x,
		MakeInteger(7),
	})
	want := MakeProduct([]Expr{MakeInteger(3), y})
	if lc := leadingCoeff(p, x); !lc.Equal(want) {
		t.Errorf("leadingCoeff = %s, want %s", lc, want)
	}
	if c := coeff(p, x, 0); !c.Equal(MakeInteger(7)) {
		t.Errorf("coeff(p,x,0) = %s, want 7", c)
	}
	if c := coeff(p, x, 1); !c.Equal(oneExpr) {
		t.Errorf("coeff(p,x,1) = %s, want 1", c)
	}
}

func TestDivideSatisfiesDivisionIdentity(t *testing.T) {
	x := sym("x")
	// u = x^2 + 3x + 2, v = x + 1 -> q = x + 2, r = 0
	u := MakeSum([]Expr{MakePower(x, MakeInteger(2)), MakeProduct([]Expr{MakeInteger(3), x}), MakeInteger(2)})
	v := MakeSum([]Expr{x, oneExpr})
	q, r := divide(u, v, x)

	recombined := MakeSum([]Expr{MakeProduct([]Expr{q, v}), r}).Expand()
	if !recombined.Equal(u.Expand()) {
		t.Errorf("q*v + r = %s, want %s", recombined, u.Expand())
	}
	want := MakeSum([]Expr{x, MakeInteger(2)})
	if !q.Equal(want) {
		t.Errorf("quotient = %s, want %s", q, want)
	}
	if !r.Equal(zeroExpr) {
		t.Errorf("remainder = %s, want 0", r)
	}
}

func TestDivideByZeroLeadingCoeffIsInvalidPolynomial(t *testing.T) {
	x := sym("x")
	u := MakeSum([]Expr{x, oneExpr})
	q, r := divide(u, zeroExpr, x)
	if !IsUndefinedExpr(q) || !IsUndefinedExpr(r) {
		t.Errorf("divide(u, 0, x) = (%s, %s), want (Undefined, Undefined)", q, r)
	}
}

func TestDivideEmptyVariableListRationalCase(t *testing.T) {
	q, r := Divide(MakeInteger(6), MakeInteger(3), nil)
	if !q.Equal(MakeInteger(2)) || !r.Equal(zeroExpr) {
		t.Errorf("Divide(6, 3, []) = (%s, %s), want (2, 0)", q, r)
	}
}

func TestDivideEmptyVariableListNonDividingCase(t *testing.T) {
	q, r := Divide(MakeInteger(5), MakeInteger(2), nil)
	if !q.Equal(zeroExpr) || !r.Equal(MakeInteger(5)) {
		t.Errorf("Divide(5, 2, []) = (%s, %s), want (0, 5)", q, r)
	}
}

func TestDivideUndefinedInputIsInvalidPolynomial(t *testing.T) {
	x := sym("x")
	q, r := Divide(Undefined(), x, []*SymbolExpr{x})
	if !IsUndefinedExpr(q) || !IsUndefinedExpr(r) {
		t.Errorf("Divide(Undefined, x, [x]) = (%s, %s), want (Undefined, Undefined)", q, r)
	}
}

func TestPseudoDivideClearsFractions(t *testing.T) {
	x := sym("x")
	// u = 3x^2 + x, v = 2x + 1
	u := MakeSum([]Expr{MakeProduct([]Expr{MakeInteger(3), MakePower(x, MakeInteger(2))}), x})
	v := MakeSum([]Expr{MakeProduct([]Expr{MakeInteger(2), x}), oneExpr})
	q, r := pseudoDivide(u, v, x)

	lcv := leadingCoeff(v, x)
	delta := degree(u, x) - degree(v, x) + 1
	scale := MakePower(lcv, MakeInteger(int64(delta)))
	lhs := MakeProduct([]Expr{scale, u}).Expand()
	rhs := MakeSum([]Expr{MakeProduct([]Expr{q, v}), r}).Expand()
	if !lhs.Equal(rhs) {
		t.Errorf("lcv^delta * u = %s, want q*v + r = %s", lhs, rhs)
	}
}

func TestUnitOfZeroPolynomial(t *testing.T) {
	x := sym("x")
	if u := unit(zeroExpr, x); u != 1 {
		t.Errorf("unit(0, x) = %d, want 1", u)
	}
}

func TestUnitSignOfLeadingCoeff(t *testing.T) {
	x := sym("x")
	p := MakeSum([]Expr{MakeProduct([]Expr{MakeInteger(-2), MakePower(x, MakeInteger(2))}), x})
	if u := unit(p, x); u != -1 {
		t.Errorf("unit(-2x^2+x, x) = %d, want -1", u)
	}
}
