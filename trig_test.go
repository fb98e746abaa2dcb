package symcore

import "testing"

func TestSinOfSixthPi(t *testing.T) {
	got := MakeFunction(FuncSin, []Expr{piTimes(1, 6)})
	want := MakeRational(1, 2)
	if !got.Equal(want) {
		t.Errorf("sin(pi/6) = %s, want %s", got, want)
	}
}

func TestCosOfZeroIsOne(t *testing.T) {
	got := MakeFunction(FuncCos, []Expr{zeroExpr})
	if !got.Equal(oneExpr) {
		t.Errorf("cos(0) = %s, want 1", got)
	}
}

func TestSinOfPiIsZero(t *testing.T) {
	got := MakeFunction(FuncSin, []Expr{MakeConstant(ConstPi)})
	if !got.Equal(zeroExpr) {
		t.Errorf("sin(pi) = %s, want 0", got)
	}
}

func TestAsinOfSinIsIdentityForPrincipalRange(t *testing.T) {
	// pi/5 has no exact-value table entry (denominators {1,2,3,4,6,8,12}
	// only), so sin(pi/5) stays symbolic and the principal-value
	// reduction path (rather than the exact-value table) is exercised.
	x := piTimes(1, 5)
	got := MakeFunction(FuncAsin, []Expr{MakeFunction(FuncSin, []Expr{x})})
	if !got.Equal(x) {
		t.Errorf("asin(sin(pi/5)) = %s, want %s", got, x)
	}
}

func TestAsinDomainError(t *testing.T) {
	if !IsUndefinedExpr(MakeFunction(FuncAsin, []Expr{MakeInteger(2)})) {
		t.Error("asin(2) must be Undefined (outside [-1, 1])")
	}
}
