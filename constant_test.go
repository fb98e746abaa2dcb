package symcore

import "testing"

func TestMakeConstantSharesInstances(t *testing.T) {
	if MakeConstant(ConstPi) != MakeConstant(ConstPi) {
		t.Error("MakeConstant(ConstPi) should return the same shared instance")
	}
}

func TestConstantEqualDistinguishesPiAndE(t *testing.T) {
	pi := MakeConstant(ConstPi)
	e := MakeConstant(ConstE)
	if pi.Equal(e) {
		t.Error("pi should not equal e")
	}
}

func TestConstantIsPositiveAndNonZero(t *testing.T) {
	pi := MakeConstant(ConstPi)
	if !pi.IsPositive() || pi.IsZero() {
		t.Error("pi should be positive and non-zero")
	}
}

func TestConstantDiffIsZero(t *testing.T) {
	pi := MakeConstant(ConstPi)
	x := MakeSymbol("x", false).(*SymbolExpr)
	if !pi.Diff(x).Equal(MakeInteger(0)) {
		t.Error("d/dx(pi) should be 0")
	}
}
