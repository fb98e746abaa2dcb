package symcore

import "testing"

func TestMakeSymbolRejectsEmptyName(t *testing.T) {
	if !IsUndefinedExpr(MakeSymbol("", false)) {
		t.Error("MakeSymbol(\"\") should be Undefined")
	}
}

func TestMakeSymbolRejectsReservedPrefix(t *testing.T) {
	if !IsUndefinedExpr(MakeSymbol(reservedPrefix+"0", false)) {
		t.Error("MakeSymbol with the reserved internal prefix should be Undefined")
	}
}

func TestSymbolEqualRequiresMatchingPositivity(t *testing.T) {
	xNeg := MakeSymbol("x", false)
	xPos := MakeSymbol("x", true)
	if xNeg.Equal(xPos) {
		t.Error("x (unknown sign) should not equal x (positive)")
	}
}

func TestSymbolDiffIsOneForSelfZeroOtherwise(t *testing.T) {
	x := MakeSymbol("x", false).(*SymbolExpr)
	y := MakeSymbol("y", false).(*SymbolExpr)
	if !x.Diff(x).Equal(MakeInteger(1)) {
		t.Error("d/dx(x) should be 1")
	}
	if !x.Diff(y).Equal(MakeInteger(0)) {
		t.Error("d/dy(x) should be 0")
	}
}

func TestSymbolPositiveFlagReflectsIsPositive(t *testing.T) {
	xPos := MakeSymbol("x", true)
	if !xPos.IsPositive() {
		t.Error("symbol declared positive should report IsPositive() true")
	}
	xUnknown := MakeSymbol("x", false)
	if xUnknown.IsPositive() {
		t.Error("symbol not declared positive should report IsPositive() false")
	}
}
