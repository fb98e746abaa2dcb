package symcore

import "testing"

func TestCompareExprCrossKindRank(t *testing.T) {
	n := MakeInteger(1)
	c := MakeConstant(ConstPi)
	s := MakeSymbol("x", false)
	if !Less(n, c) {
		t.Error("Numeric should sort before Constant")
	}
	if !Less(c, s) {
		t.Error("Constant should sort before Symbol")
	}
}

func TestCompareExprSymbolSameNameOrdersByPositivity(t *testing.T) {
	xNeg := MakeSymbol("x", false)
	xPos := MakeSymbol("x", true)
	if !Less(xNeg, xPos) {
		t.Error("non-positive x should sort before positive x")
	}
}

func TestCompareExprSymbolOrdersByName(t *testing.T) {
	x := MakeSymbol("x", false)
	y := MakeSymbol("y", false)
	if !Less(x, y) {
		t.Error("x should sort before y")
	}
}

func TestSortExprsProducesCanonicalOrder(t *testing.T) {
	x := MakeSymbol("x", false)
	y := MakeSymbol("y", false)
	z := MakeSymbol("z", false)
	es := []Expr{z, x, y}
	sortExprs(es)
	if !(es[0].Equal(x) && es[1].Equal(y) && es[2].Equal(z)) {
		t.Errorf("sortExprs did not produce canonical order, got %v %v %v", es[0], es[1], es[2])
	}
}
