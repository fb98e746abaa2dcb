package symcore

import "testing"

func TestSymbolMapReplaceReusesSameTempForEqualSubexpr(t *testing.T) {
	m := NewSymbolMap()
	x := MakeSymbol("x", false)
	sinX := makeAtan(x) // any opaque FunctionExpr works here

	t1 := m.Replace(sinX)
	t2 := m.Replace(sinX)
	if !t1.Equal(t2) {
		t.Error("Replace should return the same temp symbol for structurally equal subexpressions")
	}
}

func TestSymbolMapEncodeLeavesPolynomialPartAlone(t *testing.T) {
	m := NewSymbolMap()
	x := sym("x")
	poly := MakeSum([]Expr{MakePower(x, MakeInteger(2)), MakeInteger(1)})
	encoded := m.encode(poly)
	if !encoded.Equal(poly) {
		t.Errorf("encode should leave a pure polynomial in x unchanged, got %s", encoded)
	}
}

func TestSymbolMapEncodeReplacesFunctionAtom(t *testing.T) {
	m := NewSymbolMap()
	x := MakeSymbol("x", false)
	atanX := makeAtan(x)
	encoded := m.encode(atanX)
	if _, ok := encoded.(*SymbolExpr); !ok {
		t.Errorf("encode should replace a function call with a temp symbol, got %T", encoded)
	}
}

func TestSymbolMapRevertRestoresOriginal(t *testing.T) {
	m := NewSymbolMap()
	x := MakeSymbol("x", false)
	atanX := makeAtan(x)
	encoded := m.encode(atanX)
	reverted := m.Revert(encoded)
	if !reverted.Equal(atanX) {
		t.Errorf("Revert(encode(e)) should equal e, got %s, want %s", reverted, atanX)
	}
}
