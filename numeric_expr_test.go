package symcore

import "testing"

func TestNumericValueRoundTrip(t *testing.T) {
	tests := []struct {
		e    Expr
		want string
	}{
		{MakeInteger(3), "3"},
		{MakeRational(1, 2), "1/2"},
		{MakeRational(-3, 4), "-3/4"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}

func TestRationalReducesOnConstruction(t *testing.T) {
	// 2/4 must already be in lowest terms before it ever reaches a
	// comparison: the canonical form has no reduction step of its own.
	a := MakeRational(2, 4)
	b := MakeRational(1, 2)
	if !a.Equal(b) {
		t.Errorf("MakeRational(2,4) = %s, want it to equal %s", a, b)
	}
}

func TestZeroDenominatorIsUndefined(t *testing.T) {
	if !IsUndefinedExpr(MakeRational(1, 0)) {
		t.Error("MakeRational(1, 0) should be Undefined")
	}
}

func TestUndefinedNeverEqualsItself(t *testing.T) {
	u := Undefined()
	if u.Equal(u) {
		t.Error("Undefined must never be Equal, even to itself")
	}
}
