package symcore

import "testing"

func intRow(vals ...int64) []Expr {
	row := make([]Expr, len(vals))
	for i, v := range vals {
		row[i] = MakeInteger(v)
	}
	return row
}

// spec.md §8 end-to-end scenario 5.
func TestSolveDim3MatchesExpectedSolutionBothPivots(t *testing.T) {
	a := Matrix{intRow(0, 2, 1), intRow(3, 4, 2), intRow(9, 22, 7)}
	b := Vector(intRow(7, 17, 74))
	want := Vector(intRow(1, 2, 3))

	for _, algo := range []PivotAlgo{PivotFirstNonZero, PivotLeastComplexity} {
		x, err := Solve(a, b, algo, nil)
		if err != nil {
			t.Fatalf("Solve (algo %v) returned error: %v", algo, err)
		}
		for i := range want {
			if !x[i].Equal(want[i]) {
				t.Errorf("algo %v: x[%d] = %s, want %s", algo, i, x[i], want[i])
			}
		}
	}
}

func TestSolveSatisfiesAxEqualsB(t *testing.T) {
	a := Matrix{intRow(2, 1), intRow(1, 3)}
	b := Vector(intRow(5, 10))
	x, err := Solve(a, b, PivotFirstNonZero, nil)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	for i := range a {
		sum := Expr(zeroExpr)
		for j := range a[i] {
			sum = MakeSum([]Expr{sum, MakeProduct([]Expr{a[i][j], x[j]})})
		}
		if got := Normal(sum); !got.Equal(b[i]) {
			t.Errorf("row %d: A*x = %s, want %s", i, got, b[i])
		}
	}
}

// spec.md §8 end-to-end scenario 6.
func TestDeterminantSymbolicMatrix(t *testing.T) {
	a := sym("a")
	bSym := sym("b")
	m := Matrix{
		{zeroExpr, oneExpr, a},
		{bSym, zeroExpr, MakeInteger(2)},
		{a, MakeRational(-1, 2), zeroExpr},
	}
	det := Determinant(m, PivotFirstNonZero, nil)
	want := MakeSum([]Expr{
		MakeProduct([]Expr{MakeRational(-1, 2), a, bSym}),
		MakeProduct([]Expr{MakeInteger(2), a}),
	})
	if !det.Equal(want) {
		t.Errorf("det(A) = %s, want %s", det, want)
	}
}

func TestDeterminantOfPermutationMatrixIsPlusOrMinusOne(t *testing.T) {
	m := Matrix{intRow(0, 1, 0), intRow(1, 0, 0), intRow(0, 0, 1)}
	det := Determinant(m, PivotFirstNonZero, nil)
	if !det.Equal(MakeInteger(1)) && !det.Equal(MakeInteger(-1)) {
		t.Errorf("det(permutation) = %s, want +-1", det)
	}
}

func TestInvertProducesIdentity(t *testing.T) {
	a := Matrix{intRow(2, 0), intRow(0, 4)}
	inv, err := Invert(a, PivotFirstNonZero, nil)
	if err != nil {
		t.Fatalf("Invert returned error: %v", err)
	}
	for i := range a {
		for j := range a[i] {
			sum := Expr(zeroExpr)
			for k := range a[i] {
				sum = MakeSum([]Expr{sum, MakeProduct([]Expr{a[i][k], inv[k][j]})})
			}
			want := zeroExpr
			if i == j {
				want = oneExpr
			}
			if got := Normal(sum); !got.Equal(want) {
				t.Errorf("(A*A^-1)[%d][%d] = %s, want %s", i, j, got, want)
			}
		}
	}
}

func TestSolveSingularMatrixReturnsError(t *testing.T) {
	a := Matrix{intRow(1, 2), intRow(2, 4)}
	b := Vector(intRow(1, 2))
	if _, err := Solve(a, b, PivotFirstNonZero, nil); err == nil {
		t.Error("Solve on singular matrix should return an error")
	}
}

func TestSolveRowSkipMaskLeavesMaskedSlotUnsolved(t *testing.T) {
	a := Matrix{intRow(2, 0), intRow(0, 3)}
	b := Vector(intRow(4, 9))
	mask := []bool{true, false}
	x, err := Solve(a, b, PivotFirstNonZero, mask)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if !x[0].Equal(MakeInteger(2)) {
		t.Errorf("x[0] = %s, want 2", x[0])
	}
	if !x[1].Equal(zeroExpr) {
		t.Errorf("masked x[1] = %s, want left unwritten (0)", x[1])
	}
}
