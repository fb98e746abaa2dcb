package symcore

// Multivariate polynomial utilities with rational-number coefficients,
// symbolic variables, and non-negative integer exponents, following
// Cohen [2003]'s algorithms for division, pseudo-division, content and
// unit. A polynomial here is simply an Expr that happens to expand to
// a Sum of Products of integer Powers of symbols and Numeric
// coefficients; these functions treat every variable other than the
// one under consideration as part of the coefficient ring.

// degree returns the highest power of v occurring in e.
func degree(e Expr, v *SymbolExpr) int {
	max := 0
	for _, term := range asSumOperands(e) {
		if d := termDegree(term, v); d > max {
			max = d
		}
	}
	return max
}

// Degree exposes degree as an external interface operation (spec.md
// §6's `degree(p, x)`), returning the result as an expression per
// spec.md §4.6's "all results are expressions."
func Degree(p Expr, x *SymbolExpr) Expr {
	return MakeInteger(int64(degree(p, x)))
}

// minDegree returns the lowest power of v occurring in e, e.g.
// minDegree(a^2 + a^3) = 2 while degree returns 3.
func minDegree(e Expr, v *SymbolExpr) int {
	terms := asSumOperands(e)
	if len(terms) == 0 {
		return 0
	}
	min := termDegree(terms[0], v)
	for _, term := range terms[1:] {
		if d := termDegree(term, v); d < min {
			min = d
		}
	}
	return min
}

func termDegree(term Expr, v *SymbolExpr) int {
	total := 0
	for _, f := range asProductOperands(term) {
		total += factorDegree(f, v)
	}
	return total
}

func factorDegree(f Expr, v *SymbolExpr) int {
	if s, ok := f.(*SymbolExpr); ok {
		if s.Equal(v) {
			return 1
		}
		return 0
	}
	if p, ok := f.(*PowerExpr); ok {
		if s, ok := p.base.(*SymbolExpr); ok && s.Equal(v) {
			if n, ok := p.exp.(*NumericExpr); ok && n.value.IsInt() && n.value.Sign() >= 0 && n.value.Numerator().FitsInt64() {
				return int(n.value.Numerator().Int64())
			}
		}
	}
	return 0
}

// coeff returns the coefficient of v^k in e (the part of each term not
// contributed by v's own power), summed over every matching term.
func coeff(e Expr, v *SymbolExpr, k int) Expr {
	var matched []Expr
	for _, term := range asSumOperands(e) {
		if termDegree(term, v) != k {
			continue
		}
		matched = append(matched, stripVariable(term, v))
	}
	return MakeSum(matched)
}

// Coeff exposes coeff as an external interface operation (spec.md §6's
// `coeff(p, x, n)`).
func Coeff(p Expr, x *SymbolExpr, n int) Expr {
	return coeff(p, x, n)
}

// stripVariable removes every factor of v (and powers of v) from term,
// leaving the remaining coefficient expression.
func stripVariable(term Expr, v *SymbolExpr) Expr {
	var rest []Expr
	for _, f := range asProductOperands(term) {
		if s, ok := f.(*SymbolExpr); ok && s.Equal(v) {
			continue
		}
		if p, ok := f.(*PowerExpr); ok {
			if s, ok := p.base.(*SymbolExpr); ok && s.Equal(v) {
				continue
			}
		}
		rest = append(rest, f)
	}
	switch len(rest) {
	case 0:
		return oneExpr
	case 1:
		return rest[0]
	default:
		return MakeProduct(rest)
	}
}

// leadingCoeff returns the coefficient of the highest power of v in e.
func leadingCoeff(e Expr, v *SymbolExpr) Expr {
	return coeff(e, v, degree(e, v))
}

// divide implements polynomial long division of u by v in the main
// variable x: u = q*v + r with degree(r, x) < degree(v, x). The
// quotient and remainder coefficients may be non-integer rationals; if
// that happens the division is not exact over the integers, but the
// identity u = q*v + r still holds exactly.
func divide(u, v Expr, x *SymbolExpr) (quotient, remainder Expr) {
	u, v = u.Expand(), v.Expand()
	dv := degree(v, x)
	lcv := leadingCoeff(v, x)
	if lcv.Kind() == KindNumeric && lcv.IsZero() {
		return Undefined(), Undefined()
	}

	remainder = u
	quotient = zeroExpr
	for {
		dr := degree(remainder, x)
		if (dr < dv) || (remainder.Kind() == KindNumeric && remainder.IsZero()) {
			return quotient, remainder
		}
		lcr := leadingCoeff(remainder, x)
		termCoeff := MakeProduct([]Expr{lcr, MakePower(lcv, minusOneExpr)})
		power := dr - dv
		t := MakeProduct([]Expr{termCoeff, powerOfSymbol(x, power)})
		quotient = MakeSum([]Expr{quotient, t})
		remainder = MakeSum([]Expr{remainder, negated(MakeProduct([]Expr{t, v}))}).Expand()
	}
}

// Divide implements the external `divide(u, v, vars)` operation from
// spec.md §4.6. With a non-empty variable list, division proceeds in
// vars[0] (this package treats every other free symbol as part of the
// coefficient ring rather than attempting simultaneous multivariate
// division; see DESIGN.md). On an empty variable list u and v must
// both be numeric: the result is (u/v, 0) only if v divides u as a
// rational number, else (0, u). Invalid input (an Undefined operand)
// yields (Undefined, Undefined).
func Divide(u, v Expr, vars []*SymbolExpr) (quotient, remainder Expr) {
	if u.Kind() == KindUndefined || v.Kind() == KindUndefined {
		return Undefined(), Undefined()
	}
	if len(vars) == 0 {
		un, uok := u.(*NumericExpr)
		vn, vok := v.(*NumericExpr)
		if !uok || !vok || vn.value.IsZero() {
			return zeroExpr, u
		}
		q := un.value.Div(vn.value)
		if q.IsInt() {
			return makeNumeric(q), zeroExpr
		}
		return zeroExpr, u
	}
	return divide(u, v, vars[0])
}

func powerOfSymbol(x *SymbolExpr, k int) Expr {
	if k == 0 {
		return oneExpr
	}
	return MakePower(x, MakeInteger(int64(k)))
}

// pseudoDivide returns the pseudo-quotient and pseudo-remainder of u by
// v with respect to x: lcv^(degree(u,x)-degree(v,x)+1) * u = q*v + r,
// which stays exact over the integers even when leadingCoeff(v,x) is
// not a unit.
func pseudoDivide(u, v Expr, x *SymbolExpr) (quotient, remainder Expr) {
	u, v = u.Expand(), v.Expand()
	du, dv := degree(u, x), degree(v, x)
	if du < dv {
		return zeroExpr, u
	}
	lcv := leadingCoeff(v, x)
	delta := du - dv + 1
	quotient, remainder = zeroExpr, u
	sigma := 0
	for m := du; m >= dv && !isExactZero(remainder); m = degree(remainder, x) {
		lcr, xp := leadingCoeff(remainder, x), powerOfSymbol(x, m-dv)
		quotient = MakeSum([]Expr{MakeProduct([]Expr{lcv, quotient}), MakeProduct([]Expr{lcr, xp})}).Expand()
		remainder = MakeSum([]Expr{MakeProduct([]Expr{lcv, remainder}), negated(MakeProduct([]Expr{lcr, v, xp}))}).Expand()
		sigma++
	}
	scale := MakePower(lcv, MakeInteger(int64(delta-sigma)))
	return MakeProduct([]Expr{scale, quotient}).Expand(), MakeProduct([]Expr{scale, remainder}).Expand()
}

// pseudoRemainder computes only the pseudo-remainder, avoiding the
// pseudo-quotient computation.
func pseudoRemainder(u, v Expr, x *SymbolExpr) Expr {
	_, r := pseudoDivide(u, v, x)
	return r
}

// unit returns the sign of the leading coefficient of polynomial with
// respect to x, per Cohen [2003]: +1 or -1.
func unit(polynomial Expr, x *SymbolExpr) int {
	lc := leadingCoeff(polynomial, x)
	if lc.IsNegative() {
		return -1
	}
	return 1
}
