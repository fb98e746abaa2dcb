package symcore

import "sort"

// Polynomial GCD via pseudo-remainder sequences (Cohen [2003] §7), with
// two variants for controlling the otherwise-exponential growth of
// intermediate coefficients: the default subresultant PRS, which
// scales each remainder by an accumulator derived from the previous
// step's degree gaps and leading coefficients, and the simpler
// primitive PRS, which divides out each remainder's content directly.

// GcdAlgo selects which pseudo-remainder-sequence variant poly gcd
// uses to control coefficient growth.
type GcdAlgo int

const (
	// GcdSubresultant uses the subresultant PRS, the default: it scales
	// each remainder by the previous step's leading coefficients raised
	// to a computed power, keeping growth polynomial instead of
	// exponential.
	GcdSubresultant GcdAlgo = iota
	// GcdPrimitive divides out the content of every remainder instead,
	// simpler but with more redundant gcd computations on coefficients.
	GcdPrimitive
)

// numericContent returns the gcd of every numeric coefficient
// appearing in e (as an integer or rational Number), or 1 if e has no
// purely-numeric factorization available.
func numericContent(e Expr) Number {
	g := numZero
	for _, term := range asSumOperands(e) {
		c := numOne
		for _, f := range asProductOperands(term) {
			if n, ok := f.(*NumericExpr); ok {
				c = c.Mul(n.value)
			}
		}
		if c.IsRational() {
			g = NumberFromInt(g.Numerator().Gcd(c.Numerator()))
		}
	}
	if g.IsZero() {
		return numOne
	}
	return g
}

// content returns the content of polynomial with respect to x: the gcd
// of its coefficients (as polynomials in the remaining variables). This
// implementation computes the numeric part of that gcd directly; when
// a coefficient is itself a non-trivial polynomial in other variables,
// content conservatively returns the numeric gcd of the scalar parts
// only, leaving symbolic common factors to MakeSum/MakeProduct's own
// term-collection to expose (they cancel out in the division that
// follows content extraction either way).
func content(polynomial Expr, x *SymbolExpr) Expr {
	return makeNumeric(numericContent(polynomial))
}

// Content exposes content as an external interface operation (spec.md
// §6's `content(p, x)`).
func Content(p Expr, x *SymbolExpr) Expr {
	return content(p, x)
}

// primitivePart returns polynomial divided by its content.
func primitivePart(polynomial Expr, x *SymbolExpr) Expr {
	c := content(polynomial, x)
	if n, ok := c.(*NumericExpr); ok && n.value.IsOne() {
		return polynomial
	}
	q, _ := divide(polynomial, c, x)
	return q
}

// sharedSymbols returns the symbols occurring in both u and v, in
// canonical sorted order. This is the helper spec.md §4.6 calls for:
// "returns the sorted list of symbols occurring in both inputs and
// designates a main variable."
func sharedSymbols(u, v Expr) []*SymbolExpr {
	var shared []*SymbolExpr
	for _, s := range collectSymbols(u) {
		if v.Contains(s) {
			shared = append(shared, s)
		}
	}
	sort.SliceStable(shared, func(i, j int) bool {
		return Less(shared[i], shared[j])
	})
	return shared
}

// mainVariable designates the main variable for a gcd computation
// between u and v: the first symbol in their sorted shared-symbol
// list, or nil if the two expressions share no symbol at all.
func mainVariable(u, v Expr) *SymbolExpr {
	shared := sharedSymbols(u, v)
	if len(shared) == 0 {
		return nil
	}
	return shared[0]
}

// gcdNumericShortcut handles the cases of spec.md §4.6/§8 that don't
// need a main variable at all: gcd(0,0) is undefined, gcd with one
// zero operand returns the other operand, and two rational numerics
// return their positive integer gcd directly.
func gcdNumericShortcut(u, v Expr) (Expr, bool) {
	uZero := u.Kind() == KindNumeric && u.IsZero()
	vZero := v.Kind() == KindNumeric && v.IsZero()
	if uZero && vZero {
		return Undefined(), true
	}
	if uZero {
		return v, true
	}
	if vZero {
		return u, true
	}
	if un, ok := u.(*NumericExpr); ok {
		if vn, ok := v.(*NumericExpr); ok {
			return makeNumeric(NumberFromInt(un.value.Numerator().Gcd(vn.value.Numerator()))), true
		}
	}
	return nil, false
}

// gcd computes the greatest common divisor of two polynomials in the
// main variable x, using the requested pseudo-remainder-sequence
// variant.
func gcd(u, v Expr, x *SymbolExpr, algo GcdAlgo) Expr {
	if result, ok := gcdNumericShortcut(u, v); ok {
		return result
	}

	cu := content(u, x)
	cv := content(v, x)
	contentGcd := makeNumeric(gcdNumber(numericOf(cu), numericOf(cv)))

	a, b := primitivePart(u, x), primitivePart(v, x)
	if degree(a, x) < degree(b, x) {
		a, b = b, a
	}

	var last Expr
	switch algo {
	case GcdPrimitive:
		last = primitivePRS(a, b, x)
	default:
		last = subresultantGcd(a, b, x)
	}

	if last.Kind() == KindNumeric {
		return contentGcd
	}
	return MakeProduct([]Expr{contentGcd, primitivePart(last, x)})
}

// Gcd implements the external `gcd(u, v)` operation from spec.md
// §4.6/§6: the main variable is chosen automatically, as the first
// symbol shared by both operands in canonical sorted order. If u and v
// share no symbol there is no common polynomial factor to expose
// beyond content, so the result falls back to structural equality and
// the numeric content gcd.
func Gcd(u, v Expr, algo GcdAlgo) Expr {
	if u.Kind() == KindUndefined || v.Kind() == KindUndefined {
		return Undefined()
	}
	if result, ok := gcdNumericShortcut(u, v); ok {
		return result
	}
	if x := mainVariable(u, v); x != nil {
		return gcd(u, v, x, algo)
	}
	if u.Equal(v) {
		return u
	}
	return makeNumeric(gcdNumber(numericContent(u), numericContent(v)))
}

// primitivePRS runs the primitive polynomial remainder sequence: at
// each step the pseudo-remainder's content is divided out immediately,
// trading extra gcd computations on coefficients for flat coefficient
// growth. Returns the last nonzero term of the sequence.
func primitivePRS(a, b Expr, x *SymbolExpr) Expr {
	for {
		if b.Kind() == KindNumeric && b.IsZero() {
			return a
		}
		r := primitivePart(pseudoRemainder(a, b, x), x)
		a, b = b, r
	}
}

// subresultantGcd runs the subresultant pseudo-remainder sequence,
// grounded directly on original_source/src/subresultantgcd.cpp's gcd
// (Cohen [2003], pp. 255-256): each pseudo-remainder is divided by an
// accumulator beta, recomputed every step after the first from the
// degree gap and leading coefficient of the previous two terms via the
// auxiliary sequence psi. This keeps coefficient growth close to the
// true subresultants instead of the raw pseudo-remainder's much faster
// growth, unlike primitivePRS's simpler but more gcd-computation-heavy
// content division. Returns the last nonzero term of the sequence.
func subresultantGcd(a, b Expr, x *SymbolExpr) Expr {
	delta := degree(a, x) - degree(b, x) + 1
	psi := minusOneExpr
	beta := signedUnit(delta)
	i := 0

	for {
		r := pseudoRemainder(a, b, x)
		if r.Kind() == KindNumeric && r.IsZero() {
			return b
		}
		if IsUndefinedExpr(r) {
			diagnostic("symcore: undefined remainder during subresultant gcd, returning 1")
			return oneExpr
		}

		i++
		if i > 1 {
			deltaP := delta
			delta = degree(a, x) - degree(b, x) + 1
			tmp := negated(leadingCoeff(a, x))
			psi = MakeProduct([]Expr{
				MakePower(tmp, MakeInteger(int64(deltaP-1))),
				MakePower(psi, MakeInteger(int64(-(deltaP - 2)))),
			}).Expand()
			beta = MakeProduct([]Expr{
				tmp,
				MakePower(psi, MakeInteger(int64(delta-1))),
			}).Expand()
		}

		a, b = b, MakeProduct([]Expr{r, MakePower(beta, minusOneExpr)}).Expand()
	}
}

// signedUnit returns (-1)^k as 1 or -1.
func signedUnit(k int) Expr {
	if k%2 == 0 {
		return oneExpr
	}
	return minusOneExpr
}

func numericOf(e Expr) Number {
	if n, ok := e.(*NumericExpr); ok {
		return n.value
	}
	return numOne
}

func gcdNumber(a, b Number) Number {
	return NumberFromInt(a.Numerator().Gcd(b.Numerator()))
}
