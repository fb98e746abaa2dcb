package symcore

// normal() puts an expression over a single common denominator and
// cancels common polynomial factors, mirroring tsym's Fraction type:
// a (numerator, denominator) pair that is built up by recursing over
// Sum/Product/Power and combined with cancel() at the end. Non-
// polynomial atoms (functions, pi/e, irrational powers) are held
// opaque via a SymbolMap while the polynomial gcd machinery runs, then
// substituted back.

// fraction is a numerator/denominator pair of polynomial expressions.
type fraction struct {
	num   Expr
	denom Expr
}

func fractionOf(e Expr) fraction { return fraction{num: e, denom: oneExpr} }

func (f fraction) eval() Expr {
	return MakeProduct([]Expr{f.num, MakePower(f.denom, minusOneExpr)})
}

func addFractions(a, b fraction) fraction {
	return fraction{
		num:   MakeSum([]Expr{MakeProduct([]Expr{a.num, b.denom}), MakeProduct([]Expr{b.num, a.denom})}),
		denom: MakeProduct([]Expr{a.denom, b.denom}),
	}
}

func mulFractions(a, b fraction) fraction {
	return fraction{num: MakeProduct([]Expr{a.num, b.num}), denom: MakeProduct([]Expr{a.denom, b.denom})}
}

// toFraction decomposes e into a (numerator, denominator) pair by
// walking Sum/Product/Power structure; every negative-integer-exponent
// Power factor of a Product contributes to the denominator.
func toFraction(e Expr) fraction {
	switch v := e.(type) {
	case *SumExpr:
		acc := fractionOf(zeroExpr)
		for _, t := range v.terms {
			acc = addFractions(acc, toFraction(t))
		}
		return acc
	case *ProductExpr:
		acc := fractionOf(oneExpr)
		for _, f := range v.factors {
			acc = mulFractions(acc, toFraction(f))
		}
		return acc
	case *PowerExpr:
		if n, ok := v.exp.(*NumericExpr); ok && n.value.IsInt() && n.value.Sign() < 0 {
			return fraction{num: oneExpr, denom: MakePower(v.base, makeNumeric(n.value.Neg()))}
		}
		return fractionOf(e)
	default:
		return fractionOf(e)
	}
}

// cancel reduces a fraction by the gcd of its numerator and
// denominator with respect to the first symbol shared by both (or
// returns f unchanged if they share no symbol), following tsym's
// Fraction::cancel: zero numerator and unit denominator are returned
// as-is, and an identically-zero denominator logs a warning and
// produces Undefined.
func cancel(f fraction) fraction {
	if f.denom.Kind() == KindNumeric && numericOf(f.denom).IsOne() {
		return f
	}
	if f.num.Kind() == KindNumeric && f.num.IsZero() {
		return f
	}
	if expanded := f.denom.Expand(); expanded.Kind() == KindNumeric && expanded.IsZero() {
		diagnostic("symcore: zero denominator encountered during fraction cancellation")
		return fraction{num: Undefined(), denom: oneExpr}
	}

	x := firstSharedSymbol(f.num, f.denom)
	if x == nil {
		return f
	}
	g := gcd(f.num, f.denom, x, GcdSubresultant)
	if g.Kind() == KindNumeric && numericOf(g).IsOne() {
		return f
	}
	newNum, _ := divide(f.num, g, x)
	newDenom, _ := divide(f.denom, g, x)
	return fraction{num: newNum, denom: newDenom}
}

func firstSharedSymbol(a, b Expr) *SymbolExpr {
	for _, s := range collectSymbols(a) {
		if b.Contains(s) {
			return s
		}
	}
	return nil
}

func collectSymbols(e Expr) []*SymbolExpr {
	var out []*SymbolExpr
	var walk func(Expr)
	seen := map[string]bool{}
	walk = func(e Expr) {
		if s, ok := e.(*SymbolExpr); ok {
			if !seen[s.name.String()] {
				seen[s.name.String()] = true
				out = append(out, s)
			}
			return
		}
		for _, o := range e.Operands() {
			walk(o)
		}
	}
	walk(e)
	return out
}

// Normal returns e rewritten over a single common denominator with
// common polynomial factors cancelled, per spec.md §4.6.
func Normal(e Expr) Expr {
	sm := NewSymbolMap()
	encoded := sm.encode(e.Expand())
	f := cancel(toFraction(encoded))
	return sm.Revert(f.eval())
}
