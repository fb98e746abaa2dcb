package symcore

import "hash/fnv"

// PowerExpr represents base^exp, per spec.md §3/§4.2.
type PowerExpr struct {
	base Expr
	exp  Expr
}

// MakePower is the Power constructor; see spec.md §4.2 for the full
// rule set implemented here.
func MakePower(base, exp Expr) Expr {
	if IsUndefinedExpr(base) || IsUndefinedExpr(exp) {
		return Undefined()
	}

	baseIsZero := base.Kind() == KindNumeric && base.IsZero()
	expIsZero := exp.Kind() == KindNumeric && exp.IsZero()

	if baseIsZero && expIsZero {
		return Undefined()
	}
	if baseIsZero {
		if exp.IsPositive() {
			return zeroExpr
		}
		if exp.IsNegative() {
			return Undefined()
		}
		return &PowerExpr{base: base, exp: exp}
	}
	if baseNum, ok := base.(*NumericExpr); ok && baseNum.value.IsOne() {
		return oneExpr
	}
	if expIsZero {
		return oneExpr
	}
	if expNum, ok := exp.(*NumericExpr); ok && expNum.value.IsInt() && expNum.value.Numerator().IsOne() {
		return base
	}

	// e^log(x) = x
	if c, ok := base.(*ConstantExpr); ok && c.kind == ConstE {
		if f, ok := exp.(*FunctionExpr); ok && f.kind == FuncLog && len(f.args) == 1 {
			return f.args[0]
		}
	}

	baseNum, baseIsNumeric := base.(*NumericExpr)
	expNum, expIsNumeric := exp.(*NumericExpr)

	if baseIsNumeric && expIsNumeric {
		return numericPower(baseNum.value, expNum.value)
	}

	// Power of a Power.
	if inner, ok := base.(*PowerExpr); ok {
		if canContractPowers(inner, exp) {
			return MakePower(inner.base, MakeProduct([]Expr{inner.exp, exp}))
		}
		return &PowerExpr{base: base, exp: exp}
	}

	// Power of a Product: distribute to provably non-negative factors.
	if prod, ok := base.(*ProductExpr); ok {
		var distributable, rest []Expr
		for _, f := range prod.factors {
			if f.IsPositive() || (f.Kind() == KindNumeric && f.IsZero()) {
				distributable = append(distributable, f)
			} else {
				rest = append(rest, f)
			}
		}
		if len(distributable) > 0 {
			var out []Expr
			for _, f := range distributable {
				out = append(out, MakePower(f, exp))
			}
			switch len(rest) {
			case 0:
			case 1:
				out = append(out, MakePower(rest[0], exp))
			default:
				out = append(out, MakePower(MakeProduct(rest), exp))
			}
			return MakeProduct(out)
		}
	}

	return &PowerExpr{base: base, exp: exp}
}

func canContractPowers(inner *PowerExpr, outerExp Expr) bool {
	if inner.base.IsPositive() || (inner.base.Kind() == KindNumeric && inner.base.IsZero()) {
		return true
	}
	if n, ok := outerExp.(*NumericExpr); ok && n.value.IsInt() {
		return true
	}
	in, innerOk := inner.exp.(*NumericExpr)
	out, outerOk := outerExp.(*NumericExpr)
	if innerOk && outerOk && in.value.IsRational() && out.value.IsRational() {
		return in.value.Denominator().Rem(IntFromInt64(2)).Sign() != 0 &&
			out.value.Denominator().Rem(IntFromInt64(2)).Sign() != 0
	}
	return false
}

// numericPower implements spec.md §3/§4.2's numeric-base, numeric-
// exponent simplification, including prime-factorization-based
// extraction of integer powers and the negative-base sign rules.
func numericPower(base, exp Number) Expr {
	if base.IsDouble() || exp.IsDouble() {
		return makeNumeric(base.Power(exp))
	}
	if exp.IsInt() {
		return makeNumeric(base.Power(exp))
	}

	neg := false
	if base.Sign() < 0 {
		denom := exp.Denominator()
		if denom.Rem(IntFromInt64(2)).IsZero() {
			return Undefined()
		}
		base = base.Abs()
		// Odd root of a negative base: (-1)^(p/q) = (-1)^p for odd q.
		p := exp.Numerator()
		neg = p.Rem(IntFromInt64(2)).Sign() != 0
	}

	outside, residual := factorPowerSimplify(base, exp)
	result := outside
	if neg {
		result = append(result, makeNumeric(numOne.Neg()))
	}
	result = append(result, residual...)

	switch len(result) {
	case 0:
		return oneExpr
	case 1:
		return result[0]
	default:
		return MakeProduct(result)
	}
}

// factorPowerSimplify factors base's numerator and denominator into
// primes up to the configured resolution limit, and for each prime
// extracts the integer part of (multiplicity * exp) into an exact
// rational factor, leaving a residual fractional power whose exponent
// satisfies 0 <= residual < 1. Primes (or unfactored remainders) whose
// residual exponent is non-zero are returned as individual Power
// expressions, already in canonical (non-simplifiable further) form.
func factorPowerSimplify(base, exp Number) (outside []Expr, residual []Expr) {
	limit := GetMaxPrimeResolution()
	numFactors, numOk := factorizeUpTo(base.Numerator(), limit)
	denFactors, denOk := factorizeUpTo(base.Denominator(), limit)
	if !numOk || !denOk {
		return nil, []Expr{&PowerExpr{base: makeNumeric(base), exp: makeNumeric(exp)}}
	}

	net := map[int64]int64{}
	for p, m := range numFactors {
		net[p] += m
	}
	for p, m := range denFactors {
		net[p] -= m
	}

	p := exp.Numerator()
	q := exp.Denominator()

	outsideVal := numOne
	for prime, mult := range net {
		if mult == 0 {
			continue
		}
		k := IntFromInt64(mult).Mul(p) // net multiplicity * p
		intPart := floorDivInt(k, q)
		rem := k.Sub(intPart.Mul(q))
		if !intPart.IsZero() {
			outsideVal = outsideVal.Mul(NumberFromInt(IntFromInt64(prime)).Power(NumberFromInt(intPart)))
		}
		if !rem.IsZero() {
			remExp, _ := NumberFromRational(rem, q)
			residual = append(residual, &PowerExpr{base: makeNumeric(NumberFromInt(IntFromInt64(prime))), exp: makeNumeric(remExp)})
		}
	}
	if !outsideVal.IsOne() {
		outside = append(outside, makeNumeric(outsideVal))
	}
	return outside, residual
}

// floorDivInt performs floor division (rounding toward negative
// infinity), as opposed to Int.Quo's truncation toward zero.
func floorDivInt(a, b Int) Int {
	q := a.Quo(b)
	r := a.Rem(b)
	if !r.IsZero() && (r.Sign() < 0) != (b.Sign() < 0) {
		q = q.Sub(IntFromInt64(1))
	}
	return q
}

// factorizeUpTo trial-divides n (assumed positive) by every integer d
// with d <= limit and d*d no larger than the remaining cofactor,
// returning the prime-ish factorization found within that bound. A
// cofactor left above 1 is recorded as a single factor, even when the
// limit stopped the search before it was proven prime. ok is false
// only when n does not fit into an int64.
func factorizeUpTo(n Int, limit int64) (map[int64]int64, bool) {
	factors := map[int64]int64{}
	if n.IsZero() {
		return factors, true
	}
	if n.IsOne() {
		return factors, true
	}
	if !n.FitsInt64() {
		return nil, false
	}
	remaining := n.Int64()
	for d := int64(2); d*d <= remaining && d <= limit; d++ {
		for remaining%d == 0 {
			factors[d]++
			remaining /= d
		}
	}
	if remaining > 1 {
		factors[remaining]++
	}
	return factors, true
}

func (p *PowerExpr) Base() Expr { return p.base }
func (p *PowerExpr) Exp() Expr  { return p.exp }

func (p *PowerExpr) Kind() Kind       { return KindPower }
func (p *PowerExpr) Operands() []Expr { return []Expr{p.base, p.exp} }
func (p *PowerExpr) Equal(other Expr) bool {
	o, ok := other.(*PowerExpr)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}
func (p *PowerExpr) Contains(sub Expr) bool {
	return p.Equal(sub) || p.base.Contains(sub) || p.exp.Contains(sub)
}
func (p *PowerExpr) NumericValue() (Number, bool) {
	b, ok1 := p.base.NumericValue()
	e, ok2 := p.exp.NumericValue()
	if !ok1 || !ok2 {
		return Number{}, false
	}
	v := b.Power(e)
	if v.IsUndefined() {
		return Number{}, false
	}
	return v, true
}
func (p *PowerExpr) IsZero() bool { return false }
func (p *PowerExpr) IsPositive() bool {
	if v, ok := p.NumericValue(); ok {
		return v.Sign() > 0
	}
	if p.base.IsPositive() {
		return true
	}
	if n, ok := p.exp.(*NumericExpr); ok && n.value.IsInt() {
		if n.value.Numerator().Rem(IntFromInt64(2)).IsZero() {
			return true
		}
	}
	return false
}
func (p *PowerExpr) IsNegative() bool {
	if v, ok := p.NumericValue(); ok {
		return v.Sign() < 0
	}
	if n, ok := p.exp.(*NumericExpr); ok && n.value.IsInt() && n.value.Numerator().Rem(IntFromInt64(2)).Sign() != 0 {
		return p.base.IsNegative()
	}
	return false
}
func (p *PowerExpr) Diff(sym *SymbolExpr) Expr {
	baseHas := p.base.Contains(sym)
	expHas := p.exp.Contains(sym)
	switch {
	case !baseHas && !expHas:
		return zeroExpr
	case expHas:
		// Log differentiation: d/dx a^b = a^b * (b' * log(a) + b * a'/a)
		logA := MakeFunction(FuncLog, []Expr{p.base})
		term1 := MakeProduct([]Expr{p.exp.Diff(sym), logA})
		term2 := MakeProduct([]Expr{p.exp, p.base.Diff(sym), MakePower(p.base, minusOneExpr)})
		return MakeProduct([]Expr{p, MakeSum([]Expr{term1, term2})})
	default:
		// Power rule with chain rule: d/dx base^n = n*base^(n-1)*base'
		nMinus1 := MakeSum([]Expr{p.exp, minusOneExpr})
		return MakeProduct([]Expr{p.exp, MakePower(p.base, nMinus1), p.base.Diff(sym)})
	}
}
func (p *PowerExpr) Subst(from, to Expr) Expr {
	if p.Equal(from) {
		return to
	}
	return MakePower(p.base.Subst(from, to), p.exp.Subst(from, to))
}
func (p *PowerExpr) Expand() Expr {
	base := p.base.Expand()
	if sum, ok := base.(*SumExpr); ok {
		if n, ok := p.exp.(*NumericExpr); ok && n.value.IsInt() && n.value.Sign() > 0 && n.value.Numerator().FitsInt64() {
			e := n.value.Numerator().Int64()
			acc := Expr(oneExpr)
			for i := int64(0); i < e; i++ {
				acc = (&ProductExpr{factors: []Expr{acc, sum}}).Expand()
			}
			return acc
		}
	}
	return MakePower(base, p.exp.Expand())
}
func (p *PowerExpr) String() string { return "(" + p.base.String() + ")^(" + p.exp.String() + ")" }
func (p *PowerExpr) hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte("power"))
	var b [8]byte
	for _, v := range []uint64{p.base.hash(), p.exp.hash()} {
		for i := range b {
			b[i] = byte(v >> (8 * i))
		}
		h.Write(b[:])
	}
	return h.Sum64()
}
func (p *PowerExpr) complexity() int { return 2 + p.base.complexity() + p.exp.complexity() }
