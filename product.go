package symcore

import "hash/fnv"

// ProductExpr represents a product of at least two factors, per
// spec.md §3: no factor is itself a Product, no factor is one, at
// most one numeric factor (first in canonical order), and like bases
// are merged by summing their exponents.
type ProductExpr struct {
	factors []Expr
}

// MakeProduct is the Product constructor: it fully simplifies its
// argument list per spec.md §4.2.
func MakeProduct(factors []Expr) Expr {
	if anyUndefined(factors) {
		return Undefined()
	}
	for _, f := range factors {
		if f.Kind() == KindNumeric && f.IsZero() {
			return zeroExpr
		}
	}

	var flat []Expr
	var flatten func([]Expr)
	flatten = func(es []Expr) {
		for _, e := range es {
			if p, ok := e.(*ProductExpr); ok {
				flatten(p.factors)
			} else {
				flat = append(flat, e)
			}
		}
	}
	flatten(factors)

	numericFactor := numOne
	type baseGroup struct {
		base Expr
		exp  Expr
	}
	var groups []baseGroup

	addBase := func(base, exp Expr) {
		for i := range groups {
			if groups[i].base.Equal(base) {
				groups[i].exp = MakeSum([]Expr{groups[i].exp, exp})
				return
			}
		}
		groups = append(groups, baseGroup{base: base, exp: exp})
	}

	for _, e := range flat {
		if num, ok := e.(*NumericExpr); ok {
			if num.value.IsOne() {
				continue
			}
			numericFactor = numericFactor.Mul(num.value)
			continue
		}
		base, exp := asPowerBaseExp(e)
		addBase(base, exp)
	}

	if numericFactor.IsZero() {
		return zeroExpr
	}

	var rebuilt []Expr
	for _, g := range groups {
		if g.exp.Kind() == KindNumeric && g.exp.IsZero() {
			continue
		}
		p := MakePower(g.base, g.exp)
		if IsUndefinedExpr(p) {
			return Undefined()
		}
		rebuilt = append(rebuilt, p)
	}

	rebuilt = applyTrigRatioRules(rebuilt)

	var nonNumeric []Expr
	nonNumeric = append(nonNumeric, rebuilt...)

	// Distribution: a single Sum factor combined with the extracted
	// numeric factor distributes, per spec.md §4.2 step 7. Only a plain
	// numeric factor triggers this; a Sum next to a numeric power (such
	// as 2^(1/2)) or any other factor stays undistributed.
	if len(nonNumeric) == 1 {
		if sum, ok := nonNumeric[0].(*SumExpr); ok && !numericFactor.IsOne() {
			terms := make([]Expr, len(sum.terms))
			for i, t := range sum.terms {
				terms[i] = MakeProduct([]Expr{makeNumeric(numericFactor), t})
			}
			return MakeSum(terms)
		}
	}

	var final []Expr
	if !numericFactor.IsOne() {
		final = append(final, makeNumeric(numericFactor))
	}
	final = append(final, nonNumeric...)

	switch len(final) {
	case 0:
		return oneExpr
	case 1:
		return final[0]
	default:
		sortExprs(final)
		return &ProductExpr{factors: final}
	}
}

// applyTrigRatioRules implements spec.md §4.2 step 5: tan(x)*cos(x) ->
// sin(x), and sin(x)/cos(x) (i.e. sin(x) * cos(x)^-1) -> tan(x).
func applyTrigRatioRules(factors []Expr) []Expr {
	findFn := func(fs []Expr, kind FuncKind, exp Expr) (int, Expr) {
		for i, f := range fs {
			base, e := asPowerBaseExp(f)
			fe, ok := base.(*FunctionExpr)
			if !ok || fe.kind != kind || len(fe.args) != 1 {
				continue
			}
			if exp == nil || e.Equal(exp) {
				return i, fe.args[0]
			}
		}
		return -1, nil
	}

	// tan(x) * cos(x) -> sin(x)
	for {
		ti, x := findFn(factors, FuncTan, oneExpr)
		if ti < 0 {
			break
		}
		ci, xc := findFn(factors, FuncCos, oneExpr)
		if ci < 0 || !xc.Equal(x) {
			break
		}
		next := make([]Expr, 0, len(factors)-1)
		for k, f := range factors {
			if k == ti {
				next = append(next, MakeFunction(FuncSin, []Expr{x}))
			} else if k == ci {
				continue
			} else {
				next = append(next, f)
			}
		}
		factors = next
	}

	// sin(x) * cos(x)^-1 -> tan(x)
	for {
		si, x := findFn(factors, FuncSin, oneExpr)
		if si < 0 {
			break
		}
		ci, xc := findFn(factors, FuncCos, minusOneExpr)
		if ci < 0 || !xc.Equal(x) {
			break
		}
		next := make([]Expr, 0, len(factors)-1)
		for k, f := range factors {
			if k == si {
				next = append(next, MakeFunction(FuncTan, []Expr{x}))
			} else if k == ci {
				continue
			} else {
				next = append(next, f)
			}
		}
		factors = next
	}

	return factors
}

func (p *ProductExpr) Kind() Kind       { return KindProduct }
func (p *ProductExpr) Operands() []Expr { return p.factors }
func (p *ProductExpr) Equal(other Expr) bool {
	o, ok := other.(*ProductExpr)
	if !ok || len(o.factors) != len(p.factors) {
		return false
	}
	for i := range p.factors {
		if !p.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}
func (p *ProductExpr) Contains(sub Expr) bool {
	if p.Equal(sub) {
		return true
	}
	for _, f := range p.factors {
		if f.Contains(sub) {
			return true
		}
	}
	return false
}
func (p *ProductExpr) NumericValue() (Number, bool) {
	total := numOne
	for _, f := range p.factors {
		v, ok := f.NumericValue()
		if !ok {
			return Number{}, false
		}
		total = total.Mul(v)
	}
	return total, true
}
func (p *ProductExpr) IsZero() bool { return false }
func (p *ProductExpr) sign() (int, bool) {
	if v, ok := p.NumericValue(); ok {
		return v.Sign(), true
	}
	sign := 1
	for _, f := range p.factors {
		switch {
		case f.IsPositive():
		case f.IsNegative():
			sign = -sign
		default:
			return 0, false
		}
	}
	return sign, true
}
func (p *ProductExpr) IsPositive() bool {
	s, ok := p.sign()
	return ok && s > 0
}
func (p *ProductExpr) IsNegative() bool {
	s, ok := p.sign()
	return ok && s < 0
}
func (p *ProductExpr) Diff(sym *SymbolExpr) Expr {
	// Product rule: d/dx (f1*f2*...*fn) = sum_i (df_i * prod_{j!=i} f_j)
	terms := make([]Expr, 0, len(p.factors))
	for i := range p.factors {
		d := p.factors[i].Diff(sym)
		if d.IsZero() && d.Kind() == KindNumeric {
			continue
		}
		rest := make([]Expr, 0, len(p.factors))
		rest = append(rest, d)
		for j, f := range p.factors {
			if j != i {
				rest = append(rest, f)
			}
		}
		terms = append(terms, MakeProduct(rest))
	}
	return MakeSum(terms)
}
func (p *ProductExpr) Subst(from, to Expr) Expr {
	if p.Equal(from) {
		return to
	}
	factors := make([]Expr, len(p.factors))
	for i, f := range p.factors {
		factors[i] = f.Subst(from, to)
	}
	return MakeProduct(factors)
}
func (p *ProductExpr) Expand() Expr {
	expanded := make([]Expr, len(p.factors))
	for i, f := range p.factors {
		expanded[i] = f.Expand()
	}
	// Distribute pairwise: fold sums into the accumulator.
	acc := []Expr{oneExpr}
	for _, f := range expanded {
		sumTerms := asSumOperands(f)
		var next []Expr
		for _, a := range acc {
			for _, t := range sumTerms {
				next = append(next, MakeProduct([]Expr{a, t}))
			}
		}
		acc = next
	}
	return MakeSum(acc)
}
func (p *ProductExpr) String() string {
	out := p.factors[0].String()
	for _, f := range p.factors[1:] {
		out += "*" + f.String()
	}
	return out
}
func (p *ProductExpr) hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte("product"))
	for _, f := range p.factors {
		var b [8]byte
		v := f.hash()
		for i := range b {
			b[i] = byte(v >> (8 * i))
		}
		h.Write(b[:])
	}
	return h.Sum64()
}
func (p *ProductExpr) complexity() int {
	c := 1
	for _, f := range p.factors {
		c += f.complexity()
	}
	return c
}
