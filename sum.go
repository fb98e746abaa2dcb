package symcore

import "hash/fnv"

// SumExpr represents a sum of at least two terms, per spec.md §3. No
// term is itself a Sum, no term is zero, and like terms (a numeric
// coefficient times a shared non-numeric remainder) are collected.
type SumExpr struct {
	terms []Expr
}

// MakeSum is the Sum constructor: it fully simplifies its argument
// list per spec.md §4.2 and returns a canonical, possibly-degenerate
// (0 or 1 term) result.
func MakeSum(terms []Expr) Expr {
	if anyUndefined(terms) {
		return Undefined()
	}

	// Flatten nested sums.
	var flat []Expr
	var flatten func([]Expr)
	flatten = func(es []Expr) {
		for _, e := range es {
			if s, ok := e.(*SumExpr); ok {
				flatten(s.terms)
			} else {
				flat = append(flat, e)
			}
		}
	}
	flatten(terms)

	// Partition into a running numeric total and (coefficient,
	// remainder) pairs for symbolic terms, merging like terms.
	numericTotal := numZero
	type termT struct {
		coeff     Number
		remainder Expr
	}
	var symbolic []termT

	addTerm := func(c Number, r Expr) {
		for i := range symbolic {
			if symbolic[i].remainder.Equal(r) {
				symbolic[i].coeff = symbolic[i].coeff.Add(c)
				return
			}
		}
		symbolic = append(symbolic, termT{coeff: c, remainder: r})
	}

	for _, e := range flat {
		if e.IsZero() && e.Kind() == KindNumeric {
			continue
		}
		if num, ok := e.(*NumericExpr); ok {
			numericTotal = numericTotal.Add(num.value)
			continue
		}
		c, r := splitCoeffRemainder(e)
		addTerm(c, r)
	}

	// Materialize non-zero-coefficient terms.
	var materialized []Expr
	for _, t := range symbolic {
		if t.coeff.IsZero() {
			continue
		}
		materialized = append(materialized, scaleByCoeff(t.coeff, t.remainder))
	}

	materialized = applyPythagoreanContraction(materialized)

	if !numericTotal.IsZero() {
		materialized = append(materialized, makeNumeric(numericTotal))
	}

	switch len(materialized) {
	case 0:
		return zeroExpr
	case 1:
		return materialized[0]
	default:
		sortExprs(materialized)
		return &SumExpr{terms: materialized}
	}
}

// splitCoeffRemainder factors e into a numeric coefficient and a
// non-numeric remainder, e.g. 3*x -> (3, x), x -> (1, x).
func splitCoeffRemainder(e Expr) (Number, Expr) {
	p, ok := e.(*ProductExpr)
	if !ok {
		return numOne, e
	}
	if num, ok := p.factors[0].(*NumericExpr); ok {
		rest := p.factors[1:]
		if len(rest) == 1 {
			return num.value, rest[0]
		}
		return num.value, &ProductExpr{factors: rest}
	}
	return numOne, e
}

func scaleByCoeff(c Number, remainder Expr) Expr {
	if c.IsOne() {
		return remainder
	}
	return MakeProduct([]Expr{makeNumeric(c), remainder})
}

// applyPythagoreanContraction implements spec.md §4.2 step 5: replaces
// k*sin(x)^2 + k*cos(x)^2 with k wherever both appear with identical
// k and x.
func applyPythagoreanContraction(terms []Expr) []Expr {
	changed := true
	for changed {
		changed = false
		for i := 0; i < len(terms) && !changed; i++ {
			restS, xS, okS := extractTrigSquareFactor(terms[i], FuncSin)
			if !okS {
				continue
			}
			for j := 0; j < len(terms); j++ {
				if i == j {
					continue
				}
				restC, xC, okC := extractTrigSquareFactor(terms[j], FuncCos)
				if !okC || !xC.Equal(xS) || !restC.Equal(restS) {
					continue
				}
				next := make([]Expr, 0, len(terms)-1)
				for k, t := range terms {
					if k == i {
						next = append(next, restS)
					} else if k == j {
						continue
					} else {
						next = append(next, t)
					}
				}
				terms = next
				changed = true
				break
			}
		}
	}
	return terms
}

func extractTrigSquareFactor(e Expr, fn FuncKind) (rest Expr, arg Expr, ok bool) {
	factors := asProductOperands(e)
	for i, f := range factors {
		pw, isPow := f.(*PowerExpr)
		if !isPow {
			continue
		}
		two, isNum := pw.exp.(*NumericExpr)
		if !isNum || !two.value.Equal(numTwo) {
			continue
		}
		fe, isFn := pw.base.(*FunctionExpr)
		if !isFn || fe.kind != fn || len(fe.args) != 1 {
			continue
		}
		remaining := make([]Expr, 0, len(factors)-1)
		remaining = append(remaining, factors[:i]...)
		remaining = append(remaining, factors[i+1:]...)
		switch len(remaining) {
		case 0:
			rest = oneExpr
		case 1:
			rest = remaining[0]
		default:
			rest = MakeProduct(remaining)
		}
		return rest, fe.args[0], true
	}
	return nil, nil, false
}

func (s *SumExpr) Kind() Kind       { return KindSum }
func (s *SumExpr) Operands() []Expr { return s.terms }
func (s *SumExpr) Equal(other Expr) bool {
	o, ok := other.(*SumExpr)
	if !ok || len(o.terms) != len(s.terms) {
		return false
	}
	for i := range s.terms {
		if !s.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}
func (s *SumExpr) Contains(sub Expr) bool {
	if s.Equal(sub) {
		return true
	}
	for _, t := range s.terms {
		if t.Contains(sub) {
			return true
		}
	}
	return false
}
func (s *SumExpr) NumericValue() (Number, bool) {
	total := numZero
	for _, t := range s.terms {
		v, ok := t.NumericValue()
		if !ok {
			return Number{}, false
		}
		total = total.Add(v)
	}
	return total, true
}
func (s *SumExpr) IsZero() bool { return false } // a fully simplified Sum is never identically zero
func (s *SumExpr) IsPositive() bool {
	if v, ok := s.NumericValue(); ok {
		return v.Sign() > 0
	}
	allPos, allNeg := true, true
	for _, t := range s.terms {
		if !t.IsPositive() {
			allPos = false
		}
		if !t.IsNegative() {
			allNeg = false
		}
	}
	return allPos && !allNeg
}
func (s *SumExpr) IsNegative() bool {
	if v, ok := s.NumericValue(); ok {
		return v.Sign() < 0
	}
	allNeg := true
	for _, t := range s.terms {
		if !t.IsNegative() {
			allNeg = false
			break
		}
	}
	return allNeg
}
func (s *SumExpr) Diff(sym *SymbolExpr) Expr {
	terms := make([]Expr, len(s.terms))
	for i, t := range s.terms {
		terms[i] = t.Diff(sym)
	}
	return MakeSum(terms)
}
func (s *SumExpr) Subst(from, to Expr) Expr {
	if s.Equal(from) {
		return to
	}
	terms := make([]Expr, len(s.terms))
	for i, t := range s.terms {
		terms[i] = t.Subst(from, to)
	}
	return MakeSum(terms)
}
func (s *SumExpr) Expand() Expr {
	terms := make([]Expr, len(s.terms))
	for i, t := range s.terms {
		terms[i] = t.Expand()
	}
	return MakeSum(terms)
}
func (s *SumExpr) String() string {
	out := s.terms[0].String()
	for _, t := range s.terms[1:] {
		out += " + " + t.String()
	}
	return out
}
func (s *SumExpr) hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte("sum"))
	for _, t := range s.terms {
		var b [8]byte
		v := t.hash()
		for i := range b {
			b[i] = byte(v >> (8 * i))
		}
		h.Write(b[:])
	}
	return h.Sum64()
}
func (s *SumExpr) complexity() int {
	c := 1
	for _, t := range s.terms {
		c += t.complexity()
	}
	return c
}
