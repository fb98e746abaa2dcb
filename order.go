package symcore

import "sort"

// rankOf gives the base-case cross-kind order of spec.md §3:
// Numeric < Constant < Symbol < Function < Power < Product < Sum.
func rankOf(k Kind) int {
	switch k {
	case KindNumeric:
		return 0
	case KindConstant:
		return 1
	case KindSymbol:
		return 2
	case KindFunction:
		return 3
	case KindPower:
		return 4
	case KindProduct:
		return 5
	case KindSum:
		return 6
	default:
		return -1
	}
}

func asSumOperands(e Expr) []Expr {
	if s, ok := e.(*SumExpr); ok {
		return s.terms
	}
	return []Expr{e}
}

func asProductOperands(e Expr) []Expr {
	if p, ok := e.(*ProductExpr); ok {
		return p.factors
	}
	return []Expr{e}
}

func asPowerBaseExp(e Expr) (Expr, Expr) {
	if p, ok := e.(*PowerExpr); ok {
		return p.base, p.exp
	}
	return e, oneExpr
}

// compareExpr implements the total canonical order of spec.md §3.
func compareExpr(a, b Expr) int {
	if a.Equal(b) {
		return 0
	}
	if a.Kind() == KindSum || b.Kind() == KindSum {
		return compareExprListRev(asSumOperands(a), asSumOperands(b))
	}
	if a.Kind() == KindProduct || b.Kind() == KindProduct {
		return compareExprListRev(asProductOperands(a), asProductOperands(b))
	}
	if a.Kind() == KindPower || b.Kind() == KindPower {
		ab, ae := asPowerBaseExp(a)
		bb, be := asPowerBaseExp(b)
		if c := compareExpr(ab, bb); c != 0 {
			return c
		}
		return compareExpr(ae, be)
	}
	if a.Kind() != b.Kind() {
		return rankOf(a.Kind()) - rankOf(b.Kind())
	}
	switch a.Kind() {
	case KindNumeric:
		av, bv := a.(*NumericExpr).value, b.(*NumericExpr).value
		if av.Less(bv) {
			return -1
		}
		return 1
	case KindConstant:
		ak, bk := a.(*ConstantExpr).kind, b.(*ConstantExpr).kind
		return int(ak) - int(bk)
	case KindSymbol:
		as, bs := a.(*SymbolExpr), b.(*SymbolExpr)
		if !as.name.Equal(bs.name) {
			if as.name.Less(bs.name) {
				return -1
			}
			return 1
		}
		if as.positive == bs.positive {
			return 0
		}
		if !as.positive {
			return -1
		}
		return 1
	case KindFunction:
		af, bf := a.(*FunctionExpr), b.(*FunctionExpr)
		if af.kind != bf.kind {
			return int(af.kind) - int(bf.kind)
		}
		return compareExprListFwd(af.args, bf.args)
	default:
		return 0
	}
}

func compareExprListRev(as, bs []Expr) int {
	i, j := len(as)-1, len(bs)-1
	for i >= 0 && j >= 0 {
		if c := compareExpr(as[i], bs[j]); c != 0 {
			return c
		}
		i--
		j--
	}
	return len(as) - len(bs)
}

func compareExprListFwd(as, bs []Expr) int {
	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		if c := compareExpr(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return len(as) - len(bs)
}

func sortExprs(es []Expr) {
	sort.SliceStable(es, func(i, j int) bool {
		return compareExpr(es[i], es[j]) < 0
	})
}

// Less exposes the canonical order for external collaborators.
func Less(a, b Expr) bool { return compareExpr(a, b) < 0 }
