package symcore

import "fmt"

// SymbolMap lets normal() treat non-polynomial atoms (function calls,
// irrational powers, the constants pi/e) as opaque symbols while it
// runs gcd cancellation, then restores the original subexpressions
// once the fraction has been reduced.
type SymbolMap struct {
	toTemp map[string]*SymbolExpr // original subexpression's String() form -> temp symbol
	toOrig map[string]Expr        // temp symbol name -> original subexpression
	next   int
}

// NewSymbolMap returns an empty SymbolMap.
func NewSymbolMap() *SymbolMap {
	return &SymbolMap{toTemp: map[string]*SymbolExpr{}, toOrig: map[string]Expr{}}
}

// Replace returns a temporary symbol standing in for e, reusing the
// same symbol for structurally equal subexpressions.
func (m *SymbolMap) Replace(e Expr) *SymbolExpr {
	key := e.String()
	if s, ok := m.toTemp[key]; ok {
		return s
	}
	name := fmt.Sprintf("%s%d", reservedPrefix, m.next)
	m.next++
	s := makeSymbolName(NewName(name), false)
	m.toTemp[key] = s
	m.toOrig[name] = e
	return s
}

// Revert substitutes every temporary symbol in e back to the
// subexpression it stands for.
func (m *SymbolMap) Revert(e Expr) Expr {
	for name, orig := range m.toOrig {
		tmp := makeSymbolName(NewName(name), false)
		e = e.Subst(tmp, orig)
	}
	return e
}

// encode walks e, replacing every atom that isn't a plain Symbol or
// Numeric with a temporary symbol: Constants, Functions, and Powers
// whose exponent isn't an integer. Powers with an integer exponent,
// negative ones included, are kept with their base encoded.
func (m *SymbolMap) encode(e Expr) Expr {
	switch v := e.(type) {
	case *NumericExpr, *SymbolExpr:
		return e
	case *ConstantExpr:
		return m.Replace(v)
	case *FunctionExpr:
		return m.Replace(v)
	case *SumExpr:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = m.encode(t)
		}
		return MakeSum(terms)
	case *ProductExpr:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = m.encode(f)
		}
		return MakeProduct(factors)
	case *PowerExpr:
		if n, ok := v.exp.(*NumericExpr); ok && n.value.IsInt() {
			return MakePower(m.encode(v.base), v.exp)
		}
		return m.Replace(v)
	default:
		return e
	}
}
