package symcore

import (
	"hash/fnv"
	"strings"
)

// SymbolExpr is a named variable, carrying an optional "known
// positive" flag (spec.md §3). Two symbols with the same name but
// different positivity flags are distinct expressions; a non-positive
// symbol sorts before a positive one of the same name (spec.md §3
// canonical order).
type SymbolExpr struct {
	name     Name
	positive bool
}

// MakeSymbol builds a Symbol expression. An empty name or a name using
// the reserved internal prefix yields Undefined (InvalidSymbolName).
func MakeSymbol(name string, positive bool) Expr {
	if name == "" || strings.HasPrefix(name, reservedPrefix) {
		return Undefined()
	}
	return &SymbolExpr{name: NewName(name), positive: positive}
}

// makeSymbolName builds a Symbol from a full Name (used internally by
// SymbolMap for temporaries, which legitimately use the reserved
// prefix).
func makeSymbolName(n Name, positive bool) *SymbolExpr {
	return &SymbolExpr{name: n, positive: positive}
}

func (s *SymbolExpr) Kind() Kind       { return KindSymbol }
func (s *SymbolExpr) Name() Name       { return s.name }
func (s *SymbolExpr) Positive() bool   { return s.positive }
func (s *SymbolExpr) Operands() []Expr { return nil }
func (s *SymbolExpr) Equal(other Expr) bool {
	o, ok := other.(*SymbolExpr)
	return ok && o.name.Equal(s.name) && o.positive == s.positive
}
func (s *SymbolExpr) Contains(sub Expr) bool { return s.Equal(sub) }
func (s *SymbolExpr) NumericValue() (Number, bool) { return Number{}, false }
func (s *SymbolExpr) IsPositive() bool             { return s.positive }
func (s *SymbolExpr) IsNegative() bool             { return false }
func (s *SymbolExpr) IsZero() bool                 { return false }
func (s *SymbolExpr) Diff(sym *SymbolExpr) Expr {
	if s.Equal(sym) {
		return oneExpr
	}
	return zeroExpr
}
func (s *SymbolExpr) Subst(from, to Expr) Expr {
	if s.Equal(from) {
		return to
	}
	return s
}
func (s *SymbolExpr) Expand() Expr  { return s }
func (s *SymbolExpr) String() string { return s.name.String() }
func (s *SymbolExpr) hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte("symbol:" + s.name.String()))
	if s.positive {
		h.Write([]byte(":+"))
	}
	return h.Sum64()
}
func (s *SymbolExpr) complexity() int { return 5 }
