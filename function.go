package symcore

import (
	"hash/fnv"
	"math"
)

// FunctionExpr represents one of the elementary functions of spec.md
// §1: log, the six trig functions, and two-argument arctangent.
type FunctionExpr struct {
	kind FuncKind
	args []Expr
}

func (f *FunctionExpr) Func() FuncKind { return f.kind }
func (f *FunctionExpr) Args() []Expr   { return f.args }

// MakeFunction is the Function constructor; it dispatches to the
// per-kind simplification rules of spec.md §4.2.
func MakeFunction(kind FuncKind, args []Expr) Expr {
	if anyUndefined(args) {
		return Undefined()
	}
	switch kind {
	case FuncLog:
		return makeLog(args[0])
	case FuncSin:
		return makeSin(args[0])
	case FuncCos:
		return makeCos(args[0])
	case FuncTan:
		return makeTan(args[0])
	case FuncAsin:
		return makeAsin(args[0])
	case FuncAcos:
		return makeAcos(args[0])
	case FuncAtan:
		return makeAtan(args[0])
	case FuncAtan2:
		return makeAtan2(args[0], args[1])
	default:
		return Undefined()
	}
}

func rawFunction(kind FuncKind, args []Expr) Expr { return &FunctionExpr{kind: kind, args: args} }

// negated returns -e, built as the canonical product -1*e.
func negated(e Expr) Expr { return MakeProduct([]Expr{minusOneExpr, e}) }

// ---- log -------------------------------------------------------------

func makeLog(x Expr) Expr {
	if n, ok := x.(*NumericExpr); ok {
		if n.value.IsZero() || n.value.Sign() < 0 {
			return Undefined()
		}
		if n.value.IsOne() {
			return zeroExpr
		}
		if n.value.IsDouble() {
			return MakeDouble(math.Log(n.value.Float64()))
		}
		return rawFunction(FuncLog, []Expr{x})
	}
	if c, ok := x.(*ConstantExpr); ok && c.kind == ConstE {
		return oneExpr
	}
	if p, ok := x.(*PowerExpr); ok {
		if c, ok := p.base.(*ConstantExpr); ok && c.kind == ConstE {
			return p.exp
		}
	}
	if p, ok := x.(*PowerExpr); ok && p.base.IsPositive() {
		return MakeProduct([]Expr{p.exp, makeLog(p.base)})
	}
	return rawFunction(FuncLog, []Expr{x})
}

// ---- sin/cos/tan -------------------------------------------------------

func makeSin(x Expr) Expr {
	if v, ok := evalTrigExact(x, true); ok {
		return v
	}
	if x.IsNegative() {
		return negated(makeSin(negated(x)))
	}
	if f, ok := x.(*FunctionExpr); ok && f.kind == FuncAsin {
		return f.args[0]
	}
	if f, ok := x.(*FunctionExpr); ok && f.kind == FuncAtan {
		u := f.args[0]
		return MakeProduct([]Expr{u, MakePower(MakeSum([]Expr{oneExpr, MakePower(u, twoExpr)}), mustRationalExpr(-1, 2))})
	}
	if f, ok := x.(*FunctionExpr); ok && f.kind == FuncAcos {
		u := f.args[0]
		return MakePower(MakeSum([]Expr{oneExpr, MakeProduct([]Expr{minusOneExpr, MakePower(u, twoExpr)})}), halfExpr)
	}
	if f, ok := x.(*FunctionExpr); ok && f.kind == FuncAtan2 {
		y, xx := f.args[0], f.args[1]
		denom := MakePower(MakeSum([]Expr{MakePower(y, twoExpr), MakePower(xx, twoExpr)}), halfExpr)
		return MakeProduct([]Expr{y, MakePower(denom, minusOneExpr)})
	}
	return rawFunction(FuncSin, []Expr{x})
}

func makeCos(x Expr) Expr {
	if v, ok := evalTrigExact(x, false); ok {
		return v
	}
	if x.IsNegative() {
		return makeCos(negated(x))
	}
	if f, ok := x.(*FunctionExpr); ok && f.kind == FuncAcos {
		return f.args[0]
	}
	if f, ok := x.(*FunctionExpr); ok && f.kind == FuncAtan {
		u := f.args[0]
		return MakePower(MakeSum([]Expr{oneExpr, MakePower(u, twoExpr)}), mustRationalExpr(-1, 2))
	}
	if f, ok := x.(*FunctionExpr); ok && f.kind == FuncAsin {
		u := f.args[0]
		return MakePower(MakeSum([]Expr{oneExpr, MakeProduct([]Expr{minusOneExpr, MakePower(u, twoExpr)})}), halfExpr)
	}
	if f, ok := x.(*FunctionExpr); ok && f.kind == FuncAtan2 {
		y, xx := f.args[0], f.args[1]
		denom := MakePower(MakeSum([]Expr{MakePower(y, twoExpr), MakePower(xx, twoExpr)}), halfExpr)
		return MakeProduct([]Expr{xx, MakePower(denom, minusOneExpr)})
	}
	return rawFunction(FuncCos, []Expr{x})
}

func makeTan(x Expr) Expr {
	if x.Kind() == KindNumeric && x.IsZero() {
		return zeroExpr
	}
	if x.IsNegative() {
		return negated(makeTan(negated(x)))
	}
	if f, ok := x.(*FunctionExpr); ok && f.kind == FuncAtan {
		return f.args[0]
	}
	if f, ok := x.(*FunctionExpr); ok && f.kind == FuncAsin {
		u := f.args[0]
		return MakeProduct([]Expr{u, MakePower(MakeSum([]Expr{oneExpr, MakeProduct([]Expr{minusOneExpr, MakePower(u, twoExpr)})}), mustRationalExpr(-1, 2))})
	}
	if f, ok := x.(*FunctionExpr); ok && f.kind == FuncAcos {
		u := f.args[0]
		return MakeProduct([]Expr{MakePower(MakeSum([]Expr{oneExpr, MakeProduct([]Expr{minusOneExpr, MakePower(u, twoExpr)})}), halfExpr), MakePower(u, minusOneExpr)})
	}
	if f, ok := x.(*FunctionExpr); ok && f.kind == FuncAtan2 {
		y, xx := f.args[0], f.args[1]
		return MakeProduct([]Expr{y, MakePower(xx, minusOneExpr)})
	}
	if coeff, ok := asPiMultiple(x); ok {
		s, sok := sinOfPiMultiple(coeff)
		c, cok := cosOfPiMultiple(coeff)
		if sok && cok {
			return MakeProduct([]Expr{s, MakePower(c, minusOneExpr)})
		}
		return rawFunction(FuncTan, []Expr{x})
	}
	if v, ok := x.NumericValue(); ok && v.IsDouble() {
		return MakeDouble(math.Tan(v.Float64()))
	}
	return rawFunction(FuncTan, []Expr{x})
}

// evalTrigExact handles the table-driven exact evaluation and double
// fallback shared by sin and cos, per spec.md §4.2.
func evalTrigExact(x Expr, isSin bool) (Expr, bool) {
	if x.Kind() == KindNumeric && x.IsZero() {
		if isSin {
			return zeroExpr, true
		}
		return oneExpr, true
	}
	if coeff, ok := asPiMultiple(x); ok {
		if isSin {
			if v, ok := sinOfPiMultiple(coeff); ok {
				return v, true
			}
		} else {
			if v, ok := cosOfPiMultiple(coeff); ok {
				return v, true
			}
		}
		return nil, false
	}
	if v, ok := x.NumericValue(); ok && v.IsDouble() {
		if isSin {
			return MakeDouble(math.Sin(v.Float64())), true
		}
		return MakeDouble(math.Cos(v.Float64())), true
	}
	return nil, false
}

// ---- inverse trig ------------------------------------------------------

func makeAsin(x Expr) Expr {
	if n, ok := x.(*NumericExpr); ok {
		if n.value.IsZero() {
			return zeroExpr
		}
		v := n.value
		if v.IsRational() && v.Abs().Greater(numOne) {
			return Undefined()
		}
		if v.IsDouble() {
			if math.Abs(v.Float64()) > 1 {
				return Undefined()
			}
			return MakeDouble(math.Asin(v.Float64()))
		}
	}
	if x.IsNegative() {
		return negated(makeAsin(negated(x)))
	}
	if f, ok := x.(*FunctionExpr); ok && f.kind == FuncSin {
		if c, ok := asPiMultiple(f.args[0]); ok {
			return piMultiple(principalAsinCoeff(c))
		}
		if v, ok := f.args[0].NumericValue(); ok && v.IsDouble() {
			return MakeDouble(math.Asin(math.Sin(v.Float64())))
		}
	}
	return rawFunction(FuncAsin, []Expr{x})
}

func makeAcos(x Expr) Expr {
	if n, ok := x.(*NumericExpr); ok {
		if n.value.IsZero() {
			return MakeProduct([]Expr{halfExpr, piExpr})
		}
		v := n.value
		if v.IsRational() && v.Abs().Greater(numOne) {
			return Undefined()
		}
		if v.IsDouble() {
			if math.Abs(v.Float64()) > 1 {
				return Undefined()
			}
			return MakeDouble(math.Acos(v.Float64()))
		}
	}
	if f, ok := x.(*FunctionExpr); ok && f.kind == FuncCos {
		if c, ok := asPiMultiple(f.args[0]); ok {
			return piMultiple(principalAcosCoeff(c))
		}
		if v, ok := f.args[0].NumericValue(); ok && v.IsDouble() {
			return MakeDouble(math.Acos(math.Cos(v.Float64())))
		}
	}
	return rawFunction(FuncAcos, []Expr{x})
}

func makeAtan(x Expr) Expr {
	if n, ok := x.(*NumericExpr); ok {
		if n.value.IsZero() {
			return zeroExpr
		}
		if n.value.IsDouble() {
			return MakeDouble(math.Atan(n.value.Float64()))
		}
	}
	if x.IsNegative() {
		return negated(makeAtan(negated(x)))
	}
	if f, ok := x.(*FunctionExpr); ok && f.kind == FuncTan {
		if c, ok := asPiMultiple(f.args[0]); ok {
			return piMultiple(principalAtanCoeff(c))
		}
		if v, ok := f.args[0].NumericValue(); ok && v.IsDouble() {
			return MakeDouble(math.Atan(math.Tan(v.Float64())))
		}
	}
	return rawFunction(FuncAtan, []Expr{x})
}

// principalAsinCoeff reduces a pi-coefficient into asin's principal
// range [-1/2, 1/2] (i.e. [-pi/2, pi/2] in radians).
func principalAsinCoeff(c Number) Number {
	c = mod2Centered(c)
	half := numHalf
	if c.GreaterEqual(half.Neg()) && c.LessEqual(half) {
		return c
	}
	if c.Greater(half) {
		return numOne.Sub(c)
	}
	return numOne.Neg().Sub(c)
}

// principalAcosCoeff reduces into acos's principal range [0, 1].
func principalAcosCoeff(c Number) Number {
	c = mod2Centered(c)
	if c.Sign() < 0 {
		c = c.Neg()
	}
	if c.LessEqual(numOne) {
		return c
	}
	return numTwo.Sub(c)
}

// principalAtanCoeff reduces into atan's principal range (-1/2, 1/2].
func principalAtanCoeff(c Number) Number {
	one := numOne
	k := floorNumber(c.Add(numHalf).Div(one))
	r := c.Sub(k.Mul(one))
	half := numHalf
	if r.Greater(half) {
		r = r.Sub(one)
	}
	if r.LessEqual(half.Neg()) {
		r = r.Add(one)
	}
	return r
}

// mod2Centered reduces c into [-1, 1).
func mod2Centered(c Number) Number {
	two := numTwo
	k := floorNumber(c.Add(numOne).Div(two))
	return c.Sub(k.Mul(two))
}

// ---- atan2 ---------------------------------------------------------

func makeAtan2(y, x Expr) Expr {
	yZero := y.Kind() == KindNumeric && y.IsZero()
	xZero := x.Kind() == KindNumeric && x.IsZero()
	if yZero && xZero {
		return Undefined()
	}
	if yv, yok := y.NumericValue(); yok {
		if xv, xok := x.NumericValue(); xok {
			v := math.Atan2(yv.Float64(), xv.Float64())
			if v < 0 {
				v += 2 * math.Pi
			}
			return MakeDouble(v)
		}
	}
	if xZero {
		if y.IsPositive() {
			return MakeProduct([]Expr{halfExpr, piExpr})
		}
		if y.IsNegative() {
			return MakeProduct([]Expr{mustRationalExpr(-1, 2), piExpr})
		}
	}
	if yZero {
		if x.IsPositive() {
			return zeroExpr
		}
		if x.IsNegative() {
			return piExpr
		}
	}
	ratio := MakeProduct([]Expr{y, MakePower(x, minusOneExpr)})
	if x.IsPositive() {
		return makeAtan(ratio)
	}
	if x.IsNegative() && y.IsPositive() {
		return MakeSum([]Expr{makeAtan(ratio), piExpr})
	}
	if x.IsNegative() && y.IsNegative() {
		return MakeSum([]Expr{makeAtan(ratio), negated(piExpr)})
	}
	return rawFunction(FuncAtan2, []Expr{y, x})
}

// ---- Expr interface methods -------------------------------------------

func (f *FunctionExpr) Kind() Kind       { return KindFunction }
func (f *FunctionExpr) Operands() []Expr { return f.args }
func (f *FunctionExpr) Equal(other Expr) bool {
	o, ok := other.(*FunctionExpr)
	if !ok || o.kind != f.kind || len(o.args) != len(f.args) {
		return false
	}
	for i := range f.args {
		if !f.args[i].Equal(o.args[i]) {
			return false
		}
	}
	return true
}
func (f *FunctionExpr) Contains(sub Expr) bool {
	if f.Equal(sub) {
		return true
	}
	for _, a := range f.args {
		if a.Contains(sub) {
			return true
		}
	}
	return false
}
func (f *FunctionExpr) NumericValue() (Number, bool) {
	vals := make([]float64, len(f.args))
	for i, a := range f.args {
		nv, ok := a.NumericValue()
		if !ok {
			return Number{}, false
		}
		vals[i] = nv.Float64()
	}
	var v float64
	switch f.kind {
	case FuncLog:
		v = math.Log(vals[0])
	case FuncSin:
		v = math.Sin(vals[0])
	case FuncCos:
		v = math.Cos(vals[0])
	case FuncTan:
		v = math.Tan(vals[0])
	case FuncAsin:
		v = math.Asin(vals[0])
	case FuncAcos:
		v = math.Acos(vals[0])
	case FuncAtan:
		v = math.Atan(vals[0])
	case FuncAtan2:
		v = math.Atan2(vals[0], vals[1])
	default:
		return Number{}, false
	}
	n := NumberFromDouble(v)
	if n.IsUndefined() {
		return Number{}, false
	}
	return n, true
}
func (f *FunctionExpr) IsZero() bool { return false }
func (f *FunctionExpr) IsPositive() bool {
	if v, ok := f.NumericValue(); ok {
		return v.Sign() > 0
	}
	switch f.kind {
	case FuncLog:
		return f.args[0].IsPositive() && greaterThanOneKnown(f.args[0])
	case FuncAtan:
		return f.args[0].IsPositive()
	default:
		return false
	}
}
func (f *FunctionExpr) IsNegative() bool {
	if v, ok := f.NumericValue(); ok {
		return v.Sign() < 0
	}
	switch f.kind {
	case FuncLog:
		if n, ok := f.args[0].(*NumericExpr); ok {
			return n.value.Sign() > 0 && n.value.Less(numOne)
		}
		return false
	case FuncAtan:
		return f.args[0].IsNegative()
	default:
		return false
	}
}

func greaterThanOneKnown(e Expr) bool {
	if n, ok := e.(*NumericExpr); ok {
		return n.value.Greater(numOne)
	}
	return false
}

func (f *FunctionExpr) Diff(sym *SymbolExpr) Expr {
	if f.kind == FuncAtan2 {
		y, x := f.args[0], f.args[1]
		dy, dx := y.Diff(sym), x.Diff(sym)
		num := MakeSum([]Expr{MakeProduct([]Expr{x, dy}), negated(MakeProduct([]Expr{y, dx}))})
		denom := MakeSum([]Expr{MakePower(x, twoExpr), MakePower(y, twoExpr)})
		return MakeProduct([]Expr{num, MakePower(denom, minusOneExpr)})
	}
	u := f.args[0]
	du := u.Diff(sym)
	var outer Expr
	switch f.kind {
	case FuncLog:
		outer = MakePower(u, minusOneExpr)
	case FuncSin:
		outer = MakeFunction(FuncCos, []Expr{u})
	case FuncCos:
		outer = negated(MakeFunction(FuncSin, []Expr{u}))
	case FuncTan:
		outer = MakePower(MakeFunction(FuncCos, []Expr{u}), makeNumeric(numTwo.Neg()))
	case FuncAsin:
		outer = MakePower(MakeSum([]Expr{oneExpr, negated(MakePower(u, twoExpr))}), mustRationalExpr(-1, 2))
	case FuncAcos:
		outer = negated(MakePower(MakeSum([]Expr{oneExpr, negated(MakePower(u, twoExpr))}), mustRationalExpr(-1, 2)))
	case FuncAtan:
		outer = MakePower(MakeSum([]Expr{oneExpr, MakePower(u, twoExpr)}), minusOneExpr)
	default:
		return zeroExpr
	}
	return MakeProduct([]Expr{outer, du})
}

func (f *FunctionExpr) Subst(from, to Expr) Expr {
	if f.Equal(from) {
		return to
	}
	args := make([]Expr, len(f.args))
	for i, a := range f.args {
		args[i] = a.Subst(from, to)
	}
	return MakeFunction(f.kind, args)
}
func (f *FunctionExpr) Expand() Expr {
	args := make([]Expr, len(f.args))
	for i, a := range f.args {
		args[i] = a.Expand()
	}
	return MakeFunction(f.kind, args)
}
func (f *FunctionExpr) String() string {
	s := f.kind.String() + "("
	for i, a := range f.args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}
func (f *FunctionExpr) hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte("function:" + f.kind.String()))
	var b [8]byte
	for _, a := range f.args {
		v := a.hash()
		for i := range b {
			b[i] = byte(v >> (8 * i))
		}
		h.Write(b[:])
	}
	return h.Sum64()
}
func (f *FunctionExpr) complexity() int {
	c := 3
	for _, a := range f.args {
		c += a.complexity()
	}
	return c
}
