package symcore

import "sync"

// asPiMultiple recognizes an expression of the form c*pi (c rational)
// or the bare constant pi (c = 1), returning the rational coefficient.
// Plain numeric zero also counts, with coefficient 0.
func asPiMultiple(e Expr) (Number, bool) {
	if n, ok := e.(*NumericExpr); ok && n.value.IsZero() {
		return numZero, true
	}
	if c, ok := e.(*ConstantExpr); ok && c.kind == ConstPi {
		return numOne, true
	}
	if p, ok := e.(*ProductExpr); ok && len(p.factors) == 2 {
		if n, ok := p.factors[0].(*NumericExpr); ok && n.value.IsRational() {
			if c, ok := p.factors[1].(*ConstantExpr); ok && c.kind == ConstPi {
				return n.value, true
			}
		}
	}
	return Number{}, false
}

func piMultiple(c Number) Expr {
	if c.IsZero() {
		return zeroExpr
	}
	return MakeProduct([]Expr{makeNumeric(c), piExpr})
}

type sinTableEntry struct {
	coeff Number
	value func() Expr
}

var sinTableOnce sync.Once
var sinTableData map[string]Expr

func sqrtExpr(n int64) Expr { return MakePower(MakeInteger(n), halfExpr) }

func buildSinTable() map[string]Expr {
	sqrt2 := sqrtExpr(2)
	sqrt6 := sqrtExpr(6)
	sqrt3 := sqrtExpr(3)
	quarter := mustRational(1, 4)
	entries := []sinTableEntry{
		{numZero, func() Expr { return zeroExpr }},
		{mustRational(1, 12), func() Expr {
			return MakeProduct([]Expr{makeNumeric(quarter), MakeSum([]Expr{sqrt6, MakeProduct([]Expr{minusOneExpr, sqrt2})})})
		}},
		{mustRational(1, 8), func() Expr {
			return MakeProduct([]Expr{halfExpr, MakePower(MakeSum([]Expr{twoExpr, MakeProduct([]Expr{minusOneExpr, sqrt2})}), halfExpr)})
		}},
		{mustRational(1, 6), func() Expr { return halfExpr }},
		{mustRational(1, 4), func() Expr { return MakePower(twoExpr, mustRationalExpr(-1, 2)) }},
		{mustRational(1, 3), func() Expr { return MakeProduct([]Expr{halfExpr, sqrt3}) }},
		{mustRational(3, 8), func() Expr {
			return MakeProduct([]Expr{halfExpr, MakePower(MakeSum([]Expr{twoExpr, sqrt2}), halfExpr)})
		}},
		{mustRational(5, 12), func() Expr {
			return MakeProduct([]Expr{makeNumeric(quarter), MakeSum([]Expr{sqrt6, sqrt2})})
		}},
		{mustRational(1, 2), func() Expr { return oneExpr }},
	}
	table := make(map[string]Expr, len(entries))
	for _, e := range entries {
		table[e.coeff.String()] = e.value()
	}
	return table
}

func mustRationalExpr(n, d int64) Expr { return makeNumeric(mustRational(n, d)) }

func sinTable() map[string]Expr {
	sinTableOnce.Do(func() { sinTableData = buildSinTable() })
	return sinTableData
}

// sinOfPiMultiple returns sin(coeff*pi) if coeff reduces to one of the
// table's first-quadrant denominators, and false otherwise.
func sinOfPiMultiple(coeff Number) (Expr, bool) {
	two := numTwo
	reduced := coeff.Sub(floorNumber(coeff.Div(two)).Mul(two)) // coeff mod 2, in [0,2)
	if reduced.Sign() < 0 {
		reduced = reduced.Add(two)
	}
	half := numHalf
	one := numOne
	threeHalf := mustRational(3, 2)

	lookup := func(c Number) (Expr, bool) {
		v, ok := sinTable()[c.String()]
		return v, ok
	}

	switch {
	case reduced.LessEqual(half):
		return lookup(reduced)
	case reduced.LessEqual(one):
		return lookup(one.Sub(reduced))
	case reduced.LessEqual(threeHalf):
		v, ok := lookup(reduced.Sub(one))
		if !ok {
			return nil, false
		}
		return MakeProduct([]Expr{minusOneExpr, v}), true
	default:
		v, ok := lookup(two.Sub(reduced))
		if !ok {
			return nil, false
		}
		return MakeProduct([]Expr{minusOneExpr, v}), true
	}
}

func cosOfPiMultiple(coeff Number) (Expr, bool) {
	return sinOfPiMultiple(coeff.Add(numHalf))
}

// floorNumber returns the integer Number <= n (floor), for rational n.
func floorNumber(n Number) Number {
	if n.IsDouble() {
		panic("floorNumber: double not supported")
	}
	q := floorDivInt(n.Numerator(), n.Denominator())
	return NumberFromInt(q)
}
