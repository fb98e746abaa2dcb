package symcore

import (
	"math/big"
)

// Int is a signed arbitrary-precision integer. It wraps math/big.Int
// the same way the teacher's Rational wraps math/big.Rat, and the way
// robpike-ivy's value.BigInt wraps math/big.Int: a thin value type
// around the stdlib bignum so the rest of the package never touches
// big.Int directly.
type Int struct {
	v *big.Int
}

func newInt(v *big.Int) Int { return Int{v: v} }

// IntFromInt64 builds an Int from a machine integer.
func IntFromInt64(n int64) Int { return Int{v: big.NewInt(n)} }

// IntFromString parses a base-10 signed integer literal.
func IntFromString(s string) (Int, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, false
	}
	return Int{v: v}, true
}

func (a Int) big() *big.Int {
	if a.v == nil {
		return big.NewInt(0)
	}
	return a.v
}

func (a Int) Add(b Int) Int { return newInt(new(big.Int).Add(a.big(), b.big())) }
func (a Int) Sub(b Int) Int { return newInt(new(big.Int).Sub(a.big(), b.big())) }
func (a Int) Mul(b Int) Int { return newInt(new(big.Int).Mul(a.big(), b.big())) }
func (a Int) Neg() Int      { return newInt(new(big.Int).Neg(a.big())) }
func (a Int) Abs() Int      { return newInt(new(big.Int).Abs(a.big())) }

// Quo truncates toward zero, matching spec.md §3's Int invariant.
func (a Int) Quo(b Int) Int { return newInt(new(big.Int).Quo(a.big(), b.big())) }

// Rem has the sign of the dividend, matching spec.md §3.
func (a Int) Rem(b Int) Int { return newInt(new(big.Int).Rem(a.big(), b.big())) }

// Gcd returns the non-negative greatest common divisor of a and b.
func (a Int) Gcd(b Int) Int {
	return newInt(new(big.Int).GCD(nil, nil, a.Abs().big(), b.Abs().big()))
}

// Lcm returns the non-negative least common multiple of a and b.
func (a Int) Lcm(b Int) Int {
	if a.IsZero() || b.IsZero() {
		return IntFromInt64(0)
	}
	g := a.Gcd(b)
	return a.Quo(g).Mul(b).Abs()
}

// Pow raises a to a non-negative integer exponent.
func (a Int) Pow(exp int64) Int {
	if exp < 0 {
		return IntFromInt64(0)
	}
	return newInt(new(big.Int).Exp(a.big(), big.NewInt(exp), nil))
}

func (a Int) Cmp(b Int) int { return a.big().Cmp(b.big()) }
func (a Int) Equal(b Int) bool { return a.Cmp(b) == 0 }
func (a Int) IsZero() bool     { return a.big().Sign() == 0 }
func (a Int) IsOne() bool      { return a.big().Cmp(big.NewInt(1)) == 0 }

// Sign returns -1, 0 or +1.
func (a Int) Sign() int { return a.big().Sign() }

// FitsInt64 reports whether a narrows losslessly into an int64.
func (a Int) FitsInt64() bool { return a.big().IsInt64() }

// Int64 narrows a into an int64; callers must check FitsInt64 first.
func (a Int) Int64() int64 { return a.big().Int64() }

// Float64 converts a to the nearest double.
func (a Int) Float64() float64 {
	f, _ := new(big.Float).SetInt(a.big()).Float64()
	return f
}

func (a Int) String() string { return a.big().String() }
