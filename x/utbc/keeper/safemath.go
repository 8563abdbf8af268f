package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/utbc-labs/utbc/x/utbc/types"
)

// Integer-exact arithmetic helpers for the UTBC module.
//
// Public values are math.Int; intermediates are widened through math/big so
// products like reserve*amount or the quadratic discriminant never lose
// precision.

// MulDiv returns floor(a*b/c). Fails when c is zero.
func MulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, types.ErrDivisionByZero.Wrap("mul_div divisor is zero")
	}

	num := new(big.Int).Mul(a.BigInt(), b.BigInt())
	num.Quo(num, c.BigInt())
	return math.NewIntFromBigInt(num), nil
}

// DivCeil returns ceil(a/b) for non-negative a and positive b. Fails when b
// is zero.
func DivCeil(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, types.ErrDivisionByZero.Wrap("div_ceil divisor is zero")
	}

	q, r := new(big.Int).QuoRem(a.BigInt(), b.BigInt(), new(big.Int))
	if r.Sign() != 0 && (a.Sign() >= 0) == (b.Sign() > 0) {
		q.Add(q, big.NewInt(1))
	}
	return math.NewIntFromBigInt(q), nil
}

// Isqrt returns floor(sqrt(n)) via Newton iteration. Fails for negative n.
func Isqrt(n math.Int) (math.Int, error) {
	if n.IsNegative() {
		return math.Int{}, types.ErrNegativeValue.Wrapf("isqrt of negative value %s", n)
	}
	return math.NewIntFromBigInt(isqrtBig(n.BigInt())), nil
}

// isqrtBig is the widened core of Isqrt, shared with the quadratic solver
// whose discriminant can exceed the math.Int range.
func isqrtBig(n *big.Int) *big.Int {
	if n.Sign() == 0 {
		return new(big.Int)
	}

	one := big.NewInt(1)
	x := new(big.Int).Set(n)
	y := new(big.Int).Add(x, one)
	y.Rsh(y, 1)
	for y.Cmp(x) < 0 {
		x.Set(y)
		y = new(big.Int).Quo(n, x)
		y.Add(y, x)
		y.Rsh(y, 1)
	}
	return x
}

// AbsInt returns |a|.
func AbsInt(a math.Int) math.Int {
	if a.IsNegative() {
		return a.Neg()
	}
	return a
}

// MinInt returns the smaller of a and b.
func MinInt(a, b math.Int) math.Int {
	if a.LT(b) {
		return a
	}
	return b
}

// MaxInt returns the larger of a and b.
func MaxInt(a, b math.Int) math.Int {
	if a.GT(b) {
		return a
	}
	return b
}
