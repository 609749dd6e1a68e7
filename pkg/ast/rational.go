package ast

import (
	"math/big"
)

// Rational is an exact arbitrary-precision rational number, backed by the
// standard library's big.Rat. This is the external rational-arithmetic
// collaborator named in the specification (exact +,-,*,/, integer power,
// gcd, comparison, sign tests); math/big.Rat already reduces to lowest
// terms and keeps the denominator positive, so no reduction logic is
// duplicated here.
type Rational struct {
	val *big.Rat
}

// Well-known rational constants.
var (
	ZERO      = NewRationalFromRat(big.NewRat(0, 1))
	ONE       = NewRationalFromRat(big.NewRat(1, 1))
	MINUS_ONE = NewRationalFromRat(big.NewRat(-1, 1))
)

// NewRational builds a Rational from an integer numerator and denominator.
func NewRational(num, den int64) *Rational {
	return &Rational{val: big.NewRat(num, den)}
}

// NewInt builds an integer-valued Rational.
func NewInt(n int64) *Rational {
	return &Rational{val: big.NewRat(n, 1)}
}

// NewRationalFromBigInts builds a Rational from arbitrary-precision integers.
func NewRationalFromBigInts(num, den *big.Int) *Rational {
	r := new(big.Rat).SetFrac(num, den)
	return &Rational{val: r}
}

// NewRationalFromRat wraps an existing big.Rat value.
func NewRationalFromRat(r *big.Rat) *Rational {
	return &Rational{val: new(big.Rat).Set(r)}
}

func (r *Rational) Kind() Kind    { return KindRational }
func (r *Rational) Args() []Expr  { return nil }
func (r *Rational) String() string {
	if r.val.IsInt() {
		return r.val.Num().String()
	}
	return r.val.RatString()
}

// Rat returns the underlying big.Rat value (read-only; callers must not
// mutate it).
func (r *Rational) Rat() *big.Rat { return r.val }

// Sign returns -1, 0, or 1 according to the rational's sign.
func (r *Rational) Sign() int { return r.val.Sign() }

// IsInt reports whether the rational has denominator 1.
func (r *Rational) IsInt() bool { return r.val.IsInt() }

// Num returns the numerator.
func (r *Rational) Num() *big.Int { return r.val.Num() }

// Denom returns the denominator.
func (r *Rational) Denom() *big.Int { return r.val.Denom() }

// Int64 returns the rational as an int64, valid only when IsInt() and the
// value fits.
func (r *Rational) Int64() int64 { return r.val.Num().Int64() }

// AddR returns the exact sum a+b.
func AddR(a, b *Rational) *Rational {
	return &Rational{val: new(big.Rat).Add(a.val, b.val)}
}

// SubR returns the exact difference a-b.
func SubR(a, b *Rational) *Rational {
	return &Rational{val: new(big.Rat).Sub(a.val, b.val)}
}

// MulR returns the exact product a*b.
func MulR(a, b *Rational) *Rational {
	return &Rational{val: new(big.Rat).Mul(a.val, b.val)}
}

// QuoR returns the exact quotient a/b. b must be nonzero.
func QuoR(a, b *Rational) *Rational {
	return &Rational{val: new(big.Rat).Quo(a.val, b.val)}
}

// NegR returns -a.
func NegR(a *Rational) *Rational {
	return &Rational{val: new(big.Rat).Neg(a.val)}
}

// CmpR compares two rationals numerically (-1, 0, 1).
func CmpR(a, b *Rational) int {
	return a.val.Cmp(b.val)
}

// PowR raises a to an integer power n (n may be negative provided a is
// nonzero), returning the exact result.
func PowR(a *Rational, n *big.Int) *Rational {
	if n.Sign() == 0 {
		return ONE
	}
	neg := n.Sign() < 0
	exp := new(big.Int).Abs(n)
	numPow := new(big.Int).Exp(a.val.Num(), exp, nil)
	denPow := new(big.Int).Exp(a.val.Denom(), exp, nil)
	r := new(big.Rat).SetFrac(numPow, denPow)
	if neg {
		r.Inv(r)
	}
	return &Rational{val: r}
}

// DivRem splits a rational into its integer quotient and fractional
// remainder, e.g. 7/2 -> (3, 1/2).
func DivRem(a *Rational) (quot *big.Int, rem *Rational) {
	q := new(big.Int)
	r := new(big.Int)
	q.QuoRem(a.val.Num(), a.val.Denom(), r)
	remRat := new(big.Rat).SetFrac(r, a.val.Denom())
	return q, &Rational{val: remRat}
}

// IntGCD returns the gcd of two integer-valued rationals, or nil if either
// is not an integer.
func IntGCD(a, b *Rational) *big.Int {
	if !a.IsInt() || !b.IsInt() {
		return nil
	}
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a.Num()), new(big.Int).Abs(b.Num()))
}
