// Package rational provides exact fractions used as dimension exponents.
//
// A Rational is always stored in lowest terms with a positive denominator,
// so two rationals are equal exactly when their fields are equal and the
// zero value is the number 0.
package rational

import (
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/teranos/dims/errors"
)

// Rational is an exact fraction num/den in lowest terms.
type Rational struct {
	num int64
	den int64
}

// Common exponents.
var (
	Zero = Rational{0, 1}
	One  = Rational{1, 1}
	Two  = Rational{2, 1}
	Half = Rational{1, 2}
)

// New returns num/den reduced to lowest terms.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, errors.Wrapf(errors.ErrZeroDenominator, "rational %d/0", num)
	}
	return normalize(num, den), nil
}

// MustNew is New for constant arguments; it panics on a zero denominator.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// FromInt returns n/1.
func FromInt(n int64) Rational {
	return Rational{n, 1}
}

// Parse reads "n" or "n/d".
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	numStr, denStr, found := strings.Cut(s, "/")
	num, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return Rational{}, errors.NewInvalidRequestError("invalid rational %q", s)
	}
	if !found {
		return FromInt(num), nil
	}
	den, err := strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
	if err != nil {
		return Rational{}, errors.NewInvalidRequestError("invalid rational %q", s)
	}
	return New(num, den)
}

func normalize(num, den int64) Rational {
	if num == 0 {
		return Rational{0, 1}
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	return Rational{num / g, den / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// Num returns the numerator.
func (r Rational) Num() int64 { return r.num }

// Den returns the denominator, which is always positive.
func (r Rational) Den() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{-r.num, r.Den()}
}

// Add returns r + o. It panics when the result does not fit in int64;
// CheckedAdd reports that as an error instead.
func (r Rational) Add(o Rational) Rational {
	return must(r.CheckedAdd(o))
}

// Sub returns r - o, panicking on overflow like Add.
func (r Rational) Sub(o Rational) Rational {
	return must(r.CheckedSub(o))
}

// Mul returns r * o, panicking on overflow like Add.
func (r Rational) Mul(o Rational) Rational {
	return must(r.CheckedMul(o))
}

// CheckedAdd returns r + o, or ErrInvalidRequest when the numerator or
// denominator overflows int64.
func (r Rational) CheckedAdd(o Rational) (Rational, error) {
	g := gcd(r.Den(), o.Den())
	rs, os := o.Den()/g, r.Den()/g
	a, ok1 := mul64(r.num, rs)
	b, ok2 := mul64(o.num, os)
	num, ok3 := add64(a, b)
	den, ok4 := mul64(r.Den(), rs)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return Rational{}, errors.NewInvalidRequestError("%s + %s overflows int64", r, o)
	}
	return normalize(num, den), nil
}

// CheckedSub returns r - o with the overflow check of CheckedAdd.
func (r Rational) CheckedSub(o Rational) (Rational, error) {
	if o.num == math.MinInt64 {
		return Rational{}, errors.NewInvalidRequestError("%s - %s overflows int64", r, o)
	}
	return r.CheckedAdd(o.Neg())
}

// CheckedMul returns r * o, or ErrInvalidRequest on int64 overflow.
// Factors are cross-reduced first so only irreducible products can fail.
func (r Rational) CheckedMul(o Rational) (Rational, error) {
	if r.num == 0 || o.num == 0 {
		return Zero, nil
	}
	g1 := gcd(abs(r.num), o.Den())
	g2 := gcd(abs(o.num), r.Den())
	num, ok1 := mul64(r.num/g1, o.num/g2)
	den, ok2 := mul64(r.Den()/g2, o.Den()/g1)
	if !ok1 || !ok2 {
		return Rational{}, errors.NewInvalidRequestError("%s * %s overflows int64", r, o)
	}
	return normalize(num, den), nil
}

func must(r Rational, err error) Rational {
	if err != nil {
		panic(err)
	}
	return r
}

// mul64 multiplies and reports whether the product fits in int64.
func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(uabs(a), uabs(b))
	if hi != 0 {
		return 0, false
	}
	if neg {
		if lo > 1<<63 {
			return 0, false
		}
		return int64(-lo), true
	}
	if lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

func add64(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

func uabs(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

// Div returns r / o. Dividing by zero is an error.
func (r Rational) Div(o Rational) (Rational, error) {
	if o.num == 0 {
		return Rational{}, errors.Wrapf(errors.ErrZeroDenominator, "%s / 0", r)
	}
	return r.CheckedMul(normalize(o.Den(), o.num))
}

// Inverse returns 1/r. The inverse of zero is an error.
func (r Rational) Inverse() (Rational, error) {
	return One.Div(r)
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.num == 0 }

// IsInteger reports whether the denominator is 1.
func (r Rational) IsInteger() bool { return r.Den() == 1 }

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	}
	return 0
}

// Cmp compares r and o and returns -1, 0 or +1.
func (r Rational) Cmp(o Rational) int {
	return r.Sub(o).Sign()
}

// Equal reports whether r == o.
func (r Rational) Equal(o Rational) bool {
	return r.num == o.num && r.Den() == o.Den()
}

// Float64 returns the nearest float64.
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

// String renders "n" for integers and "n/d" otherwise.
func (r Rational) String() string {
	if r.IsInteger() {
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}
