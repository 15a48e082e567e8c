// Package dimension implements the dimension-list algebra.
//
// A Dimension is a product of base dimensions raised to rational powers,
// kept in canonical form: terms sorted by base ordinal, at most one term per
// base, and no zero exponents. Canonical form is unique, so two dimensions
// describe the same physical quantity exactly when Equal reports true.
//
//	energy := dimension.Of(length).Pow(rational.Two).
//		Mul(dimension.Of(mass)).
//		Div(dimension.Of(time).Pow(rational.Two))
//	energy.String() // "L^2 M T^-2"
package dimension

import (
	"sort"
	"strconv"
	"strings"

	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/rational"
)

// Term is one (base dimension, exponent) pair.
type Term struct {
	Base *Base
	Exp  rational.Rational
}

// Dimension is an immutable canonical list of terms.
// The zero value is dimensionless.
type Dimension struct {
	terms []Term
}

// Dimensionless returns the empty dimension.
func Dimensionless() Dimension {
	return Dimension{}
}

// Of returns the dimension b^1.
func Of(b *Base) Dimension {
	return Dimension{terms: []Term{{Base: b, Exp: rational.One}}}
}

// OfPower returns the dimension b^exp.
func OfPower(b *Base, exp rational.Rational) Dimension {
	return Canonicalize(Term{Base: b, Exp: exp})
}

// Canonicalize builds a Dimension from arbitrary terms: zero exponents are
// stripped, terms are sorted by ordinal and equal bases are merged by
// summing their exponents.
func Canonicalize(terms ...Term) Dimension {
	work := make([]Term, 0, len(terms))
	for _, t := range terms {
		if t.Base == nil || t.Exp.IsZero() {
			continue
		}
		work = append(work, t)
	}
	sort.SliceStable(work, func(i, j int) bool {
		return work[i].Base.ordinal < work[j].Base.ordinal
	})

	out := work[:0]
	for _, t := range work {
		if n := len(out); n > 0 && out[n-1].Base.ordinal == t.Base.ordinal {
			out[n-1].Exp = out[n-1].Exp.Add(t.Exp)
			if out[n-1].Exp.IsZero() {
				out = out[:n-1]
			}
			continue
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return Dimension{}
	}
	return Dimension{terms: out}
}

// Terms returns a copy of the canonical terms.
func (d Dimension) Terms() []Term {
	out := make([]Term, len(d.terms))
	copy(out, d.terms)
	return out
}

// Len returns the number of terms.
func (d Dimension) Len() int { return len(d.terms) }

// IsDimensionless reports whether d has no terms.
func (d Dimension) IsDimensionless() bool { return len(d.terms) == 0 }

// Exponent returns the exponent of b in d (zero when absent).
func (d Dimension) Exponent(b *Base) rational.Rational {
	for _, t := range d.terms {
		if t.Base.ordinal == b.ordinal {
			return t.Exp
		}
	}
	return rational.Zero
}

// Bases returns the base dimensions present in d, in ordinal order.
func (d Dimension) Bases() []*Base {
	out := make([]*Base, len(d.terms))
	for i, t := range d.terms {
		out[i] = t.Base
	}
	return out
}

// Equal reports whether d and o are the same dimension.
func (d Dimension) Equal(o Dimension) bool {
	if len(d.terms) != len(o.terms) {
		return false
	}
	for i := range d.terms {
		if d.terms[i].Base.ordinal != o.terms[i].Base.ordinal ||
			!d.terms[i].Exp.Equal(o.terms[i].Exp) {
			return false
		}
	}
	return true
}

// Mul merges the two term lists, adding exponents.
func (d Dimension) Mul(o Dimension) Dimension {
	return merge(d.terms, o.terms, false)
}

// Div merges the two term lists with o's exponents negated.
func (d Dimension) Div(o Dimension) Dimension {
	return merge(d.terms, o.terms, true)
}

// merge is a sorted merge of two canonical lists.
func merge(a, b []Term, negateB bool) Dimension {
	out := make([]Term, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j >= len(b) || (i < len(a) && a[i].Base.ordinal < b[j].Base.ordinal):
			out = append(out, a[i])
			i++
		case i >= len(a) || b[j].Base.ordinal < a[i].Base.ordinal:
			out = append(out, Term{Base: b[j].Base, Exp: signed(b[j].Exp, negateB)})
			j++
		default:
			exp := a[i].Exp.Add(signed(b[j].Exp, negateB))
			if !exp.IsZero() {
				out = append(out, Term{Base: a[i].Base, Exp: exp})
			}
			i++
			j++
		}
	}
	if len(out) == 0 {
		return Dimension{}
	}
	return Dimension{terms: out}
}

func signed(r rational.Rational, negate bool) rational.Rational {
	if negate {
		return r.Neg()
	}
	return r
}

// Pow multiplies every exponent by r.
func (d Dimension) Pow(r rational.Rational) Dimension {
	if r.IsZero() {
		return Dimension{}
	}
	out := make([]Term, len(d.terms))
	for i, t := range d.terms {
		out[i] = Term{Base: t.Base, Exp: t.Exp.Mul(r)}
	}
	return Dimension{terms: out}
}

// Root divides every exponent by r. The zeroth root is an error.
func (d Dimension) Root(r rational.Rational) (Dimension, error) {
	inv, err := r.Inverse()
	if err != nil {
		return Dimension{}, errors.Wrapf(err, "root of %s", d)
	}
	return d.Pow(inv), nil
}

// Add checks that a and b are the same dimension and returns it.
// Quantities can only be summed when their dimensions agree.
func Add(a, b Dimension) (Dimension, error) {
	if !a.Equal(b) {
		return Dimension{}, errors.NewDimensionMismatch("add", a, b)
	}
	return a, nil
}

// Sub is the same identity check as Add.
func Sub(a, b Dimension) (Dimension, error) {
	if !a.Equal(b) {
		return Dimension{}, errors.NewDimensionMismatch("subtract", a, b)
	}
	return a, nil
}

// Key returns a stable string usable as a map key.
func (d Dimension) Key() string {
	if len(d.terms) == 0 {
		return "1"
	}
	var sb strings.Builder
	for i, t := range d.terms {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(t.Base.ordinal))
		sb.WriteByte(':')
		sb.WriteString(t.Exp.String())
	}
	return sb.String()
}

// String renders the dimension with base symbols, e.g. "L^2 M T^-2".
func (d Dimension) String() string {
	if len(d.terms) == 0 {
		return "dimensionless"
	}
	parts := make([]string, len(d.terms))
	for i, t := range d.terms {
		parts[i] = t.Base.symbol
		if !t.Exp.Equal(rational.One) {
			parts[i] += "^" + t.Exp.String()
		}
	}
	return strings.Join(parts, " ")
}
