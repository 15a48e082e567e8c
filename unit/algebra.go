package unit

import (
	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/rational"
)

// Mul multiplies two units. Operands in one homogeneous system stay in it;
// anything else merges the two system views and reduces the result.
func (u Unit) Mul(o Unit) Unit {
	return combine(u, o, false)
}

// Div divides u by o, with the same system rules as Mul.
func (u Unit) Div(o Unit) Unit {
	return combine(u, o, true)
}

func combine(a, b Unit, divide bool) Unit {
	if b.sys == nil {
		return a
	}
	if a.sys == nil && !divide {
		return b
	}

	dim := a.dim.Mul(b.dim)
	if divide {
		dim = a.dim.Div(b.dim)
	}

	if ha, ok := a.sys.(*Homogeneous); ok {
		if hb, ok := b.sys.(*Homogeneous); ok && ha == hb {
			return Unit{dim: dim, sys: ha}
		}
	}

	terms := mergeTerms(a.View(), b.View(), divide)
	origins := mergeOrigins(a.origins(), b.origins())
	return Reduce(Unit{dim: dim, sys: &Heterogeneous{terms: terms, origins: origins}})
}

// Pow raises u to the rational power r.
func (u Unit) Pow(r rational.Rational) Unit {
	switch s := u.sys.(type) {
	case *Homogeneous:
		return Unit{dim: u.dim.Pow(r), sys: s}
	case *Heterogeneous:
		if r.IsZero() {
			return Reduce(Unit{sys: &Heterogeneous{origins: s.origins}})
		}
		terms := make([]Term, len(s.terms))
		for i, t := range s.terms {
			terms[i] = Term{Unit: t.Unit, Exp: t.Exp.Mul(r)}
		}
		return Reduce(Unit{dim: u.dim.Pow(r), sys: &Heterogeneous{terms: terms, origins: s.origins}})
	default:
		return u
	}
}

// Root takes the r-th root of u. The zeroth root is an error.
func (u Unit) Root(r rational.Rational) (Unit, error) {
	inv, err := r.Inverse()
	if err != nil {
		return Unit{}, errors.Wrapf(err, "root of %s", u)
	}
	return u.Pow(inv), nil
}

// Reduce folds a heterogeneous unit into the first of its origin systems
// whose view of the dimension is exactly the unit's view. An empty view
// becomes dimensionless. Other units are returned unchanged.
func Reduce(u Unit) Unit {
	h, ok := u.sys.(*Heterogeneous)
	if !ok {
		return u
	}
	if len(h.terms) == 0 {
		if len(h.origins) > 0 {
			return Unit{sys: h.origins[0]}
		}
		return Unit{}
	}
	for _, origin := range h.origins {
		if !origin.Expresses(u.dim) {
			continue
		}
		v, err := origin.View(u.dim)
		if err != nil {
			continue
		}
		if equalTerms(v, h.terms) {
			return Unit{dim: u.dim, sys: origin}
		}
	}
	return u
}

// Unscale replaces every scaled base unit of u by its family root, so
// kilometer and centimeter both become meter.
func Unscale(u Unit) Unit {
	view := u.View()
	scaled := false
	for _, t := range view {
		if t.Unit.IsScaled() {
			scaled = true
			break
		}
	}
	if !scaled {
		return u
	}
	terms := make([]Term, len(view))
	for i, t := range view {
		terms[i] = Term{Unit: t.Unit.Unscaled(), Exp: t.Exp}
	}
	return Reduce(Unit{dim: u.dim, sys: &Heterogeneous{terms: canonicalTerms(terms), origins: u.origins()}})
}

// ReduceIn is Reduce that also tries systems, in order, after the unit's
// own origins. Units built from bare base units have no origins, so this
// is how a parsed "m kg s^-2" finds its way back into SI.
func ReduceIn(u Unit, systems ...*Homogeneous) Unit {
	u = Reduce(u)
	h, ok := u.sys.(*Heterogeneous)
	if !ok {
		return u
	}
	for _, s := range systems {
		if !s.Expresses(u.dim) {
			continue
		}
		v, err := s.View(u.dim)
		if err != nil {
			continue
		}
		if equalTerms(v, h.terms) {
			return Unit{dim: u.dim, sys: s}
		}
	}
	return u
}
