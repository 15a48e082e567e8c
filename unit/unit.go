// Package unit pairs dimensions with unit systems.
//
// A Unit is a (dimension, system) pair and carries no value. Units in one
// homogeneous system multiply within that system; mixing systems produces a
// heterogeneous unit that keeps every base unit distinct, so centimeter and
// meter survive side by side in "cm m^-1 kg s^-2". Reduce folds a
// heterogeneous unit back into a homogeneous origin when one matches.
package unit

import (
	"github.com/teranos/dims/dimension"
	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/rational"
)

// Unit is an immutable (dimension, system) pair.
// The zero value is the plain dimensionless unit.
type Unit struct {
	dim dimension.Dimension
	sys System
}

// New returns d expressed in sys.
func New(d dimension.Dimension, sys System) (Unit, error) {
	switch s := sys.(type) {
	case nil:
		if !d.IsDimensionless() {
			return Unit{}, errors.Wrapf(errors.ErrIncompleteSystem, "%s needs a unit system", d)
		}
		return Unit{}, nil
	case *Homogeneous:
		if s == nil {
			return Unit{}, errors.NewInvalidRequestError("nil homogeneous system")
		}
		if !s.Expresses(d) {
			return Unit{}, errors.Wrapf(errors.ErrIncompleteSystem, "system %s cannot express %s", s.name, d)
		}
		return Unit{dim: d, sys: s}, nil
	case *Heterogeneous:
		if s == nil {
			return Unit{}, errors.NewInvalidRequestError("nil heterogeneous system")
		}
		if got := s.Dimension(); !got.Equal(d) {
			return Unit{}, errors.NewDimensionMismatch("express", d, got)
		}
		return Unit{dim: d, sys: s}, nil
	default:
		return Unit{}, errors.NewInvalidRequestError("unknown system type %T", sys)
	}
}

// MustNew is New for package-level variables.
func MustNew(d dimension.Dimension, sys System) Unit {
	u, err := New(d, sys)
	if err != nil {
		panic(err)
	}
	return u
}

// Dimensionless returns the plain dimensionless unit.
func Dimensionless() Unit { return Unit{} }

// FromBase returns the unit consisting of b alone.
func FromBase(b *BaseUnit) Unit {
	return Compose(Term{Unit: b, Exp: rational.One})
}

// Compose builds a heterogeneous unit directly from base units, e.g.
// Compose({nmi, 2}, {km, -1}).
func Compose(terms ...Term) Unit {
	h := NewHeterogeneous(terms)
	if len(h.terms) == 0 {
		return Unit{}
	}
	return Unit{dim: h.Dimension(), sys: h}
}

// Dimension returns the canonical dimension.
func (u Unit) Dimension() dimension.Dimension { return u.dim }

// System returns the unit system, nil for the plain dimensionless unit.
func (u Unit) System() System { return u.sys }

// IsDimensionless reports whether u has no dimension.
func (u Unit) IsDimensionless() bool { return u.dim.IsDimensionless() }

// IsHomogeneous reports whether u is expressed in a homogeneous system.
func (u Unit) IsHomogeneous() bool {
	_, ok := u.sys.(*Homogeneous)
	return ok
}

// IsHeterogeneous reports whether u is a heterogeneous composite.
func (u Unit) IsHeterogeneous() bool {
	_, ok := u.sys.(*Heterogeneous)
	return ok
}

// View returns the canonical (base unit, exponent) list of u.
func (u Unit) View() []Term {
	switch s := u.sys.(type) {
	case *Homogeneous:
		v, err := s.View(u.dim)
		if err != nil {
			// New guarantees the system expresses the dimension
			panic(errors.AssertionFailedf("unit %s: %v", u.dim, err))
		}
		return v
	case *Heterogeneous:
		return s.Terms()
	default:
		return nil
	}
}

// View is the package-level form of u.View.
func View(u Unit) []Term { return u.View() }

// origins returns the homogeneous systems u can reduce to.
func (u Unit) origins() []*Homogeneous {
	switch s := u.sys.(type) {
	case *Homogeneous:
		return []*Homogeneous{s}
	case *Heterogeneous:
		return s.origins
	default:
		return nil
	}
}

// Equal reports whether a and b denote the same physical unit: the same
// dimension built from the same base units.
func (u Unit) Equal(o Unit) bool {
	if !u.dim.Equal(o.dim) {
		return false
	}
	return equalTerms(u.View(), o.View())
}

// Identical is Equal that also requires matching homogeneous systems.
// Addition and comparison use it: SI time and CGS time are Equal but not
// Identical.
func (u Unit) Identical(o Unit) bool {
	if !u.Equal(o) {
		return false
	}
	a, aok := u.sys.(*Homogeneous)
	b, bok := o.sys.(*Homogeneous)
	if aok && bok && len(u.View()) > 0 {
		return a == b
	}
	return true
}

// Key is a stable string usable as a map key. Units with equal views share
// a key.
func (u Unit) Key() string {
	v := u.View()
	if len(v) == 0 {
		return u.dim.Key()
	}
	return u.dim.Key() + "|" + viewKey(v)
}

// String renders the symbol form, e.g. "cm m^-1 kg s^-2".
func (u Unit) String() string {
	v := u.View()
	if len(v) == 0 {
		return "dimensionless"
	}
	return viewString(v)
}

// SingleBase returns the base unit when u is exactly one base unit to the
// power one.
// Affine offsets only apply to such units.
func (u Unit) SingleBase() (*BaseUnit, bool) {
	v := u.View()
	if len(v) != 1 || !v[0].Exp.Equal(rational.One) {
		return nil, false
	}
	return v[0].Unit, true
}
