package unit

import (
	"sort"
	"strings"
	"sync"

	"github.com/teranos/dims/dimension"
	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/logger"
	"github.com/teranos/dims/rational"
)

// Kind distinguishes the two shapes of a unit system.
type Kind int

const (
	// KindHomogeneous systems use one base unit per base dimension.
	KindHomogeneous Kind = iota
	// KindHeterogeneous systems list the (base unit, exponent) pairs of
	// one composite unit.
	KindHeterogeneous
)

func (k Kind) String() string {
	switch k {
	case KindHomogeneous:
		return "homogeneous"
	case KindHeterogeneous:
		return "heterogeneous"
	default:
		return "unknown"
	}
}

// System is either *Homogeneous or *Heterogeneous.
type System interface {
	Name() string
	Kind() Kind
	sealed()
}

// Term is one (base unit, exponent) pair of a system view.
type Term struct {
	Unit *BaseUnit
	Exp  rational.Rational
}

// Homogeneous is a named system with exactly one base unit per base
// dimension, e.g. SI or CGS.
type Homogeneous struct {
	name  string
	units []*BaseUnit
}

// NewHomogeneous builds a system from its base units.
// Two units bound to the same base dimension are rejected.
func NewHomogeneous(name string, units ...*BaseUnit) (*Homogeneous, error) {
	if name == "" {
		return nil, errors.NewInvalidRequestError("unit system needs a name")
	}
	sorted := make([]*BaseUnit, 0, len(units))
	for _, u := range units {
		if u == nil {
			return nil, errors.NewInvalidRequestError("unit system %q: nil base unit", name)
		}
		sorted = append(sorted, u)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].dim.Ordinal() < sorted[j].dim.Ordinal()
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].dim == sorted[i-1].dim {
			return nil, errors.Wrapf(errors.ErrInvalidRequest,
				"unit system %q: both %s and %s measure %s",
				name, sorted[i-1].symbol, sorted[i].symbol, sorted[i].dim.Name())
		}
	}
	return &Homogeneous{name: name, units: sorted}, nil
}

// MustNewHomogeneous is NewHomogeneous for package-level variables.
func MustNewHomogeneous(name string, units ...*BaseUnit) *Homogeneous {
	s, err := NewHomogeneous(name, units...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Homogeneous) Name() string { return s.name }
func (s *Homogeneous) Kind() Kind   { return KindHomogeneous }
func (s *Homogeneous) sealed()      {}
func (s *Homogeneous) String() string {
	return s.name
}

// BaseUnits returns the system's base units in dimension order.
func (s *Homogeneous) BaseUnits() []*BaseUnit {
	out := make([]*BaseUnit, len(s.units))
	copy(out, s.units)
	return out
}

// UnitFor returns the base unit the system uses for b.
func (s *Homogeneous) UnitFor(b *dimension.Base) (*BaseUnit, bool) {
	for _, u := range s.units {
		if u.dim == b {
			return u, true
		}
	}
	return nil, false
}

// Expresses reports whether every base dimension of d has a unit in s.
func (s *Homogeneous) Expresses(d dimension.Dimension) bool {
	for _, t := range d.Terms() {
		if _, ok := s.UnitFor(t.Base); !ok {
			return false
		}
	}
	return true
}

// View lifts d expressed in s to its heterogeneous form.
func (s *Homogeneous) View(d dimension.Dimension) ([]Term, error) {
	terms := make([]Term, 0, d.Len())
	for _, t := range d.Terms() {
		u, ok := s.UnitFor(t.Base)
		if !ok {
			return nil, errors.Wrapf(errors.ErrIncompleteSystem,
				"system %s has no unit for %s", s.name, t.Base.Name())
		}
		terms = append(terms, Term{Unit: u, Exp: t.Exp})
	}
	return canonicalTerms(terms), nil
}

// Unit returns d expressed in s.
func (s *Homogeneous) Unit(d dimension.Dimension) (Unit, error) {
	return New(d, s)
}

// MustUnit is Unit for package-level variables.
func (s *Homogeneous) MustUnit(d dimension.Dimension) Unit {
	return MustNew(d, s)
}

// Heterogeneous is the system of one composite unit that mixes base units
// from several systems. It remembers the homogeneous systems it was built
// from so Reduce can fold it back.
type Heterogeneous struct {
	terms   []Term
	origins []*Homogeneous
}

// NewHeterogeneous canonicalizes terms into a heterogeneous system.
func NewHeterogeneous(terms []Term, origins ...*Homogeneous) *Heterogeneous {
	return &Heterogeneous{terms: canonicalTerms(terms), origins: mergeOrigins(origins, nil)}
}

func (s *Heterogeneous) Name() string { return "{" + viewString(s.terms) + "}" }
func (s *Heterogeneous) Kind() Kind   { return KindHeterogeneous }
func (s *Heterogeneous) sealed()      {}
func (s *Heterogeneous) String() string {
	return s.Name()
}

// Terms returns a copy of the canonical (base unit, exponent) list.
func (s *Heterogeneous) Terms() []Term {
	out := make([]Term, len(s.terms))
	copy(out, s.terms)
	return out
}

// Origins returns the homogeneous systems the unit was built from.
func (s *Heterogeneous) Origins() []*Homogeneous {
	out := make([]*Homogeneous, len(s.origins))
	copy(out, s.origins)
	return out
}

// Dimension derives the dimension of the composite unit.
func (s *Heterogeneous) Dimension() dimension.Dimension {
	return termsDimension(s.terms)
}

func termsDimension(terms []Term) dimension.Dimension {
	dt := make([]dimension.Term, len(terms))
	for i, t := range terms {
		dt[i] = dimension.Term{Base: t.Unit.dim, Exp: t.Exp}
	}
	return dimension.Canonicalize(dt...)
}

func sameBaseUnit(a, b *BaseUnit) bool {
	return a == b || (a.ordinal == b.ordinal && a.scale == b.scale)
}

// canonicalTerms strips zero exponents, sorts by the heterogeneous
// ordering and merges repeated base units.
func canonicalTerms(terms []Term) []Term {
	work := make([]Term, 0, len(terms))
	for _, t := range terms {
		if t.Unit == nil || t.Exp.IsZero() {
			continue
		}
		work = append(work, t)
	}
	sort.SliceStable(work, func(i, j int) bool { return work[i].Unit.less(work[j].Unit) })

	out := work[:0]
	for _, t := range work {
		if n := len(out); n > 0 && sameBaseUnit(out[n-1].Unit, t.Unit) {
			out[n-1].Exp = out[n-1].Exp.Add(t.Exp)
			if out[n-1].Exp.IsZero() {
				out = out[:n-1]
			}
			continue
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// mergeTerms is a sorted merge of two canonical views.
func mergeTerms(a, b []Term, negateB bool) []Term {
	out := make([]Term, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j >= len(b) || (i < len(a) && a[i].Unit.less(b[j].Unit)):
			out = append(out, a[i])
			i++
		case i >= len(a) || !sameBaseUnit(a[i].Unit, b[j].Unit):
			exp := b[j].Exp
			if negateB {
				exp = exp.Neg()
			}
			out = append(out, Term{Unit: b[j].Unit, Exp: exp})
			j++
		default:
			exp := b[j].Exp
			if negateB {
				exp = exp.Neg()
			}
			if sum := a[i].Exp.Add(exp); !sum.IsZero() {
				out = append(out, Term{Unit: a[i].Unit, Exp: sum})
			}
			i++
			j++
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func equalTerms(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sameBaseUnit(a[i].Unit, b[i].Unit) || !a[i].Exp.Equal(b[i].Exp) {
			return false
		}
	}
	return true
}

// mergeOrigins unions two origin lists, sorted by name.
func mergeOrigins(a, b []*Homogeneous) []*Homogeneous {
	seen := make(map[*Homogeneous]bool, len(a)+len(b))
	var out []*Homogeneous
	for _, list := range [][]*Homogeneous{a, b} {
		for _, s := range list {
			if s == nil || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func viewKey(terms []Term) string {
	var sb strings.Builder
	for i, t := range terms {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(t.Unit.Key())
		sb.WriteByte(':')
		sb.WriteString(t.Exp.String())
	}
	return sb.String()
}

func viewString(terms []Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.Unit.symbol
		if !t.Exp.Equal(rational.One) {
			parts[i] += "^" + t.Exp.String()
		}
	}
	return strings.Join(parts, " ")
}

var (
	systemsMu sync.RWMutex
	systems   = make(map[string]*Homogeneous)
)

// RegisterSystem makes s discoverable by name.
func RegisterSystem(s *Homogeneous) error {
	systemsMu.Lock()
	defer systemsMu.Unlock()

	if existing, ok := systems[s.name]; ok {
		if existing == s {
			return nil
		}
		return errors.Wrapf(errors.ErrInvalidRequest, "unit system %q already registered", s.name)
	}
	systems[s.name] = s
	logger.Debugw("registered unit system",
		logger.FieldSystem, s.name,
		logger.FieldCount, len(s.units))
	return nil
}

// MustRegisterSystem is RegisterSystem for package-level variables.
func MustRegisterSystem(s *Homogeneous) *Homogeneous {
	if err := RegisterSystem(s); err != nil {
		panic(err)
	}
	return s
}

// LookupSystem finds a registered system by name.
func LookupSystem(name string) (*Homogeneous, error) {
	systemsMu.RLock()
	defer systemsMu.RUnlock()
	if s, ok := systems[name]; ok {
		return s, nil
	}
	return nil, errors.NewNotFoundError("unit system %q", name)
}

// Systems lists registered systems sorted by name.
func Systems() []*Homogeneous {
	systemsMu.RLock()
	defer systemsMu.RUnlock()
	out := make([]*Homogeneous, 0, len(systems))
	for _, s := range systems {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
