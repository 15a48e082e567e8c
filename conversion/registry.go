// Package conversion resolves the factor between two units of the same
// dimension.
//
// Relations are declared between pairs of base units. A unit-to-unit
// factor is assembled per base dimension: every base unit on either side is
// related to a pivot unit for its dimension, each relation raised to the
// unit's exponent. Scaled base units relate to their family root through
// their scale, so only root-to-root relations need declaring.
package conversion

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/logger"
	"github.com/teranos/dims/unit"
)

// Option modifies a declared relation.
type Option func(*relation)

// WithOffset makes the relation affine: to = from*scale + offset.
func WithOffset(offset float64) Option {
	return func(r *relation) { r.offset = offset }
}

// Default also registers the reverse relation, derived by inverting the
// forward one.
func Default() Option {
	return func(r *relation) { r.invertible = true }
}

// Implicit marks the relation as safe for implicit conversion.
func Implicit() Option {
	return func(r *relation) { r.implicit = true }
}

type relation struct {
	from, to   *unit.BaseUnit
	scale      float64
	offset     float64
	invertible bool
	implicit   bool
}

func (r relation) factor() Factor {
	return Factor{Scale: r.scale, Offset: r.offset, Implicit: r.implicit}
}

type edge struct {
	to     *unit.BaseUnit
	factor Factor
}

type pairKey struct {
	from, to int
}

// Registry holds declared relations and memoizes resolved factors.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	declared map[pairKey]relation
	edges    map[int][]edge
	memo     *sync.Map
	log      *zap.SugaredLogger
	resolves atomic.Int64
	memoHits atomic.Int64
}

// NewRegistry creates an empty registry. A nil logger uses the global one.
func NewRegistry(log *zap.SugaredLogger) *Registry {
	return &Registry{
		declared: make(map[pairKey]relation),
		edges:    make(map[int][]edge),
		memo:     &sync.Map{},
		log:      log,
	}
}

func (r *Registry) sugar() *zap.SugaredLogger {
	if r.log != nil {
		return r.log
	}
	return logger.ComponentLogger("conversion")
}

// Declare relates two base units of one dimension: one from is scale to
// (plus offset). Scaled ends are folded into the relation between their
// family roots. Declaring the same relation twice is a no-op; declaring it
// again with different values is an error.
func (r *Registry) Declare(from, to *unit.BaseUnit, scale float64, opts ...Option) error {
	if from == nil || to == nil {
		return errors.NewInvalidRequestError("conversion needs two base units")
	}
	if from.Dimension() != to.Dimension() {
		return errors.NewDimensionMismatch("convert", from.Dimension(), to.Dimension())
	}
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return errors.NewInvalidRequestError("conversion %s -> %s: scale must be positive and finite, got %g",
			from.Symbol(), to.Symbol(), scale)
	}
	fromRoot, toRoot := from.Unscaled(), to.Unscaled()
	if fromRoot == toRoot {
		return errors.NewInvalidRequestError("conversion %s -> %s: units share a family, the scale already relates them",
			from.Symbol(), to.Symbol())
	}

	rel := relation{from: fromRoot, to: toRoot}
	for _, opt := range opts {
		opt(&rel)
	}
	if math.IsInf(rel.offset, 0) || math.IsNaN(rel.offset) {
		return errors.NewInvalidRequestError("conversion %s -> %s: offset must be finite", from.Symbol(), to.Symbol())
	}
	// 1 from = Sf fromRoot and 1 to = St toRoot
	sf, st := from.Scale().Value(), to.Scale().Value()
	rel.scale = scale * st / sf
	rel.offset *= st

	key := pairKey{from: fromRoot.Ordinal(), to: toRoot.Ordinal()}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.declared[key]; ok {
		if closeTo(existing.scale, rel.scale) && closeTo(existing.offset, rel.offset) &&
			existing.implicit == rel.implicit && existing.invertible == rel.invertible {
			return nil
		}
		return errors.Wrapf(errors.ErrInvalidRequest,
			"conversion %s -> %s already declared with a different factor", fromRoot.Symbol(), toRoot.Symbol())
	}

	r.declared[key] = rel
	r.edges[key.from] = append(r.edges[key.from], edge{to: toRoot, factor: rel.factor()})
	if rel.invertible {
		r.edges[key.to] = append(r.edges[key.to], edge{to: fromRoot, factor: rel.factor().Inverse()})
	}
	r.memo = &sync.Map{}

	r.sugar().Debugw("declared conversion",
		logger.FieldFrom, fromRoot.Symbol(),
		logger.FieldTo, toRoot.Symbol(),
		logger.FieldFactor, rel.scale,
		logger.FieldOffset, rel.offset,
		logger.FieldImplicit, rel.implicit)
	return nil
}

// MustDeclare is Declare for package initialization.
func (r *Registry) MustDeclare(from, to *unit.BaseUnit, scale float64, opts ...Option) {
	if err := r.Declare(from, to, scale, opts...); err != nil {
		panic(err)
	}
}

func closeTo(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-12*math.Max(math.Abs(a), math.Abs(b))
}

// BaseFactor relates two base units of one dimension.
// Identity is implicit. Moving between members of one family uses the
// explicit scale. Otherwise both ends are unscaled and the shortest chain
// of declared relations between the roots is composed.
func (r *Registry) BaseFactor(from, to *unit.BaseUnit) (Factor, error) {
	if from == to || (from.Ordinal() == to.Ordinal() && from.Scale() == to.Scale()) {
		return Identity, nil
	}
	if from.Dimension() != to.Dimension() {
		return Factor{}, errors.NewDimensionMismatch("convert", from.Dimension(), to.Dimension())
	}

	fromRoot, toRoot := from.Unscaled(), to.Unscaled()
	f := Identity
	if from.IsScaled() {
		f = Factor{Scale: from.Scale().Value()}
	}

	if fromRoot != toRoot {
		path, err := r.path(fromRoot, toRoot)
		if err != nil {
			return Factor{}, errors.Wrapf(err, "%s -> %s", from.Symbol(), to.Symbol())
		}
		f = f.Compose(path)
	}

	if to.IsScaled() {
		f = f.Compose(Factor{Scale: 1 / to.Scale().Value()})
	}
	return f, nil
}

// path is a breadth-first search over declared relations between roots.
func (r *Registry) path(from, to *unit.BaseUnit) (Factor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type step struct {
		node   *unit.BaseUnit
		factor Factor
		hops   int
	}
	seen := map[int]bool{from.Ordinal(): true}
	queue := []step{{node: from, factor: Identity}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range r.edges[cur.node.Ordinal()] {
			if seen[e.to.Ordinal()] {
				continue
			}
			next := step{node: e.to, factor: cur.factor.Compose(e.factor), hops: cur.hops + 1}
			if e.to.Ordinal() == to.Ordinal() {
				r.sugar().Debugw("resolved base conversion",
					logger.FieldFrom, from.Symbol(),
					logger.FieldTo, to.Symbol(),
					logger.FieldHops, next.hops)
				return next.factor, nil
			}
			seen[e.to.Ordinal()] = true
			queue = append(queue, next)
		}
	}
	return Factor{}, errors.NewNoConversion(from.Symbol(), to.Symbol())
}

// Resolve computes the factor converting a value in from into to.
// Results are memoized until the next Declare.
func (r *Registry) Resolve(from, to unit.Unit) (Factor, error) {
	if !from.Dimension().Equal(to.Dimension()) {
		return Factor{}, errors.NewDimensionMismatch("convert", from, to)
	}

	key := from.Key() + "->" + to.Key()
	r.mu.RLock()
	memo := r.memo
	r.mu.RUnlock()
	if f, ok := memo.Load(key); ok {
		r.count(true)
		return f.(Factor), nil
	}
	r.count(false)

	f, err := r.resolve(from, to)
	if err != nil {
		return Factor{}, err
	}
	memo.Store(key, f)
	return f, nil
}

func (r *Registry) resolve(from, to unit.Unit) (Factor, error) {
	if from.IsDimensionless() && !from.IsHeterogeneous() && !to.IsHeterogeneous() {
		return Identity, nil
	}

	if from.IsHomogeneous() && to.IsHomogeneous() {
		return r.homogeneous(from, to)
	}
	return r.pivot(from, to)
}

// homogeneous relates the unit of each base dimension in one system to the
// unit of the same dimension in the other.
func (r *Registry) homogeneous(from, to unit.Unit) (Factor, error) {
	fs := from.System().(*unit.Homogeneous)
	ts := to.System().(*unit.Homogeneous)

	if b, ok := from.SingleBase(); ok {
		tb, _ := to.SingleBase()
		return r.BaseFactor(b, tb)
	}

	f := Identity
	for _, t := range from.Dimension().Terms() {
		fb, _ := fs.UnitFor(t.Base)
		tb, _ := ts.UnitFor(t.Base)
		bf, err := r.BaseFactor(fb, tb)
		if err != nil {
			return Factor{}, errors.Wrapf(err, "%s -> %s", from, to)
		}
		f = f.Compose(bf.Pow(t.Exp.Float64()))
	}
	return f.Relative(), nil
}

// pivot handles homogeneous to heterogeneous, heterogeneous to homogeneous
// and heterogeneous to heterogeneous. For each base dimension
// the first destination unit of that dimension is the pivot (the first
// source unit when the destination has none); every source unit converts
// into the pivot and the pivot converts into every destination unit.
func (r *Registry) pivot(from, to unit.Unit) (Factor, error) {
	src, dst := from.View(), to.View()

	if b, ok := from.SingleBase(); ok {
		if tb, ok := to.SingleBase(); ok {
			return r.BaseFactor(b, tb)
		}
	}

	groups := make(map[int]*tagGroup)
	var order []int
	add := func(terms []unit.Term, dest bool) {
		for _, t := range terms {
			ord := t.Unit.Dimension().Ordinal()
			g, ok := groups[ord]
			if !ok {
				g = &tagGroup{}
				groups[ord] = g
				order = append(order, ord)
			}
			if dest {
				g.dst = append(g.dst, t)
			} else {
				g.src = append(g.src, t)
			}
		}
	}
	add(src, false)
	add(dst, true)
	sort.Ints(order)

	f := Identity
	for _, ord := range order {
		g := groups[ord]
		var p *unit.BaseUnit
		if len(g.dst) > 0 {
			p = g.dst[0].Unit
		} else {
			p = g.src[0].Unit
		}
		for _, t := range g.src {
			bf, err := r.BaseFactor(t.Unit, p)
			if err != nil {
				return Factor{}, errors.Wrapf(err, "%s -> %s", from, to)
			}
			f = f.Compose(bf.Pow(t.Exp.Float64()))
		}
		for _, t := range g.dst {
			bf, err := r.BaseFactor(p, t.Unit)
			if err != nil {
				return Factor{}, errors.Wrapf(err, "%s -> %s", from, to)
			}
			f = f.Compose(bf.Pow(t.Exp.Float64()))
		}
	}
	return f.Relative(), nil
}

type tagGroup struct {
	src, dst []unit.Term
}

// IsImplicit reports whether from converts to to implicitly.
func (r *Registry) IsImplicit(from, to unit.Unit) bool {
	f, err := r.Resolve(from, to)
	return err == nil && f.Implicit
}

// Stats reports how many resolutions were answered from the memo.
func (r *Registry) Stats() (resolves, memoHits int64) {
	return r.resolves.Load(), r.memoHits.Load()
}

func (r *Registry) count(hit bool) {
	r.resolves.Add(1)
	if hit {
		r.memoHits.Add(1)
	}
}

// Shared is the process-wide registry. Unit system packages declare
// their relations here when they initialize.
var Shared = NewRegistry(nil)

// Declare adds a relation to Shared.
func Declare(from, to *unit.BaseUnit, scale float64, opts ...Option) error {
	return Shared.Declare(from, to, scale, opts...)
}

// MustDeclare adds a relation to Shared and panics on error.
func MustDeclare(from, to *unit.BaseUnit, scale float64, opts ...Option) {
	Shared.MustDeclare(from, to, scale, opts...)
}

// Resolve resolves against Shared.
func Resolve(from, to unit.Unit) (Factor, error) {
	return Shared.Resolve(from, to)
}

// IsImplicit checks against Shared.
func IsImplicit(from, to unit.Unit) bool {
	return Shared.IsImplicit(from, to)
}
