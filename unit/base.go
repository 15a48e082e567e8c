package unit

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/teranos/dims/dimension"
	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/logger"
)

// BaseUnit is a concrete unit bound to exactly one base dimension.
// Scaled base units (kilometer, kilogram) share the ordinal of their
// family root and differ only by Scale.
type BaseUnit struct {
	name    string
	symbol  string
	dim     *dimension.Base
	ordinal int
	scale   Scale
	root    *BaseUnit
}

// Name returns the unit name, e.g. "kilometer".
func (b *BaseUnit) Name() string { return b.name }

// Symbol returns the unit symbol, e.g. "km".
func (b *BaseUnit) Symbol() string { return b.symbol }

// Dimension returns the base dimension the unit measures.
func (b *BaseUnit) Dimension() *dimension.Base { return b.dim }

// Ordinal returns the family ordinal.
func (b *BaseUnit) Ordinal() int { return b.ordinal }

// Scale returns the scale relative to the family root (zero when unscaled).
func (b *BaseUnit) Scale() Scale { return b.scale }

// IsScaled reports whether b is a prefixed member of a family.
func (b *BaseUnit) IsScaled() bool { return !b.scale.IsZero() }

// Unscaled returns the family root (b itself when unscaled).
func (b *BaseUnit) Unscaled() *BaseUnit {
	if b.root == nil {
		return b
	}
	return b.root
}

// Key identifies the base unit within a process.
func (b *BaseUnit) Key() string {
	if b.scale.IsZero() {
		return strconv.Itoa(b.ordinal)
	}
	return strconv.Itoa(b.ordinal) + "@" + b.scale.String()
}

func (b *BaseUnit) String() string { return b.symbol }

// less is the canonical heterogeneous ordering: family ordinal, then scale
// magnitude, then scale base.
func (b *BaseUnit) less(o *BaseUnit) bool {
	if b.ordinal != o.ordinal {
		return b.ordinal < o.ordinal
	}
	if bm, om := b.scale.magnitude(), o.scale.magnitude(); bm != om {
		return bm < om
	}
	return b.scale.Base < o.scale.Base
}

type scaledKey struct {
	ordinal int
	scale   Scale
}

// Registry owns the ordinal space of base units and interns scaled units.
type Registry struct {
	mu        sync.RWMutex
	byOrdinal map[int]*BaseUnit
	scaled    map[scaledKey]*BaseUnit
}

// NewRegistry creates an empty base-unit registry
func NewRegistry() *Registry {
	return &Registry{
		byOrdinal: make(map[int]*BaseUnit),
		scaled:    make(map[scaledKey]*BaseUnit),
	}
}

// Register defines a root base unit on ordinal.
// Re-registering an identical definition returns the existing unit; any
// other definition on a taken ordinal is an ErrOrdinalCollision.
func (r *Registry) Register(name, symbol string, dim *dimension.Base, ordinal int) (*BaseUnit, error) {
	if name == "" || symbol == "" {
		return nil, errors.NewInvalidRequestError("base unit needs a name and a symbol (ordinal %d)", ordinal)
	}
	if dim == nil {
		return nil, errors.NewInvalidRequestError("base unit %q has no dimension", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byOrdinal[ordinal]; ok {
		if existing.name == name && existing.symbol == symbol && existing.dim == dim {
			return existing, nil
		}
		return nil, errors.NewOrdinalCollision("base unit", ordinal, existing.name, name)
	}

	b := &BaseUnit{name: name, symbol: symbol, dim: dim, ordinal: ordinal}
	r.byOrdinal[ordinal] = b

	logger.Debugw("registered base unit",
		logger.FieldUnit, name,
		logger.FieldDimension, dim.Name(),
		logger.FieldOrdinal, ordinal)
	return b, nil
}

// Scaled returns the interned member of parent's family scaled by s.
// Scaling a scaled unit composes the two scales, which must share a base.
func (r *Registry) Scaled(parent *BaseUnit, s Scale) (*BaseUnit, error) {
	if parent == nil {
		return nil, errors.NewInvalidRequestError("cannot scale a nil base unit")
	}
	root := parent.Unscaled()
	if parent.IsScaled() && !s.IsZero() {
		if parent.scale.Base != s.Base {
			return nil, errors.NewInvalidRequestError("cannot scale %s by %s: scale bases differ", parent.symbol, s)
		}
		s = Scale{Base: s.Base, Exponent: parent.scale.Exponent + s.Exponent}
	} else if parent.IsScaled() {
		s = parent.scale
	}
	if s.IsZero() {
		return root, nil
	}
	if s.Base < 2 {
		return nil, errors.NewInvalidRequestError("scale base must be at least 2, got %d", s.Base)
	}

	key := scaledKey{ordinal: root.ordinal, scale: s}

	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok := r.scaled[key]; ok {
		return b, nil
	}

	name, symbol := scaledNames(root, s)
	b := &BaseUnit{
		name:    name,
		symbol:  symbol,
		dim:     root.dim,
		ordinal: root.ordinal,
		scale:   s,
		root:    root,
	}
	r.scaled[key] = b
	return b, nil
}

func scaledNames(root *BaseUnit, s Scale) (string, string) {
	if p, ok := PrefixFor(s); ok {
		return p.Name + root.name, p.Symbol + root.symbol
	}
	return fmt.Sprintf("%s %s", s, root.name), fmt.Sprintf("%s %s", s, root.symbol)
}

// All returns every root base unit in ordinal order.
func (r *Registry) All() []*BaseUnit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*BaseUnit, 0, len(r.byOrdinal))
	for _, b := range r.byOrdinal {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ordinal < out[j].ordinal })
	return out
}

// BySymbol finds a root or already-interned scaled unit by symbol.
func (r *Registry) BySymbol(symbol string) (*BaseUnit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.byOrdinal {
		if b.symbol == symbol {
			return b, true
		}
	}
	for _, b := range r.scaled {
		if b.symbol == symbol {
			return b, true
		}
	}
	return nil, false
}

// DefaultRegistry is the process-wide base-unit registry.
var DefaultRegistry = NewRegistry()

// RegisterBase registers a root base unit in DefaultRegistry.
func RegisterBase(name, symbol string, dim *dimension.Base, ordinal int) (*BaseUnit, error) {
	return DefaultRegistry.Register(name, symbol, dim, ordinal)
}

// MustRegisterBase is RegisterBase for package-level variables; an ordinal
// collision panics while the program initializes.
func MustRegisterBase(name, symbol string, dim *dimension.Base, ordinal int) *BaseUnit {
	b, err := DefaultRegistry.Register(name, symbol, dim, ordinal)
	if err != nil {
		panic(err)
	}
	return b
}

// Scaled interns a scaled base unit in DefaultRegistry.
func Scaled(parent *BaseUnit, s Scale) (*BaseUnit, error) {
	return DefaultRegistry.Scaled(parent, s)
}

// MustScaled is Scaled for package-level variables.
func MustScaled(parent *BaseUnit, s Scale) *BaseUnit {
	b, err := DefaultRegistry.Scaled(parent, s)
	if err != nil {
		panic(err)
	}
	return b
}

// BaseUnits lists the root base units of DefaultRegistry.
func BaseUnits() []*BaseUnit {
	return DefaultRegistry.All()
}

// BaseUnitBySymbol looks a base unit up in DefaultRegistry.
func BaseUnitBySymbol(symbol string) (*BaseUnit, bool) {
	return DefaultRegistry.BySymbol(symbol)
}
