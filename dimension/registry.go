package dimension

import (
	"sort"
	"sync"

	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/logger"
)

// Base is a fundamental dimension (length, mass, time, ...).
// Its ordinal is the global sort and merge key.
type Base struct {
	name    string
	symbol  string
	ordinal int
}

// Name returns the dimension name, e.g. "length".
func (b *Base) Name() string { return b.name }

// Symbol returns the dimension symbol, e.g. "L".
func (b *Base) Symbol() string { return b.symbol }

// Ordinal returns the registered ordinal.
func (b *Base) Ordinal() int { return b.ordinal }

func (b *Base) String() string { return b.symbol }

// Registry owns the ordinal space of base dimensions.
type Registry struct {
	mu        sync.RWMutex
	byOrdinal map[int]*Base
}

// NewRegistry creates an empty base-dimension registry
func NewRegistry() *Registry {
	return &Registry{byOrdinal: make(map[int]*Base)}
}

// Register binds name to ordinal.
// Registering the same name and symbol on the same ordinal again returns the
// existing Base; a different definition on a taken ordinal is an
// ErrOrdinalCollision.
func (r *Registry) Register(name, symbol string, ordinal int) (*Base, error) {
	if name == "" || symbol == "" {
		return nil, errors.NewInvalidRequestError("base dimension needs a name and a symbol (ordinal %d)", ordinal)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byOrdinal[ordinal]; ok {
		if existing.name == name && existing.symbol == symbol {
			return existing, nil
		}
		return nil, errors.NewOrdinalCollision("base dimension", ordinal, existing.name, name)
	}

	b := &Base{name: name, symbol: symbol, ordinal: ordinal}
	r.byOrdinal[ordinal] = b

	logger.Debugw("registered base dimension",
		logger.FieldDimension, name,
		logger.FieldOrdinal, ordinal)
	return b, nil
}

// Lookup returns the base dimension registered under name.
func (r *Registry) Lookup(name string) (*Base, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.byOrdinal {
		if b.name == name {
			return b, true
		}
	}
	return nil, false
}

// All returns every registered base dimension in ordinal order.
func (r *Registry) All() []*Base {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Base, 0, len(r.byOrdinal))
	for _, b := range r.byOrdinal {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ordinal < out[j].ordinal })
	return out
}

// Default is the process-wide registry used by the package-level helpers.
var Default = NewRegistry()

// Register registers a base dimension in the Default registry.
func Register(name, symbol string, ordinal int) (*Base, error) {
	return Default.Register(name, symbol, ordinal)
}

// MustRegister is Register for package-level variables; an ordinal
// collision panics while the program initializes.
func MustRegister(name, symbol string, ordinal int) *Base {
	b, err := Default.Register(name, symbol, ordinal)
	if err != nil {
		panic(err)
	}
	return b
}

// Lookup finds a base dimension by name in the Default registry.
func Lookup(name string) (*Base, bool) {
	return Default.Lookup(name)
}

// All lists the Default registry in ordinal order.
func All() []*Base {
	return Default.All()
}
