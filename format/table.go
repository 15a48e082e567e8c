package format

import (
	"sort"
	"sync"

	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/logger"
	"github.com/teranos/dims/unit"
)

// Entry is a display name and symbol for one unit.
type Entry struct {
	Unit   unit.Unit
	Name   string
	Symbol string
}

// Table maps units to their display names.
type Table struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Names is the table the unit system packages register into.
var Names = NewTable()

// Register names u. Symbols and names must be unique within the table and
// a unit can only be named once.
func (t *Table) Register(u unit.Unit, name, symbol string) error {
	if name == "" || symbol == "" {
		return errors.NewInvalidRequestError("named unit needs a name and a symbol")
	}
	if u.IsDimensionless() {
		return errors.NewInvalidRequestError("cannot name the dimensionless unit %q", name)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, e := range t.entries {
		switch {
		case e.Symbol == symbol:
			return errors.Wrapf(errors.ErrInvalidRequest, "symbol %q already names %s", symbol, e.Unit)
		case e.Name == name:
			return errors.Wrapf(errors.ErrInvalidRequest, "name %q already names %s", name, e.Unit)
		case e.Unit.Equal(u):
			return errors.Wrapf(errors.ErrInvalidRequest, "%s is already named %q", u, e.Name)
		}
	}
	t.entries = append(t.entries, Entry{Unit: u, Name: name, Symbol: symbol})

	logger.Debugw("registered unit name",
		logger.FieldUnit, u.String(),
		"name", name,
		"symbol", symbol)
	return nil
}

// MustRegister is Register for package initialization.
func (t *Table) MustRegister(u unit.Unit, name, symbol string) {
	if err := t.Register(u, name, symbol); err != nil {
		panic(err)
	}
}

// Lookup finds the entry naming u.
func (t *Table) Lookup(u unit.Unit) (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, e := range t.entries {
		if e.Unit.Equal(u) {
			return e, true
		}
	}
	return Entry{}, false
}

// BySymbol finds an entry by symbol.
func (t *Table) BySymbol(symbol string) (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, e := range t.entries {
		if e.Symbol == symbol {
			return e, true
		}
	}
	return Entry{}, false
}

// ByName finds an entry by name.
func (t *Table) ByName(name string) (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, e := range t.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// All returns every entry sorted by name.
func (t *Table) All() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
