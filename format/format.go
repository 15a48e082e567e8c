// Package format renders units and quantities as text and parses unit
// expressions.
//
//	format.Quantity(quantity.New(2345.0, si.Length), format.WithPrefix(format.Engineering))
//	// "2.345 km"
//	format.Quantity(quantity.New(1.0, si.Energy), format.WithStyle(format.Name))
//	// "1 joule"
package format

import (
	"math"
	"strings"

	"github.com/teranos/dims/quantity"
	"github.com/teranos/dims/rational"
	"github.com/teranos/dims/unit"
)

// Style selects how units are written.
type Style int

const (
	// Symbol writes "J" or "m^2 kg s^-2".
	Symbol Style = iota
	// Name writes "joule" or "meter^2 kilogram second^-2".
	Name
	// Raw writes base-unit symbols and ignores the name table.
	Raw
)

// ParseStyle maps "symbol", "name" or "raw" to a Style.
func ParseStyle(s string) (Style, bool) {
	switch strings.ToLower(s) {
	case "symbol", "":
		return Symbol, true
	case "name":
		return Name, true
	case "raw":
		return Raw, true
	}
	return Symbol, false
}

// PrefixMode selects automatic prefixing of values.
type PrefixMode int

const (
	// NoPrefix prints the value as is.
	NoPrefix PrefixMode = iota
	// Engineering picks a power-of-1000 metric prefix.
	Engineering
	// Binary picks a power-of-1024 binary prefix.
	Binary
)

// ParsePrefixMode maps "none", "engineering" or "binary" to a PrefixMode.
func ParsePrefixMode(s string) (PrefixMode, bool) {
	switch strings.ToLower(s) {
	case "none", "":
		return NoPrefix, true
	case "engineering":
		return Engineering, true
	case "binary":
		return Binary, true
	}
	return NoPrefix, false
}

type options struct {
	style     Style
	prefix    PrefixMode
	precision int
	table     *Table
}

// Option configures formatting.
type Option func(*options)

// WithStyle selects symbol, name or raw output.
func WithStyle(s Style) Option { return func(o *options) { o.style = s } }

// WithPrefix enables automatic prefixes.
func WithPrefix(p PrefixMode) Option { return func(o *options) { o.prefix = p } }

// WithPrecision sets significant digits; -1 is the shortest exact form.
func WithPrecision(n int) Option { return func(o *options) { o.precision = n } }

// WithTable uses t instead of Names.
func WithTable(t *Table) Option { return func(o *options) { o.table = t } }

func buildOptions(opts []Option) options {
	o := options{style: Symbol, prefix: NoPrefix, precision: -1, table: Names}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Unit renders u.
func Unit(u unit.Unit, opts ...Option) string {
	o := buildOptions(opts)
	return unitString(u, o)
}

func unitString(u unit.Unit, o options) string {
	view := u.View()
	if len(view) == 0 {
		return "dimensionless"
	}
	if o.style != Raw && o.table != nil {
		if e, ok := o.table.Lookup(u); ok {
			if o.style == Name {
				return e.Name
			}
			return e.Symbol
		}
	}
	parts := make([]string, len(view))
	for i, t := range view {
		if o.style == Name {
			parts[i] = t.Unit.Name()
		} else {
			parts[i] = t.Unit.Symbol()
		}
		if !t.Exp.Equal(rational.One) {
			parts[i] += "^" + t.Exp.String()
		}
	}
	return strings.Join(parts, " ")
}

// Quantity renders q as "<value> <unit>".
func Quantity[T quantity.Number](q quantity.Quantity[T], opts ...Option) string {
	o := buildOptions(opts)
	if o.prefix != NoPrefix {
		if s, ok := prefixed(q, o); ok {
			return s
		}
	}
	return quantity.FormatValue(q.Value(), o.precision) + " " + unitString(q.Unit(), o)
}

// prefixed writes a real value with an automatic prefix. Only units that
// are a single base unit or a named unit take a prefix.
func prefixed[T quantity.Number](q quantity.Quantity[T], o options) (string, bool) {
	v, ok := quantity.Float64(q.Value())
	if !ok || v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return "", false
	}

	var name, symbol string
	if b, single := q.Unit().SingleBase(); single {
		root := b.Unscaled()
		v *= b.Scale().Value()
		name, symbol = root.Name(), root.Symbol()
	} else if e, named := o.table.Lookup(q.Unit()); named && o.style != Raw {
		name, symbol = e.Name, e.Symbol
	} else {
		return "", false
	}

	p, scaled := choosePrefix(v, o.prefix)
	text := quantity.FormatValue(scaled, o.precision)
	if o.style == Name {
		return text + " " + p.Name + name, true
	}
	return text + " " + p.Symbol + symbol, true
}

// choosePrefix picks the largest prefix not exceeding |v|.
func choosePrefix(v float64, mode PrefixMode) (unit.Prefix, float64) {
	abs := math.Abs(v)
	switch mode {
	case Engineering:
		// Log10 of an exact power of ten can land just below the integer
		exp := int(math.Floor(math.Log10(abs)/3+1e-9)) * 3
		exp = clamp(exp, -24, 24)
		if exp == 0 {
			return unit.Prefix{}, v
		}
		p, _ := unit.PrefixFor(unit.Scale{Base: 10, Exponent: exp})
		return p, v / math.Pow(10, float64(exp))
	case Binary:
		exp := int(math.Floor(math.Log2(abs)/10)) * 10
		exp = clamp(exp, 0, 80)
		if exp == 0 {
			return unit.Prefix{}, v
		}
		p, _ := unit.PrefixFor(unit.Scale{Base: 2, Exponent: exp})
		return p, v / math.Pow(2, float64(exp))
	default:
		return unit.Prefix{}, v
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
