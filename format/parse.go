package format

import (
	"strings"
	"unicode"

	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/rational"
	"github.com/teranos/dims/unit"
)

// Parser turns unit expressions into units.
type Parser struct {
	// Table resolves named units (N, J, Hz).
	Table *Table
	// Units resolves base-unit symbols (m, g, ft).
	Units *unit.Registry
	// Systems are tried in order when folding the parsed unit back into a
	// homogeneous system.
	Systems []*unit.Homogeneous
}

// ParseUnit parses expr with Names, the default base-unit registry and
// every registered system, preferring "si".
func ParseUnit(expr string) (unit.Unit, error) {
	return DefaultParser().Parse(expr)
}

// DefaultParser returns a parser over the process-wide tables.
func DefaultParser() *Parser {
	systems := unit.Systems()
	ordered := make([]*unit.Homogeneous, 0, len(systems))
	for _, s := range systems {
		if s.Name() == "si" {
			ordered = append([]*unit.Homogeneous{s}, ordered...)
			continue
		}
		ordered = append(ordered, s)
	}
	return &Parser{Table: Names, Units: unit.DefaultRegistry, Systems: ordered}
}

// Parse reads expressions such as "m^2 kg s^-2", "N*m", "m/s^2", "km" and
// "kg^1/2". Factors are separated by spaces or '*'; '/' divides by the
// factor that follows it only.
func (p *Parser) Parse(expr string) (unit.Unit, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" || expr == "1" || expr == "dimensionless" {
		return unit.Dimensionless(), nil
	}

	result := unit.Dimensionless()
	s := scanner{src: []rune(expr)}
	divide := false
	first := true
	for {
		s.skipSpace()
		if s.done() {
			break
		}
		switch s.peek() {
		case '*':
			s.next()
			continue
		case '/':
			if first {
				return unit.Unit{}, errors.NewInvalidRequestError("unit expression %q starts with '/'", expr)
			}
			s.next()
			divide = true
			continue
		}

		sym := s.symbol()
		if sym == "" {
			return unit.Unit{}, errors.NewInvalidRequestError("unexpected %q in unit expression %q", string(s.peek()), expr)
		}
		exp := rational.One
		if !s.done() && s.peek() == '^' {
			s.next()
			e, err := s.exponent()
			if err != nil {
				return unit.Unit{}, errors.Wrapf(err, "unit expression %q", expr)
			}
			exp = e
		}

		factor, err := p.resolve(sym)
		if err != nil {
			return unit.Unit{}, err
		}
		factor = factor.Pow(exp)
		if divide {
			result = result.Div(factor)
		} else {
			result = result.Mul(factor)
		}
		divide = false
		first = false
	}
	if divide {
		return unit.Unit{}, errors.NewInvalidRequestError("unit expression %q ends with '/'", expr)
	}
	return unit.ReduceIn(result, p.Systems...), nil
}

// resolve maps one symbol to a unit: a named unit, a base unit, or a
// prefix followed by a base unit.
func (p *Parser) resolve(sym string) (unit.Unit, error) {
	if p.Table != nil {
		if e, ok := p.Table.BySymbol(sym); ok {
			return e.Unit, nil
		}
	}
	units := p.Units
	if units == nil {
		units = unit.DefaultRegistry
	}
	if b, ok := units.BySymbol(sym); ok {
		return unit.FromBase(b), nil
	}
	// longest prefix first so "da" wins over "d"
	for n := 2; n >= 1; n-- {
		if len(sym) <= n {
			continue
		}
		prefix, ok := unit.PrefixBySymbol(sym[:n])
		if !ok {
			continue
		}
		b, ok := units.BySymbol(sym[n:])
		if !ok || b.IsScaled() {
			continue
		}
		scaled, err := units.Scaled(b, prefix.Scale)
		if err != nil {
			return unit.Unit{}, err
		}
		return unit.FromBase(scaled), nil
	}
	return unit.Unit{}, errors.NewNotFoundError("unknown unit symbol %q", sym)
}

type scanner struct {
	src []rune
	pos int
}

func (s *scanner) done() bool { return s.pos >= len(s.src) }
func (s *scanner) peek() rune { return s.src[s.pos] }

func (s *scanner) next() rune {
	r := s.src[s.pos]
	s.pos++
	return r
}

func (s *scanner) skipSpace() {
	for !s.done() && unicode.IsSpace(s.peek()) {
		s.pos++
	}
}

// symbol reads letters and symbol runes up to an operator or space.
func (s *scanner) symbol() string {
	start := s.pos
	for !s.done() {
		r := s.peek()
		if unicode.IsSpace(r) || r == '*' || r == '/' || r == '^' {
			break
		}
		if unicode.IsDigit(r) || r == '-' || r == '+' {
			break
		}
		s.pos++
	}
	return string(s.src[start:s.pos])
}

// exponent reads "2", "-2", "+3" or "1/2".
func (s *scanner) exponent() (rational.Rational, error) {
	start := s.pos
	if !s.done() && (s.peek() == '-' || s.peek() == '+') {
		s.pos++
	}
	for !s.done() && unicode.IsDigit(s.peek()) {
		s.pos++
	}
	if !s.done() && s.peek() == '/' && s.pos+1 < len(s.src) && unicode.IsDigit(s.src[s.pos+1]) {
		s.pos++
		for !s.done() && unicode.IsDigit(s.peek()) {
			s.pos++
		}
	}
	return rational.Parse(strings.TrimPrefix(string(s.src[start:s.pos]), "+"))
}
