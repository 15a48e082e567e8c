package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/dims/baseunits"
	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/format"
	"github.com/teranos/dims/quantity"
	"github.com/teranos/dims/rational"
	"github.com/teranos/dims/systems/cgs"
	"github.com/teranos/dims/systems/imperial"
	"github.com/teranos/dims/systems/information"
	"github.com/teranos/dims/systems/nautical"
	"github.com/teranos/dims/systems/si"
	"github.com/teranos/dims/unit"
)

func TestQuantity(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"plain", format.Quantity(quantity.New(2345.0, si.Length)), "2345 m"},
		{"engineering kilo", format.Quantity(quantity.New(2345.0, si.Length), format.WithPrefix(format.Engineering)), "2.345 km"},
		{"engineering milli", format.Quantity(quantity.New(0.00125, si.Length), format.WithPrefix(format.Engineering), format.WithPrecision(3)), "1.25 mm"},
		{"scaled unit", format.Quantity(quantity.New(2.5, unit.FromBase(baseunits.Kilometer)), format.WithPrefix(format.Engineering)), "2.5 km"},
		{"below a thousand", format.Quantity(quantity.New(12.0, si.Length), format.WithPrefix(format.Engineering)), "12 m"},
		{"named symbol", format.Quantity(quantity.New(1.0, si.Energy)), "1 J"},
		{"named name", format.Quantity(quantity.New(1.0, si.Energy), format.WithStyle(format.Name)), "1 joule"},
		{"named with prefix", format.Quantity(quantity.New(4.2e6, si.Energy), format.WithPrefix(format.Engineering)), "4.2 MJ"},
		{"named prefix name", format.Quantity(quantity.New(3000.0, si.Force), format.WithPrefix(format.Engineering), format.WithStyle(format.Name)), "3 kilonewton"},
		{"raw", format.Quantity(quantity.New(1.0, si.Energy), format.WithStyle(format.Raw)), "1 m^2 kg s^-2"},
		{"binary", format.Quantity(quantity.New(2048.0, information.Bytes), format.WithPrefix(format.Binary)), "2 KiB"},
		{"binary below kibi", format.Quantity(quantity.New(512.0, information.Bytes), format.WithPrefix(format.Binary)), "512 B"},
		{"integer payload", format.Quantity(quantity.New(7, cgs.Force)), "7 dyn"},
		{"unnamed composite ignores prefix", format.Quantity(quantity.New(2000.0, si.Velocity), format.WithPrefix(format.Engineering)), "2000 m s^-1"},
		{"dimensionless", format.Quantity(quantity.Dimensionless(0.5)), "0.5 dimensionless"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestUnitNames(t *testing.T) {
	force := cgs.Length.Mul(si.Mass).Div(si.Time.Pow(rational.Two))
	assert.Equal(t, "cm kg s^-2", format.Unit(force))
	assert.Equal(t, "centimeter kilogram second^-2", format.Unit(force, format.WithStyle(format.Name)))
	assert.Equal(t, "dimensionless", format.Unit(unit.Dimensionless()))
	knots := mustParse(t, "nmi h^-1")
	assert.True(t, knots.Identical(nautical.Velocity))
	assert.Equal(t, "kn", format.Unit(knots))
	assert.Equal(t, "knot", format.Unit(knots, format.WithStyle(format.Name)))
}

func TestParseStyleAndPrefix(t *testing.T) {
	s, ok := format.ParseStyle("Name")
	assert.True(t, ok)
	assert.Equal(t, format.Name, s)
	_, ok = format.ParseStyle("fancy")
	assert.False(t, ok)

	p, ok := format.ParsePrefixMode("binary")
	assert.True(t, ok)
	assert.Equal(t, format.Binary, p)
	_, ok = format.ParsePrefixMode("roman")
	assert.False(t, ok)
}

func mustParse(t *testing.T, expr string) unit.Unit {
	t.Helper()
	u, err := format.ParseUnit(expr)
	require.NoError(t, err, expr)
	return u
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		expr string
		want unit.Unit
	}{
		{"m", si.Length},
		{"N*m", si.Energy},
		{"N m", si.Energy},
		{"m/s^2", si.Acceleration},
		{"kg m^2 s^-2", si.Energy},
		{"J/s", si.Power},
		{"kg^1/2", si.Mass.Pow(rational.Half)},
		{"dyn", cgs.Force},
		{"ft lb s^-2", imperial.Force},
		{"1", unit.Dimensionless()},
		{"", unit.Dimensionless()},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got := mustParse(t, tt.expr)
			assert.True(t, got.Identical(tt.want), "%q parsed to %s in %s, want %s", tt.expr, got, got.System(), tt.want)
		})
	}
}

func TestParsePrefixedUnits(t *testing.T) {
	km := mustParse(t, "km")
	b, ok := km.SingleBase()
	require.True(t, ok)
	assert.Same(t, baseunits.Kilometer, b)

	dam := mustParse(t, "dam")
	b, ok = dam.SingleBase()
	require.True(t, ok)
	assert.Equal(t, unit.Deka, b.Scale())

	// "min" is the minute, not a milli-inch
	minute := mustParse(t, "min")
	b, ok = minute.SingleBase()
	require.True(t, ok)
	assert.Same(t, baseunits.Minute, b)

	mixed := mustParse(t, "km / h")
	assert.Equal(t, "km h^-1", mixed.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		expr    string
		wantErr error
	}{
		{"furlong", errors.ErrNotFound},
		{"/m", errors.ErrInvalidRequest},
		{"m/", errors.ErrInvalidRequest},
		{"m^", errors.ErrInvalidRequest},
		{"m^1/0", errors.ErrZeroDenominator},
		{"3m", errors.ErrInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := format.ParseUnit(tt.expr)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestTable(t *testing.T) {
	table := format.NewTable()
	require.NoError(t, table.Register(si.Force, "newton", "N"))
	require.NoError(t, table.Register(si.Power, "watt", "W"))

	assert.Error(t, table.Register(si.Energy, "joule", "N"), "duplicate symbol")
	assert.Error(t, table.Register(si.Energy, "watt", "J"), "duplicate name")
	assert.Error(t, table.Register(si.Force, "big newton", "BN"), "unit already named")
	assert.Error(t, table.Register(si.Dimensionless, "unity", "1"))
	assert.Error(t, table.Register(si.Energy, "", "J"))

	e, ok := table.Lookup(si.Force)
	require.True(t, ok)
	assert.Equal(t, "newton", e.Name)

	_, ok = table.BySymbol("W")
	assert.True(t, ok)
	_, ok = table.ByName("joule")
	assert.False(t, ok)

	all := table.All()
	require.Len(t, all, 2)
	assert.Equal(t, "newton", all[0].Name)

	assert.Equal(t, "2 W", format.Quantity(quantity.New(2.0, si.Power), format.WithTable(table)))
	assert.Equal(t, "2 m^2 kg s^-2", format.Quantity(quantity.New(2.0, si.Energy), format.WithTable(table)))
}
