package conversion

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/dims/dimension"
	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/rational"
	"github.com/teranos/dims/unit"
)

type fixture struct {
	length, mass, time, temp *dimension.Base

	m, cm, km, ft, nmi, g, kg, s, kelvin, celsius, fahrenheit *unit.BaseUnit

	si, cgs, cel, fah *unit.Homogeneous
	reg               *Registry
	logs              *observer.ObservedLogs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{}
	dims := dimension.NewRegistry()
	mustDim := func(name, sym string, ord int) *dimension.Base {
		b, err := dims.Register(name, sym, ord)
		require.NoError(t, err)
		return b
	}
	f.length = mustDim("length", "L", 1)
	f.mass = mustDim("mass", "M", 2)
	f.time = mustDim("time", "T", 3)
	f.temp = mustDim("temperature", "Θ", 5)

	units := unit.NewRegistry()
	mustUnit := func(name, sym string, d *dimension.Base, ord int) *unit.BaseUnit {
		b, err := units.Register(name, sym, d, ord)
		require.NoError(t, err)
		return b
	}
	mustScaled := func(b *unit.BaseUnit, s unit.Scale) *unit.BaseUnit {
		sc, err := units.Scaled(b, s)
		require.NoError(t, err)
		return sc
	}
	f.m = mustUnit("meter", "m", f.length, 1)
	f.g = mustUnit("gram", "g", f.mass, 2)
	f.s = mustUnit("second", "s", f.time, 3)
	f.kelvin = mustUnit("kelvin", "K", f.temp, 5)
	f.ft = mustUnit("foot", "ft", f.length, 20)
	f.nmi = mustUnit("nautical mile", "nmi", f.length, 30)
	f.celsius = mustUnit("degree Celsius", "°C", f.temp, 40)
	f.fahrenheit = mustUnit("degree Fahrenheit", "°F", f.temp, 41)
	f.cm = mustScaled(f.m, unit.Centi)
	f.km = mustScaled(f.m, unit.Kilo)
	f.kg = mustScaled(f.g, unit.Kilo)

	var err error
	f.si, err = unit.NewHomogeneous("si", f.m, f.kg, f.s, f.kelvin)
	require.NoError(t, err)
	f.cgs, err = unit.NewHomogeneous("cgs", f.cm, f.g, f.s)
	require.NoError(t, err)
	f.cel, err = unit.NewHomogeneous("celsius", f.celsius)
	require.NoError(t, err)
	f.fah, err = unit.NewHomogeneous("fahrenheit", f.fahrenheit)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	f.logs = logs
	f.reg = NewRegistry(zap.New(core).Sugar())
	require.NoError(t, f.reg.Declare(f.ft, f.m, 0.3048, Default()))
	require.NoError(t, f.reg.Declare(f.nmi, f.m, 1852, Default()))
	require.NoError(t, f.reg.Declare(f.celsius, f.kelvin, 1, WithOffset(273.15), Default()))
	require.NoError(t, f.reg.Declare(f.fahrenheit, f.celsius, 5.0/9.0, WithOffset(-160.0/9.0), Default()))
	return f
}

func (f *fixture) unit(t *testing.T, sys *unit.Homogeneous, d dimension.Dimension) unit.Unit {
	t.Helper()
	u, err := sys.Unit(d)
	require.NoError(t, err)
	return u
}

func (f *fixture) energy() dimension.Dimension {
	return dimension.Canonicalize(
		dimension.Term{Base: f.length, Exp: rational.Two},
		dimension.Term{Base: f.mass, Exp: rational.One},
		dimension.Term{Base: f.time, Exp: rational.FromInt(-2)},
	)
}

func TestDeclareValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name    string
		from    *unit.BaseUnit
		to      *unit.BaseUnit
		scale   float64
		wantErr error
	}{
		{"different dimensions", f.m, f.g, 1, errors.ErrDimensionMismatch},
		{"zero scale", f.ft, f.nmi, 0, errors.ErrInvalidRequest},
		{"negative scale", f.ft, f.nmi, -1, errors.ErrInvalidRequest},
		{"nan scale", f.ft, f.nmi, math.NaN(), errors.ErrInvalidRequest},
		{"infinite scale", f.ft, f.nmi, math.Inf(1), errors.ErrInvalidRequest},
		{"same family", f.m, f.km, 0.001, errors.ErrInvalidRequest},
		{"conflicting redeclaration", f.ft, f.m, 0.3, errors.ErrInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.reg.Declare(tt.from, tt.to, tt.scale)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}

	assert.NoError(t, f.reg.Declare(f.ft, f.m, 0.3048, Default()), "identical redeclaration is a no-op")
	assert.Panics(t, func() { f.reg.MustDeclare(f.m, f.g, 1) })
}

func TestDeclareLogs(t *testing.T) {
	f := newFixture(t)

	entries := f.logs.FilterMessage("declared conversion").All()
	require.Len(t, entries, 4)
	fields := entries[0].ContextMap()
	assert.Equal(t, "ft", fields["from"])
	assert.Equal(t, "m", fields["to"])
	assert.Equal(t, 0.3048, fields["factor"])
}

func TestBaseFactor(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name     string
		from, to *unit.BaseUnit
		scale    float64
		implicit bool
	}{
		{"identity", f.m, f.m, 1, true},
		{"declared", f.ft, f.m, 0.3048, false},
		{"reverse of default", f.m, f.ft, 1 / 0.3048, false},
		{"within a family", f.km, f.cm, 1e5, false},
		{"scaled destination", f.ft, f.km, 0.0003048, false},
		{"two hops", f.ft, f.nmi, 0.3048 / 1852, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.reg.BaseFactor(tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.scale, got.Scale, tt.scale*1e-12)
			assert.Equal(t, tt.implicit, got.Implicit)
		})
	}
}

func TestBaseFactorWithoutReverse(t *testing.T) {
	f := newFixture(t)
	reg := NewRegistry(zap.NewNop().Sugar())
	require.NoError(t, reg.Declare(f.nmi, f.m, 1852))

	_, err := reg.BaseFactor(f.nmi, f.m)
	require.NoError(t, err)

	_, err = reg.BaseFactor(f.m, f.nmi)
	assert.True(t, errors.Is(err, errors.ErrNoConversion))
}

func TestAffineChain(t *testing.T) {
	f := newFixture(t)

	c2k, err := f.reg.BaseFactor(f.celsius, f.kelvin)
	require.NoError(t, err)
	assert.InDelta(t, 273.15, c2k.Apply(0), 1e-9)
	assert.True(t, c2k.IsAffine())

	f2k, err := f.reg.BaseFactor(f.fahrenheit, f.kelvin)
	require.NoError(t, err)
	assert.InDelta(t, 273.15, f2k.Apply(32), 1e-9)
	assert.InDelta(t, 373.15, f2k.Apply(212), 1e-9)

	k2f, err := f.reg.BaseFactor(f.kelvin, f.fahrenheit)
	require.NoError(t, err)
	assert.InDelta(t, -40, k2f.Apply(233.15), 1e-9)
}

func TestResolveHomogeneous(t *testing.T) {
	f := newFixture(t)

	joule, erg := f.unit(t, f.si, f.energy()), f.unit(t, f.cgs, f.energy())
	got, err := f.reg.Resolve(joule, erg)
	require.NoError(t, err)
	assert.InDelta(t, 1e7, got.Scale, 1e-3)
	assert.False(t, got.Implicit)

	back, err := f.reg.Resolve(erg, joule)
	require.NoError(t, err)
	assert.InDelta(t, 1e-7, back.Scale, 1e-19)

	siTime, cgsTime := f.unit(t, f.si, dimension.Of(f.time)), f.unit(t, f.cgs, dimension.Of(f.time))
	assert.True(t, f.reg.IsImplicit(siTime, cgsTime))
	assert.False(t, f.reg.IsImplicit(f.unit(t, f.si, dimension.Of(f.length)), f.unit(t, f.cgs, dimension.Of(f.length))))

	_, err = f.reg.Resolve(joule, siTime)
	assert.True(t, errors.Is(err, errors.ErrDimensionMismatch))
}

func TestResolveHeterogeneous(t *testing.T) {
	f := newFixture(t)
	siArea := f.unit(t, f.si, dimension.OfPower(f.length, rational.Two))
	siLength := f.unit(t, f.si, dimension.Of(f.length))

	mixed := unit.Compose(unit.Term{Unit: f.cm, Exp: rational.One}, unit.Term{Unit: f.m, Exp: rational.One})
	got, err := f.reg.Resolve(mixed, siArea)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, got.Scale, 1e-15)

	radar := unit.Compose(unit.Term{Unit: f.nmi, Exp: rational.Two}, unit.Term{Unit: f.km, Exp: rational.FromInt(-1)})
	got, err = f.reg.Resolve(radar, siLength)
	require.NoError(t, err)
	assert.InDelta(t, 1852.0*1852.0/1000.0, got.Scale, 1e-9)

	inverse, err := f.reg.Resolve(siLength, radar)
	require.NoError(t, err)
	assert.InDelta(t, 1/got.Scale, inverse.Scale, 1e-15)

	ratio := unit.Compose(unit.Term{Unit: f.cm, Exp: rational.One}, unit.Term{Unit: f.m, Exp: rational.FromInt(-1)})
	got, err = f.reg.Resolve(ratio, unit.Dimensionless())
	require.NoError(t, err)
	assert.InDelta(t, 0.01, got.Scale, 1e-15)
}

func TestResolveKeepsOffsetForSingleBaseUnits(t *testing.T) {
	f := newFixture(t)
	tempDim := dimension.Of(f.temp)
	celsius, kelvin := f.unit(t, f.cel, tempDim), f.unit(t, f.si, tempDim)

	got, err := f.reg.Resolve(celsius, kelvin)
	require.NoError(t, err)
	assert.InDelta(t, 273.15, got.Offset, 1e-9)

	squared, err := f.reg.Resolve(celsius.Pow(rational.Two), kelvin.Pow(rational.Two))
	require.NoError(t, err)
	assert.Zero(t, squared.Offset)
	assert.InDelta(t, 1, squared.Scale, 1e-12)
}

func TestResolveDimensionlessIsImplicit(t *testing.T) {
	f := newFixture(t)
	siNone := f.unit(t, f.si, dimension.Dimensionless())
	cgsNone := f.unit(t, f.cgs, dimension.Dimensionless())

	got, err := f.reg.Resolve(siNone, cgsNone)
	require.NoError(t, err)
	assert.Equal(t, Identity, got)
	assert.True(t, f.reg.IsImplicit(unit.Dimensionless(), siNone))
}

func TestResolveMemo(t *testing.T) {
	f := newFixture(t)
	from := f.unit(t, f.si, dimension.Of(f.length))
	to := f.unit(t, f.cgs, dimension.Of(f.length))

	_, err := f.reg.Resolve(from, to)
	require.NoError(t, err)
	_, err = f.reg.Resolve(from, to)
	require.NoError(t, err)
	resolves, hits := f.reg.Stats()
	assert.Equal(t, int64(2), resolves)
	assert.Equal(t, int64(1), hits)

	yard, err := unit.NewRegistry().Register("yard", "yd", f.length, 23)
	require.NoError(t, err)
	require.NoError(t, f.reg.Declare(yard, f.m, 0.9144))

	_, err = f.reg.Resolve(from, to)
	require.NoError(t, err)
	_, hits = f.reg.Stats()
	assert.Equal(t, int64(1), hits, "declaring clears the memo")
}

func TestResolveConcurrently(t *testing.T) {
	f := newFixture(t)
	from := f.unit(t, f.si, f.energy())
	to := f.unit(t, f.cgs, f.energy())

	var wg sync.WaitGroup
	results := make([]float64, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := f.reg.Resolve(from, to)
			if err == nil {
				results[i] = got.Scale
			}
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.InDelta(t, 1e7, r, 1e-3)
	}
}

func TestFactorAlgebra(t *testing.T) {
	c2k := Factor{Scale: 1, Offset: 273.15}
	k2c := c2k.Inverse()
	assert.InDelta(t, 0, c2k.Compose(k2c).Apply(0), 1e-12)
	assert.InDelta(t, 25, k2c.Apply(298.15), 1e-12)

	sq := Factor{Scale: 100, Offset: 5, Implicit: true}.Pow(2)
	assert.Equal(t, Factor{Scale: 10000, Implicit: true}, sq)
	assert.Equal(t, "x10000 (implicit)", sq.String())
	assert.False(t, Factor{Scale: 2, Implicit: true}.Compose(Factor{Scale: 3}).Implicit)
}
