package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/rational"
)

type fixture struct {
	length, mass, time *Base
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	r := NewRegistry()
	length, err := r.Register("length", "L", 1)
	require.NoError(t, err)
	mass, err := r.Register("mass", "M", 2)
	require.NoError(t, err)
	time, err := r.Register("time", "T", 3)
	require.NoError(t, err)
	return fixture{length: length, mass: mass, time: time}
}

func (f fixture) energy() Dimension {
	return Canonicalize(
		Term{f.length, rational.Two},
		Term{f.mass, rational.One},
		Term{f.time, rational.FromInt(-2)},
	)
}

func TestCanonicalizeSortsMergesAndStrips(t *testing.T) {
	f := newFixture(t)

	d := Canonicalize(
		Term{f.time, rational.FromInt(-1)},
		Term{f.length, rational.One},
		Term{f.mass, rational.Zero},
		Term{f.time, rational.FromInt(-1)},
		Term{f.length, rational.One},
		Term{f.mass, rational.One},
	)

	assert.Equal(t, "L^2 M T^-2", d.String())
	assert.True(t, d.Equal(f.energy()))
	assert.Equal(t, 3, d.Len())
}

func TestCanonicalizeDropsTermsThatCancel(t *testing.T) {
	f := newFixture(t)

	d := Canonicalize(
		Term{f.length, rational.One},
		Term{f.time, rational.One},
		Term{f.length, rational.FromInt(-1)},
	)

	assert.Equal(t, "T", d.String())
	assert.Equal(t, rational.Zero, d.Exponent(f.length))
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	f := newFixture(t)

	once := Canonicalize(
		Term{f.mass, rational.Half},
		Term{f.length, rational.FromInt(3)},
		Term{f.mass, rational.Half},
	)
	twice := Canonicalize(once.Terms()...)

	assert.True(t, once.Equal(twice))
	assert.Equal(t, once.Key(), twice.Key())
}

func TestMulIsCommutativeAndAssociative(t *testing.T) {
	f := newFixture(t)
	l, m, tm := Of(f.length), Of(f.mass), Of(f.time)
	invT2 := Dimensionless().Div(tm.Pow(rational.Two))

	permutations := []Dimension{
		l.Mul(l).Mul(m).Mul(invT2),
		m.Mul(invT2).Mul(l).Mul(l),
		invT2.Mul(l.Mul(m.Mul(l))),
		l.Mul(m).Mul(l).Div(tm).Div(tm),
	}

	for i, d := range permutations {
		assert.True(t, d.Equal(f.energy()), "permutation %d: %s", i, d)
	}

	a, b, c := l.Mul(m), m.Div(tm), tm.Pow(rational.FromInt(3))
	assert.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))))
	assert.True(t, a.Mul(b).Equal(b.Mul(a)))
}

func TestDivToDimensionless(t *testing.T) {
	f := newFixture(t)
	e := f.energy()

	q := e.Div(e)
	assert.True(t, q.IsDimensionless())
	assert.Equal(t, "dimensionless", q.String())
	assert.Equal(t, "1", q.Key())
}

func TestPowAndRoot(t *testing.T) {
	f := newFixture(t)
	area := Of(f.length).Pow(rational.Two)

	back, err := area.Root(rational.Two)
	require.NoError(t, err)
	assert.True(t, back.Equal(Of(f.length)))

	sqrtMass := Of(f.mass).Pow(rational.Half)
	assert.Equal(t, "M^1/2", sqrtMass.String())

	again, err := sqrtMass.Root(rational.Half)
	require.NoError(t, err)
	assert.True(t, again.Equal(Of(f.mass)))

	assert.True(t, f.energy().Pow(rational.Zero).IsDimensionless())

	_, err = area.Root(rational.Zero)
	assert.True(t, errors.Is(err, errors.ErrZeroDenominator))
}

func TestAddRequiresIdenticalDimensions(t *testing.T) {
	f := newFixture(t)

	d, err := Add(f.energy(), f.energy())
	require.NoError(t, err)
	assert.True(t, d.Equal(f.energy()))

	_, err = Add(Of(f.length), Of(f.mass))
	assert.True(t, errors.Is(err, errors.ErrDimensionMismatch))

	_, err = Sub(Of(f.length), Of(f.length).Pow(rational.Two))
	assert.True(t, errors.Is(err, errors.ErrDimensionMismatch))
	assert.Contains(t, err.Error(), "cannot subtract L and L^2")
}

func TestExponentAndBases(t *testing.T) {
	f := newFixture(t)
	e := f.energy()

	assert.Equal(t, rational.Two, e.Exponent(f.length))
	assert.Equal(t, rational.FromInt(-2), e.Exponent(f.time))
	assert.Equal(t, []*Base{f.length, f.mass, f.time}, e.Bases())
	assert.Equal(t, "1:2,2:1,3:-2", e.Key())
}

func TestRegistryOrdinals(t *testing.T) {
	r := NewRegistry()

	length, err := r.Register("length", "L", 1)
	require.NoError(t, err)

	again, err := r.Register("length", "L", 1)
	require.NoError(t, err)
	assert.Same(t, length, again, "re-registration is idempotent")

	_, err = r.Register("mass", "M", 1)
	assert.True(t, errors.Is(err, errors.ErrOrdinalCollision))

	_, err = r.Register("", "X", 9)
	assert.True(t, errors.IsInvalidRequestError(err))

	_, err = r.Register("time", "T", 3)
	require.NoError(t, err)

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "length", all[0].Name())
	assert.Equal(t, 3, all[1].Ordinal())

	found, ok := r.Lookup("time")
	require.True(t, ok)
	assert.Equal(t, "T", found.Symbol())
	_, ok = r.Lookup("charm")
	assert.False(t, ok)
}
