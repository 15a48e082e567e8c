package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/quantity"
	"github.com/teranos/dims/rational"
	"github.com/teranos/dims/systems/si"
)

func TestLookup(t *testing.T) {
	c, err := Lookup("c")
	require.NoError(t, err)
	assert.Equal(t, 299792458.0, c.Value.Value())
	assert.True(t, c.Exact())
	assert.True(t, c.Value.Unit().Identical(si.Velocity))

	_, err = Lookup("phi")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUncertainty(t *testing.T) {
	assert.False(t, Gravitational.Exact())
	assert.InDelta(t, 2.25e-5, Gravitational.RelativeUncertainty(), 1e-7)
	assert.Zero(t, Planck.RelativeUncertainty())
}

func TestAllSortedBySymbol(t *testing.T) {
	all := All()
	require.Len(t, all, 11)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Symbol, all[i].Symbol)
	}
}

func TestConstantsCarryDimensions(t *testing.T) {
	photon := Planck.Value.Mul(quantity.New(5e14, si.Frequency))
	assert.True(t, photon.Unit().Identical(si.Energy))

	earthMass := quantity.New(5.9722e24, si.Mass)
	earthRadius := quantity.New(6.371e6, si.Length)
	g := Gravitational.Value.Mul(earthMass).Div(earthRadius.Pow(rational.Two))
	assert.True(t, g.Unit().Identical(si.Acceleration))
	assert.InDelta(t, 9.82, g.Value(), 0.01)

	_, err := g.Add(StandardGravity.Value)
	assert.NoError(t, err)

	restEnergy := ElectronMass.Value.Mul(SpeedOfLight.Value.Pow(rational.Two))
	assert.True(t, restEnergy.Unit().Identical(si.Energy))
	assert.InDelta(t, 8.187e-14, restEnergy.Value(), 1e-17)
}
