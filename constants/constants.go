// Package constants holds CODATA 2018 values of the fundamental physical
// constants as SI quantities.
package constants

import (
	"sort"

	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/quantity"
	"github.com/teranos/dims/systems/si"
	"github.com/teranos/dims/unit"
)

// Constant is a named measured value with its standard uncertainty, in the
// same unit as the value. Exact constants have zero uncertainty.
type Constant struct {
	Name        string
	Symbol      string
	Value       quantity.Quantity[float64]
	Uncertainty float64
}

// Exact reports whether the constant is exact by definition.
func (c Constant) Exact() bool { return c.Uncertainty == 0 }

// RelativeUncertainty is the uncertainty divided by the value.
func (c Constant) RelativeUncertainty() float64 {
	if c.Value.Value() == 0 {
		return 0
	}
	return c.Uncertainty / c.Value.Value()
}

func define(name, symbol string, value float64, u unit.Unit, uncertainty float64) Constant {
	return Constant{Name: name, Symbol: symbol, Value: quantity.New(value, u), Uncertainty: uncertainty}
}

var (
	// SpeedOfLight in vacuum.
	SpeedOfLight = define("speed of light in vacuum", "c", 299792458, si.Velocity, 0)
	// Gravitational is the Newtonian constant of gravitation.
	Gravitational = define("Newtonian constant of gravitation", "G", 6.67430e-11, si.GravitationalParameter, 0.00015e-11)
	// Planck constant.
	Planck = define("Planck constant", "h", 6.62607015e-34, si.Action, 0)
	// ReducedPlanck is h / 2π.
	ReducedPlanck = define("reduced Planck constant", "hbar", 1.054571817e-34, si.Action, 0)
	// ElementaryCharge of the proton.
	ElementaryCharge = define("elementary charge", "e", 1.602176634e-19, si.Charge, 0)
	// Boltzmann constant.
	Boltzmann = define("Boltzmann constant", "k", 1.380649e-23, si.Entropy, 0)
	// Avogadro constant.
	Avogadro = define("Avogadro constant", "N_A", 6.02214076e23, si.PerMole, 0)
	// StandardGravity is the standard acceleration of gravity.
	StandardGravity = define("standard acceleration of gravity", "g_n", 9.80665, si.Acceleration, 0)
	// ElectronMass at rest.
	ElectronMass = define("electron mass", "m_e", 9.1093837015e-31, si.Mass, 0.0000000028e-31)
	// ProtonMass at rest.
	ProtonMass = define("proton mass", "m_p", 1.67262192369e-27, si.Mass, 0.00000000051e-27)
	// VacuumPermittivity is the electric constant.
	VacuumPermittivity = define("vacuum electric permittivity", "epsilon_0", 8.8541878128e-12, si.Permittivity, 0.0000000013e-12)
)

var all = []Constant{
	SpeedOfLight,
	Gravitational,
	Planck,
	ReducedPlanck,
	ElementaryCharge,
	Boltzmann,
	Avogadro,
	StandardGravity,
	ElectronMass,
	ProtonMass,
	VacuumPermittivity,
}

// All returns every constant sorted by symbol.
func All() []Constant {
	out := make([]Constant, len(all))
	copy(out, all)
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// Lookup finds a constant by symbol.
func Lookup(symbol string) (Constant, error) {
	for _, c := range all {
		if c.Symbol == symbol {
			return c, nil
		}
	}
	return Constant{}, errors.NewNotFoundError("constant %q", symbol)
}
