// Package temperature provides the Celsius and Fahrenheit scales.
//
// Both scales are affine relative to kelvin. Use quantity.Absolute for
// readings and quantity.Quantity for differences.
package temperature

import (
	"github.com/teranos/dims/baseunits"
	"github.com/teranos/dims/physical"
	"github.com/teranos/dims/unit"
)

// Systems
var (
	CelsiusSystem    = unit.MustRegisterSystem(unit.MustNewHomogeneous("celsius", baseunits.Celsius))
	FahrenheitSystem = unit.MustRegisterSystem(unit.MustNewHomogeneous("fahrenheit", baseunits.Fahrenheit))
)

// Units
var (
	Celsius    = CelsiusSystem.MustUnit(physical.TemperatureDim)
	Fahrenheit = FahrenheitSystem.MustUnit(physical.TemperatureDim)
)
