// Package si is the International System of Units.
package si

import (
	"github.com/teranos/dims/baseunits"
	"github.com/teranos/dims/format"
	"github.com/teranos/dims/physical"
	"github.com/teranos/dims/unit"
)

// System is SI: meter, kilogram, second, ampere, kelvin, mole, candela,
// radian and steradian.
var System = unit.MustRegisterSystem(unit.MustNewHomogeneous("si",
	baseunits.Meter,
	baseunits.Kilogram,
	baseunits.Second,
	baseunits.Ampere,
	baseunits.Kelvin,
	baseunits.Mole,
	baseunits.Candela,
	baseunits.Radian,
	baseunits.Steradian,
))

// Units
var (
	Dimensionless     = System.MustUnit(physical.Dimensionless)
	Length            = System.MustUnit(physical.LengthDim)
	Mass              = System.MustUnit(physical.MassDim)
	Time              = System.MustUnit(physical.TimeDim)
	Current           = System.MustUnit(physical.CurrentDim)
	Temperature       = System.MustUnit(physical.TemperatureDim)
	Amount            = System.MustUnit(physical.AmountDim)
	LuminousIntensity = System.MustUnit(physical.LuminosityDim)
	PlaneAngle        = System.MustUnit(physical.AngleDim)
	SolidAngle        = System.MustUnit(physical.SolidAngleDim)

	Area         = System.MustUnit(physical.Area)
	Volume       = System.MustUnit(physical.Volume)
	Velocity     = System.MustUnit(physical.Velocity)
	Acceleration = System.MustUnit(physical.Acceleration)
	Frequency    = System.MustUnit(physical.Frequency)
	Force        = System.MustUnit(physical.Force)
	Energy       = System.MustUnit(physical.Energy)
	Power        = System.MustUnit(physical.Power)
	Pressure     = System.MustUnit(physical.Pressure)
	Momentum     = System.MustUnit(physical.Momentum)
	Charge       = System.MustUnit(physical.Charge)
	Voltage      = System.MustUnit(physical.Voltage)
	Resistance   = System.MustUnit(physical.Resistance)
	Capacitance  = System.MustUnit(physical.Capacitance)
	Action       = System.MustUnit(physical.Action)
	Entropy      = System.MustUnit(physical.Entropy)
	MolarMass    = System.MustUnit(physical.MolarMass)

	GravitationalParameter = System.MustUnit(physical.GravitationalParameter)
	Permittivity           = System.MustUnit(physical.Permittivity)
	PerMole                = System.MustUnit(physical.InverseAmount)
)

func init() {
	format.Names.MustRegister(Frequency, "hertz", "Hz")
	format.Names.MustRegister(Force, "newton", "N")
	format.Names.MustRegister(Energy, "joule", "J")
	format.Names.MustRegister(Power, "watt", "W")
	format.Names.MustRegister(Pressure, "pascal", "Pa")
	format.Names.MustRegister(Charge, "coulomb", "C")
	format.Names.MustRegister(Voltage, "volt", "V")
	format.Names.MustRegister(Resistance, "ohm", "Ω")
	format.Names.MustRegister(Capacitance, "farad", "F")
}
