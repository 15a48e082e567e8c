// Package physical registers the base dimensions and names the common
// derived dimensions built from them.
package physical

import (
	"github.com/teranos/dims/dimension"
	"github.com/teranos/dims/rational"
)

// Base dimension ordinals. Ordinals are global; new base dimensions must
// pick an unused value.
const (
	LengthOrdinal = iota + 1
	MassOrdinal
	TimeOrdinal
	CurrentOrdinal
	TemperatureOrdinal
	AmountOrdinal
	LuminousIntensityOrdinal
	PlaneAngleOrdinal
	SolidAngleOrdinal
	InformationOrdinal
)

// Base dimensions
var (
	Length            = dimension.MustRegister("length", "L", LengthOrdinal)
	Mass              = dimension.MustRegister("mass", "M", MassOrdinal)
	Time              = dimension.MustRegister("time", "T", TimeOrdinal)
	Current           = dimension.MustRegister("current", "I", CurrentOrdinal)
	Temperature       = dimension.MustRegister("temperature", "Θ", TemperatureOrdinal)
	Amount            = dimension.MustRegister("amount", "N", AmountOrdinal)
	LuminousIntensity = dimension.MustRegister("luminous intensity", "J", LuminousIntensityOrdinal)
	PlaneAngle        = dimension.MustRegister("plane angle", "QP", PlaneAngleOrdinal)
	SolidAngle        = dimension.MustRegister("solid angle", "QS", SolidAngleOrdinal)
	Information       = dimension.MustRegister("information", "B", InformationOrdinal)
)

func pow(b *dimension.Base, n int64) dimension.Term {
	return dimension.Term{Base: b, Exp: rational.FromInt(n)}
}

// Derived dimensions
var (
	Dimensionless = dimension.Dimensionless()

	LengthDim      = dimension.Of(Length)
	MassDim        = dimension.Of(Mass)
	TimeDim        = dimension.Of(Time)
	CurrentDim     = dimension.Of(Current)
	TemperatureDim = dimension.Of(Temperature)
	AmountDim      = dimension.Of(Amount)
	LuminosityDim  = dimension.Of(LuminousIntensity)
	AngleDim       = dimension.Of(PlaneAngle)
	SolidAngleDim  = dimension.Of(SolidAngle)
	InformationDim = dimension.Of(Information)

	Area         = dimension.Canonicalize(pow(Length, 2))
	Volume       = dimension.Canonicalize(pow(Length, 3))
	Velocity     = dimension.Canonicalize(pow(Length, 1), pow(Time, -1))
	Acceleration = dimension.Canonicalize(pow(Length, 1), pow(Time, -2))
	Frequency    = dimension.Canonicalize(pow(Time, -1))
	Force        = dimension.Canonicalize(pow(Length, 1), pow(Mass, 1), pow(Time, -2))
	Energy       = dimension.Canonicalize(pow(Length, 2), pow(Mass, 1), pow(Time, -2))
	Power        = dimension.Canonicalize(pow(Length, 2), pow(Mass, 1), pow(Time, -3))
	Pressure     = dimension.Canonicalize(pow(Length, -1), pow(Mass, 1), pow(Time, -2))
	Momentum     = dimension.Canonicalize(pow(Length, 1), pow(Mass, 1), pow(Time, -1))
	Charge       = dimension.Canonicalize(pow(Current, 1), pow(Time, 1))
	Voltage      = dimension.Canonicalize(pow(Length, 2), pow(Mass, 1), pow(Time, -3), pow(Current, -1))
	Resistance   = dimension.Canonicalize(pow(Length, 2), pow(Mass, 1), pow(Time, -3), pow(Current, -2))
	Capacitance  = dimension.Canonicalize(pow(Length, -2), pow(Mass, -1), pow(Time, 4), pow(Current, 2))
	Action       = dimension.Canonicalize(pow(Length, 2), pow(Mass, 1), pow(Time, -1))
	Entropy      = dimension.Canonicalize(pow(Length, 2), pow(Mass, 1), pow(Time, -2), pow(Temperature, -1))
	MolarMass    = dimension.Canonicalize(pow(Mass, 1), pow(Amount, -1))

	GravitationalParameter = dimension.Canonicalize(pow(Length, 3), pow(Mass, -1), pow(Time, -2))
	Permittivity           = dimension.Canonicalize(pow(Length, -3), pow(Mass, -1), pow(Time, 4), pow(Current, 2))
	InverseAmount          = dimension.Canonicalize(pow(Amount, -1))
	DataRate               = dimension.Canonicalize(pow(Information, 1), pow(Time, -1))
)

// Named lists the derived dimensions by name, for lookups from the CLI.
var Named = map[string]dimension.Dimension{
	"dimensionless": Dimensionless,
	"length":        LengthDim,
	"mass":          MassDim,
	"time":          TimeDim,
	"current":       CurrentDim,
	"temperature":   TemperatureDim,
	"amount":        AmountDim,
	"luminosity":    LuminosityDim,
	"angle":         AngleDim,
	"solid angle":   SolidAngleDim,
	"information":   InformationDim,
	"area":          Area,
	"volume":        Volume,
	"velocity":      Velocity,
	"acceleration":  Acceleration,
	"frequency":     Frequency,
	"force":         Force,
	"energy":        Energy,
	"power":         Power,
	"pressure":      Pressure,
	"momentum":      Momentum,
	"charge":        Charge,
	"voltage":       Voltage,
	"resistance":    Resistance,
	"capacitance":   Capacitance,
	"action":        Action,
	"entropy":       Entropy,
	"molar mass":    MolarMass,
	"data rate":     DataRate,
}

// NameOf returns the name of d if it is one of the Named dimensions.
func NameOf(d dimension.Dimension) (string, bool) {
	best := ""
	for name, nd := range Named {
		if nd.Equal(d) && (best == "" || name < best) {
			best = name
		}
	}
	return best, best != ""
}
