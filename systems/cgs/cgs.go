// Package cgs is the centimeter-gram-second system.
package cgs

import (
	"github.com/teranos/dims/baseunits"
	"github.com/teranos/dims/format"
	"github.com/teranos/dims/physical"
	"github.com/teranos/dims/unit"
)

// System uses centimeter, gram and second.
var System = unit.MustRegisterSystem(unit.MustNewHomogeneous("cgs",
	baseunits.Centimeter,
	baseunits.Gram,
	baseunits.Second,
))

// Units
var (
	Dimensionless = System.MustUnit(physical.Dimensionless)
	Length        = System.MustUnit(physical.LengthDim)
	Mass          = System.MustUnit(physical.MassDim)
	Time          = System.MustUnit(physical.TimeDim)
	Area          = System.MustUnit(physical.Area)
	Volume        = System.MustUnit(physical.Volume)
	Velocity      = System.MustUnit(physical.Velocity)
	Acceleration  = System.MustUnit(physical.Acceleration)
	Force         = System.MustUnit(physical.Force)
	Energy        = System.MustUnit(physical.Energy)
	Power         = System.MustUnit(physical.Power)
	Pressure      = System.MustUnit(physical.Pressure)
)

func init() {
	format.Names.MustRegister(Acceleration, "gal", "Gal")
	format.Names.MustRegister(Force, "dyne", "dyn")
	format.Names.MustRegister(Energy, "erg", "erg")
	format.Names.MustRegister(Pressure, "barye", "Ba")
}
