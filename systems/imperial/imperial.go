// Package imperial is the foot-pound-second system.
package imperial

import (
	"github.com/teranos/dims/baseunits"
	"github.com/teranos/dims/physical"
	"github.com/teranos/dims/unit"
)

// System uses foot, pound and second.
var System = unit.MustRegisterSystem(unit.MustNewHomogeneous("imperial",
	baseunits.Foot,
	baseunits.Pound,
	baseunits.Second,
))

// Units
var (
	Length       = System.MustUnit(physical.LengthDim)
	Mass         = System.MustUnit(physical.MassDim)
	Time         = System.MustUnit(physical.TimeDim)
	Area         = System.MustUnit(physical.Area)
	Volume       = System.MustUnit(physical.Volume)
	Velocity     = System.MustUnit(physical.Velocity)
	Acceleration = System.MustUnit(physical.Acceleration)
	Force        = System.MustUnit(physical.Force)
	Energy       = System.MustUnit(physical.Energy)
)

// Single-unit lengths and masses outside the system's base units.
var (
	Inch  = unit.FromBase(baseunits.Inch)
	Yard  = unit.FromBase(baseunits.Yard)
	Mile  = unit.FromBase(baseunits.Mile)
	Ounce = unit.FromBase(baseunits.Ounce)
)
