// Package nautical measures distance in nautical miles and time in hours.
package nautical

import (
	"github.com/teranos/dims/baseunits"
	"github.com/teranos/dims/format"
	"github.com/teranos/dims/physical"
	"github.com/teranos/dims/unit"
)

// System uses the nautical mile and the hour.
var System = unit.MustRegisterSystem(unit.MustNewHomogeneous("nautical",
	baseunits.NauticalMile,
	baseunits.Hour,
))

// Units
var (
	Length   = System.MustUnit(physical.LengthDim)
	Time     = System.MustUnit(physical.TimeDim)
	Area     = System.MustUnit(physical.Area)
	Velocity = System.MustUnit(physical.Velocity)
)

func init() {
	format.Names.MustRegister(Velocity, "knot", "kn")
}
