// Package information measures data in bits or bytes.
package information

import (
	"github.com/teranos/dims/baseunits"
	"github.com/teranos/dims/physical"
	"github.com/teranos/dims/unit"
)

// Systems
var (
	BitSystem  = unit.MustRegisterSystem(unit.MustNewHomogeneous("bits", baseunits.Bit, baseunits.Second))
	ByteSystem = unit.MustRegisterSystem(unit.MustNewHomogeneous("bytes", baseunits.Byte, baseunits.Second))
)

// Units
var (
	Bits     = BitSystem.MustUnit(physical.InformationDim)
	Bytes    = ByteSystem.MustUnit(physical.InformationDim)
	BitRate  = BitSystem.MustUnit(physical.DataRate)
	ByteRate = ByteSystem.MustUnit(physical.DataRate)
	Kibibyte = unit.FromBase(baseunits.Kibibyte)
)
