package conversion

import (
	"fmt"
	"math"
)

// Factor converts a value from one unit to another as value*Scale + Offset.
// Offset is non-zero only for affine conversions between absolute
// temperature-like units.
type Factor struct {
	Scale    float64
	Offset   float64
	Implicit bool
}

// Identity is the trivial implicit factor.
var Identity = Factor{Scale: 1, Implicit: true}

// Compose returns the factor applying f first and then g.
func (f Factor) Compose(g Factor) Factor {
	return Factor{
		Scale:    f.Scale * g.Scale,
		Offset:   f.Offset*g.Scale + g.Offset,
		Implicit: f.Implicit && g.Implicit,
	}
}

// Inverse returns the reverse conversion.
func (f Factor) Inverse() Factor {
	return Factor{
		Scale:    1 / f.Scale,
		Offset:   -f.Offset / f.Scale,
		Implicit: f.Implicit,
	}
}

// Pow raises the scale to e. Offsets do not survive exponentiation.
func (f Factor) Pow(e float64) Factor {
	if e == 1 {
		return f
	}
	return Factor{Scale: math.Pow(f.Scale, e), Implicit: f.Implicit}
}

// Relative drops the offset, for converting differences.
func (f Factor) Relative() Factor {
	return Factor{Scale: f.Scale, Implicit: f.Implicit}
}

// IsAffine reports whether f carries an offset.
func (f Factor) IsAffine() bool { return f.Offset != 0 }

// Apply converts v.
func (f Factor) Apply(v float64) float64 {
	return v*f.Scale + f.Offset
}

func (f Factor) String() string {
	mode := "explicit"
	if f.Implicit {
		mode = "implicit"
	}
	if f.Offset == 0 {
		return fmt.Sprintf("x%g (%s)", f.Scale, mode)
	}
	return fmt.Sprintf("x%g %+g (%s)", f.Scale, f.Offset, mode)
}
