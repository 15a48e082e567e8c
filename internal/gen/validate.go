package gen

import (
	"go/token"
	"math"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/dims/dimension"
	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/physical"
	"github.com/teranos/dims/unit"
)

// Dimensions maps the identifiers usable in definition files to the base
// dimensions of package physical.
var Dimensions = map[string]*dimension.Base{
	"Length":            physical.Length,
	"Mass":              physical.Mass,
	"Time":              physical.Time,
	"Current":           physical.Current,
	"Temperature":       physical.Temperature,
	"Amount":            physical.Amount,
	"LuminousIntensity": physical.LuminousIntensity,
	"PlaneAngle":        physical.PlaneAngle,
	"SolidAngle":        physical.SolidAngle,
	"Information":       physical.Information,
}

// Validate checks defs and returns every problem found, joined.
func Validate(defs *Definitions) error {
	var problems []error
	fail := func(format string, args ...interface{}) {
		problems = append(problems, errors.NewInvalidRequestError(format, args...))
	}

	if err := checkFormatVersion(defs.FormatVersion); err != nil {
		problems = append(problems, err)
	}
	if !token.IsIdentifier(defs.Package) {
		fail("package %q is not a Go identifier", defs.Package)
	}

	ids := make(map[string]*dimension.Base)
	symbols := make(map[string]string)
	ordinals := make(map[int]string)

	for _, u := range defs.Units {
		switch {
		case !token.IsExported(u.ID) || !token.IsIdentifier(u.ID):
			fail("unit id %q must be an exported Go identifier", u.ID)
			continue
		case u.Name == "" || u.Symbol == "":
			fail("unit %s needs a name and a symbol", u.ID)
		}
		if _, dup := ids[u.ID]; dup {
			fail("duplicate unit id %s", u.ID)
		}
		dim, ok := Dimensions[u.Dimension]
		if !ok {
			fail("unit %s: unknown dimension %q", u.ID, u.Dimension)
		}
		ids[u.ID] = dim
		if u.Ordinal <= 0 {
			fail("unit %s: ordinal must be positive, got %d", u.ID, u.Ordinal)
		} else if owner, dup := ordinals[u.Ordinal]; dup {
			problems = append(problems, errors.NewOrdinalCollision("base unit", u.Ordinal, owner, u.ID))
		} else {
			ordinals[u.Ordinal] = u.ID
		}
		if owner, dup := symbols[u.Symbol]; dup && u.Symbol != "" {
			fail("unit %s: symbol %q already used by %s", u.ID, u.Symbol, owner)
		} else {
			symbols[u.Symbol] = u.ID
		}
	}

	for _, s := range defs.Scaled {
		if !token.IsExported(s.ID) || !token.IsIdentifier(s.ID) {
			fail("scaled unit id %q must be an exported Go identifier", s.ID)
			continue
		}
		if _, dup := ids[s.ID]; dup {
			fail("duplicate unit id %s", s.ID)
		}
		dim, ok := ids[s.Of]
		if !ok {
			fail("scaled unit %s: unknown unit %q", s.ID, s.Of)
		}
		if _, err := s.scale(); err != nil {
			problems = append(problems, errors.Wrapf(err, "scaled unit %s", s.ID))
		}
		ids[s.ID] = dim
	}

	for i, c := range defs.Conversions {
		from, okFrom := ids[c.From]
		to, okTo := ids[c.To]
		switch {
		case !okFrom:
			fail("conversion %d: unknown unit %q", i, c.From)
		case !okTo:
			fail("conversion %d: unknown unit %q", i, c.To)
		case from != to:
			problems = append(problems, errors.Wrapf(
				errors.NewDimensionMismatch("convert", from, to), "conversion %s -> %s", c.From, c.To))
		case c.From == c.To:
			fail("conversion %d relates %s to itself", i, c.From)
		}
		if c.Scale <= 0 || math.IsInf(c.Scale, 0) || math.IsNaN(c.Scale) {
			fail("conversion %s -> %s: scale must be positive and finite", c.From, c.To)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	err := problems[0]
	for _, p := range problems[1:] {
		err = errors.CombineErrors(err, p)
	}
	return err
}

func checkFormatVersion(v string) error {
	if v == "" {
		return errors.NewInvalidRequestError("format_version is required")
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidRequest, "invalid format_version %q: %v", v, err)
	}
	constraint, err := semver.NewConstraint(SupportedFormat)
	if err != nil {
		return errors.Wrapf(err, "invalid constraint %s", SupportedFormat)
	}
	if !constraint.Check(ver) {
		return errors.NewInvalidRequestError("format_version %s is not supported (need %s)", v, SupportedFormat)
	}
	return nil
}

// scale returns the unit.Scale a scaled definition describes.
func (s ScaledUnit) scale() (unit.Scale, error) {
	if s.Prefix != "" {
		p, ok := unit.PrefixByName(s.Prefix)
		if !ok {
			return unit.Scale{}, errors.NewInvalidRequestError("unknown prefix %q", s.Prefix)
		}
		return p.Scale, nil
	}
	if s.Base < 2 || s.Exponent == 0 {
		return unit.Scale{}, errors.NewInvalidRequestError("needs a prefix or a base >= 2 and a non-zero exponent")
	}
	return unit.Scale{Base: s.Base, Exponent: s.Exponent}, nil
}
