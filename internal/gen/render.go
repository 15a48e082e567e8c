package gen

import (
	"fmt"
	"go/format"
	"sort"
	"strconv"
	"strings"

	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/unit"
)

// Generator identifies the tool in the generated header.
const Generator = "dimsgen"

// Render produces the gofmt'ed Go source for defs. source names the
// definition file in the header.
func Render(defs *Definitions, source string) ([]byte, error) {
	if err := Validate(defs); err != nil {
		return nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "// Code generated by %s from %s. DO NOT EDIT.\n\n", Generator, source)
	fmt.Fprintf(&sb, "package %s\n\n", defs.Package)

	sb.WriteString("import (\n")
	if len(defs.Conversions) > 0 {
		sb.WriteString("\t\"github.com/teranos/dims/conversion\"\n")
	}
	sb.WriteString("\t\"github.com/teranos/dims/physical\"\n")
	sb.WriteString("\t\"github.com/teranos/dims/unit\"\n")
	sb.WriteString(")\n\n")

	units := make([]BaseUnit, len(defs.Units))
	copy(units, defs.Units)
	sort.SliceStable(units, func(i, j int) bool { return units[i].Ordinal < units[j].Ordinal })

	sb.WriteString("// Base unit ordinals\nconst (\n")
	for _, u := range units {
		fmt.Fprintf(&sb, "\t%sOrdinal = %d\n", u.ID, u.Ordinal)
	}
	sb.WriteString(")\n\n")

	sb.WriteString("// Base units\nvar (\n")
	for _, u := range units {
		fmt.Fprintf(&sb, "\t%s = unit.MustRegisterBase(%s, %s, physical.%s, %sOrdinal)\n",
			u.ID, strconv.Quote(u.Name), strconv.Quote(u.Symbol), u.Dimension, u.ID)
	}
	sb.WriteString(")\n")

	if len(defs.Scaled) > 0 {
		sb.WriteString("\n// Scaled base units\nvar (\n")
		for _, s := range defs.Scaled {
			expr, err := scaleExpr(s)
			if err != nil {
				return nil, errors.Wrapf(err, "scaled unit %s", s.ID)
			}
			fmt.Fprintf(&sb, "\t%s = unit.MustScaled(%s, %s)\n", s.ID, s.Of, expr)
		}
		sb.WriteString(")\n")
	}

	if len(defs.Conversions) > 0 {
		sb.WriteString("\nfunc init() {\n")
		for _, c := range defs.Conversions {
			fmt.Fprintf(&sb, "\tconversion.MustDeclare(%s, %s, %s%s)\n", c.From, c.To, formatFloat(c.Scale), options(c))
		}
		sb.WriteString("}\n")
	}

	src, err := format.Source([]byte(sb.String()))
	if err != nil {
		return nil, errors.Wrap(err, "generated source does not parse")
	}
	return src, nil
}

func scaleExpr(s ScaledUnit) (string, error) {
	sc, err := s.scale()
	if err != nil {
		return "", err
	}
	if p, ok := unit.PrefixFor(sc); ok {
		return "unit." + strings.ToUpper(p.Name[:1]) + p.Name[1:], nil
	}
	return fmt.Sprintf("unit.Scale{Base: %d, Exponent: %d}", sc.Base, sc.Exponent), nil
}

func options(c Conversion) string {
	var opts []string
	if c.Offset != 0 {
		opts = append(opts, "conversion.WithOffset("+formatFloat(c.Offset)+")")
	}
	if c.Default {
		opts = append(opts, "conversion.Default()")
	}
	if c.Implicit {
		opts = append(opts, "conversion.Implicit()")
	}
	if len(opts) == 0 {
		return ""
	}
	return ", " + strings.Join(opts, ", ")
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
