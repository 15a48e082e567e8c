package unit

import (
	"math"
	"strconv"
)

// Scale is a power-of-base multiplier such as 10^3 (kilo) or 2^10 (kibi).
// The zero value means "unscaled".
type Scale struct {
	Base     int64
	Exponent int
}

// IsZero reports whether s is the unscaled identity.
func (s Scale) IsZero() bool {
	return s.Base == 0 || s.Exponent == 0
}

// Value returns Base^Exponent as a float64.
func (s Scale) Value() float64 {
	if s.IsZero() {
		return 1
	}
	return math.Pow(float64(s.Base), float64(s.Exponent))
}

// magnitude orders scales of one family: 10^-2 < 1 < 10^3 < 2^10.
func (s Scale) magnitude() float64 {
	if s.IsZero() {
		return 0
	}
	return float64(s.Exponent) * math.Log10(float64(s.Base))
}

func (s Scale) String() string {
	if s.IsZero() {
		return "1"
	}
	return strconv.FormatInt(s.Base, 10) + "^" + strconv.Itoa(s.Exponent)
}

// Prefix is the metric or binary prefix attached to a scale.
type Prefix struct {
	Name   string
	Symbol string
	Scale  Scale
}

// Metric prefixes
var (
	Yocto = Scale{10, -24}
	Zepto = Scale{10, -21}
	Atto  = Scale{10, -18}
	Femto = Scale{10, -15}
	Pico  = Scale{10, -12}
	Nano  = Scale{10, -9}
	Micro = Scale{10, -6}
	Milli = Scale{10, -3}
	Centi = Scale{10, -2}
	Deci  = Scale{10, -1}
	Deka  = Scale{10, 1}
	Hecto = Scale{10, 2}
	Kilo  = Scale{10, 3}
	Mega  = Scale{10, 6}
	Giga  = Scale{10, 9}
	Tera  = Scale{10, 12}
	Peta  = Scale{10, 15}
	Exa   = Scale{10, 18}
	Zetta = Scale{10, 21}
	Yotta = Scale{10, 24}
)

// Binary prefixes
var (
	Kibi = Scale{2, 10}
	Mebi = Scale{2, 20}
	Gibi = Scale{2, 30}
	Tebi = Scale{2, 40}
	Pebi = Scale{2, 50}
	Exbi = Scale{2, 60}
	Zebi = Scale{2, 70}
	Yobi = Scale{2, 80}
)

var prefixes = []Prefix{
	{"yocto", "y", Yocto},
	{"zepto", "z", Zepto},
	{"atto", "a", Atto},
	{"femto", "f", Femto},
	{"pico", "p", Pico},
	{"nano", "n", Nano},
	{"micro", "u", Micro},
	{"milli", "m", Milli},
	{"centi", "c", Centi},
	{"deci", "d", Deci},
	{"deka", "da", Deka},
	{"hecto", "h", Hecto},
	{"kilo", "k", Kilo},
	{"mega", "M", Mega},
	{"giga", "G", Giga},
	{"tera", "T", Tera},
	{"peta", "P", Peta},
	{"exa", "E", Exa},
	{"zetta", "Z", Zetta},
	{"yotta", "Y", Yotta},
	{"kibi", "Ki", Kibi},
	{"mebi", "Mi", Mebi},
	{"gibi", "Gi", Gibi},
	{"tebi", "Ti", Tebi},
	{"pebi", "Pi", Pebi},
	{"exbi", "Ei", Exbi},
	{"zebi", "Zi", Zebi},
	{"yobi", "Yi", Yobi},
}

// PrefixFor returns the named prefix of s, if it has one.
func PrefixFor(s Scale) (Prefix, bool) {
	for _, p := range prefixes {
		if p.Scale == s {
			return p, true
		}
	}
	return Prefix{}, false
}

// PrefixBySymbol finds a prefix by symbol ("k", "Ki", "da").
func PrefixBySymbol(symbol string) (Prefix, bool) {
	for _, p := range prefixes {
		if p.Symbol == symbol {
			return p, true
		}
	}
	return Prefix{}, false
}

// Prefixes returns every known prefix with the given base (10 or 2).
func Prefixes(base int64) []Prefix {
	var out []Prefix
	for _, p := range prefixes {
		if p.Scale.Base == base {
			out = append(out, p)
		}
	}
	return out
}

// PrefixByName finds a prefix by name ("kilo", "kibi").
func PrefixByName(name string) (Prefix, bool) {
	for _, p := range prefixes {
		if p.Name == name {
			return p, true
		}
	}
	return Prefix{}, false
}
