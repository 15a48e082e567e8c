// Package gen turns a base-unit definition file into Go source.
//
// Definitions are read from TOML or YAML, validated (ordinals, identifiers
// and symbols must be unique; conversions must relate units of one
// dimension) and rendered as a package that registers every base unit and
// declares every conversion when it initializes. Ordinal collisions are
// therefore caught twice: here, when the file is generated, and again by
// the registries when the program starts.
package gen

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/teranos/dims/errors"
)

// SupportedFormat is the constraint definition files must satisfy.
const SupportedFormat = "^1.0"

// Definitions is the decoded content of a definition file.
type Definitions struct {
	FormatVersion string       `toml:"format_version" yaml:"format_version"`
	Package       string       `toml:"package" yaml:"package"`
	Units         []BaseUnit   `toml:"unit" yaml:"units"`
	Scaled        []ScaledUnit `toml:"scaled" yaml:"scaled"`
	Conversions   []Conversion `toml:"conversion" yaml:"conversions"`
}

// BaseUnit declares a root base unit.
type BaseUnit struct {
	ID        string `toml:"id" yaml:"id"`
	Name      string `toml:"name" yaml:"name"`
	Symbol    string `toml:"symbol" yaml:"symbol"`
	Dimension string `toml:"dimension" yaml:"dimension"`
	Ordinal   int    `toml:"ordinal" yaml:"ordinal"`
}

// ScaledUnit declares a prefixed member of a base unit's family.
// Either Prefix or Base and Exponent are set.
type ScaledUnit struct {
	ID       string `toml:"id" yaml:"id"`
	Of       string `toml:"of" yaml:"of"`
	Prefix   string `toml:"prefix" yaml:"prefix"`
	Base     int64  `toml:"base" yaml:"base"`
	Exponent int    `toml:"exponent" yaml:"exponent"`
}

// Conversion declares one relation: 1 From = Scale To (+ Offset).
type Conversion struct {
	From     string  `toml:"from" yaml:"from"`
	To       string  `toml:"to" yaml:"to"`
	Scale    float64 `toml:"scale" yaml:"scale"`
	Offset   float64 `toml:"offset" yaml:"offset"`
	Default  bool    `toml:"default" yaml:"default"`
	Implicit bool    `toml:"implicit" yaml:"implicit"`
}

// Load reads a definition file, choosing the decoder by extension.
func Load(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return Decode(data, filepath.Ext(path))
}

// Decode parses definitions in the format named by ext (".toml", ".yaml"
// or ".yml").
func Decode(data []byte, ext string) (*Definitions, error) {
	var defs Definitions
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &defs); err != nil {
			return nil, errors.Wrap(err, "failed to decode TOML definitions")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &defs); err != nil {
			return nil, errors.Wrap(err, "failed to decode YAML definitions")
		}
	default:
		return nil, errors.NewInvalidRequestError("unsupported definitions format %q (use .toml or .yaml)", ext)
	}
	if defs.Package == "" {
		defs.Package = "baseunits"
	}
	return &defs, nil
}
