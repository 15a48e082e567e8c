// Package config loads dims settings from defaults, TOML files and DIMS_
// environment variables.
package config

// Config is the dims configuration.
type Config struct {
	Output  OutputConfig  `mapstructure:"output" json:"output" yaml:"output" toml:"output"`
	Log     LogConfig     `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
	Convert ConvertConfig `mapstructure:"convert" json:"convert" yaml:"convert" toml:"convert"`
}

// OutputConfig controls how units and quantities are printed
type OutputConfig struct {
	Style     string `mapstructure:"style" json:"style" yaml:"style" toml:"style"`                 // symbol, name or raw
	Prefix    string `mapstructure:"prefix" json:"prefix" yaml:"prefix" toml:"prefix"`             // none, engineering or binary
	Precision int    `mapstructure:"precision" json:"precision" yaml:"precision" toml:"precision"` // significant digits, -1 = shortest exact
}

// LogConfig configures the zap logger
type LogConfig struct {
	JSON      bool `mapstructure:"json" json:"json" yaml:"json" toml:"json"`
	Verbosity int  `mapstructure:"verbosity" json:"verbosity" yaml:"verbosity" toml:"verbosity"` // 0-3, same scale as -v
}

// ConvertConfig configures the convert command
type ConvertConfig struct {
	AllowExplicit bool     `mapstructure:"allow_explicit" json:"allow_explicit" yaml:"allow_explicit" toml:"allow_explicit"` // false = implicit conversions only
	Systems       []string `mapstructure:"systems" json:"systems" yaml:"systems" toml:"systems"`                             // preferred systems when parsing, in order
}

// File names and locations
const (
	FileName   = "dims.toml"
	SystemFile = "/etc/dims/dims.toml"
	UserDir    = ".dims"
	EnvPrefix  = "DIMS"

	DefaultFilePermissions = 0644
	DefaultDirPermissions  = 0750
)
