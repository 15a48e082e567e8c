package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.style", "symbol")
	v.SetDefault("output.prefix", "none")
	v.SetDefault("output.precision", -1)

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)

	v.SetDefault("convert.allow_explicit", true)
	v.SetDefault("convert.systems", []string{"si"})
}

// BindEnvVars binds the settings that are commonly overridden per shell
func BindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("output.style", "DIMS_OUTPUT_STYLE")
	_ = v.BindEnv("output.prefix", "DIMS_OUTPUT_PREFIX")
	_ = v.BindEnv("log.verbosity", "DIMS_LOG_VERBOSITY")
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Output: {Style: %s, Prefix: %s, Precision: %d}, Convert: {AllowExplicit: %t}}",
		c.Output.Style, c.Output.Prefix, c.Output.Precision, c.Convert.AllowExplicit)
}
