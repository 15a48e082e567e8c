package config

import (
	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/format"
	"github.com/teranos/dims/logger"
	"github.com/teranos/dims/unit"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, ok := format.ParseStyle(c.Output.Style); !ok {
		return errors.NewInvalidRequestError("output.style must be symbol, name or raw, got %q", c.Output.Style)
	}
	if _, ok := format.ParsePrefixMode(c.Output.Prefix); !ok {
		return errors.NewInvalidRequestError("output.prefix must be none, engineering or binary, got %q", c.Output.Prefix)
	}
	// -1 is the shortest exact form; 0 is not useful for unit output
	if c.Output.Precision == 0 || c.Output.Precision < -1 {
		return errors.NewInvalidRequestError("output.precision must be -1 or positive, got %d", c.Output.Precision)
	}
	if c.Log.Verbosity < 0 || c.Log.Verbosity > logger.VerbosityTrace {
		return errors.NewInvalidRequestError("log.verbosity must be between 0 and %d, got %d", logger.VerbosityTrace, c.Log.Verbosity)
	}
	for _, name := range c.Convert.Systems {
		if _, err := unit.LookupSystem(name); err != nil {
			return errors.WithHint(errors.Wrap(err, "convert.systems"), "run `dims systems` to list the registered systems")
		}
	}
	return nil
}

// FormatOptions turns the output settings into format options.
func (c *Config) FormatOptions() ([]format.Option, error) {
	style, ok := format.ParseStyle(c.Output.Style)
	if !ok {
		return nil, errors.NewInvalidRequestError("unknown output style %q", c.Output.Style)
	}
	prefix, ok := format.ParsePrefixMode(c.Output.Prefix)
	if !ok {
		return nil, errors.NewInvalidRequestError("unknown prefix mode %q", c.Output.Prefix)
	}
	return []format.Option{
		format.WithStyle(style),
		format.WithPrefix(prefix),
		format.WithPrecision(c.Output.Precision),
	}, nil
}

// Parser returns a unit parser that prefers the configured systems, then
// every other registered system.
func (c *Config) Parser() (*format.Parser, error) {
	p := format.DefaultParser()
	preferred := make([]*unit.Homogeneous, 0, len(c.Convert.Systems))
	seen := make(map[string]bool)
	for _, name := range c.Convert.Systems {
		s, err := unit.LookupSystem(name)
		if err != nil {
			return nil, errors.Wrap(err, "convert.systems")
		}
		preferred = append(preferred, s)
		seen[name] = true
	}
	for _, s := range p.Systems {
		if !seen[s.Name()] {
			preferred = append(preferred, s)
		}
	}
	p.Systems = preferred
	return p, nil
}
