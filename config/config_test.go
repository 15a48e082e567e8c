package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/format"
	"github.com/teranos/dims/quantity"
	"github.com/teranos/dims/systems/cgs"
	"github.com/teranos/dims/systems/si"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, "symbol", cfg.Output.Style)
	assert.Equal(t, "none", cfg.Output.Prefix)
	assert.Equal(t, -1, cfg.Output.Precision)
	assert.True(t, cfg.Convert.AllowExplicit)
	assert.Equal(t, []string{"si"}, cfg.Convert.Systems)
	assert.False(t, cfg.Log.JSON)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Output:  OutputConfig{Style: "symbol", Prefix: "none", Precision: -1},
			Convert: ConvertConfig{Systems: []string{"si", "cgs"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(*Config) {}, nil},
		{"positive precision", func(c *Config) { c.Output.Precision = 6 }, nil},
		{"unknown style", func(c *Config) { c.Output.Style = "fancy" }, errors.ErrInvalidRequest},
		{"unknown prefix", func(c *Config) { c.Output.Prefix = "roman" }, errors.ErrInvalidRequest},
		{"zero precision", func(c *Config) { c.Output.Precision = 0 }, errors.ErrInvalidRequest},
		{"negative precision", func(c *Config) { c.Output.Precision = -2 }, errors.ErrInvalidRequest},
		{"negative verbosity", func(c *Config) { c.Log.Verbosity = -1 }, errors.ErrInvalidRequest},
		{"excessive verbosity", func(c *Config) { c.Log.Verbosity = 9 }, errors.ErrInvalidRequest},
		{"unknown system", func(c *Config) { c.Convert.Systems = []string{"mks"} }, errors.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "[output]\nprefix = \"engineering\"\nprecision = 4\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "engineering", cfg.Output.Prefix)
	assert.Equal(t, 4, cfg.Output.Precision)
	assert.Equal(t, "symbol", cfg.Output.Style, "unset keys keep their defaults")

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestMergeConfigFilesPrecedence(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "user", FileName)
	project := filepath.Join(dir, "project", FileName)
	writeFile(t, user, "[output]\nstyle = \"name\"\nprefix = \"binary\"\n")
	writeFile(t, project, "[output]\nprefix = \"engineering\"\n")

	v := viper.New()
	SetDefaults(v)
	tracked := make(map[string]SourceInfo)
	mergeConfigFiles(v, []ConfigFile{
		{Path: filepath.Join(dir, "absent.toml"), Source: SourceSystem},
		{Path: user, Source: SourceUser},
		{Path: project, Source: SourceProject},
	}, tracked)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)
	assert.Equal(t, "name", cfg.Output.Style)
	assert.Equal(t, "engineering", cfg.Output.Prefix)

	assert.Equal(t, SourceUser, tracked["output.style"].Source)
	assert.Equal(t, project, tracked["output.prefix"].Path)
	_, ok := tracked["output.precision"]
	assert.False(t, ok)
}

func TestSettingsReportSources(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DIMS_OUTPUT_STYLE", "name")
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "name", cfg.Output.Style)

	byKey := make(map[string]Setting)
	for _, s := range Settings() {
		byKey[s.Key] = s
	}
	assert.Equal(t, SourceEnvironment, byKey["output.style"].Source)
	assert.Equal(t, "DIMS_OUTPUT_STYLE", byKey["output.style"].SourcePath)
	assert.Equal(t, SourceDefault, byKey["output.prefix"].Source)
	assert.Equal(t, "name", GetString("output.style"))
}

func TestSetInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), UserDir, FileName)

	require.NoError(t, SetInFile(path, "output.prefix", "engineering"))
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "engineering", cfg.Output.Prefix)

	require.NoError(t, SetInFile(path, "output.precision", "5"))
	cfg, err = LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Output.Precision)
	assert.Equal(t, "engineering", cfg.Output.Prefix, "earlier keys survive")
	assert.FileExists(t, path+".back1")

	require.NoError(t, SetInFile(path, "convert.systems", "cgs, si"))
	cfg, err = LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cgs", "si"}, cfg.Convert.Systems)

	before, err := os.ReadFile(path)
	require.NoError(t, err)
	err = SetInFile(path, "output.style", "fancy")
	assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "invalid values are never written")

	assert.True(t, errors.IsNotFoundError(SetInFile(path, "output.colour", "red")))
	assert.True(t, errors.IsNotFoundError(SetInFile(path, "output", "x")))
}

func TestFormatOptions(t *testing.T) {
	cfg := Config{Output: OutputConfig{Style: "name", Prefix: "engineering", Precision: -1}}
	opts, err := cfg.FormatOptions()
	require.NoError(t, err)
	assert.Equal(t, "2.345 kilometer", format.Quantity(quantity.New(2345.0, si.Length), opts...))

	cfg.Output.Style = "loud"
	_, err = cfg.FormatOptions()
	assert.Error(t, err)
}

func TestParserPrefersConfiguredSystems(t *testing.T) {
	cfg := Config{Convert: ConvertConfig{Systems: []string{"cgs"}}}
	p, err := cfg.Parser()
	require.NoError(t, err)

	s, err := p.Parse("s")
	require.NoError(t, err)
	assert.True(t, s.Identical(cgs.Time))

	m, err := p.Parse("m")
	require.NoError(t, err)
	assert.True(t, m.Identical(si.Length), "falls back to the other systems")

	cfg.Convert.Systems = []string{"nope"}
	_, err = cfg.Parser()
	assert.True(t, errors.IsNotFoundError(err))
}
