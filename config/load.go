package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/teranos/dims/errors"
)

var (
	mu            sync.Mutex
	globalConfig  *Config
	viperInstance *viper.Viper
	sources       map[string]SourceInfo
)

// Load reads the configuration once and caches it.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}
	globalConfig = cfg
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	mu.Lock()
	defer mu.Unlock()
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// LoadFromFile loads configuration from one file on top of the defaults,
// without environment overrides.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}
	return cfg, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalConfig = nil
	viperInstance = nil
	sources = nil
}

// initViper builds the merged Viper instance. Callers hold mu.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	BindEnvVars(v)
	SetDefaults(v)

	sources = make(map[string]SourceInfo)
	mergeConfigFiles(v, configPaths(), sources)

	viperInstance = v
	return v
}

// configPaths lists the candidate files, lowest precedence first.
func configPaths() []ConfigFile {
	files := []ConfigFile{{Path: SystemFile, Source: SourceSystem}}
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, ConfigFile{Path: filepath.Join(home, UserDir, FileName), Source: SourceUser})
	}
	if project := findProjectConfig(); project != "" {
		files = append(files, ConfigFile{Path: project, Source: SourceProject})
	}
	return files
}

// ConfigFile is one layer of the cascade.
type ConfigFile struct {
	Path   string
	Source ConfigSource
}

// findProjectConfig walks up from the working directory to the nearest
// dims.toml. It returns "" when there is none.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// mergeConfigFiles merges the files that exist into v in order, later files
// overriding earlier ones, and records where every key came from.
func mergeConfigFiles(v *viper.Viper, files []ConfigFile, sourceMap map[string]SourceInfo) {
	for _, f := range files {
		if _, err := os.Stat(f.Path); err != nil {
			continue
		}
		layer := viper.New()
		layer.SetConfigFile(f.Path)
		layer.SetConfigType("toml")
		if err := layer.ReadInConfig(); err != nil {
			continue
		}
		settings := layer.AllSettings()
		setLeaves(v, settings, "")
		markSettingsFromSource(settings, "", f.Source, f.Path, sourceMap)
	}
}

// setLeaves sets every leaf key of settings, so a file that sets one key of
// a section leaves the other keys of that section alone.
func setLeaves(v *viper.Viper, settings map[string]interface{}, prefix string) {
	for key, value := range settings {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			setLeaves(v, nested, fullKey)
			continue
		}
		v.Set(fullKey, value)
	}
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	return GetViper().Get(key)
}

// GetString returns a configuration value as string using dot notation
func GetString(key string) string {
	return GetViper().GetString(key)
}
