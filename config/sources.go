package config

import (
	"os"
	"sort"
	"strings"
)

// ConfigSource represents where a configuration value came from
type ConfigSource string

const (
	SourceDefault     ConfigSource = "default"
	SourceSystem      ConfigSource = "system"      // /etc/dims/dims.toml
	SourceUser        ConfigSource = "user"        // ~/.dims/dims.toml
	SourceProject     ConfigSource = "project"     // nearest dims.toml
	SourceEnvironment ConfigSource = "environment" // DIMS_* env vars
)

// SourceInfo tracks where a configuration value originated
type SourceInfo struct {
	Source ConfigSource
	Path   string // file path or environment variable name
}

// Setting is one effective key with its value and origin.
type Setting struct {
	Key        string       `json:"key" yaml:"key"`
	Value      interface{}  `json:"value" yaml:"value"`
	Source     ConfigSource `json:"source" yaml:"source"`
	SourcePath string       `json:"source_path,omitempty" yaml:"source_path,omitempty"`
}

// markSettingsFromSource records source for every leaf key of settings.
func markSettingsFromSource(settings map[string]interface{}, prefix string, source ConfigSource, path string, sourceMap map[string]SourceInfo) {
	for key, value := range settings {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			markSettingsFromSource(nested, fullKey, source, path, sourceMap)
			continue
		}
		sourceMap[fullKey] = SourceInfo{Source: source, Path: path}
	}
}

// Settings returns every effective setting, sorted by key, with the layer
// that supplied it.
func Settings() []Setting {
	mu.Lock()
	v := initViper()
	tracked := make(map[string]SourceInfo, len(sources))
	for k, s := range sources {
		tracked[k] = s
	}
	mu.Unlock()

	var out []Setting
	flatten(v.AllSettings(), "", tracked, &out)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func flatten(settings map[string]interface{}, prefix string, tracked map[string]SourceInfo, out *[]Setting) {
	for key, value := range settings {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			flatten(nested, fullKey, tracked, out)
			continue
		}

		info := SourceInfo{Source: SourceDefault, Path: "built-in default"}
		if s, ok := tracked[fullKey]; ok {
			info = s
		}
		if envKey := EnvKey(fullKey); os.Getenv(envKey) != "" {
			info = SourceInfo{Source: SourceEnvironment, Path: envKey}
		}
		*out = append(*out, Setting{Key: fullKey, Value: value, Source: info.Source, SourcePath: info.Path})
	}
}

// EnvKey is the environment variable that overrides key.
func EnvKey(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
