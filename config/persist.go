package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/logger"
)

// UserConfigPath returns ~/.dims/dims.toml.
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "could not determine home directory")
	}
	return filepath.Join(home, UserDir, FileName), nil
}

// Set writes key = value into the user config file, keeping rotating
// backups of the previous contents. The value is stored as a bool or number
// when it parses as one.
func Set(key, value string) error {
	path, err := UserConfigPath()
	if err != nil {
		return err
	}
	return SetInFile(path, key, value)
}

// SetInFile is Set against a specific file.
func SetInFile(path, key, value string) error {
	if !knownKey(key) {
		return errors.WithHint(errors.NewNotFoundError("unknown config key %q", key),
			"run `dims config show` to list the keys")
	}

	settings, err := readTOML(path)
	if err != nil {
		return err
	}
	setNested(settings, strings.Split(key, "."), typed(value))

	// validate the result before touching the file
	v := newFileViper(settings)
	cfg, err := LoadWithViper(v)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrapf(err, "refusing to write %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPermissions); err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Dir(path))
	}
	if err := createBackup(path); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}
	data, err := toml.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	logger.Infow("config updated", logger.FieldFile, path, "key", key)
	Reset()
	return nil
}

func readTOML(path string) (map[string]interface{}, error) {
	settings := make(map[string]interface{})
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return settings, nil
}

func setNested(m map[string]interface{}, path []string, value interface{}) {
	for _, part := range path[:len(path)-1] {
		next, ok := m[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			m[part] = next
		}
		m = next
	}
	m[path[len(path)-1]] = value
}

func typed(value string) interface{} {
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return i
	}
	if strings.Contains(value, ",") {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return value
}

// knownKey accepts leaf keys that have a default.
func knownKey(key string) bool {
	v := newFileViper(nil)
	_, section := v.Get(key).(map[string]interface{})
	return v.IsSet(key) && !section
}

// newFileViper layers settings over the defaults, without environment.
func newFileViper(settings map[string]interface{}) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	setLeaves(v, settings, "")
	return v
}

// createBackup keeps three generations: .back1 is the newest.
func createBackup(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	back1, back2, back3 := path+".back1", path+".back2", path+".back3"
	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		logger.Warnw("failed to delete old backup", logger.FieldFile, back3, logger.FieldError, err)
	}
	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}
	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}
	if err := os.WriteFile(back1, content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}
	return nil
}
