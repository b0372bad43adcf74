package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFile is the content of ~/.gar/config, keyed by option name.
type ConfigFile struct {
	Path   string
	Values map[string]interface{}
}

// LoadConfig reads the config file at env.ConfigPath. A missing file is not
// an error and yields an empty ConfigFile. Keys may be written with or
// without leading dashes ("host" or "--host"); the dashless form wins when
// both are present. A null value counts as absent.
func LoadConfig(env *Environment, logger *slog.Logger) (*ConfigFile, error) {
	cfg := &ConfigFile{
		Path:   env.ConfigPath(),
		Values: make(map[string]interface{}),
	}

	v := viper.New()
	v.SetFs(env.Fs)
	v.SetConfigFile(cfg.Path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info("config file not found, only command-line options will be used", "path", cfg.Path)
			return cfg, nil
		}
		return nil, &ConfigFormatError{Path: cfg.Path, Err: err}
	}

	for _, key := range v.AllKeys() {
		name := strings.TrimPrefix(key, "--")
		if !isOption(name) {
			logger.Warn("ignoring unknown config key", "path", cfg.Path, "key", key)
			continue
		}
		value := v.Get(key)
		if value == nil {
			logger.Debug("ignoring null config value", "path", cfg.Path, "key", key)
			continue
		}
		if _, seen := cfg.Values[name]; seen && name != key {
			continue
		}
		cfg.Values[name] = value
	}

	logger.Debug("loaded config file", "path", cfg.Path, "keys", len(cfg.Values))
	return cfg, nil
}
