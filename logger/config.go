package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of the environment variables read by ConfigFromEnv:
// OSRF_LOG_LEVEL, OSRF_LOG_FACILITY and OSRF_LOG_FILE.
const EnvPrefix = "OSRF_LOG"

// ErrUnknownFormat is returned by LoadConfig for unsupported file extensions.
var ErrUnknownFormat = errors.New("unknown config file format")

// ConfigFromEnv reads a Config from the environment.
// LEVEL accepts a level name or number and defaults to 4.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "read logging config from environment")
	}
	return cfg, nil
}

// LoadConfig reads a Config from a YAML (.yaml, .yml) or TOML (.toml) file.
// Keys left out of the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read logging config %s", path)
	}
	return ParseConfig(data, filepath.Ext(path))
}

// ParseConfig decodes data in the format named by ext (".yaml", ".yml" or
// ".toml"; the leading dot is optional).
func ParseConfig(data []byte, ext string) (Config, error) {
	cfg := Config{Level: Level(DefaultLevel)}

	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		if len(bytes.TrimSpace(data)) == 0 {
			return cfg, nil
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(err, "parse yaml logging config")
		}
	case "toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, errors.Wrap(err, "parse toml logging config")
		}
	default:
		return Config{}, errors.Wrapf(ErrUnknownFormat, "extension %q", ext)
	}
	return cfg, nil
}
