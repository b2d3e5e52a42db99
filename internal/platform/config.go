package platform

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvStore overrides the preference file location.
const EnvStore = "MACPAD_STORE"

// ConfigFileName is the name of the optional config file in DefaultDir.
const ConfigFileName = "config.yaml"

// FileConfig is the optional on-disk configuration.
type FileConfig struct {
	// Preference file or directory. Defaults to DefaultStorePath.
	StorePath string `yaml:"store_path"`
	// One of debug, info, warn, error. Defaults to info.
	LogLevel string `yaml:"log_level"`
	// Never write the preference file.
	ReadOnly bool `yaml:"read_only"`
}

// DefaultConfigPath returns the config file inside DefaultDir.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// LoadConfig reads path. A missing file yields the zero config; the
// EnvStore variable, when set, wins over store_path.
func LoadConfig(path string) (FileConfig, error) {
	var cfg FileConfig

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", path, err)
		}
	}

	if env := os.Getenv(EnvStore); env != "" {
		cfg.StorePath = env
	}
	cfg.StorePath = expandHome(cfg.StorePath)
	return cfg, nil
}

// Level maps LogLevel to a slog level.
func (c FileConfig) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
