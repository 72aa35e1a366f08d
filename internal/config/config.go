// Package config resolves runtime settings from defaults, an optional YAML
// file and TIMETRACKER_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/timetracker/internal/util"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DataFile     string        `yaml:"file"`
	TickInterval time.Duration `yaml:"tick_interval"`
	Theme        string        `yaml:"theme"`
	ReportsDir   string        `yaml:"reports_dir"`
	LogFile      string        `yaml:"log_file"`
}

func Default() Config {
	return Config{
		DataFile:     DefaultDataFile,
		TickInterval: DefaultTickInterval,
		Theme:        "default",
		ReportsDir:   util.ReportsDir(AppName),
	}
}

// DefaultPath is where Load looks when no explicit file is given.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Load reads path (a missing file is fine) and applies env overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.DataFile = getEnv("TIMETRACKER_FILE", cfg.DataFile)
	cfg.Theme = getEnv("TIMETRACKER_THEME", cfg.Theme)
	cfg.ReportsDir = getEnv("TIMETRACKER_REPORTS_DIR", cfg.ReportsDir)
	cfg.LogFile = getEnv("TIMETRACKER_LOG", cfg.LogFile)
	cfg.TickInterval = getEnvDuration("TIMETRACKER_TICK", cfg.TickInterval)

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("config: data file must not be empty")
	}
	if c.TickInterval < MinTickInterval {
		return fmt.Errorf("config: tick interval %s is below %s", c.TickInterval, MinTickInterval)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		util.LogError("ignoring "+key, err)
		return fallback
	}
	return parsed
}
