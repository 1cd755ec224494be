// Package config loads the settings shared by the tsa command and the demo.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. TSA_LOG_LEVEL.
const EnvPrefix = "TSA"

// Config holds all configuration.
type Config struct {
	Log      LogConfig  `yaml:"log" envconfig:"LOG"`
	Data     DataConfig `yaml:"data" envconfig:"DATA"`
	Datasets []Dataset  `yaml:"datasets" ignored:"true" validate:"dive"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json console"`
}

// DataConfig holds loading defaults applied to every dataset.
type DataConfig struct {
	DateColumn string `yaml:"date_column" envconfig:"DATE_COLUMN"`
	DateFormat string `yaml:"date_format" envconfig:"DATE_FORMAT"`
	WeekEnd    string `yaml:"week_end" envconfig:"WEEK_END" validate:"oneof=sunday monday tuesday wednesday thursday friday saturday"`
	Workers    int    `yaml:"workers" envconfig:"WORKERS" validate:"min=1,max=64"`
	DropNulls  bool   `yaml:"drop_nulls" envconfig:"DROP_NULLS"`
}

// Dataset names one input file.
type Dataset struct {
	Name       string   `yaml:"name" validate:"required"`
	Path       string   `yaml:"path" validate:"required"`
	Sheet      string   `yaml:"sheet"`
	DateColumn string   `yaml:"date_column"`
	DateFormat string   `yaml:"date_format"`
	Fields     []string `yaml:"fields"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Data: DataConfig{
			WeekEnd:   "sunday",
			Workers:   4,
			DropNulls: true,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is not empty), a .env file and TSA_* environment variables, in that
// order of increasing priority. Relative dataset paths are resolved against
// the directory of the YAML file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if err := loadEnvFile(path); err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		base := filepath.Dir(path)
		for i := range cfg.Datasets {
			if p := cfg.Datasets[i].Path; p != "" && !filepath.IsAbs(p) {
				cfg.Datasets[i].Path = filepath.Join(base, p)
			}
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	cfg.Data.WeekEnd = strings.ToLower(cfg.Data.WeekEnd)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks field constraints and dataset name uniqueness.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(c.Datasets))
	for _, ds := range c.Datasets {
		if _, dup := seen[ds.Name]; dup {
			return fmt.Errorf("duplicate dataset name %q", ds.Name)
		}
		seen[ds.Name] = struct{}{}
	}
	return nil
}

// Dataset returns the dataset called name.
func (c *Config) Dataset(name string) (Dataset, bool) {
	for _, ds := range c.Datasets {
		if ds.Name == name {
			return ds, true
		}
	}
	return Dataset{}, false
}

// Weekday returns WeekEnd as a time.Weekday.
func (d DataConfig) Weekday() time.Weekday {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(wd.String(), d.WeekEnd) {
			return wd
		}
	}
	return time.Sunday
}

// loadEnvFile loads the first .env found next to the config file or in the
// working directory. Variables already set are not overridden.
func loadEnvFile(configPath string) error {
	paths := []string{".env"}
	if configPath != "" {
		paths = append([]string{filepath.Join(filepath.Dir(configPath), ".env")}, paths...)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err != nil {
				return fmt.Errorf("load %s: %w", p, err)
			}
			return nil
		}
	}
	return nil
}
