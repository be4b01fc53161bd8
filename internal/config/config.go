package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// App holds all configuration for dpscalc.
type App struct {
	LogLevel string `yaml:"log_level" env:"DPSCALC_LOG_LEVEL"`

	// Database backs the build store (save, list, -db).
	Database DatabaseConfig `yaml:"database"`

	Solver     Solver     `yaml:"solver"`
	Prediction Prediction `yaml:"prediction"`

	// BaselineCacheSize bounds memoized baseline DPS entries.
	BaselineCacheSize int `yaml:"baseline_cache_size"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`

	// URL, when set, wins over the individual fields.
	URL string `yaml:"url" env:"DPSCALC_DATABASE_DSN"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Solver tunes the equivalency search.
type Solver struct {
	MaxIterations    int     `yaml:"max_iterations"`
	Tolerance        float64 `yaml:"tolerance"`         // percentage points
	UnboundedCeiling float64 `yaml:"unbounded_ceiling"` // search ceiling for uncapped stats
}

// Prediction overrides the prediction increment menus. Empty lists keep the built-in menus.
type Prediction struct {
	FlatAttack []float64 `yaml:"flat_attack"`
	MainStat   []float64 `yaml:"main_stat"`
	Percent    []float64 `yaml:"percent"`
}

// DefaultApp returns App config with sensible defaults.
func DefaultApp() App {
	return App{
		LogLevel: "info",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "dpscalc",
			Password: "dpscalc",
			DBName:   "dpscalc",
			SSLMode:  "disable",
		},
		Solver: Solver{
			MaxIterations:    50,
			Tolerance:        0.01,
			UnboundedCeiling: 1e9,
		},
		BaselineCacheSize: 256,
	}
}

// LoadApp loads config from a YAML file and then applies environment overrides.
// If the file doesn't exist, defaults are used.
func LoadApp(path string) (App, error) {
	cfg := DefaultApp()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
