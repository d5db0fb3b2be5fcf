package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all gallery configuration.
type Config struct {
	Cache   CacheConfig
	Loader  LoaderConfig
	Output  OutputConfig
	Logging LogConfig
}

// CacheConfig holds style cache configuration.
type CacheConfig struct {
	MaxSize int           `envconfig:"STYLE_CACHE_MAX_SIZE" default:"1000"`
	TTL     time.Duration `envconfig:"STYLE_CACHE_TTL" default:"1h"`
}

// LoaderConfig holds template loader configuration.
type LoaderConfig struct {
	MaxAge time.Duration `envconfig:"TEMPLATE_MAX_AGE" default:"2h"`
}

// OutputConfig holds image output configuration.
type OutputConfig struct {
	Dir            string `envconfig:"OUTPUT_DIR" default:"output"`
	SavesPerSecond int    `envconfig:"SAVES_PER_SECOND" default:"0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			MaxSize: 1000,
			TTL:     time.Hour,
		},
		Loader: LoaderConfig{
			MaxAge: 2 * time.Hour,
		},
		Output: OutputConfig{
			Dir:            "output",
			SavesPerSecond: 0,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}

// BatchPreset returns configuration tuned for large batch rendering
// runs: a bigger cache and longer entry lifetime.
func BatchPreset() *Config {
	cfg := Default()
	cfg.Cache.MaxSize = 5000
	cfg.Cache.TTL = 2 * time.Hour
	return cfg
}
