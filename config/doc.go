// Package config provides 12-factor configuration for the styles gallery.
//
// Configuration is loaded from environment variables with sensible defaults.
//
// Configuration Sections:
//   - Cache: style cache capacity and entry lifetime
//   - Loader: template loader housekeeping
//   - Output: default image output directory and save throttling
//   - Logging: log level and output format
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Caching up to %d styles\n", cfg.Cache.MaxSize)
package config
