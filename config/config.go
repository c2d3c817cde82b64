package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents cache settings loadable from a YAML file, for
// applications that embed a cache and want its TTL configurable
// without a recompile.
type Config struct {
	Cache CacheConfig `yaml:"cache"`
}

// CacheConfig contains cache-related configuration
type CacheConfig struct {
	// TTL is a duration string such as "30m" or "1h30m". Empty means
	// entries never expire.
	TTL string `yaml:"ttl"`
}

// Load loads configuration from a YAML file
func Load(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	return &config, nil
}

// CacheTTL parses and returns the cache TTL duration. An empty TTL
// yields 0, the no-expiration value expected by simplecache.New.
func (c *Config) CacheTTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Cache.TTL)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Cache.TTL == "" {
		return nil
	}

	ttl, err := c.CacheTTL()
	if err != nil {
		return fmt.Errorf("invalid cache TTL format: %w", err)
	}
	if ttl < 0 {
		return fmt.Errorf("cache TTL must not be negative, got: %s", c.Cache.TTL)
	}

	return nil
}
