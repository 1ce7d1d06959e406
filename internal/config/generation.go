package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvGenerationMaxRetries      = "BELLMAN_GENERATION_MAX_RETRIES"
	EnvGenerationInitialBackoff  = "BELLMAN_GENERATION_INITIAL_BACKOFF"
	EnvGenerationMaxBackoff      = "BELLMAN_GENERATION_MAX_BACKOFF"
	EnvGenerationCacheTTL        = "BELLMAN_GENERATION_CACHE_TTL"
	EnvGenerationCompanyDataPath = "BELLMAN_GENERATION_COMPANY_DATA_PATH"
)

// GenerationConfig holds model retry, result cache, and enrichment settings.
type GenerationConfig struct {
	MaxRetries      int    `toml:"max_retries"`
	InitialBackoff  string `toml:"initial_backoff"`
	MaxBackoff      string `toml:"max_backoff"`
	CacheTTL        string `toml:"cache_ttl"`
	CompanyDataPath string `toml:"company_data_path"`
}

// InitialBackoffDuration returns InitialBackoff as a time.Duration.
func (c *GenerationConfig) InitialBackoffDuration() time.Duration {
	d, _ := time.ParseDuration(c.InitialBackoff)
	return d
}

// MaxBackoffDuration returns MaxBackoff as a time.Duration.
func (c *GenerationConfig) MaxBackoffDuration() time.Duration {
	d, _ := time.ParseDuration(c.MaxBackoff)
	return d
}

// CacheTTLDuration returns CacheTTL as a time.Duration.
func (c *GenerationConfig) CacheTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.CacheTTL)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *GenerationConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *GenerationConfig) Merge(overlay *GenerationConfig) {
	if overlay.MaxRetries != 0 {
		c.MaxRetries = overlay.MaxRetries
	}
	if overlay.InitialBackoff != "" {
		c.InitialBackoff = overlay.InitialBackoff
	}
	if overlay.MaxBackoff != "" {
		c.MaxBackoff = overlay.MaxBackoff
	}
	if overlay.CacheTTL != "" {
		c.CacheTTL = overlay.CacheTTL
	}
	if overlay.CompanyDataPath != "" {
		c.CompanyDataPath = overlay.CompanyDataPath
	}
}

func (c *GenerationConfig) loadDefaults() {
	if c.MaxRetries == 0 {
		c.MaxRetries = 4
	}
	if c.InitialBackoff == "" {
		c.InitialBackoff = "1s"
	}
	if c.MaxBackoff == "" {
		c.MaxBackoff = "30s"
	}
	if c.CacheTTL == "" {
		c.CacheTTL = "15m"
	}
	if c.CompanyDataPath == "" {
		c.CompanyDataPath = "hubspot_data.json"
	}
}

func (c *GenerationConfig) loadEnv() {
	if v := os.Getenv(EnvGenerationMaxRetries); v != "" {
		if retries, err := strconv.Atoi(v); err == nil {
			c.MaxRetries = retries
		}
	}
	if v := os.Getenv(EnvGenerationInitialBackoff); v != "" {
		c.InitialBackoff = v
	}
	if v := os.Getenv(EnvGenerationMaxBackoff); v != "" {
		c.MaxBackoff = v
	}
	if v := os.Getenv(EnvGenerationCacheTTL); v != "" {
		c.CacheTTL = v
	}
	if v := os.Getenv(EnvGenerationCompanyDataPath); v != "" {
		c.CompanyDataPath = v
	}
}

func (c *GenerationConfig) validate() error {
	if c.MaxRetries < 1 {
		return fmt.Errorf("invalid max_retries: %d", c.MaxRetries)
	}
	if _, err := time.ParseDuration(c.InitialBackoff); err != nil {
		return fmt.Errorf("invalid initial_backoff: %w", err)
	}
	if _, err := time.ParseDuration(c.MaxBackoff); err != nil {
		return fmt.Errorf("invalid max_backoff: %w", err)
	}
	if _, err := time.ParseDuration(c.CacheTTL); err != nil {
		return fmt.Errorf("invalid cache_ttl: %w", err)
	}
	return nil
}
