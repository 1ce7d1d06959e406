package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/bellman/pkg/middleware"
	"github.com/JaimeStill/bellman/pkg/openapi"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "BELLMAN_CORS_ENABLED",
	Origins:          "BELLMAN_CORS_ORIGINS",
	AllowedMethods:   "BELLMAN_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "BELLMAN_CORS_ALLOWED_HEADERS",
	AllowCredentials: "BELLMAN_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "BELLMAN_CORS_MAX_AGE",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "BELLMAN_OPENAPI_TITLE",
	Description: "BELLMAN_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, CORS, and OpenAPI metadata settings.
type APIConfig struct {
	BasePath string                `toml:"base_path"`
	CORS     middleware.CORSConfig `toml:"cors"`
	OpenAPI  openapi.Config        `toml:"openapi"`
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}

	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/v1"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("BELLMAN_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
}
