package api

import (
	"github.com/JaimeStill/bellman/internal/config"
	"github.com/JaimeStill/bellman/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Version string
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Agent:     infra.Agent,
			LLM:       infra.LLM,
			Cache:     infra.Cache,
			Profiles:  infra.Profiles,
			Research:  infra.Research,
			Metrics:   infra.Metrics,
			Mailer:    infra.Mailer,
		},
		Version: cfg.Version,
	}
}
