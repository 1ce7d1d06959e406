// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, model client, caching, metrics, email)
// that domain systems require.
package infrastructure

import (
	"log/slog"
	"os"
	"time"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/JaimeStill/bellman/internal/cache"
	"github.com/JaimeStill/bellman/internal/campaigns"
	"github.com/JaimeStill/bellman/internal/config"
	"github.com/JaimeStill/bellman/internal/llm"
	"github.com/JaimeStill/bellman/internal/mailer"
	"github.com/JaimeStill/bellman/internal/metrics"
	"github.com/JaimeStill/bellman/internal/profile"
	"github.com/JaimeStill/bellman/internal/research"
	"github.com/JaimeStill/bellman/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, model access, caching, metrics, and email delivery.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Agent     gaconfig.AgentConfig
	LLM       llm.Client
	Cache     *cache.Cache[campaigns.PromptResponse]
	Profiles  *profile.Store
	Research  research.Provider
	Metrics   *metrics.Metrics
	Mailer    mailer.System
}

// New creates an Infrastructure from the application configuration.
// All systems initialize eagerly; none hold external connections until used.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	m := metrics.New()

	policy := llm.Policy{
		MaxAttempts:    cfg.Generation.MaxRetries,
		InitialBackoff: cfg.Generation.InitialBackoffDuration(),
		MaxBackoff:     cfg.Generation.MaxBackoffDuration(),
	}
	client := llm.NewAgentClient(cfg.Agent, policy, logger, m)

	ttl := cfg.Generation.CacheTTLDuration()
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	mailSystem := mailer.NewSystem(mailer.Settings{
		APIKey:  cfg.Email.APIKey(),
		From:    cfg.Email.From,
		ReplyTo: cfg.Email.ReplyTo,
	}, logger)

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Agent:     cfg.Agent,
		LLM:       client,
		Cache:     cache.New[campaigns.PromptResponse](ttl),
		Profiles:  profile.NewStore(cfg.Generation.CompanyDataPath, logger),
		Research:  &research.NoOp{Logger: logger},
		Metrics:   m,
		Mailer:    mailSystem,
	}, nil
}

// Start registers infrastructure systems with the lifecycle coordinator.
// No subsystem holds long-lived external connections, so startup completes
// immediately once hooks are registered.
func (i *Infrastructure) Start() error {
	i.Lifecycle.OnStartup(func() {
		i.Logger.Info("infrastructure ready", "model", i.LLM.Model())
	})
	return nil
}
