package workflow

import (
	"log/slog"

	"github.com/JaimeStill/bellman/internal/cache"
	"github.com/JaimeStill/bellman/internal/campaigns"
	"github.com/JaimeStill/bellman/internal/llm"
	"github.com/JaimeStill/bellman/internal/metrics"
	"github.com/JaimeStill/bellman/internal/profile"
	"github.com/JaimeStill/bellman/internal/research"
)

// Runtime bundles the dependencies that workflow nodes require. It is
// constructed by higher-level composition code from Infrastructure systems.
type Runtime struct {
	LLM      llm.Client
	Research research.Provider
	Profiles *profile.Store
	Cache    *cache.Cache[campaigns.PromptResponse]
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}
