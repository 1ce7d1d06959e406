package api

import (
	"net/http"

	"github.com/JaimeStill/bellman/internal/config"
	"github.com/JaimeStill/bellman/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		domain.Campaigns.Handler().Routes(),
		domain.Mailer.Handler().Routes(),
	)

	mux.Handle("GET /metrics", runtime.Metrics.Handler())
	registerSpec(mux, cfg, runtime)
}
