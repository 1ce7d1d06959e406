package mailer

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/bellman/pkg/handlers"
	"github.com/JaimeStill/bellman/pkg/routes"
)

// Handler provides HTTP endpoints for email operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "email"),
	}
}

// Routes returns the route group definition for email endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/email",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/send", Handler: h.Send},
			{Method: "GET", Pattern: "/config", Handler: h.Config},
		},
	}
}

// Send delivers a transactional email via the configured provider.
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	var msg Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if msg.To == "" || msg.Subject == "" {
		handlers.RespondError(w, h.logger, MapHTTPStatus(ErrMissingFields), ErrMissingFields)
		return
	}

	if err := h.sys.Send(r.Context(), msg); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"status":   "sent",
		"provider": "sendgrid",
	})
}

// Config reports whether the provider settings are complete without sending
// a test email.
func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	status := h.sys.Config()
	if status.Missing == nil {
		status.Missing = []string{}
	}
	handlers.RespondJSON(w, http.StatusOK, status)
}
