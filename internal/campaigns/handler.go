package campaigns

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/bellman/pkg/handlers"
	"github.com/JaimeStill/bellman/pkg/middleware"
	"github.com/JaimeStill/bellman/pkg/routes"
)

// Handler provides HTTP endpoints for campaign operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "campaigns"),
	}
}

// Routes returns the route group definition for campaign endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/campaigns",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/generate", Handler: h.Generate},
			{Method: "POST", Pattern: "/validate", Handler: h.Validate},
			{Method: "POST", Pattern: "/generate-from-prompt", Handler: h.GenerateFromPrompt},
			{Method: "POST", Pattern: "/edit-email", Handler: h.EditEmail},
		},
	}
}

// validationDetail is the 422 response item for pre-generation errors.
type validationDetail struct {
	Field      string `json:"field"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Generate runs the full multi-phase generation workflow for a structured
// campaign request. Requests that fail pre-generation validation are
// rejected before any model call is made.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestIDFromContext(r.Context())

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnprocessableEntity, err)
		return
	}

	h.logger.InfoContext(r.Context(), "generate campaign",
		"request_id", requestID,
		"campaign", req.CampaignName)

	validation := h.sys.Validate(&req)
	var details []validationDetail
	for _, issue := range validation.Issues {
		if issue.Severity == "error" {
			details = append(details, validationDetail{
				Field:      issue.Field,
				Message:    issue.Message,
				Suggestion: issue.Suggestion,
			})
		}
	}
	if len(details) > 0 {
		handlers.RespondJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": details,
		})
		return
	}

	skipClarify := r.URL.Query().Get("skip_clarify") == "true"

	response, err := h.sys.Generate(r.Context(), &req, requestID, skipClarify)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), PublicError(err))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

// Validate checks a campaign request and returns issues and recommendations
// without generating anything.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnprocessableEntity, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.sys.Validate(&req))
}

type promptRequest struct {
	Prompt       string `json:"prompt"`
	ForceProceed bool   `json:"force_proceed"`
}

// GenerateFromPrompt turns a free-text campaign description into generated
// emails, or returns clarification questions when the description is too
// thin to proceed.
func (h *Handler) GenerateFromPrompt(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestIDFromContext(r.Context())

	var req promptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnprocessableEntity, err)
		return
	}
	if req.Prompt == "" {
		handlers.RespondError(w, h.logger, MapHTTPStatus(ErrMissingPrompt), ErrMissingPrompt)
		return
	}

	h.logger.InfoContext(r.Context(), "generate campaign from prompt",
		"request_id", requestID,
		"prompt_length", len(req.Prompt),
		"force_proceed", req.ForceProceed)

	response, err := h.sys.GenerateFromPrompt(r.Context(), req.Prompt, req.ForceProceed, requestID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), PublicError(err))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

type editRequest struct {
	EmailHTML    string `json:"email_html"`
	Subject      string `json:"subject"`
	Instructions string `json:"instructions"`
}

// EditEmail applies free-text edit instructions to an existing HTML email.
func (h *Handler) EditEmail(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestIDFromContext(r.Context())

	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnprocessableEntity, err)
		return
	}
	if req.EmailHTML == "" || req.Instructions == "" {
		handlers.RespondError(w, h.logger, MapHTTPStatus(ErrMissingEditInput), ErrMissingEditInput)
		return
	}

	h.logger.InfoContext(r.Context(), "edit email",
		"request_id", requestID,
		"html_length", len(req.EmailHTML))

	html, err := h.sys.EditEmail(r.Context(), req.EmailHTML, req.Subject, req.Instructions)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), PublicError(err))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"email_html": html})
}
