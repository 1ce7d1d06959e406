package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/bellman/internal/campaigns"
	"github.com/JaimeStill/bellman/internal/rules"
)

// Service implements campaigns.System over the workflow runtime.
type Service struct {
	rt *Runtime
}

// NewSystem creates the campaign domain system from a workflow runtime.
func NewSystem(rt *Runtime) campaigns.System {
	rt.Logger = rt.Logger.With("system", "campaigns")
	return &Service{rt: rt}
}

// Handler returns the HTTP handler for campaign endpoints.
func (s *Service) Handler() *campaigns.Handler {
	return campaigns.NewHandler(s, s.rt.Logger)
}

// Generate runs the full multi-phase workflow for a structured request.
func (s *Service) Generate(ctx context.Context, req *campaigns.Request, requestID string, skipClarify bool) (*campaigns.Response, error) {
	response, err := Execute(ctx, s.rt, req, requestID, skipClarify)
	if err != nil {
		s.rt.Logger.ErrorContext(ctx, "campaign generation failed",
			"request_id", requestID,
			"error", err)
		return nil, fmt.Errorf("%w: %w", campaigns.ErrGenerationFailed, err)
	}
	return response, nil
}

// Validate checks a request against the deterministic rule set and attaches
// actionable recommendations.
func (s *Service) Validate(req *campaigns.Request) *campaigns.ValidationResponse {
	issues := rules.ValidateRequest(req)

	errorCount := 0
	warnCount := 0
	for _, issue := range issues {
		switch issue.Severity {
		case "error":
			errorCount++
		case "warning":
			warnCount++
		}
	}

	var recommendations []string
	if len(issues) == 0 {
		recommendations = append(recommendations, "Request appears complete. Ready to generate.")
	} else {
		if errorCount > 0 {
			recommendations = append(recommendations,
				fmt.Sprintf("Fix %d error(s) before generating to avoid failures.", errorCount))
		}
		if warnCount > 0 {
			recommendations = append(recommendations,
				fmt.Sprintf("Address %d warning(s) to improve output quality.", warnCount))
		}
	}

	return &campaigns.ValidationResponse{
		Valid:           errorCount == 0,
		Issues:          issues,
		Recommendations: recommendations,
	}
}

// GenerateFromPrompt runs the prompt-driven fast path.
func (s *Service) GenerateFromPrompt(ctx context.Context, prompt string, forceProceed bool, requestID string) (*campaigns.PromptResponse, error) {
	response, err := GenerateFromPrompt(ctx, s.rt, prompt, forceProceed, requestID)
	if err != nil {
		s.rt.Logger.ErrorContext(ctx, "prompt generation failed",
			"request_id", requestID,
			"error", err)
		return nil, fmt.Errorf("%w: %w", campaigns.ErrGenerationFailed, err)
	}
	return response, nil
}

// EditEmail applies edit instructions to an existing HTML email.
func (s *Service) EditEmail(ctx context.Context, currentHTML, subject, instructions string) (string, error) {
	html, err := EditEmail(ctx, s.rt, currentHTML, subject, instructions)
	if err != nil {
		s.rt.Logger.ErrorContext(ctx, "email edit failed", "error", err)
		return "", fmt.Errorf("%w: %w", campaigns.ErrGenerationFailed, err)
	}
	return html, nil
}
