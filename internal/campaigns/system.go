package campaigns

import "context"

// System defines the public contract for campaign domain operations.
type System interface {
	Handler() *Handler

	Generate(ctx context.Context, req *Request, requestID string, skipClarify bool) (*Response, error)
	Validate(req *Request) *ValidationResponse
	GenerateFromPrompt(ctx context.Context, prompt string, forceProceed bool, requestID string) (*PromptResponse, error)
	EditEmail(ctx context.Context, currentHTML, subject, instructions string) (string, error)
}
