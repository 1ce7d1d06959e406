package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/bellman/internal/llm"
	"github.com/JaimeStill/bellman/internal/prompts"
	"github.com/JaimeStill/bellman/internal/render"
)

// EditEmail applies free-text edit instructions to an existing HTML email
// and returns the complete updated document.
func EditEmail(ctx context.Context, rt *Runtime, currentHTML, subject, instructions string) (string, error) {
	result, err := rt.LLM.Generate(ctx, llm.Request{
		Prompt:            prompts.BuildEditEmail(currentHTML, subject, instructions),
		SystemInstruction: prompts.SystemInstruction,
		Schema:            prompts.HTMLOutputSchema,
		Temperature:       0.2,
		MaxOutputTokens:   8192,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEditFailed, err)
	}

	html, _ := result.Parsed["email_html"].(string)
	if html == "" {
		html = render.ExtractHTML(result.Text)
	}
	if html == "" {
		return "", fmt.Errorf("%w: no HTML document in response", ErrEditFailed)
	}

	rt.Logger.InfoContext(ctx, "email edit complete",
		"html_length", len(html))
	return html, nil
}
