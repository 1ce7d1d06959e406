package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/bellman/internal/campaigns"
	"github.com/JaimeStill/bellman/internal/llm"
	"github.com/JaimeStill/bellman/internal/prompts"
)

type clarifyResponse struct {
	NeedsClarification bool                              `json:"needs_clarification"`
	Questions          []campaigns.ClarificationQuestion `json:"questions"`
}

// ClarifyNode returns a state node that checks the request for missing or
// ambiguous critical fields. When the caller opted out of clarification, the
// phase is recorded as zero elapsed time and no model call is made. A
// clarification outcome routes the graph straight to finalize; it is never
// an error.
func ClarifyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		rs, err := extractRunState(s)
		if err != nil {
			return s, fmt.Errorf("clarify: %w", err)
		}

		if rs.SkipClarify {
			rs.Timings.ClarifyMS = msPtr(0.0)
			rt.Logger.InfoContext(ctx, "clarify node skipped",
				"request_id", rs.RequestID)
			return s.Set(KeyRunState, *rs), nil
		}

		start := time.Now()
		result, err := rt.LLM.Generate(ctx, llm.Request{
			Prompt:            prompts.BuildClarify(&rs.Request),
			SystemInstruction: prompts.SystemInstruction,
			Schema:            prompts.ClarifySchema,
			Temperature:       0.1,
		})
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrClarifyFailed, err)
		}

		// Unrecoverable JSON degrades to the defaults (no clarification
		// needed) rather than aborting the run.
		var parsed clarifyResponse
		if result.Parsed != nil {
			parsed, err = decode[clarifyResponse](result.Parsed)
			if err != nil {
				return s, fmt.Errorf("%w: %w", ErrClarifyFailed, err)
			}
		}

		rs.NeedsClarification = parsed.NeedsClarification
		rs.Questions = parsed.Questions
		rs.Timings.ClarifyMS = msPtr(ms(start))
		rt.Metrics.RecordPhase("clarify", time.Since(start).Seconds())

		rt.Logger.InfoContext(ctx, "clarify node complete",
			"request_id", rs.RequestID,
			"needs_clarification", rs.NeedsClarification,
			"question_count", len(rs.Questions))

		return s.Set(KeyRunState, *rs), nil
	})
}
