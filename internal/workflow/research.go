package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/bellman/internal/llm"
	"github.com/JaimeStill/bellman/internal/prompts"
)

// ResearchNode returns a state node that synthesises audience, channel, and
// seasonal insights from model knowledge. When the configured research
// provider returns external results for the offer, their titles and URLs are
// attached to the research output under external_sources.
func ResearchNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		rs, err := extractRunState(s)
		if err != nil {
			return s, fmt.Errorf("research: %w", err)
		}

		start := time.Now()
		result, err := rt.LLM.Generate(ctx, llm.Request{
			Prompt:            prompts.BuildResearch(&rs.Request),
			SystemInstruction: prompts.SystemInstruction,
			Schema:            prompts.ResearchSchema,
			Temperature:       0.3,
		})
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrResearchFailed, err)
		}

		// Unrecoverable JSON degrades to empty research rather than
		// aborting the run.
		insights := result.Parsed
		if insights == nil {
			insights = map[string]any{}
		}
		rs.Research = insights

		results, err := rt.Research.Search(ctx, rs.Request.Objective.Offer)
		if err != nil {
			rt.Logger.WarnContext(ctx, "external research lookup failed",
				"request_id", rs.RequestID,
				"error", err)
		} else if len(results) > 0 {
			sources := make([]any, len(results))
			for i, r := range results {
				sources[i] = map[string]any{"title": r.Title, "url": r.URL}
			}
			rs.Research["external_sources"] = sources
		}

		rs.Timings.ResearchMS = msPtr(ms(start))
		rt.Metrics.RecordPhase("research", time.Since(start).Seconds())

		rt.Logger.InfoContext(ctx, "research node complete",
			"request_id", rs.RequestID,
			"insight_keys", len(rs.Research))

		return s.Set(KeyRunState, *rs), nil
	})
}
