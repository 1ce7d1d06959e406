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

// StrategyNode returns a state node that produces the campaign blueprint:
// the single angle, core narrative, ordered narrative arc, and KPI mapping
// that every downstream email draws from.
func StrategyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		rs, err := extractRunState(s)
		if err != nil {
			return s, fmt.Errorf("strategy: %w", err)
		}

		start := time.Now()
		result, err := rt.LLM.Generate(ctx, llm.Request{
			Prompt:            prompts.BuildStrategy(&rs.Request, rs.Research),
			SystemInstruction: prompts.SystemInstruction,
			Schema:            prompts.StrategySchema,
			Temperature:       0.5,
		})
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrStrategyFailed, err)
		}

		// Unrecoverable JSON degrades to an empty blueprint rather than
		// aborting the run.
		var blueprint campaigns.Blueprint
		if result.Parsed != nil {
			blueprint, err = decode[campaigns.Blueprint](result.Parsed)
			if err != nil {
				return s, fmt.Errorf("%w: %w", ErrStrategyFailed, err)
			}
		}

		rs.Blueprint = blueprint
		rs.Timings.StrategyMS = msPtr(ms(start))
		rt.Metrics.RecordPhase("strategy", time.Since(start).Seconds())

		rt.Logger.InfoContext(ctx, "strategy node complete",
			"request_id", rs.RequestID,
			"arc_beats", len(blueprint.NarrativeArc))

		return s.Set(KeyRunState, *rs), nil
	})
}
