package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/bellman/internal/campaigns"
	"github.com/JaimeStill/bellman/internal/llm"
	"github.com/JaimeStill/bellman/internal/prompts"
	"github.com/JaimeStill/bellman/internal/rules"
)

const defaultCritiqueScore = 70

// CritiqueNode returns a state node that reviews the generated campaign.
// The model critique is merged with deterministic rule checks; each rule
// issue deducts three points from the model score, floored at zero.
func CritiqueNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		rs, err := extractRunState(s)
		if err != nil {
			return s, fmt.Errorf("critique: %w", err)
		}

		start := time.Now()
		result, err := rt.LLM.Generate(ctx, llm.Request{
			Prompt:            prompts.BuildCritique(&rs.Request, &rs.Blueprint, rs.Assets),
			SystemInstruction: prompts.SystemInstruction,
			Schema:            prompts.CritiqueSchema,
			Temperature:       0.2,
		})
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrCritiqueFailed, err)
		}

		critique, err := decode[campaigns.CritiqueResult](result.Parsed)
		if err != nil {
			return s, fmt.Errorf("%w: decode response: %w", ErrCritiqueFailed, err)
		}
		if _, ok := result.Parsed["score"]; !ok {
			critique.Score = defaultCritiqueScore
		}

		ruleFindings := rules.CheckResult{Passed: true}
		for _, asset := range rs.Assets {
			found := rules.RunEmailRules(&rs.Request, asset)
			ruleFindings.Issues = append(ruleFindings.Issues, found.Issues...)
			ruleFindings.RiskFlags = append(ruleFindings.RiskFlags, found.RiskFlags...)
			ruleFindings.Fixes = append(ruleFindings.Fixes, found.Fixes...)
		}

		critique.Issues = append(critique.Issues, ruleFindings.Issues...)
		critique.Fixes = append(critique.Fixes, ruleFindings.Fixes...)
		critique.RiskFlags = append(critique.RiskFlags, ruleFindings.RiskFlags...)
		critique.Score = max(0, critique.Score-3*len(ruleFindings.Issues))

		rs.Critique = critique
		rs.Timings.CritiqueMS = msPtr(ms(start))
		rt.Metrics.RecordPhase("critique", time.Since(start).Seconds())

		rt.Logger.InfoContext(ctx, "critique node complete",
			"request_id", rs.RequestID,
			"score", critique.Score,
			"rule_issues", len(ruleFindings.Issues))

		return s.Set(KeyRunState, *rs), nil
	})
}
