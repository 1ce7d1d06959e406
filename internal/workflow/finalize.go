package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/bellman/internal/campaigns"
)

// FinalizeNode returns a state node that assembles the terminal response
// from the accumulated run state: a clarification round when questions are
// outstanding, otherwise the completed campaign with blueprint, assets, and
// critique.
func FinalizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		rs, err := extractRunState(s)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		metadata := &campaigns.ResponseMetadata{
			RequestID: rs.RequestID,
			ModelUsed: rt.LLM.Model(),
			Timings:   rs.Timings,
		}

		if rs.NeedsClarification {
			rs.Response = &campaigns.Response{
				Status:                 campaigns.StatusNeedsClarification,
				ClarificationQuestions: rs.Questions,
				Assets:                 []campaigns.EmailAsset{},
				Metadata:               metadata,
			}
		} else {
			blueprint := rs.Blueprint
			critique := rs.Critique
			rs.Response = &campaigns.Response{
				Status:                 campaigns.StatusCompleted,
				ClarificationQuestions: []campaigns.ClarificationQuestion{},
				Blueprint:              &blueprint,
				Assets:                 rs.Assets,
				Critique:               &critique,
				Metadata:               metadata,
			}
		}

		rt.Logger.InfoContext(ctx, "finalize node complete",
			"request_id", rs.RequestID,
			"status", rs.Response.Status)

		return s.Set(KeyRunState, *rs), nil
	})
}
