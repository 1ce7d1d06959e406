package workflow

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/bellman/internal/campaigns"
	"github.com/JaimeStill/bellman/internal/llm"
	"github.com/JaimeStill/bellman/internal/prompts"
)

// ExecutionNode returns a state node that writes the copy for every email in
// the series using bounded errgroup concurrency. Each goroutine makes its
// own model call and writes to its own index, so no synchronization is
// needed beyond the group wait.
func ExecutionNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		rs, err := extractRunState(s)
		if err != nil {
			return s, fmt.Errorf("execution: %w", err)
		}

		start := time.Now()
		count := rs.Request.Deliverables.NumberOfEmails
		beats := narrativeBeats(rs.Blueprint.NarrativeArc, count)
		assets := make([]campaigns.EmailAsset, count)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workerCount(count))

		for i := range assets {
			g.Go(func() error {
				if gctx.Err() != nil {
					return gctx.Err()
				}

				result, err := rt.LLM.Generate(gctx, llm.Request{
					Prompt:            prompts.BuildExecution(&rs.Request, &rs.Blueprint, i, beats[i]),
					SystemInstruction: prompts.SystemInstruction,
					Schema:            prompts.ExecutionEmailSchema,
					Temperature:       0.7,
				})
				if err != nil {
					return fmt.Errorf("email %d: %w", i+1, err)
				}

				asset, err := decode[campaigns.EmailAsset](result.Parsed)
				if err != nil {
					return fmt.Errorf("email %d: decode response: %w", i+1, err)
				}

				applyAssetDefaults(&asset, i)
				assets[i] = asset
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return s, fmt.Errorf("%w: %w", ErrExecutionFailed, err)
		}

		rs.Assets = assets
		rs.Timings.ExecutionMS = msPtr(ms(start))
		rt.Metrics.RecordPhase("execution", time.Since(start).Seconds())

		rt.Logger.InfoContext(ctx, "execution node complete",
			"request_id", rs.RequestID,
			"email_count", len(assets))

		return s.Set(KeyRunState, *rs), nil
	})
}

// narrativeBeats maps the blueprint arc onto the email series, padding with
// generic beats when the arc is shorter than the series and truncating when
// it is longer.
func narrativeBeats(arc []string, count int) []string {
	beats := make([]string, 0, count)
	beats = append(beats, arc...)
	for i := len(beats); i < count; i++ {
		beats = append(beats, fmt.Sprintf("Email %d", i+1))
	}
	return beats[:count]
}

// applyAssetDefaults fills per-field fallbacks for anything the model
// omitted. The email number is always forced from position so a confused
// model cannot reorder the series.
func applyAssetDefaults(asset *campaigns.EmailAsset, index int) {
	asset.EmailNumber = index + 1
	if asset.EmailName == "" {
		asset.EmailName = fmt.Sprintf("Email %d", index+1)
	}
	if len(asset.SubjectLines) == 0 {
		asset.SubjectLines = []string{fmt.Sprintf("Subject for email %d", index+1)}
	}
	if len(asset.PreviewTextOptions) == 0 {
		asset.PreviewTextOptions = []string{"Preview text"}
	}
	if len(asset.CTAs) == 0 {
		asset.CTAs = []string{"Shop Now"}
	}
}

func workerCount(emailCount int) int {
	return max(min(runtime.NumCPU(), emailCount), 1)
}
