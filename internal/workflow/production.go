package workflow

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/bellman/internal/llm"
	"github.com/JaimeStill/bellman/internal/prompts"
	"github.com/JaimeStill/bellman/internal/render"
)

// ProductionNode returns a state node that renders each email's copy into a
// complete HTML document using bounded errgroup concurrency. When the model
// ignores the JSON envelope, the document is recovered from the raw response
// text instead of failing the run.
func ProductionNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		rs, err := extractRunState(s)
		if err != nil {
			return s, fmt.Errorf("production: %w", err)
		}

		start := time.Now()

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workerCount(len(rs.Assets)))

		for i := range rs.Assets {
			g.Go(func() error {
				if gctx.Err() != nil {
					return gctx.Err()
				}

				result, err := rt.LLM.Generate(gctx, llm.Request{
					Prompt:            prompts.BuildProduction(&rs.Request, &rs.Assets[i]),
					SystemInstruction: prompts.SystemInstruction,
					Schema:            prompts.HTMLOutputSchema,
					Temperature:       0.2,
					MaxOutputTokens:   8192,
				})
				if err != nil {
					return fmt.Errorf("email %d: %w", i+1, err)
				}

				html, _ := result.Parsed["email_html"].(string)
				if html == "" {
					html = render.ExtractHTML(result.Text)
				}
				if html == "" {
					rt.Logger.WarnContext(gctx, "no HTML recovered from production response",
						"request_id", rs.RequestID,
						"email_number", i+1)
				}

				rs.Assets[i].HTML = html
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return s, fmt.Errorf("%w: %w", ErrProductionFailed, err)
		}

		rs.Timings.ProductionMS = msPtr(ms(start))
		rt.Metrics.RecordPhase("production", time.Since(start).Seconds())

		rt.Logger.InfoContext(ctx, "production node complete",
			"request_id", rs.RequestID,
			"email_count", len(rs.Assets))

		return s.Set(KeyRunState, *rs), nil
	})
}
