// Package workflow orchestrates multi-phase campaign generation as a state
// graph: clarify → research → strategy → execution → production → critique,
// plus a single-call fast path. Clarification is a discriminated outcome in
// graph state, never an error.
package workflow

import (
	"context"
	"fmt"
	"time"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/bellman/internal/campaigns"
)

// Execute runs the full multi-phase generation workflow for one campaign
// request. It builds the state graph, executes it, and extracts the
// response from the final state. When skipClarify is set the clarification
// phase is bypassed and recorded as zero elapsed time.
func Execute(
	ctx context.Context,
	rt *Runtime,
	req *campaigns.Request,
	requestID string,
	skipClarify bool,
) (*campaigns.Response, error) {
	req.Normalize()
	totalStart := time.Now()

	rt.Logger.InfoContext(ctx, "campaign orchestration started",
		"request_id", requestID,
		"campaign", req.CampaignName)

	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyRunState, RunState{
		Request:     *req,
		RequestID:   requestID,
		SkipClarify: skipClarify,
	})

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		rt.Metrics.RecordRun("full", "error")
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	rs, err := extractRunState(finalState)
	if err != nil {
		return nil, err
	}
	if rs.Response == nil {
		return nil, fmt.Errorf("missing response in final state")
	}

	response := rs.Response
	response.Metadata.Timings.TotalMS = msPtr(ms(totalStart))

	outcome := "completed"
	if response.Status == campaigns.StatusNeedsClarification {
		outcome = "needs_clarification"
	}
	rt.Metrics.RecordRun("full", outcome)

	rt.Logger.InfoContext(ctx, "campaign orchestration complete",
		"request_id", requestID,
		"status", response.Status,
		"total_ms", *response.Metadata.Timings.TotalMS)

	return response, nil
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("bellman-campaign")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("clarify", ClarifyNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("research", ResearchNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("strategy", StrategyNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("execution", ExecutionNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("production", ProductionNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("critique", CritiqueNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("finalize", FinalizeNode(rt)); err != nil {
		return nil, err
	}

	// clarify → finalize (when clarification is needed)
	if err := graph.AddEdge("clarify", "finalize", needsClarification); err != nil {
		return nil, err
	}

	// clarify → research (when the request is complete enough)
	if err := graph.AddEdge("clarify", "research", state.Not(needsClarification)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("research", "strategy", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("strategy", "execution", nil); err != nil {
		return nil, err
	}

	// execution → production (when HTML output was requested)
	if err := graph.AddEdge("execution", "production", wantsHTML); err != nil {
		return nil, err
	}

	// execution → critique (text-only deliverables)
	if err := graph.AddEdge("execution", "critique", state.Not(wantsHTML)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("production", "critique", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("critique", "finalize", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("clarify"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("finalize"); err != nil {
		return nil, err
	}

	return graph, nil
}

func needsClarification(s state.State) bool {
	rs, err := extractRunState(s)
	if err != nil {
		return false
	}
	return rs.NeedsClarification
}

func wantsHTML(s state.State) bool {
	rs, err := extractRunState(s)
	if err != nil {
		return false
	}
	return rs.Request.Deliverables.HTMLRequested()
}
