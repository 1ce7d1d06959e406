// Package llm provides the text-generation client used by the campaign
// pipeline: a single-method interface over go-agents with retry handling for
// transient provider failures and best-effort JSON recovery.
//
// Logging is metadata only. Prompt bodies and provider credentials are never
// written to the log.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/JaimeStill/bellman/internal/metrics"
	"github.com/JaimeStill/bellman/pkg/formatting"
)

// ErrEmptyResponse is returned when the provider responds with no content.
var ErrEmptyResponse = errors.New("model returned empty response")

// Request describes one generation call.
type Request struct {
	Prompt            string
	SystemInstruction string
	Schema            map[string]any
	Temperature       float64
	MaxOutputTokens   int
}

// Result is the outcome of one generation call. Parsed is nil when the
// response could not be recovered as a JSON object.
type Result struct {
	Text      string
	Parsed    map[string]any
	Model     string
	LatencyMS float64
}

// Client is the generation interface consumed by the pipeline.
type Client interface {
	Generate(ctx context.Context, req Request) (*Result, error)
	Model() string
}

// AgentClient is the go-agents backed Client implementation. Each call
// constructs a fresh agent from a per-request copy of the base config so
// temperature and token budget never leak between calls.
type AgentClient struct {
	base    gaconfig.AgentConfig
	policy  Policy
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewAgentClient creates an AgentClient over a finalized agent config.
func NewAgentClient(base gaconfig.AgentConfig, policy Policy, logger *slog.Logger, m *metrics.Metrics) *AgentClient {
	return &AgentClient{
		base:    base,
		policy:  policy,
		logger:  logger.With("system", "llm"),
		metrics: m,
	}
}

// Model returns the configured model name.
func (c *AgentClient) Model() string {
	if c.base.Model == nil {
		return ""
	}
	return c.base.Model.Name
}

// Generate performs one model call with retry on transient failures and
// best-effort JSON recovery of the response.
func (c *AgentClient) Generate(ctx context.Context, req Request) (*Result, error) {
	cfg := c.callConfig(req)
	prompt := composePrompt(req)
	start := time.Now()

	var content string
	err := c.policy.Do(ctx, func(attempt int, retryErr error) {
		c.metrics.RecordLLMRetry()
		c.logger.WarnContext(ctx, "retrying model call after transient failure",
			"attempt", attempt,
			"error", retryErr)
	}, func() error {
		a, err := agent.New(cfg)
		if err != nil {
			return fmt.Errorf("create agent: %w", err)
		}
		resp, err := a.Chat(ctx, prompt)
		if err != nil {
			return fmt.Errorf("chat call: %w", err)
		}
		content = resp.Content()
		return nil
	})
	if err != nil {
		c.metrics.RecordLLMCall("error")
		return nil, err
	}
	if content == "" {
		c.metrics.RecordLLMCall("error")
		return nil, ErrEmptyResponse
	}
	c.metrics.RecordLLMCall("success")

	latency := float64(time.Since(start).Microseconds()) / 1000

	result := &Result{
		Text:      content,
		Model:     c.Model(),
		LatencyMS: latency,
	}
	if req.Schema != nil {
		parsed, err := formatting.Parse[map[string]any](content)
		if err != nil {
			c.logger.WarnContext(ctx, "response is not recoverable JSON",
				"response_length", len(content))
		} else {
			result.Parsed = parsed
		}
	}

	c.logger.InfoContext(ctx, "model call complete",
		"model", result.Model,
		"prompt_length", len(prompt),
		"response_length", len(content),
		"latency_ms", latency)
	return result, nil
}

// callConfig copies the base config and applies per-request sampling options.
func (c *AgentClient) callConfig(req Request) *gaconfig.AgentConfig {
	cfg := c.base
	if cfg.Provider != nil {
		provider := *cfg.Provider
		options := make(map[string]any, len(provider.Options)+2)
		for k, v := range provider.Options {
			options[k] = v
		}
		options["temperature"] = req.Temperature
		if req.MaxOutputTokens > 0 {
			options["max_tokens"] = req.MaxOutputTokens
		}
		provider.Options = options
		cfg.Provider = &provider
	}
	return &cfg
}

func composePrompt(req Request) string {
	prompt := req.Prompt
	if req.SystemInstruction != "" {
		prompt = req.SystemInstruction + "\n\n" + prompt
	}
	if req.Schema != nil {
		if schema, err := json.Marshal(req.Schema); err == nil {
			prompt += "\n\nRespond with a single JSON object that conforms to this JSON schema:\n" + string(schema)
		}
	}
	return prompt
}
