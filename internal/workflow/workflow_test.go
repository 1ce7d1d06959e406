package workflow_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/JaimeStill/bellman/internal/cache"
	"github.com/JaimeStill/bellman/internal/campaigns"
	"github.com/JaimeStill/bellman/internal/llm"
	"github.com/JaimeStill/bellman/internal/metrics"
	"github.com/JaimeStill/bellman/internal/research"
	"github.com/JaimeStill/bellman/internal/workflow"
)

// mockClient scripts model responses per pipeline phase, identified by
// distinctive prompt text. It is safe for the concurrent execution and
// production phases.
type mockClient struct {
	mu       sync.Mutex
	calls    []string
	prompts  []string
	handlers map[string]func(req llm.Request) (*llm.Result, error)
}

func newMockClient() *mockClient {
	return &mockClient{handlers: make(map[string]func(req llm.Request) (*llm.Result, error))}
}

func (m *mockClient) on(phase string, parsed map[string]any) {
	m.handlers[phase] = func(req llm.Request) (*llm.Result, error) {
		return &llm.Result{Parsed: parsed, Model: "mock-model"}, nil
	}
}

func (m *mockClient) onErr(phase string, err error) {
	m.handlers[phase] = func(req llm.Request) (*llm.Result, error) {
		return nil, err
	}
}

func (m *mockClient) Generate(ctx context.Context, req llm.Request) (*llm.Result, error) {
	phase := classifyPrompt(req.Prompt)
	m.mu.Lock()
	m.calls = append(m.calls, phase)
	m.prompts = append(m.prompts, req.Prompt)
	m.mu.Unlock()

	handler, ok := m.handlers[phase]
	if !ok {
		return nil, fmt.Errorf("no scripted response for phase %s", phase)
	}
	return handler(req)
}

func (m *mockClient) Model() string { return "mock-model" }

func (m *mockClient) count(phase string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c == phase {
			n++
		}
	}
	return n
}

func (m *mockClient) promptsFor(phase string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for i, c := range m.calls {
		if c == phase {
			out = append(out, m.prompts[i])
		}
	}
	return out
}

func classifyPrompt(prompt string) string {
	switch {
	case strings.Contains(prompt, "Potentially missing fields detected"):
		return "clarify"
	case strings.Contains(prompt, "knowledge-based research"):
		return "research"
	case strings.Contains(prompt, "comprehensive campaign strategy"):
		return "strategy"
	case strings.Contains(prompt, "Write email #"):
		return "execution"
	case strings.Contains(prompt, "expert HTML email developer"):
		return "production"
	case strings.Contains(prompt, "quality-assurance reviewer"):
		return "critique"
	case strings.Contains(prompt, "editing an existing HTML email"):
		return "edit"
	case strings.Contains(prompt, "Generate all"):
		return "rapid"
	case strings.Contains(prompt, `"""`):
		return "parse"
	default:
		return "unknown"
	}
}

func testRuntime(client llm.Client) *workflow.Runtime {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &workflow.Runtime{
		LLM:      client,
		Research: &research.NoOp{Logger: logger},
		Cache:    cache.New[campaigns.PromptResponse](time.Minute),
		Metrics:  metrics.New(),
		Logger:   logger,
	}
}

func testRequest(emails int) *campaigns.Request {
	return &campaigns.Request{
		CampaignName: "Summer Launch",
		Brand: campaigns.BrandContext{
			BrandName:       "Acme",
			VoiceGuidelines: "Warm and direct without being pushy.",
		},
		Objective: campaigns.Objective{
			PrimaryKPI:     campaigns.KPIRevenue,
			TargetAudience: "Returning customers",
			Offer:          "20% off all summer apparel",
			GeoScope:       "Nordics",
			Language:       "English",
		},
		Channels:     []campaigns.Channel{campaigns.ChannelEmail},
		Deliverables: campaigns.Deliverables{NumberOfEmails: emails},
	}
}

func scriptHappyPath(client *mockClient) {
	client.on("clarify", map[string]any{
		"needs_clarification": false,
		"questions":           []any{},
	})
	client.on("research", map[string]any{
		"audience_insights": []any{"Customers respond to early access"},
	})
	client.on("strategy", map[string]any{
		"campaign_angle": "Early access for loyal customers",
		"core_narrative": "Reward loyalty before the public sale",
		"narrative_arc":  []any{"Announce the offer"},
	})
	client.on("execution", map[string]any{
		"email_name":           "Announcement",
		"subject_lines":        []any{"Your early access starts now"},
		"preview_text_options": []any{"A quiet heads-up before the rush"},
		"body_text":            "Early access is open for returning customers.",
		"ctas":                 []any{"Shop Early Access"},
		"send_timing":          "Day 1",
	})
	client.on("production", map[string]any{
		"email_html": "<!DOCTYPE html><html><body>rendered</body></html>",
	})
	client.on("critique", map[string]any{
		"score":          88,
		"issues":         []any{},
		"fixes":          []any{},
		"risk_flags":     []any{},
		"llm_commentary": "Solid campaign.",
	})
}

func TestExecute(t *testing.T) {
	t.Run("full pipeline produces completed campaign", func(t *testing.T) {
		client := newMockClient()
		scriptHappyPath(client)
		rt := testRuntime(client)

		resp, err := workflow.Execute(context.Background(), rt, testRequest(2), "req-1", false)
		if err != nil {
			t.Fatalf("Execute error: %v", err)
		}

		if resp.Status != campaigns.StatusCompleted {
			t.Errorf("status = %s, want completed", resp.Status)
		}
		if len(resp.Assets) != 2 {
			t.Fatalf("assets = %d, want 2", len(resp.Assets))
		}
		for i, asset := range resp.Assets {
			if asset.EmailNumber != i+1 {
				t.Errorf("asset %d email_number = %d, want %d", i, asset.EmailNumber, i+1)
			}
			if !strings.Contains(asset.HTML, "<!DOCTYPE html>") {
				t.Errorf("asset %d missing rendered HTML", i)
			}
		}
		if resp.Blueprint == nil || resp.Blueprint.CampaignAngle != "Early access for loyal customers" {
			t.Error("blueprint not carried into response")
		}
		if resp.Critique == nil || resp.Critique.Score != 88 {
			t.Errorf("critique = %+v, want score 88", resp.Critique)
		}
		if resp.Metadata == nil || resp.Metadata.ModelUsed != "mock-model" {
			t.Error("metadata model not recorded")
		}
		if resp.Metadata.Timings.TotalMS == nil || resp.Metadata.Timings.ClarifyMS == nil {
			t.Error("phase timings not recorded")
		}
		if got := client.count("production"); got != 2 {
			t.Errorf("production calls = %d, want one per email", got)
		}
	})

	t.Run("short narrative arc pads beats per email", func(t *testing.T) {
		client := newMockClient()
		scriptHappyPath(client)
		rt := testRuntime(client)

		if _, err := workflow.Execute(context.Background(), rt, testRequest(2), "req-2", false); err != nil {
			t.Fatalf("Execute error: %v", err)
		}

		prompts := client.promptsFor("execution")
		if len(prompts) != 2 {
			t.Fatalf("execution calls = %d, want 2", len(prompts))
		}
		joined := strings.Join(prompts, "\n===\n")
		if !strings.Contains(joined, "Announce the offer") {
			t.Error("first beat from the arc not used")
		}
		if !strings.Contains(joined, "Email 2") {
			t.Error("padded beat for email 2 not used")
		}
	})

	t.Run("clarifying outcome with empty questions still short-circuits", func(t *testing.T) {
		client := newMockClient()
		client.on("clarify", map[string]any{
			"needs_clarification": true,
			"questions":           []any{},
		})
		rt := testRuntime(client)

		resp, err := workflow.Execute(context.Background(), rt, testRequest(1), "req-21", false)
		if err != nil {
			t.Fatalf("Execute error: %v", err)
		}
		if resp.Status != campaigns.StatusNeedsClarification {
			t.Errorf("status = %s, want needs_clarification despite empty questions", resp.Status)
		}
		if client.count("research") != 0 {
			t.Error("pipeline proceeded past a clarifying outcome")
		}
	})

	t.Run("clarification short-circuits to finalize", func(t *testing.T) {
		client := newMockClient()
		client.on("clarify", map[string]any{
			"needs_clarification": true,
			"questions": []any{
				map[string]any{
					"field":      "objective.offer",
					"question":   "What is the concrete offer?",
					"why_needed": "Copy cannot be written without it",
				},
			},
		})
		rt := testRuntime(client)

		resp, err := workflow.Execute(context.Background(), rt, testRequest(2), "req-3", false)
		if err != nil {
			t.Fatalf("Execute error: %v", err)
		}

		if resp.Status != campaigns.StatusNeedsClarification {
			t.Errorf("status = %s, want needs_clarification", resp.Status)
		}
		if len(resp.ClarificationQuestions) != 1 {
			t.Errorf("questions = %d, want 1", len(resp.ClarificationQuestions))
		}
		if len(resp.Assets) != 0 {
			t.Error("assets should be empty on a clarification round")
		}
		if client.count("research") != 0 || client.count("strategy") != 0 {
			t.Error("downstream phases ran despite clarification")
		}
	})

	t.Run("skip clarify records zero elapsed and makes no clarify call", func(t *testing.T) {
		client := newMockClient()
		scriptHappyPath(client)
		rt := testRuntime(client)

		resp, err := workflow.Execute(context.Background(), rt, testRequest(1), "req-4", true)
		if err != nil {
			t.Fatalf("Execute error: %v", err)
		}

		if client.count("clarify") != 0 {
			t.Error("clarify call made despite skip")
		}
		if resp.Metadata.Timings.ClarifyMS == nil || *resp.Metadata.Timings.ClarifyMS != 0.0 {
			t.Errorf("clarify_ms = %v, want 0.0", resp.Metadata.Timings.ClarifyMS)
		}
	})

	t.Run("text-only deliverables bypass production", func(t *testing.T) {
		client := newMockClient()
		scriptHappyPath(client)
		rt := testRuntime(client)

		req := testRequest(2)
		noHTML := false
		req.Deliverables.IncludeHTML = &noHTML

		resp, err := workflow.Execute(context.Background(), rt, req, "req-5", false)
		if err != nil {
			t.Fatalf("Execute error: %v", err)
		}

		if client.count("production") != 0 {
			t.Error("production ran for text-only deliverables")
		}
		for i, asset := range resp.Assets {
			if asset.HTML != "" {
				t.Errorf("asset %d has HTML in text-only mode", i)
			}
		}
	})

	t.Run("empty production response degrades to missing HTML", func(t *testing.T) {
		client := newMockClient()
		scriptHappyPath(client)
		client.handlers["production"] = func(req llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: ""}, nil
		}
		rt := testRuntime(client)

		resp, err := workflow.Execute(context.Background(), rt, testRequest(1), "req-22", false)
		if err != nil {
			t.Fatalf("Execute error: %v", err)
		}
		if resp.Status != campaigns.StatusCompleted {
			t.Errorf("status = %s, want completed", resp.Status)
		}
		if resp.Assets[0].HTML != "" {
			t.Errorf("html = %q, want empty when nothing was recoverable", resp.Assets[0].HTML)
		}
	})

	t.Run("phase failure surfaces as error", func(t *testing.T) {
		client := newMockClient()
		scriptHappyPath(client)
		client.onErr("strategy", errors.New("model exploded"))
		rt := testRuntime(client)

		_, err := workflow.Execute(context.Background(), rt, testRequest(1), "req-6", false)
		if err == nil {
			t.Fatal("expected error from failed strategy phase")
		}
		if !strings.Contains(err.Error(), "strategy phase failed") {
			t.Errorf("error = %v, want strategy phase failure", err)
		}
	})
}

// rambling returns a scripted response whose JSON could not be recovered.
func rambling(client *mockClient, phase string) {
	client.handlers[phase] = func(req llm.Request) (*llm.Result, error) {
		return &llm.Result{Text: "I cannot produce JSON right now."}, nil
	}
}

func TestUnparseableResponses(t *testing.T) {
	t.Run("clarify degrades to no clarification needed", func(t *testing.T) {
		client := newMockClient()
		scriptHappyPath(client)
		rambling(client, "clarify")
		rt := testRuntime(client)

		resp, err := workflow.Execute(context.Background(), rt, testRequest(1), "req-23", false)
		if err != nil {
			t.Fatalf("Execute error: %v", err)
		}
		if resp.Status != campaigns.StatusCompleted {
			t.Errorf("status = %s, want completed despite unparseable clarify", resp.Status)
		}
	})

	t.Run("research degrades to empty insights", func(t *testing.T) {
		client := newMockClient()
		scriptHappyPath(client)
		rambling(client, "research")
		rt := testRuntime(client)

		resp, err := workflow.Execute(context.Background(), rt, testRequest(1), "req-24", false)
		if err != nil {
			t.Fatalf("Execute error: %v", err)
		}
		if resp.Status != campaigns.StatusCompleted {
			t.Errorf("status = %s, want completed despite unparseable research", resp.Status)
		}
	})

	t.Run("strategy degrades to an empty blueprint", func(t *testing.T) {
		client := newMockClient()
		scriptHappyPath(client)
		rambling(client, "strategy")
		rt := testRuntime(client)

		resp, err := workflow.Execute(context.Background(), rt, testRequest(2), "req-25", false)
		if err != nil {
			t.Fatalf("Execute error: %v", err)
		}
		if resp.Status != campaigns.StatusCompleted {
			t.Errorf("status = %s, want completed despite unparseable strategy", resp.Status)
		}
		if resp.Blueprint == nil || resp.Blueprint.CampaignAngle != "" {
			t.Errorf("blueprint = %+v, want empty", resp.Blueprint)
		}
		if len(resp.Assets) != 2 {
			t.Errorf("assets = %d, want beats padded from an empty arc", len(resp.Assets))
		}
	})

	t.Run("parse degrades to the documented defaults", func(t *testing.T) {
		client := newMockClient()
		scriptFastPath(client)
		rambling(client, "parse")
		rt := testRuntime(client)

		resp, err := workflow.GenerateFromPrompt(context.Background(), rt, "whatever", false, "req-26")
		if err != nil {
			t.Fatalf("GenerateFromPrompt error: %v", err)
		}
		if resp.Status != campaigns.StatusCompleted {
			t.Errorf("status = %s, want completed despite unparseable parse", resp.Status)
		}
		if resp.Campaign == nil || resp.Campaign.CampaignName != "Campaign" {
			t.Errorf("campaign = %+v, want default-filled request", resp.Campaign)
		}
		if resp.Campaign.Deliverables.NumberOfEmails != 3 {
			t.Errorf("number_of_emails = %d, want default 3", resp.Campaign.Deliverables.NumberOfEmails)
		}
	})

	t.Run("rapid batch without JSON fails on the missing emails, not the parse", func(t *testing.T) {
		client := newMockClient()
		rambling(client, "rapid")
		rt := testRuntime(client)

		_, err := workflow.ExecuteFast(context.Background(), rt, testRequest(1), "req-27")
		if !errors.Is(err, workflow.ErrRapidBatchFailed) {
			t.Fatalf("error = %v, want ErrRapidBatchFailed", err)
		}
		if !strings.Contains(err.Error(), "no emails") {
			t.Errorf("error = %v, want the empty-batch message", err)
		}
	})
}

func TestCritiqueScoring(t *testing.T) {
	t.Run("missing score defaults to 70", func(t *testing.T) {
		client := newMockClient()
		scriptHappyPath(client)
		client.on("critique", map[string]any{
			"issues": []any{},
		})
		rt := testRuntime(client)

		resp, err := workflow.Execute(context.Background(), rt, testRequest(1), "req-7", false)
		if err != nil {
			t.Fatalf("Execute error: %v", err)
		}
		if resp.Critique.Score != 70 {
			t.Errorf("score = %d, want default 70", resp.Critique.Score)
		}
	})

	t.Run("rule issues deduct three points each", func(t *testing.T) {
		client := newMockClient()
		scriptHappyPath(client)
		// Body with more than three exclamation marks trips one rule issue.
		client.on("execution", map[string]any{
			"subject_lines":        []any{"Hello"},
			"preview_text_options": []any{"Preview"},
			"body_text":            "Wow!!!!! This is big.",
			"ctas":                 []any{"Shop"},
		})
		client.on("critique", map[string]any{
			"score":  50,
			"issues": []any{},
		})
		rt := testRuntime(client)

		resp, err := workflow.Execute(context.Background(), rt, testRequest(1), "req-8", false)
		if err != nil {
			t.Fatalf("Execute error: %v", err)
		}
		if resp.Critique.Score != 47 {
			t.Errorf("score = %d, want 50 - 3 per rule issue = 47", resp.Critique.Score)
		}
		if len(resp.Critique.Issues) != 1 {
			t.Errorf("issues = %v, want the exclamation finding", resp.Critique.Issues)
		}
	})

	t.Run("score floors at zero", func(t *testing.T) {
		client := newMockClient()
		scriptHappyPath(client)
		client.on("execution", map[string]any{
			"subject_lines":        []any{"Hello"},
			"preview_text_options": []any{"Preview"},
			"body_text":            "Wow!!!!! This is big.",
			"ctas":                 []any{"Shop"},
		})
		client.on("critique", map[string]any{
			"score":  2,
			"issues": []any{},
		})
		rt := testRuntime(client)

		resp, err := workflow.Execute(context.Background(), rt, testRequest(1), "req-9", false)
		if err != nil {
			t.Fatalf("Execute error: %v", err)
		}
		if resp.Critique.Score != 0 {
			t.Errorf("score = %d, want floor at 0", resp.Critique.Score)
		}
	})
}

func scriptFastPath(client *mockClient) {
	client.on("parse", map[string]any{
		"needs_clarification": false,
		"campaign": map[string]any{
			"brand_name":       "Acme",
			"offer":            "20% off summer apparel",
			"target_audience":  "Returning customers",
			"number_of_emails": float64(1),
		},
	})
	client.on("rapid", map[string]any{
		"emails": []any{
			map[string]any{
				"email_number":         float64(1),
				"email_name":           "Welcome",
				"subject_lines":        []any{"Your summer offer is here"},
				"preview_text_options": []any{"A little something for the season"},
				"ctas":                 []any{"Shop Now"},
				"send_timing":          "Day 1",
				"layout_style":         "minimal",
				"sections": map[string]any{
					"headline":        "Summer starts here",
					"intro_paragraph": "We saved something for you.",
					"offer_line":      "20% off summer apparel",
					"cta_button":      "Shop Now",
				},
			},
		},
	})
}

func TestGenerateFromPrompt(t *testing.T) {
	t.Run("parse clarification returns questions without generating", func(t *testing.T) {
		client := newMockClient()
		client.on("parse", map[string]any{
			"needs_clarification": true,
			"questions": []any{
				map[string]any{
					"field":    "offer",
					"question": "What are you promoting?",
				},
			},
		})
		rt := testRuntime(client)

		resp, err := workflow.GenerateFromPrompt(context.Background(), rt, "make me some emails", false, "req-10")
		if err != nil {
			t.Fatalf("GenerateFromPrompt error: %v", err)
		}

		if resp.Status != campaigns.StatusNeedsClarification {
			t.Errorf("status = %s, want needs_clarification", resp.Status)
		}
		if len(resp.Questions) != 1 {
			t.Errorf("questions = %d, want 1", len(resp.Questions))
		}
		if client.count("rapid") != 0 {
			t.Error("rapid batch ran despite clarification")
		}
	})

	t.Run("completed run costs two calls, repeat costs one", func(t *testing.T) {
		client := newMockClient()
		scriptFastPath(client)
		rt := testRuntime(client)

		first, err := workflow.GenerateFromPrompt(context.Background(), rt, "1 email, 20% off summer apparel from Acme", false, "req-11")
		if err != nil {
			t.Fatalf("GenerateFromPrompt error: %v", err)
		}
		if first.Status != campaigns.StatusCompleted {
			t.Fatalf("status = %s, want completed", first.Status)
		}
		if len(first.Emails) != 1 {
			t.Fatalf("emails = %d, want 1", len(first.Emails))
		}
		if first.Campaign == nil || first.Campaign.Brand.BrandName != "Acme" {
			t.Error("parsed campaign not attached to response")
		}
		if client.count("parse") != 1 || client.count("rapid") != 1 {
			t.Errorf("calls = %v, want one parse and one rapid", client.calls)
		}

		second, err := workflow.GenerateFromPrompt(context.Background(), rt, "1 email, 20% off summer apparel from Acme", false, "req-12")
		if err != nil {
			t.Fatalf("repeat GenerateFromPrompt error: %v", err)
		}
		if second.Status != campaigns.StatusCompleted {
			t.Errorf("status = %s, want completed from cache", second.Status)
		}
		if client.count("parse") != 2 {
			t.Errorf("parse calls = %d, want 2 (parse always runs)", client.count("parse"))
		}
		if client.count("rapid") != 1 {
			t.Errorf("rapid calls = %d, want 1 (second run served from cache)", client.count("rapid"))
		}
	})

	t.Run("force proceed generates despite clarification flag", func(t *testing.T) {
		client := newMockClient()
		scriptFastPath(client)
		client.on("parse", map[string]any{
			"needs_clarification": true,
			"questions": []any{
				map[string]any{"field": "offer", "question": "What offer?"},
			},
			"campaign": map[string]any{
				"brand_name":       "Acme",
				"offer":            "something seasonal",
				"number_of_emails": float64(1),
			},
		})
		rt := testRuntime(client)

		resp, err := workflow.GenerateFromPrompt(context.Background(), rt, "just make it", true, "req-13")
		if err != nil {
			t.Fatalf("GenerateFromPrompt error: %v", err)
		}
		if resp.Status != campaigns.StatusCompleted {
			t.Errorf("status = %s, want completed under force_proceed", resp.Status)
		}
	})

	t.Run("parsed defaults applied to sparse campaigns", func(t *testing.T) {
		client := newMockClient()
		scriptFastPath(client)
		client.on("parse", map[string]any{
			"needs_clarification": false,
			"campaign": map[string]any{
				"offer": "a mystery discount",
			},
		})
		client.on("rapid", map[string]any{
			"emails": []any{
				map[string]any{"email_number": float64(1), "subject_lines": []any{"Hi"}},
				map[string]any{"email_number": float64(2), "subject_lines": []any{"Hi again"}},
				map[string]any{"email_number": float64(3), "subject_lines": []any{"Last one"}},
			},
		})
		rt := testRuntime(client)

		resp, err := workflow.GenerateFromPrompt(context.Background(), rt, "promote a mystery discount", false, "req-14")
		if err != nil {
			t.Fatalf("GenerateFromPrompt error: %v", err)
		}

		c := resp.Campaign
		if c == nil {
			t.Fatal("campaign missing from response")
		}
		if c.CampaignName != "Campaign" {
			t.Errorf("campaign_name = %q, want fallback Campaign", c.CampaignName)
		}
		if c.Deliverables.NumberOfEmails != 3 {
			t.Errorf("number_of_emails = %d, want default 3", c.Deliverables.NumberOfEmails)
		}
		if c.Objective.GeoScope != "Global" || c.Objective.Language != "English" {
			t.Errorf("geo/language = %s/%s, want Global/English", c.Objective.GeoScope, c.Objective.Language)
		}
		if c.Objective.PrimaryKPI != campaigns.KPIRevenue {
			t.Errorf("primary_kpi = %s, want revenue fallback", c.Objective.PrimaryKPI)
		}
	})
}

func TestExecuteFast(t *testing.T) {
	t.Run("stitches HTML locally from layout skeletons", func(t *testing.T) {
		client := newMockClient()
		scriptFastPath(client)
		rt := testRuntime(client)

		resp, err := workflow.ExecuteFast(context.Background(), rt, testRequest(1), "req-15")
		if err != nil {
			t.Fatalf("ExecuteFast error: %v", err)
		}

		if len(resp.Emails) != 1 {
			t.Fatalf("emails = %d, want 1", len(resp.Emails))
		}
		email := resp.Emails[0]
		if !strings.Contains(email.HTMLContent, "<!DOCTYPE html>") || !strings.Contains(email.HTMLContent, "Summer starts here") {
			t.Error("HTML not stitched from content sections")
		}
		if email.Subject != "Your summer offer is here" {
			t.Errorf("subject = %q", email.Subject)
		}
		if client.count("rapid") != 1 {
			t.Errorf("rapid calls = %d, want exactly one model call", client.count("rapid"))
		}
		if resp.Metadata.Timings.ProductionMS == nil || *resp.Metadata.Timings.ProductionMS != 0.0 {
			t.Error("production_ms should be recorded as 0.0 on the fast path")
		}
	})

	t.Run("invalid custom HTML falls back to default skeleton", func(t *testing.T) {
		client := newMockClient()
		client.on("rapid", map[string]any{
			"emails": []any{
				map[string]any{
					"email_number":  float64(1),
					"subject_lines": []any{"Hi"},
					"layout_style":  "custom",
					"sections": map[string]any{
						"headline":     "Broken",
						"html_content": "<html><body>no closing tag",
					},
				},
			},
		})
		rt := testRuntime(client)

		resp, err := workflow.ExecuteFast(context.Background(), rt, testRequest(1), "req-16")
		if err != nil {
			t.Fatalf("ExecuteFast error: %v", err)
		}
		if !strings.Contains(resp.Emails[0].HTMLContent, "<!DOCTYPE html>") {
			t.Error("fallback skeleton not rendered for rejected custom HTML")
		}
	})

	t.Run("rule findings surface as accessibility notes", func(t *testing.T) {
		client := newMockClient()
		client.on("rapid", map[string]any{
			"emails": []any{
				map[string]any{
					"email_number":  float64(1),
					"subject_lines": []any{"This subject line is way too long to pass the deliverability checks we run"},
					"sections":      map[string]any{"headline": "Hello"},
				},
			},
		})
		rt := testRuntime(client)

		resp, err := workflow.ExecuteFast(context.Background(), rt, testRequest(1), "req-17")
		if err != nil {
			t.Fatalf("ExecuteFast error: %v", err)
		}
		if len(resp.Emails[0].AccessibilityNotes) == 0 {
			t.Error("expected a note for the over-length subject line")
		}
	})

	t.Run("empty batch is an error", func(t *testing.T) {
		client := newMockClient()
		client.on("rapid", map[string]any{"emails": []any{}})
		rt := testRuntime(client)

		_, err := workflow.ExecuteFast(context.Background(), rt, testRequest(1), "req-18")
		if !errors.Is(err, workflow.ErrRapidBatchFailed) {
			t.Errorf("error = %v, want ErrRapidBatchFailed", err)
		}
	})
}

func TestEditEmail(t *testing.T) {
	current := "<!DOCTYPE html><html><body>old</body></html>"

	t.Run("returns HTML from the JSON envelope", func(t *testing.T) {
		client := newMockClient()
		client.on("edit", map[string]any{
			"email_html": "<!DOCTYPE html><html><body>new</body></html>",
		})
		rt := testRuntime(client)

		html, err := workflow.EditEmail(context.Background(), rt, current, "Subject", "make it blue")
		if err != nil {
			t.Fatalf("EditEmail error: %v", err)
		}
		if !strings.Contains(html, "new") {
			t.Errorf("html = %q, want updated document", html)
		}
	})

	t.Run("recovers HTML from raw text when envelope ignored", func(t *testing.T) {
		client := newMockClient()
		client.handlers["edit"] = func(req llm.Request) (*llm.Result, error) {
			return &llm.Result{
				Text: "Here you go:\n<!DOCTYPE html><html><body>recovered</body></html>",
			}, nil
		}
		rt := testRuntime(client)

		html, err := workflow.EditEmail(context.Background(), rt, current, "Subject", "make it blue")
		if err != nil {
			t.Fatalf("EditEmail error: %v", err)
		}
		if !strings.Contains(html, "recovered") {
			t.Errorf("html = %q, want recovered document", html)
		}
	})

	t.Run("no document anywhere is an error", func(t *testing.T) {
		client := newMockClient()
		client.handlers["edit"] = func(req llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: "sorry, cannot help"}, nil
		}
		rt := testRuntime(client)

		_, err := workflow.EditEmail(context.Background(), rt, current, "Subject", "make it blue")
		if !errors.Is(err, workflow.ErrEditFailed) {
			t.Errorf("error = %v, want ErrEditFailed", err)
		}
	})
}

func TestServiceValidate(t *testing.T) {
	svc := workflow.NewSystem(testRuntime(newMockClient()))

	t.Run("clean request is ready to generate", func(t *testing.T) {
		resp := svc.Validate(testRequest(3))
		if !resp.Valid {
			t.Errorf("valid = false, issues = %v", resp.Issues)
		}
		if len(resp.Recommendations) != 1 || resp.Recommendations[0] != "Request appears complete. Ready to generate." {
			t.Errorf("recommendations = %v", resp.Recommendations)
		}
	})

	t.Run("errors and warnings produce targeted recommendations", func(t *testing.T) {
		req := testRequest(9)
		req.Brand.BrandName = ""
		resp := svc.Validate(req)

		if resp.Valid {
			t.Error("valid = true with a missing brand name")
		}
		joined := strings.Join(resp.Recommendations, " | ")
		if !strings.Contains(joined, "error(s) before generating") {
			t.Error("error recommendation missing")
		}
		if !strings.Contains(joined, "warning(s) to improve") {
			t.Error("warning recommendation missing")
		}
	})
}

func TestServiceGenerate(t *testing.T) {
	t.Run("wraps pipeline failures in the domain error", func(t *testing.T) {
		client := newMockClient()
		client.onErr("clarify", errors.New("provider down"))
		svc := workflow.NewSystem(testRuntime(client))

		_, err := svc.Generate(context.Background(), testRequest(1), "req-19", false)
		if !errors.Is(err, campaigns.ErrGenerationFailed) {
			t.Errorf("error = %v, want ErrGenerationFailed", err)
		}
	})

	t.Run("delegates to the full pipeline", func(t *testing.T) {
		client := newMockClient()
		scriptHappyPath(client)
		svc := workflow.NewSystem(testRuntime(client))

		resp, err := svc.Generate(context.Background(), testRequest(1), "req-20", false)
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		if resp.Status != campaigns.StatusCompleted {
			t.Errorf("status = %s, want completed", resp.Status)
		}
	})
}
