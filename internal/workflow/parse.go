package workflow

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/JaimeStill/bellman/internal/campaigns"
	"github.com/JaimeStill/bellman/internal/llm"
	"github.com/JaimeStill/bellman/internal/prompts"
)

// parsedCampaign is the flat campaign shape the parse phase returns. Fields
// stay loosely typed here; defaults and enum validation are applied when the
// structured request is built.
type parsedCampaign struct {
	CampaignName    string   `json:"campaign_name"`
	BrandName       string   `json:"brand_name"`
	VoiceGuidelines string   `json:"voice_guidelines"`
	BannedPhrases   []string `json:"banned_phrases"`
	RequiredPhrases []string `json:"required_phrases"`
	LegalFooter     string   `json:"legal_footer"`
	PrimaryKPI      string   `json:"primary_kpi"`
	TargetAudience  string   `json:"target_audience"`
	Offer           string   `json:"offer"`
	GeoScope        string   `json:"geo_scope"`
	Language        string   `json:"language"`
	ComplianceNotes string   `json:"compliance_notes"`
	SendWindow      string   `json:"send_window"`
	DiscountCeiling *float64 `json:"discount_ceiling"`
	NumberOfEmails  int      `json:"number_of_emails"`
	IncludeHTML     *bool    `json:"include_html"`
}

type parseResponse struct {
	NeedsClarification bool                              `json:"needs_clarification"`
	Questions          []campaigns.ClarificationQuestion `json:"questions"`
	Campaign           parsedCampaign                    `json:"campaign"`
}

// ParseOutcome is the result of turning a free-text prompt into a campaign:
// either outstanding questions or a structured request ready to generate.
type ParseOutcome struct {
	NeedsClarification bool
	Questions          []campaigns.ClarificationQuestion
	Request            *campaigns.Request
}

// ParsePrompt extracts a structured campaign request from a free-text
// description. When forceProceed is set the model is instructed to never ask
// another clarification round and the outcome always carries a request.
func ParsePrompt(ctx context.Context, rt *Runtime, userPrompt string, forceProceed bool) (*ParseOutcome, error) {
	result, err := rt.LLM.Generate(ctx, llm.Request{
		Prompt:            prompts.BuildParse(userPrompt, forceProceed),
		SystemInstruction: prompts.SystemInstruction,
		Schema:            prompts.ParseSchema,
		Temperature:       0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	// Unrecoverable JSON degrades to an empty campaign, which the request
	// builder fills with the documented defaults.
	var parsed parseResponse
	if result.Parsed != nil {
		parsed, err = decode[parseResponse](result.Parsed)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}

	if parsed.NeedsClarification && !forceProceed {
		return &ParseOutcome{
			NeedsClarification: true,
			Questions:          parsed.Questions,
		}, nil
	}

	return &ParseOutcome{Request: requestFromParsed(parsed.Campaign)}, nil
}

// requestFromParsed builds a generation-ready request from the flat parse
// shape, applying the documented defaults for anything the model omitted.
func requestFromParsed(c parsedCampaign) *campaigns.Request {
	name := c.CampaignName
	if name == "" {
		if c.BrandName != "" {
			name = c.BrandName + " Campaign"
		} else {
			name = "Campaign"
		}
	}

	voice := c.VoiceGuidelines
	if voice == "" {
		voice = "Professional and friendly"
	}

	geo := c.GeoScope
	if geo == "" {
		geo = "Global"
	}

	lang := c.Language
	if lang == "" {
		lang = "English"
	}

	kpi := campaigns.KPI(c.PrimaryKPI)
	if !slices.Contains(campaigns.KPIs(), kpi) {
		kpi = campaigns.KPIRevenue
	}

	count := c.NumberOfEmails
	if count < 1 {
		count = 3
	}

	req := &campaigns.Request{
		CampaignName: name,
		Brand: campaigns.BrandContext{
			BrandName:       c.BrandName,
			VoiceGuidelines: voice,
			BannedPhrases:   c.BannedPhrases,
			RequiredPhrases: c.RequiredPhrases,
			LegalFooter:     c.LegalFooter,
		},
		Objective: campaigns.Objective{
			PrimaryKPI:     kpi,
			TargetAudience: c.TargetAudience,
			Offer:          c.Offer,
			GeoScope:       geo,
			Language:       lang,
		},
		Constraints: campaigns.Constraints{
			DiscountCeiling: c.DiscountCeiling,
			ComplianceNotes: c.ComplianceNotes,
			SendWindow:      c.SendWindow,
		},
		Deliverables: campaigns.Deliverables{
			NumberOfEmails: count,
			IncludeHTML:    c.IncludeHTML,
		},
	}
	req.Normalize()
	return req
}

// GenerateFromPrompt runs the prompt-driven flow: parse the free text, and
// either return the clarification round or generate via the fast path. The
// result cache is keyed on the parsed request, so a repeated prompt costs
// one model call instead of two.
func GenerateFromPrompt(
	ctx context.Context,
	rt *Runtime,
	userPrompt string,
	forceProceed bool,
	requestID string,
) (*campaigns.PromptResponse, error) {
	totalStart := time.Now()

	outcome, err := ParsePrompt(ctx, rt, userPrompt, forceProceed)
	if err != nil {
		return nil, err
	}

	if outcome.NeedsClarification {
		rt.Logger.InfoContext(ctx, "prompt needs clarification",
			"request_id", requestID,
			"question_count", len(outcome.Questions))
		return &campaigns.PromptResponse{
			Status:    campaigns.StatusNeedsClarification,
			Questions: outcome.Questions,
			Emails:    []campaigns.PromptEmail{},
		}, nil
	}

	req := outcome.Request

	if rt.Cache != nil {
		if cached, ok := rt.Cache.Get(req); ok {
			rt.Metrics.RecordCache("hit")
			rt.Logger.InfoContext(ctx, "returning cached campaign",
				"request_id", requestID,
				"campaign", req.CampaignName)
			return &cached, nil
		}
		rt.Metrics.RecordCache("miss")
	}

	response, err := ExecuteFast(ctx, rt, req, requestID)
	if err != nil {
		return nil, err
	}

	response.Campaign = req
	response.Metadata.Timings.TotalMS = msPtr(ms(totalStart))

	if rt.Cache != nil {
		rt.Cache.Set(req, *response)
	}

	return response, nil
}
