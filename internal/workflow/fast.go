package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/JaimeStill/bellman/internal/campaigns"
	"github.com/JaimeStill/bellman/internal/llm"
	"github.com/JaimeStill/bellman/internal/profile"
	"github.com/JaimeStill/bellman/internal/prompts"
	"github.com/JaimeStill/bellman/internal/render"
	"github.com/JaimeStill/bellman/internal/rules"
)

type rapidEmail struct {
	EmailNumber        int             `json:"email_number"`
	EmailName          string          `json:"email_name"`
	SubjectLines       []string        `json:"subject_lines"`
	PreviewTextOptions []string        `json:"preview_text_options"`
	CTAs               []string        `json:"ctas"`
	SendTiming         string          `json:"send_timing"`
	LayoutStyle        string          `json:"layout_style"`
	Sections           render.Sections `json:"sections"`
}

type rapidBatchResponse struct {
	Emails []rapidEmail `json:"emails"`
}

// ExecuteFast runs the single-call fast path: one model call produces every
// email's copy and content sections, and the HTML is stitched locally from
// layout skeletons instead of a production phase. Deterministic rule
// findings are attached per email as accessibility notes.
func ExecuteFast(
	ctx context.Context,
	rt *Runtime,
	req *campaigns.Request,
	requestID string,
) (*campaigns.PromptResponse, error) {
	req.Normalize()
	totalStart := time.Now()

	var company *profile.Company
	if req.Objective.CompanyDomain != "" && rt.Profiles != nil {
		company = rt.Profiles.Load(req.Objective.CompanyDomain)
	}

	defaultLayout := render.DetectLayoutStyle(req, company)
	count := req.Deliverables.NumberOfEmails

	rt.Logger.InfoContext(ctx, "fast path started",
		"request_id", requestID,
		"email_count", count,
		"default_layout", defaultLayout,
		"profile_loaded", company != nil)

	rapidStart := time.Now()
	result, err := rt.LLM.Generate(ctx, llm.Request{
		Prompt:            prompts.BuildRapidBatch(req, company, defaultLayout),
		SystemInstruction: prompts.SystemInstruction,
		Schema:            prompts.RapidBatchSchema,
		Temperature:       0.35,
		MaxOutputTokens:   rapidTokenBudget(count),
	})
	if err != nil {
		rt.Metrics.RecordRun("fast", "error")
		return nil, fmt.Errorf("%w: %w", ErrRapidBatchFailed, err)
	}

	// Unrecoverable JSON degrades to an empty batch; only the absence of
	// emails is fatal.
	var batch rapidBatchResponse
	if result.Parsed != nil {
		batch, err = decode[rapidBatchResponse](result.Parsed)
		if err != nil {
			rt.Metrics.RecordRun("fast", "error")
			return nil, fmt.Errorf("%w: decode response: %w", ErrRapidBatchFailed, err)
		}
	}
	if len(batch.Emails) == 0 {
		rt.Metrics.RecordRun("fast", "error")
		return nil, fmt.Errorf("%w: model returned no emails", ErrRapidBatchFailed)
	}

	rapidElapsed := ms(rapidStart)
	rt.Metrics.RecordPhase("rapid", time.Since(rapidStart).Seconds())

	emails := make([]campaigns.PromptEmail, 0, len(batch.Emails))
	for i, e := range batch.Emails {
		emails = append(emails, assembleEmail(ctx, rt, req, company, e, i, defaultLayout))
	}

	timings := campaigns.PhaseTimings{
		ExecutionMS:  msPtr(rapidElapsed),
		ProductionMS: msPtr(0.0),
	}
	timings.TotalMS = msPtr(ms(totalStart))

	rt.Metrics.RecordRun("fast", "completed")
	rt.Logger.InfoContext(ctx, "fast path complete",
		"request_id", requestID,
		"email_count", len(emails),
		"total_ms", *timings.TotalMS)

	return &campaigns.PromptResponse{
		Status: campaigns.StatusCompleted,
		Emails: emails,
		Metadata: &campaigns.ResponseMetadata{
			RequestID: requestID,
			ModelUsed: rt.LLM.Model(),
			Timings:   timings,
		},
	}, nil
}

// rapidTokenBudget scales the output budget with series length, bounded to
// the provider's practical window.
func rapidTokenBudget(emailCount int) int {
	return min(8192, max(2048, 1500*emailCount+2000))
}

// assembleEmail renders one fast-path email: resolve the layout, stitch or
// validate the HTML, and run the deterministic rule checks over the copy.
func assembleEmail(
	ctx context.Context,
	rt *Runtime,
	req *campaigns.Request,
	company *profile.Company,
	e rapidEmail,
	index int,
	defaultLayout string,
) campaigns.PromptEmail {
	sections := e.Sections
	if len(e.SubjectLines) > 0 {
		sections.Subject = e.SubjectLines[0]
	}
	if sections.Preheader == "" && len(e.PreviewTextOptions) > 0 {
		sections.Preheader = e.PreviewTextOptions[0]
	}

	layout := e.LayoutStyle
	if layout == "" || (layout != "custom" && !render.KnownLayout(layout)) {
		layout = defaultLayout
	}

	ctaURL := render.ResolveCTAURL(req, company)

	var html string
	if layout == "custom" && sections.HTMLContent != "" {
		html = render.ExtractHTML(sections.HTMLContent)
		if reasons := render.ValidateCustomHTML(html, ctaURL); len(reasons) > 0 {
			rt.Logger.WarnContext(ctx, "custom layout rejected, using default skeleton",
				"email_number", index+1,
				"reasons", reasons)
			html = render.RenderEmail(req, &sections, company, "default")
		}
	} else {
		html = render.RenderEmail(req, &sections, company, layout)
	}

	bodyText := sections.BodyText()
	findings := rules.RunEmailRules(req, campaigns.EmailAsset{
		EmailNumber:        index + 1,
		SubjectLines:       e.SubjectLines,
		PreviewTextOptions: e.PreviewTextOptions,
		BodyText:           bodyText,
		CTAs:               e.CTAs,
	})
	notes := make([]string, 0, len(findings.Issues)+len(findings.RiskFlags))
	notes = append(notes, findings.Issues...)
	notes = append(notes, findings.RiskFlags...)

	name := e.EmailName
	if name == "" {
		name = fmt.Sprintf("Email %d", index+1)
	}

	subject := ""
	if len(e.SubjectLines) > 0 {
		subject = e.SubjectLines[0]
	}
	preview := ""
	if len(e.PreviewTextOptions) > 0 {
		preview = e.PreviewTextOptions[0]
	}

	return campaigns.PromptEmail{
		EmailNumber:        index + 1,
		EmailName:          name,
		Subject:            subject,
		PreviewText:        preview,
		BodyText:           bodyText,
		CTAs:               e.CTAs,
		SendTiming:         e.SendTiming,
		HTMLContent:        html,
		AccessibilityNotes: notes,
	}
}
