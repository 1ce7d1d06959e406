package prompts

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/bellman/internal/campaigns"
	"github.com/JaimeStill/bellman/internal/profile"
)

func kpiStrings(kpis []campaigns.KPI) []string {
	out := make([]string, len(kpis))
	for i, k := range kpis {
		out[i] = string(k)
	}
	return out
}

func channelStrings(channels []campaigns.Channel) []string {
	out := make([]string, len(channels))
	for i, c := range channels {
		out[i] = string(c)
	}
	return out
}

func ceilingString(ceiling *float64) string {
	if ceiling == nil {
		return "none"
	}
	return fmt.Sprintf("%g%%", *ceiling)
}

// MissingCriticalFields applies the deterministic heuristics for fields too
// vague or absent to generate from: short offer or audience, missing geo or
// language, and a non-positive email count.
func MissingCriticalFields(req *campaigns.Request) []string {
	var missing []string
	if len(req.Objective.Offer) < 10 {
		missing = append(missing, "objective.offer")
	}
	if len(req.Objective.TargetAudience) < 10 {
		missing = append(missing, "objective.target_audience")
	}
	if req.Objective.GeoScope == "" {
		missing = append(missing, "objective.geo_scope")
	}
	if req.Objective.Language == "" {
		missing = append(missing, "objective.language")
	}
	if req.Deliverables.NumberOfEmails < 1 {
		missing = append(missing, "deliverables.number_of_emails")
	}
	return missing
}

// BuildClarify builds the clarification phase prompt.
func BuildClarify(req *campaigns.Request) string {
	missing := strings.Join(MissingCriticalFields(req), ", ")
	if missing == "" {
		missing = "none"
	}

	return fmt.Sprintf(`Analyse the following campaign request and determine if any CRITICAL information is missing or ambiguous. Critical fields are: primary_kpi, target_audience, offer, language, geo_scope, number_of_emails.

Potentially missing fields detected: %s

CAMPAIGN REQUEST (JSON):
%s

Your task:
- If critical information is genuinely missing or too vague to proceed safely, set "needs_clarification" to true and provide 3–7 targeted, specific questions.
- Each question must reference the exact field path (e.g. "objective.offer").
- If the request is complete enough to proceed, set "needs_clarification" to false and return an empty questions array.

Return ONLY this JSON structure:
{
  "needs_clarification": <true|false>,
  "questions": [
    {"field": "...", "question": "...", "why_needed": "..."}
  ]
}`, missing, indentJSON(req))
}

// BuildResearch builds the knowledge research phase prompt.
func BuildResearch(req *campaigns.Request) string {
	return fmt.Sprintf(`You are conducting knowledge-based research (no external browsing) for the following marketing campaign. Use your training knowledge to synthesise relevant insights.

CAMPAIGN BRIEF:
- Brand: %s
- Offer: %s
- Audience: %s
- Geo: %s
- Language: %s
- Channels: %s
- Primary KPI: %s

Research tasks:
1. Provide 3–5 audience behaviour insights relevant to this campaign.
2. Provide 3–5 email/channel best-practice insights relevant to the geo and offer type.
3. Summarise relevant seasonal or contextual factors.
4. Note 2–3 competitive considerations (general, not specific competitor claims).
5. Label all assumptions clearly.

Return ONLY valid JSON matching this structure:
{
  "audience_insights": ["..."],
  "channel_insights": ["..."],
  "seasonal_context": "...",
  "competitive_considerations": ["..."],
  "assumptions": ["ASSUMPTION: ..."]
}`,
		req.Brand.BrandName,
		req.Objective.Offer,
		req.Objective.TargetAudience,
		req.Objective.GeoScope,
		req.Objective.Language,
		formatList(channelStrings(req.Channels)),
		req.Objective.PrimaryKPI)
}

// BuildStrategy builds the strategy phase prompt from the brief and the
// research phase output.
func BuildStrategy(req *campaigns.Request, research map[string]any) string {
	return fmt.Sprintf(`Create a comprehensive campaign strategy (blueprint) for the following brief. Ground your strategy in the research insights provided.

CAMPAIGN BRIEF:
- Campaign Name: %s
- Brand: %s
- Brand Voice: %s
- Offer: %s
- Primary KPI: %s
- Secondary KPIs: %s
- Target Audience: %s
- Geo: %s | Language: %s
- Channels: %s
- Number of Emails: %d
- Discount Ceiling: %s
- Compliance Notes: %s
- Send Window: %s
- Banned Phrases: %s
- Required Phrases: %s

RESEARCH INSIGHTS:
%s

Strategy tasks:
1. Define the single, compelling campaign angle (1–2 sentences).
2. Write the core narrative arc that unifies all %d emails.
3. Explain the offer logic (why this offer, why now, why for this audience).
4. List the narrative arc as ordered beats (e.g., Tease → Announce → Urgency → Final Push).
5. Map each KPI to the primary tactic that drives it.
6. Provide channel-specific execution notes.
7. Identify 2–4 risks and mitigation notes.
8. Label all assumptions.

Return ONLY valid JSON:
{
  "campaign_angle": "...",
  "core_narrative": "...",
  "offer_logic": "...",
  "narrative_arc": ["Beat 1: ...", "Beat 2: ...", ...],
  "kpi_mapping": {"revenue": "...", "open_rate": "..."},
  "channel_strategy": {"email": "..."},
  "risks": ["Risk: ... | Mitigation: ..."],
  "assumptions": ["ASSUMPTION: ..."]
}`,
		req.CampaignName,
		req.Brand.BrandName,
		req.Brand.VoiceGuidelines,
		req.Objective.Offer,
		req.Objective.PrimaryKPI,
		formatList(kpiStrings(req.Objective.SecondaryKPIs)),
		req.Objective.TargetAudience,
		req.Objective.GeoScope,
		req.Objective.Language,
		formatList(channelStrings(req.Channels)),
		req.Deliverables.NumberOfEmails,
		ceilingString(req.Constraints.DiscountCeiling),
		req.Constraints.ComplianceNotes,
		req.Constraints.SendWindow,
		formatList(req.Brand.BannedPhrases),
		formatList(req.Brand.RequiredPhrases),
		formatResearch(research),
		req.Deliverables.NumberOfEmails)
}

// BuildExecution builds the copy generation prompt for a single email.
// emailIndex is zero-based; narrativeBeat is this email's beat from the
// blueprint arc.
func BuildExecution(req *campaigns.Request, blueprint *campaigns.Blueprint, emailIndex int, narrativeBeat string) string {
	emailNum := emailIndex + 1
	return fmt.Sprintf(`Write email #%d of %d for the following campaign.

CAMPAIGN CONTEXT:
- Campaign: %s
- Brand: %s
- Brand Voice: %s
- Banned Phrases: %s
- Required Phrases: %s
- Legal Footer: %s
- Offer: %s
- Audience: %s
- Geo/Language: %s / %s
- Compliance: %s
- Send Window: %s

CAMPAIGN STRATEGY:
- Angle: %s
- Core Narrative: %s

THIS EMAIL'S NARRATIVE BEAT: %s

COPY REQUIREMENTS:
- Write 3+ distinct subject lines (A/B testable). Keep under 50 characters where possible.
- Write 2 preview text options (under 90 characters each).
- Write the full email body. Use brand voice. Include the legal footer at the end.
- Write 1–3 CTA options (button label text).
- Recommend the ideal send day/time within the send window: %s. Give a reason.
- Do NOT use any banned phrases: %s
- Naturally include required phrases where appropriate: %s

Return ONLY valid JSON:
{
  "email_number": %d,
  "email_name": "...",
  "subject_lines": ["...", "...", "..."],
  "preview_text_options": ["...", "..."],
  "body_text": "... (full email body with legal footer at end) ...",
  "ctas": ["...", "..."],
  "send_timing": "..."
}`,
		emailNum, req.Deliverables.NumberOfEmails,
		req.CampaignName,
		req.Brand.BrandName,
		req.Brand.VoiceGuidelines,
		formatList(req.Brand.BannedPhrases),
		formatList(req.Brand.RequiredPhrases),
		req.Brand.LegalFooter,
		req.Objective.Offer,
		req.Objective.TargetAudience,
		req.Objective.GeoScope, req.Objective.Language,
		req.Constraints.ComplianceNotes,
		req.Constraints.SendWindow,
		blueprint.CampaignAngle,
		blueprint.CoreNarrative,
		narrativeBeat,
		req.Constraints.SendWindow,
		formatList(req.Brand.BannedPhrases),
		formatList(req.Brand.RequiredPhrases),
		emailNum)
}

// BuildCritique builds the campaign review prompt over the blueprint and the
// generated email assets.
func BuildCritique(req *campaigns.Request, blueprint *campaigns.Blueprint, emails []campaigns.EmailAsset) string {
	var summaries []string
	for _, e := range emails {
		summaries = append(summaries, fmt.Sprintf("Email %d: SL=%s, CTA=%s, Body=(%d chars)",
			e.EmailNumber,
			formatList(head(e.SubjectLines)),
			formatList(head(e.CTAs)),
			len(e.BodyText)))
	}

	var bodies []string
	for _, e := range emails {
		body := e.BodyText
		if body == "" {
			body = "(no body)"
		}
		bodies = append(bodies, fmt.Sprintf("--- EMAIL %d BODY ---\n%s", e.EmailNumber, body))
	}

	footerRequired := "No"
	if req.Brand.LegalFooter != "" {
		footerRequired = "Yes"
	}

	return fmt.Sprintf(`You are a senior marketing quality-assurance reviewer and compliance expert. Conduct a rigorous critique of the following campaign.

BRAND CONSTRAINTS:
- Brand Voice: %s
- Banned Phrases: %s
- Required Phrases: %s
- Legal Footer required: %s
- Compliance Notes: %s

CAMPAIGN OBJECTIVE:
- Primary KPI: %s
- Offer: %s
- Audience: %s

STRATEGY BLUEPRINT:
- Angle: %s

GENERATED EMAILS SUMMARY:
%s

FULL EMAIL BODIES:
%s

Critique checklist (check all of these):
1. Brand voice alignment – does copy match the voice guidelines?
2. Banned phrases – are any banned phrases present in any email?
3. Required phrases – are all required phrases included where appropriate?
4. Legal footer – is it present and complete in every email?
5. Spam risk – excessive exclamation marks, ALL CAPS, spammy trigger words?
6. Compliance – any misleading claims, unverified statistics, false urgency?
7. Clarity – are the subject lines clear and under 50 chars?
8. CTA effectiveness – are the CTAs action-oriented and clear?
9. KPI alignment – does the copy drive the stated primary KPI?
10. Overall quality – flow, tone, readability.

For each issue found:
- State the issue clearly (which email / field).
- Provide a concrete suggested fix.
- Flag as risk_flag if it is a compliance, spam, or brand-safety issue.

Score the campaign 0–100 overall (100 = flawless).

Return ONLY valid JSON:
{
  "issues": ["Email 1: ..."],
  "fixes": ["Fix for Email 1: ..."],
  "risk_flags": ["RISK: ..."],
  "llm_commentary": "Overall assessment...",
  "score": 85
}`,
		req.Brand.VoiceGuidelines,
		formatList(req.Brand.BannedPhrases),
		formatList(req.Brand.RequiredPhrases),
		footerRequired,
		req.Constraints.ComplianceNotes,
		req.Objective.PrimaryKPI,
		req.Objective.Offer,
		req.Objective.TargetAudience,
		blueprint.CampaignAngle,
		strings.Join(summaries, "\n"),
		strings.Join(bodies, "\n\n"))
}

func head(items []string) []string {
	if len(items) > 1 {
		return items[:1]
	}
	return items
}

// BuildParse builds the prompt that turns a free-form user description into
// a structured campaign request. When forceProceed is set, the model is
// forbidden from asking another clarification round.
func BuildParse(userPrompt string, forceProceed bool) string {
	forceInstruction := ""
	if forceProceed {
		forceInstruction = `
IMPORTANT: The user has already answered clarification questions. Do NOT set needs_clarification=true under any circumstances. Extract every detail you can from the prompt and use sensible defaults for anything still missing. Always set needs_clarification=false and return a fully populated campaign object.`
	}

	return fmt.Sprintf(`A user wants to generate a marketing email campaign. They described it in free text below.%s

Your job:
1. Extract all structured campaign details you can infer from their description.
2. If critical details are MISSING OR AMBIGUOUS, set needs_clarification=true and add specific questions to the questions array. Ask only what is truly necessary.
3. If you have enough to proceed, set needs_clarification=false.

Critical fields that MUST be present to generate:
- What is the offer / promotion?
- Who is the target audience?
- How many emails should be in the series?
- What is the brand name?

Non-critical fields (use sensible defaults if missing):
- voice/tone → default "Professional and friendly"
- geo_scope → default "Global"
- language → default "English"
- primary_kpi → default "revenue"
- include_html → default true

USER PROMPT:
"""%s"""

Return JSON matching the schema exactly. For campaign fields you cannot determine, omit them (do not guess wildly). For discount_ceiling, only include if a specific percentage is mentioned.`,
		forceInstruction, userPrompt)
}

// BuildRapidBatch builds the single-call fast path prompt that generates
// every email's copy and content sections at once. defaultLayout is the
// layout inferred from the request; the model may override it per email or
// select "custom" to render its own HTML.
func BuildRapidBatch(req *campaigns.Request, company *profile.Company, defaultLayout string) string {
	sendWindow := req.Constraints.SendWindow
	if sendWindow == "" {
		sendWindow = "ASAP"
	}

	banned := strings.Join(req.Brand.BannedPhrases, ", ")
	if banned == "" {
		banned = "none"
	}

	channels := strings.Join(channelStrings(req.Channels), ", ")
	if channels == "" {
		channels = "email"
	}

	kpis := strings.Join(append([]string{string(req.Objective.PrimaryKPI)},
		kpiStrings(req.Objective.SecondaryKPIs)...), ", ")

	voice := req.Brand.VoiceGuidelines
	if voice == "" {
		voice = "professional, warm, conversational"
	}

	lang := req.Objective.Language
	if lang == "" {
		lang = "en"
	}

	brandColor := req.Brand.DesignTokens.PrimaryColor
	if brandColor == "" {
		brandColor = "#0066cc"
	}

	companyContext := ""
	if company != nil {
		companyContext = fmt.Sprintf(`
COMPANY CONTEXT (from CRM, use to ground the copy):
- Company: %s
- Website: %s
- Industry: %s
- Location: %s
- About: %s
- Key offer: %s
`,
			company.CompanyName, company.Website, company.Industry,
			company.Location, company.Description, company.KeyOffer)
	}

	return fmt.Sprintf(`You are a senior email marketing strategist and award-winning copywriter.

CAMPAIGN BRIEF
==============
Brand:           %s
Voice/Tone:      %s
Banned phrases:  %s
Primary colour:  %s

Offer:           %s
Target audience: %s
KPIs:            %s
Language:        %s
Channels:        %s
Send window:     %s
Number of emails:%d
%s
TASK
====
Generate all %d email(s) for this campaign. Each email must have a distinct narrative angle that builds a logical arc (e.g. teaser → main offer → urgency → last-chance).

For each email return ALL of the following fields:
- email_number     integer, starting at 1
- email_name       descriptive label, e.g. "Teaser – Day 1"
- subject_lines    2 A/B variants, 40–60 chars each (emoji allowed if brand-appropriate)
- preview_text_options  2 variants, 80–100 chars each, complementing the subject
- ctas             1–2 action phrases for the CTA button(s)
- send_timing      recommended send day/time with a 1-line rationale
- layout_style     one of: default, minimal, bold, newsletter, playful, premium, custom.
                   Use "%s" unless a different style clearly fits the email better.
                   Only choose "custom" when the brief demands a layout none of the
                   built-in styles can express; then also return sections.html_content
                   with a complete HTML document (<!DOCTYPE html> through </html>).
- sections         object with EXACTLY these 8 keys:
    headline          compelling H1, max 10 words, no trailing full stop
    preheader         80–90 chars supplementing the subject line
    intro_paragraph   2–3 sentence hook addressing reader's pain or aspiration
    offer_line        the specific offer stated concisely and compellingly
    body_bullets      2–4 benefit bullets, each max 12 words, start with a verb
    cta_button        button label, max 5 words, action-oriented
    urgency_line      1-sentence deadline/scarcity (use empty string "" if not applicable)
    footer_line       1-sentence friendly company sign-off / legal note

LANGUAGE RULES
==============
- Write ALL copy in: %s
- Follow brand voice strictly: %s
- Never use banned phrases: %s
- Label any assumptions in offer_line as [Assumption: ...]`,
		req.Brand.BrandName,
		voice,
		banned,
		brandColor,
		req.Objective.Offer,
		req.Objective.TargetAudience,
		kpis,
		lang,
		channels,
		sendWindow,
		req.Deliverables.NumberOfEmails,
		companyContext,
		req.Deliverables.NumberOfEmails,
		defaultLayout,
		lang,
		voice,
		banned)
}

// BuildEditEmail builds the prompt that applies user edit instructions to an
// existing HTML email.
func BuildEditEmail(currentHTML, subject, instructions string) string {
	return fmt.Sprintf(`You are editing an existing HTML email. Keep all valid structure, design, and inline CSS intact.
Only change what the user's instructions request. Do not add new sections unless asked.

CURRENT SUBJECT: %s

USER INSTRUCTIONS:
%s

CURRENT HTML:
%s

Return a JSON object with a single key "email_html" whose value is the complete updated HTML string.
Start the HTML with <!DOCTYPE html> and end with </html>.`,
		subject, instructions, currentHTML)
}
