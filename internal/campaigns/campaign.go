// Package campaigns defines the campaign domain model: request and response
// shapes for multi-email marketing campaign generation.
package campaigns

import (
	"encoding/json"
	"slices"
)

// KPI identifies a measurable campaign objective.
type KPI string

// Valid campaign KPIs.
const (
	KPIRevenue           KPI = "revenue"
	KPIConversionRate    KPI = "conversion_rate"
	KPIOpenRate          KPI = "open_rate"
	KPIClickThroughRate  KPI = "click_through_rate"
	KPILeadsGenerated    KPI = "leads_generated"
	KPIBrandAwareness    KPI = "brand_awareness"
	KPICustomerRetention KPI = "customer_retention"
	KPIAverageOrderValue KPI = "average_order_value"
	KPIROAS              KPI = "roas"
)

var kpis = []KPI{
	KPIRevenue,
	KPIConversionRate,
	KPIOpenRate,
	KPIClickThroughRate,
	KPILeadsGenerated,
	KPIBrandAwareness,
	KPICustomerRetention,
	KPIAverageOrderValue,
	KPIROAS,
}

// KPIs returns the list of valid campaign KPIs.
func KPIs() []KPI {
	return kpis
}

// UnmarshalJSON validates that the decoded string is a known KPI value.
func (k *KPI) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := KPI(raw)
	if !slices.Contains(kpis, v) {
		return ErrInvalidKPI
	}
	*k = v
	return nil
}

// Channel identifies a marketing delivery channel.
type Channel string

// Valid delivery channels.
const (
	ChannelEmail      Channel = "email"
	ChannelSMS        Channel = "sms"
	ChannelPush       Channel = "push"
	ChannelSocial     Channel = "social"
	ChannelPaidSearch Channel = "paid_search"
	ChannelDisplay    Channel = "display"
)

var channels = []Channel{
	ChannelEmail,
	ChannelSMS,
	ChannelPush,
	ChannelSocial,
	ChannelPaidSearch,
	ChannelDisplay,
}

// UnmarshalJSON validates that the decoded string is a known channel value.
func (c *Channel) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Channel(raw)
	if !slices.Contains(channels, v) {
		return ErrInvalidChannel
	}
	*c = v
	return nil
}

// Status reports the terminal state of a generation run.
type Status string

const (
	StatusNeedsClarification Status = "needs_clarification"
	StatusCompleted          Status = "completed"
)

// DesignTokens carries brand visual identity values used during HTML production.
type DesignTokens struct {
	PrimaryColor      string `json:"primary_color"`
	SecondaryColor    string `json:"secondary_color"`
	AccentColor       string `json:"accent_color,omitempty"`
	FontFamilyHeading string `json:"font_family_heading"`
	FontFamilyBody    string `json:"font_family_body"`
	FontSizeBase      string `json:"font_size_base"`
	LineHeight        string `json:"line_height"`
	SpacingUnit       string `json:"spacing_unit"`
	BorderRadius      string `json:"border_radius"`
	LogoURL           string `json:"logo_url,omitempty"`
	AutoDesign        bool   `json:"auto_design,omitempty"`
}

func (d *DesignTokens) applyDefaults() {
	if d.PrimaryColor == "" {
		d.PrimaryColor = "#000000"
	}
	if d.SecondaryColor == "" {
		d.SecondaryColor = "#FFFFFF"
	}
	if d.FontFamilyHeading == "" {
		d.FontFamilyHeading = "Georgia, serif"
	}
	if d.FontFamilyBody == "" {
		d.FontFamilyBody = "Arial, sans-serif"
	}
	if d.FontSizeBase == "" {
		d.FontSizeBase = "16px"
	}
	if d.LineHeight == "" {
		d.LineHeight = "1.6"
	}
	if d.SpacingUnit == "" {
		d.SpacingUnit = "8px"
	}
	if d.BorderRadius == "" {
		d.BorderRadius = "4px"
	}
}

// BrandContext carries brand identity, voice, and policy constraints.
type BrandContext struct {
	BrandName        string       `json:"brand_name"`
	VoiceGuidelines  string       `json:"voice_guidelines"`
	BannedPhrases    []string     `json:"banned_phrases"`
	RequiredPhrases  []string     `json:"required_phrases"`
	LegalFooter      string       `json:"legal_footer"`
	DesignTokens     DesignTokens `json:"design_tokens"`
	ExampleEmailHTML string       `json:"example_email_html,omitempty"`
}

// Objective defines what the campaign is trying to achieve and for whom.
type Objective struct {
	PrimaryKPI     KPI    `json:"primary_kpi"`
	SecondaryKPIs  []KPI  `json:"secondary_kpis"`
	TargetAudience string `json:"target_audience"`
	Offer          string `json:"offer"`
	GeoScope       string `json:"geo_scope"`
	Language       string `json:"language"`
	CTAURL         string `json:"cta_url,omitempty"`
	CompanyDomain  string `json:"company_domain,omitempty"`
}

// Constraints bounds what generated copy is allowed to claim or promise.
type Constraints struct {
	DiscountCeiling  *float64 `json:"discount_ceiling,omitempty"`
	ComplianceNotes  string   `json:"compliance_notes"`
	SendWindow       string   `json:"send_window"`
	ExcludeSegments  []string `json:"exclude_segments"`
	RequiredSegments []string `json:"required_segments"`
}

// Deliverables specifies the requested campaign output.
type Deliverables struct {
	NumberOfEmails  int   `json:"number_of_emails"`
	IncludeHTML     *bool `json:"include_html,omitempty"`
	IncludeVariants bool  `json:"include_variants"`
}

// HTMLRequested reports whether rendered HTML output was requested,
// defaulting to true when unset.
func (d *Deliverables) HTMLRequested() bool {
	if d.IncludeHTML == nil {
		return true
	}
	return *d.IncludeHTML
}

// Request is the immutable campaign specification driving a generation run.
type Request struct {
	CampaignName string       `json:"campaign_name"`
	Brand        BrandContext `json:"brand"`
	Objective    Objective    `json:"objective"`
	Constraints  Constraints  `json:"constraints"`
	Channels     []Channel    `json:"channels"`
	Deliverables Deliverables `json:"deliverables"`
}

// Normalize fills optional request fields with their documented defaults.
func (r *Request) Normalize() {
	r.Brand.DesignTokens.applyDefaults()
	if len(r.Channels) == 0 {
		r.Channels = []Channel{ChannelEmail}
	}
	if r.Deliverables.IncludeHTML == nil {
		v := true
		r.Deliverables.IncludeHTML = &v
	}
}

// ClarificationQuestion asks the caller to resolve a missing or ambiguous field.
type ClarificationQuestion struct {
	Field     string `json:"field"`
	Question  string `json:"question"`
	WhyNeeded string `json:"why_needed"`
}

// Blueprint is the strategy artifact produced once per full-pipeline run.
type Blueprint struct {
	CampaignAngle   string            `json:"campaign_angle"`
	CoreNarrative   string            `json:"core_narrative"`
	OfferLogic      string            `json:"offer_logic"`
	NarrativeArc    []string          `json:"narrative_arc"`
	KPIMapping      map[string]string `json:"kpi_mapping"`
	ChannelStrategy map[string]string `json:"channel_strategy"`
	Risks           []string          `json:"risks"`
	Assumptions     []string          `json:"assumptions"`
}

// EmailAsset is one generated email unit, immutable once returned.
type EmailAsset struct {
	EmailNumber        int      `json:"email_number"`
	EmailName          string   `json:"email_name"`
	SubjectLines       []string `json:"subject_lines"`
	PreviewTextOptions []string `json:"preview_text_options"`
	BodyText           string   `json:"body_text"`
	CTAs               []string `json:"ctas"`
	SendTiming         string   `json:"send_timing"`
	HTML               string   `json:"html,omitempty"`
	AccessibilityNotes []string `json:"accessibility_notes"`
}

// CritiqueResult merges LLM critique with deterministic rule findings.
type CritiqueResult struct {
	Issues        []string `json:"issues"`
	Fixes         []string `json:"fixes"`
	RiskFlags     []string `json:"risk_flags"`
	LLMCommentary string   `json:"llm_commentary"`
	Score         int      `json:"score"`
}

// PhaseTimings records per-phase wall-clock durations in milliseconds,
// rounded to one decimal place. Nil fields mark phases that never ran.
type PhaseTimings struct {
	ClarifyMS    *float64 `json:"clarify_ms,omitempty"`
	ResearchMS   *float64 `json:"research_ms,omitempty"`
	StrategyMS   *float64 `json:"strategy_ms,omitempty"`
	ExecutionMS  *float64 `json:"execution_ms,omitempty"`
	ProductionMS *float64 `json:"production_ms,omitempty"`
	CritiqueMS   *float64 `json:"critique_ms,omitempty"`
	TotalMS      *float64 `json:"total_ms,omitempty"`
}

// ResponseMetadata correlates a response with its originating request and run cost.
type ResponseMetadata struct {
	RequestID      string       `json:"request_id"`
	ModelUsed      string       `json:"model_used"`
	TokensEstimate int          `json:"tokens_estimate"`
	Timings        PhaseTimings `json:"timings"`
}

// Response is the top-level result of a generation run.
type Response struct {
	Status                 Status                  `json:"status"`
	ClarificationQuestions []ClarificationQuestion `json:"clarification_questions"`
	Blueprint              *Blueprint              `json:"blueprint,omitempty"`
	Assets                 []EmailAsset            `json:"assets"`
	Critique               *CritiqueResult         `json:"critique,omitempty"`
	Metadata               *ResponseMetadata       `json:"metadata,omitempty"`
}

// PromptEmail is the flattened email shape returned by prompt-driven generation.
type PromptEmail struct {
	EmailNumber        int      `json:"email_number"`
	EmailName          string   `json:"email_name"`
	Subject            string   `json:"subject"`
	PreviewText        string   `json:"preview_text"`
	BodyText           string   `json:"body_text"`
	CTAs               []string `json:"ctas"`
	SendTiming         string   `json:"send_timing"`
	HTMLContent        string   `json:"html_content"`
	AccessibilityNotes []string `json:"accessibility_notes"`
}

// PromptResponse is the result of free-text prompt generation: either a
// clarification round or a completed set of rendered emails.
type PromptResponse struct {
	Status    Status                  `json:"status"`
	Questions []ClarificationQuestion `json:"questions"`
	Emails    []PromptEmail           `json:"emails"`
	Campaign  *Request                `json:"campaign,omitempty"`
	Metadata  *ResponseMetadata       `json:"metadata,omitempty"`
}

// ValidationIssue is one pre-generation finding against a campaign request.
type ValidationIssue struct {
	Field      string `json:"field"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ValidationResponse summarizes pre-generation validation without generating.
type ValidationResponse struct {
	Valid           bool              `json:"valid"`
	Issues          []ValidationIssue `json:"issues"`
	Recommendations []string          `json:"recommendations"`
}
