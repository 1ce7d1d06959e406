package prompts_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/bellman/internal/campaigns"
	"github.com/JaimeStill/bellman/internal/profile"
	"github.com/JaimeStill/bellman/internal/prompts"
)

func sampleRequest() *campaigns.Request {
	req := &campaigns.Request{
		CampaignName: "Summer Launch",
		Brand: campaigns.BrandContext{
			BrandName:       "Acme",
			VoiceGuidelines: "Warm and direct without being pushy.",
			BannedPhrases:   []string{"cheapest"},
			RequiredPhrases: []string{"terms apply"},
			LegalFooter:     "You can unsubscribe at any time.",
		},
		Objective: campaigns.Objective{
			PrimaryKPI:     campaigns.KPIRevenue,
			TargetAudience: "Returning customers aged 25-40",
			Offer:          "20% off all summer apparel",
			GeoScope:       "Nordics",
			Language:       "English",
		},
		Channels:     []campaigns.Channel{campaigns.ChannelEmail},
		Deliverables: campaigns.Deliverables{NumberOfEmails: 3},
	}
	req.Normalize()
	return req
}

func TestMissingCriticalFields(t *testing.T) {
	t.Run("complete request has none", func(t *testing.T) {
		if missing := prompts.MissingCriticalFields(sampleRequest()); len(missing) != 0 {
			t.Errorf("missing = %v, want none", missing)
		}
	})

	t.Run("gaps reported by field path", func(t *testing.T) {
		req := &campaigns.Request{}
		missing := prompts.MissingCriticalFields(req)
		want := []string{
			"objective.offer",
			"objective.target_audience",
			"objective.geo_scope",
			"objective.language",
			"deliverables.number_of_emails",
		}
		if len(missing) != len(want) {
			t.Fatalf("missing = %v, want %v", missing, want)
		}
		for i := range want {
			if missing[i] != want[i] {
				t.Errorf("missing[%d] = %q, want %q", i, missing[i], want[i])
			}
		}
	})

	t.Run("short offer counts as missing", func(t *testing.T) {
		req := sampleRequest()
		req.Objective.Offer = "sale"
		missing := prompts.MissingCriticalFields(req)
		if len(missing) != 1 || missing[0] != "objective.offer" {
			t.Errorf("missing = %v, want [objective.offer]", missing)
		}
	})
}

func TestBuildClarify(t *testing.T) {
	t.Run("embeds detected gaps", func(t *testing.T) {
		req := sampleRequest()
		req.Objective.GeoScope = ""
		prompt := prompts.BuildClarify(req)
		if !strings.Contains(prompt, "objective.geo_scope") {
			t.Error("prompt missing detected field path")
		}
	})

	t.Run("reports none when complete", func(t *testing.T) {
		prompt := prompts.BuildClarify(sampleRequest())
		if !strings.Contains(prompt, "Potentially missing fields detected: none") {
			t.Error("prompt should report no detected gaps")
		}
	})

	t.Run("embeds the request JSON", func(t *testing.T) {
		prompt := prompts.BuildClarify(sampleRequest())
		if !strings.Contains(prompt, `"campaign_name": "Summer Launch"`) {
			t.Error("prompt missing serialized request")
		}
	})
}

func TestBuildStrategy(t *testing.T) {
	research := map[string]any{
		"audience_insights": []any{"Customers respond to early access"},
		"seasonal_context":  "Peak summer demand",
	}
	prompt := prompts.BuildStrategy(sampleRequest(), research)

	for _, want := range []string{
		"Summer Launch", "Acme", "20% off all summer apparel",
		"Customers respond to early access", "Peak summer demand",
		"Number of Emails: 3", "'cheapest'", "'terms apply'",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildExecution(t *testing.T) {
	bp := &campaigns.Blueprint{
		CampaignAngle: "Early access for loyal customers",
		CoreNarrative: "Reward loyalty before the public sale",
	}
	prompt := prompts.BuildExecution(sampleRequest(), bp, 1, "Announce the offer")

	for _, want := range []string{
		"Write email #2 of 3",
		"Early access for loyal customers",
		"THIS EMAIL'S NARRATIVE BEAT: Announce the offer",
		`"email_number": 2`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildCritique(t *testing.T) {
	bp := &campaigns.Blueprint{CampaignAngle: "Angle"}
	emails := []campaigns.EmailAsset{
		{EmailNumber: 1, SubjectLines: []string{"S1", "S2"}, CTAs: []string{"Shop"}, BodyText: "Body one"},
		{EmailNumber: 2},
	}
	prompt := prompts.BuildCritique(sampleRequest(), bp, emails)

	if !strings.Contains(prompt, "Email 1: SL=['S1']") {
		t.Error("summary should include only the first subject line")
	}
	if !strings.Contains(prompt, "--- EMAIL 2 BODY ---\n(no body)") {
		t.Error("empty body should render as (no body)")
	}
	if !strings.Contains(prompt, "Legal Footer required: Yes") {
		t.Error("footer requirement not reported")
	}
}

func TestBuildParse(t *testing.T) {
	t.Run("embeds the user prompt", func(t *testing.T) {
		prompt := prompts.BuildParse("3 emails for a shoe sale", false)
		if !strings.Contains(prompt, `"""3 emails for a shoe sale"""`) {
			t.Error("prompt missing user text")
		}
	})

	t.Run("force proceed forbids clarification", func(t *testing.T) {
		prompt := prompts.BuildParse("whatever", true)
		if !strings.Contains(prompt, "Do NOT set needs_clarification=true") {
			t.Error("force instruction missing")
		}
	})

	t.Run("default omits force instruction", func(t *testing.T) {
		prompt := prompts.BuildParse("whatever", false)
		if strings.Contains(prompt, "Do NOT set needs_clarification=true") {
			t.Error("force instruction present without force_proceed")
		}
	})
}

func TestBuildRapidBatch(t *testing.T) {
	t.Run("brief fields embedded", func(t *testing.T) {
		prompt := prompts.BuildRapidBatch(sampleRequest(), nil, "default")
		for _, want := range []string{
			"Acme", "20% off all summer apparel", "revenue",
			"Generate all 3 email(s)", `Use "default"`,
		} {
			if !strings.Contains(prompt, want) {
				t.Errorf("prompt missing %q", want)
			}
		}
	})

	t.Run("company context included when present", func(t *testing.T) {
		company := &profile.Company{
			CompanyName: "Acme Corp",
			Website:     "https://acme.example",
			Industry:    "Retail",
		}
		prompt := prompts.BuildRapidBatch(sampleRequest(), company, "minimal")
		if !strings.Contains(prompt, "COMPANY CONTEXT") || !strings.Contains(prompt, "https://acme.example") {
			t.Error("company context missing")
		}
		if !strings.Contains(prompt, `Use "minimal"`) {
			t.Error("default layout not embedded")
		}
	})

	t.Run("no company context when absent", func(t *testing.T) {
		prompt := prompts.BuildRapidBatch(sampleRequest(), nil, "default")
		if strings.Contains(prompt, "COMPANY CONTEXT") {
			t.Error("unexpected company context")
		}
	})

	t.Run("empty voice and window get defaults", func(t *testing.T) {
		req := sampleRequest()
		req.Brand.VoiceGuidelines = ""
		req.Constraints.SendWindow = ""
		prompt := prompts.BuildRapidBatch(req, nil, "default")
		if !strings.Contains(prompt, "professional, warm, conversational") {
			t.Error("voice default missing")
		}
		if !strings.Contains(prompt, "Send window:     ASAP") {
			t.Error("send window default missing")
		}
	})
}

func TestBuildProduction(t *testing.T) {
	email := &campaigns.EmailAsset{
		EmailNumber:        1,
		EmailName:          "Teaser",
		SubjectLines:       []string{"Primary subject", "Alt subject"},
		PreviewTextOptions: []string{"Preview"},
		BodyText:           "Full body copy.",
		CTAs:               []string{"Shop Now"},
	}

	t.Run("brand tokens applied when auto design off", func(t *testing.T) {
		req := sampleRequest()
		prompt := prompts.BuildProduction(req, email)
		if !strings.Contains(prompt, "BRAND DESIGN TOKENS") {
			t.Error("token section missing")
		}
		if !strings.Contains(prompt, req.Brand.DesignTokens.PrimaryColor) {
			t.Error("primary color missing")
		}
		if !strings.Contains(prompt, "Primary subject") || !strings.Contains(prompt, "Full body copy.") {
			t.Error("content missing")
		}
	})

	t.Run("auto design lets the model pick the palette", func(t *testing.T) {
		req := sampleRequest()
		req.Brand.DesignTokens.AutoDesign = true
		prompt := prompts.BuildProduction(req, email)
		if strings.Contains(prompt, "BRAND DESIGN TOKENS") {
			t.Error("token section present in auto design mode")
		}
		if !strings.Contains(prompt, "Choose a single PRIMARY hue") {
			t.Error("palette instruction missing")
		}
	})

	t.Run("requests JSON envelope", func(t *testing.T) {
		prompt := prompts.BuildProduction(sampleRequest(), email)
		if !strings.Contains(prompt, `"email_html"`) {
			t.Error("JSON envelope instruction missing")
		}
	})
}
