// Package render stitches model-generated content into email HTML skeletons
// and recovers HTML documents from messy model output.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JaimeStill/bellman/internal/campaigns"
	"github.com/JaimeStill/bellman/internal/profile"
)

// Sections carries the per-email content slots produced by the model.
type Sections struct {
	Subject        string   `json:"subject"`
	Preheader      string   `json:"preheader"`
	Headline       string   `json:"headline"`
	IntroParagraph string   `json:"intro_paragraph"`
	OfferLine      string   `json:"offer_line"`
	BodyBullets    []string `json:"body_bullets"`
	UrgencyLine    string   `json:"urgency_line"`
	CTAButton      string   `json:"cta_button"`
	FooterLine     string   `json:"footer_line"`
	HTMLContent    string   `json:"html_content,omitempty"`
}

// BodyText flattens the content slots into plain email body text for rule
// validation, one slot per line with bullets marked.
func (s *Sections) BodyText() string {
	parts := make([]string, 0, 4+len(s.BodyBullets))
	for _, p := range []string{s.Headline, s.IntroParagraph, s.OfferLine} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	for _, b := range s.BodyBullets {
		if b != "" {
			parts = append(parts, "• "+b)
		}
	}
	if s.UrgencyLine != "" {
		parts = append(parts, s.UrgencyLine)
	}
	return strings.Join(parts, "\n")
}

// escapeSlot neutralizes template braces in model content so user text can
// never corrupt placeholder substitution.
func escapeSlot(s string) string {
	s = strings.ReplaceAll(s, "{", "&#123;")
	return strings.ReplaceAll(s, "}", "&#125;")
}

// headerTextColor picks white or near-black header text from the brand
// color's relative luminance. Unparseable colors get white text.
func headerTextColor(brandColor string) string {
	if len(brandColor) < 7 || brandColor[0] != '#' {
		return "#ffffff"
	}
	r, err1 := strconv.ParseUint(brandColor[1:3], 16, 8)
	g, err2 := strconv.ParseUint(brandColor[3:5], 16, 8)
	b, err3 := strconv.ParseUint(brandColor[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return "#ffffff"
	}
	luminance := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
	if luminance < 0.55 {
		return "#ffffff"
	}
	return "#111827"
}

// ResolveCTAURL picks the CTA link: company website, then the campaign-level
// CTA URL, then a dead anchor.
func ResolveCTAURL(req *campaigns.Request, company *profile.Company) string {
	if company != nil && company.Website != "" {
		return company.Website
	}
	if req.Objective.CTAURL != "" {
		return req.Objective.CTAURL
	}
	return "#"
}

// DetectLayoutStyle infers the layout style from the request offer text,
// brand voice, and company profile hints. Returns a template name or
// "custom"; falls back to "default" when nothing matches.
func DetectLayoutStyle(req *campaigns.Request, company *profile.Company) string {
	parts := []string{req.Objective.Offer, req.Brand.VoiceGuidelines}
	if company != nil {
		parts = append(parts, company.DesignHints, company.Tone)
	}
	corpus := strings.ToLower(strings.Join(parts, " "))
	for _, kw := range styleKeywords {
		if strings.Contains(corpus, kw.Keyword) {
			return kw.Style
		}
	}
	return "default"
}

// RenderEmail stitches content slots into the skeleton selected by
// layoutStyle, falling back to the default skeleton for unknown styles.
func RenderEmail(req *campaigns.Request, sections *Sections, company *profile.Company, layoutStyle string) string {
	brandColor := strings.TrimSpace(req.Brand.DesignTokens.PrimaryColor)
	if brandColor == "" {
		brandColor = "#0066cc"
	}

	var bullets strings.Builder
	for _, b := range sections.BodyBullets {
		fmt.Fprintf(&bullets, "<li>%s</li>", escapeSlot(b))
	}

	urgencyHTML := ""
	if urgency := strings.TrimSpace(escapeSlot(sections.UrgencyLine)); urgency != "" {
		urgencyHTML = fmt.Sprintf(`<p style="margin:0 0 20px;font-size:14px;color:#dc2626;font-weight:600">%s</p>`, urgency)
	}

	ctaButton := sections.CTAButton
	if ctaButton == "" {
		ctaButton = "Learn More"
	}

	lang := req.Objective.Language
	if lang == "" {
		lang = "en"
	}

	template, ok := layoutTemplates[layoutStyle]
	if !ok {
		template = layoutDefault
	}

	return strings.NewReplacer(
		"{lang}", escapeSlot(lang),
		"{subject}", escapeSlot(sections.Subject),
		"{preheader}", escapeSlot(sections.Preheader),
		"{brand_color}", brandColor,
		"{header_text_color}", headerTextColor(brandColor),
		"{brand_name}", escapeSlot(req.Brand.BrandName),
		"{headline}", escapeSlot(sections.Headline),
		"{intro_paragraph}", escapeSlot(sections.IntroParagraph),
		"{offer_line}", escapeSlot(sections.OfferLine),
		"{bullets_html}", bullets.String(),
		"{urgency_html}", urgencyHTML,
		"{cta_url}", ResolveCTAURL(req, company),
		"{cta_button}", escapeSlot(ctaButton),
		"{footer_line}", escapeSlot(sections.FooterLine),
	).Replace(template)
}

// ValidateCustomHTML checks a model-rendered document before accepting it in
// place of a built-in skeleton. Returns failure reasons; empty means OK.
func ValidateCustomHTML(html, ctaURL string) []string {
	var errs []string
	lower := strings.ToLower(html)
	if !strings.Contains(lower, "<html") {
		errs = append(errs, "missing <html> tag")
	}
	if !strings.Contains(lower, "</html>") {
		errs = append(errs, "missing </html> tag")
	}
	if strings.Contains(lower, "<script") {
		errs = append(errs, "contains <script>, blocked for email safety")
	}
	if ctaURL != "" && ctaURL != "#" && !strings.Contains(html, ctaURL) {
		errs = append(errs, fmt.Sprintf("CTA URL %q not found in HTML", ctaURL))
	}
	return errs
}
