package prompts

import (
	"fmt"

	"github.com/JaimeStill/bellman/internal/campaigns"
)

// emailSkeletonGuide is the shared HTML construction guide embedded in every
// production prompt.
const emailSkeletonGuide = `━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
COLOUR SYSTEM — derive every colour from ONE brand hue
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Pick a single primary hue (the brand colour). Then construct:
  • PRIMARY       — the full-saturation brand colour (header band bg, CTA button bg)
  • PRIMARY_DARK  — PRIMARY darkened ~15% (hover / shadow hints, footer link)
  • PRIMARY_TINT  — PRIMARY with ~90% white mixed in (hero section bg, CTA band bg)
  • PRIMARY_TEXT  — dark neutral for reading (#1a1a1a or very dark shade of PRIMARY)
  • SURFACE       — #ffffff (body section bg)
  • SUBTLE        — #f5f5f5 or a near-white tint (footer bg)
Do NOT introduce extra hues. All section backgrounds, text, and accents must be
tints or shades of this one palette. This creates a cohesive, on-brand look.

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
STRUCTURAL SKELETON — follow this exact section order
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
  1. <!DOCTYPE html> + <html> + <head> with viewport meta + <style> block
  2. Outer wrapper <table> width="100%", background-color: PRIMARY_TINT (the page canvas).
  3. Inner card <table> width="600", centered, background-color: #ffffff,
     border-radius:16px, overflow:hidden — this is the card the reader sees.
     Wrap it in a <td> with padding:24px on desktop so the card floats on the canvas.
  4. PREHEADER ROW (inside inner card): hidden preview-text span:
       <span style="display:none;font-size:1px;color:#ffffff;max-height:0;max-width:0;opacity:0;overflow:hidden;mso-hide:all;">PREVIEW_TEXT_HERE &zwnj;&nbsp;&zwnj;&nbsp;&zwnj;&nbsp;&zwnj;&nbsp;&zwnj;&nbsp;</span>
  5. HEADER BAND: <td> background-color: PRIMARY, border-radius:16px 16px 0 0 (top corners only).
     Contains brand name in white bold text (28px) or logo. Padding: 36px 40px 28px.
  6. HERO SECTION: <td> background-color: PRIMARY_TINT, padding: 32px 40px.
     h1-style headline in PRIMARY_DARK (28–32px bold), then one supporting sentence in
     PRIMARY_TEXT (16px). No border-radius needed here — it sits between header and body.
  7. BODY SECTION: <td> background-color: #ffffff, padding: 32px 40px.
     Body copy in PRIMARY_TEXT (#1a1a1a or equivalent), 16px, line-height:1.7.
     Break into short paragraphs with margin-bottom:16px each.
  8. CTA BAND: <td> background-color: #ffffff (SURFACE), padding: 28px 40px, text-align:center.
     Holds the bulletproof button — use EXACT pattern below.
  9. FOOTER BAND: <td> background-color: SUBTLE (#f5f5f5), border-radius: 0 0 16px 16px
     (bottom corners only). 13px text in #888888. Padding: 24px 40px.
     Contains legal footer and unsubscribe link.
  10. Close all tables and </html>.

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
EXACT BULLETPROOF CTA BUTTON — rounded box shape, use this verbatim:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
<table role="presentation" border="0" cellpadding="0" cellspacing="0" align="center" style="border-collapse:collapse;mso-table-lspace:0pt;mso-table-rspace:0pt;">
  <tbody>
    <tr>
      <td align="center" style="border-radius:8px;mso-padding-alt:0;" bgcolor="YOUR_PRIMARY">
        <!--[if mso]>
        <v:roundrect xmlns:v="urn:schemas-microsoft-com:vml" xmlns:w="urn:schemas-microsoft-com:office:word"
          href="https://example.com" style="height:52px;v-text-anchor:middle;width:240px;" arcsize="10%"
          strokecolor="YOUR_PRIMARY" fillcolor="YOUR_PRIMARY">
          <w:anchorlock/>
          <center style="color:#ffffff;font-family:Arial,sans-serif;font-size:16px;font-weight:bold;">YOUR_CTA_LABEL</center>
        </v:roundrect>
        <![endif]-->
        <!--[if !mso]><!-->
        <a href="https://example.com" target="_blank"
          style="background-color:YOUR_PRIMARY;border-radius:8px;color:#ffffff;display:inline-block;font-family:Arial,Helvetica,sans-serif;font-size:16px;font-weight:bold;line-height:52px;mso-hide:all;padding:0 36px;text-decoration:none;text-align:center;-webkit-text-size-adjust:none;letter-spacing:0.3px;">YOUR_CTA_LABEL</a>
        <!--<![endif]-->
      </td>
    </tr>
  </tbody>
</table>
(Replace YOUR_PRIMARY with the exact 6-digit hex of the primary brand colour.
 Replace YOUR_CTA_LABEL with the CTA text. Outlook renders square corners — acceptable.)

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
MANDATORY TECHNICAL RULES
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
• ALL CSS must be inlined on every element — <style> block in <head> for @media only.
• Table-based layout throughout. Do NOT use <div> for layout blocks.
• Every table: border="0" cellpadding="0" cellspacing="0" role="presentation"
  and style="border-collapse:collapse;mso-table-lspace:0pt;mso-table-rspace:0pt;"
• Every <td>: explicit font-family, font-size, color, vertical-align.
• Full 6-digit hex everywhere (#ffffff not #fff).
• Inner card table max-width 600px. Outer wrapper width="100%".
• Mobile @media (max-width:600px): .email-container { width:100% !important; },
  remove card padding, adjust font sizes.
• No CSS Grid, Flexbox, float, or position:absolute.

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
DESIGN QUALITY RULES
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
• Single cohesive palette — all colours tints/shades of one hue. No random accent colours.
• Card layout: the inner 600px container appears as a rounded card floating on a tinted canvas.
• Header top corners rounded (16px), footer bottom corners rounded (16px).
• CTA button is a rounded box (border-radius:8px). It is the email's only bold colour call-to-action.
• WCAG AA contrast on all text/bg combinations.
• Body paragraphs max 3–4 sentences, separated by 16px margin.
• Footer recedes visually — smaller, lighter, no competing colours.
• Aesthetic: warm, modern, human — like a beautifully designed SaaS product email.`

// BuildProduction builds the HTML production prompt for one email asset.
// With auto-design tokens the model picks the palette itself; otherwise the
// brand design tokens are applied exactly.
func BuildProduction(req *campaigns.Request, email *campaigns.EmailAsset) string {
	dt := req.Brand.DesignTokens

	subject := ""
	if len(email.SubjectLines) > 0 {
		subject = email.SubjectLines[0]
	}
	preview := ""
	if len(email.PreviewTextOptions) > 0 {
		preview = email.PreviewTextOptions[0]
	}
	cta := "Shop Now"
	if len(email.CTAs) > 0 {
		cta = email.CTAs[0]
	}

	logoLine := "No logo — render the brand name as styled bold text in the header band instead."
	if dt.LogoURL != "" {
		logoLine = fmt.Sprintf("Logo image URL (embed at top of header band): %s", dt.LogoURL)
	}

	if dt.AutoDesign {
		return fmt.Sprintf(`You are an expert HTML email developer. Produce a single, complete, production-ready HTML email that looks like it was crafted by a world-class design team (think: Stripe, Linear, or a top direct-to-consumer brand). It must render correctly in Gmail, Apple Mail, and Outlook 2016+.

═══════════════════════════════════════════════
CONTENT TO ENCODE
═══════════════════════════════════════════════
Brand name:    %s
Campaign:      %s
%s

Subject line:  %s
Preview text:  %s
Body copy:
%s

CTA button label: %s
Legal footer text: %s

═══════════════════════════════════════════════
COLOUR PALETTE — pick ONE primary hue, then derive everything from it:
═══════════════════════════════════════════════
- Choose a single PRIMARY hue that suits "%s" and the campaign theme.
- PRIMARY: full-saturation version → header band background, CTA button.
- PRIMARY_DARK: ~15%% darker → h1 headline colour in the hero section.
- PRIMARY_TINT: PRIMARY mixed ~90%% white → hero section bg, CTA band bg, outer canvas bg.
- Body text: #1a1a1a on #ffffff. Footer bg: #f5f5f5, footer text: #888888.
- Do NOT introduce any colour from a different hue family. Monochromatic palette only.

═══════════════════════════════════════════════
STRUCTURE & CODE PATTERNS
═══════════════════════════════════════════════
%s

Return a JSON object with a single key "email_html" whose value is the complete HTML string.
Start the HTML with <!DOCTYPE html> and end with </html>.`,
			req.Brand.BrandName,
			email.EmailName,
			logoLine,
			subject,
			preview,
			email.BodyText,
			cta,
			req.Brand.LegalFooter,
			req.Brand.BrandName,
			emailSkeletonGuide)
	}

	fontStackHeading := fmt.Sprintf("'%s',Arial,Helvetica,sans-serif", dt.FontFamilyHeading)
	fontStackBody := fmt.Sprintf("'%s',Arial,Helvetica,sans-serif", dt.FontFamilyBody)
	accent := dt.AccentColor
	if accent == "" {
		accent = dt.PrimaryColor
	}

	return fmt.Sprintf(`You are an expert HTML email developer. Produce a single, complete, production-ready HTML email following the brand tokens below exactly. It must render correctly in Gmail, Apple Mail, and Outlook 2016+.

═══════════════════════════════════════════════
BRAND DESIGN TOKENS  (apply these exactly — do not invent other values)
═══════════════════════════════════════════════
Primary colour (header band bg, links):   %s
Secondary colour (hero section bg):       %s
Accent colour (CTA button bg):            %s
Heading font stack:                       %s
Body font stack:                          %s
Base body font size:                      %s
Line height:                              %s
Spacing unit (base padding):              %s
Border radius (buttons, cards):           %s
%s

═══════════════════════════════════════════════
CONTENT TO ENCODE
═══════════════════════════════════════════════
Brand name:    %s
Subject line:  %s
Preview text:  %s
Body copy:
%s

CTA button label: %s
Legal footer text: %s

═══════════════════════════════════════════════
STRUCTURE & CODE PATTERNS
═══════════════════════════════════════════════
%s

Apply the brand tokens and derive the full palette:
- PRIMARY = %s → header band bg, CTA button bg
- PRIMARY_DARK = %s darkened ~15%% → h1 headline colour in hero
- PRIMARY_TINT = %s → hero section bg, CTA band bg, outer canvas bg
- CTA button bg = %s (rounded box shape, border-radius:8px)
- All body text: font-size = %s; line-height = %s; color = #1a1a1a
- Inner card border-radius: 16px (header top corners, footer bottom corners)
- Section padding based on spacing unit %s (use multiples as needed)

Return a JSON object with a single key "email_html" whose value is the complete HTML string.
Start the HTML with <!DOCTYPE html> and end with </html>.`,
		dt.PrimaryColor,
		dt.SecondaryColor,
		accent,
		fontStackHeading,
		fontStackBody,
		dt.FontSizeBase,
		dt.LineHeight,
		dt.SpacingUnit,
		dt.BorderRadius,
		logoLine,
		req.Brand.BrandName,
		subject,
		preview,
		email.BodyText,
		cta,
		req.Brand.LegalFooter,
		emailSkeletonGuide,
		dt.PrimaryColor,
		dt.PrimaryColor,
		dt.SecondaryColor,
		accent,
		dt.FontSizeBase,
		dt.LineHeight,
		dt.SpacingUnit)
}
