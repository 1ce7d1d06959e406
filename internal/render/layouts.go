package render

// HTML skeleton variants. All variants share identical {placeholder} slot
// names so renderEmail works for every variant without code changes.
// Inline CSS only; max-width 600px.

const layoutDefault = `<!DOCTYPE html>
<html lang="{lang}">
<head><meta charset="UTF-8"/><meta name="viewport" content="width=device-width,initial-scale=1"/>
<title>{subject}</title></head>
<body style="margin:0;padding:0;background:#f4f4f5;font-family:Arial,Helvetica,sans-serif">
<div style="display:none;max-height:0;overflow:hidden;font-size:1px;color:#f4f4f5">{preheader}&nbsp;</div>
<table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0" style="background:#f4f4f5">
<tr><td align="center" style="padding:24px 12px">
<table role="presentation" width="600" cellspacing="0" cellpadding="0" border="0" style="max-width:600px;width:100%;background:#ffffff;border-radius:8px;overflow:hidden">
  <tr><td style="background:{brand_color};padding:28px 40px;text-align:center">
    <span style="font-size:22px;font-weight:700;color:{header_text_color}">{brand_name}</span>
  </td></tr>
  <tr><td style="padding:40px 40px 24px">
    <h1 style="margin:0 0 20px;font-size:28px;line-height:1.3;color:#111827">{headline}</h1>
    <p style="margin:0 0 20px;font-size:16px;line-height:1.7;color:#374151">{intro_paragraph}</p>
    <div style="background:#f9fafb;border-left:4px solid {brand_color};padding:14px 18px;margin:0 0 20px;border-radius:0 6px 6px 0">
      <strong style="font-size:17px;color:#111827">{offer_line}</strong>
    </div>
    <ul style="margin:0 0 24px;padding-left:22px;color:#374151;font-size:16px;line-height:2">{bullets_html}</ul>
    {urgency_html}
  </td></tr>
  <tr><td style="padding:0 40px 36px;text-align:center">
    <a href="{cta_url}" style="display:inline-block;background:{brand_color};color:#ffffff;text-decoration:none;padding:16px 44px;border-radius:6px;font-size:16px;font-weight:700">{cta_button}</a>
  </td></tr>
  <tr><td style="background:#f9fafb;padding:20px 40px;text-align:center;border-top:1px solid #e5e7eb">
    <p style="margin:0 0 6px;font-size:12px;color:#9ca3af">{footer_line}</p>
    <p style="margin:0;font-size:11px;color:#9ca3af">
      <a href="#" style="color:#9ca3af;text-decoration:underline">Unsubscribe</a>&nbsp;|&nbsp;
      <a href="#" style="color:#9ca3af;text-decoration:underline">Privacy Policy</a>
    </p>
  </td></tr>
</table></td></tr></table>
</body></html>`

const layoutMinimal = `<!DOCTYPE html>
<html lang="{lang}">
<head><meta charset="UTF-8"/><meta name="viewport" content="width=device-width,initial-scale=1"/>
<title>{subject}</title></head>
<body style="margin:0;padding:0;background:#ffffff;font-family:Georgia,'Times New Roman',serif">
<div style="display:none;max-height:0;overflow:hidden;font-size:1px;color:#ffffff">{preheader}&nbsp;</div>
<table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0" style="background:#ffffff">
<tr><td align="center" style="padding:48px 24px">
<table role="presentation" width="520" cellspacing="0" cellpadding="0" border="0" style="max-width:520px;width:100%">
  <tr><td style="padding-bottom:32px;text-align:center;border-bottom:1px solid #e5e7eb">
    <span style="font-size:13px;font-weight:600;letter-spacing:3px;text-transform:uppercase;color:{brand_color}">{brand_name}</span>
  </td></tr>
  <tr><td style="padding:40px 0 24px">
    <h1 style="margin:0 0 24px;font-size:32px;line-height:1.25;color:#111827;font-weight:400">{headline}</h1>
    <p style="margin:0 0 24px;font-size:16px;line-height:1.8;color:#6b7280">{intro_paragraph}</p>
    <p style="margin:0 0 28px;font-size:17px;line-height:1.6;color:#111827;font-style:italic">{offer_line}</p>
    <ul style="margin:0 0 28px;padding-left:0;list-style:none;color:#374151;font-size:15px;line-height:2">{bullets_html}</ul>
    {urgency_html}
  </td></tr>
  <tr><td style="padding-bottom:40px">
    <a href="{cta_url}" style="display:inline-block;border:2px solid {brand_color};color:{brand_color};text-decoration:none;padding:14px 40px;font-size:14px;font-weight:600;letter-spacing:1px;text-transform:uppercase">{cta_button}</a>
  </td></tr>
  <tr><td style="padding-top:32px;border-top:1px solid #e5e7eb;text-align:center">
    <p style="margin:0 0 6px;font-size:11px;color:#9ca3af;letter-spacing:1px">{footer_line}</p>
    <p style="margin:0;font-size:11px;color:#9ca3af">
      <a href="#" style="color:#9ca3af">Unsubscribe</a>&nbsp;&nbsp;·&nbsp;&nbsp;
      <a href="#" style="color:#9ca3af">Privacy Policy</a>
    </p>
  </td></tr>
</table></td></tr></table>
</body></html>`

const layoutBold = `<!DOCTYPE html>
<html lang="{lang}">
<head><meta charset="UTF-8"/><meta name="viewport" content="width=device-width,initial-scale=1"/>
<title>{subject}</title></head>
<body style="margin:0;padding:0;background:#0f172a;font-family:'Helvetica Neue',Helvetica,Arial,sans-serif">
<div style="display:none;max-height:0;overflow:hidden;font-size:1px;color:#0f172a">{preheader}&nbsp;</div>
<table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0" style="background:#0f172a">
<tr><td align="center" style="padding:0">
<table role="presentation" width="600" cellspacing="0" cellpadding="0" border="0" style="max-width:600px;width:100%">
  <tr><td style="background:{brand_color};padding:40px 48px 32px">
    <p style="margin:0 0 16px;font-size:12px;font-weight:700;letter-spacing:3px;text-transform:uppercase;color:{header_text_color};opacity:0.8">{brand_name}</p>
    <h1 style="margin:0;font-size:42px;line-height:1.1;color:{header_text_color};font-weight:900">{headline}</h1>
  </td></tr>
  <tr><td style="background:#1e293b;padding:36px 48px">
    <p style="margin:0 0 28px;font-size:17px;line-height:1.7;color:#cbd5e1">{intro_paragraph}</p>
    <div style="background:{brand_color};padding:20px 24px;margin:0 0 28px;border-radius:4px">
      <strong style="font-size:20px;color:{header_text_color};display:block">{offer_line}</strong>
    </div>
    <ul style="margin:0 0 28px;padding-left:20px;color:#94a3b8;font-size:16px;line-height:2">{bullets_html}</ul>
    {urgency_html}
  </td></tr>
  <tr><td style="background:#0f172a;padding:32px 48px;text-align:center">
    <a href="{cta_url}" style="display:inline-block;background:{brand_color};color:{header_text_color};text-decoration:none;padding:18px 56px;border-radius:4px;font-size:17px;font-weight:900;letter-spacing:1px;text-transform:uppercase">{cta_button}</a>
  </td></tr>
  <tr><td style="background:#0f172a;padding:20px 48px 32px;text-align:center;border-top:1px solid #1e293b">
    <p style="margin:0 0 6px;font-size:11px;color:#475569">{footer_line}</p>
    <p style="margin:0;font-size:11px;color:#475569">
      <a href="#" style="color:#475569;text-decoration:underline">Unsubscribe</a>&nbsp;|&nbsp;
      <a href="#" style="color:#475569;text-decoration:underline">Privacy</a>
    </p>
  </td></tr>
</table></td></tr></table>
</body></html>`

const layoutNewsletter = `<!DOCTYPE html>
<html lang="{lang}">
<head><meta charset="UTF-8"/><meta name="viewport" content="width=device-width,initial-scale=1"/>
<title>{subject}</title></head>
<body style="margin:0;padding:0;background:#f1f5f9;font-family:Arial,Helvetica,sans-serif">
<div style="display:none;max-height:0;overflow:hidden;font-size:1px;color:#f1f5f9">{preheader}&nbsp;</div>
<table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0" style="background:#f1f5f9">
<tr><td align="center" style="padding:20px 12px">
<table role="presentation" width="600" cellspacing="0" cellpadding="0" border="0" style="max-width:600px;width:100%;background:#ffffff">
  <tr><td style="background:{brand_color};padding:16px 40px;text-align:center">
    <span style="font-size:18px;font-weight:700;color:{header_text_color};letter-spacing:1px">{brand_name}</span>
  </td></tr>
  <tr><td style="background:#ffffff;padding:32px 40px 16px;border-bottom:2px solid {brand_color}">
    <h1 style="margin:0;font-size:26px;line-height:1.3;color:#0f172a">{headline}</h1>
  </td></tr>
  <tr><td style="padding:24px 40px 8px">
    <p style="margin:0;font-size:15px;line-height:1.7;color:#374151">{intro_paragraph}</p>
  </td></tr>
  <tr><td style="padding:8px 40px 8px">
    <table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0">
      <tr><td style="background:#f8fafc;border:1px solid #e2e8f0;padding:16px 20px">
        <p style="margin:0 0 4px;font-size:10px;font-weight:700;letter-spacing:2px;text-transform:uppercase;color:{brand_color}">Featured Offer</p>
        <p style="margin:0;font-size:16px;font-weight:700;color:#0f172a">{offer_line}</p>
      </td></tr>
    </table>
  </td></tr>
  <tr><td style="padding:8px 40px 16px">
    <p style="margin:0 0 8px;font-size:10px;font-weight:700;letter-spacing:2px;text-transform:uppercase;color:#94a3b8">Highlights</p>
    <ul style="margin:0;padding-left:20px;color:#374151;font-size:15px;line-height:2">{bullets_html}</ul>
  </td></tr>
  <tr><td style="padding:0 40px 16px">{urgency_html}</td></tr>
  <tr><td style="padding:16px 40px 32px;text-align:center">
    <a href="{cta_url}" style="display:inline-block;background:{brand_color};color:{header_text_color};text-decoration:none;padding:14px 48px;font-size:15px;font-weight:700">{cta_button}</a>
  </td></tr>
  <tr><td style="background:#f8fafc;padding:20px 40px;text-align:center;border-top:1px solid #e2e8f0">
    <p style="margin:0 0 4px;font-size:11px;color:#94a3b8">{footer_line}</p>
    <p style="margin:0;font-size:11px;color:#94a3b8">
      <a href="#" style="color:#94a3b8;text-decoration:underline">Unsubscribe</a>&nbsp;|&nbsp;
      <a href="#" style="color:#94a3b8;text-decoration:underline">Privacy Policy</a>
    </p>
  </td></tr>
</table></td></tr></table>
</body></html>`

const layoutPlayful = `<!DOCTYPE html>
<html lang="{lang}">
<head><meta charset="UTF-8"/><meta name="viewport" content="width=device-width,initial-scale=1"/>
<title>{subject}</title></head>
<body style="margin:0;padding:0;background:#fdf4ff;font-family:'Helvetica Neue',Helvetica,Arial,sans-serif">
<div style="display:none;max-height:0;overflow:hidden;font-size:1px;color:#fdf4ff">{preheader}&nbsp;</div>
<table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0" style="background:#fdf4ff">
<tr><td align="center" style="padding:24px 16px">
<table role="presentation" width="560" cellspacing="0" cellpadding="0" border="0" style="max-width:560px;width:100%;background:#ffffff;border-radius:24px;overflow:hidden">
  <tr><td style="background:{brand_color};padding:32px 40px;text-align:center">
    <span style="font-size:20px;font-weight:800;color:{header_text_color}">{brand_name} 🎉</span>
  </td></tr>
  <tr><td style="padding:36px 40px 20px">
    <h1 style="margin:0 0 16px;font-size:30px;line-height:1.2;color:#1e1b4b;font-weight:800">{headline}</h1>
    <p style="margin:0 0 20px;font-size:16px;line-height:1.7;color:#6b7280">{intro_paragraph}</p>
  </td></tr>
  <tr><td style="padding:0 40px 20px">
    <div style="background:#fdf4ff;border-radius:16px;padding:20px 24px">
      <p style="margin:0;font-size:17px;font-weight:700;color:#1e1b4b">{offer_line}</p>
    </div>
  </td></tr>
  <tr><td style="padding:0 40px 24px">
    <ul style="margin:0;padding-left:0;list-style:none;color:#374151;font-size:15px;line-height:2">{bullets_html}</ul>
    {urgency_html}
  </td></tr>
  <tr><td style="padding:0 40px 36px;text-align:center">
    <a href="{cta_url}" style="display:inline-block;background:{brand_color};color:{header_text_color};text-decoration:none;padding:16px 48px;border-radius:100px;font-size:16px;font-weight:800">{cta_button} →</a>
  </td></tr>
  <tr><td style="background:#f5f3ff;padding:20px 40px;text-align:center;border-top:2px dashed #ddd6fe">
    <p style="margin:0 0 4px;font-size:11px;color:#a78bfa">{footer_line}</p>
    <p style="margin:0;font-size:11px;color:#a78bfa">
      <a href="#" style="color:#a78bfa;text-decoration:underline">Unsubscribe</a>&nbsp;|&nbsp;
      <a href="#" style="color:#a78bfa;text-decoration:underline">Privacy</a>
    </p>
  </td></tr>
</table></td></tr></table>
</body></html>`

const layoutPremium = `<!DOCTYPE html>
<html lang="{lang}">
<head><meta charset="UTF-8"/><meta name="viewport" content="width=device-width,initial-scale=1"/>
<title>{subject}</title></head>
<body style="margin:0;padding:0;background:#fafaf9;font-family:Georgia,'Times New Roman',Times,serif">
<div style="display:none;max-height:0;overflow:hidden;font-size:1px;color:#fafaf9">{preheader}&nbsp;</div>
<table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0" style="background:#fafaf9">
<tr><td align="center" style="padding:48px 24px">
<table role="presentation" width="540" cellspacing="0" cellpadding="0" border="0" style="max-width:540px;width:100%;background:#1c1917">
  <tr><td style="padding:40px 52px 28px;border-bottom:1px solid #292524">
    <p style="margin:0 0 8px;font-size:10px;letter-spacing:4px;text-transform:uppercase;color:{brand_color}">{brand_name}</p>
    <div style="width:32px;height:1px;background:{brand_color}"></div>
  </td></tr>
  <tr><td style="padding:40px 52px 28px">
    <h1 style="margin:0 0 28px;font-size:30px;line-height:1.3;color:#f5f5f4;font-weight:400;font-style:italic">{headline}</h1>
    <p style="margin:0 0 28px;font-size:15px;line-height:1.8;color:#a8a29e">{intro_paragraph}</p>
    <p style="margin:0 0 28px;font-size:16px;line-height:1.6;color:#d6d3d1;border-left:2px solid {brand_color};padding-left:16px">{offer_line}</p>
    <ul style="margin:0 0 28px;padding-left:0;list-style:none;color:#a8a29e;font-size:14px;line-height:2">{bullets_html}</ul>
    {urgency_html}
  </td></tr>
  <tr><td style="padding:0 52px 40px">
    <a href="{cta_url}" style="display:inline-block;border:1px solid {brand_color};color:{brand_color};text-decoration:none;padding:14px 40px;font-size:13px;letter-spacing:2px;text-transform:uppercase;font-family:Arial,sans-serif">{cta_button}</a>
  </td></tr>
  <tr><td style="padding:24px 52px 32px;border-top:1px solid #292524;text-align:center">
    <p style="margin:0 0 4px;font-size:10px;color:#57534e;letter-spacing:1px">{footer_line}</p>
    <p style="margin:0;font-size:10px;color:#57534e">
      <a href="#" style="color:#57534e;text-decoration:underline">Unsubscribe</a>&nbsp;&nbsp;·&nbsp;&nbsp;
      <a href="#" style="color:#57534e;text-decoration:underline">Privacy</a>
    </p>
  </td></tr>
</table></td></tr></table>
</body></html>`

// layoutTemplates maps layout style names to skeletons.
var layoutTemplates = map[string]string{
	"default":    layoutDefault,
	"minimal":    layoutMinimal,
	"bold":       layoutBold,
	"newsletter": layoutNewsletter,
	"playful":    layoutPlayful,
	"premium":    layoutPremium,
}

// styleKeywords maps hint words to layout styles. Order matters: the first
// keyword found in the corpus wins.
var styleKeywords = []struct {
	Keyword string
	Style   string
}{
	{"minimal", "minimal"},
	{"clean", "minimal"},
	{"simple", "minimal"},
	{"whitespace", "minimal"},
	{"bold", "bold"},
	{"strong", "bold"},
	{"dark", "bold"},
	{"powerful", "bold"},
	{"newsletter", "newsletter"},
	{"digest", "newsletter"},
	{"blog", "newsletter"},
	{"sections", "newsletter"},
	{"playful", "playful"},
	{"fun", "playful"},
	{"friendly", "playful"},
	{"quirky", "playful"},
	{"premium", "premium"},
	{"luxury", "premium"},
	{"elegant", "premium"},
	{"exclusive", "premium"},
	{"sophisticated", "premium"},
	{"custom", "custom"},
	{"unique", "custom"},
	{"bespoke", "custom"},
	{"different layout", "custom"},
	{"different design", "custom"},
}

// LayoutStyles returns the selectable template names, excluding "custom".
func LayoutStyles() []string {
	return []string{"default", "minimal", "bold", "newsletter", "playful", "premium"}
}

// KnownLayout reports whether style names one of the built-in templates.
func KnownLayout(style string) bool {
	_, ok := layoutTemplates[style]
	return ok
}
