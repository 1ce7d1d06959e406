// Package rules implements deterministic validation and critique checks for
// campaign requests and generated email assets. The checks run on plain text
// without any model calls, making them fast, free, and predictable; they
// complement the model critique phase.
package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/JaimeStill/bellman/internal/campaigns"
)

const excessExclamationThreshold = 3

var (
	allCapsPattern     = regexp.MustCompile(`\b[A-Z]{4,}\b`)
	percentSymPattern  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	percentWordPattern = regexp.MustCompile(`(?i)(\d+)\s*percent`)
)

// Acronyms exempt from the all-caps check.
var legitimateCaps = map[string]bool{
	"HTML": true, "URL": true, "FAQ": true, "CEO": true, "CTA": true,
	"KPI": true, "ROI": true, "SMS": true, "USA": true, "UK": true,
}

// CheckResult aggregates the findings of one or more rule checks.
type CheckResult struct {
	Passed    bool
	Issues    []string
	RiskFlags []string
	Fixes     []string
}

func pass() CheckResult {
	return CheckResult{Passed: true}
}

func (r *CheckResult) merge(other CheckResult) {
	r.Issues = append(r.Issues, other.Issues...)
	r.RiskFlags = append(r.RiskFlags, other.RiskFlags...)
	r.Fixes = append(r.Fixes, other.Fixes...)
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func floatList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// CheckBannedPhrases verifies no banned phrase appears in the text,
// case-insensitively.
func CheckBannedPhrases(text string, banned []string, context string) CheckResult {
	lower := strings.ToLower(text)
	var found []string
	for _, phrase := range banned {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			found = append(found, phrase)
		}
	}
	if len(found) == 0 {
		return pass()
	}
	result := CheckResult{
		Issues: []string{fmt.Sprintf("%s: Contains banned phrase(s): %s", context, quoteList(found))},
	}
	for _, p := range found {
		result.RiskFlags = append(result.RiskFlags, fmt.Sprintf("BRAND SAFETY – %s: banned phrase '%s'", context, p))
		result.Fixes = append(result.Fixes, fmt.Sprintf("Remove or replace '%s' in %s.", p, context))
	}
	return result
}

// CheckRequiredPhrases verifies every required phrase appears at least once.
func CheckRequiredPhrases(text string, required []string, context string) CheckResult {
	lower := strings.ToLower(text)
	var missing []string
	for _, phrase := range required {
		if !strings.Contains(lower, strings.ToLower(phrase)) {
			missing = append(missing, phrase)
		}
	}
	if len(missing) == 0 {
		return pass()
	}
	result := CheckResult{
		Issues: []string{fmt.Sprintf("%s: Missing required phrase(s): %s", context, quoteList(missing))},
	}
	for _, p := range missing {
		result.Fixes = append(result.Fixes, fmt.Sprintf("Include '%s' in %s.", p, context))
	}
	return result
}

// CheckLegalFooter verifies the legal footer is present. Matching is against
// the first 30 characters of the configured footer.
func CheckLegalFooter(text, legalFooter, context string) CheckResult {
	if legalFooter == "" {
		return pass()
	}
	snippet := legalFooter
	if len(snippet) > 30 {
		snippet = snippet[:30]
	}
	if strings.Contains(strings.ToLower(text), strings.ToLower(snippet)) {
		return pass()
	}
	preview := legalFooter
	if len(preview) > 60 {
		preview = preview[:60]
	}
	return CheckResult{
		Issues:    []string{fmt.Sprintf("%s: Legal footer appears to be missing.", context)},
		RiskFlags: []string{fmt.Sprintf("COMPLIANCE – %s: Legal footer missing. This may violate CAN-SPAM/GDPR.", context)},
		Fixes:     []string{fmt.Sprintf("Add the required legal footer to %s: '%s...'", context, preview)},
	}
}

// CheckExclamationMarks flags excessive exclamation marks.
func CheckExclamationMarks(text, context string) CheckResult {
	count := strings.Count(text, "!")
	if count <= excessExclamationThreshold {
		return pass()
	}
	return CheckResult{
		Issues:    []string{fmt.Sprintf("%s: %d exclamation marks detected (threshold: %d).", context, count, excessExclamationThreshold)},
		RiskFlags: []string{fmt.Sprintf("SPAM RISK – %s: Excessive exclamation marks (%d) may trigger spam filters.", context, count)},
		Fixes:     []string{fmt.Sprintf("Reduce exclamation marks in %s to %d or fewer.", context, excessExclamationThreshold)},
	}
}

// CheckAllCaps flags words of four or more capital letters, excluding common
// acronyms. Offenders are deduplicated in first-occurrence order.
func CheckAllCaps(text, context string) CheckResult {
	var offenders []string
	seen := map[string]bool{}
	for _, word := range allCapsPattern.FindAllString(text, -1) {
		if legitimateCaps[word] || seen[word] {
			continue
		}
		seen[word] = true
		offenders = append(offenders, word)
	}
	if len(offenders) == 0 {
		return pass()
	}
	return CheckResult{
		Issues:    []string{fmt.Sprintf("%s: ALL CAPS words detected: %s", context, quoteList(offenders))},
		RiskFlags: []string{fmt.Sprintf("SPAM RISK – %s: ALL CAPS words may trigger spam filters.", context)},
		Fixes:     []string{fmt.Sprintf("Replace ALL CAPS words %s with title case in %s.", quoteList(offenders), context)},
	}
}

// CheckSpamTriggerWords matches the text against the embedded spam trigger
// dictionary. Issue and fix lists are capped at five phrases, risk flags at
// three, in dictionary order.
func CheckSpamTriggerWords(text, context string) CheckResult {
	lower := strings.ToLower(text)
	var found []string
	for _, phrase := range spamTriggers {
		if strings.Contains(lower, phrase) {
			found = append(found, phrase)
		}
	}
	if len(found) == 0 {
		return pass()
	}
	capped := found
	if len(capped) > 5 {
		capped = capped[:5]
	}
	flagged := found
	if len(flagged) > 3 {
		flagged = flagged[:3]
	}
	result := CheckResult{
		Issues: []string{fmt.Sprintf("%s: Potential spam trigger phrases: %s", context, quoteList(capped))},
	}
	for _, p := range flagged {
		result.RiskFlags = append(result.RiskFlags, fmt.Sprintf("SPAM RISK – %s: '%s' is a known spam trigger.", context, p))
	}
	for _, p := range capped {
		result.Fixes = append(result.Fixes, fmt.Sprintf("Rephrase or remove spam trigger '%s' in %s.", p, context))
	}
	return result
}

// CheckSubjectLineLength warns when a subject line exceeds 60 characters.
func CheckSubjectLineLength(subject, context string) CheckResult {
	length := len([]rune(subject))
	if length <= 60 {
		return pass()
	}
	return CheckResult{
		Issues: []string{fmt.Sprintf("%s: Subject line is %d characters (recommended ≤50, max 60).", context, length)},
		Fixes:  []string{fmt.Sprintf("Shorten subject line in %s to under 50 characters.", context)},
	}
}

// CheckPreviewTextLength warns when preview text exceeds 100 characters.
func CheckPreviewTextLength(preview, context string) CheckResult {
	length := len([]rune(preview))
	if length <= 100 {
		return pass()
	}
	return CheckResult{
		Issues: []string{fmt.Sprintf("%s: Preview text is %d characters (recommended ≤90).", context, length)},
		Fixes:  []string{fmt.Sprintf("Shorten preview text in %s to under 90 characters.", context)},
	}
}

// CheckDiscountCeiling verifies no discount mentioned in the text exceeds the
// configured ceiling. Both "30%" and "30 percent" forms are matched.
func CheckDiscountCeiling(text string, ceiling *float64, context string) CheckResult {
	if ceiling == nil {
		return pass()
	}
	var values []float64
	for _, m := range percentSymPattern.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			values = append(values, v)
		}
	}
	for _, m := range percentWordPattern.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			values = append(values, v)
		}
	}
	var violations []float64
	for _, v := range values {
		if v > *ceiling {
			violations = append(violations, v)
		}
	}
	if len(violations) == 0 {
		return pass()
	}
	result := CheckResult{
		Issues: []string{fmt.Sprintf("%s: Discount value(s) %s exceed ceiling of %g%%.", context, floatList(violations), *ceiling)},
		Fixes:  []string{fmt.Sprintf("Replace all discount values exceeding %g%% in %s.", *ceiling, context)},
	}
	for _, v := range violations {
		result.RiskFlags = append(result.RiskFlags, fmt.Sprintf("COMPLIANCE – %s: Discount %g%% exceeds the allowed ceiling of %g%%.", context, v, *ceiling))
	}
	return result
}

// RunEmailRules runs every rule check against a single email asset and
// aggregates the findings.
func RunEmailRules(req *campaigns.Request, email campaigns.EmailAsset) CheckResult {
	ctxBody := fmt.Sprintf("Email %d body", email.EmailNumber)
	ctxSubj := fmt.Sprintf("Email %d subject lines", email.EmailNumber)
	ctxPreview := fmt.Sprintf("Email %d preview text", email.EmailNumber)

	var agg CheckResult
	agg.merge(CheckBannedPhrases(email.BodyText, req.Brand.BannedPhrases, ctxBody))
	agg.merge(CheckRequiredPhrases(email.BodyText, req.Brand.RequiredPhrases, ctxBody))
	agg.merge(CheckLegalFooter(email.BodyText, req.Brand.LegalFooter, ctxBody))
	agg.merge(CheckExclamationMarks(email.BodyText, ctxBody))
	agg.merge(CheckAllCaps(email.BodyText, ctxBody))
	agg.merge(CheckSpamTriggerWords(email.BodyText, ctxBody))
	agg.merge(CheckDiscountCeiling(email.BodyText, req.Constraints.DiscountCeiling, ctxBody))

	for i, subject := range email.SubjectLines {
		ctx := fmt.Sprintf("%s[%d]", ctxSubj, i)
		agg.merge(CheckSubjectLineLength(subject, ctx))
		agg.merge(CheckSpamTriggerWords(subject, ctx))
		agg.merge(CheckBannedPhrases(subject, req.Brand.BannedPhrases, ctx))
	}

	for i, preview := range email.PreviewTextOptions {
		ctx := fmt.Sprintf("%s[%d]", ctxPreview, i)
		agg.merge(CheckPreviewTextLength(preview, ctx))
	}

	agg.Passed = len(agg.Issues) == 0
	return agg
}

// ValidateRequest performs pre-generation validation of a campaign request.
// An empty result means the request is fully valid.
func ValidateRequest(req *campaigns.Request) []campaigns.ValidationIssue {
	var issues []campaigns.ValidationIssue

	if strings.TrimSpace(req.Brand.BrandName) == "" {
		issues = append(issues, campaigns.ValidationIssue{
			Field:    "brand.brand_name",
			Severity: "error",
			Message:  "Brand name is required.",
		})
	}

	if len(req.Brand.VoiceGuidelines) < 20 {
		issues = append(issues, campaigns.ValidationIssue{
			Field:      "brand.voice_guidelines",
			Severity:   "warning",
			Message:    "Voice guidelines are very short; more detail improves output quality.",
			Suggestion: "Include tone, persona descriptors, and do/don't examples.",
		})
	}

	if len(req.Objective.Offer) < 10 {
		issues = append(issues, campaigns.ValidationIssue{
			Field:      "objective.offer",
			Severity:   "error",
			Message:    "Offer description is too vague.",
			Suggestion: "Describe the specific discount, value proposition, or promotion.",
		})
	}

	if ceiling := req.Constraints.DiscountCeiling; ceiling != nil {
		for _, m := range percentSymPattern.FindAllStringSubmatch(strings.ToLower(req.Objective.Offer), -1) {
			pct, err := strconv.ParseFloat(m[1], 64)
			if err != nil || pct <= *ceiling {
				continue
			}
			issues = append(issues, campaigns.ValidationIssue{
				Field:    "objective.offer",
				Severity: "error",
				Message: fmt.Sprintf("Offer mentions %s%% discount which exceeds discount_ceiling (%g%%).",
					m[1], *ceiling),
				Suggestion: "Align the offer discount with the discount ceiling.",
			})
		}
	}

	switch n := req.Deliverables.NumberOfEmails; {
	case n < 1:
		issues = append(issues, campaigns.ValidationIssue{
			Field:    "deliverables.number_of_emails",
			Severity: "error",
			Message:  "At least one email is required.",
		})
	case n > 7:
		issues = append(issues, campaigns.ValidationIssue{
			Field:    "deliverables.number_of_emails",
			Severity: "warning",
			Message:  "More than 7 emails is unusual; consider reducing to avoid audience fatigue.",
		})
	}

	hasEmail := false
	for _, ch := range req.Channels {
		if ch == campaigns.ChannelEmail {
			hasEmail = true
			break
		}
	}
	if !hasEmail {
		issues = append(issues, campaigns.ValidationIssue{
			Field:      "channels",
			Severity:   "warning",
			Message:    "Email channel not included; email is the primary generation target.",
			Suggestion: "Add 'email' to channels.",
		})
	}

	return issues
}
