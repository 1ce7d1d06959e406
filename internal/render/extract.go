package render

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	doctypePattern   = regexp.MustCompile(`(?i)<!DOCTYPE\s+html[\s\S]*?</html>`)
	htmlTagPattern   = regexp.MustCompile(`(?i)<html[\s\S]*?</html>`)
	emailHTMLPattern = regexp.MustCompile(`(?s)"email_html"\s*:\s*"((?:[^"\\]|\\.)*)`)
)

// ExtractHTML strips fences and prose from raw model output and returns the
// first complete HTML document found. Recovery tiers, in order: fence
// stripping, JSON envelope unwrapping, DOCTYPE-anchored match, bare
// <html>...</html> match, then whatever remains after fence stripping.
func ExtractHTML(raw string) string {
	text := strings.TrimSpace(raw)

	for _, fence := range []string{"```html", "```json", "```"} {
		if strings.HasPrefix(text, fence) {
			text = strings.TrimLeft(text[len(fence):], "\n")
			break
		}
	}
	if strings.HasSuffix(text, "```") {
		text = strings.TrimRight(text[:len(text)-3], " \t\n\r")
	}
	text = strings.TrimSpace(text)

	// The model sometimes wraps the document inside a JSON object such as
	// {"email_html": "..."}. Unwrap the first string value that looks like
	// HTML, preserving key order.
	if strings.HasPrefix(text, "{") {
		if unwrapped, ok := unwrapJSONEnvelope(text); ok {
			text = unwrapped
		} else if salvaged, ok := salvageEmailHTMLValue(text); ok {
			text = salvaged
		}
	}

	if m := doctypePattern.FindString(text); m != "" {
		return m
	}
	if m := htmlTagPattern.FindString(text); m != "" {
		return m
	}
	return text
}

// unwrapJSONEnvelope decodes a JSON object and returns its first string
// value containing an HTML marker, in document key order.
func unwrapJSONEnvelope(text string) (string, bool) {
	dec := json.NewDecoder(strings.NewReader(text))
	tok, err := dec.Token()
	if err != nil {
		return "", false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return "", false
	}
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return "", false
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return "", false
		}
		var s string
		if json.Unmarshal(val, &s) != nil {
			continue
		}
		lower := strings.ToLower(s)
		if strings.Contains(lower, "<html") || strings.Contains(lower, "<!doctype") {
			return s, true
		}
	}
	return "", false
}

// salvageEmailHTMLValue recovers the email_html value from a malformed JSON
// envelope using an escape-aware scan, then unescapes it.
func salvageEmailHTMLValue(text string) (string, bool) {
	m := emailHTMLPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	raw := strings.TrimSuffix(m[1], `"`)

	var s string
	if err := json.Unmarshal([]byte(`"`+raw+`"`), &s); err == nil {
		return s, true
	}
	s = strings.ReplaceAll(raw, `\"`, `"`)
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\r`, "\r")
	s = strings.ReplaceAll(s, `\t`, "\t")
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s, true
}
