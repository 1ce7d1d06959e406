// Package prompts builds the prompt text and JSON schemas for every
// generation phase. Builders are pure functions of the campaign request and
// prior-phase outputs; they perform no I/O and no model calls.
//
// Every prompt explicitly requests strict JSON output and embeds its schema
// so the model understands the shape. The shared system instruction
// emphasizes no hallucination, labeled assumptions, and brand safety.
package prompts

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// SystemInstruction is prepended to every generation call.
const SystemInstruction = `You are Mark, a senior marketing strategist and award-winning copywriter with deep expertise in email marketing, brand strategy, and conversion optimisation.

HARD RULES – you must follow these without exception:
1. Do NOT hallucinate facts, statistics, or claims. If you are unsure, label it as an assumption.
2. Follow brand voice guidelines strictly. Never use banned phrases.
3. Keep all claims conservative and verifiable.
4. Output ONLY valid JSON matching the supplied schema — no markdown, no commentary outside JSON.
5. Label every assumption you make inside the "assumptions" array.
6. If you identify a compliance risk, flag it explicitly.
7. Use the provided language for all copy.`

// formatList renders a string slice for embedding in prompt text.
func formatList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// formatResearch flattens research output into indented prompt lines with
// deterministic key order.
func formatResearch(research map[string]any) string {
	keys := make([]string, 0, len(research))
	for k := range research {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var lines []string
	for _, key := range keys {
		switch val := research[key].(type) {
		case []any:
			lines = append(lines, key+":")
			for _, item := range val {
				lines = append(lines, fmt.Sprintf("  - %v", item))
			}
		case []string:
			lines = append(lines, key+":")
			for _, item := range val {
				lines = append(lines, "  - "+item)
			}
		default:
			lines = append(lines, fmt.Sprintf("%s: %v", key, val))
		}
	}
	return strings.Join(lines, "\n")
}

func indentJSON(v any) string {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(raw)
}
