package prompts

// JSON schemas embedded in generation requests. Every prompt names its
// schema so the model understands the exact response shape.

// ClarifySchema shapes the clarification phase response.
var ClarifySchema = map[string]any{
	"type":     "object",
	"required": []string{"needs_clarification", "questions"},
	"properties": map[string]any{
		"needs_clarification": map[string]any{"type": "boolean"},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"field", "question", "why_needed"},
				"properties": map[string]any{
					"field":      map[string]any{"type": "string"},
					"question":   map[string]any{"type": "string"},
					"why_needed": map[string]any{"type": "string"},
				},
			},
		},
	},
}

// ResearchSchema shapes the research phase response.
var ResearchSchema = map[string]any{
	"type":     "object",
	"required": []string{"audience_insights", "channel_insights", "seasonal_context", "assumptions"},
	"properties": map[string]any{
		"audience_insights": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"channel_insights": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"seasonal_context": map[string]any{"type": "string"},
		"competitive_considerations": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"assumptions": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
}

// StrategySchema shapes the strategy phase response.
var StrategySchema = map[string]any{
	"type": "object",
	"required": []string{
		"campaign_angle",
		"core_narrative",
		"offer_logic",
		"narrative_arc",
		"kpi_mapping",
		"channel_strategy",
		"risks",
		"assumptions",
	},
	"properties": map[string]any{
		"campaign_angle": map[string]any{"type": "string"},
		"core_narrative": map[string]any{"type": "string"},
		"offer_logic":    map[string]any{"type": "string"},
		"narrative_arc": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 2,
		},
		"kpi_mapping": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		},
		"channel_strategy": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		},
		"risks":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"assumptions": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	},
}

// ExecutionEmailSchema shapes one email's copy assets in the execution phase.
var ExecutionEmailSchema = map[string]any{
	"type": "object",
	"required": []string{
		"email_number",
		"email_name",
		"subject_lines",
		"preview_text_options",
		"body_text",
		"ctas",
		"send_timing",
	},
	"properties": map[string]any{
		"email_number": map[string]any{"type": "integer"},
		"email_name":   map[string]any{"type": "string"},
		"subject_lines": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 3,
		},
		"preview_text_options": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 2,
		},
		"body_text": map[string]any{"type": "string"},
		"ctas": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 1,
		},
		"send_timing": map[string]any{"type": "string"},
	},
}

// HTMLOutputSchema shapes the production phase response.
var HTMLOutputSchema = map[string]any{
	"type":     "object",
	"required": []string{"email_html"},
	"properties": map[string]any{
		"email_html": map[string]any{
			"type":        "string",
			"description": "The complete, production-ready HTML email document.",
		},
	},
}

// CritiqueSchema shapes the critique phase response.
var CritiqueSchema = map[string]any{
	"type":     "object",
	"required": []string{"issues", "fixes", "risk_flags", "llm_commentary", "score"},
	"properties": map[string]any{
		"issues":         map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"fixes":          map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"risk_flags":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"llm_commentary": map[string]any{"type": "string"},
		"score":          map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
	},
}

// ParseSchema shapes the free-text prompt parsing response.
var ParseSchema = map[string]any{
	"type":     "object",
	"required": []string{"needs_clarification", "questions", "campaign"},
	"properties": map[string]any{
		"needs_clarification": map[string]any{"type": "boolean"},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"field", "question"},
				"properties": map[string]any{
					"field":    map[string]any{"type": "string"},
					"question": map[string]any{"type": "string"},
				},
			},
		},
		"campaign": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"campaign_name":    map[string]any{"type": "string"},
				"brand_name":       map[string]any{"type": "string"},
				"voice_guidelines": map[string]any{"type": "string"},
				"banned_phrases":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"required_phrases": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"legal_footer":     map[string]any{"type": "string"},
				"primary_kpi": map[string]any{
					"type": "string",
					"enum": []string{
						"revenue", "conversion_rate", "open_rate", "click_through_rate",
						"leads_generated", "brand_awareness", "customer_retention",
						"average_order_value", "roas",
					},
				},
				"target_audience":  map[string]any{"type": "string"},
				"offer":            map[string]any{"type": "string"},
				"geo_scope":        map[string]any{"type": "string"},
				"language":         map[string]any{"type": "string"},
				"compliance_notes": map[string]any{"type": "string"},
				"send_window":      map[string]any{"type": "string"},
				"discount_ceiling": map[string]any{"type": "number"},
				"number_of_emails": map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
				"include_html":     map[string]any{"type": "boolean"},
			},
		},
	},
}

// RapidBatchSchema shapes the single-call fast path response that replaces
// the research, strategy, execution, production, and critique phases.
var RapidBatchSchema = map[string]any{
	"type":     "object",
	"required": []string{"emails"},
	"properties": map[string]any{
		"emails": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"required": []string{
					"email_number",
					"email_name",
					"subject_lines",
					"preview_text_options",
					"ctas",
					"send_timing",
					"sections",
				},
				"properties": map[string]any{
					"email_number": map[string]any{"type": "integer"},
					"email_name":   map[string]any{"type": "string"},
					"subject_lines": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 2,
					},
					"preview_text_options": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 2,
					},
					"ctas": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 1,
					},
					"send_timing": map[string]any{"type": "string"},
					"layout_style": map[string]any{
						"type": "string",
						"enum": []string{
							"default", "minimal", "bold", "newsletter",
							"playful", "premium", "custom",
						},
					},
					"sections": map[string]any{
						"type": "object",
						"required": []string{
							"headline",
							"preheader",
							"intro_paragraph",
							"offer_line",
							"body_bullets",
							"cta_button",
							"urgency_line",
							"footer_line",
						},
						"properties": map[string]any{
							"headline":        map[string]any{"type": "string"},
							"preheader":       map[string]any{"type": "string"},
							"intro_paragraph": map[string]any{"type": "string"},
							"offer_line":      map[string]any{"type": "string"},
							"body_bullets": map[string]any{
								"type":     "array",
								"items":    map[string]any{"type": "string"},
								"minItems": 2,
								"maxItems": 4,
							},
							"cta_button":   map[string]any{"type": "string"},
							"urgency_line": map[string]any{"type": "string"},
							"footer_line":  map[string]any{"type": "string"},
							"html_content": map[string]any{"type": "string"},
						},
					},
				},
			},
		},
	},
}
