package api

import (
	"net/http"

	"github.com/JaimeStill/bellman/internal/config"
	"github.com/JaimeStill/bellman/pkg/openapi"
)

// registerSpec serializes the OpenAPI document once at startup and serves the
// cached bytes. Spec failures are logged rather than fatal; the API works
// without its reference document.
func registerSpec(mux *http.ServeMux, cfg *config.Config, runtime *Runtime) {
	spec := buildSpec(cfg, runtime.Version)

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		runtime.Logger.Error("openapi spec serialization failed", "error", err)
		return
	}

	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(data))
}

func buildSpec(cfg *config.Config, version string) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"CampaignRequest": {
			Type:        "object",
			Description: "Structured campaign specification",
			Required:    []string{"campaign_name", "brand", "objective", "deliverables"},
			Properties: map[string]*openapi.Schema{
				"campaign_name": {Type: "string"},
				"brand":         {Type: "object", Description: "Brand identity, voice, and policy constraints"},
				"objective":     {Type: "object", Description: "KPIs, audience, offer, geo, and language"},
				"constraints":   {Type: "object", Description: "Discount ceiling, compliance notes, send window"},
				"channels":      {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"deliverables":  {Type: "object", Description: "Email count and output options"},
			},
		},
		"CampaignResponse": {
			Type:        "object",
			Description: "Generated campaign or clarification round",
			Properties: map[string]*openapi.Schema{
				"status":                  {Type: "string", Enum: []any{"completed", "needs_clarification"}},
				"clarification_questions": {Type: "array", Items: &openapi.Schema{Type: "object"}},
				"blueprint":               {Type: "object"},
				"assets":                  {Type: "array", Items: &openapi.Schema{Type: "object"}},
				"critique":                {Type: "object"},
				"metadata":                {Type: "object"},
			},
		},
		"ValidationResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"valid":           {Type: "boolean"},
				"issues":          {Type: "array", Items: &openapi.Schema{Type: "object"}},
				"recommendations": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"PromptRequest": {
			Type:     "object",
			Required: []string{"prompt"},
			Properties: map[string]*openapi.Schema{
				"prompt":        {Type: "string", Description: "Free-text campaign description"},
				"force_proceed": {Type: "boolean", Description: "Never ask another clarification round"},
			},
		},
		"PromptResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"status":    {Type: "string", Enum: []any{"completed", "needs_clarification"}},
				"questions": {Type: "array", Items: &openapi.Schema{Type: "object"}},
				"emails":    {Type: "array", Items: &openapi.Schema{Type: "object"}},
				"campaign":  {Type: "object"},
				"metadata":  {Type: "object"},
			},
		},
		"EditEmailRequest": {
			Type:     "object",
			Required: []string{"email_html", "instructions"},
			Properties: map[string]*openapi.Schema{
				"email_html":   {Type: "string"},
				"subject":      {Type: "string"},
				"instructions": {Type: "string"},
			},
		},
		"EditEmailResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"email_html": {Type: "string"},
			},
		},
		"SendEmailRequest": {
			Type:     "object",
			Required: []string{"to", "subject"},
			Properties: map[string]*openapi.Schema{
				"to":      {Type: "string"},
				"subject": {Type: "string"},
				"text":    {Type: "string"},
				"html":    {Type: "string"},
			},
		},
	})

	spec.Paths["/campaigns/generate"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Generate a full marketing campaign",
			Description: "Runs the multi-phase workflow: clarify, research, strategy, execution, production, critique.",
			Tags:        []string{"Campaigns"},
			RequestBody: openapi.RequestBodyJSON("CampaignRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Campaign generated or clarification requested", "CampaignResponse"),
				422: openapi.ResponseRef("UnprocessableEntity"),
				503: openapi.ResponseRef("ServiceUnavailable"),
			},
		},
	}

	spec.Paths["/campaigns/validate"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Validate a campaign request",
			Description: "Returns issues and recommendations without generating. Fast and free.",
			Tags:        []string{"Campaigns"},
			RequestBody: openapi.RequestBodyJSON("CampaignRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Validation results", "ValidationResponse"),
			},
		},
	}

	spec.Paths["/campaigns/generate-from-prompt"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Generate a campaign from a free-text prompt",
			Description: "Parses the prompt, then runs the single-call fast path. Results are cached briefly.",
			Tags:        []string{"Campaigns"},
			RequestBody: openapi.RequestBodyJSON("PromptRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Generated emails or clarification questions", "PromptResponse"),
				422: openapi.ResponseRef("UnprocessableEntity"),
				503: openapi.ResponseRef("ServiceUnavailable"),
			},
		},
	}

	spec.Paths["/campaigns/edit-email"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Edit an existing HTML email",
			Description: "Applies free-text instructions to the supplied HTML document.",
			Tags:        []string{"Campaigns"},
			RequestBody: openapi.RequestBodyJSON("EditEmailRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Updated HTML document", "EditEmailResponse"),
				422: openapi.ResponseRef("UnprocessableEntity"),
				503: openapi.ResponseRef("ServiceUnavailable"),
			},
		},
	}

	spec.Paths["/email/send"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Send a transactional email",
			Tags:        []string{"Email"},
			RequestBody: openapi.RequestBodyJSON("SendEmailRequest", true),
			Responses: map[int]*openapi.Response{
				200: {Description: "Email accepted by the provider"},
				422: openapi.ResponseRef("UnprocessableEntity"),
				503: openapi.ResponseRef("ServiceUnavailable"),
			},
		},
	}

	spec.Paths["/email/config"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Report email provider configuration status",
			Tags:    []string{"Email"},
			Responses: map[int]*openapi.Response{
				200: {Description: "Configuration status with missing setting names"},
			},
		},
	}

	return spec
}
