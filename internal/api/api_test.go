package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/JaimeStill/bellman/internal/api"
	"github.com/JaimeStill/bellman/internal/config"
	"github.com/JaimeStill/bellman/internal/infrastructure"
	"github.com/JaimeStill/bellman/pkg/module"
)

// newModule assembles the API module from default configuration. Only
// endpoints that never call the model are exercised here; pipeline behavior
// is covered in the workflow package.
func newModule(t *testing.T) *module.Module {
	t.Helper()

	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })

	t.Setenv("SENDGRID_API_KEY", "")
	t.Setenv("EMAIL_FROM", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	infra, err := infrastructure.New(cfg)
	if err != nil {
		t.Fatalf("create infrastructure: %v", err)
	}

	m, err := api.NewModule(cfg, infra)
	if err != nil {
		t.Fatalf("create module: %v", err)
	}
	return m
}

func serve(t *testing.T, m *module.Module, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	m.Serve(w, req)
	return w
}

func TestModule(t *testing.T) {
	m := newModule(t)

	t.Run("mounts at the configured base path", func(t *testing.T) {
		if m.Prefix() != "/v1" {
			t.Errorf("prefix = %s, want /v1", m.Prefix())
		}
	})

	t.Run("serves the openapi document", func(t *testing.T) {
		w := serve(t, m, "GET", "/v1/openapi.json", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var spec map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &spec); err != nil {
			t.Fatalf("decode spec: %v", err)
		}
		body := w.Body.String()
		for _, want := range []string{"Bellman API", "/campaigns/generate", "/campaigns/validate", "/email/send"} {
			if !strings.Contains(body, want) {
				t.Errorf("spec missing %q", want)
			}
		}
	})

	t.Run("serves prometheus metrics", func(t *testing.T) {
		w := serve(t, m, "GET", "/v1/metrics", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), "go_goroutines") {
			t.Error("exposition missing runtime collectors")
		}
	})

	t.Run("validate endpoint runs without the model", func(t *testing.T) {
		body := `{
			"campaign_name": "Summer Launch",
			"brand": {"brand_name": "Acme", "voice_guidelines": "Warm and direct without being pushy."},
			"objective": {
				"primary_kpi": "revenue",
				"target_audience": "Returning customers",
				"offer": "20% off all summer apparel",
				"geo_scope": "Nordics",
				"language": "English"
			},
			"channels": ["email"],
			"deliverables": {"number_of_emails": 2}
		}`

		w := serve(t, m, "POST", "/v1/campaigns/validate", body)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var resp struct {
			Valid           bool     `json:"valid"`
			Recommendations []string `json:"recommendations"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !resp.Valid {
			t.Errorf("valid = false: %s", w.Body.String())
		}
	})

	t.Run("email config reports missing provider settings", func(t *testing.T) {
		w := serve(t, m, "GET", "/v1/email/config", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var status struct {
			Configured bool     `json:"configured"`
			Missing    []string `json:"missing"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if status.Configured {
			t.Error("configured = true without provider credentials")
		}
		if len(status.Missing) == 0 {
			t.Error("missing settings not reported")
		}
	})

	t.Run("stamps a request ID on every response", func(t *testing.T) {
		w := serve(t, m, "GET", "/v1/email/config", "")
		if w.Header().Get("X-Request-ID") == "" {
			t.Error("X-Request-ID not set")
		}
	})
}
