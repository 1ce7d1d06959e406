package profile_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/JaimeStill/bellman/internal/profile"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeExport(t *testing.T, csv string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "crm_export.json")
	payload, err := json.Marshal(map[string]string{"companiesCsv": csv})
	if err != nil {
		t.Fatalf("marshal export: %v", err)
	}
	if err := os.WriteFile(path, payload, 0644); err != nil {
		t.Fatalf("write export: %v", err)
	}
	return path
}

const exportCSV = `name,domain,industry,city,description,score
Acme Corp,acme.example,Retail,Oslo,General store,10
Nordic Wellness,nordic-wellness.se,Fitness,Stockholm,Gym chain,80
Globex,globex.example,Energy,Bergen,Utility provider,40`

func TestStoreLoad(t *testing.T) {
	t.Run("missing file returns nil", func(t *testing.T) {
		store := profile.NewStore("/nonexistent/export.json", testLogger())
		if got := store.Load(""); got != nil {
			t.Errorf("Load = %+v, want nil", got)
		}
	})

	t.Run("malformed JSON returns nil", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.json")
		os.WriteFile(path, []byte("{not json"), 0644)
		store := profile.NewStore(path, testLogger())
		if got := store.Load(""); got != nil {
			t.Errorf("Load = %+v, want nil", got)
		}
	})

	t.Run("empty companiesCsv returns nil", func(t *testing.T) {
		store := profile.NewStore(writeExport(t, "  "), testLogger())
		if got := store.Load(""); got != nil {
			t.Errorf("Load = %+v, want nil", got)
		}
	})

	t.Run("header-only CSV returns nil", func(t *testing.T) {
		store := profile.NewStore(writeExport(t, "name,domain"), testLogger())
		if got := store.Load(""); got != nil {
			t.Errorf("Load = %+v, want nil", got)
		}
	})

	t.Run("identifier matches domain substring", func(t *testing.T) {
		store := profile.NewStore(writeExport(t, exportCSV), testLogger())
		got := store.Load("globex.example")
		if got == nil {
			t.Fatal("Load = nil, want profile")
		}
		if got.CompanyName != "Globex" {
			t.Errorf("CompanyName = %q, want Globex", got.CompanyName)
		}
		if got.Industry != "Energy" || got.Location != "Bergen" {
			t.Errorf("profile = %+v", got)
		}
	})

	t.Run("identifier matches name case-insensitively", func(t *testing.T) {
		store := profile.NewStore(writeExport(t, exportCSV), testLogger())
		got := store.Load("ACME")
		if got == nil || got.CompanyName != "Acme Corp" {
			t.Errorf("Load = %+v, want Acme Corp", got)
		}
	})

	t.Run("unmatched identifier falls back to highest score", func(t *testing.T) {
		store := profile.NewStore(writeExport(t, exportCSV), testLogger())
		got := store.Load("unknown-brand")
		if got == nil || got.CompanyName != "Nordic Wellness" {
			t.Errorf("Load = %+v, want highest-scored row", got)
		}
	})

	t.Run("empty identifier without score column picks first row", func(t *testing.T) {
		csv := "name,domain\nFirst Co,first.example\nSecond Co,second.example"
		store := profile.NewStore(writeExport(t, csv), testLogger())
		got := store.Load("")
		if got == nil || got.CompanyName != "First Co" {
			t.Errorf("Load = %+v, want First Co", got)
		}
	})

	t.Run("website gains https scheme", func(t *testing.T) {
		store := profile.NewStore(writeExport(t, exportCSV), testLogger())
		got := store.Load("acme")
		if got == nil || got.Website != "https://acme.example" {
			t.Errorf("Website = %+v, want https scheme added", got)
		}
	})

	t.Run("existing scheme preserved", func(t *testing.T) {
		csv := "name,website\nLinked,https://linked.example"
		store := profile.NewStore(writeExport(t, csv), testLogger())
		got := store.Load("linked")
		if got == nil || got.Website != "https://linked.example" {
			t.Errorf("Website = %+v, want unchanged", got)
		}
	})

	t.Run("URL in name column becomes readable name", func(t *testing.T) {
		csv := "name,domain\nhttps://www.nordic-wellness.se,nordic-wellness.se"
		store := profile.NewStore(writeExport(t, csv), testLogger())
		got := store.Load("nordic")
		if got == nil || got.CompanyName != "Nordic Wellness" {
			t.Errorf("CompanyName = %+v, want Nordic Wellness", got)
		}
	})

	t.Run("alternate column names map to canonical fields", func(t *testing.T) {
		csv := "company,homepage,sector,country,about,value_proposition\nWidgets Ltd,widgets.example,Manufacturing,Norway,Makes widgets,Cheap widgets"
		store := profile.NewStore(writeExport(t, csv), testLogger())
		got := store.Load("widgets")
		if got == nil {
			t.Fatal("Load = nil, want profile")
		}
		if got.CompanyName != "Widgets Ltd" || got.Industry != "Manufacturing" ||
			got.Location != "Norway" || got.Description != "Makes widgets" || got.KeyOffer != "Cheap widgets" {
			t.Errorf("profile = %+v", got)
		}
	})
}
