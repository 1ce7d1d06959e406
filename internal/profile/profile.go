// Package profile loads compact company profiles from an exported CRM data
// file. Profiles enrich generation prompts and supply the CTA link; every
// failure path returns nil so callers fall back to brand-only data.
package profile

import (
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Company is the compact profile embedded in prompts. It carries only the
// most relevant fields, never the raw CSV.
type Company struct {
	CompanyName string `json:"company_name"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Description string `json:"description"`
	KeyOffer    string `json:"key_offer"`
	DesignHints string `json:"design_hints,omitempty"`
	Tone        string `json:"tone,omitempty"`
}

// Candidate CSV column names per canonical profile key, matched case-insensitively.
var fieldMap = map[string][]string{
	"company_name": {"name", "company_name", "company", "organisation", "organization"},
	"website":      {"domain", "website", "url", "homepage"},
	"industry":     {"industry", "sector", "vertical"},
	"location":     {"city", "location", "country", "region", "hq_city", "hq_country"},
	"description":  {"description", "short_description", "about", "summary", "business_type"},
	"key_offer":    {"key_offer", "offer", "product", "service", "value_proposition"},
	"design_hints": {"design_hints", "style_hints", "design"},
	"tone":         {"tone", "voice"},
}

// Store reads company profiles from a CRM export on disk.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a Store reading from the given JSON export path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.With("system", "profile"),
	}
}

func first(row map[string]string, candidates []string) string {
	for _, key := range candidates {
		if val := strings.TrimSpace(row[key]); val != "" {
			return val
		}
	}
	return ""
}

// Load parses the export's companiesCsv payload and returns a compact profile.
//
// identifier is an optional domain or company name fragment used to select a
// specific row via case-insensitive substring match in either direction. When
// empty or unmatched, the row with the highest "score" value wins if that
// column exists, otherwise the first row. Returns nil on any failure.
func (s *Store) Load(identifier string) *Company {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Warn("company data file unavailable, skipping enrichment", "path", s.path, "error", err)
		return nil
	}

	var data struct {
		CompaniesCSV string `json:"companiesCsv"`
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Warn("failed to parse company data file", "error", err)
		return nil
	}
	if strings.TrimSpace(data.CompaniesCSV) == "" {
		s.logger.Warn("companiesCsv is absent or empty")
		return nil
	}

	rows, err := parseCSV(data.CompaniesCSV)
	if err != nil {
		s.logger.Warn("failed to parse companiesCsv", "error", err)
		return nil
	}
	if len(rows) == 0 {
		s.logger.Warn("companiesCsv parsed to 0 rows")
		return nil
	}

	selected := selectRow(rows, identifier)
	if selected == nil {
		s.logger.Info("no company row matched identifier, using best row", "identifier", identifier)
		selected = bestRow(rows)
	}

	profile := &Company{
		CompanyName: first(selected, fieldMap["company_name"]),
		Website:     first(selected, fieldMap["website"]),
		Industry:    first(selected, fieldMap["industry"]),
		Location:    first(selected, fieldMap["location"]),
		Description: first(selected, fieldMap["description"]),
		KeyOffer:    first(selected, fieldMap["key_offer"]),
		DesignHints: first(selected, fieldMap["design_hints"]),
		Tone:        first(selected, fieldMap["tone"]),
	}

	// The website doubles as the CTA href, so it needs a scheme.
	if profile.Website != "" && !strings.HasPrefix(profile.Website, "http://") && !strings.HasPrefix(profile.Website, "https://") {
		profile.Website = "https://" + profile.Website
	}

	// Bad CRM data sometimes puts a URL in the name column. Derive a readable
	// name from the domain instead.
	if name := profile.CompanyName; strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") || strings.HasPrefix(name, "www.") {
		profile.CompanyName = nameFromURL(name)
	}

	s.logger.Info("company profile loaded",
		"name", profile.CompanyName,
		"website", profile.Website,
		"industry", profile.Industry)
	return profile
}

func parseCSV(text string) ([]map[string]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}
	header := records[0]
	for i, col := range header {
		header[i] = strings.ToLower(strings.TrimSpace(col))
	}
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func selectRow(rows []map[string]string, identifier string) map[string]string {
	ident := strings.ToLower(strings.TrimSpace(identifier))
	if ident == "" {
		return nil
	}
	for _, row := range rows {
		name := strings.ToLower(first(row, fieldMap["company_name"]))
		site := strings.ToLower(first(row, fieldMap["website"]))
		if containsEither(name, ident) || containsEither(site, ident) {
			return row
		}
	}
	return nil
}

func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func bestRow(rows []map[string]string) map[string]string {
	if _, ok := rows[0]["score"]; !ok {
		return rows[0]
	}
	best := rows[0]
	bestScore := rowScore(best)
	for _, row := range rows[1:] {
		if s := rowScore(row); s > bestScore {
			best, bestScore = row, s
		}
	}
	return best
}

func rowScore(row map[string]string) float64 {
	v, err := strconv.ParseFloat(row["score"], 64)
	if err != nil {
		return 0
	}
	return v
}

// nameFromURL derives a display name from a URL-shaped company name, e.g.
// "https://www.nordic-wellness.se" becomes "Nordic Wellness".
func nameFromURL(raw string) string {
	host := raw
	if u, err := url.Parse(raw); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}
	host = strings.TrimPrefix(host, "www.")
	base, _, _ := strings.Cut(host, ".")
	base = strings.ReplaceAll(base, "-", " ")
	return titleCase(base)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
