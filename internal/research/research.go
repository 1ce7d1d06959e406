// Package research defines the external research provider interface used to
// enrich the research phase with live search results. The default provider
// is a no-op; implement Provider to add real web search, news, or
// competitive intelligence.
package research

import (
	"context"
	"log/slog"
)

// SearchResult is one item returned by a provider search.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Provider performs external research on behalf of the pipeline.
type Provider interface {
	// Search performs a web search and returns result items.
	Search(ctx context.Context, query string) ([]SearchResult, error)

	// FetchURL fetches and returns the text content of a URL.
	FetchURL(ctx context.Context, url string) (string, error)
}

// NoOp is the stub provider used when external browsing is not available.
type NoOp struct {
	Logger *slog.Logger
}

func (n *NoOp) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if n.Logger != nil {
		n.Logger.DebugContext(ctx, "external research search (no-op)", "query_length", len(query))
	}
	return nil, nil
}

func (n *NoOp) FetchURL(ctx context.Context, url string) (string, error) {
	if n.Logger != nil {
		n.Logger.DebugContext(ctx, "external research fetch (no-op)", "url", url)
	}
	return "", nil
}
