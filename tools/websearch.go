// Web search tool and the web-fetch collaborator.
//
// The core only decides whether a search is needed; the actual fetch is
// delegated through the Fetcher interface so callers can substitute a
// search API client or a stub.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// FetchResult is the outcome of one URL fetch.
type FetchResult struct {
	Status int    `json:"status"`
	Text   string `json:"text"`
}

// Fetcher is the web-fetch collaborator contract.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (FetchResult, error)
}

// HTTPFetcher fetches URLs over plain HTTP with a bounded response size.
type HTTPFetcher struct {
	client         *http.Client
	maxBodyBytes   int64
	allowedDomains []string
}

// NewHTTPFetcher creates a fetcher with the given timeout.
func NewHTTPFetcher(timeoutSecs uint64) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: time.Duration(timeoutSecs) * time.Second,
		},
		maxBodyBytes: 512 * 1024,
	}
}

// WithAllowedDomains restricts fetches to the given domains.
func (f *HTTPFetcher) WithAllowedDomains(domains []string) *HTTPFetcher {
	f.allowedDomains = domains
	return f
}

// Fetch performs an HTTP GET and returns status plus body text.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (FetchResult, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return FetchResult{}, fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return FetchResult{}, fmt.Errorf("unsupported scheme: %s", parsed.Scheme)
	}
	if !f.domainAllowed(parsed.Hostname()) {
		return FetchResult{}, fmt.Errorf("domain not allowed: %s", parsed.Hostname())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return FetchResult{}, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return FetchResult{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return FetchResult{}, fmt.Errorf("failed to read response: %w", err)
	}

	return FetchResult{Status: resp.StatusCode, Text: string(body)}, nil
}

func (f *HTTPFetcher) domainAllowed(host string) bool {
	if len(f.allowedDomains) == 0 {
		return true
	}
	for _, d := range f.allowedDomains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// WebSearchTool performs web searches through a Fetcher.
type WebSearchTool struct {
	BaseTool
	fetcher   Fetcher
	searchURL string
}

// NewWebSearchTool creates a web search tool with an HTTP fetcher.
func NewWebSearchTool(timeoutSecs uint64) *WebSearchTool {
	return &WebSearchTool{
		fetcher:   NewHTTPFetcher(timeoutSecs),
		searchURL: "https://html.duckduckgo.com/html/?q=%s",
	}
}

// WithFetcher substitutes the fetch collaborator.
func (t *WebSearchTool) WithFetcher(f Fetcher) *WebSearchTool {
	t.fetcher = f
	return t
}

// Metadata returns the tool metadata.
func (t *WebSearchTool) Metadata() ToolMetadata {
	return ToolMetadata{
		Name:        NameWebSearch,
		Description: "Search the web and retrieve information from the result page",
		Parameters: []ToolParameter{
			{Name: "query", ParamType: "string", Description: "The search query", Required: true},
		},
	}
}

type webSearchArgs struct {
	Query string `json:"query"`
}

// Validate validates the arguments.
func (t *WebSearchTool) Validate(args json.RawMessage) error {
	var a webSearchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if strings.TrimSpace(a.Query) == "" {
		return fmt.Errorf("query cannot be empty")
	}
	return nil
}

// Execute runs the search through the fetch collaborator.
func (t *WebSearchTool) Execute(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	if err := t.Validate(args); err != nil {
		return FailureResult(err), nil
	}

	var a webSearchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return FailureResultf("invalid arguments: %v", err), nil
	}

	target := fmt.Sprintf(t.searchURL, url.QueryEscape(a.Query))
	result, err := t.fetcher.Fetch(ctx, target)
	if err != nil {
		return FailureResultf("search failed: %v", err), nil
	}
	if result.Status != http.StatusOK {
		return FailureResultf("search returned status %d", result.Status), nil
	}

	return SuccessResult(result.Text), nil
}

var _ Tool = (*WebSearchTool)(nil)
