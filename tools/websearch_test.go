package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

type stubFetcher struct {
	status  int
	text    string
	err     error
	lastURL string
}

func (s *stubFetcher) Fetch(ctx context.Context, rawURL string) (FetchResult, error) {
	s.lastURL = rawURL
	if s.err != nil {
		return FetchResult{}, s.err
	}
	return FetchResult{Status: s.status, Text: s.text}, nil
}

func TestWebSearchSuccess(t *testing.T) {
	stub := &stubFetcher{status: 200, text: "search results page"}
	tool := NewWebSearchTool(5).WithFetcher(stub)

	args, _ := json.Marshal(map[string]string{"query": "golang channels"})
	result, err := tool.Execute(context.Background(), args)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !result.Success() {
		t.Fatalf("expected success, got error: %v", result.Error)
	}
	if result.Output != "search results page" {
		t.Errorf("unexpected output: %q", result.Output)
	}
	if !strings.Contains(stub.lastURL, "golang+channels") {
		t.Errorf("query not escaped into URL: %s", stub.lastURL)
	}
}

func TestWebSearchEmptyQuery(t *testing.T) {
	tool := NewWebSearchTool(5).WithFetcher(&stubFetcher{status: 200})

	args, _ := json.Marshal(map[string]string{"query": "   "})
	result, err := tool.Execute(context.Background(), args)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Success() {
		t.Fatal("expected failure for blank query")
	}
}

func TestWebSearchNonOKStatus(t *testing.T) {
	tool := NewWebSearchTool(5).WithFetcher(&stubFetcher{status: 503})

	args, _ := json.Marshal(map[string]string{"query": "anything"})
	result, err := tool.Execute(context.Background(), args)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Success() {
		t.Fatal("expected failure for non-200 status")
	}
}

func TestWebSearchFetchError(t *testing.T) {
	tool := NewWebSearchTool(5).WithFetcher(&stubFetcher{err: fmt.Errorf("connection refused")})

	args, _ := json.Marshal(map[string]string{"query": "anything"})
	result, err := tool.Execute(context.Background(), args)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Success() {
		t.Fatal("expected failure when fetch errors")
	}
}

func TestHTTPFetcherRejectsScheme(t *testing.T) {
	fetcher := NewHTTPFetcher(5)

	if _, err := fetcher.Fetch(context.Background(), "ftp://example.com/file"); err == nil {
		t.Fatal("expected non-HTTP scheme to be rejected")
	}
}

func TestHTTPFetcherDomainAllowlist(t *testing.T) {
	fetcher := NewHTTPFetcher(5).WithAllowedDomains([]string{"example.com"})

	if !fetcher.domainAllowed("example.com") {
		t.Error("exact domain should be allowed")
	}
	if !fetcher.domainAllowed("api.example.com") {
		t.Error("subdomain should be allowed")
	}
	if fetcher.domainAllowed("notexample.com") {
		t.Error("suffix lookalike should be rejected")
	}
}
