// Web retrieval agent.
package agent

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dalil-ai/dalil/tools"
)

// queryPrefixes are stripped from the front of a search task so the
// remainder becomes the query. Checked in order, first match wins.
var queryPrefixes = []string{
	"ابحث عن", "ابحث", "search for", "find", "look for",
	"بحث عن", "جد",
}

// WebRetrievalAgent searches the web and retrieves page content.
type WebRetrievalAgent struct {
	history
	fetcher   tools.Fetcher
	searchURL string
}

// NewWebRetrievalAgent creates a web retrieval agent with an HTTP fetcher.
func NewWebRetrievalAgent() *WebRetrievalAgent {
	return &WebRetrievalAgent{
		fetcher:   tools.NewHTTPFetcher(10),
		searchURL: "https://html.duckduckgo.com/html/?q=%s",
	}
}

// WithFetcher substitutes the fetch collaborator.
func (a *WebRetrievalAgent) WithFetcher(f tools.Fetcher) *WebRetrievalAgent {
	a.fetcher = f
	return a
}

// Name returns the agent's name.
func (a *WebRetrievalAgent) Name() string {
	return "WebRetrievalAgent"
}

// Description returns the agent's description.
func (a *WebRetrievalAgent) Description() string {
	return "Searches the web and retrieves information from various sources"
}

// Capabilities returns the task types this agent handles.
func (a *WebRetrievalAgent) Capabilities() []string {
	return []string{"web_search", "url_fetch", "content_extraction"}
}

// CanHandle reports whether the agent handles the given task type.
func (a *WebRetrievalAgent) CanHandle(taskType string) bool {
	for _, c := range a.Capabilities() {
		if c == taskType {
			return true
		}
	}
	return false
}

// Execute runs a web search for the task and summarizes the result page.
func (a *WebRetrievalAgent) Execute(ctx context.Context, task string) Result {
	query := ExtractQuery(task)

	target := fmt.Sprintf(a.searchURL, url.QueryEscape(query))
	fetched, err := a.fetcher.Fetch(ctx, target)
	if err != nil {
		a.log(task, err.Error(), false)
		return Result{Success: false, Error: err.Error(), Details: map[string]string{"query": query}}
	}
	if fetched.Status != 200 {
		msg := fmt.Sprintf("search returned status %d", fetched.Status)
		a.log(task, msg, false)
		return Result{Success: false, Error: msg, Details: map[string]string{"query": query}}
	}

	summary := searchSummary(query, fetched.Text)
	a.log(task, summary, true)
	return Result{
		Success: true,
		Output:  summary,
		Details: map[string]string{"query": query},
	}
}

// FetchURL retrieves the content of a single URL, truncated to 5000 runes.
func (a *WebRetrievalAgent) FetchURL(ctx context.Context, rawURL string) Result {
	fetched, err := a.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		a.log(rawURL, err.Error(), false)
		return Result{Success: false, Error: err.Error(), Details: map[string]string{"url": rawURL}}
	}
	if fetched.Status != 200 {
		msg := fmt.Sprintf("fetch returned status %d", fetched.Status)
		a.log(rawURL, msg, false)
		return Result{Success: false, Error: msg, Details: map[string]string{"url": rawURL}}
	}

	content := fetched.Text
	if runes := []rune(content); len(runes) > 5000 {
		content = string(runes[:5000])
	}
	a.log(rawURL, content, true)
	return Result{Success: true, Output: content, Details: map[string]string{"url": rawURL}}
}

func (a *WebRetrievalAgent) executionCount() int                 { return a.count() }
func (a *WebRetrievalAgent) recentExecutions() []ExecutionRecord { return a.recent() }

// ExtractQuery strips a leading search verb from a task, leaving the query.
func ExtractQuery(task string) string {
	lower := strings.ToLower(task)
	for _, prefix := range queryPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(task[len(prefix):])
		}
	}
	return task
}

func searchSummary(query, page string) string {
	if strings.TrimSpace(page) == "" {
		return "No results found / لم يتم العثور على نتائج"
	}
	return fmt.Sprintf("Retrieved results for: %s / تم جلب نتائج البحث عن: %s", query, query)
}

var _ Agent = (*WebRetrievalAgent)(nil)
