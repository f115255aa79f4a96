package agent

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dalil-ai/dalil/tools"
)

type recordedFetch struct {
	status  int
	text    string
	err     error
	lastURL string
}

func (f *recordedFetch) Fetch(ctx context.Context, rawURL string) (tools.FetchResult, error) {
	f.lastURL = rawURL
	if f.err != nil {
		return tools.FetchResult{}, f.err
	}
	return tools.FetchResult{Status: f.status, Text: f.text}, nil
}

func TestExtractQuery(t *testing.T) {
	cases := []struct {
		task string
		want string
	}{
		{"ابحث عن الطقس في دبي", "الطقس في دبي"},
		{"search for golang tutorials", "golang tutorials"},
		{"find the best restaurants", "the best restaurants"},
		{"جد معلومات عن القاهرة", "معلومات عن القاهرة"},
		{"weather in Cairo", "weather in Cairo"},
	}
	for _, tc := range cases {
		if got := ExtractQuery(tc.task); got != tc.want {
			t.Errorf("ExtractQuery(%q) = %q, want %q", tc.task, got, tc.want)
		}
	}
}

func TestWebRetrievalExecute(t *testing.T) {
	fetch := &recordedFetch{status: 200, text: "<html>results</html>"}
	a := NewWebRetrievalAgent().WithFetcher(fetch)

	result := a.Execute(context.Background(), "ابحث عن الذكاء الاصطناعي")
	if !result.Success {
		t.Fatalf("expected success, got error: %s", result.Error)
	}
	if result.Details["query"] != "الذكاء الاصطناعي" {
		t.Errorf("query = %q", result.Details["query"])
	}
	if !strings.Contains(fetch.lastURL, "duckduckgo.com") {
		t.Errorf("unexpected search URL: %s", fetch.lastURL)
	}
}

func TestWebRetrievalFetchFailure(t *testing.T) {
	a := NewWebRetrievalAgent().WithFetcher(&recordedFetch{err: fmt.Errorf("dns failure")})

	result := a.Execute(context.Background(), "search for anything")
	if result.Success {
		t.Fatal("expected failure when fetch errors")
	}
	if result.Error == "" {
		t.Error("expected error message")
	}
}

func TestWebRetrievalFetchURLTruncates(t *testing.T) {
	long := strings.Repeat("م", 6000)
	a := NewWebRetrievalAgent().WithFetcher(&recordedFetch{status: 200, text: long})

	result := a.FetchURL(context.Background(), "https://example.com/page")
	if !result.Success {
		t.Fatalf("expected success, got: %s", result.Error)
	}
	if n := len([]rune(result.Output)); n != 5000 {
		t.Errorf("content length = %d runes, want 5000", n)
	}
}

func TestCodeGenerationExecute(t *testing.T) {
	a := NewCodeGenerationAgent()

	result := a.Execute(context.Background(), "write a python class for caching")
	if !result.Success {
		t.Fatalf("expected success, got: %s", result.Error)
	}
	if result.Details["language"] != "python" {
		t.Errorf("language = %s", result.Details["language"])
	}
	if !strings.Contains(result.Output, "GeneratedClass") {
		t.Errorf("output missing generated class: %s", result.Output)
	}
}

func TestExecutionHistoryBounded(t *testing.T) {
	a := NewCodeGenerationAgent()
	for i := 0; i < 60; i++ {
		a.Execute(context.Background(), fmt.Sprintf("task %d", i))
	}

	info := Describe(a)
	if info.ExecutionsCount != maxExecutionHistory {
		t.Errorf("executions count = %d, want %d", info.ExecutionsCount, maxExecutionHistory)
	}
	if len(info.RecentExecutions) != recentExecutions {
		t.Fatalf("recent executions = %d, want %d", len(info.RecentExecutions), recentExecutions)
	}
	last := info.RecentExecutions[len(info.RecentExecutions)-1]
	if last.Task != "task 59" {
		t.Errorf("last recorded task = %q", last.Task)
	}
}

func TestRegistryForTask(t *testing.T) {
	registry := NewRegistry()
	registry.Register(NewWebRetrievalAgent())
	registry.Register(NewCodeGenerationAgent())

	a, ok := registry.ForTask("web_search")
	if !ok {
		t.Fatal("expected an agent for web_search")
	}
	if a.Name() != "WebRetrievalAgent" {
		t.Errorf("agent = %s", a.Name())
	}

	a, ok = registry.ForTask("code_generation")
	if !ok {
		t.Fatal("expected an agent for code_generation")
	}
	if a.Name() != "CodeGeneratorAgent" {
		t.Errorf("agent = %s", a.Name())
	}

	if _, ok := registry.ForTask("time_travel"); ok {
		t.Error("expected no agent for unknown task type")
	}
}

func TestRegistryNames(t *testing.T) {
	registry := NewRegistry()
	registry.Register(NewWebRetrievalAgent())
	registry.Register(NewCodeGenerationAgent())

	names := registry.Names()
	if len(names) != 2 || names[0] != "CodeGeneratorAgent" || names[1] != "WebRetrievalAgent" {
		t.Errorf("names = %v", names)
	}
}
