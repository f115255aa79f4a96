// Package agent provides specialized task agents that sit above the tool
// layer. Tools are single capabilities; agents combine them with task
// interpretation and keep their own bounded execution history.
package agent

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Result is the outcome of one agent execution.
type Result struct {
	Success bool              `json:"success"`
	Output  string            `json:"output"`
	Error   string            `json:"error,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// Agent executes tasks within its declared capabilities.
type Agent interface {
	Name() string
	Description() string
	Capabilities() []string
	CanHandle(taskType string) bool
	Execute(ctx context.Context, task string) Result
}

// ExecutionRecord is one entry in an agent's execution history.
type ExecutionRecord struct {
	Timestamp     time.Time
	Task          string
	Success       bool
	ResultPreview string
}

const (
	maxExecutionHistory = 50
	recentExecutions    = 5
	previewLength       = 100
)

// history tracks an agent's recent executions, bounded to the last 50.
type history struct {
	mu      sync.Mutex
	records []ExecutionRecord
}

func (h *history) log(task string, output string, success bool) {
	preview := output
	if runes := []rune(preview); len(runes) > previewLength {
		preview = string(runes[:previewLength])
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, ExecutionRecord{
		Timestamp:     time.Now(),
		Task:          task,
		Success:       success,
		ResultPreview: preview,
	})
	if len(h.records) > maxExecutionHistory {
		h.records = h.records[len(h.records)-maxExecutionHistory:]
	}
}

func (h *history) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

func (h *history) recent() []ExecutionRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	start := len(h.records) - recentExecutions
	if start < 0 {
		start = 0
	}
	out := make([]ExecutionRecord, len(h.records)-start)
	copy(out, h.records[start:])
	return out
}

// Info is a snapshot of an agent's identity and activity.
type Info struct {
	Name             string
	Description      string
	Capabilities     []string
	ExecutionsCount  int
	RecentExecutions []ExecutionRecord
}

// Describe builds an Info snapshot for any agent. Agents implementing
// historian also report execution counts.
func Describe(a Agent) Info {
	info := Info{
		Name:         a.Name(),
		Description:  a.Description(),
		Capabilities: a.Capabilities(),
	}
	if h, ok := a.(historian); ok {
		info.ExecutionsCount = h.executionCount()
		info.RecentExecutions = h.recentExecutions()
	}
	return info
}

type historian interface {
	executionCount() int
	recentExecutions() []ExecutionRecord
}

// Registry manages available agents.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]Agent
}

// NewRegistry creates an empty agent registry.
func NewRegistry() *Registry {
	return &Registry{agents: make(map[string]Agent)}
}

// Register adds an agent, replacing any previous agent with the same name.
func (r *Registry) Register(a Agent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents[a.Name()] = a
}

// Get returns an agent by name.
func (r *Registry) Get(name string) (Agent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.agents[name]
	return a, ok
}

// ForTask returns the first agent that can handle the given task type.
// Lookup order is deterministic by agent name.
func (r *Registry) ForTask(taskType string) (Agent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if r.agents[name].CanHandle(taskType) {
			return r.agents[name], true
		}
	}
	return nil, false
}

// Len returns the number of registered agents.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}

// Names returns registered agent names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
