// Package model provides domain types shared across packages.
package model

import "time"

// Intent is the closed set of symbolic categories assigned to user input.
// Classification is rule-based and total: every input maps to exactly one
// intent, with IntentUnknown as the default.
type Intent string

const (
	IntentSearch         Intent = "search"
	IntentGenerateCode   Intent = "generate_code"
	IntentExecuteCommand Intent = "execute_command"
	IntentCreateFile     Intent = "create_file"
	IntentReadFile       Intent = "read_file"
	IntentAnalyze        Intent = "analyze"
	IntentTranslate      Intent = "translate"
	IntentSummarize      Intent = "summarize"
	IntentGreeting       Intent = "greeting"
	IntentUnknown        Intent = "unknown"
)

// Intents lists all valid intent values.
var Intents = []Intent{
	IntentSearch,
	IntentGenerateCode,
	IntentExecuteCommand,
	IntentCreateFile,
	IntentReadFile,
	IntentAnalyze,
	IntentTranslate,
	IntentSummarize,
	IntentGreeting,
	IntentUnknown,
}

// String returns the canonical string value of the intent.
func (i Intent) String() string {
	return string(i)
}

// Valid reports whether the intent is one of the closed set.
func (i Intent) Valid() bool {
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}

// Entities holds structured fragments extracted from raw input text.
// Each list preserves first-occurrence order and keeps duplicates.
// Commands is reserved: no extraction rule currently populates it.
type Entities struct {
	Files    []string `json:"files"`
	URLs     []string `json:"urls"`
	Commands []string `json:"commands"`
	Keywords []string `json:"keywords"`
}

// Empty reports whether no entities were extracted.
func (e Entities) Empty() bool {
	return len(e.Files) == 0 && len(e.URLs) == 0 && len(e.Commands) == 0 && len(e.Keywords) == 0
}

// ConversationTurn is one completed request/response exchange.
// Turns are created once per request and never mutated afterwards.
type ConversationTurn struct {
	Timestamp     time.Time `json:"timestamp"`
	UserMessage   string    `json:"user_message"`
	AgentResponse string    `json:"agent_response"`
	Intent        Intent    `json:"intent"`
	Entities      Entities  `json:"entities"`
	ToolsUsed     []string  `json:"tools_used"`
}

// PlanStep is one named action in an execution plan, delegated to the
// responsible tool by whoever executes the plan.
type PlanStep struct {
	Action string `json:"action"`
	Tool   string `json:"tool"`
}

// ExecutionPlan is descriptive metadata: an intent-indexed ordered sequence
// of steps returned alongside the response. The core never executes it.
type ExecutionPlan struct {
	Intent         Intent     `json:"intent"`
	Steps          []PlanStep `json:"steps"`
	ExpectedOutput string     `json:"expected_output"`
}

// Summary is the derived rolling view over conversation memory.
type Summary struct {
	ConversationLength int               `json:"conversation_length"`
	RecentIntents      []Intent          `json:"recent_intents"`
	MentionedFiles     []string          `json:"mentioned_files"`
	LastIntent         Intent            `json:"last_intent"`
	UserPreferences    map[string]string `json:"user_preferences"`
	ToolsUsed          []string          `json:"tools_used"`
}

// LogEntry is one timestamped line in the orchestrator's bounded log.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// Result is the aggregate outcome of processing one request.
// Success is false only when tool selection or plan construction failed;
// a failed request leaves conversation memory unmodified.
type Result struct {
	Success       bool          `json:"success"`
	Response      string        `json:"response"`
	Intent        Intent        `json:"intent"`
	Entities      Entities      `json:"entities"`
	ToolsUsed     []string      `json:"tools_used"`
	ModelUsed     string        `json:"model_used"`
	Plan          ExecutionPlan `json:"plan"`
	ContextSwitch bool          `json:"context_switch"`
	ExecutionTime time.Duration `json:"execution_time"`
	Logs          []LogEntry    `json:"logs"`
	Context       Summary       `json:"context"`
	Error         string        `json:"error,omitempty"`
}

// Status is the read-only introspection view of the orchestrator.
type Status struct {
	ToolsRegistered   int        `json:"tools_registered"`
	AgentsRegistered  int        `json:"agents_registered"`
	ConversationTurns int        `json:"conversation_turns"`
	ContextMemoryKeys []string   `json:"context_memory_keys"`
	RecentLogs        []LogEntry `json:"recent_logs"`
}
