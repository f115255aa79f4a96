// Package orchestration coordinates the request-understanding pipeline:
// classification, entity extraction, memory, model and tool selection,
// plan construction and template responses.
//
// The core never performs I/O itself. It emits tool names and model names;
// invocation belongs to the caller layer.
package orchestration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dalil-ai/dalil/agent"
	"github.com/dalil-ai/dalil/arabic"
	"github.com/dalil-ai/dalil/config"
	"github.com/dalil-ai/dalil/entity"
	"github.com/dalil-ai/dalil/intent"
	"github.com/dalil-ai/dalil/llm"
	"github.com/dalil-ai/dalil/model"
	"github.com/dalil-ai/dalil/storage"
	"github.com/dalil-ai/dalil/tools"
)

const (
	maxLogEntries    = 100
	resultLogEntries = 10
	statusLogEntries = 5
	logPreviewLen    = 50
)

// englishGreeting is the fixed English greeting response.
const englishGreeting = "Hello! I'm an intelligent AI agent ready to assist you. How can I help you today?"

// Core is the orchestrator. One Core owns one conversation; concurrent use
// across distinct conversations is safe, concurrent calls against the same
// Core are serialized by the memory and log mutexes.
type Core struct {
	settings   config.Settings
	classifier *intent.Classifier
	memory     *storage.ConversationMemory
	tools      *tools.Registry
	agents     *agent.Registry

	logMu sync.Mutex
	logs  []model.LogEntry
}

// New creates a core from explicit settings with empty registries.
func New(settings config.Settings) *Core {
	return &Core{
		settings:   settings,
		classifier: intent.New(),
		memory:     storage.NewConversationMemory(settings.Memory.MaxHistory),
		tools:      tools.NewRegistry(),
		agents:     agent.NewRegistry(),
	}
}

// NewWithDefaults creates a core with the default tool set and agents
// registered, honoring the feature flags in settings.
func NewWithDefaults(settings config.Settings) (*Core, error) {
	core := New(settings)

	registry, err := tools.WithDefaults(settings.ShellAllowlist())
	if err != nil {
		return nil, fmt.Errorf("failed to build tool registry: %w", err)
	}
	core.tools = registry

	if settings.Features.EnableWebSearch {
		core.agents.Register(agent.NewWebRetrievalAgent())
	}
	if settings.Features.EnableCodeGeneration {
		core.agents.Register(agent.NewCodeGenerationAgent())
	}

	for _, name := range core.tools.Names() {
		core.log(fmt.Sprintf("Tool registered: %s", name))
	}
	for _, name := range core.agents.Names() {
		core.log(fmt.Sprintf("Agent registered: %s", name))
	}
	return core, nil
}

// RegisterTool adds a tool to the core's registry.
func (c *Core) RegisterTool(tool tools.Tool) error {
	if err := c.tools.Register(tool); err != nil {
		return err
	}
	c.log(fmt.Sprintf("Tool registered: %s", tool.Metadata().Name))
	return nil
}

// RegisterAgent adds an agent to the core's registry.
func (c *Core) RegisterAgent(a agent.Agent) {
	c.agents.Register(a)
	c.log(fmt.Sprintf("Agent registered: %s", a.Name()))
}

// Memory returns the conversation memory for this core.
func (c *Core) Memory() *storage.ConversationMemory {
	return c.memory
}

// Process handles one user request end to end: classify, extract, consult
// memory, select model and tools, build a plan, produce a template response
// and record the turn. It never returns an error; internal failures produce
// a Result with Success false and leave conversation memory unmodified.
func (c *Core) Process(ctx context.Context, userInput string, extra map[string]string) (result model.Result) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			c.log(fmt.Sprintf("Request failed: %v", r))
			result = model.Result{
				Success:       false,
				Error:         fmt.Sprintf("internal error: %v", r),
				Entities:      entity.Extract(""),
				ExecutionTime: time.Since(start),
				Logs:          c.recentLogs(resultLogEntries),
			}
		}
	}()

	c.log(fmt.Sprintf("Processing request: %s...", preview(userInput)))

	for _, key := range sortedKeys(extra) {
		c.memory.SetPreference(key, extra[key])
	}

	isArabic := arabic.IsArabic(userInput)
	detected := c.classifier.Classify(userInput)
	entities := entity.Extract(userInput)

	language := "English"
	if isArabic {
		language = "Arabic"
	}
	c.log(fmt.Sprintf("Detected - Language: %s, Intent: %s", language, detected))

	summary := c.memory.Summary()
	contextSwitch := c.memory.DetectContextSwitch(detected)
	if contextSwitch {
		c.log("Context switch detected")
	}

	modelName := c.selectModel(detected, isArabic)
	selectedTools := selectTools(detected, entities)
	c.log(fmt.Sprintf("Selected model: %s, Tools: %v", modelName, selectedTools))

	plan := buildPlan(detected)
	response := c.respond(detected, isArabic)

	c.memory.AddTurn(model.ConversationTurn{
		Timestamp:     time.Now(),
		UserMessage:   userInput,
		AgentResponse: response,
		Intent:        detected,
		Entities:      entities,
		ToolsUsed:     selectedTools,
	})

	return model.Result{
		Success:       true,
		Response:      response,
		Intent:        detected,
		Entities:      entities,
		ToolsUsed:     selectedTools,
		ModelUsed:     modelName,
		Plan:          plan,
		ContextSwitch: contextSwitch,
		ExecutionTime: time.Since(start),
		Logs:          c.recentLogs(resultLogEntries),
		Context:       summary,
	}
}

// selectModel picks a model name by intent and language. Code generation
// forces a code-specialized model, Arabic input prefers the Arabic model.
// Names are resolved through the llm registry for selection metadata only.
func (c *Core) selectModel(detected model.Intent, isArabic bool) string {
	name := c.settings.Models.DefaultModel
	switch {
	case detected == model.IntentGenerateCode:
		name = c.settings.Models.CodeModel
	case isArabic:
		name = c.settings.Models.ArabicModel
	}
	if name == "" {
		name = llm.DefaultGeneralModel
	}

	spec := llm.Resolve(name)
	c.log(fmt.Sprintf("Model %s resolves to provider %s", name, spec.Provider))
	return name
}

// selectTools maps an intent and its entities to the tool names needed.
func selectTools(detected model.Intent, entities model.Entities) []string {
	selected := []string{}

	switch detected {
	case model.IntentSearch:
		selected = append(selected, tools.NameWebSearch)
	case model.IntentGenerateCode:
		selected = append(selected, tools.NameCodeGenerator)
		if len(entities.Files) > 0 {
			selected = append(selected, tools.NameWriteToFile)
		}
	case model.IntentExecuteCommand:
		selected = append(selected, tools.NameRunShell)
	case model.IntentCreateFile:
		selected = append(selected, tools.NameWriteToFile)
	case model.IntentReadFile:
		selected = append(selected, tools.NameReadFromFile)
	case model.IntentAnalyze:
		if len(entities.Files) > 0 {
			selected = append(selected, tools.NameReadFromFile)
		}
		if len(entities.URLs) > 0 {
			selected = append(selected, tools.NameWebSearch)
		}
	}
	return selected
}

// respond produces the template response for an intent. No model is
// invoked; real generation is an extension point at the llm boundary.
func (c *Core) respond(detected model.Intent, isArabic bool) string {
	if isArabic {
		return arabic.Response(detected)
	}
	if detected == model.IntentGreeting {
		return englishGreeting
	}
	return fmt.Sprintf("Processing your request with intent: %s", detected)
}

// GetStatus returns a read-only snapshot of the core.
func (c *Core) GetStatus() model.Status {
	return model.Status{
		ToolsRegistered:   c.tools.Len(),
		AgentsRegistered:  c.agents.Len(),
		ConversationTurns: c.memory.Len(),
		ContextMemoryKeys: c.memory.ContextKeys(),
		RecentLogs:        c.recentLogs(statusLogEntries),
	}
}

// ClearContext resets the conversation memory.
func (c *Core) ClearContext() {
	c.memory.Clear()
	c.log("Context cleared")
}

// ExportConversation saves the current transcript to the archive.
func (c *Core) ExportConversation(ctx context.Context, archive *storage.Archive) error {
	turns := c.memory.Export()
	if err := archive.SaveTranscript(ctx, c.memory.SessionID(), turns); err != nil {
		return fmt.Errorf("failed to export conversation: %w", err)
	}
	c.log(fmt.Sprintf("Exported %d turns for session %s", len(turns), c.memory.SessionID()))
	return nil
}

func (c *Core) log(message string) {
	c.logMu.Lock()
	defer c.logMu.Unlock()

	c.logs = append(c.logs, model.LogEntry{Timestamp: time.Now(), Message: message})
	if len(c.logs) > maxLogEntries {
		c.logs = c.logs[len(c.logs)-maxLogEntries:]
	}
}

func (c *Core) recentLogs(n int) []model.LogEntry {
	c.logMu.Lock()
	defer c.logMu.Unlock()

	start := len(c.logs) - n
	if start < 0 {
		start = 0
	}
	out := make([]model.LogEntry, len(c.logs)-start)
	copy(out, c.logs[start:])
	return out
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) > logPreviewLen {
		return string(runes[:logPreviewLen])
	}
	return text
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
