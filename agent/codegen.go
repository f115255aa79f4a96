// Code generation agent.
package agent

import (
	"context"
	"encoding/json"

	"github.com/dalil-ai/dalil/tools"
)

// CodeGenerationAgent generates code with tests and documentation.
type CodeGenerationAgent struct {
	history
}

// NewCodeGenerationAgent creates a code generation agent.
func NewCodeGenerationAgent() *CodeGenerationAgent {
	return &CodeGenerationAgent{}
}

// Name returns the agent's name.
func (a *CodeGenerationAgent) Name() string {
	return "CodeGeneratorAgent"
}

// Description returns the agent's description.
func (a *CodeGenerationAgent) Description() string {
	return "Generates code in multiple programming languages with documentation"
}

// Capabilities returns the task types this agent handles.
func (a *CodeGenerationAgent) Capabilities() []string {
	return []string{"code_generation", "code_documentation", "unit_tests"}
}

// CanHandle reports whether the agent handles the given task type.
func (a *CodeGenerationAgent) CanHandle(taskType string) bool {
	for _, c := range a.Capabilities() {
		if c == taskType {
			return true
		}
	}
	return false
}

// Execute parses the task into a code spec and generates scaffolding,
// tests and documentation for it.
func (a *CodeGenerationAgent) Execute(ctx context.Context, task string) Result {
	generated := tools.Generate(tools.ParseCodeSpec(task))

	encoded, err := json.Marshal(generated)
	if err != nil {
		a.log(task, err.Error(), false)
		return Result{Success: false, Error: err.Error()}
	}

	a.log(task, generated.Code, true)
	return Result{
		Success: true,
		Output:  string(encoded),
		Details: map[string]string{
			"language":  generated.Language,
			"file_name": generated.FileName,
		},
	}
}

func (a *CodeGenerationAgent) executionCount() int                 { return a.count() }
func (a *CodeGenerationAgent) recentExecutions() []ExecutionRecord { return a.recent() }

var _ Agent = (*CodeGenerationAgent)(nil)
