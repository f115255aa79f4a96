// Execution plan construction.
//
// Plans are descriptive metadata: an ordered {action, tool} sequence per
// intent, returned to the caller alongside the response. The core never
// executes them.
package orchestration

import (
	"github.com/dalil-ai/dalil/model"
	"github.com/dalil-ai/dalil/tools"
)

// Pseudo-tool names used in plan steps for work the core or its text
// components perform themselves rather than delegating.
const (
	planToolCore      = "intelligence_core"
	planToolFormatter = "arabic_processor"
)

type planTemplate struct {
	steps          []model.PlanStep
	expectedOutput string
}

var planTemplates = map[model.Intent]planTemplate{
	model.IntentGreeting: {
		steps: []model.PlanStep{
			{Action: "generate_greeting", Tool: planToolFormatter},
		},
		expectedOutput: "Friendly greeting response",
	},
	model.IntentSearch: {
		steps: []model.PlanStep{
			{Action: "web_search", Tool: tools.NameWebSearch},
			{Action: "analyze_results", Tool: planToolCore},
			{Action: "format_response", Tool: planToolFormatter},
		},
		expectedOutput: "Search results with analysis",
	},
	model.IntentGenerateCode: {
		steps: []model.PlanStep{
			{Action: "understand_requirements", Tool: planToolCore},
			{Action: "generate_code", Tool: tools.NameCodeGenerator},
			{Action: "save_to_file", Tool: tools.NameWriteToFile},
		},
		expectedOutput: "Generated code file",
	},
	model.IntentExecuteCommand: {
		steps: []model.PlanStep{
			{Action: "validate_command", Tool: planToolCore},
			{Action: "execute", Tool: tools.NameRunShell},
			{Action: "format_results", Tool: planToolCore},
		},
		expectedOutput: "Command execution results",
	},
	model.IntentCreateFile: {
		steps: []model.PlanStep{
			{Action: "prepare_content", Tool: planToolCore},
			{Action: "write_file", Tool: tools.NameWriteToFile},
		},
		expectedOutput: "Created file",
	},
	model.IntentReadFile: {
		steps: []model.PlanStep{
			{Action: "read_file", Tool: tools.NameReadFromFile},
			{Action: "format_response", Tool: planToolFormatter},
		},
		expectedOutput: "File contents",
	},
	model.IntentAnalyze: {
		steps: []model.PlanStep{
			{Action: "gather_sources", Tool: planToolCore},
			{Action: "analyze_content", Tool: planToolCore},
			{Action: "format_response", Tool: planToolFormatter},
		},
		expectedOutput: "Analysis report",
	},
	model.IntentTranslate: {
		steps: []model.PlanStep{
			{Action: "translate_text", Tool: planToolCore},
			{Action: "format_response", Tool: planToolFormatter},
		},
		expectedOutput: "Translated text",
	},
	model.IntentSummarize: {
		steps: []model.PlanStep{
			{Action: "summarize_content", Tool: planToolCore},
			{Action: "format_response", Tool: planToolFormatter},
		},
		expectedOutput: "Summary text",
	},
}

// buildPlan returns the execution plan for an intent. Intents without a
// template, including Unknown, get an empty plan carrying the intent.
func buildPlan(intent model.Intent) model.ExecutionPlan {
	plan := model.ExecutionPlan{Intent: intent, Steps: []model.PlanStep{}}
	if tmpl, ok := planTemplates[intent]; ok {
		plan.Steps = append(plan.Steps, tmpl.steps...)
		plan.ExpectedOutput = tmpl.expectedOutput
	}
	return plan
}
