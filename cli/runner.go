// Command execution for CLI commands.
//
// Information Hiding:
// - Command dispatch logic hidden
// - Core setup hidden
// - Output formatting hidden

package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dalil-ai/dalil/arabic"
	"github.com/dalil-ai/dalil/config"
	"github.com/dalil-ai/dalil/llm"
	"github.com/dalil-ai/dalil/orchestration"
	"github.com/dalil-ai/dalil/storage"
)

// Options holds CLI execution options.
type Options struct {
	Verbose bool

	// Provider selects a live generation backend ("openai", "anthropic",
	// "deepseek", "gemini"). Empty keeps the template-only path.
	Provider string
	Model    string
}

// newCore builds a fully wired orchestration core from the environment.
func newCore() (*orchestration.Core, error) {
	settings, err := config.New()
	if err != nil {
		return nil, err
	}
	return orchestration.NewWithDefaults(settings)
}

// Ask processes a single request and prints the result.
func Ask(ctx context.Context, input string, opts Options) error {
	core, err := newCore()
	if err != nil {
		return err
	}

	result := core.Process(ctx, input, nil)

	if !result.Success {
		printResponse(result.Response)
		return fmt.Errorf("request failed: %s", result.Error)
	}

	if opts.Provider != "" {
		generated, err := generate(ctx, core, input, opts)
		if err != nil {
			return err
		}
		printResponse(generated)
	} else {
		printResponse(result.Response)
	}

	if opts.Verbose {
		fmt.Printf("\nIntent: %s\n", result.Intent)
		fmt.Printf("Model: %s\n", result.ModelUsed)
		fmt.Printf("Tools: %v\n", result.ToolsUsed)
		fmt.Printf("Duration: %s\n", result.ExecutionTime)
		for _, step := range result.Plan.Steps {
			fmt.Printf("Plan step: %s (%s)\n", step.Action, step.Tool)
		}
	}
	return nil
}

// generate sends the request through a live provider, carrying the
// conversation prompt context as the system message.
func generate(ctx context.Context, core *orchestration.Core, input string, opts Options) (string, error) {
	provider, err := llm.NewProvider(opts.Provider, opts.Model)
	if err != nil {
		return "", err
	}

	messages := []llm.ChatMessage{
		llm.SystemMessage(core.Memory().PromptContext()),
		llm.UserMessage(input),
	}
	response, err := provider.Chat(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	return response.Content, nil
}

func printResponse(response string) {
	if arabic.IsArabic(response) {
		response = arabic.FormatDisplay(response)
	}
	fmt.Printf("%s\n", response)
}

// Chat starts an interactive bilingual session. The session ends on
// "exit"/"خروج"; "clear"/"مسح" resets the conversation; "status" prints
// the system status; "export" saves the transcript.
func Chat(ctx context.Context, archivePath string, opts Options) error {
	core, err := newCore()
	if err != nil {
		return err
	}

	fmt.Println("دليل — المساعد الذكي / dalil — intelligent assistant")
	fmt.Println("Type 'exit' or 'خروج' to quit, 'clear' or 'مسح' to reset context.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch input {
		case "exit", "quit", "خروج":
			fmt.Println("مع السلامة / goodbye")
			return nil
		case "clear", "مسح":
			core.ClearContext()
			fmt.Println("Context cleared / تم مسح السياق")
			continue
		case "status":
			printStatus(core)
			continue
		case "export":
			if err := exportCore(ctx, core, archivePath); err != nil {
				fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			} else {
				fmt.Printf("Transcript saved to %s\n", archivePath)
			}
			continue
		}

		result := core.Process(ctx, input, nil)
		if result.Success && opts.Provider != "" {
			generated, err := generate(ctx, core, input, opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			} else {
				printResponse(generated)
			}
		} else {
			printResponse(result.Response)
		}
		if !result.Success {
			fmt.Fprintf(os.Stderr, "Error: %s\n", result.Error)
		}
		if opts.Verbose {
			fmt.Printf("  [intent=%s model=%s tools=%v switch=%v]\n",
				result.Intent, result.ModelUsed, result.ToolsUsed, result.ContextSwitch)
		}
		fmt.Println()
	}
	return scanner.Err()
}

// Status prints the current system status.
func Status(ctx context.Context) error {
	core, err := newCore()
	if err != nil {
		return err
	}
	printStatus(core)
	return nil
}

func printStatus(core *orchestration.Core) {
	status := core.GetStatus()
	fmt.Printf("Tools registered:  %d\n", status.ToolsRegistered)
	fmt.Printf("Agents registered: %d\n", status.AgentsRegistered)
	fmt.Printf("Conversation turns: %d\n", status.ConversationTurns)
	if len(status.ContextMemoryKeys) > 0 {
		fmt.Printf("Context keys: %s\n", strings.Join(status.ContextMemoryKeys, ", "))
	}
	for _, entry := range status.RecentLogs {
		fmt.Printf("  %s  %s\n", entry.Timestamp.Format("15:04:05"), entry.Message)
	}
}

// Models lists the model catalog with capability metadata.
func Models(ctx context.Context) error {
	for _, name := range llm.CatalogNames() {
		spec := llm.Resolve(name)
		flags := []string{}
		if spec.SupportsArabic {
			flags = append(flags, "arabic")
		}
		if spec.SupportsCode {
			flags = append(flags, "code")
		}
		fmt.Printf("%-16s %-12s max_tokens=%-6d $%.4f/1k  %s  %s\n",
			name, spec.Provider, spec.MaxTokens, spec.CostPer1KTokens,
			strings.Join(flags, ","), spec.Description)
	}
	return nil
}

// Export saves the transcripts stored in an archive, or lists sessions.
func Export(ctx context.Context, archivePath, sessionID string) error {
	archive, err := storage.OpenArchive(archivePath)
	if err != nil {
		return err
	}
	defer archive.Close()

	if sessionID == "" {
		sessions, err := archive.ListSessions(ctx)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No saved sessions.")
			return nil
		}
		for _, id := range sessions {
			fmt.Println(id)
		}
		return nil
	}

	turns, err := archive.LoadTranscript(ctx, sessionID)
	if err != nil {
		return err
	}
	for _, turn := range turns {
		fmt.Printf("[%s] %s\n", turn.Timestamp.Format("2006-01-02 15:04:05"), turn.Intent)
		fmt.Printf("  user:  %s\n", turn.UserMessage)
		fmt.Printf("  agent: %s\n", turn.AgentResponse)
	}
	return nil
}

func exportCore(ctx context.Context, core *orchestration.Core, archivePath string) error {
	archive, err := storage.OpenArchive(archivePath)
	if err != nil {
		return err
	}
	defer archive.Close()
	return core.ExportConversation(ctx, archive)
}
