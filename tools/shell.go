// Shell command tool - the shell-exec collaborator.
package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// RunResult is the outcome of one shell command.
type RunResult struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exit_code"`
}

// ShellTool executes allowlisted shell commands via sh -c.
type ShellTool struct {
	BaseTool
	timeoutSecs     uint64
	allowedCommands []string
}

// NewShellTool creates a new shell tool with the given timeout.
// Without an allowlist every command is rejected: shell execution is
// opt-in by configuration.
func NewShellTool(timeoutSecs uint64) *ShellTool {
	return &ShellTool{
		timeoutSecs: timeoutSecs,
	}
}

// WithAllowedCommands sets the allowlist for commands.
func (t *ShellTool) WithAllowedCommands(commands []string) *ShellTool {
	t.allowedCommands = commands
	return t
}

// Metadata returns the tool metadata.
func (t *ShellTool) Metadata() ToolMetadata {
	return ToolMetadata{
		Name:        NameRunShell,
		Description: "Execute an allowlisted shell command and return its output",
		Parameters: []ToolParameter{
			{Name: "command", ParamType: "string", Description: "The shell command to execute", Required: true},
		},
	}
}

type shellArgs struct {
	Command string `json:"command"`
}

// Validate validates the tool arguments.
func (t *ShellTool) Validate(args json.RawMessage) error {
	var a shellArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if strings.TrimSpace(a.Command) == "" {
		return fmt.Errorf("command cannot be empty")
	}
	if !t.commandAllowed(a.Command) {
		return fmt.Errorf("command not allowed: %s", a.Command)
	}
	return nil
}

func (t *ShellTool) commandAllowed(command string) bool {
	command = strings.TrimSpace(command)
	for _, allowed := range t.allowedCommands {
		if command == allowed {
			return true
		}
	}
	return false
}

// Execute runs the command and returns stdout, stderr and exit code.
func (t *ShellTool) Execute(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	if err := t.Validate(args); err != nil {
		return FailureResult(err), nil
	}

	var a shellArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return FailureResultf("invalid arguments: %v", err), nil
	}

	result, err := t.Run(ctx, a.Command)
	if err != nil {
		return FailureResultf("execution failed: %v", err), nil
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return FailureResultf("failed to encode result: %v", err), nil
	}
	if result.ExitCode != 0 {
		return FailureResultf("command exited with code %d: %s", result.ExitCode, result.Stderr), nil
	}
	return SuccessResult(string(encoded)), nil
}

// Run executes an allowlisted command directly, exposing the collaborator
// contract: run(command) -> {stdout, stderr, exit_code}.
func (t *ShellTool) Run(ctx context.Context, command string) (RunResult, error) {
	if !t.commandAllowed(command) {
		return RunResult{}, fmt.Errorf("command not allowed: %s", command)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(t.timeoutSecs)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			return RunResult{}, fmt.Errorf("failed to run command: %w", err)
		}
	}

	return RunResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}, nil
}

var _ Tool = (*ShellTool)(nil)
