package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestShellAllowedCommand(t *testing.T) {
	tool := NewShellTool(5).WithAllowedCommands([]string{"echo hello"})

	result, err := tool.Run(context.Background(), "echo hello")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", result.ExitCode)
	}
	if strings.TrimSpace(result.Stdout) != "hello" {
		t.Errorf("stdout = %q, want %q", result.Stdout, "hello")
	}
}

func TestShellRejectsUnlistedCommand(t *testing.T) {
	tool := NewShellTool(5).WithAllowedCommands([]string{"ls"})

	if _, err := tool.Run(context.Background(), "rm -rf /"); err == nil {
		t.Fatal("expected unlisted command to be rejected")
	}
}

func TestShellEmptyAllowlistRejectsEverything(t *testing.T) {
	tool := NewShellTool(5)

	for _, command := range []string{"ls", "pwd", "echo hi"} {
		if _, err := tool.Run(context.Background(), command); err == nil {
			t.Errorf("command %q should be rejected with empty allowlist", command)
		}
	}
}

func TestShellExecuteValidation(t *testing.T) {
	tool := NewShellTool(5).WithAllowedCommands([]string{"ls"})

	args, _ := json.Marshal(map[string]string{"command": ""})
	result, err := tool.Execute(context.Background(), args)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Success() {
		t.Fatal("expected failure for empty command")
	}
}

func TestShellNonZeroExit(t *testing.T) {
	tool := NewShellTool(5).WithAllowedCommands([]string{"false"})

	result, err := tool.Run(context.Background(), "false")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.ExitCode == 0 {
		t.Error("expected non-zero exit code")
	}
}
