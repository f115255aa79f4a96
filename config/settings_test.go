package config

import (
	"testing"
)

func TestNewDefaults(t *testing.T) {
	settings, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if settings.Models.DefaultModel != "gpt-3.5-turbo" {
		t.Errorf("default model = %s", settings.Models.DefaultModel)
	}
	if settings.Models.ArabicModel != "qwen-arabic" {
		t.Errorf("arabic model = %s", settings.Models.ArabicModel)
	}
	if settings.Models.CodeModel != "deepseek-coder" {
		t.Errorf("code model = %s", settings.Models.CodeModel)
	}
	if settings.Memory.MaxHistory != 10 {
		t.Errorf("max history = %d", settings.Memory.MaxHistory)
	}
	if settings.Language.Default != "ar" {
		t.Errorf("default language = %s", settings.Language.Default)
	}
	if settings.Features.EnableShellExecution {
		t.Error("shell execution should default to disabled")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DEFAULT_MODEL", "gpt-4")
	t.Setenv("MAX_HISTORY", "25")
	t.Setenv("ENABLE_SHELL_EXECUTION", "true")
	t.Setenv("ALLOWED_COMMANDS", "ls, pwd ,date")

	settings, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if settings.Models.DefaultModel != "gpt-4" {
		t.Errorf("default model = %s", settings.Models.DefaultModel)
	}
	if settings.Memory.MaxHistory != 25 {
		t.Errorf("max history = %d", settings.Memory.MaxHistory)
	}
	allowlist := settings.ShellAllowlist()
	if len(allowlist) != 3 || allowlist[0] != "ls" || allowlist[1] != "pwd" || allowlist[2] != "date" {
		t.Errorf("allowlist = %v", allowlist)
	}
}

func TestInvalidEnvValues(t *testing.T) {
	cases := []struct {
		key   string
		value string
	}{
		{"MAX_TOKENS", "not-a-number"},
		{"TEMPERATURE", "warm"},
		{"MAX_HISTORY", "0"},
		{"ENABLE_WEB_SEARCH", "sometimes"},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := New(); err == nil {
				t.Errorf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}

func TestShellAllowlistDisabled(t *testing.T) {
	settings, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := settings.ShellAllowlist(); got != nil {
		t.Errorf("allowlist should be nil when shell execution disabled, got %v", got)
	}
}
