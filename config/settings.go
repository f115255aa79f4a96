// Package config provides application settings loaded from environment variables.
//
// Settings are created via New() which handles:
// - Environment variable parsing with validation
// - Default value application
// - Feature flag and allowlist configuration

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Settings holds all application configuration.
type Settings struct {
	Models   ModelConfig
	Memory   MemoryConfig
	Features FeatureConfig
	Security SecurityConfig
	Language LanguageConfig
}

// ModelConfig holds model selection configuration.
type ModelConfig struct {
	DefaultModel string
	ArabicModel  string
	CodeModel    string
	MaxTokens    uint32
	Temperature  float64
}

// MemoryConfig holds conversation memory configuration.
type MemoryConfig struct {
	MaxHistory  int
	ArchivePath string
}

// FeatureConfig toggles optional capabilities.
type FeatureConfig struct {
	EnableWebSearch      bool
	EnableCodeGeneration bool
	EnableShellExecution bool
}

// SecurityConfig restricts what the shell tool may run.
type SecurityConfig struct {
	AllowedCommands []string
}

// LanguageConfig holds language preferences.
type LanguageConfig struct {
	Supported []string
	Default   string
}

// defaultAllowedCommands is the shell allowlist used when none is configured.
// Read-only inspection commands only.
var defaultAllowedCommands = []string{
	"ls", "pwd", "whoami", "date", "uptime",
	"df -h", "free -m", "node --version",
	"npm --version", "python --version",
}

// New creates settings from environment variables.
// Returns an error if any environment variable contains an invalid value.
func New() (Settings, error) {
	maxTokens, err := getEnvUint32("MAX_TOKENS", 2000)
	if err != nil {
		return Settings{}, err
	}

	temperature, err := getEnvFloat64("TEMPERATURE", 0.7)
	if err != nil {
		return Settings{}, err
	}

	maxHistory, err := getEnvInt("MAX_HISTORY", 10)
	if err != nil {
		return Settings{}, err
	}
	if maxHistory < 1 {
		return Settings{}, fmt.Errorf("MAX_HISTORY must be positive, got %d", maxHistory)
	}

	enableWebSearch, err := getEnvBool("ENABLE_WEB_SEARCH", true)
	if err != nil {
		return Settings{}, err
	}

	enableCodeGen, err := getEnvBool("ENABLE_CODE_GENERATION", true)
	if err != nil {
		return Settings{}, err
	}

	enableShell, err := getEnvBool("ENABLE_SHELL_EXECUTION", false)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Models: ModelConfig{
			DefaultModel: getEnvString("DEFAULT_MODEL", "gpt-3.5-turbo"),
			ArabicModel:  getEnvString("DEFAULT_ARABIC_MODEL", "qwen-arabic"),
			CodeModel:    getEnvString("DEFAULT_CODE_MODEL", "deepseek-coder"),
			MaxTokens:    maxTokens,
			Temperature:  temperature,
		},
		Memory: MemoryConfig{
			MaxHistory:  maxHistory,
			ArchivePath: getEnvString("ARCHIVE_PATH", "conversations.db"),
		},
		Features: FeatureConfig{
			EnableWebSearch:      enableWebSearch,
			EnableCodeGeneration: enableCodeGen,
			EnableShellExecution: enableShell,
		},
		Security: SecurityConfig{
			AllowedCommands: getEnvList("ALLOWED_COMMANDS", defaultAllowedCommands),
		},
		Language: LanguageConfig{
			Supported: []string{"ar", "en"},
			Default:   getEnvString("DEFAULT_LANGUAGE", "ar"),
		},
	}, nil
}

// MustNew creates settings, panicking on invalid environment variables.
// Use this only when configuration errors should be fatal.
func MustNew() Settings {
	settings, err := New()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return settings
}

// ShellAllowlist returns the commands the shell tool may run.
// An empty list is returned when shell execution is disabled.
func (s Settings) ShellAllowlist() []string {
	if !s.Features.EnableShellExecution {
		return nil
	}
	return s.Security.AllowedCommands
}

// Environment variable helpers with proper error handling

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return i, nil
}

func getEnvUint32(key string, defaultVal uint32) (uint32, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	u, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return uint32(u), nil
}

func getEnvFloat64(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return f, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return b, nil
}

func getEnvList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parts := strings.Split(val, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
