// Provider factory.
//
//	provider, err := llm.NewProvider("anthropic", "")        // key from env
//	provider, err := llm.NewProvider("openai", "gpt-4")
package llm

import (
	"fmt"
	"os"
	"strings"
)

// ProviderType identifies a supported generation backend.
type ProviderType int

const (
	ProviderOpenAI ProviderType = iota
	ProviderAnthropic
	ProviderDeepSeek
	ProviderGemini
)

// String returns the canonical provider name.
func (p ProviderType) String() string {
	switch p {
	case ProviderOpenAI:
		return "openai"
	case ProviderAnthropic:
		return "anthropic"
	case ProviderDeepSeek:
		return "deepseek"
	case ProviderGemini:
		return "gemini"
	default:
		return "unknown"
	}
}

// EnvVar returns the environment variable holding this provider's API key.
func (p ProviderType) EnvVar() string {
	switch p {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderDeepSeek:
		return "DEEPSEEK_API_KEY"
	case ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return ""
	}
}

// DefaultModel returns the default model identifier for this provider.
func (p ProviderType) DefaultModel() string {
	switch p {
	case ProviderOpenAI:
		return "gpt-4o"
	case ProviderAnthropic:
		return "claude-sonnet-4-20250514"
	case ProviderDeepSeek:
		return "deepseek-chat"
	case ProviderGemini:
		return "gemini-2.5-flash"
	default:
		return ""
	}
}

// ParseProviderType parses a provider name, accepting common aliases.
func ParseProviderType(s string) (ProviderType, error) {
	switch strings.ToLower(s) {
	case "openai", "gpt":
		return ProviderOpenAI, nil
	case "anthropic", "claude":
		return ProviderAnthropic, nil
	case "deepseek":
		return ProviderDeepSeek, nil
	case "gemini", "google":
		return ProviderGemini, nil
	default:
		return 0, fmt.Errorf("unknown provider: %s", s)
	}
}

// NewProvider creates a provider by name, reading the API key from the
// provider's environment variable. An empty model selects the default.
func NewProvider(name, model string) (Provider, error) {
	providerType, err := ParseProviderType(name)
	if err != nil {
		return nil, err
	}

	apiKey := os.Getenv(providerType.EnvVar())
	if apiKey == "" {
		return nil, fmt.Errorf("%s: %s environment variable not set", providerType, providerType.EnvVar())
	}

	if model == "" {
		model = providerType.DefaultModel()
	}

	const (
		defaultMaxTokens   = 2000
		defaultTemperature = 0.7
	)

	switch providerType {
	case ProviderOpenAI:
		return NewOpenAIProvider(apiKey, model, defaultMaxTokens, defaultTemperature), nil
	case ProviderAnthropic:
		return NewAnthropicProvider(apiKey, model, defaultMaxTokens, defaultTemperature), nil
	case ProviderDeepSeek:
		return NewDeepSeekProvider(apiKey, model, defaultMaxTokens, defaultTemperature), nil
	case ProviderGemini:
		return NewGeminiProvider(apiKey, model, defaultMaxTokens, defaultTemperature), nil
	default:
		return nil, fmt.Errorf("unknown provider type: %v", providerType)
	}
}
