// Model catalog - selection metadata for every known backing model.
//
// The orchestrator picks models by name and uses this catalog only for
// selection metadata (provider, token limits, cost, capability flags).
// Nothing here ever invokes a model; generation lives behind Provider.
package llm

import "sort"

// ModelSpec describes one backing model.
type ModelSpec struct {
	Name            string
	Provider        string
	MaxTokens       int
	SupportsArabic  bool
	SupportsCode    bool
	CostPer1KTokens float64
	Description     string
}

// DefaultGeneralModel is the fallback when a requested model is unknown.
const DefaultGeneralModel = "gpt-3.5-turbo"

// Arabic-capable language models.
var arabicModels = map[string]ModelSpec{
	"arabert": {
		Name:           "arabert-base-v2",
		Provider:       "huggingface",
		MaxTokens:      512,
		SupportsArabic: true,
		Description:    "Arabic BERT model for NLP tasks",
	},
	"qwen-arabic": {
		Name:            "qwen/qwen-2.5-72b-instruct",
		Provider:        "openrouter",
		MaxTokens:       4096,
		SupportsArabic:  true,
		CostPer1KTokens: 0.002,
		Description:     "Qwen 2.5 with excellent Arabic support",
	},
	"camelbert": {
		Name:           "CAMeLBERT-Mix",
		Provider:       "huggingface",
		MaxTokens:      512,
		SupportsArabic: true,
		Description:    "CAMeL Arabic BERT model",
	},
}

// General purpose models.
var generalModels = map[string]ModelSpec{
	"gpt-3.5-turbo": {
		Name:            "gpt-3.5-turbo",
		Provider:        "openai",
		MaxTokens:       4096,
		SupportsArabic:  true,
		SupportsCode:    true,
		CostPer1KTokens: 0.002,
		Description:     "Fast and efficient general-purpose model",
	},
	"gpt-4": {
		Name:            "gpt-4",
		Provider:        "openai",
		MaxTokens:       8192,
		SupportsArabic:  true,
		SupportsCode:    true,
		CostPer1KTokens: 0.03,
		Description:     "Most capable OpenAI model",
	},
	"claude-3": {
		Name:            "claude-3-opus-20240229",
		Provider:        "anthropic",
		MaxTokens:       4096,
		SupportsArabic:  true,
		SupportsCode:    true,
		CostPer1KTokens: 0.015,
		Description:     "Advanced Claude 3 model",
	},
	"llama-3": {
		Name:            "meta-llama/llama-3-70b-instruct",
		Provider:        "openrouter",
		MaxTokens:       8192,
		SupportsArabic:  true,
		SupportsCode:    true,
		CostPer1KTokens: 0.0008,
		Description:     "Meta's powerful open-source model",
	},
	"mistral-7b": {
		Name:            "mistralai/mistral-7b-instruct",
		Provider:        "openrouter",
		MaxTokens:       8192,
		SupportsArabic:  true,
		SupportsCode:    true,
		CostPer1KTokens: 0.0002,
		Description:     "Efficient Mistral model",
	},
}

// Code generation models.
var codeModels = map[string]ModelSpec{
	"deepseek-coder": {
		Name:            "deepseek/deepseek-coder-33b-instruct",
		Provider:        "openrouter",
		MaxTokens:       16384,
		SupportsCode:    true,
		CostPer1KTokens: 0.0006,
		Description:     "Specialized code generation model",
	},
	"codellama": {
		Name:            "meta-llama/codellama-34b-instruct",
		Provider:        "openrouter",
		MaxTokens:       16384,
		SupportsCode:    true,
		CostPer1KTokens: 0.0008,
		Description:     "Meta's code-focused LLaMA",
	},
}

var allModels = mergeSpecs(arabicModels, generalModels, codeModels)

func mergeSpecs(groups ...map[string]ModelSpec) map[string]ModelSpec {
	merged := make(map[string]ModelSpec)
	for _, group := range groups {
		for name, spec := range group {
			merged[name] = spec
		}
	}
	return merged
}

// Resolve returns the spec for a model name, falling back to the default
// general model when the name is unknown. Resolution never fails: model
// names are opaque identifiers and an unknown one still yields a usable
// selection.
func Resolve(name string) ModelSpec {
	if spec, ok := allModels[name]; ok {
		return spec
	}
	return generalModels[DefaultGeneralModel]
}

// Known reports whether a model name is in the catalog.
func Known(name string) bool {
	_, ok := allModels[name]
	return ok
}

// ByCapability returns model names filtered by required capabilities.
func ByCapability(arabic, code bool) []string {
	names := []string{}
	for name, spec := range allModels {
		if arabic && !spec.SupportsArabic {
			continue
		}
		if code && !spec.SupportsCode {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CatalogNames returns every model name in the catalog, sorted.
func CatalogNames() []string {
	names := make([]string, 0, len(allModels))
	for name := range allModels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
