// Package llm provides the model catalog and generation collaborators.
//
// The request-understanding core never calls a provider; providers exist as
// the explicit extension point where real text generation plugs in at the
// system boundary. Each implementation hides client initialization,
// authentication, and request/response conversion for its API.
package llm

import "context"

// ChatMessage is a chat message with role and content.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SystemMessage creates a system message.
func SystemMessage(content string) ChatMessage {
	return ChatMessage{Role: "system", Content: content}
}

// UserMessage creates a user message.
func UserMessage(content string) ChatMessage {
	return ChatMessage{Role: "user", Content: content}
}

// AssistantMessage creates an assistant message.
func AssistantMessage(content string) ChatMessage {
	return ChatMessage{Role: "assistant", Content: content}
}

// TokenUsage contains token usage statistics for one completion.
type TokenUsage struct {
	PromptTokens     uint32
	CompletionTokens uint32
	TotalTokens      uint32
}

// Response is a completed chat response from a provider.
type Response struct {
	Content string
	Usage   *TokenUsage
}

// Provider is the abstract interface for generation backends.
type Provider interface {
	// Name returns the provider name (for logging/debugging).
	Name() string

	// Model returns the current model being used.
	Model() string

	// Chat sends a chat completion request.
	Chat(ctx context.Context, messages []ChatMessage) (Response, error)
}
