// Package storage provides conversation memory and transcript archiving.
//
// ConversationMemory is in-process and bounded: one instance per
// conversation, lost when the process exits. The SQLite archive in this
// package serves the explicit export operation only and is never read back
// into memory.
package storage

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dalil-ai/dalil/model"
)

// DefaultMaxHistory is the default bound on retained conversation turns.
const DefaultMaxHistory = 10

// promptPreviewLen bounds the per-message preview in PromptContext.
const promptPreviewLen = 50

// Intents considered a continuation of the previous turn's intent.
// Relatedness is declared per source intent and is deliberately asymmetric:
// analyze following search is not a switch, but search following analyze is.
var relatedIntents = map[model.Intent][]model.Intent{
	model.IntentSearch:       {model.IntentAnalyze, model.IntentSummarize},
	model.IntentGenerateCode: {model.IntentExecuteCommand, model.IntentCreateFile},
	model.IntentReadFile:     {model.IntentAnalyze, model.IntentSummarize},
}

// ConversationMemory is a bounded, append-only log of conversation turns
// plus a derived rolling summary. All methods are safe for concurrent use;
// a single mutex serializes the read-modify-write sequences.
type ConversationMemory struct {
	mu         sync.Mutex
	sessionID  string
	maxHistory int

	// Fixed-capacity ring buffer: turns[(start+i)%maxHistory] for i < length.
	turns  []model.ConversationTurn
	start  int
	length int

	lastIntent     model.Intent
	mentionedFiles map[string]struct{}
	toolsHistory   []string

	// userPreferences survives Clear: it is not conversational state.
	userPreferences map[string]string
}

// NewConversationMemory creates a memory bounded to maxHistory turns.
// A non-positive maxHistory falls back to DefaultMaxHistory.
func NewConversationMemory(maxHistory int) *ConversationMemory {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &ConversationMemory{
		sessionID:      uuid.New().String(),
		maxHistory:     maxHistory,
		turns:          make([]model.ConversationTurn, maxHistory),
		mentionedFiles: make(map[string]struct{}),
		lastIntent:     model.IntentUnknown,
		userPreferences: map[string]string{
			"language":  "ar",
			"verbosity": "medium",
		},
	}
}

// SessionID returns the unique identifier of this conversation.
func (m *ConversationMemory) SessionID() string {
	return m.sessionID
}

// Len returns the number of retained turns.
func (m *ConversationMemory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.length
}

// MaxHistory returns the configured retention bound.
func (m *ConversationMemory) MaxHistory() int {
	return m.maxHistory
}

// AddTurn appends a turn, evicting the oldest when the bound is exceeded,
// and updates the derived summary.
func (m *ConversationMemory) AddTurn(turn model.ConversationTurn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.length == m.maxHistory {
		m.start = (m.start + 1) % m.maxHistory
		m.length--
	}
	m.turns[(m.start+m.length)%m.maxHistory] = turn
	m.length++

	m.lastIntent = turn.Intent
	for _, f := range turn.Entities.Files {
		m.mentionedFiles[f] = struct{}{}
	}
	// Tools are appended raw; deduplication happens at summary read time.
	m.toolsHistory = append(m.toolsHistory, turn.ToolsUsed...)
}

// History returns the retained turns in chronological order.
func (m *ConversationMemory) History() []model.ConversationTurn {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.historyLocked()
}

func (m *ConversationMemory) historyLocked() []model.ConversationTurn {
	out := make([]model.ConversationTurn, m.length)
	for i := 0; i < m.length; i++ {
		out[i] = m.turns[(m.start+i)%m.maxHistory]
	}
	return out
}

// Summary returns the derived rolling view of the conversation.
func (m *ConversationMemory) Summary() model.Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	recent := []model.Intent{}
	history := m.historyLocked()
	if n := len(history); n > 3 {
		history = history[n-3:]
	}
	for _, turn := range history {
		recent = append(recent, turn.Intent)
	}

	files := make([]string, 0, len(m.mentionedFiles))
	for f := range m.mentionedFiles {
		files = append(files, f)
	}
	sort.Strings(files)

	prefs := make(map[string]string, len(m.userPreferences))
	for k, v := range m.userPreferences {
		prefs[k] = v
	}

	return model.Summary{
		ConversationLength: m.length,
		RecentIntents:      recent,
		MentionedFiles:     files,
		LastIntent:         m.lastIntent,
		UserPreferences:    prefs,
		ToolsUsed:          dedupe(m.toolsHistory),
	}
}

// RelevantHistory returns up to limit past turns with the given intent,
// scanning newest-first and returning the matched subset in chronological
// order.
func (m *ConversationMemory) RelevantHistory(intent model.Intent, limit int) []model.ConversationTurn {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := m.historyLocked()
	matched := []model.ConversationTurn{}
	for i := len(history) - 1; i >= 0 && len(matched) < limit; i-- {
		if history[i].Intent == intent {
			matched = append(matched, history[i])
		}
	}

	// Reverse back to chronological order.
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	return matched
}

// DetectContextSwitch reports whether newIntent breaks continuity with the
// most recent turn. With empty history there is nothing to switch from.
func (m *ConversationMemory) DetectContextSwitch(newIntent model.Intent) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.length == 0 {
		return false
	}
	last := m.turns[(m.start+m.length-1)%m.maxHistory].Intent

	if related, ok := relatedIntents[last]; ok {
		for _, r := range related {
			if newIntent == r {
				return false
			}
		}
		return true
	}
	return newIntent != last
}

// PromptContext serializes recent context for inclusion in a downstream
// model prompt: the last three turns with truncated message previews, the
// mentioned files, and the language preference. The format is stable and
// human-readable.
func (m *ConversationMemory) PromptContext() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.length == 0 {
		return "No previous context."
	}

	var b strings.Builder
	b.WriteString("Recent conversation:\n")

	history := m.historyLocked()
	if n := len(history); n > 3 {
		history = history[n-3:]
	}
	for i, turn := range history {
		preview := turn.UserMessage
		if runes := []rune(preview); len(runes) > promptPreviewLen {
			preview = string(runes[:promptPreviewLen]) + "..."
		}
		fmt.Fprintf(&b, "%d. User: %s Intent: %s\n", i+1, preview, turn.Intent)
	}

	if len(m.mentionedFiles) > 0 {
		files := make([]string, 0, len(m.mentionedFiles))
		for f := range m.mentionedFiles {
			files = append(files, f)
		}
		sort.Strings(files)
		fmt.Fprintf(&b, "Mentioned files: %s\n", strings.Join(files, ", "))
	}

	lang := m.userPreferences["language"]
	if lang == "" {
		lang = "ar"
	}
	fmt.Fprintf(&b, "User prefers: %s language", lang)

	return b.String()
}

// SetPreference stores a user preference. Preferences survive Clear.
func (m *ConversationMemory) SetPreference(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userPreferences[key] = value
}

// ContextKeys returns the names of the derived-summary fields currently
// populated, for status introspection.
func (m *ConversationMemory) ContextKeys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := []string{}
	if m.lastIntent != model.IntentUnknown || m.length > 0 {
		keys = append(keys, "last_intent")
	}
	if len(m.mentionedFiles) > 0 {
		keys = append(keys, "mentioned_files")
	}
	if len(m.toolsHistory) > 0 {
		keys = append(keys, "tools_history")
	}
	return keys
}

// Clear empties the history and derived summary. User preferences persist.
func (m *ConversationMemory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.start = 0
	m.length = 0
	m.turns = make([]model.ConversationTurn, m.maxHistory)
	m.lastIntent = model.IntentUnknown
	m.mentionedFiles = make(map[string]struct{})
	m.toolsHistory = nil
}

// Export returns a copy of the retained turns, oldest first, for archiving.
func (m *ConversationMemory) Export() []model.ConversationTurn {
	return m.History()
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := []string{}
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
