package storage

import (
	"context"
	"testing"
	"time"

	"github.com/dalil-ai/dalil/model"
)

func TestArchiveSaveAndLoadTranscript(t *testing.T) {
	archive, err := NewArchiveInMemory()
	if err != nil {
		t.Fatalf("failed to create archive: %v", err)
	}
	defer archive.Close()
	ctx := context.Background()

	turns := []model.ConversationTurn{
		{
			Timestamp:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			UserMessage:   "ابحث عن الذكاء الاصطناعي",
			AgentResponse: "سأقوم بالبحث عن المعلومات المطلوبة...",
			Intent:        model.IntentSearch,
			Entities:      model.Entities{Files: []string{}, URLs: []string{}, Commands: []string{}, Keywords: []string{}},
			ToolsUsed:     []string{"web_search"},
		},
		{
			Timestamp:     time.Date(2026, 1, 2, 3, 5, 0, 0, time.UTC),
			UserMessage:   "open file main.py",
			AgentResponse: "Processing your request with intent: read_file",
			Intent:        model.IntentReadFile,
			Entities:      model.Entities{Files: []string{"main.py"}, URLs: []string{}, Commands: []string{}, Keywords: []string{}},
			ToolsUsed:     []string{"read_from_file"},
		},
	}

	if err := archive.SaveTranscript(ctx, "session-1", turns); err != nil {
		t.Fatalf("SaveTranscript failed: %v", err)
	}

	loaded, err := archive.LoadTranscript(ctx, "session-1")
	if err != nil {
		t.Fatalf("LoadTranscript failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(loaded))
	}
	if loaded[0].UserMessage != turns[0].UserMessage {
		t.Errorf("expected %q, got %q", turns[0].UserMessage, loaded[0].UserMessage)
	}
	if loaded[1].Intent != model.IntentReadFile {
		t.Errorf("expected read_file intent, got %q", loaded[1].Intent)
	}
	if len(loaded[1].Entities.Files) != 1 || loaded[1].Entities.Files[0] != "main.py" {
		t.Errorf("expected file entity round-trip, got %v", loaded[1].Entities.Files)
	}
	if len(loaded[0].ToolsUsed) != 1 || loaded[0].ToolsUsed[0] != "web_search" {
		t.Errorf("expected tools round-trip, got %v", loaded[0].ToolsUsed)
	}
}

func TestArchiveReexportReplaces(t *testing.T) {
	archive, err := NewArchiveInMemory()
	if err != nil {
		t.Fatalf("failed to create archive: %v", err)
	}
	defer archive.Close()
	ctx := context.Background()

	first := []model.ConversationTurn{
		{Timestamp: time.Now().UTC(), UserMessage: "one", Intent: model.IntentUnknown},
	}
	second := []model.ConversationTurn{
		{Timestamp: time.Now().UTC(), UserMessage: "one", Intent: model.IntentUnknown},
		{Timestamp: time.Now().UTC(), UserMessage: "two", Intent: model.IntentUnknown},
	}

	if err := archive.SaveTranscript(ctx, "s", first); err != nil {
		t.Fatalf("first export failed: %v", err)
	}
	if err := archive.SaveTranscript(ctx, "s", second); err != nil {
		t.Fatalf("second export failed: %v", err)
	}

	loaded, err := archive.LoadTranscript(ctx, "s")
	if err != nil {
		t.Fatalf("LoadTranscript failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Errorf("expected re-export to replace, got %d turns", len(loaded))
	}
}

func TestArchiveLoadUnknownSession(t *testing.T) {
	archive, err := NewArchiveInMemory()
	if err != nil {
		t.Fatalf("failed to create archive: %v", err)
	}
	defer archive.Close()

	loaded, err := archive.LoadTranscript(context.Background(), "missing")
	if err != nil {
		t.Fatalf("LoadTranscript failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty slice for unknown session, got %d turns", len(loaded))
	}
}

func TestArchiveListSessions(t *testing.T) {
	archive, err := NewArchiveInMemory()
	if err != nil {
		t.Fatalf("failed to create archive: %v", err)
	}
	defer archive.Close()
	ctx := context.Background()

	turn := []model.ConversationTurn{{Timestamp: time.Now().UTC(), Intent: model.IntentUnknown}}
	if err := archive.SaveTranscript(ctx, "a", turn); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if err := archive.SaveTranscript(ctx, "b", turn); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	sessions, err := archive.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("expected 2 sessions, got %d", len(sessions))
	}
}
