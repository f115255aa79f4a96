// SQLite transcript archive.
//
// Backs the explicit export operation: a user-initiated dump of the
// current conversation. Conversation memory itself stays in-process; the
// archive is write-mostly and never feeds back into memory.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dalil-ai/dalil/model"
)

// Archive stores exported conversation transcripts in a SQLite database.
// Thread-safe: sql.DB handles connection pooling and concurrent access.
type Archive struct {
	db *sql.DB
}

// OpenArchive opens or creates a SQLite archive at the given path.
// Creates parent directories if they don't exist.
func OpenArchive(path string) (*Archive, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite archive: %w", err)
	}

	a := &Archive{db: db}
	if err := a.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return a, nil
}

// NewArchiveInMemory creates an in-memory archive (useful for testing).
func NewArchiveInMemory() (*Archive, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory SQLite: %w", err)
	}

	a := &Archive{db: db}
	if err := a.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return a, nil
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS conversations (
			session_id TEXT PRIMARY KEY,
			exported_at TEXT NOT NULL DEFAULT (datetime('now'))
		);

		CREATE TABLE IF NOT EXISTS turns (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			turn_index INTEGER NOT NULL,
			timestamp TEXT NOT NULL,
			user_message TEXT NOT NULL,
			agent_response TEXT NOT NULL,
			intent TEXT NOT NULL,
			entities TEXT NOT NULL,
			tools_used TEXT NOT NULL,
			FOREIGN KEY (session_id) REFERENCES conversations(session_id) ON DELETE CASCADE,
			UNIQUE(session_id, turn_index)
		);

		CREATE INDEX IF NOT EXISTS idx_turns_session
		ON turns(session_id, turn_index);
	`

	if _, err := a.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveTranscript writes the turns of a conversation under its session ID,
// replacing any previous export of the same session.
func (a *Archive) SaveTranscript(ctx context.Context, sessionID string, turns []model.ConversationTurn) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO conversations (session_id) VALUES (?)
		 ON CONFLICT(session_id) DO UPDATE SET exported_at = datetime('now')`,
		sessionID); err != nil {
		return fmt.Errorf("failed to upsert conversation: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM turns WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("failed to clear previous export: %w", err)
	}

	for i, turn := range turns {
		entities, err := json.Marshal(turn.Entities)
		if err != nil {
			return fmt.Errorf("failed to encode entities: %w", err)
		}
		tools, err := json.Marshal(turn.ToolsUsed)
		if err != nil {
			return fmt.Errorf("failed to encode tools: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO turns (session_id, turn_index, timestamp, user_message, agent_response, intent, entities, tools_used)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			sessionID, i, turn.Timestamp.UTC().Format("2006-01-02T15:04:05Z"),
			turn.UserMessage, turn.AgentResponse, string(turn.Intent),
			string(entities), string(tools)); err != nil {
			return fmt.Errorf("failed to insert turn %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// LoadTranscript reads back an exported conversation, oldest turn first.
// Returns an empty slice if the session was never exported.
func (a *Archive) LoadTranscript(ctx context.Context, sessionID string) ([]model.ConversationTurn, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT timestamp, user_message, agent_response, intent, entities, tools_used
		 FROM turns WHERE session_id = ? ORDER BY turn_index`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query turns: %w", err)
	}
	defer rows.Close()

	turns := []model.ConversationTurn{}
	for rows.Next() {
		var turn model.ConversationTurn
		var ts, intent, entities, tools string
		if err := rows.Scan(&ts, &turn.UserMessage, &turn.AgentResponse, &intent, &entities, &tools); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turn.Intent = model.Intent(intent)
		if parsed, perr := time.Parse("2006-01-02T15:04:05Z", ts); perr == nil {
			turn.Timestamp = parsed
		}
		if err := json.Unmarshal([]byte(entities), &turn.Entities); err != nil {
			return nil, fmt.Errorf("failed to decode entities: %w", err)
		}
		if err := json.Unmarshal([]byte(tools), &turn.ToolsUsed); err != nil {
			return nil, fmt.Errorf("failed to decode tools: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, rows.Err()
}

// ListSessions returns the session IDs of all exported conversations.
func (a *Archive) ListSessions(ctx context.Context) ([]string, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT session_id FROM conversations ORDER BY exported_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, id)
	}
	return sessions, rows.Err()
}
