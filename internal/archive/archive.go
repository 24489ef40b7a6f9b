// Package archive keeps an append-only audit copy of chat turns in SQLite.
// Session memory stays the source of truth; nothing is ever read back at
// runtime, so losing the archive never affects a conversation.
package archive

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/meridianhq/hr-assistant/backend/internal/model/chat"
)

type Archive struct {
	db *sql.DB
}

// Open creates or opens the archive database and ensures the schema exists.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive database: %w", err)
	}

	createTurnsTable := `
	CREATE TABLE IF NOT EXISTS turns (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		agent_name TEXT,
		created_at DATETIME NOT NULL
	);`

	if _, err := db.Exec(createTurnsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create turns table: %w", err)
	}

	return &Archive{db: db}, nil
}

// SaveTurn inserts one turn. Duplicate ids are ignored so retries are safe.
func (a *Archive) SaveTurn(turn chat.Turn) error {
	_, err := a.db.Exec(
		`INSERT OR IGNORE INTO turns (id, session_id, role, content, agent_name, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		turn.ID, turn.SessionID, turn.Role, turn.Content, turn.AgentName, turn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to archive turn: %w", err)
	}
	return nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}
