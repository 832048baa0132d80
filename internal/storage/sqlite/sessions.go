package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fleetcore/helmsman/internal/core"
)

// Backend is the embedded session store used when no Redis address is
// configured. Retention is enforced here: expired rows read as absent and
// the janitor purges them.
type Backend struct {
	db *sql.DB
}

func NewBackend(db *sql.DB) *Backend {
	return &Backend{db: db}
}

func (b *Backend) Get(ctx context.Context, sessionID string) (*core.SessionMemory, error) {
	query := `SELECT payload FROM sessions WHERE id = ? AND expires_at > ?`

	var payload string
	err := b.db.QueryRowContext(ctx, query, sessionID, time.Now().UTC()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}

	var mem core.SessionMemory
	if err := json.Unmarshal([]byte(payload), &mem); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &mem, nil
}

func (b *Backend) Put(ctx context.Context, sessionID string, memory *core.SessionMemory) error {
	payload, err := json.Marshal(memory)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO sessions (id, payload, created_at, updated_at, expires_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at,
			expires_at = excluded.expires_at`

	_, err = b.db.ExecContext(ctx, query,
		sessionID, string(payload), now, now, now.Add(core.SessionRetention))
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// PurgeExpired removes sessions past their retention window.
func (b *Backend) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := b.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return res.RowsAffected()
}
