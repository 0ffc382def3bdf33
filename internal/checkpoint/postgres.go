package checkpoint

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PostgresStore lets multiple trainer processes agree on the latest
// checkpoint through a shared database instead of shared disk. Uses
// QueryRowContext/ExecContext with $-numbered params and
// fmt.Errorf-wrapped errors, storing one row of the full checkpoint as a
// JSON blob.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an already-connected *sql.DB. Callers use
// postgres.Connect (internal/repository/postgres) to obtain one.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the checkpoints table if it does not already
// exist. cmd/train calls this once at startup before Load/Save.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS checkpoints (
			id SERIAL PRIMARY KEY,
			version INT NOT NULL,
			generation INT NOT NULL,
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("checkpoint: ensure schema: %w", err)
	}
	return nil
}

// Save inserts a new checkpoint row. Old rows are left in place as
// history; Load always reads the most recent one.
func (s *PostgresStore) Save(ctx context.Context, cp Checkpoint) error {
	data, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("checkpoint: marshal: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO checkpoints (version, generation, data) VALUES ($1, $2, $3)`,
		cp.Version, cp.CurrentGeneration, data,
	)
	if err != nil {
		return fmt.Errorf("checkpoint: insert: %w", err)
	}
	return nil
}

// Load returns the most recently saved checkpoint, or (nil, false, nil)
// if none exists.
func (s *PostgresStore) Load(ctx context.Context) (*Checkpoint, bool, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM checkpoints ORDER BY id DESC LIMIT 1`,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("checkpoint: select: %w", err)
	}

	var cp Checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, false, fmt.Errorf("checkpoint: unmarshal: %w", err)
	}
	if err := checkVersion(&cp); err != nil {
		return nil, false, err
	}
	return &cp, true, nil
}
