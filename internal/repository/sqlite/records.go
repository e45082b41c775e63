package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/skill-swap/internal/domain"
)

// RecordStore implements domain.RecordStore using a single keyed table of
// JSON blobs.
type RecordStore struct {
	db *sql.DB
}

// NewRecordStore creates a new SQLite-backed RecordStore.
func NewRecordStore(db *DB) *RecordStore {
	return &RecordStore{db: db.SqlDB}
}

func (s *RecordStore) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM records WHERE record_key = ?", key,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("load record %s: %w", key, err)
	}
	return data, nil
}

func (s *RecordStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (record_key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(record_key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, key, data)
	if err != nil {
		return fmt.Errorf("save record %s: %w", key, err)
	}
	return nil
}

func (s *RecordStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM records WHERE record_key = ?", key,
	)
	if err != nil {
		return fmt.Errorf("delete record %s: %w", key, err)
	}
	return nil
}
