package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/amwagner/askminstrel/internal/shared"
)

// LookupRepository stores serialized lookup responses in SQLite.
type LookupRepository struct {
	db *sql.DB
}

// NewLookupRepository creates a new LookupRepository with the given database connection
func NewLookupRepository(db *sql.DB) *LookupRepository {
	return &LookupRepository{db: db}
}

// Get retrieves the payload stored under key. The second return value is
// false on a cache miss.
func (r *LookupRepository) Get(key string) ([]byte, bool, error) {
	var payload []byte
	err := r.db.QueryRow("SELECT payload FROM lookups WHERE key = ?", key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read lookup: %w", err)
	}

	return payload, true, nil
}

// Put stores payload under key, replacing any previous payload for that key.
func (r *LookupRepository) Put(key string, payload []byte) error {
	query := `
		INSERT INTO lookups (id, key, payload, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, created_at = excluded.created_at
	`

	_, err := r.db.Exec(query, shared.GenerateID(), key, payload, time.Now())
	if err != nil {
		return fmt.Errorf("failed to store lookup: %w", err)
	}

	return nil
}

// Delete removes the payload stored under key, if any.
func (r *LookupRepository) Delete(key string) error {
	if _, err := r.db.Exec("DELETE FROM lookups WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete lookup: %w", err)
	}
	return nil
}

// Count returns the number of cached lookups.
func (r *LookupRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM lookups").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count lookups: %w", err)
	}
	return count, nil
}

// Purge removes every cached lookup and returns how many rows were dropped.
func (r *LookupRepository) Purge() (int, error) {
	result, err := r.db.Exec("DELETE FROM lookups")
	if err != nil {
		return 0, fmt.Errorf("failed to purge lookups: %w", err)
	}

	dropped, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged lookups: %w", err)
	}

	return int(dropped), nil
}

// Oldest returns the creation time of the oldest cached lookup, or the zero
// time when the cache is empty.
func (r *LookupRepository) Oldest() (time.Time, error) {
	var oldest sql.NullTime
	err := r.db.QueryRow("SELECT MIN(created_at) FROM lookups").Scan(&oldest)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read oldest lookup: %w", err)
	}
	if !oldest.Valid {
		return time.Time{}, nil
	}
	return oldest.Time, nil
}
