package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ericfisherdev/evaldash/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ProfileStore = (*ProfileRepo)(nil)

// ProfileRepo is the SQLite implementation of the ProfileStore port, a
// plain key-value table holding the reviewer's profile.
type ProfileRepo struct {
	db *DB
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(db *DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Get retrieves the value for key. Returns ("", nil) when the key has
// never been set.
func (r *ProfileRepo) Get(ctx context.Context, key string) (string, error) {
	const query = `SELECT value FROM profile WHERE key = ?`

	var value string
	err := r.db.Reader.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get profile key %q: %w", key, err)
	}
	return value, nil
}

// Set stores or replaces the value for key.
func (r *ProfileRepo) Set(ctx context.Context, key, value string) error {
	const query = `INSERT OR REPLACE INTO profile (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`

	if _, err := r.db.Writer.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("set profile key %q: %w", key, err)
	}
	return nil
}

// Clear removes every stored profile key.
func (r *ProfileRepo) Clear(ctx context.Context) error {
	const query = `DELETE FROM profile`

	if _, err := r.db.Writer.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	return nil
}
