package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mhollis/cache115/internal/domain/model"
	"github.com/mhollis/cache115/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.TokenStore = (*TokenRepo)(nil)

// TokenRepo reads the cached token pair. The external writer keeps a
// single meaningful row keyed id = 1; any other rows are invisible to
// this repo.
type TokenRepo struct {
	db *DB
}

// NewTokenRepo creates a TokenRepo over an open read-only database.
func NewTokenRepo(db *DB) *TokenRepo {
	return &TokenRepo{db: db}
}

// Get returns the token pair from the id = 1 row, or driven.ErrNoTokens
// when that row is absent.
func (r *TokenRepo) Get(ctx context.Context) (model.TokenPair, error) {
	const query = `SELECT access_token, refresh_token FROM tokens WHERE id = 1`

	var pair model.TokenPair
	err := r.db.Reader.QueryRowContext(ctx, query).Scan(&pair.AccessToken, &pair.RefreshToken)
	if errors.Is(err, sql.ErrNoRows) {
		return model.TokenPair{}, driven.ErrNoTokens
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("query tokens in %q: %w", r.db.Path(), err)
	}

	// updated_at queried separately and best-effort: stores written by
	// older client versions may lack the column, and that must not break
	// the export itself.
	pair.UpdatedAt = r.updatedAt(ctx)

	return pair, nil
}

func (r *TokenRepo) updatedAt(ctx context.Context) time.Time {
	const query = `SELECT updated_at FROM tokens WHERE id = 1`

	var raw sql.NullString
	if err := r.db.Reader.QueryRowContext(ctx, query).Scan(&raw); err != nil || !raw.Valid {
		return time.Time{}
	}

	ts, err := parseTime(raw.String)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// parseTime accepts the timestamp formats SQLite writers commonly use.
func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
	} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
