package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/mhollis/cache115/internal/domain/model"
	"github.com/mhollis/cache115/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CacheInspector = (*CacheRepo)(nil)

// CacheRepo reports read-only statistics over the metadata cache tables.
// The writer creates cached_dirs and cached_files lazily, so either
// table may be missing from an otherwise valid store; missing tables
// count as empty.
type CacheRepo struct {
	db *DB
}

// NewCacheRepo creates a CacheRepo over an open read-only database.
func NewCacheRepo(db *DB) *CacheRepo {
	return &CacheRepo{db: db}
}

// Stats returns row counts and cached file sizes, plus token presence.
func (r *CacheRepo) Stats(ctx context.Context) (model.CacheStats, error) {
	var stats model.CacheStats

	pair, err := NewTokenRepo(r.db).Get(ctx)
	switch {
	case errors.Is(err, driven.ErrNoTokens):
		// Absent tokens are a reportable state, not a failure.
	case err != nil:
		return model.CacheStats{}, err
	default:
		stats.TokenPresent = true
		stats.TokenUpdatedAt = pair.UpdatedAt
	}

	ok, err := r.tableExists(ctx, "cached_dirs")
	if err != nil {
		return model.CacheStats{}, err
	}
	if ok {
		const query = `SELECT count(*) FROM cached_dirs`
		if err := r.db.Reader.QueryRowContext(ctx, query).Scan(&stats.Dirs); err != nil {
			return model.CacheStats{}, fmt.Errorf("count cached_dirs: %w", err)
		}
	}

	ok, err = r.tableExists(ctx, "cached_files")
	if err != nil {
		return model.CacheStats{}, err
	}
	if ok {
		const query = `
			SELECT
				count(*) - coalesce(sum(is_dir), 0),
				coalesce(sum(is_dir), 0),
				coalesce(sum(CASE WHEN is_dir THEN 0 ELSE size END), 0)
			FROM cached_files`
		if err := r.db.Reader.QueryRowContext(ctx, query).Scan(&stats.Files, &stats.Subdirs, &stats.TotalSize); err != nil {
			return model.CacheStats{}, fmt.Errorf("summarize cached_files: %w", err)
		}
	}

	return stats, nil
}

func (r *CacheRepo) tableExists(ctx context.Context, name string) (bool, error) {
	const query = `SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?`

	var n int64
	if err := r.db.Reader.QueryRowContext(ctx, query, name).Scan(&n); err != nil {
		return false, fmt.Errorf("check table %s: %w", name, err)
	}
	return n > 0, nil
}
