package application

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mhollis/cache115/internal/domain/port/driven"
)

// StatsService summarizes the cache database for operators. Token
// values never appear in its output, only presence and age.
type StatsService struct {
	cache driven.CacheInspector
}

// NewStatsService creates a StatsService over the given inspector.
func NewStatsService(cache driven.CacheInspector) *StatsService {
	return &StatsService{cache: cache}
}

// Render writes a human-readable cache summary to w. now anchors the
// token age calculation.
func (s *StatsService) Render(ctx context.Context, w io.Writer, now time.Time) error {
	stats, err := s.cache.Stats(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch {
	case stats.TokenPresent && !stats.TokenUpdatedAt.IsZero():
		fmt.Fprintf(&buf, "tokens: present (updated %s)\n",
			humanize.RelTime(stats.TokenUpdatedAt, now, "ago", "from now"))
	case stats.TokenPresent:
		fmt.Fprintf(&buf, "tokens: present\n")
	default:
		fmt.Fprintf(&buf, "tokens: absent\n")
	}
	fmt.Fprintf(&buf, "cached dirs: %d\n", stats.Dirs)
	fmt.Fprintf(&buf, "cached files: %d (+%d subdirs)\n", stats.Files, stats.Subdirs)
	fmt.Fprintf(&buf, "cached file size: %s\n", humanize.IBytes(uint64(stats.TotalSize)))

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
