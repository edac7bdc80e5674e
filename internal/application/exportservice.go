// Package application wires the driven ports into the operations the
// command-line tools expose.
package application

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/mhollis/cache115/internal/domain/model"
	"github.com/mhollis/cache115/internal/domain/port/driven"
)

// Env variable names the 115 tooling ecosystem reads at startup.
const (
	EnvAccessToken  = "OPEN115_ACCESS_TOKEN"
	EnvRefreshToken = "OPEN115_REFRESH_TOKEN"
)

// ExportService reads the cached token pair and renders it as dotenv
// assignments, either to a stream or into a TokenSink.
type ExportService struct {
	tokens driven.TokenStore
}

// NewExportService creates an ExportService over the given token store.
func NewExportService(tokens driven.TokenStore) *ExportService {
	return &ExportService{tokens: tokens}
}

// Assignments returns the token pair as ordered env assignments, access
// token first. Returns driven.ErrNoTokens when the store has no row.
func (s *ExportService) Assignments(ctx context.Context) ([]model.EnvAssignment, error) {
	pair, err := s.tokens.Get(ctx)
	if err != nil {
		return nil, err
	}

	return []model.EnvAssignment{
		{Key: EnvAccessToken, Value: pair.AccessToken},
		{Key: EnvRefreshToken, Value: pair.RefreshToken},
	}, nil
}

// ExportTo writes the assignment lines to w. Output is staged in a
// buffer first, so a failed read never leaves partial output behind.
func (s *ExportService) ExportTo(ctx context.Context, w io.Writer) error {
	assignments, err := s.Assignments(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, a := range assignments {
		fmt.Fprintf(&buf, "%s=%s\n", a.Key, a.Value)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Persist upserts the assignments into sink instead of printing them.
func (s *ExportService) Persist(ctx context.Context, sink driven.TokenSink) error {
	assignments, err := s.Assignments(ctx)
	if err != nil {
		return err
	}
	return sink.Upsert(ctx, assignments)
}
