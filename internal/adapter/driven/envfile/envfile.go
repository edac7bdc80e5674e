// Package envfile persists exported token assignments into a
// dotenv-style file. Unrelated lines and comments survive byte-for-byte;
// only plain KEY=... lines for the managed keys are rewritten.
package envfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mhollis/cache115/internal/domain/model"
	"github.com/mhollis/cache115/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.TokenSink = (*Store)(nil)

// Store upserts KEY=VALUE assignments into a single env file. Writes are
// atomic: content is staged in a temp file in the target directory and
// renamed over the destination, ending up with 0600 permissions.
type Store struct {
	path string
}

// NewStore creates a Store for the given env file path. The file itself
// may not exist yet; a missing file is treated as empty on upsert.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("env file path cannot be empty")
	}
	return &Store{path: path}, nil
}

// Upsert replaces plain KEY=... lines in place and appends missing keys
// at the end of the file.
func (s *Store) Upsert(ctx context.Context, assignments []model.EnvAssignment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	var lines []string
	if len(content) > 0 {
		lines = strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	}

	seen := make(map[string]bool, len(assignments))
	for i, line := range lines {
		for _, a := range assignments {
			if replaced, ok := upsertLine(line, a.Key, a.Value); ok {
				lines[i] = replaced
				seen[a.Key] = true
				break
			}
		}
	}
	for _, a := range assignments {
		if !seen[a.Key] {
			lines = append(lines, a.Key+"="+a.Value)
		}
	}

	return s.writeAtomic(strings.Join(lines, "\n") + "\n")
}

// upsertLine rewrites line when it is a plain assignment of key.
// Comments and unrelated lines are left untouched.
func upsertLine(line, key, value string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	rest, ok := strings.CutPrefix(trimmed, key)
	if !ok {
		return "", false
	}
	rest = strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(rest, "=") {
		return "", false
	}
	return key + "=" + value, true
}

func (s *Store) writeAtomic(content string) error {
	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, "*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}

	return nil
}
