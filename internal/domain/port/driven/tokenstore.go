package driven

import (
	"context"
	"errors"

	"github.com/mhollis/cache115/internal/domain/model"
)

// ErrNoTokens is returned when the cache database holds no token row.
// The external 115 client writes exactly one row keyed id = 1; its
// absence means tokens have not been issued yet.
var ErrNoTokens = errors.New("no tokens found")

// TokenStore defines the driven port for reading the cached token pair.
// Implementations are strictly read-only; token acquisition and refresh
// belong to the external writer process.
type TokenStore interface {
	// Get returns the token pair from the single id = 1 row.
	// Returns ErrNoTokens when that row does not exist.
	Get(ctx context.Context) (model.TokenPair, error)
}
