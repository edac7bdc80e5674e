package driven

import (
	"context"

	"github.com/mhollis/cache115/internal/domain/model"
)

// TokenSink receives exported token assignments for persistence outside
// the cache database, e.g. a dotenv file sourced by other tools.
type TokenSink interface {
	// Upsert stores the assignments, replacing existing entries for the
	// same keys and leaving unrelated content intact.
	Upsert(ctx context.Context, assignments []model.EnvAssignment) error
}
