package driven

import (
	"context"

	"github.com/mhollis/cache115/internal/domain/model"
)

// CacheInspector defines the driven port for read-only statistics over
// the metadata cache tables. Tables the writer has not created yet
// report as zero rather than erroring.
type CacheInspector interface {
	Stats(ctx context.Context) (model.CacheStats, error)
}
