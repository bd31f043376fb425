package interfaces

import (
	"context"

	"github.com/secmon-lab/remedy/pkg/domain/model"
)

// KnowledgeRepository answers ranked-retrieval queries over the stored
// problem/cause/solution records. Implementations must tolerate concurrent
// readers and a single writer via Add.
type KnowledgeRepository interface {
	// Query scores every record's searchable text against the query text,
	// applies the filter before scoring, and returns hits in descending
	// similarity order (stable on ties). When no hit clears the configured
	// similarity threshold, the best-effort top-k is returned instead of
	// an empty list. An empty store yields an empty result, not an error.
	Query(ctx context.Context, text string, topK int, filter model.QueryFilter) ([]*model.RetrievalHit, error)

	// Add appends a new record at runtime. It must be visible to
	// subsequent queries without re-initialization.
	Add(ctx context.Context, record *model.KnowledgeRecord) error

	// Count returns the number of stored records
	Count(ctx context.Context) (int, error)
}
