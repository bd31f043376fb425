package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/remedy/pkg/domain/model"
	"github.com/secmon-lab/remedy/pkg/service/textmatch"
	"github.com/secmon-lab/remedy/pkg/utils/logging"
)

// DefaultSimilarityThreshold is intentionally strict for lexical scoring;
// Query degrades to best-effort results when nothing clears it.
const DefaultSimilarityThreshold = 0.7

// DefaultTopK is the query result cap when the caller passes topK <= 0
const DefaultTopK = 5

type knowledgeRepository struct {
	mu          sync.RWMutex
	records     []*model.KnowledgeRecord
	ids         map[model.KnowledgeID]struct{}
	initialized bool

	threshold float64
	seed      func() []*model.KnowledgeRecord
}

func newKnowledgeRepository(threshold float64, seed func() []*model.KnowledgeRecord) *knowledgeRepository {
	return &knowledgeRepository{
		ids:       make(map[model.KnowledgeID]struct{}),
		threshold: threshold,
		seed:      seed,
	}
}

// initLocked populates the store from the seed set. Idempotent: the second
// call is a no-op. Malformed seed records are skipped, logged, never fatal.
func (r *knowledgeRepository) initLocked(ctx context.Context) {
	if r.initialized {
		return
	}
	r.initialized = true

	if r.seed == nil {
		return
	}
	for _, rec := range r.seed() {
		if err := rec.Validate(); err != nil {
			logging.From(ctx).Warn("skipping malformed seed record", "id", rec.ID, "error", err.Error())
			continue
		}
		if _, exists := r.ids[rec.ID]; exists {
			logging.From(ctx).Warn("skipping duplicate seed record", "id", rec.ID)
			continue
		}
		r.records = append(r.records, rec)
		r.ids[rec.ID] = struct{}{}
	}
	logging.From(ctx).Info("knowledge store initialized", "records", len(r.records))
}

func (r *knowledgeRepository) Query(ctx context.Context, text string, topK int, filter model.QueryFilter) ([]*model.RetrievalHit, error) {
	r.mu.Lock()
	r.initLocked(ctx)
	records := r.records
	r.mu.Unlock()

	if topK <= 0 {
		topK = DefaultTopK
	}

	hits := make([]*model.RetrievalHit, 0, len(records))
	for _, rec := range records {
		if !matchesFilter(rec, filter) {
			continue
		}
		hits = append(hits, &model.RetrievalHit{
			ID:         rec.ID,
			Similarity: textmatch.Similarity(text, rec.SearchableText()),
			Problem:    rec.Problem,
			Category:   rec.Category,
			DeviceType: rec.DeviceType,
			OS:         rec.OS,
			Record:     rec,
		})
	}

	// Stable sort keeps insertion order on similarity ties
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Similarity > hits[j].Similarity
	})

	// Soft threshold: keep hits above it when any clear it, otherwise
	// return best-effort results rather than nothing.
	above := make([]*model.RetrievalHit, 0, len(hits))
	for _, h := range hits {
		if h.Similarity >= r.threshold {
			above = append(above, h)
		}
	}
	if len(above) > 0 {
		hits = above
	}

	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits, nil
}

func matchesFilter(rec *model.KnowledgeRecord, filter model.QueryFilter) bool {
	if filter.IsZero() {
		return true
	}
	for name, want := range map[string]string{
		"device_type": filter.DeviceType,
		"os":          filter.OS,
		"category":    filter.Category,
	} {
		if want == "" {
			continue
		}
		if !strings.EqualFold(rec.AttributeValue(name), want) {
			return false
		}
	}
	return true
}

func (r *knowledgeRepository) Add(ctx context.Context, record *model.KnowledgeRecord) error {
	if err := record.Validate(); err != nil {
		return goerr.Wrap(err, "invalid knowledge record")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.initLocked(ctx)

	if _, exists := r.ids[record.ID]; exists {
		return goerr.Wrap(ErrDuplicateID, "knowledge record already exists", goerr.V("id", record.ID))
	}

	r.records = append(r.records, record)
	r.ids[record.ID] = struct{}{}
	logging.From(ctx).Info("knowledge record added", "id", record.ID, "total", len(r.records))
	return nil
}

func (r *knowledgeRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.initLocked(ctx)
	return len(r.records), nil
}
