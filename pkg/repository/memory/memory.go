package memory

import (
	"github.com/secmon-lab/remedy/pkg/domain/interfaces"
	"github.com/secmon-lab/remedy/pkg/domain/model"
)

// Repository is an in-memory implementation of interfaces.Repository.
// The knowledge store seeds itself lazily on first use so it is always
// safely queryable; Add grows it under a single-writer lock.
type Repository struct {
	knowledge *knowledgeRepository
	session   *sessionRepository
}

var _ interfaces.Repository = (*Repository)(nil)

// Option is a functional option for Repository configuration
type Option func(*config)

type config struct {
	threshold float64
	seed      func() []*model.KnowledgeRecord
}

// WithSimilarityThreshold overrides the soft retrieval threshold
func WithSimilarityThreshold(threshold float64) Option {
	return func(c *config) {
		c.threshold = threshold
	}
}

// WithSeed replaces the built-in seed set. Passing a func returning nil
// yields an empty store.
func WithSeed(seed func() []*model.KnowledgeRecord) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// New creates a new in-memory repository
func New(opts ...Option) *Repository {
	cfg := &config{
		threshold: DefaultSimilarityThreshold,
		seed:      seedRecords,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Repository{
		knowledge: newKnowledgeRepository(cfg.threshold, cfg.seed),
		session:   newSessionRepository(),
	}
}

// Knowledge returns the knowledge repository
func (r *Repository) Knowledge() interfaces.KnowledgeRepository {
	return r.knowledge
}

// Session returns the session repository
func (r *Repository) Session() interfaces.SessionRepository {
	return r.session
}

// Close releases resources. The in-memory backend has none.
func (r *Repository) Close() error {
	return nil
}
