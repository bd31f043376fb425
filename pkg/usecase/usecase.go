package usecase

import (
	"context"
	"time"

	"github.com/secmon-lab/remedy/pkg/domain/interfaces"
)

// UseCases bundles the diagnostic operations exposed to controllers
type UseCases struct {
	repo      interfaces.Repository
	generator interfaces.TextGenerator
	startedAt time.Time
}

type Option func(*UseCases)

// WithGenerator attaches a remote text backend. Without it the pipeline
// composes responses deterministically.
func WithGenerator(g interfaces.TextGenerator) Option {
	return func(uc *UseCases) {
		uc.generator = g
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:      repo,
		startedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Status describes service readiness for the health endpoint
type Status struct {
	KnowledgeCount int           `json:"knowledge_count"`
	LLMConfigured  bool          `json:"llm_configured"`
	Uptime         time.Duration `json:"-"`
	UptimeSeconds  float64       `json:"uptime_seconds"`
}

func (uc *UseCases) Status(ctx context.Context) (*Status, error) {
	count, err := uc.repo.Knowledge().Count(ctx)
	if err != nil {
		return nil, err
	}

	uptime := time.Since(uc.startedAt)
	return &Status{
		KnowledgeCount: count,
		LLMConfigured:  uc.generator != nil,
		Uptime:         uptime,
		UptimeSeconds:  uptime.Seconds(),
	}, nil
}
