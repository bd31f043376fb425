package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/remedy/pkg/domain/model"
)

const searchTopK = 5

// SearchSolutions runs a direct knowledge-base lookup without the
// diagnostic pipeline around it.
func (uc *UseCases) SearchSolutions(ctx context.Context, query string, filter model.QueryFilter) ([]*model.RetrievalHit, error) {
	if strings.TrimSpace(query) == "" {
		return nil, goerr.New("query text is empty")
	}

	hits, err := uc.repo.Knowledge().Query(ctx, query, searchTopK, filter)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search solutions", goerr.V("query", query))
	}
	return hits, nil
}

// AddKnowledge stores a new troubleshooting record at runtime
func (uc *UseCases) AddKnowledge(ctx context.Context, record *model.KnowledgeRecord) error {
	if err := uc.repo.Knowledge().Add(ctx, record); err != nil {
		return goerr.Wrap(err, "failed to add knowledge record", goerr.V("id", record.ID))
	}
	return nil
}
