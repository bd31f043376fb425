package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/remedy/pkg/domain/model"
	"github.com/secmon-lab/remedy/pkg/service/intent"
)

const analyzeTopK = 3

var backupKeywords = []string{"format", "reset", "reinstall", "delete"}
var physicalHazardKeywords = []string{"smoking", "burning", "sparks", "shock"}

// Analyze assesses a problem without producing a solution plan
func (uc *UseCases) Analyze(ctx context.Context, problem string, device *model.DeviceInfo) (*model.Analysis, error) {
	if strings.TrimSpace(problem) == "" {
		return nil, goerr.New("problem text is empty")
	}

	hits, err := uc.repo.Knowledge().Query(ctx, problem, analyzeTopK, model.QueryFilter{})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query knowledge base")
	}

	causes := analyzeCauses(hits)
	lower := strings.ToLower(problem)

	requiresBackup := false
	for _, word := range backupKeywords {
		if strings.Contains(lower, word) {
			requiresBackup = true
			break
		}
	}

	safeToAttempt := true
	for _, word := range physicalHazardKeywords {
		if strings.Contains(lower, word) {
			safeToAttempt = false
			break
		}
	}

	return &model.Analysis{
		ProblemCategory:     intent.Categorize(problem, hits),
		Severity:            intent.AssessSeverity(problem, causes),
		LikelyCauses:        causes,
		EstimatedComplexity: intent.AssessComplexity(problem),
		RequiresDataBackup:  requiresBackup,
		SafeToAttempt:       safeToAttempt,
	}, nil
}
