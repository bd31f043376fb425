package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/remedy/pkg/domain/model"
	"github.com/secmon-lab/remedy/pkg/domain/types"
	"github.com/secmon-lab/remedy/pkg/repository/memory"
	"github.com/secmon-lab/remedy/pkg/usecase"
)

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("slow computer", func(t *testing.T) {
		uc := usecase.New(memory.New())

		out, err := uc.Analyze(ctx, "my computer is so slow", nil)
		gt.NoError(t, err).Required()

		gt.Value(t, out.ProblemCategory).Equal("performance")
		gt.Value(t, out.Severity).Equal(types.SeverityMedium)
		gt.Value(t, out.EstimatedComplexity).Equal(types.ComplexitySimple)
		gt.Bool(t, out.RequiresDataBackup).False()
		gt.Bool(t, out.SafeToAttempt).True()
		gt.Bool(t, len(out.LikelyCauses) > 0).True()
	})

	t.Run("destructive intent flags backup", func(t *testing.T) {
		uc := usecase.New(memory.New())

		out, err := uc.Analyze(ctx, "I want to format and reset my pc", nil)
		gt.NoError(t, err).Required()
		gt.Bool(t, out.RequiresDataBackup).True()
		gt.Bool(t, out.SafeToAttempt).True()
	})

	t.Run("physical hazard is not safe to attempt", func(t *testing.T) {
		uc := usecase.New(memory.New())

		out, err := uc.Analyze(ctx, "laptop is smoking from the vents", nil)
		gt.NoError(t, err).Required()
		gt.Bool(t, out.SafeToAttempt).False()
	})

	t.Run("empty problem is rejected", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.Analyze(ctx, "", nil)
		gt.Error(t, err)
	})
}

func TestSearchSolutions(t *testing.T) {
	ctx := context.Background()

	t.Run("query returns ranked hits", func(t *testing.T) {
		uc := usecase.New(memory.New())

		hits, err := uc.SearchSolutions(ctx, "wifi cannot connect network error", model.QueryFilter{})
		gt.NoError(t, err).Required()
		gt.Bool(t, len(hits) > 0).True()
		gt.Value(t, hits[0].ID).Equal(model.KnowledgeID("wifi_1"))
	})

	t.Run("empty query is rejected", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.SearchSolutions(ctx, "  ", model.QueryFilter{})
		gt.Error(t, err)
	})
}
