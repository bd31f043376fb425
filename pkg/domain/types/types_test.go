package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/remedy/pkg/domain/types"
)

func TestLikelihood(t *testing.T) {
	t.Run("valid levels pass validation", func(t *testing.T) {
		for _, l := range []types.Likelihood{
			types.LikelihoodHigh,
			types.LikelihoodMedium,
			types.LikelihoodLow,
		} {
			gt.NoError(t, l.Validate())
		}
	})

	t.Run("unknown level fails validation", func(t *testing.T) {
		gt.Value(t, types.Likelihood("certain").Validate()).NotNil()
	})

	t.Run("rank orders high over medium over low", func(t *testing.T) {
		gt.Bool(t, types.LikelihoodHigh.Rank() > types.LikelihoodMedium.Rank()).True()
		gt.Bool(t, types.LikelihoodMedium.Rank() > types.LikelihoodLow.Rank()).True()
		gt.Bool(t, types.LikelihoodLow.Rank() > types.Likelihood("").Rank()).True()
	})
}

func TestRiskLevel(t *testing.T) {
	gt.NoError(t, types.RiskLevelSafe.Validate())
	gt.NoError(t, types.RiskLevelCaution.Validate())
	gt.NoError(t, types.RiskLevelRisky.Validate())
	gt.Value(t, types.RiskLevel("lethal").Validate()).NotNil()
}

func TestTechnicalLevel(t *testing.T) {
	gt.NoError(t, types.TechnicalLevelBeginner.Validate())
	gt.Value(t, types.TechnicalLevel("wizard").Validate()).NotNil()
}

func TestReasoningLabel(t *testing.T) {
	label := types.ReasoningLabel(types.RetrievalRAG, types.GenerationDeterministicFallback, types.ClarifierNone)
	gt.Value(t, label).Equal("rag+deterministic_fallback+no_follow_up")

	label = types.ReasoningLabel(types.RetrievalNoKBMatch, types.GenerationRemoteLLM, types.ClarifierAsked)
	gt.Value(t, label).Equal("no_kb_match+remote_llm+asked_follow_up")
}
