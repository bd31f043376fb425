package intent_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/remedy/pkg/domain/model"
	"github.com/secmon-lab/remedy/pkg/domain/types"
	"github.com/secmon-lab/remedy/pkg/service/intent"
)

func TestRephrase(t *testing.T) {
	t.Run("wifi complaint maps to the canonical label", func(t *testing.T) {
		got := intent.Rephrase("my WiFi won't connect at all", nil)
		gt.Value(t, got).Equal("Wi-Fi connectivity issues")
	})

	t.Run("device type is appended when known", func(t *testing.T) {
		device := &model.DeviceInfo{DeviceType: "laptop"}
		got := intent.Rephrase("everything is so slow lately", device)
		gt.Value(t, got).Equal("Computer performance issues - slow/freezing on laptop")
	})

	t.Run("first matching rule wins", func(t *testing.T) {
		// "slow" (rule 2) appears before the crash rule would fire
		got := intent.Rephrase("pc got slow and then crashed", nil)
		gt.Value(t, got).Equal("Computer performance issues - slow/freezing")
	})

	t.Run("unmatched text passes through trimmed", func(t *testing.T) {
		got := intent.Rephrase("  my webcam shows a green tint  ", nil)
		gt.Value(t, got).Equal("my webcam shows a green tint")
	})

	t.Run("password recovery", func(t *testing.T) {
		got := intent.Rephrase("I forgot my login password again", nil)
		gt.Value(t, got).Equal("Password recovery - locked out")
	})
}

func TestCategorize(t *testing.T) {
	t.Run("top hit category wins over keywords", func(t *testing.T) {
		hits := []*model.RetrievalHit{{ID: "printer_1", Category: "peripherals"}}
		gt.Value(t, intent.Categorize("my wifi printer is down", hits)).Equal("peripherals")
	})

	t.Run("keyword buckets without hits", func(t *testing.T) {
		gt.Value(t, intent.Categorize("internet is down", nil)).Equal("networking")
		gt.Value(t, intent.Categorize("everything is slow", nil)).Equal("performance")
		gt.Value(t, intent.Categorize("my mouse is jittery", nil)).Equal("peripherals")
		gt.Value(t, intent.Categorize("android keeps rebooting", nil)).Equal("mobile")
		gt.Value(t, intent.Categorize("apps crash on launch", nil)).Equal("system")
		gt.Value(t, intent.Categorize("weird noise", nil)).Equal("general")
	})
}

func TestAssessSeverity(t *testing.T) {
	t.Run("data loss language is critical", func(t *testing.T) {
		gt.Value(t, intent.AssessSeverity("my files got deleted", nil)).Equal(types.SeverityCritical)
	})

	t.Run("boot failure is high", func(t *testing.T) {
		gt.Value(t, intent.AssessSeverity("laptop won't turn on", nil)).Equal(types.SeverityHigh)
	})

	t.Run("high-likelihood cause raises to medium", func(t *testing.T) {
		causes := []model.Cause{{Cause: "Router issue", Likelihood: types.LikelihoodHigh}}
		gt.Value(t, intent.AssessSeverity("wifi flaky", causes)).Equal(types.SeverityMedium)
	})

	t.Run("otherwise low", func(t *testing.T) {
		gt.Value(t, intent.AssessSeverity("wifi flaky", nil)).Equal(types.SeverityLow)
	})
}

func TestAssessComplexity(t *testing.T) {
	gt.Value(t, intent.AssessComplexity("blue screen every morning")).Equal(types.ComplexityComplex)
	gt.Value(t, intent.AssessComplexity("wifi drops sometimes")).Equal(types.ComplexitySimple)
	gt.Value(t, intent.AssessComplexity("printer prints blank pages")).Equal(types.ComplexityModerate)
}
