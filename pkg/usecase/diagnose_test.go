package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/remedy/pkg/domain/interfaces"
	"github.com/secmon-lab/remedy/pkg/domain/model"
	"github.com/secmon-lab/remedy/pkg/domain/types"
	"github.com/secmon-lab/remedy/pkg/repository/memory"
	"github.com/secmon-lab/remedy/pkg/service/intent"
	"github.com/secmon-lab/remedy/pkg/usecase"
)

type fakeGenerator struct {
	text      string
	err       error
	lastInput interfaces.GenerateInput
}

func (f *fakeGenerator) Generate(ctx context.Context, input interfaces.GenerateInput) (string, error) {
	f.lastInput = input
	return f.text, f.err
}

func TestDiagnose(t *testing.T) {
	ctx := context.Background()

	t.Run("wifi problem resolves deterministically", func(t *testing.T) {
		uc := usecase.New(memory.New())

		out, err := uc.Diagnose(ctx, usecase.DiagnoseInput{
			Problem: "My Wi-Fi won't connect on my Windows laptop",
		})
		gt.NoError(t, err).Required()

		gt.Value(t, out.ReasoningType).Equal("rag+deterministic_fallback+no_follow_up")
		gt.Value(t, out.ProblemUnderstanding).Equal("Wi-Fi connectivity issues")
		gt.Value(t, out.FollowUpQuestion).Equal("")
		gt.Bool(t, out.RequiresProfessionalHelp).False()

		gt.Array(t, out.SolutionSteps).Length(3)
		gt.String(t, out.SolutionSteps[1].Action).Contains("Restart your Wi-Fi router")

		gt.Array(t, out.LikelyCauses).Length(4)
		gt.Value(t, out.LikelyCauses[0].Cause).Equal("Wi-Fi adapter disabled")
		gt.Value(t, out.LikelyCauses[0].Likelihood).Equal(types.LikelihoodHigh)

		gt.Array(t, out.Sources).Length(3)
		gt.Value(t, out.Sources[0]).Equal("Wi-Fi not connecting")

		gt.String(t, out.Response).Contains("1. **Problem Understanding**")
		gt.String(t, out.Response).Contains("Restart your Wi-Fi router")
		gt.String(t, out.Response).Contains("4. **Next Steps**")
	})

	t.Run("greeting short-circuits to onboarding", func(t *testing.T) {
		uc := usecase.New(memory.New())

		out, err := uc.Diagnose(ctx, usecase.DiagnoseInput{Problem: "hello"})
		gt.NoError(t, err).Required()

		gt.Value(t, out.ReasoningType).Equal(types.ReasoningOnboarding)
		gt.Value(t, out.FollowUpQuestion).Equal(intent.QuestionOnboarding)
		gt.String(t, out.Response).Contains("Hi! I can help troubleshoot")
		gt.Array(t, out.LikelyCauses).Length(0)
		gt.Array(t, out.SolutionSteps).Length(0)
		gt.Array(t, out.Sources).Length(0)
		gt.Bool(t, out.RequiresProfessionalHelp).False()
	})

	t.Run("missing device info yields one advisory question", func(t *testing.T) {
		uc := usecase.New(memory.New())

		out, err := uc.Diagnose(ctx, usecase.DiagnoseInput{
			Problem: "the screen keeps flickering every few minutes",
		})
		gt.NoError(t, err).Required()

		gt.Value(t, out.FollowUpQuestion).Equal(intent.QuestionDeviceAndOS)
		gt.Bool(t, strings.HasSuffix(out.ReasoningType, "+asked_follow_up")).True()
		gt.String(t, out.Response).Contains(intent.QuestionDeviceAndOS)
		gt.Bool(t, len(out.SolutionSteps) > 0).True()
	})

	t.Run("already tried steps are filtered and renumbered", func(t *testing.T) {
		uc := usecase.New(memory.New())

		out, err := uc.Diagnose(ctx, usecase.DiagnoseInput{
			Problem: "My Wi-Fi won't connect on my Windows laptop",
			History: model.History{
				{Role: types.RoleUser, Content: "I already tried restarting the router"},
			},
		})
		gt.NoError(t, err).Required()

		gt.Array(t, out.SolutionSteps).Length(2)
		for i, step := range out.SolutionSteps {
			gt.Number(t, step.StepNumber).Equal(i + 1)
			gt.Bool(t, strings.Contains(strings.ToLower(step.Action), "restart")).False()
		}
	})

	t.Run("physical danger refers to a professional", func(t *testing.T) {
		uc := usecase.New(memory.New())

		out, err := uc.Diagnose(ctx, usecase.DiagnoseInput{
			Problem: "my laptop is smoking",
		})
		gt.NoError(t, err).Required()

		gt.Bool(t, out.RequiresProfessionalHelp).True()
		gt.String(t, out.NextSteps).Contains("professional technician")
	})

	t.Run("empty problem is rejected", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.Diagnose(ctx, usecase.DiagnoseInput{Problem: "   "})
		gt.Error(t, err)
	})
}

func TestDiagnoseWithGenerator(t *testing.T) {
	ctx := context.Background()

	t.Run("generator output is used when complete", func(t *testing.T) {
		gen := &fakeGenerator{text: "Here is my take.\n\nNext steps: try the router first."}
		uc := usecase.New(memory.New(), usecase.WithGenerator(gen))

		out, err := uc.Diagnose(ctx, usecase.DiagnoseInput{
			Problem: "My Wi-Fi won't connect on my Windows laptop",
		})
		gt.NoError(t, err).Required()

		gt.Value(t, out.Response).Equal(gen.text)
		gt.Value(t, out.ReasoningType).Equal("rag+remote_llm+no_follow_up")
		gt.String(t, gen.lastInput.SystemPrompt).Contains("MANDATORY RESPONSE STRUCTURE")
		gt.String(t, gen.lastInput.UserMessage).Contains("Wi-Fi connectivity issues")
	})

	t.Run("output without next steps falls back to structured rendering", func(t *testing.T) {
		gen := &fakeGenerator{text: "Just restart it and hope."}
		uc := usecase.New(memory.New(), usecase.WithGenerator(gen))

		out, err := uc.Diagnose(ctx, usecase.DiagnoseInput{
			Problem: "My Wi-Fi won't connect on my Windows laptop",
		})
		gt.NoError(t, err).Required()

		gt.String(t, out.Response).Contains("1. **Problem Understanding**")
		gt.String(t, out.Response).Contains("4. **Next Steps**")
		// Availability, not call success, drives the label
		gt.Value(t, out.ReasoningType).Equal("rag+remote_llm+no_follow_up")
	})

	t.Run("apology marker triggers the fallback", func(t *testing.T) {
		gen := &fakeGenerator{text: "We are experiencing technical difficulties. Next steps: none."}
		uc := usecase.New(memory.New(), usecase.WithGenerator(gen))

		out, err := uc.Diagnose(ctx, usecase.DiagnoseInput{
			Problem: "My Wi-Fi won't connect on my Windows laptop",
		})
		gt.NoError(t, err).Required()

		gt.String(t, out.Response).Contains("1. **Problem Understanding**")
	})

	t.Run("clarifier missing from generated text is appended", func(t *testing.T) {
		gen := &fakeGenerator{text: "Check the cable.\n\nNext steps: report back."}
		uc := usecase.New(memory.New(), usecase.WithGenerator(gen))

		out, err := uc.Diagnose(ctx, usecase.DiagnoseInput{
			Problem: "the screen keeps flickering every few minutes",
		})
		gt.NoError(t, err).Required()

		gt.String(t, out.Response).Contains("**Quick question:** " + intent.QuestionDeviceAndOS)
	})

	t.Run("generator error degrades to deterministic text", func(t *testing.T) {
		gen := &fakeGenerator{err: context.DeadlineExceeded}
		uc := usecase.New(memory.New(), usecase.WithGenerator(gen))

		out, err := uc.Diagnose(ctx, usecase.DiagnoseInput{
			Problem: "My Wi-Fi won't connect on my Windows laptop",
		})
		gt.NoError(t, err).Required()

		gt.String(t, out.Response).Contains("3. **Step-by-Step Solution**")
	})
}

func TestNextStepsVariants(t *testing.T) {
	ctx := context.Background()

	t.Run("long plans point at the stuck step", func(t *testing.T) {
		seed := func() []*model.KnowledgeRecord {
			return []*model.KnowledgeRecord{{
				ID:          "email_sync_1",
				Problem:     "Email sync failing",
				Description: "Outlook email stops syncing with the server",
				DeviceType:  "desktop",
				OS:          "windows",
				Category:    "general",
				Symptoms:    []string{"email sync", "outlook offline"},
				Causes: []model.CauseEntry{
					{Cause: "Stale credentials", Likelihood: types.LikelihoodHigh},
				},
				Solutions: []model.SolutionEntry{
					{Step: 1, Action: "Check the account is online", Why: "Offline mode pauses sync", RiskLevel: types.RiskLevelSafe},
					{Step: 2, Action: "Re-enter the account password", Why: "Expired tokens block sync", RiskLevel: types.RiskLevelSafe},
					{Step: 3, Action: "Repair the mail profile", Why: "Corrupt profiles stop syncing", RiskLevel: types.RiskLevelSafe},
					{Step: 4, Action: "Recreate the mail profile", Why: "A clean profile resolves stubborn cases", RiskLevel: types.RiskLevelCaution},
				},
			}}
		}

		uc := usecase.New(memory.New(memory.WithSeed(seed)))

		out, err := uc.Diagnose(ctx, usecase.DiagnoseInput{
			Problem: "email sync failing on my desktop computer",
		})
		gt.NoError(t, err).Required()

		gt.Array(t, out.SolutionSteps).Length(4)
		gt.String(t, out.NextSteps).Contains("which step you got stuck on")
	})

	t.Run("short plans ask for a step report", func(t *testing.T) {
		uc := usecase.New(memory.New())

		out, err := uc.Diagnose(ctx, usecase.DiagnoseInput{
			Problem: "My Wi-Fi won't connect on my Windows laptop",
		})
		gt.NoError(t, err).Required()

		gt.String(t, out.NextSteps).Contains("Which step you completed")
	})
}
