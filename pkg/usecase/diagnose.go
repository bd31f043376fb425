package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/remedy/pkg/domain/interfaces"
	"github.com/secmon-lab/remedy/pkg/domain/model"
	"github.com/secmon-lab/remedy/pkg/domain/types"
	"github.com/secmon-lab/remedy/pkg/service/intent"
	"github.com/secmon-lab/remedy/pkg/service/safety"
	"github.com/secmon-lab/remedy/pkg/utils/logging"
)

const retrievalTopK = 5

const greetingResponse = "Hi! I can help troubleshoot tech issues.\n\n" +
	"Tell me what's going wrong and I'll walk you through it. If you can, include:\n" +
	"- Your device type (laptop/desktop/phone/printer, etc.)\n" +
	"- Your OS (Windows/macOS/Android/iOS/Linux)\n" +
	"- Any exact error message\n\n" +
	"Example: 'My Windows laptop can't connect to Wi-Fi after an update.'"

const greetingNextSteps = "Describe the issue you want to fix (what you expected vs what happened)."

// DiagnoseInput is one troubleshooting request
type DiagnoseInput struct {
	Problem        string
	History        model.History
	Device         *model.DeviceInfo
	TechnicalLevel types.TechnicalLevel
}

// Diagnose runs the full pipeline: intent, retrieval, cause and step
// synthesis, safety checks, and response composition. It always produces a
// best-effort diagnosis; missing information yields one advisory question,
// never a refusal.
func (uc *UseCases) Diagnose(ctx context.Context, input DiagnoseInput) (*model.Diagnosis, error) {
	if strings.TrimSpace(input.Problem) == "" {
		return nil, goerr.New("problem text is empty")
	}

	logger := logging.From(ctx)

	if intent.IsGreetingOrSmallTalk(input.Problem) {
		return &model.Diagnosis{
			Response:             greetingResponse,
			ReasoningType:        types.ReasoningOnboarding,
			ProblemUnderstanding: "Greeting / onboarding",
			LikelyCauses:         []model.Cause{},
			SolutionSteps:        []model.SolutionStep{},
			NextSteps:            greetingNextSteps,
			FollowUpQuestion:     intent.QuestionOnboarding,
			Warnings:             []string{},
			Sources:              []string{},
		}, nil
	}

	rephrased := intent.Rephrase(input.Problem, input.Device)
	logger.Info("rephrased problem", "rephrased", rephrased)

	followUp := intent.CheckMissingInfo(input.Problem, input.Device)

	hits, err := uc.repo.Knowledge().Query(ctx, rephrased, retrievalTopK, model.QueryFilter{})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query knowledge base")
	}
	logger.Info("retrieved knowledge", "hits", len(hits))

	reasoningType := uc.reasoningLabel(hits, followUp)

	causes := analyzeCauses(hits)
	steps := generateSolutionSteps(hits, input.History)

	warnings := safety.CheckSolutions(steps)
	requiresProfessional := safety.RequiresProfessionalHelp(rephrased, steps)

	systemPrompt := buildSystemPrompt(formatKnowledgeContext(hits), input.Device, input.TechnicalLevel)
	userMessage := buildUserMessage(input.Problem, rephrased, causes, followUp)

	responseText := uc.composeResponse(ctx, interfaces.GenerateInput{
		SystemPrompt: systemPrompt,
		UserMessage:  userMessage,
		History:      input.History,
	})

	next := nextSteps(steps, requiresProfessional)

	// A response without a next-steps section is incomplete regardless of
	// where it came from.
	if responseText == "" || !strings.Contains(strings.ToLower(responseText), "next steps") {
		responseText = renderStructured(rephrased, causes, steps, next, followUp)
	}

	// The clarifier must be visible in the chat text itself, not only in
	// the structured field.
	if followUp != "" && !strings.Contains(strings.ToLower(responseText), strings.ToLower(followUp)) {
		responseText = strings.TrimRight(responseText, " \n") + "\n\n**Quick question:** " + followUp
	}

	sources := make([]string, 0, 3)
	for _, hit := range hits {
		sources = append(sources, hit.Problem)
		if len(sources) == 3 {
			break
		}
	}

	return &model.Diagnosis{
		Response:                 responseText,
		ReasoningType:            reasoningType,
		ProblemUnderstanding:     rephrased,
		LikelyCauses:             causes,
		SolutionSteps:            steps,
		NextSteps:                next,
		FollowUpQuestion:         followUp,
		Warnings:                 warnings,
		RequiresProfessionalHelp: requiresProfessional,
		Sources:                  sources,
	}, nil
}

// reasoningLabel derives the stable route tag from what actually happened.
// The generation facet reflects backend availability, not call success.
func (uc *UseCases) reasoningLabel(hits []*model.RetrievalHit, followUp string) string {
	retrieval := types.RetrievalNoKBMatch
	if len(hits) > 0 {
		retrieval = types.RetrievalRAG
	}

	generation := types.GenerationDeterministicFallback
	if uc.generator != nil {
		generation = types.GenerationRemoteLLM
	}

	clarifier := types.ClarifierNone
	if followUp != "" {
		clarifier = types.ClarifierAsked
	}

	return types.ReasoningLabel(retrieval, generation, clarifier)
}
