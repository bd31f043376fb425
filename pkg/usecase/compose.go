package usecase

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/secmon-lab/remedy/pkg/domain/interfaces"
	"github.com/secmon-lab/remedy/pkg/domain/model"
	"github.com/secmon-lab/remedy/pkg/domain/types"
	"github.com/secmon-lab/remedy/pkg/utils/logging"
)

//go:embed prompt/system.md
var baseSystemPrompt string

// failureMarker in generated text signals the backend gave an apology
// instead of an answer; such output is replaced by deterministic rendering.
const failureMarker = "technical difficulties"

// buildSystemPrompt assembles the system instructions from the base prompt,
// the reader's technical level, device context, and retrieved knowledge.
func buildSystemPrompt(knowledgeContext string, device *model.DeviceInfo, level types.TechnicalLevel) string {
	var sb strings.Builder
	sb.WriteString(baseSystemPrompt)

	switch level {
	case types.TechnicalLevelIntermediate:
		sb.WriteString("\n- Use moderate technical terms\n- Balance detail with brevity\n- Assume basic computer literacy")
	case types.TechnicalLevelAdvanced:
		sb.WriteString("\n- Use technical terminology freely\n- Be concise, assume expertise\n- Include advanced troubleshooting options")
	default:
		sb.WriteString("\n- Avoid technical jargon, use simple language\n- Provide detailed explanations\n- Include screenshots guidance when helpful")
	}

	if device != nil {
		sb.WriteString("\n\nUSER'S DEVICE:\n")
		if device.DeviceType != "" {
			fmt.Fprintf(&sb, "- Type: %s\n", device.DeviceType)
		}
		if device.OS != "" {
			fmt.Fprintf(&sb, "- OS: %s\n", device.OS)
		}
		if device.OSVersion != "" {
			fmt.Fprintf(&sb, "- Version: %s\n", device.OSVersion)
		}
	}

	if knowledgeContext != "" {
		fmt.Fprintf(&sb, "\n\nKNOWLEDGE BASE CONTEXT:\n%s\n", knowledgeContext)
	}

	sb.WriteString("\n\nIMPORTANT: Always maintain a helpful, patient tone. If you're unsure, ask clarifying questions rather than guessing.")

	return sb.String()
}

// formatKnowledgeContext summarizes the top retrieval hits for the prompt
func formatKnowledgeContext(hits []*model.RetrievalHit) string {
	if len(hits) == 0 {
		return "No specific knowledge base matches found. Use general IT support expertise."
	}

	var sb strings.Builder
	sb.WriteString("Relevant troubleshooting information:\n\n")
	for i, hit := range hits {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&sb, "%d. %s\n", i+1, hit.Problem)
		fmt.Fprintf(&sb, "   Similarity: %.2f\n", hit.Similarity)
		if hit.Record != nil && len(hit.Record.Causes) > 0 {
			names := make([]string, 0, 2)
			for _, c := range hit.Record.Causes {
				names = append(names, c.Cause)
				if len(names) == 2 {
					break
				}
			}
			fmt.Fprintf(&sb, "   Common causes: %s\n", strings.Join(names, ", "))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// buildUserMessage frames the raw problem together with the pipeline's own
// analysis so the backend elaborates rather than re-diagnoses.
func buildUserMessage(problem, rephrased string, causes []model.Cause, followUp string) string {
	names := make([]string, 0, 3)
	for _, c := range causes {
		names = append(names, c.Cause)
		if len(names) == 3 {
			break
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "User's problem: %s\n\n", problem)
	sb.WriteString("Based on my analysis:\n")
	fmt.Fprintf(&sb, "- Problem type: %s\n", rephrased)
	fmt.Fprintf(&sb, "- Likely causes: %s\n\n", strings.Join(names, ", "))

	if followUp != "" {
		fmt.Fprintf(&sb, "\nMissing info to ask at the end (one question): %s\n", followUp)
	}

	sb.WriteString("\nGenerate a helpful, friendly response following the mandatory structure. Include specific step-by-step instructions.")
	return sb.String()
}

// composeResponse asks the backend for the response text. Any failure, or
// an apology marker in the output, yields an empty string so the caller
// falls back to deterministic rendering.
func (uc *UseCases) composeResponse(ctx context.Context, input interfaces.GenerateInput) string {
	if uc.generator == nil {
		return ""
	}

	text, err := uc.generator.Generate(ctx, input)
	if err != nil {
		logging.From(ctx).Warn("text generation failed, using deterministic fallback", "error", err)
		return ""
	}
	if strings.Contains(strings.ToLower(text), failureMarker) {
		return ""
	}
	return text
}
