package interfaces

import (
	"context"

	"github.com/secmon-lab/remedy/pkg/domain/model"
)

// GenerateInput carries one completion request to a text backend
type GenerateInput struct {
	SystemPrompt string
	UserMessage  string
	History      model.History
	Temperature  float64
	MaxTokens    int
}

// TextGenerator produces body text for a prompt, or signals failure. A nil
// TextGenerator means no backend is configured; callers degrade to
// deterministic composition. Any error, empty output, or marker text is
// treated identically to "backend unavailable".
type TextGenerator interface {
	Generate(ctx context.Context, input GenerateInput) (string, error)
}
