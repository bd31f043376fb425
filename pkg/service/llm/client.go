package llm

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/remedy/pkg/domain/interfaces"
	"github.com/secmon-lab/remedy/pkg/utils/logging"
)

const defaultTimeout = 30 * time.Second

// historyWindow limits how many prior turns are replayed into the prompt
const historyWindow = 6

// Generator adapts a gollem LLM client to the narrow TextGenerator the
// pipeline depends on. Each Generate call opens a fresh session; prior
// turns are carried in the prompt text, not in session state.
type Generator struct {
	client  gollem.LLMClient
	timeout time.Duration
}

var _ interfaces.TextGenerator = (*Generator)(nil)

type Option func(*Generator)

func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.timeout = d
	}
}

func New(client gollem.LLMClient, opts ...Option) *Generator {
	g := &Generator{
		client:  client,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs one completion with a bounded deadline
func (g *Generator) Generate(ctx context.Context, input interfaces.GenerateInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	session, err := g.client.NewSession(ctx,
		gollem.WithSessionSystemPrompt(input.SystemPrompt),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	prompt := buildPrompt(input)

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate content",
			goerr.V("prompt_length", len(prompt)),
		)
	}

	if resp == nil || len(resp.Texts) == 0 {
		return "", goerr.New("LLM returned empty response")
	}

	text := strings.TrimSpace(strings.Join(resp.Texts, "\n"))
	if text == "" {
		return "", goerr.New("LLM returned blank text")
	}

	logging.From(ctx).Debug("generated completion",
		"prompt_length", len(prompt),
		"response_length", len(text),
	)

	return text, nil
}

// buildPrompt folds recent conversation turns into the user message so the
// model sees context without relying on provider-side session memory.
func buildPrompt(input interfaces.GenerateInput) string {
	recent := input.History.Recent(historyWindow)
	if len(recent) == 0 {
		return input.UserMessage
	}

	var sb strings.Builder
	sb.WriteString("Conversation so far:\n")
	for _, msg := range recent {
		sb.WriteString(string(msg.Role))
		sb.WriteString(": ")
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(input.UserMessage)
	return sb.String()
}
