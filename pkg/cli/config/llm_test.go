package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/remedy/pkg/cli/config"
)

func TestLLMConfigure(t *testing.T) {
	ctx := context.Background()

	t.Run("default provider yields no client", func(t *testing.T) {
		var cfg config.LLM
		runWithFlags(t, cfg.Flags())

		client := gt.R1(cfg.Configure(ctx)).NoError(t)
		gt.Value(t, client).Nil()
		gt.Bool(t, cfg.Enabled()).False()
	})

	t.Run("explicit none yields no client", func(t *testing.T) {
		var cfg config.LLM
		runWithFlags(t, cfg.Flags(), "--llm-provider", "none")

		client := gt.R1(cfg.Configure(ctx)).NoError(t)
		gt.Value(t, client).Nil()
	})

	t.Run("openai without API key is rejected", func(t *testing.T) {
		var cfg config.LLM
		runWithFlags(t, cfg.Flags(), "--llm-provider", "openai")

		_, err := cfg.Configure(ctx)
		gt.Error(t, err).Is(config.ErrMissingAPIKey)
		gt.Bool(t, cfg.Enabled()).True()
	})

	t.Run("claude without API key is rejected", func(t *testing.T) {
		var cfg config.LLM
		runWithFlags(t, cfg.Flags(), "--llm-provider", "claude")

		_, err := cfg.Configure(ctx)
		gt.Error(t, err).Is(config.ErrMissingAPIKey)
	})

	t.Run("gemini without project is rejected", func(t *testing.T) {
		var cfg config.LLM
		runWithFlags(t, cfg.Flags(), "--llm-provider", "gemini")

		_, err := cfg.Configure(ctx)
		gt.Error(t, err).Is(config.ErrMissingProject)
	})

	t.Run("unknown provider is rejected", func(t *testing.T) {
		var cfg config.LLM
		runWithFlags(t, cfg.Flags(), "--llm-provider", "oracle")

		_, err := cfg.Configure(ctx)
		gt.Error(t, err).Is(config.ErrUnknownProvider)
	})
}
