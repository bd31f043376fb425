package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/claude"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/urfave/cli/v3"
)

// LLM holds configuration for the optional text generation backend.
// Provider "none" (the default) runs the service in deterministic mode.
type LLM struct {
	provider       string
	model          string
	apiKey         string `masq:"secret"`
	geminiProject  string
	geminiLocation string
}

// Flags returns CLI flags for LLM configuration
func (l *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "llm-provider",
			Usage:       "LLM provider (openai, claude, gemini, none)",
			Value:       "none",
			Sources:     cli.EnvVars("REMEDY_LLM_PROVIDER"),
			Destination: &l.provider,
		},
		&cli.StringFlag{
			Name:        "llm-model",
			Usage:       "Model name override for the selected provider",
			Sources:     cli.EnvVars("REMEDY_LLM_MODEL"),
			Destination: &l.model,
		},
		&cli.StringFlag{
			Name:        "llm-api-key",
			Usage:       "API key for openai or claude providers",
			Sources:     cli.EnvVars("REMEDY_LLM_API_KEY"),
			Destination: &l.apiKey,
		},
		&cli.StringFlag{
			Name:        "gemini-project",
			Usage:       "Google Cloud project ID for the gemini provider",
			Sources:     cli.EnvVars("REMEDY_GEMINI_PROJECT"),
			Destination: &l.geminiProject,
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Google Cloud location for the gemini provider",
			Value:       "us-central1",
			Sources:     cli.EnvVars("REMEDY_GEMINI_LOCATION"),
			Destination: &l.geminiLocation,
		},
	}
}

// LogAttrs returns log attributes for the LLM configuration. The API key
// is never included.
func (l *LLM) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("provider", l.provider),
		slog.String("model", l.model),
		slog.Bool("api_key_set", l.apiKey != ""),
		slog.String("gemini_project", l.geminiProject),
	}
}

// Enabled reports whether a remote backend is requested
func (l *LLM) Enabled() bool {
	return l.provider != "" && l.provider != "none"
}

// Configure creates the gollem client for the selected provider. Returns
// nil without error when no provider is requested.
func (l *LLM) Configure(ctx context.Context) (gollem.LLMClient, error) {
	switch l.provider {
	case "", "none":
		return nil, nil

	case "openai":
		if l.apiKey == "" {
			return nil, goerr.Wrap(ErrMissingAPIKey, "openai provider", goerr.V("provider", l.provider))
		}
		var opts []openai.Option
		if l.model != "" {
			opts = append(opts, openai.WithModel(l.model))
		}
		client, err := openai.New(ctx, l.apiKey, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create OpenAI client")
		}
		return client, nil

	case "claude":
		if l.apiKey == "" {
			return nil, goerr.Wrap(ErrMissingAPIKey, "claude provider", goerr.V("provider", l.provider))
		}
		var opts []claude.Option
		if l.model != "" {
			opts = append(opts, claude.WithModel(l.model))
		}
		client, err := claude.New(ctx, l.apiKey, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Claude client")
		}
		return client, nil

	case "gemini":
		if l.geminiProject == "" {
			return nil, goerr.Wrap(ErrMissingProject, "gemini provider")
		}
		var opts []gemini.Option
		if l.model != "" {
			opts = append(opts, gemini.WithModel(l.model))
		}
		client, err := gemini.New(ctx, l.geminiProject, l.geminiLocation, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Gemini client")
		}
		return client, nil
	}

	return nil, goerr.Wrap(ErrUnknownProvider, l.provider, goerr.V("provider", l.provider))
}
