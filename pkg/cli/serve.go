package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/remedy/pkg/cli/config"
	httpctrl "github.com/secmon-lab/remedy/pkg/controller/http"
	"github.com/secmon-lab/remedy/pkg/repository/memory"
	"github.com/secmon-lab/remedy/pkg/service/llm"
	"github.com/secmon-lab/remedy/pkg/usecase"
	"github.com/secmon-lab/remedy/pkg/utils/logging"
	"github.com/secmon-lab/remedy/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var llmCfg config.LLM
	var knowledgeCfg config.Knowledge
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("REMEDY_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, llmCfg.Flags()...)
	flags = append(flags, knowledgeCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			flush, err := sentryCfg.Configure(c.Root().Version)
			if err != nil {
				return goerr.Wrap(err, "failed to configure error tracking")
			}
			defer flush()

			repo, err := buildRepository(ctx, &knowledgeCfg)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			uc, err := buildUseCases(ctx, repo, &llmCfg)
			if err != nil {
				return err
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr, "llm", llmCfg.Enabled())
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}

// buildRepository creates the in-memory store with the configured threshold
// and merges extra knowledge records on top of the built-in seed set.
func buildRepository(ctx context.Context, cfg *config.Knowledge) (*memory.Repository, error) {
	repo := memory.New(memory.WithSimilarityThreshold(cfg.Threshold()))

	extra, err := cfg.Load()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load knowledge file")
	}
	for _, rec := range extra {
		if err := repo.Knowledge().Add(ctx, rec); err != nil {
			return nil, goerr.Wrap(err, "failed to register knowledge record", goerr.V("id", rec.ID))
		}
	}
	if len(extra) > 0 {
		logging.Default().Info("extra knowledge records loaded", "count", len(extra))
	}

	return repo, nil
}

// buildUseCases wires the optional LLM backend into the pipeline
func buildUseCases(ctx context.Context, repo *memory.Repository, cfg *config.LLM) (*usecase.UseCases, error) {
	var opts []usecase.Option

	client, err := cfg.Configure(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure LLM backend")
	}
	if client != nil {
		opts = append(opts, usecase.WithGenerator(llm.New(client)))
		logging.Default().Info("LLM backend enabled")
	} else {
		logging.Default().Info("No LLM backend configured, running in deterministic mode")
	}

	return usecase.New(repo, opts...), nil
}
