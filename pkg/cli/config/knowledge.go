package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/remedy/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Knowledge holds configuration for extra knowledge records loaded from a
// TOML file on top of the built-in seed set.
type Knowledge struct {
	path      string
	threshold float64
}

type knowledgeFile struct {
	Records []model.KnowledgeRecord `toml:"record"`
}

// Flags returns CLI flags for knowledge base configuration
func (k *Knowledge) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "knowledge-file",
			Usage:       "TOML file with extra knowledge records",
			Sources:     cli.EnvVars("REMEDY_KNOWLEDGE_FILE"),
			Destination: &k.path,
		},
		&cli.FloatFlag{
			Name:        "similarity-threshold",
			Usage:       "Retrieval similarity threshold (soft: best-effort below it)",
			Value:       0.7,
			Sources:     cli.EnvVars("REMEDY_SIMILARITY_THRESHOLD"),
			Destination: &k.threshold,
		},
	}
}

// LogAttrs returns log attributes for the knowledge configuration
func (k *Knowledge) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("file", k.path),
		slog.Float64("threshold", k.threshold),
	}
}

// Threshold returns the configured similarity threshold
func (k *Knowledge) Threshold() float64 {
	return k.threshold
}

// Load reads and validates the extra records. Returns nil when no file is
// configured.
func (k *Knowledge) Load() ([]*model.KnowledgeRecord, error) {
	if k.path == "" {
		return nil, nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(k.path)
	if err != nil {
		return nil, goerr.Wrap(ErrKnowledgeNotFound, err.Error(), goerr.V("path", k.path))
	}

	var file knowledgeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse knowledge TOML", goerr.V("path", k.path))
	}

	records := make([]*model.KnowledgeRecord, 0, len(file.Records))
	for i := range file.Records {
		rec := &file.Records[i]
		if err := rec.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid knowledge record", goerr.V("path", k.path))
		}
		records = append(records, rec)
	}
	return records, nil
}
