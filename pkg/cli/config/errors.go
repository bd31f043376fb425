package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidLogLevel   = goerr.New("invalid log level")
	ErrInvalidLogFormat  = goerr.New("invalid log format")
	ErrUnknownProvider   = goerr.New("unknown LLM provider")
	ErrMissingAPIKey     = goerr.New("LLM provider requires an API key")
	ErrMissingProject    = goerr.New("gemini provider requires a project ID")
	ErrKnowledgeNotFound = goerr.New("knowledge file not found")
)
