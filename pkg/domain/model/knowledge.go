package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/remedy/pkg/domain/types"
)

// KnowledgeID is a unique identifier for a knowledge record
type KnowledgeID string

// String returns the string representation of KnowledgeID
func (k KnowledgeID) String() string {
	return string(k)
}

// CauseEntry is a stored candidate cause inside a knowledge record
type CauseEntry struct {
	Cause      string           `toml:"cause" json:"cause"`
	Likelihood types.Likelihood `toml:"likelihood" json:"likelihood"`
}

// SolutionEntry is a stored remediation step inside a knowledge record.
// Step values are re-derived during synthesis and never trusted directly.
type SolutionEntry struct {
	Step      int             `toml:"step" json:"step"`
	Action    string          `toml:"action" json:"action"`
	Why       string          `toml:"why" json:"why"`
	RiskLevel types.RiskLevel `toml:"risk_level" json:"risk_level"`
}

// KnowledgeRecord is a stored problem/cause/solution triple. Records are
// immutable once loaded into the store.
type KnowledgeRecord struct {
	ID          KnowledgeID     `toml:"id" json:"id"`
	Problem     string          `toml:"problem" json:"problem"`
	Description string          `toml:"description" json:"description"`
	DeviceType  string          `toml:"device_type" json:"device_type"`
	OS          string          `toml:"os" json:"os"`
	Category    string          `toml:"category" json:"category"`
	Symptoms    []string        `toml:"symptoms" json:"symptoms"`
	Causes      []CauseEntry    `toml:"causes" json:"causes"`
	Solutions   []SolutionEntry `toml:"solutions" json:"solutions"`
}

// SearchableText concatenates the fields retrieval scoring runs against
func (r *KnowledgeRecord) SearchableText() string {
	parts := []string{r.Problem, r.Description}
	parts = append(parts, r.Symptoms...)
	return strings.Join(parts, " ")
}

// Validate checks if the KnowledgeRecord is valid
func (r *KnowledgeRecord) Validate() error {
	if r.ID == "" {
		return goerr.New("knowledge record ID is required")
	}
	if r.Problem == "" {
		return goerr.New("knowledge record problem is required", goerr.V("id", r.ID))
	}
	if len(r.Solutions) == 0 {
		return goerr.New("knowledge record requires at least one solution", goerr.V("id", r.ID))
	}
	for _, c := range r.Causes {
		if err := c.Likelihood.Validate(); err != nil {
			return goerr.Wrap(err, "invalid cause likelihood", goerr.V("id", r.ID), goerr.V("cause", c.Cause))
		}
	}
	for _, s := range r.Solutions {
		if s.Action == "" {
			return goerr.New("solution action is required", goerr.V("id", r.ID), goerr.V("step", s.Step))
		}
		if err := s.RiskLevel.Validate(); err != nil {
			return goerr.Wrap(err, "invalid solution risk level", goerr.V("id", r.ID), goerr.V("step", s.Step))
		}
	}
	return nil
}

// AttributeValue returns the value of a filterable attribute by name.
// Unknown names return an empty string, which never matches a filter.
func (r *KnowledgeRecord) AttributeValue(name string) string {
	switch name {
	case "device_type":
		return r.DeviceType
	case "os":
		return r.OS
	case "category":
		return r.Category
	}
	return ""
}
