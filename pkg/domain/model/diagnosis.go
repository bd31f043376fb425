package model

import (
	"github.com/secmon-lab/remedy/pkg/domain/types"
)

// DeviceInfo describes the user's device, as far as they told us
type DeviceInfo struct {
	DeviceType string `json:"device_type,omitempty"`
	OS         string `json:"os,omitempty"`
	OSVersion  string `json:"os_version,omitempty"`
}

// Cause is a response-facing candidate cause with its source explanation
type Cause struct {
	Cause       string           `json:"cause"`
	Likelihood  types.Likelihood `json:"likelihood"`
	Explanation string           `json:"explanation"`
}

// SolutionStep is a response-facing remediation step. StepNumber is always
// renumbered 1..N after filtering, never inherited from a stored record.
type SolutionStep struct {
	StepNumber          int             `json:"step_number"`
	Action              string          `json:"action"`
	Explanation         string          `json:"explanation"`
	RiskLevel           types.RiskLevel `json:"risk_level"`
	ExpectedOutcome     string          `json:"expected_outcome,omitempty"`
	TroubleshootingTips []string        `json:"troubleshooting_tips,omitempty"`
}

// Diagnosis is the pipeline's complete output for one request
type Diagnosis struct {
	Response                 string         `json:"response"`
	ReasoningType            string         `json:"reasoning_type"`
	ProblemUnderstanding     string         `json:"problem_understanding"`
	LikelyCauses             []Cause        `json:"likely_causes"`
	SolutionSteps            []SolutionStep `json:"solution_steps"`
	NextSteps                string         `json:"next_steps"`
	FollowUpQuestion         string         `json:"follow_up_question,omitempty"`
	Warnings                 []string       `json:"warnings"`
	RequiresProfessionalHelp bool           `json:"requires_professional_help"`
	Sources                  []string       `json:"sources"`
}

// Analysis is the lighter assessment produced without a full solution plan
type Analysis struct {
	ProblemCategory     string           `json:"problem_category"`
	Severity            types.Severity   `json:"severity"`
	LikelyCauses        []Cause          `json:"likely_causes"`
	EstimatedComplexity types.Complexity `json:"estimated_complexity"`
	RequiresDataBackup  bool             `json:"requires_data_backup"`
	SafeToAttempt       bool             `json:"safe_to_attempt"`
}
