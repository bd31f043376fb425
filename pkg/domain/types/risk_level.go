package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// RiskLevel represents how risky a single remediation step is for the user
type RiskLevel string

const (
	RiskLevelSafe    RiskLevel = "safe"
	RiskLevelCaution RiskLevel = "caution"
	RiskLevelRisky   RiskLevel = "risky"
)

// Validate checks if the RiskLevel is valid
func (r RiskLevel) Validate() error {
	switch r {
	case RiskLevelSafe, RiskLevelCaution, RiskLevelRisky:
		return nil
	}
	return goerr.New("invalid risk level", goerr.V("risk_level", r))
}

// String returns the string representation of RiskLevel
func (r RiskLevel) String() string {
	return string(r)
}

// CommandRisk is the verdict tier for a single imperative command or action
type CommandRisk string

const (
	CommandRiskSafe      CommandRisk = "safe"
	CommandRiskRisky     CommandRisk = "risky"
	CommandRiskDangerous CommandRisk = "dangerous"
)

// String returns the string representation of CommandRisk
func (c CommandRisk) String() string {
	return string(c)
}
