package safety

import (
	"regexp"
	"strings"

	"github.com/secmon-lab/remedy/pkg/domain/types"
)

// CommandVerdict is the structured result of a single command or action check
type CommandVerdict struct {
	IsSafe               bool              `json:"is_safe"`
	RiskLevel            types.CommandRisk `json:"risk_level"`
	Warnings             []string          `json:"warnings"`
	RequiresConfirmation bool              `json:"requires_confirmation"`
}

// ActionVerdict is the structured result of validating a user-proposed action
type ActionVerdict struct {
	Approved        bool     `json:"approved"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

var dangerousCommandPatterns = []*regexp.Regexp{
	regexp.MustCompile(`rm\s+-rf\s+/`),
	regexp.MustCompile(`del\s+/f\s+/s\s+/q\s+[a-z]:\\`),
	regexp.MustCompile(`format\s+[a-z]:`),
	regexp.MustCompile(`dd\s+if=/dev/zero`),
}

type riskyCommandPattern struct {
	pattern     *regexp.Regexp
	description string
}

var riskyCommandPatterns = []riskyCommandPattern{
	{regexp.MustCompile(`reg\s+(add|delete)`), "Modifying Windows registry"},
	{regexp.MustCompile(`chmod\s+777`), "Opening full permissions is insecure"},
	{regexp.MustCompile(`sudo\s+rm`), "Deleting system files with elevated privileges"},
}

// CheckCommandSafety classifies an imperative command against a three-tier
// table: dangerous patterns short-circuit, risky patterns accumulate, and
// privilege escalation adds an informational note.
func CheckCommandSafety(command string) CommandVerdict {
	lower := strings.ToLower(command)

	verdict := CommandVerdict{
		IsSafe:    true,
		RiskLevel: types.CommandRiskSafe,
	}

	for _, pattern := range dangerousCommandPatterns {
		if pattern.MatchString(lower) {
			verdict.IsSafe = false
			verdict.RiskLevel = types.CommandRiskDangerous
			verdict.Warnings = append(verdict.Warnings, "DANGEROUS: This command can cause permanent data loss!")
			verdict.RequiresConfirmation = true
			return verdict
		}
	}

	for _, rp := range riskyCommandPatterns {
		if rp.pattern.MatchString(lower) {
			verdict.RiskLevel = types.CommandRiskRisky
			verdict.Warnings = append(verdict.Warnings, "RISKY: "+rp.description)
			verdict.RequiresConfirmation = true
		}
	}

	for _, kw := range []string{"sudo", "admin", "elevated"} {
		if strings.Contains(lower, kw) {
			verdict.Warnings = append(verdict.Warnings, "This requires administrative privileges")
			break
		}
	}

	return verdict
}

// ValidateUserAction reviews an action the user intends to take and returns
// advisory warnings and recommendations. It never blocks: the verdict is
// always approved.
func ValidateUserAction(action string) ActionVerdict {
	lower := strings.ToLower(action)

	verdict := ActionVerdict{Approved: true}

	if strings.Contains(lower, "open") {
		for _, kw := range []string{"laptop", "computer", "case"} {
			if strings.Contains(lower, kw) {
				verdict.Warnings = append(verdict.Warnings,
					"Opening your device may void warranty and risks static damage to components.")
				verdict.Recommendations = append(verdict.Recommendations,
					"Ground yourself with an anti-static wrist strap before touching internal components.")
				break
			}
		}
	}

	if strings.Contains(lower, "download") || strings.Contains(lower, "install") {
		verdict.Recommendations = append(verdict.Recommendations,
			"Only download software from official sources to avoid malware.")
	}

	if strings.Contains(lower, "bios") || strings.Contains(lower, "uefi") {
		verdict.Warnings = append(verdict.Warnings,
			"Incorrect BIOS settings can prevent your computer from booting.")
		verdict.Recommendations = append(verdict.Recommendations,
			"Write down current settings before making changes so you can revert if needed.")
	}

	return verdict
}
