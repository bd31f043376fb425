package safety

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/remedy/pkg/domain/model"
	"github.com/secmon-lab/remedy/pkg/domain/types"
)

// riskyKeyword pairs a keyword found in a step's action text with its
// canned warning. Order is significant: warnings are emitted in first
// occurrence order across steps.
type riskyKeyword struct {
	keyword string
	warning string
}

var riskyKeywords = []riskyKeyword{
	{"format", "WARNING: This will erase all data. BACKUP FIRST!"},
	{"delete", "CAUTION: Deleting system files can cause problems. Double-check before proceeding."},
	{"registry", "WARNING: Editing the registry can damage Windows. Create a restore point first."},
	{"reset", "WARNING: Factory reset will erase all data. BACKUP FIRST!"},
	{"reinstall", "CAUTION: Reinstalling may lose data. Backup important files first."},
	{"bios", "WARNING: Incorrect BIOS settings can prevent boot. Only proceed if confident."},
	{"firmware", "CAUTION: Failed firmware updates can brick devices. Ensure stable power."},
	{"partition", "WARNING: Partitioning errors can cause data loss. BACKUP FIRST!"},
}

var physicalDangerKeywords = []string{
	"smoking", "burning", "smell", "sparks", "hot", "shock",
	"electric", "fire", "melting",
}

var hardwareRepairKeywords = []string{
	"open case", "remove screws", "thermal paste", "replace component",
	"disassemble", "solder", "hardware repair",
}

var complexHardwarePhrases = []string{
	"won't turn on", "no power", "physical damage", "dropped",
	"water damage", "screen broken", "motherboard",
}

// CheckSolutions inspects each step's action text for risky keywords and
// returns the matching canned warnings, deduplicated by identical text.
// Steps flagged risky additionally contribute a per-step caution. All
// steps are scanned; there is no early exit.
func CheckSolutions(steps []model.SolutionStep) []string {
	var warnings []string
	seen := make(map[string]struct{})

	for _, step := range steps {
		action := strings.ToLower(step.Action)

		for _, rk := range riskyKeywords {
			if !strings.Contains(action, rk.keyword) {
				continue
			}
			if _, dup := seen[rk.warning]; dup {
				continue
			}
			seen[rk.warning] = struct{}{}
			warnings = append(warnings, rk.warning)
		}

		if step.RiskLevel == types.RiskLevelRisky {
			warnings = append(warnings, fmt.Sprintf(
				"Step %d: This action carries some risk. Proceed carefully and ensure you understand what it does.",
				step.StepNumber))
		}
	}

	return warnings
}

// RequiresProfessionalHelp decides whether the user should be referred to
// a technician. Physical danger in the problem text is authoritative and
// short-circuits. Hardware disassembly language also refers out. A complex
// hardware phrase refers out only when the plan has fewer than 3 steps,
// which signals no adequate software-only remediation was found.
func RequiresProfessionalHelp(problem string, steps []model.SolutionStep) bool {
	lower := strings.ToLower(problem)

	for _, kw := range physicalDangerKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	for _, kw := range hardwareRepairKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	for _, phrase := range complexHardwarePhrases {
		if strings.Contains(lower, phrase) {
			return len(steps) < 3
		}
	}

	return false
}

// Briefing composes a pre-flight safety summary for a proposed plan.
// Returns an empty string when nothing needs calling out.
func Briefing(problem string, steps []model.SolutionStep) string {
	var parts []string
	lower := strings.ToLower(problem)

	for _, kw := range []string{"reset", "format", "reinstall"} {
		if strings.Contains(lower, kw) {
			parts = append(parts, "BACKUP REMINDER: This solution may involve data loss. Please backup important files before proceeding.")
			break
		}
	}

	if RequiresProfessionalHelp(problem, steps) {
		parts = append(parts, "PROFESSIONAL HELP: This issue may require professional assistance. If you're not comfortable with these steps, consider consulting a technician.")
	}

	for _, kw := range physicalDangerKeywords {
		if strings.Contains(lower, kw) {
			parts = append(parts, "SAFETY WARNING: Disconnect power immediately and do not attempt repair. Contact a professional technician or the manufacturer.")
			break
		}
	}

	for _, step := range steps {
		if step.RiskLevel == types.RiskLevelCaution || step.RiskLevel == types.RiskLevelRisky {
			parts = append(parts, "CAUTION: Some steps require care. Read each instruction completely before performing it.")
			break
		}
	}

	return strings.Join(parts, "\n\n")
}
