package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/secmon-lab/remedy/pkg/domain/model"
)

// renderStructured produces the five-section deterministic response. Its
// layout is stable because clients parse the numbered headings.
func renderStructured(problemUnderstanding string, causes []model.Cause, steps []model.SolutionStep, nextSteps, followUp string) string {
	var lines []string

	lines = append(lines, "1. **Problem Understanding**")
	if pu := strings.TrimSpace(problemUnderstanding); pu != "" {
		lines = append(lines, pu)
	} else {
		lines = append(lines, "(unknown)")
	}
	lines = append(lines, "")

	lines = append(lines, "2. **Likely Causes**")
	if len(causes) > 0 {
		for i, cause := range causes {
			if i >= maxCauses {
				break
			}
			bullet := fmt.Sprintf("- %s", strings.TrimSpace(cause.Cause))
			if cause.Likelihood != "" {
				bullet += fmt.Sprintf(" (%s)", cause.Likelihood)
			}
			if expl := strings.TrimSpace(cause.Explanation); expl != "" {
				bullet += fmt.Sprintf(": %s", expl)
			}
			lines = append(lines, bullet)
		}
	} else {
		lines = append(lines, "- (No specific causes found — using general troubleshooting)")
	}
	lines = append(lines, "")

	lines = append(lines, "3. **Step-by-Step Solution**")
	if len(steps) > 0 {
		sorted := make([]model.SolutionStep, len(steps))
		copy(sorted, steps)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].StepNumber < sorted[j].StepNumber
		})
		for i, step := range sorted {
			if i >= 10 {
				break
			}
			action := strings.TrimSpace(step.Action)
			if action == "" {
				continue
			}
			if step.StepNumber > 0 {
				lines = append(lines, fmt.Sprintf("%d. %s", step.StepNumber, action))
			} else {
				lines = append(lines, fmt.Sprintf("- %s", action))
			}
			if expl := strings.TrimSpace(step.Explanation); expl != "" {
				lines = append(lines, fmt.Sprintf("   - Why: %s", expl))
			}
		}
	} else {
		lines = append(lines, "1. Restart the device")
		lines = append(lines, "   - Why: Clears temporary glitches")
	}
	lines = append(lines, "")

	lines = append(lines, "4. **Next Steps**")
	if ns := strings.TrimSpace(nextSteps); ns != "" {
		lines = append(lines, ns)
	} else {
		lines = append(lines, "If this didn't work, tell me what happened at each step and any exact error message you see.")
	}
	lines = append(lines, "")

	lines = append(lines, "5. **Follow-up Question**")
	if fu := strings.TrimSpace(followUp); fu != "" {
		lines = append(lines, fu)
	} else {
		lines = append(lines, "(None)")
	}

	return strings.Join(lines, "\n")
}
