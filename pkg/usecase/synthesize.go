package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/secmon-lab/remedy/pkg/domain/model"
	"github.com/secmon-lab/remedy/pkg/domain/types"
)

const (
	maxCauses = 4
	maxSteps  = 6
)

// analyzeCauses merges cause lists from all retrieval hits, deduplicates by
// cause text, ranks by likelihood, and caps the result. When nothing
// matched, a generic pair keeps the diagnosis actionable.
func analyzeCauses(hits []*model.RetrievalHit) []model.Cause {
	var causes []model.Cause
	seen := map[string]struct{}{}

	for _, hit := range hits {
		if hit.Record == nil {
			continue
		}
		for _, entry := range hit.Record.Causes {
			if _, ok := seen[entry.Cause]; ok {
				continue
			}
			seen[entry.Cause] = struct{}{}
			causes = append(causes, model.Cause{
				Cause:       entry.Cause,
				Likelihood:  entry.Likelihood,
				Explanation: fmt.Sprintf("Common issue for %s", hit.Record.Problem),
			})
		}
	}

	if len(causes) == 0 {
		causes = []model.Cause{
			{
				Cause:       "Software configuration issue",
				Likelihood:  types.LikelihoodMedium,
				Explanation: "Settings or software may need adjustment",
			},
			{
				Cause:       "Temporary system glitch",
				Likelihood:  types.LikelihoodMedium,
				Explanation: "Restart often resolves temporary issues",
			},
		}
	}

	sort.SliceStable(causes, func(i, j int) bool {
		return causes[i].Likelihood.Rank() > causes[j].Likelihood.Rank()
	})

	if len(causes) > maxCauses {
		causes = causes[:maxCauses]
	}
	return causes
}

// genericSteps is the troubleshooting plan used when no knowledge record
// supplied one.
func genericSteps() []model.SolutionStep {
	return []model.SolutionStep{
		{
			StepNumber:          1,
			Action:              "Restart the device",
			Explanation:         "Clears temporary issues and resets system state",
			RiskLevel:           types.RiskLevelSafe,
			ExpectedOutcome:     "Device functions normally after restart",
			TroubleshootingTips: []string{"Save any open work before restarting"},
		},
		{
			StepNumber:          2,
			Action:              "Check for and install any available updates",
			Explanation:         "Updates often include bug fixes and improvements",
			RiskLevel:           types.RiskLevelSafe,
			ExpectedOutcome:     "System is up to date and issues are resolved",
			TroubleshootingTips: []string{"Ensure stable internet connection", "Allow time for updates to install"},
		},
		{
			StepNumber:          3,
			Action:              "Review recent changes or new software installations",
			Explanation:         "Problems often correlate with recent changes",
			RiskLevel:           types.RiskLevelSafe,
			ExpectedOutcome:     "Identify what might have caused the issue",
			TroubleshootingTips: []string{"Consider uninstalling recently added software"},
		},
	}
}

// generateSolutionSteps builds the ordered plan. The first hit carrying a
// solution set wins outright; mixing plans from multiple records produces
// contradictory instructions.
func generateSolutionSteps(hits []*model.RetrievalHit, history model.History) []model.SolutionStep {
	var steps []model.SolutionStep

	for _, hit := range hits {
		if hit.Record == nil || len(hit.Record.Solutions) == 0 {
			continue
		}
		for _, sol := range hit.Record.Solutions {
			num := sol.Step
			if num == 0 {
				num = len(steps) + 1
			}
			steps = append(steps, model.SolutionStep{
				StepNumber:  num,
				Action:      sol.Action,
				Explanation: sol.Why,
				RiskLevel:   sol.RiskLevel,
			})
		}
		break
	}

	if len(steps) == 0 {
		steps = genericSteps()
	}

	steps = filterAlreadyTried(steps, history)

	for i := range steps {
		steps[i].StepNumber = i + 1
	}

	if len(steps) > maxSteps {
		steps = steps[:maxSteps]
	}
	return steps
}

// filterAlreadyTried drops steps the user reports having done. Only user
// turns that say "tried" or "already" count as a report.
func filterAlreadyTried(steps []model.SolutionStep, history model.History) []model.SolutionStep {
	tried := map[string]struct{}{}
	for _, msg := range history {
		if msg.Role != types.RoleUser {
			continue
		}
		lower := strings.ToLower(msg.Content)
		if !strings.Contains(lower, "tried") && !strings.Contains(lower, "already") {
			continue
		}
		if strings.Contains(lower, "restart") {
			tried["restart"] = struct{}{}
		}
		if strings.Contains(lower, "update") {
			tried["update"] = struct{}{}
		}
	}

	if len(tried) == 0 {
		return steps
	}

	filtered := steps[:0]
	for _, step := range steps {
		action := strings.ToLower(step.Action)
		skip := false
		for word := range tried {
			if strings.Contains(action, word) {
				skip = true
				break
			}
		}
		if !skip {
			filtered = append(filtered, step)
		}
	}
	return filtered
}

// nextSteps picks the guidance shown when the plan does not resolve the
// problem.
func nextSteps(steps []model.SolutionStep, requiresProfessional bool) string {
	if requiresProfessional {
		return "If these steps don't resolve the issue, I recommend contacting a " +
			"professional technician. The problem may require hardware repair or " +
			"specialized tools."
	}

	if len(steps) > 3 {
		return "If the above steps don't work, let me know which step you got stuck on " +
			"and I can provide more specific guidance or alternative solutions."
	}

	return "If these steps don't resolve the issue, please let me know:\n" +
		"1. Which step you completed\n" +
		"2. What happened when you tried it\n" +
		"3. Any error messages you saw\n\n" +
		"I'll provide more advanced troubleshooting steps."
}
