package intent

import (
	"regexp"
	"strings"

	"github.com/secmon-lab/remedy/pkg/domain/model"
	"github.com/secmon-lab/remedy/pkg/domain/types"
)

// rephraseRule maps a raw-text pattern to its canonical problem label.
// Rule order is load-bearing: rules are applied sequentially and the
// first match wins; they are never scored.
type rephraseRule struct {
	pattern *regexp.Regexp
	label   string
}

var rephraseRules = []rephraseRule{
	{regexp.MustCompile(`(wifi|wi-fi|internet|network).*(not work|can't connect|won't connect)`), "Wi-Fi connectivity issues"},
	{regexp.MustCompile(`(slow|laggy|sluggish|freeze|frozen)`), "Computer performance issues - slow/freezing"},
	{regexp.MustCompile(`(blue screen|bsod|crash)`), "Blue Screen of Death (BSOD) - system crash"},
	{regexp.MustCompile(`(won't turn on|no power|dead|not starting)`), "Device power failure - won't turn on"},
	{regexp.MustCompile(`(printer).*(not work|won't print|not printing)`), "Printer not printing"},
	{regexp.MustCompile(`(battery).*(drain|dying|fast|quick)`), "Battery draining quickly"},
	{regexp.MustCompile(`(forgot|lost).*(password)`), "Password recovery - locked out"},
	{regexp.MustCompile(`(email).*(not work|can't send|can't receive)`), "Email client issues"},
	{regexp.MustCompile(`(update).*(fail|error|stuck)`), "Software update failure"},
	{regexp.MustCompile(`(virus|malware|infected)`), "Potential malware infection"},
}

// Rephrase converts a vague user query into a canonical problem statement.
// When no rule matches, the trimmed original text is returned verbatim.
func Rephrase(problem string, device *model.DeviceInfo) string {
	lower := strings.ToLower(problem)

	for _, rule := range rephraseRules {
		if rule.pattern.MatchString(lower) {
			if device != nil && device.DeviceType != "" {
				return rule.label + " on " + device.DeviceType
			}
			return rule.label
		}
	}

	return strings.TrimSpace(problem)
}

// Categorize assigns a problem category, preferring the top retrieval hit's
// category over keyword heuristics.
func Categorize(problem string, hits []*model.RetrievalHit) string {
	if len(hits) > 0 {
		return hits[0].Category
	}

	lower := strings.ToLower(problem)
	switch {
	case containsAny(lower, "wifi", "internet", "network"):
		return "networking"
	case containsAny(lower, "slow", "freeze", "performance"):
		return "performance"
	case containsAny(lower, "printer", "keyboard", "mouse"):
		return "peripherals"
	case containsAny(lower, "phone", "android", "ios"):
		return "mobile"
	case containsAny(lower, "crash", "error", "blue screen"):
		return "system"
	}
	return "general"
}

// AssessSeverity grades the problem from its text and the diagnosed causes
func AssessSeverity(problem string, causes []model.Cause) types.Severity {
	lower := strings.ToLower(problem)

	if containsAny(lower, "crash", "lost", "deleted", "corrupted", "smoking", "burning") {
		return types.SeverityCritical
	}
	if containsAny(lower, "won't turn on", "blue screen", "no power", "dead") {
		return types.SeverityHigh
	}
	for _, c := range causes {
		if c.Likelihood == types.LikelihoodHigh {
			return types.SeverityMedium
		}
	}
	return types.SeverityLow
}

// AssessComplexity grades how involved the remediation is expected to be
func AssessComplexity(problem string) types.Complexity {
	lower := strings.ToLower(problem)

	if containsAny(lower, "blue screen", "corrupted", "driver", "registry") {
		return types.ComplexityComplex
	}
	if containsAny(lower, "slow", "wifi", "password", "volume") {
		return types.ComplexitySimple
	}
	return types.ComplexityModerate
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
