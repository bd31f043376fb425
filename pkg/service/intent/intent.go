package intent

import (
	"regexp"
	"strings"

	"github.com/secmon-lab/remedy/pkg/domain/model"
)

var nonAlnumPattern = regexp.MustCompile(`[^a-z0-9\s]`)
var alphaTokenPattern = regexp.MustCompile(`^[a-z]+$`)

// Troubleshooting intent always wins over superficial greeting phrasing:
// any of these terms forces the troubleshooting route.
var troubleshootingTerms = []string{
	"wifi", "wi fi", "internet", "network", "slow", "lag", "freeze", "frozen",
	"crash", "bsod", "blue", "screen", "printer", "battery", "update", "error",
	"won't", "wont", "can't", "cant", "not", "broken", "stuck", "virus", "malware",
}

var greetingPhrases = map[string]struct{}{
	"hi": {}, "hello": {}, "hey": {}, "hiya": {}, "yo": {}, "howdy": {}, "sup": {},
	"good morning": {}, "good afternoon": {}, "good evening": {},
	"how are you": {}, "whats up": {}, "what's up": {}, "help": {},
}

var greetingLeads = map[string]struct{}{
	"hi": {}, "hello": {}, "hey": {}, "hiya": {}, "yo": {}, "howdy": {}, "sup": {},
}

// IsGreetingOrSmallTalk reports whether the message is a greeting or small
// talk rather than a troubleshooting request. Short non-technical
// utterances default to small talk.
func IsGreetingOrSmallTalk(text string) bool {
	cleaned := strings.TrimSpace(nonAlnumPattern.ReplaceAllString(strings.ToLower(text), " "))
	if cleaned == "" {
		return false
	}

	for _, term := range troubleshootingTerms {
		if strings.Contains(cleaned, term) {
			return false
		}
	}

	if _, ok := greetingPhrases[cleaned]; ok {
		return true
	}

	tokens := strings.Fields(cleaned)
	if len(tokens) <= 3 {
		if _, ok := greetingLeads[tokens[0]]; ok {
			return true
		}

		allAlpha := true
		for _, tok := range tokens {
			if !alphaTokenPattern.MatchString(tok) {
				allAlpha = false
				break
			}
		}
		if allAlpha {
			return true
		}
	}

	return false
}

// Keywords that let us infer a device category straight from the text,
// making the device clarifier unnecessary.
var deviceHintKeywords = []string{"computer", "pc", "laptop", "phone"}

// Topics where the operating system changes the advice
var osSensitiveKeywords = []string{"update", "settings", "system"}

// CheckMissingInfo returns at most one advisory clarifying question, or an
// empty string when nothing critical is missing. It never blocks the main
// answer: the question is appended to the response, not a precondition.
func CheckMissingInfo(problem string, device *model.DeviceInfo) string {
	if IsGreetingOrSmallTalk(problem) {
		return ""
	}

	if len(strings.Fields(problem)) < 4 {
		return QuestionShortProblem
	}

	lower := strings.ToLower(problem)

	if device == nil || device.DeviceType == "" {
		for _, kw := range deviceHintKeywords {
			if strings.Contains(lower, kw) {
				return ""
			}
		}
		return QuestionDeviceAndOS
	}

	if device.OS == "" {
		for _, kw := range osSensitiveKeywords {
			if strings.Contains(lower, kw) {
				return QuestionOS
			}
		}
	}

	return ""
}
