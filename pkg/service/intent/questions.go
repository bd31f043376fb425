package intent

// Follow-up questions the assistant may ask, kept in one place so tests
// can verify coverage without scraping response text.
const (
	QuestionOnboarding   = "What can I help you fix today?"
	QuestionShortProblem = "Quick clarifier: what device/OS is this on, and what exactly happens (any exact error message)?"
	QuestionDeviceAndOS  = "What type of device is this (laptop/desktop/phone/printer), and what OS are you using?"
	QuestionOS           = "What operating system are you using? (Windows, macOS, Android, iOS, Linux)"
)

// AllQuestions lists every clarifier the assistant can produce
func AllQuestions() []string {
	return []string{
		QuestionOnboarding,
		QuestionShortProblem,
		QuestionDeviceAndOS,
		QuestionOS,
	}
}
