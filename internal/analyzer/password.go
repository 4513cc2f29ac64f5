// Package analyzer implements the heuristic text evaluators behind the
// security tools: password strength, URL suspicion, and email risk. Every
// function is pure and total; no input string produces an error, and the
// inputs are never logged or retained.
package analyzer

import "strings"

// PasswordAssessment is the outcome of a strength check. Feedback holds one
// hint per failed check, in check-declaration order.
type PasswordAssessment struct {
	Score    int      `json:"score"`
	Label    string   `json:"label"`
	Feedback []string `json:"feedback"`
}

const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

var strengthLabels = [6]string{"Very Weak", "Weak", "Fair", "Good", "Strong", "Very Strong"}

type passwordCheck struct {
	pass func(string) bool
	hint string
}

// Six checks, evaluated in order. Both length checks count toward the raw
// score, so a long password with all four character classes reaches 6 raw
// points before the clamp to 5.
var passwordChecks = [...]passwordCheck{
	{func(p string) bool { return len(p) >= 8 }, "Use at least 8 characters"},
	{func(p string) bool { return len(p) >= 12 }, "Longer passwords are stronger"},
	{func(p string) bool { return strings.ContainsFunc(p, func(r rune) bool { return r >= 'a' && r <= 'z' }) }, "Add lowercase letters"},
	{func(p string) bool { return strings.ContainsFunc(p, func(r rune) bool { return r >= 'A' && r <= 'Z' }) }, "Add uppercase letters"},
	{func(p string) bool { return strings.ContainsFunc(p, func(r rune) bool { return r >= '0' && r <= '9' }) }, "Add numbers"},
	{func(p string) bool { return strings.ContainsAny(p, passwordSymbols) }, "Add special characters (!@#$%^&*)"},
}

// CheckPassword scores a secret against the six fixed checks. The score is
// the count of passed checks clamped to 5; the label is a pure function of
// the score.
func CheckPassword(pwd string) PasswordAssessment {
	score := 0
	feedback := []string{}
	for _, check := range passwordChecks {
		if check.pass(pwd) {
			score++
		} else {
			feedback = append(feedback, check.hint)
		}
	}
	if score > 5 {
		score = 5
	}
	return PasswordAssessment{
		Score:    score,
		Label:    strengthLabels[score],
		Feedback: feedback,
	}
}
