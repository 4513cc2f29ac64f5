package analyzer

import "strings"

// RiskLevel orders email risk as low < medium < high.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

func (r RiskLevel) rank() int {
	switch r {
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	default:
		return 0
	}
}

// EmailAssessment classifies raw email text. RiskLevel is low exactly when no
// severity-bearing indicator fired; otherwise it is the highest severity
// among the fired indicators.
type EmailAssessment struct {
	RiskLevel  RiskLevel `json:"riskLevel"`
	Indicators []string  `json:"indicators"`
}

type emailIndicator struct {
	phrases  []string
	label    string
	severity RiskLevel
}

var emailIndicators = [...]emailIndicator{
	{[]string{"urgent"}, "Uses urgency language", RiskMedium},
	{[]string{"click here"}, "Suspicious call-to-action link", RiskHigh},
	{[]string{"verify account"}, "Requests account verification", RiskHigh},
	{[]string{"confirm password"}, "Requests password confirmation", RiskHigh},
	{[]string{"limited time", "act now"}, "Time pressure tactic", RiskMedium},
}

// CheckEmail runs the case-insensitive substring indicators in order. The
// short-message indicator joins the list but never raises the risk level.
func CheckEmail(body string) EmailAssessment {
	lowered := strings.ToLower(body)
	indicators := []string{}
	risk := RiskLow

	for _, ind := range emailIndicators {
		for _, phrase := range ind.phrases {
			if strings.Contains(lowered, phrase) {
				indicators = append(indicators, ind.label)
				if ind.severity.rank() > risk.rank() {
					risk = ind.severity
				}
				break
			}
		}
	}

	if len(body) < 50 {
		indicators = append(indicators, "Unusually short message")
	}

	if len(indicators) == 0 {
		risk = RiskLow
	}
	return EmailAssessment{RiskLevel: risk, Indicators: indicators}
}
