package analyzer

import (
	"regexp"
	"strings"
)

// URLAssessment flags a URL-like string. IsSuspicious is true exactly when at
// least one rule fired; Reasons keeps rule-evaluation order.
type URLAssessment struct {
	IsSuspicious bool     `json:"isSuspicious"`
	Reasons      []string `json:"reasons"`
}

// Digit-substituted brand lookalikes. Matched as plain substrings so paths
// and subdomains trigger too.
var lookalikeDomains = []string{
	"paypa1.com",
	"amaz0n.com",
	"goog1e.com",
	"micr0soft.com",
}

var repeatedSeparators = regexp.MustCompile(`[-_]{2,}`)

// CheckURL evaluates every rule on every call; the rules are not mutually
// exclusive.
func CheckURL(raw string) URLAssessment {
	reasons := []string{}

	if !strings.HasPrefix(raw, "https://") {
		reasons = append(reasons, "Not using secure HTTPS protocol")
	}

	if strings.Contains(raw, "@") &&
		!strings.HasPrefix(raw, "https://") &&
		!strings.HasPrefix(raw, "http://") {
		reasons = append(reasons, "Suspicious @ symbol in URL")
	}

	if len(raw) > 100 {
		reasons = append(reasons, "Unusually long URL")
	}

	if repeatedSeparators.MatchString(domainSegment(raw)) {
		reasons = append(reasons, "Multiple hyphens or underscores in domain")
	}

	for _, domain := range lookalikeDomains {
		if strings.Contains(raw, domain) {
			reasons = append(reasons, "Domain resembles legitimate site")
			break
		}
	}

	return URLAssessment{
		IsSuspicious: len(reasons) > 0,
		Reasons:      reasons,
	}
}

// domainSegment returns the text after the first "//", or "" when the input
// has no scheme separator.
func domainSegment(raw string) string {
	if _, rest, ok := strings.Cut(raw, "//"); ok {
		return rest
	}
	return ""
}
