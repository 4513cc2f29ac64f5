package app

import "cyberaware-service/internal/domain"

// recommendationFallback is served for unknown report types. An explicit
// default, not an error.
const recommendationFallback = "Phishing"

var recommendationActions = map[string][]string{
	"Phishing": {
		"Change your passwords immediately",
		"Enable two-factor authentication",
		"Monitor your accounts for suspicious activity",
		"Consider placing a fraud alert with credit bureaus",
		"Report the phishing page to the legitimate company",
	},
	"UPI Fraud": {
		"Contact your bank immediately",
		"Request transaction reversal",
		"File an FIR with local police",
		"Monitor your account for further unauthorized transactions",
		"Consider blocking UPI access temporarily",
	},
	"Identity Theft": {
		"Place a credit freeze with all three bureaus",
		"Monitor credit reports regularly",
		"File a report with the FTC",
		"Check all accounts for unauthorized activity",
		"Consider identity theft protection service",
	},
	"Job Scam": {
		"Do not send any money or personal documents",
		"Report the job posting to the job board",
		"Report to local authorities if payment was made",
		"Monitor your email for further contact",
		"Be cautious of similar offers in the future",
	},
	"SMS Fraud": {
		"Do not click any links in suspicious messages",
		"Block the sender's number",
		"Report the number to your telecom provider",
		"Forward suspicious SMS to short code 7726 (SPAM)",
		"Monitor your account statements",
	},
	"Account Compromise": {
		"Change password immediately",
		"Review account activity",
		"Check connected apps and revoke access",
		"Update recovery information",
		"Enable login notifications",
	},
}

var helplineContacts = map[string]string{
	"cybercrime": "1930 (Cybercrime Complaint for Rajasthan)",
	"rbi":        "1800-11-5525 (RBI Cyber Fraud Helpline)",
	"ftc":        "reportfraud.ftc.gov (US Federal Trade Commission)",
}

// Recommendations maps a report type to its ordered action list and the fixed
// helpline contacts. Unknown types fall back to the Phishing entry.
func Recommendations(reportType string) domain.Recommendation {
	resolved := reportType
	if resolved == "" {
		resolved = recommendationFallback
	}
	actions, ok := recommendationActions[resolved]
	if !ok {
		actions = recommendationActions[recommendationFallback]
	}
	contacts := make(map[string]string, len(helplineContacts))
	for name, number := range helplineContacts {
		contacts[name] = number
	}
	return domain.Recommendation{
		Type:            resolved,
		Recommendations: append([]string(nil), actions...),
		ContactNumbers:  contacts,
	}
}
