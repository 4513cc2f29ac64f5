package memory

import (
	"context"
	"strings"
	"time"

	"cyberaware-service/internal/domain"
)

// Catalog is the in-memory implementation of app.CatalogRepository, seeded
// with the built-in awareness content. The content is read-only after
// construction, so lookups need no locking.
type Catalog struct {
	crimeTypes []domain.CrimeType
	checklist  []domain.ChecklistItem
	alerts     []domain.ScamAlert
}

// NewCatalog seeds the catalog. Alert timestamps are anchored to now so the
// feed always looks recent in demos.
func NewCatalog(now time.Time) *Catalog {
	return &Catalog{
		crimeTypes: seedCrimeTypes(),
		checklist:  seedChecklist(),
		alerts:     seedAlerts(now),
	}
}

func (c *Catalog) CrimeTypes(_ context.Context) ([]domain.CrimeType, error) {
	return c.crimeTypes, nil
}

func (c *Catalog) CrimeType(_ context.Context, id string) (domain.CrimeType, error) {
	for _, ct := range c.crimeTypes {
		if ct.ID == id {
			return ct, nil
		}
	}
	return domain.CrimeType{}, domain.ErrCrimeTypeNotFound
}

func (c *Catalog) ChecklistItems(_ context.Context, filter domain.ChecklistFilter) ([]domain.ChecklistItem, error) {
	out := make([]domain.ChecklistItem, 0, len(c.checklist))
	for _, item := range c.checklist {
		if filter.Category != "" &&
			!strings.Contains(strings.ToLower(item.Category), strings.ToLower(filter.Category)) {
			continue
		}
		if filter.Priority != "" && item.Priority != filter.Priority {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (c *Catalog) ChecklistItem(_ context.Context, id string) (domain.ChecklistItem, error) {
	for _, item := range c.checklist {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.ChecklistItem{}, domain.ErrChecklistItemNotFound
}

func (c *Catalog) ChecklistCategories(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{}, len(c.checklist))
	var out []string
	for _, item := range c.checklist {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		out = append(out, item.Category)
	}
	return out, nil
}

func (c *Catalog) Alerts(_ context.Context, limit, offset int) ([]domain.ScamAlert, int, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(c.alerts) {
		return []domain.ScamAlert{}, len(c.alerts), nil
	}
	end := offset + limit
	if end > len(c.alerts) {
		end = len(c.alerts)
	}
	return c.alerts[offset:end], len(c.alerts), nil
}

func (c *Catalog) Alert(_ context.Context, id string) (domain.ScamAlert, error) {
	for _, alert := range c.alerts {
		if alert.ID == id {
			return alert, nil
		}
	}
	return domain.ScamAlert{}, domain.ErrAlertNotFound
}

func (c *Catalog) AlertsByType(_ context.Context, alertType string) ([]domain.ScamAlert, error) {
	out := []domain.ScamAlert{}
	for _, alert := range c.alerts {
		if alert.Type == alertType {
			out = append(out, alert)
		}
	}
	return out, nil
}

func seedCrimeTypes() []domain.CrimeType {
	return []domain.CrimeType{
		{
			ID:          "phishing",
			Name:        "Phishing Scams",
			Emoji:       "🎣",
			Description: "Fraudulent attempts to trick you into revealing sensitive information by impersonating trusted entities",
			Examples: []string{
				"Fake banking emails requesting password verification",
				"Social media messages claiming your account is compromised",
				"Emails pretending to be from PayPal asking to confirm payment",
			},
			Signs: []string{
				"Urgent language requesting immediate action",
				"Generic greetings instead of your name",
				"Links that don't match the company domain",
				"Requests for personal or financial information",
				"Poor spelling and grammar",
			},
			Prevention: []string{
				"Never click links in unexpected emails",
				"Verify sender email addresses carefully",
				"Go directly to websites by typing the URL",
				"Check for HTTPS and padlock icon",
				"Enable two-factor authentication",
			},
			Tips: []domain.CrimeTip{
				{ID: "1", Title: "Hover Over Links", Description: "Hover over links to see the actual URL before clicking", Emoji: "🖱️"},
				{ID: "2", Title: "Check Email Headers", Description: "Look at the full email header to verify the sender", Emoji: "📋"},
				{ID: "3", Title: "Use Email Filters", Description: "Enable spam filters and create rules for suspicious emails", Emoji: "🔍"},
			},
		},
		{
			ID:          "ransomware",
			Name:        "Ransomware Attacks",
			Emoji:       "🔒",
			Description: "Malicious software that encrypts your files and demands payment for decryption",
			Examples: []string{
				"Malware downloaded from suspicious websites",
				"Email attachments that contain encrypted threats",
				"Compromised USB drives containing malicious code",
			},
			Signs: []string{
				"Files become inaccessible or corrupted",
				"Strange file extensions on your documents",
				"Popup messages demanding payment",
				"System performance slows down dramatically",
				"Files are replaced with encrypted versions",
			},
			Prevention: []string{
				"Keep software and OS updated",
				"Use reliable antivirus software",
				"Backup important files regularly",
				"Be cautious with email attachments",
				"Don't download files from untrusted sources",
			},
			Tips: []domain.CrimeTip{
				{ID: "1", Title: "Regular Backups", Description: "Maintain offline backups of critical data", Emoji: "💾"},
				{ID: "2", Title: "Update Patches", Description: "Install security patches as soon as they're available", Emoji: "🔧"},
				{ID: "3", Title: "Network Segmentation", Description: "Separate critical systems from public networks", Emoji: "🔗"},
			},
		},
		{
			ID:          "identity-theft",
			Name:        "Identity Theft",
			Emoji:       "👤",
			Description: "Unauthorized use of your personal information to commit fraud",
			Examples: []string{
				"Opening credit cards in your name",
				"Taking out loans using your identity",
				"Filing fraudulent tax returns",
				"Opening bank accounts illegally",
			},
			Signs: []string{
				"Credit card statements for accounts you didn't open",
				"Bills for services you never signed up for",
				"Calls from debt collectors about unknown debts",
				"Suspicious activity on your credit report",
				"Missing mail or receiving statements from unknown accounts",
			},
			Prevention: []string{
				"Monitor your credit reports regularly",
				"Use strong, unique passwords",
				"Shred sensitive documents",
				"Don't share SSN unnecessarily",
				"Check bank and credit statements monthly",
			},
			Tips: []domain.CrimeTip{
				{ID: "1", Title: "Credit Freeze", Description: "Freeze your credit with major bureaus", Emoji: "❄️"},
				{ID: "2", Title: "Identity Theft Protection", Description: "Consider identity theft protection services", Emoji: "🛡️"},
				{ID: "3", Title: "Dark Web Monitoring", Description: "Monitor the dark web for your information", Emoji: "🌐"},
			},
		},
		{
			ID:          "upi-fraud",
			Name:        "UPI Fraud",
			Emoji:       "📱",
			Description: "Fraudulent transactions using Unified Payments Interface in India",
			Examples: []string{
				"QR code scams where wrong amount is transferred",
				"Fake UPI apps that steal bank details",
				"SMS-based scams requesting UPI approval",
				"Screen share fraud where attackers initiate false transactions",
			},
			Signs: []string{
				"Requests to share your UPI ID",
				"Unexpected UPI transaction requests",
				"Pop-ups asking for UPI credentials",
				"SMS messages with UPI links from unknown sources",
				"Screens showing wrong transaction amounts",
			},
			Prevention: []string{
				"Never share your UPI PIN or OTP",
				"Download apps only from official stores",
				"Verify recipient details before sending money",
				"Use transaction limits on your UPI",
				"Enable biometric authentication",
			},
			Tips: []domain.CrimeTip{
				{ID: "1", Title: "Verify QR Codes", Description: "Always verify QR codes before scanning", Emoji: "📲"},
				{ID: "2", Title: "Use UPI Lite", Description: "Use UPI Lite for smaller transactions", Emoji: "💰"},
				{ID: "3", Title: "Merchant Verification", Description: "Verify merchant details in the app", Emoji: "✓"},
			},
		},
		{
			ID:          "deepfake",
			Name:        "Deepfake Scams",
			Emoji:       "🎭",
			Description: "AI-generated videos or audio impersonating trusted individuals",
			Examples: []string{
				"Video calls claiming to be family members asking for money",
				"Fake videos of executives requesting fund transfers",
				"Audio messages impersonating bosses requesting urgent actions",
				"Deepfake celebrity endorsement videos for fake products",
			},
			Signs: []string{
				"Unnatural blinking or lip movements",
				"Poor audio quality or lip-sync issues",
				"Unusual requests from known contacts",
				"Pressure to act urgently",
				"Requests made outside normal communication channels",
			},
			Prevention: []string{
				"Verify requests through alternative channels",
				"Ask security questions only known to them",
				"Be skeptical of video calls requesting money",
				"Use official communication channels",
				"Report suspicious content immediately",
			},
			Tips: []domain.CrimeTip{
				{ID: "1", Title: "Verification Call", Description: "Call the person back using a trusted number", Emoji: "☎️"},
				{ID: "2", Title: "Spot Artifacts", Description: "Look for visual artifacts in videos", Emoji: "👀"},
				{ID: "3", Title: "Report Deepfakes", Description: "Report suspicious content to platforms", Emoji: "🚨"},
			},
		},
	}
}

func seedChecklist() []domain.ChecklistItem {
	return []domain.ChecklistItem{
		{
			ID:          "account-security",
			Category:    "Account Security",
			Title:       "Secure Your Online Accounts",
			Description: "Create strong passwords and enable two-factor authentication",
			Steps: []string{
				"Create a unique password with 12+ characters including uppercase, lowercase, numbers, and symbols",
				"Enable two-factor authentication (2FA) on all important accounts",
				"Use a password manager to store credentials securely",
				"Review and update recovery options (email, phone number)",
				"Set up account activity alerts",
			},
			Priority:      "high",
			EstimatedTime: "30 minutes",
		},
		{
			ID:          "device-security",
			Category:    "Device Security",
			Title:       "Secure Your Devices",
			Description: "Keep your devices updated and protected from malware",
			Steps: []string{
				"Enable automatic updates for your operating system",
				"Install reputable antivirus and anti-malware software",
				"Turn on firewall protection",
				"Disable remote access features if not needed",
				"Encrypt your hard drive with BitLocker or FileVault",
			},
			Priority:      "high",
			EstimatedTime: "45 minutes",
		},
		{
			ID:          "email-security",
			Category:    "Email Security",
			Title:       "Protect Your Email Account",
			Description: "Secure your primary email as it controls password recovery",
			Steps: []string{
				"Create a strong, unique password for your email account",
				"Enable two-factor authentication",
				"Review connected applications and remove unknown ones",
				"Check forwarding rules for suspicious addresses",
				"Set up recovery phone number and alternate email",
			},
			Priority:      "high",
			EstimatedTime: "20 minutes",
		},
		{
			ID:          "browser-security",
			Category:    "Browser Security",
			Title:       "Secure Your Browser",
			Description: "Configure browser security settings for safer browsing",
			Steps: []string{
				"Keep your browser updated to the latest version",
				"Enable pop-up blocking and advertising blockers",
				"Clear cookies and cache regularly",
				"Disable third-party cookies",
				"Install security extensions like HTTPS Everywhere",
			},
			Priority:      "medium",
			EstimatedTime: "15 minutes",
		},
		{
			ID:          "wifi-security",
			Category:    "Network Security",
			Title:       "Secure Your WiFi Network",
			Description: "Protect your home network from unauthorized access",
			Steps: []string{
				"Change the default router password",
				"Use WPA3 encryption (or WPA2 if not available)",
				"Hide your SSID broadcast (optional)",
				"Enable router firewall",
				"Disable WPS (WiFi Protected Setup)",
			},
			Priority:      "high",
			EstimatedTime: "25 minutes",
		},
		{
			ID:          "social-media-security",
			Category:    "Social Media",
			Title:       "Secure Social Media Accounts",
			Description: "Control privacy settings and prevent unauthorized access",
			Steps: []string{
				"Set profile to private on all social media platforms",
				"Enable login alerts and require approval for new locations",
				"Review and remove connected apps",
				"Don't share sensitive information publicly",
				"Limit who can contact you and see your posts",
			},
			Priority:      "medium",
			EstimatedTime: "30 minutes",
		},
		{
			ID:          "financial-security",
			Category:    "Financial Security",
			Title:       "Secure Your Financial Accounts",
			Description: "Protect your banking and payment information",
			Steps: []string{
				"Enable fraud alerts with your bank",
				"Use virtual card numbers for online purchases",
				"Set up transaction limits on your accounts",
				"Monitor statements weekly for unauthorized transactions",
				"Register for credit monitoring services",
			},
			Priority:      "high",
			EstimatedTime: "35 minutes",
		},
		{
			ID:          "backup-strategy",
			Category:    "Data Protection",
			Title:       "Create Regular Backups",
			Description: "Protect your data against loss and ransomware",
			Steps: []string{
				"Identify critical files and documents to back up",
				"Use cloud services like Google Drive or OneDrive",
				"Create external hard drive backups monthly",
				"Test your backups regularly",
				"Keep offline copies of sensitive documents",
			},
			Priority:      "high",
			EstimatedTime: "30 minutes",
		},
		{
			ID:          "phishing-awareness",
			Category:    "Awareness Training",
			Title:       "Learn to Identify Phishing",
			Description: "Recognize and avoid phishing scams",
			Steps: []string{
				"Hover over links to see the actual URL",
				"Check sender email addresses carefully",
				"Look for urgency language in emails",
				"Verify requests through alternative channels",
				"Report suspicious emails to your provider",
			},
			Priority:      "medium",
			EstimatedTime: "20 minutes",
		},
		{
			ID:          "regular-audits",
			Category:    "Ongoing Maintenance",
			Title:       "Perform Regular Security Audits",
			Description: "Maintain security by checking your accounts regularly",
			Steps: []string{
				"Review login activity on important accounts monthly",
				"Check for unauthorized connected apps",
				"Update security questions and answers",
				"Remove old email accounts no longer in use",
				"Review permission settings on apps",
			},
			Priority:      "medium",
			EstimatedTime: "45 minutes",
		},
	}
}

func seedAlerts(now time.Time) []domain.ScamAlert {
	return []domain.ScamAlert{
		{
			ID:             "alert-001",
			Title:          "Fake ICICI Bank App Warning",
			Description:    "Multiple reports of fake ICICI Bank app on Google Play Store that steals banking credentials",
			Severity:       "critical",
			Type:           "Phishing",
			TargetAudience: "ICICI Bank Users",
			ReportedCases:  1247,
			Timestamp:      now.Add(-2 * time.Hour),
			PreventionTips: []string{
				"Only download from official Google Play Store",
				"Verify app developer is ICICI Bank Limited",
				"Check the blue verification badge",
				"Report suspicious apps immediately",
			},
		},
		{
			ID:             "alert-002",
			Title:          "Amazon Gift Card Scam Surge",
			Description:    "Spike in SMS scams asking users to confirm purchases with gift cards",
			Severity:       "high",
			Type:           "SMS Fraud",
			TargetAudience: "All Amazon Users",
			ReportedCases:  3892,
			Timestamp:      now.Add(-4 * time.Hour),
			PreventionTips: []string{
				"Amazon never asks for payment via gift cards",
				"Never click links in unsolicited SMS",
				"Log in to your Amazon account directly",
				"Report phishing to Amazon security team",
			},
		},
		{
			ID:             "alert-003",
			Title:          "Cryptocurrency Exchange Hack",
			Description:    "Major cryptocurrency exchange experiencing suspicious withdrawal activity",
			Severity:       "critical",
			Type:           "Account Compromise",
			TargetAudience: "Crypto Investors",
			ReportedCases:  5621,
			Timestamp:      now.Add(-6 * time.Hour),
			PreventionTips: []string{
				"Enable two-factor authentication",
				"Use hardware wallets for storage",
				"Never share seed phrases",
				"Monitor your account activity regularly",
			},
		},
		{
			ID:             "alert-004",
			Title:          "Tax Return Phishing Campaign",
			Description:    "Income Tax Department impersonation emails asking for personal information",
			Severity:       "high",
			Type:           "Phishing",
			TargetAudience: "Taxpayers",
			ReportedCases:  2156,
			Timestamp:      now.Add(-8 * time.Hour),
			PreventionTips: []string{
				"Income Tax Department never asks for passwords via email",
				"Visit only official income-tax.gov.in website",
				"Be suspicious of urgent tax demands",
				"Verify sender email address carefully",
			},
		},
		{
			ID:             "alert-005",
			Title:          "LinkedIn Job Scam Network",
			Description:    "Organized job scam targeting professionals on LinkedIn with fake tech job offers",
			Severity:       "medium",
			Type:           "Job Scam",
			TargetAudience: "Job Seekers",
			ReportedCases:  1834,
			Timestamp:      now.Add(-12 * time.Hour),
			PreventionTips: []string{
				"Research companies before applying",
				"Be wary of jobs requiring upfront payments",
				"Verify email addresses are from official domains",
				"Use LinkedIn's official messaging system only",
			},
		},
		{
			ID:             "alert-006",
			Title:          "WhatsApp Gold Variant Spreading",
			Description:    "Modified WhatsApp malware variant targeting Indian users with promise of 'WhatsApp Gold'",
			Severity:       "high",
			Type:           "Malware",
			TargetAudience: "WhatsApp Users",
			ReportedCases:  4523,
			Timestamp:      now.Add(-18 * time.Hour),
			PreventionTips: []string{
				"Only download WhatsApp from official app stores",
				"Ignore forwarded messages about new WhatsApp versions",
				"Don't click links from unknown contacts",
				"Keep your app updated",
			},
		},
		{
			ID:             "alert-007",
			Title:          "OTP Theft Prevention Alert",
			Description:    "Recent surge in social engineering attacks targeting OTP codes",
			Severity:       "medium",
			Type:           "Social Engineering",
			TargetAudience: "All Users",
			ReportedCases:  6234,
			Timestamp:      now.Add(-24 * time.Hour),
			PreventionTips: []string{
				"Never share your OTP with anyone",
				"Banks never ask for OTP in calls or emails",
				"Use OTP only for intended transactions",
				"Report if OTP is received unexpectedly",
			},
		},
	}
}
