package memory

import "cyberaware-service/internal/domain"

// SeedQuestions returns the built-in awareness question bank used when no
// Postgres bank is configured.
func SeedQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:   "q1",
			Text: "What is the most common way hackers steal passwords online?",
			Options: []string{
				"Phishing emails and fake websites",
				"Breaking into data centers",
				"Hacking your WiFi router",
				"Using a microscope to see passwords",
			},
			CorrectOption: 0,
			Explanation:   "Phishing emails and fake websites are the most common methods used by hackers to trick users into revealing their passwords. Always verify URLs and sender identities.",
			Difficulty:    "easy",
			Category:      "Phishing",
		},
		{
			ID:   "q2",
			Text: "What does 2FA (Two-Factor Authentication) provide?",
			Options: []string{
				"A second email address",
				"Protection using something you know AND something you have",
				"Double the storage space",
				"Two operating systems",
			},
			CorrectOption: 1,
			Explanation:   "2FA combines something you know (password) with something you have (phone, security key), making it much harder for attackers to gain access to your accounts.",
			Difficulty:    "easy",
			Category:      "Account Security",
		},
		{
			ID:   "q3",
			Text: "What is a characteristic of a strong password?",
			Options: []string{
				"Your birth year and pet name",
				"A simple word like 'password123'",
				"12+ characters with uppercase, lowercase, numbers, and symbols",
				"Your username repeated twice",
			},
			CorrectOption: 2,
			Explanation:   "A strong password should have at least 12 characters and include a mix of uppercase letters, lowercase letters, numbers, and special characters to resist brute-force attacks.",
			Difficulty:    "easy",
			Category:      "Password Security",
		},
		{
			ID:   "q4",
			Text: "What should you do if you receive a suspicious email?",
			Options: []string{
				"Click the link to verify it's real",
				"Reply and ask for more information",
				"Don't click links, verify through official channels",
				"Forward it to everyone you know",
			},
			CorrectOption: 2,
			Explanation:   "Never click links in suspicious emails. Instead, go to the official website directly or call the organization to verify if the request is legitimate.",
			Difficulty:    "easy",
			Category:      "Phishing",
		},
		{
			ID:   "q5",
			Text: "What is ransomware?",
			Options: []string{
				"A free antivirus software",
				"Malware that encrypts files and demands payment for decryption",
				"A backup service for your files",
				"A type of password manager",
			},
			CorrectOption: 1,
			Explanation:   "Ransomware is malicious software that encrypts your files, making them inaccessible, and then demands payment (ransom) for the decryption key.",
			Difficulty:    "medium",
			Category:      "Malware",
		},
		{
			ID:   "q6",
			Text: "How can you protect yourself from ransomware attacks? (Select all that apply)",
			Options: []string{
				"Regular backups of important files",
				"Keeping software updated",
				"Not opening suspicious attachments",
				"All of the above",
			},
			CorrectOption: 3,
			Explanation:   "All three measures are important: regular backups allow recovery without paying ransom, updates patch security vulnerabilities, and avoiding suspicious attachments prevents infection.",
			Difficulty:    "medium",
			Category:      "Malware",
		},
		{
			ID:   "q7",
			Text: "What is social engineering in cybersecurity?",
			Options: []string{
				"Building social media networks",
				"Manipulating people into divulging confidential information",
				"Engineering social apps",
				"Studying human behavior",
			},
			CorrectOption: 1,
			Explanation:   "Social engineering is the practice of manipulating people into revealing sensitive information or performing actions that compromise security, often through psychological tactics.",
			Difficulty:    "medium",
			Category:      "Social Engineering",
		},
		{
			ID:   "q8",
			Text: "What should you never do on a public WiFi network?",
			Options: []string{
				"Browse websites",
				"Check personal financial accounts or enter passwords",
				"Read emails",
				"Watch videos",
			},
			CorrectOption: 1,
			Explanation:   "On public WiFi, never access sensitive accounts or enter passwords as data can be intercepted. Use a VPN if you must access sensitive information.",
			Difficulty:    "medium",
			Category:      "Network Security",
		},
		{
			ID:   "q9",
			Text: "What is identity theft?",
			Options: []string{
				"Stealing someone's wallet",
				"Using someone's personal information without permission to commit fraud",
				"Taking someone's photo",
				"Impersonating someone in person",
			},
			CorrectOption: 1,
			Explanation:   "Identity theft is when someone uses your personal information (SSN, credit card, etc.) without permission to commit fraud, open accounts, or make unauthorized purchases.",
			Difficulty:    "medium",
			Category:      "Identity Theft",
		},
		{
			ID:   "q10",
			Text: "How should you respond if you suspect a deepfake video call?",
			Options: []string{
				"Send money immediately as requested",
				"Verify through an alternative communication method with a known contact",
				"Ignore it completely",
				"Ask the caller for their password",
			},
			CorrectOption: 1,
			Explanation:   "If you suspect a deepfake, verify the request through another known contact method. Never make decisions based on unexpected video calls requesting money.",
			Difficulty:    "hard",
			Category:      "Deepfake Scams",
		},
		{
			ID:   "q11",
			Text: "What is HTTPS and why is it important?",
			Options: []string{
				"A type of file format",
				"A protocol that encrypts data between your browser and website",
				"A password security system",
				"A backup service",
			},
			CorrectOption: 1,
			Explanation:   "HTTPS encrypts data transmitted between your browser and websites, protecting sensitive information from being intercepted by hackers.",
			Difficulty:    "hard",
			Category:      "Web Security",
		},
		{
			ID:   "q12",
			Text: "What is a zero-day vulnerability?",
			Options: []string{
				"A hack that happens at midnight",
				"A previously unknown security flaw exploited before a patch exists",
				"A daily security update",
				"A type of password",
			},
			CorrectOption: 1,
			Explanation:   "A zero-day vulnerability is a security flaw that is unknown to the software vendor and has not been patched, making it particularly dangerous.",
			Difficulty:    "hard",
			Category:      "Vulnerabilities",
		},
	}
}
