package domain

import "time"

// Question models a multiple-choice awareness question. CorrectOption is the
// index into Options of the designated correct answer.
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
	Category      string   `json:"category"`
}

// QuestionFilter narrows a question query. Zero values mean "no filter";
// Limit <= 0 means no cap.
type QuestionFilter struct {
	Category   string
	Difficulty string
	Limit      int
}

// Answer records one graded selection inside a quiz session.
type Answer struct {
	QuestionID string `json:"questionId"`
	Selected   int    `json:"selected"`
	Correct    bool   `json:"isCorrect"`
}

// SubmittedAnswer is one entry of a batch quiz submission.
type SubmittedAnswer struct {
	QuestionID string `json:"questionId"`
	Selected   int    `json:"selectedAnswer"`
}

// GradeEntry is the per-question outcome of a batch submission.
type GradeEntry struct {
	QuestionID string `json:"questionId"`
	Correct    bool   `json:"isCorrect"`
}

// GradeResult summarizes a batch quiz submission.
type GradeResult struct {
	Score          int          `json:"score"`
	TotalQuestions int          `json:"totalQuestions"`
	Percentage     int          `json:"percentage"`
	Results        []GradeEntry `json:"results"`
}

// ScamReportInput is the report form payload as submitted by a caller.
// Amount is a pointer so "absent" and "zero" stay distinguishable.
type ScamReportInput struct {
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Amount       *float64 `json:"amount,omitempty"`
	URL          string   `json:"url,omitempty"`
	Email        string   `json:"email,omitempty"`
	PhoneNumber  string   `json:"phoneNumber,omitempty"`
	IncidentDate string   `json:"incidentDate"`
	ReportedTo   string   `json:"reportedTo,omitempty"`
}

// ScamReport is a stored report with the identifier and timestamp the store
// assigned at insert time.
type ScamReport struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
	ScamReportInput
}

// ReportReceipt is returned to the caller after a successful submission.
type ReportReceipt struct {
	ReportID string `json:"reportId"`
	Message  string `json:"message"`
}

// ReportStatus is the public view of a stored report.
type ReportStatus struct {
	ReportID      string    `json:"reportId"`
	Status        string    `json:"status"`
	SubmittedDate time.Time `json:"submittedDate"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
}

// ReportStats aggregates submission counters. ByMonth keys are YYYY-MM.
type ReportStats struct {
	Total   int            `json:"total"`
	ByType  map[string]int `json:"byType"`
	ByMonth map[string]int `json:"byMonth"`
}

// TypeCount pairs a report type with its submission count.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// ReportSummary is the privacy-safe digest served instead of raw reports.
type ReportSummary struct {
	TotalReports int         `json:"totalReports"`
	CommonTypes  []TypeCount `json:"commonTypes"`
	RecentTrends string      `json:"recentTrends"`
	LastUpdated  time.Time   `json:"lastUpdated"`
}

// Recommendation is the post-incident guidance for one report type.
type Recommendation struct {
	Type            string            `json:"type"`
	Recommendations []string          `json:"recommendations"`
	ContactNumbers  map[string]string `json:"contactNumbers"`
}

// CrimeTip is a single actionable hint attached to a crime type.
type CrimeTip struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}

// CrimeType is one entry of the awareness catalog.
type CrimeType struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Emoji       string     `json:"emoji"`
	Description string     `json:"description"`
	Examples    []string   `json:"examples"`
	Signs       []string   `json:"signs"`
	Prevention  []string   `json:"prevention"`
	Tips        []CrimeTip `json:"tips"`
}

// ChecklistItem is one step of the safety checklist.
type ChecklistItem struct {
	ID            string   `json:"id"`
	Category      string   `json:"category"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Steps         []string `json:"steps"`
	Priority      string   `json:"priority"`
	EstimatedTime string   `json:"estimatedTime"`
}

// ChecklistFilter narrows a checklist query.
type ChecklistFilter struct {
	Category string
	Priority string
}

// ScamAlert is a published scam warning.
type ScamAlert struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Severity       string    `json:"severity"`
	Type           string    `json:"type"`
	TargetAudience string    `json:"targetAudience"`
	ReportedCases  int       `json:"reportedCases"`
	Timestamp      time.Time `json:"timestamp"`
	PreventionTips []string  `json:"preventionTips"`
}

// TrendUpdate is broadcast on the alert feed when new reports arrive.
type TrendUpdate struct {
	Type  string    `json:"type"`
	Total int       `json:"total"`
	At    time.Time `json:"at"`
}
