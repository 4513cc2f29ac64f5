package app

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"cyberaware-service/internal/domain"
)

// ReportRepository stores scam reports. Insert assigns the identifier and
// submission timestamp and must serialize writes.
type ReportRepository interface {
	Insert(ctx context.Context, input domain.ScamReportInput) (domain.ScamReport, error)
	Get(ctx context.Context, reportID string) (domain.ScamReport, error)
	Stats(ctx context.Context) (domain.ReportStats, error)
}

// ReportService validates, normalizes, and stores scam reports, and serves
// the derived statistics and recommendations.
type ReportService struct {
	reports ReportRepository
	feed    *AlertFeed
	now     func() time.Time
}

func NewReportService(reports ReportRepository, feed *AlertFeed) *ReportService {
	return &ReportService{reports: reports, feed: feed, now: time.Now}
}

// ValidateReport checks the submission preconditions in a fixed order and
// returns the first failure: type, description, incident date, amount. It
// never aggregates errors; callers surface the message verbatim.
func ValidateReport(input domain.ScamReportInput) *domain.ValidationError {
	if input.Type == "" {
		return &domain.ValidationError{Field: "type", Message: "Please select scam type."}
	}
	if strings.TrimSpace(input.Description) == "" {
		return &domain.ValidationError{Field: "description", Message: "Please describe what happened."}
	}
	if input.IncidentDate == "" {
		return &domain.ValidationError{Field: "incidentDate", Message: "Please provide the incident date."}
	}
	if input.Amount != nil && *input.Amount < 0 {
		return &domain.ValidationError{Field: "amount", Message: "Amount cannot be negative."}
	}
	return nil
}

// NormalizeReport trims the optional contact fields, converting
// empty-after-trim values to absent, and drops a NaN amount. Type,
// description, and incident date pass through untouched, so a submission
// that validated before normalization still validates after it.
func NormalizeReport(input domain.ScamReportInput) domain.ScamReportInput {
	out := input
	out.URL = strings.TrimSpace(input.URL)
	out.Email = strings.TrimSpace(input.Email)
	out.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	out.ReportedTo = strings.TrimSpace(input.ReportedTo)
	if out.Amount != nil && math.IsNaN(*out.Amount) {
		out.Amount = nil
	}
	return out
}

// Submit validates and normalizes the report, hands it to the store, and
// publishes a trend update on the alert feed.
func (s *ReportService) Submit(ctx context.Context, input domain.ScamReportInput) (domain.ReportReceipt, error) {
	if err := ValidateReport(input); err != nil {
		return domain.ReportReceipt{}, err
	}
	report, err := s.reports.Insert(ctx, NormalizeReport(input))
	if err != nil {
		return domain.ReportReceipt{}, fmt.Errorf("store report: %w", err)
	}

	if s.feed != nil {
		total := 0
		if stats, err := s.reports.Stats(ctx); err == nil {
			total = stats.Total
		}
		s.feed.Publish(AlertEvent{
			Kind:  EventReportTrend,
			Trend: &domain.TrendUpdate{Type: report.Type, Total: total, At: s.now()},
		})
	}

	return domain.ReportReceipt{
		ReportID: report.ID,
		Message: fmt.Sprintf("Your report has been recorded with ID: %s. Thank you for helping keep the community safe!",
			report.ID),
	}, nil
}

// Status looks up a stored report and returns its public view.
func (s *ReportService) Status(ctx context.Context, reportID string) (domain.ReportStatus, error) {
	report, err := s.reports.Get(ctx, reportID)
	if err != nil {
		return domain.ReportStatus{}, err
	}
	return domain.ReportStatus{
		ReportID:      report.ID,
		Status:        "Under Review",
		SubmittedDate: report.SubmittedAt,
		Description:   report.Description,
		Type:          report.Type,
	}, nil
}

// Stats returns the raw submission counters.
func (s *ReportService) Stats(ctx context.Context) (domain.ReportStats, error) {
	return s.reports.Stats(ctx)
}

// Summary returns the privacy-safe digest served instead of raw reports: the
// five most common types plus a fixed trend line.
func (s *ReportService) Summary(ctx context.Context) (domain.ReportSummary, error) {
	stats, err := s.reports.Stats(ctx)
	if err != nil {
		return domain.ReportSummary{}, err
	}
	common := make([]domain.TypeCount, 0, len(stats.ByType))
	for reportType, count := range stats.ByType {
		common = append(common, domain.TypeCount{Type: reportType, Count: count})
	}
	sort.Slice(common, func(i, j int) bool {
		if common[i].Count != common[j].Count {
			return common[i].Count > common[j].Count
		}
		return common[i].Type < common[j].Type
	})
	if len(common) > 5 {
		common = common[:5]
	}
	return domain.ReportSummary{
		TotalReports: stats.Total,
		CommonTypes:  common,
		RecentTrends: "Phishing and SMS fraud remain the most reported scams",
		LastUpdated:  s.now(),
	}, nil
}
