package memory

import (
	"context"
	"sync"
	"time"

	"cyberaware-service/internal/domain"
)

// ReportStore keeps scam reports in an append-only in-memory list with
// aggregate counters. Writes are serialized by the mutex.
type ReportStore struct {
	clock func() time.Time

	mu      sync.RWMutex
	reports []domain.ScamReport
	byID    map[string]int
	byType  map[string]int
	byMonth map[string]int
}

func NewReportStore() *ReportStore {
	return &ReportStore{
		clock:   time.Now,
		byID:    make(map[string]int),
		byType:  make(map[string]int),
		byMonth: make(map[string]int),
	}
}

// NewReportStoreWithClock is test-only for deterministic timestamps.
func NewReportStoreWithClock(now func() time.Time) *ReportStore {
	store := NewReportStore()
	store.clock = now
	return store
}

func (s *ReportStore) Insert(_ context.Context, input domain.ScamReportInput) (domain.ScamReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	report := domain.ScamReport{
		ID:              domain.NewReportID(now),
		SubmittedAt:     now,
		ScamReportInput: input,
	}
	s.reports = append(s.reports, report)
	s.byID[report.ID] = len(s.reports) - 1
	s.byType[report.Type]++
	s.byMonth[domain.MonthKey(now)]++
	return report, nil
}

func (s *ReportStore) Get(_ context.Context, reportID string) (domain.ScamReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byID[reportID]
	if !ok {
		return domain.ScamReport{}, domain.ErrReportNotFound
	}
	return s.reports[idx], nil
}

func (s *ReportStore) Stats(_ context.Context) (domain.ReportStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.ReportStats{
		Total:   len(s.reports),
		ByType:  make(map[string]int, len(s.byType)),
		ByMonth: make(map[string]int, len(s.byMonth)),
	}
	for k, v := range s.byType {
		stats.ByType[k] = v
	}
	for k, v := range s.byMonth {
		stats.ByMonth[k] = v
	}
	return stats, nil
}
