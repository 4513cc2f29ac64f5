package memory

import (
	"context"
	"strings"
	"testing"
	"time"

	"cyberaware-service/internal/domain"
)

func TestReportStoreInsertAssignsIDAndTimestamp(t *testing.T) {
	fixed := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	store := NewReportStoreWithClock(func() time.Time { return fixed })

	report, err := store.Insert(context.Background(), domain.ScamReportInput{
		Type:         "Phishing",
		Description:  "fake bank mail",
		IncidentDate: "2024-03-14",
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !strings.HasPrefix(report.ID, "REPORT-") {
		t.Fatalf("unexpected report ID %q", report.ID)
	}
	if !report.SubmittedAt.Equal(fixed) {
		t.Fatalf("expected clock timestamp, got %v", report.SubmittedAt)
	}

	got, err := store.Get(context.Background(), report.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Description != "fake bank mail" {
		t.Fatalf("unexpected report %+v", got)
	}
}

func TestReportStoreGetUnknownID(t *testing.T) {
	store := NewReportStore()
	if _, err := store.Get(context.Background(), "REPORT-0-NOPE"); err != domain.ErrReportNotFound {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
}

func TestReportStoreStats(t *testing.T) {
	fixed := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	store := NewReportStoreWithClock(func() time.Time { return fixed })

	for _, reportType := range []string{"Phishing", "Phishing", "SMS Fraud"} {
		if _, err := store.Insert(context.Background(), domain.ScamReportInput{
			Type:         reportType,
			Description:  "d",
			IncidentDate: "2024-03-14",
		}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	stats, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 3 {
		t.Fatalf("expected total 3, got %d", stats.Total)
	}
	if stats.ByType["Phishing"] != 2 || stats.ByType["SMS Fraud"] != 1 {
		t.Fatalf("unexpected type counters %v", stats.ByType)
	}
	if stats.ByMonth["2024-03"] != 3 {
		t.Fatalf("unexpected month counters %v", stats.ByMonth)
	}
}
