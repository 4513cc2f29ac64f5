package memory

import (
	"context"
	"testing"
	"time"

	"cyberaware-service/internal/domain"
)

func TestCatalogChecklistFilters(t *testing.T) {
	catalog := NewCatalog(time.Now())

	items, err := catalog.ChecklistItems(context.Background(), domain.ChecklistFilter{Priority: "high"})
	if err != nil {
		t.Fatalf("checklist: %v", err)
	}
	if len(items) == 0 {
		t.Fatalf("expected high-priority items")
	}
	for _, item := range items {
		if item.Priority != "high" {
			t.Fatalf("priority leak: %+v", item)
		}
	}

	// Category match is a case-insensitive substring, as the content pages
	// query it.
	items, err = catalog.ChecklistItems(context.Background(), domain.ChecklistFilter{Category: "network"})
	if err != nil {
		t.Fatalf("checklist: %v", err)
	}
	if len(items) != 1 || items[0].ID != "wifi-security" {
		t.Fatalf("expected wifi-security, got %+v", items)
	}
}

func TestCatalogAlertsPagination(t *testing.T) {
	catalog := NewCatalog(time.Now())

	page, total, err := catalog.Alerts(context.Background(), 3, 0)
	if err != nil {
		t.Fatalf("alerts: %v", err)
	}
	if len(page) != 3 || total != 7 {
		t.Fatalf("expected 3 of 7 alerts, got %d of %d", len(page), total)
	}

	rest, _, err := catalog.Alerts(context.Background(), 10, 5)
	if err != nil {
		t.Fatalf("alerts: %v", err)
	}
	if len(rest) != 2 {
		t.Fatalf("expected 2 trailing alerts, got %d", len(rest))
	}

	empty, total, err := catalog.Alerts(context.Background(), 10, 50)
	if err != nil {
		t.Fatalf("alerts: %v", err)
	}
	if len(empty) != 0 || total != 7 {
		t.Fatalf("expected empty page, got %d of %d", len(empty), total)
	}
}

func TestCatalogLookups(t *testing.T) {
	catalog := NewCatalog(time.Now())

	if _, err := catalog.CrimeType(context.Background(), "upi-fraud"); err != nil {
		t.Fatalf("crime type: %v", err)
	}
	if _, err := catalog.CrimeType(context.Background(), "nope"); err != domain.ErrCrimeTypeNotFound {
		t.Fatalf("expected ErrCrimeTypeNotFound, got %v", err)
	}
	if _, err := catalog.Alert(context.Background(), "alert-404"); err != domain.ErrAlertNotFound {
		t.Fatalf("expected ErrAlertNotFound, got %v", err)
	}
	if _, err := catalog.ChecklistItem(context.Background(), "backup-strategy"); err != nil {
		t.Fatalf("checklist item: %v", err)
	}

	byType, err := catalog.AlertsByType(context.Background(), "Phishing")
	if err != nil {
		t.Fatalf("alerts by type: %v", err)
	}
	if len(byType) != 2 {
		t.Fatalf("expected 2 phishing alerts, got %d", len(byType))
	}

	categories, err := catalog.ChecklistCategories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 10 {
		t.Fatalf("expected 10 distinct categories, got %v", categories)
	}
}
