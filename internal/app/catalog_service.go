package app

import (
	"context"

	"cyberaware-service/internal/domain"
)

// CatalogRepository serves the static awareness content: crime types, the
// safety checklist, and published alerts.
type CatalogRepository interface {
	CrimeTypes(ctx context.Context) ([]domain.CrimeType, error)
	CrimeType(ctx context.Context, id string) (domain.CrimeType, error)
	ChecklistItems(ctx context.Context, filter domain.ChecklistFilter) ([]domain.ChecklistItem, error)
	ChecklistItem(ctx context.Context, id string) (domain.ChecklistItem, error)
	ChecklistCategories(ctx context.Context) ([]string, error)
	Alerts(ctx context.Context, limit, offset int) ([]domain.ScamAlert, int, error)
	Alert(ctx context.Context, id string) (domain.ScamAlert, error)
	AlertsByType(ctx context.Context, alertType string) ([]domain.ScamAlert, error)
}

// CatalogService is a thin read facade over the catalog repository.
type CatalogService struct {
	catalog CatalogRepository
}

func NewCatalogService(catalog CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) CrimeTypes(ctx context.Context) ([]domain.CrimeType, error) {
	return s.catalog.CrimeTypes(ctx)
}

func (s *CatalogService) CrimeType(ctx context.Context, id string) (domain.CrimeType, error) {
	return s.catalog.CrimeType(ctx, id)
}

func (s *CatalogService) ChecklistItems(ctx context.Context, filter domain.ChecklistFilter) ([]domain.ChecklistItem, error) {
	return s.catalog.ChecklistItems(ctx, filter)
}

func (s *CatalogService) ChecklistItem(ctx context.Context, id string) (domain.ChecklistItem, error) {
	return s.catalog.ChecklistItem(ctx, id)
}

func (s *CatalogService) ChecklistCategories(ctx context.Context) ([]string, error) {
	return s.catalog.ChecklistCategories(ctx)
}

func (s *CatalogService) Alerts(ctx context.Context, limit, offset int) ([]domain.ScamAlert, int, error) {
	return s.catalog.Alerts(ctx, limit, offset)
}

func (s *CatalogService) Alert(ctx context.Context, id string) (domain.ScamAlert, error) {
	return s.catalog.Alert(ctx, id)
}

func (s *CatalogService) AlertsByType(ctx context.Context, alertType string) ([]domain.ScamAlert, error) {
	return s.catalog.AlertsByType(ctx, alertType)
}
