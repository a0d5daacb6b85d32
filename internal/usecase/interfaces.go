package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm-mcp/internal/entity"
)

// LeadFilter restringe a listagem de leads. Campos zerados não filtram;
// Limit 0 significa sem limite.
type LeadFilter struct {
	StageID    string
	VendedorID string
	Limit      int
}

// Convenção dos repositórios: lookups que não acham nada devolvem (nil, nil);
// erro só quando a consulta em si falha.
type LeadRepositoryInterface interface {
	Find(ctx context.Context, filter LeadFilter) ([]entity.Lead, error)
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	Create(ctx context.Context, lead *entity.Lead) error
	UpdateStage(ctx context.Context, leadID, stageID string) (*entity.Lead, error)
	UpdateCustomFields(ctx context.Context, leadID string, fields entity.CustomFields) (*entity.Lead, error)
	CountByStage(ctx context.Context, stageID string) (int, error)
}

type StageRepositoryInterface interface {
	FindBySlug(ctx context.Context, slug string) (*entity.Stage, error)
}

type CatalogRepositoryInterface interface {
	Search(ctx context.Context, query, category string, limit int) ([]entity.CatalogItem, error)
}

type HistoryRepositoryInterface interface {
	FindByLead(ctx context.Context, leadID string) ([]entity.LeadHistory, error)
}
