package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm-mcp/internal/entity"
)

const DefaultCatalogLimit = 10

type SearchPriceCatalogUseCase struct {
	Catalog CatalogRepositoryInterface
}

func NewSearchPriceCatalogUseCase(catalog CatalogRepositoryInterface) *SearchPriceCatalogUseCase {
	return &SearchPriceCatalogUseCase{Catalog: catalog}
}

func (uc *SearchPriceCatalogUseCase) Execute(ctx context.Context, input SearchPriceCatalogInput) ([]entity.CatalogItem, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultCatalogLimit
	}

	items, err := uc.Catalog.Search(ctx, input.Query, input.Category, limit)
	if err != nil {
		return nil, NewBackendError(err)
	}
	if items == nil {
		items = []entity.CatalogItem{}
	}
	return items, nil
}
