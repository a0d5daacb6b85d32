package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm-mcp/internal/entity"
)

const DefaultLeadLimit = 50

type GetLeadsUseCase struct {
	Leads  LeadRepositoryInterface
	Stages StageRepositoryInterface
}

func NewGetLeadsUseCase(leads LeadRepositoryInterface, stages StageRepositoryInterface) *GetLeadsUseCase {
	return &GetLeadsUseCase{Leads: leads, Stages: stages}
}

func (uc *GetLeadsUseCase) Execute(ctx context.Context, input GetLeadsInput) ([]entity.Lead, error) {
	filter := LeadFilter{
		VendedorID: input.VendedorID,
		Limit:      input.Limit,
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultLeadLimit
	}

	if input.StageSlug != "" {
		stage, err := uc.Stages.FindBySlug(ctx, input.StageSlug)
		if err != nil {
			return nil, NewBackendError(err)
		}
		// Slug inexistente descarta o filtro em vez de falhar. Um slug com
		// typo devolve a lista sem filtro de estágio.
		if stage != nil {
			filter.StageID = stage.ID
		}
	}

	leads, err := uc.Leads.Find(ctx, filter)
	if err != nil {
		return nil, NewBackendError(err)
	}
	if leads == nil {
		leads = []entity.Lead{}
	}
	return leads, nil
}
