package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm-mcp/internal/entity"
)

type GetLeadHistoryUseCase struct {
	History HistoryRepositoryInterface
}

func NewGetLeadHistoryUseCase(history HistoryRepositoryInterface) *GetLeadHistoryUseCase {
	return &GetLeadHistoryUseCase{History: history}
}

func (uc *GetLeadHistoryUseCase) Execute(ctx context.Context, input GetLeadHistoryInput) ([]entity.LeadHistory, error) {
	entries, err := uc.History.FindByLead(ctx, input.LeadID)
	if err != nil {
		return nil, NewBackendError(err)
	}
	if entries == nil {
		entries = []entity.LeadHistory{}
	}
	return entries, nil
}
