package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm-mcp/internal/entity"
)

type UpdateLeadCustomFieldsUseCase struct {
	Leads LeadRepositoryInterface
}

func NewUpdateLeadCustomFieldsUseCase(leads LeadRepositoryInterface) *UpdateLeadCustomFieldsUseCase {
	return &UpdateLeadCustomFieldsUseCase{Leads: leads}
}

// Execute lê os custom_fields atuais, aplica merge raso (chaves novas vencem)
// e grava o resultado. Leitura e escrita são consultas separadas, sem lock
// otimista: chamadas concorrentes no mesmo lead podem perder atualização.
// Tradeoff aceito para uso humano de CRM, não uma garantia.
func (uc *UpdateLeadCustomFieldsUseCase) Execute(ctx context.Context, input UpdateLeadCustomFieldsInput) (*entity.Lead, error) {
	current, err := uc.Leads.FindByID(ctx, input.LeadID)
	if err != nil {
		return nil, NewBackendError(err)
	}
	if current == nil {
		return nil, ErrLeadNotFound(input.LeadID)
	}

	merged := current.CustomFields.Merge(input.CustomFields)

	updated, err := uc.Leads.UpdateCustomFields(ctx, input.LeadID, merged)
	if err != nil {
		return nil, NewBackendError(err)
	}
	if updated == nil {
		return nil, ErrLeadNotFound(input.LeadID)
	}
	return updated, nil
}
