package usecase

import (
	"context"
	"fmt"
)

type UpdateLeadStageUseCase struct {
	Leads  LeadRepositoryInterface
	Stages StageRepositoryInterface
}

func NewUpdateLeadStageUseCase(leads LeadRepositoryInterface, stages StageRepositoryInterface) *UpdateLeadStageUseCase {
	return &UpdateLeadStageUseCase{Leads: leads, Stages: stages}
}

// Execute resolve o slug e move o lead. O histórico da mudança é gravado por
// trigger no banco, não aqui. Resolver e atualizar são duas consultas sem
// transação.
func (uc *UpdateLeadStageUseCase) Execute(ctx context.Context, input UpdateLeadStageInput) (*UpdateLeadStageOutput, error) {
	stage, err := uc.Stages.FindBySlug(ctx, input.NewStageSlug)
	if err != nil {
		return nil, NewBackendError(err)
	}
	if stage == nil {
		return nil, ErrStageNotFound(input.NewStageSlug)
	}

	lead, err := uc.Leads.UpdateStage(ctx, input.LeadID, stage.ID)
	if err != nil {
		return nil, NewBackendError(err)
	}
	if lead == nil {
		return nil, ErrLeadNotFound(input.LeadID)
	}

	return &UpdateLeadStageOutput{
		Message: fmt.Sprintf("Lead movido para o estágio %s", stage.Name),
		Lead:    lead,
	}, nil
}
