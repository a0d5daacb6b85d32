package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/ligue-crm-mcp/internal/entity"
)

type CreateLeadUseCase struct {
	Leads  LeadRepositoryInterface
	Stages StageRepositoryInterface
}

func NewCreateLeadUseCase(leads LeadRepositoryInterface, stages StageRepositoryInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{Leads: leads, Stages: stages}
}

// Execute cria o lead no fim do estágio de destino: position recebe a
// contagem atual de leads do estágio. Contar e inserir são consultas
// separadas; criações concorrentes no mesmo estágio podem colidir na posição.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	slug := input.StageSlug
	if slug == "" {
		slug = entity.DefaultStageSlug
	}

	stage, err := uc.Stages.FindBySlug(ctx, slug)
	if err != nil {
		return nil, NewBackendError(err)
	}
	if stage == nil {
		return nil, ErrStageNotFound(slug)
	}

	position, err := uc.Leads.CountByStage(ctx, stage.ID)
	if err != nil {
		return nil, NewBackendError(err)
	}

	lead := &entity.Lead{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		StageID:      stage.ID,
		VendedorID:   input.VendedorID,
		CustomFields: input.CustomFields,
		Notes:        input.Notes,
		Position:     position,
		CreatedAt:    time.Now(),
	}

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, NewBackendError(err)
	}

	lead.Stage = &entity.StageInfo{
		Name:  stage.Name,
		Slug:  stage.Slug,
		Color: stage.Color,
	}
	return lead, nil
}
