package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/ligue-crm-mcp/internal/entity"
)

func TestCreateLead_PositionIsStageCount(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	stageRepo := new(MockStageRepository)
	uc := NewCreateLeadUseCase(leadRepo, stageRepo)

	stage := &entity.Stage{ID: "stage-1", Slug: "lead", Name: "Lead", Color: "#00aa55"}
	stageRepo.On("FindBySlug", mock.Anything, "lead").Return(stage, nil)
	leadRepo.On("CountByStage", mock.Anything, "stage-1").Return(3, nil)
	leadRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := uc.Execute(context.Background(), CreateLeadInput{
		Name:       "Dona Maria",
		VendedorID: "v-1",
	})

	require.NoError(t, err)
	// Entra no fim do estágio: posição = contagem atual
	assert.Equal(t, 3, created.Position)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "lead", created.Stage.Slug)
	assert.Equal(t, "#00aa55", created.Stage.Color)
}

func TestCreateLead_DefaultsToLeadStage(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	stageRepo := new(MockStageRepository)
	uc := NewCreateLeadUseCase(leadRepo, stageRepo)

	stage := &entity.Stage{ID: "stage-1", Slug: "lead", Name: "Lead"}
	stageRepo.On("FindBySlug", mock.Anything, "lead").Return(stage, nil)
	leadRepo.On("CountByStage", mock.Anything, "stage-1").Return(0, nil)
	leadRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Execute(context.Background(), CreateLeadInput{
		Name:       "Seu João",
		VendedorID: "v-2",
		StageSlug:  "",
	})

	require.NoError(t, err)
	stageRepo.AssertCalled(t, "FindBySlug", mock.Anything, "lead")
}

func TestCreateLead_StageNotFound(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	stageRepo := new(MockStageRepository)
	uc := NewCreateLeadUseCase(leadRepo, stageRepo)

	stageRepo.On("FindBySlug", mock.Anything, "vip").Return(nil, nil)

	_, err := uc.Execute(context.Background(), CreateLeadInput{
		Name:       "Dona Maria",
		VendedorID: "v-1",
		StageSlug:  "vip",
	})

	require.Error(t, err)
	domainErr, ok := err.(*DomainError)
	require.True(t, ok)
	assert.Equal(t, CodeStageNotFound, domainErr.Code)
	leadRepo.AssertNotCalled(t, "CountByStage", mock.Anything, mock.Anything)
	leadRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLead_CarriesOptionalFields(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	stageRepo := new(MockStageRepository)
	uc := NewCreateLeadUseCase(leadRepo, stageRepo)

	stage := &entity.Stage{ID: "stage-2", Slug: "orcamento", Name: "Orçamento"}
	stageRepo.On("FindBySlug", mock.Anything, "orcamento").Return(stage, nil)
	leadRepo.On("CountByStage", mock.Anything, "stage-2").Return(1, nil)

	var inserted *entity.Lead
	leadRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*entity.Lead)
		}).
		Return(nil)

	_, err := uc.Execute(context.Background(), CreateLeadInput{
		Name:         "Dona Maria",
		VendedorID:   "v-1",
		Phone:        "11988887777",
		Email:        "maria@example.com",
		StageSlug:    "orcamento",
		CustomFields: entity.CustomFields{"tipo_tinta": "acrílica"},
		Notes:        "indicação",
	})

	require.NoError(t, err)
	require.NotNil(t, inserted)
	assert.Equal(t, "11988887777", inserted.Phone)
	assert.Equal(t, "stage-2", inserted.StageID)
	assert.Equal(t, "acrílica", inserted.CustomFields["tipo_tinta"])
	assert.Equal(t, 1, inserted.Position)
}
