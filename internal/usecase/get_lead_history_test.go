package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/ligue-crm-mcp/internal/entity"
)

func TestGetLeadHistory_ReturnsEntries(t *testing.T) {
	historyRepo := new(MockHistoryRepository)
	uc := NewGetLeadHistoryUseCase(historyRepo)

	now := time.Now()
	historyRepo.On("FindByLead", mock.Anything, "lead-1").Return([]entity.LeadHistory{
		{ID: "h-2", LeadID: "lead-1", Change: "Estágio: Lead → Orçamento", UserName: "Carlos", CreatedAt: now},
		{ID: "h-1", LeadID: "lead-1", Change: "Lead criado", UserName: "Carlos", CreatedAt: now.Add(-time.Hour)},
	}, nil)

	entries, err := uc.Execute(context.Background(), GetLeadHistoryInput{LeadID: "lead-1"})

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Carlos", entries[0].UserName)
}

func TestGetLeadHistory_NoEntries(t *testing.T) {
	historyRepo := new(MockHistoryRepository)
	uc := NewGetLeadHistoryUseCase(historyRepo)

	historyRepo.On("FindByLead", mock.Anything, "lead-sem-historico").Return(nil, nil)

	entries, err := uc.Execute(context.Background(), GetLeadHistoryInput{LeadID: "lead-sem-historico"})

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
