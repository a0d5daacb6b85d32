package usecase

import (
	"context"
	"encoding/json"
	"strconv"
)

// EstimatedValueField é o custom field somado no agregado do funil.
const EstimatedValueField = "valor_estimado"

// UnknownStageKey agrupa leads cujo estágio não resolveu no JOIN.
const UnknownStageKey = "unknown"

type GetPipelineStatsUseCase struct {
	Leads LeadRepositoryInterface
}

func NewGetPipelineStatsUseCase(leads LeadRepositoryInterface) *GetPipelineStatsUseCase {
	return &GetPipelineStatsUseCase{Leads: leads}
}

// Execute busca todos os leads com estágio e custom_fields e agrega no
// cliente por slug: contagem, soma de valor_estimado e nome do estágio.
// Valores ausentes ou não numéricos contam zero.
func (uc *GetPipelineStatsUseCase) Execute(ctx context.Context) (PipelineStats, error) {
	leads, err := uc.Leads.Find(ctx, LeadFilter{})
	if err != nil {
		return nil, NewBackendError(err)
	}

	stats := make(PipelineStats)
	for _, lead := range leads {
		key := UnknownStageKey
		name := ""
		if lead.Stage != nil && lead.Stage.Slug != "" {
			key = lead.Stage.Slug
			name = lead.Stage.Name
		}

		entry, ok := stats[key]
		if !ok {
			entry = &StageStats{StageName: name}
			stats[key] = entry
		}

		entry.Count++
		entry.TotalValue += coerceNumber(lead.CustomFields[EstimatedValueField])
	}
	return stats, nil
}

// coerceNumber aceita number, string numérica ou json.Number; o resto vale 0.
func coerceNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
