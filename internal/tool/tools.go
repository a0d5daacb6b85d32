package tool

import (
	"context"
	"encoding/json"

	"github.com/xavierca1/ligue-crm-mcp/internal/entity"
	"github.com/xavierca1/ligue-crm-mcp/internal/usecase"
)

// Handlers agrupa os casos de uso por trás das sete ferramentas.
type Handlers struct {
	GetLeads               *usecase.GetLeadsUseCase
	UpdateLeadStage        *usecase.UpdateLeadStageUseCase
	UpdateLeadCustomFields *usecase.UpdateLeadCustomFieldsUseCase
	CreateLead             *usecase.CreateLeadUseCase
	SearchPriceCatalog     *usecase.SearchPriceCatalogUseCase
	GetLeadHistory         *usecase.GetLeadHistoryUseCase
	GetPipelineStats       *usecase.GetPipelineStatsUseCase
}

// NewRegistryWithTools monta o registro com as sete ferramentas do CRM.
func NewRegistryWithTools(h Handlers) *Registry {
	r := NewRegistry()

	r.Register(Definition{
		Name:        "get_leads",
		Description: "Lista leads do CRM, com filtro opcional por estágio e vendedor",
		Fields: []Field{
			{Name: "stage_slug", Type: TypeString, Description: "Slug do estágio (lead, orcamento, negociacao, fechado, curioso)"},
			{Name: "vendedor_id", Type: TypeString, Description: "ID do vendedor dono do lead"},
			{Name: "limit", Type: TypeNumber, Default: float64(usecase.DefaultLeadLimit), Description: "Máximo de leads retornados"},
		},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			return h.GetLeads.Execute(ctx, usecase.GetLeadsInput{
				StageSlug:  argString(args, "stage_slug"),
				VendedorID: argString(args, "vendedor_id"),
				Limit:      argInt(args, "limit"),
			})
		},
	})

	r.Register(Definition{
		Name:        "update_lead_stage",
		Description: "Move um lead para outro estágio do funil",
		Fields: []Field{
			{Name: "lead_id", Type: TypeString, Required: true, Description: "ID do lead"},
			{Name: "new_stage_slug", Type: TypeString, Required: true, Description: "Slug do estágio de destino"},
		},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			return h.UpdateLeadStage.Execute(ctx, usecase.UpdateLeadStageInput{
				LeadID:       argString(args, "lead_id"),
				NewStageSlug: argString(args, "new_stage_slug"),
			})
		},
	})

	r.Register(Definition{
		Name:        "update_lead_custom_fields",
		Description: "Atualiza campos personalizados de um lead (merge, não substitui)",
		Fields: []Field{
			{Name: "lead_id", Type: TypeString, Required: true, Description: "ID do lead"},
			{Name: "custom_fields", Type: TypeObject, Required: true, Description: "Campos a atualizar (chaves existentes são preservadas)"},
		},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			return h.UpdateLeadCustomFields.Execute(ctx, usecase.UpdateLeadCustomFieldsInput{
				LeadID:       argString(args, "lead_id"),
				CustomFields: argObject(args, "custom_fields"),
			})
		},
	})

	r.Register(Definition{
		Name:        "create_lead",
		Description: "Cria um novo lead no funil",
		Fields: []Field{
			{Name: "name", Type: TypeString, Required: true, Description: "Nome do lead"},
			{Name: "vendedor_id", Type: TypeString, Required: true, Description: "ID do vendedor responsável"},
			{Name: "phone", Type: TypeString, Description: "Telefone"},
			{Name: "email", Type: TypeString, Description: "E-mail"},
			{Name: "stage_slug", Type: TypeString, Default: entity.DefaultStageSlug, Description: "Slug do estágio inicial"},
			{Name: "custom_fields", Type: TypeObject, Description: "Campos personalizados iniciais"},
			{Name: "notes", Type: TypeString, Description: "Observações"},
		},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			return h.CreateLead.Execute(ctx, usecase.CreateLeadInput{
				Name:         argString(args, "name"),
				VendedorID:   argString(args, "vendedor_id"),
				Phone:        argString(args, "phone"),
				Email:        argString(args, "email"),
				StageSlug:    argString(args, "stage_slug"),
				CustomFields: argObject(args, "custom_fields"),
				Notes:        argString(args, "notes"),
			})
		},
	})

	r.Register(Definition{
		Name:        "search_price_catalog",
		Description: "Busca produtos ativos na tabela de preços",
		Fields: []Field{
			{Name: "query", Type: TypeString, Required: true, Description: "Texto buscado em produto, descrição e categoria"},
			{Name: "category", Type: TypeString, Description: "Filtro exato por categoria"},
			{Name: "limit", Type: TypeNumber, Default: float64(usecase.DefaultCatalogLimit), Description: "Máximo de itens retornados"},
		},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			return h.SearchPriceCatalog.Execute(ctx, usecase.SearchPriceCatalogInput{
				Query:    argString(args, "query"),
				Category: argString(args, "category"),
				Limit:    argInt(args, "limit"),
			})
		},
	})

	r.Register(Definition{
		Name:        "get_lead_history",
		Description: "Histórico de mudanças de um lead, mais recente primeiro",
		Fields: []Field{
			{Name: "lead_id", Type: TypeString, Required: true, Description: "ID do lead"},
		},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			return h.GetLeadHistory.Execute(ctx, usecase.GetLeadHistoryInput{
				LeadID: argString(args, "lead_id"),
			})
		},
	})

	r.Register(Definition{
		Name:        "get_pipeline_stats",
		Description: "Agregado do funil por estágio: contagem e valor estimado total",
		Fields:      []Field{},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			return h.GetPipelineStats.Execute(ctx)
		},
	})

	return r
}

// Os argumentos já passaram pela validação de tipo; os helpers abaixo só
// extraem com default zero.

func argString(args map[string]any, name string) string {
	v, _ := args[name].(string)
	return v
}

func argInt(args map[string]any, name string) int {
	switch v := args[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
	}
	return 0
}

func argObject(args map[string]any, name string) entity.CustomFields {
	if v, ok := args[name].(map[string]any); ok {
		return entity.CustomFields(v)
	}
	return nil
}
