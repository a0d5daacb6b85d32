package usecase

import "github.com/xavierca1/ligue-crm-mcp/internal/entity"

type GetLeadsInput struct {
	StageSlug  string `json:"stage_slug"`
	VendedorID string `json:"vendedor_id"`
	Limit      int    `json:"limit"`
}

type UpdateLeadStageInput struct {
	LeadID       string `json:"lead_id"`
	NewStageSlug string `json:"new_stage_slug"`
}

type UpdateLeadStageOutput struct {
	Message string       `json:"message"`
	Lead    *entity.Lead `json:"lead"`
}

type UpdateLeadCustomFieldsInput struct {
	LeadID       string              `json:"lead_id"`
	CustomFields entity.CustomFields `json:"custom_fields"`
}

type CreateLeadInput struct {
	Name         string              `json:"name"`
	VendedorID   string              `json:"vendedor_id"`
	Phone        string              `json:"phone"`
	Email        string              `json:"email"`
	StageSlug    string              `json:"stage_slug"`
	CustomFields entity.CustomFields `json:"custom_fields"`
	Notes        string              `json:"notes"`
}

type SearchPriceCatalogInput struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	Limit    int    `json:"limit"`
}

type GetLeadHistoryInput struct {
	LeadID string `json:"lead_id"`
}

// StageStats é o agregado por estágio do funil.
type StageStats struct {
	Count      int     `json:"count"`
	TotalValue float64 `json:"total_value"`
	StageName  string  `json:"stage_name"`
}

type PipelineStats map[string]*StageStats
