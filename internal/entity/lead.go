package entity

import (
	"time"
)

type Lead struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Phone        string       `json:"phone,omitempty"`
	Email        string       `json:"email,omitempty"`
	StageID      string       `json:"stage_id,omitempty"`
	VendedorID   string       `json:"vendedor_id,omitempty"`
	CustomFields CustomFields `json:"custom_fields,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	Position     int          `json:"position"`
	CreatedAt    time.Time    `json:"created_at"`

	// Preenchidos pelo JOIN com stages/vendedores
	Stage    *StageInfo    `json:"stage,omitempty"`
	Vendedor *VendedorInfo `json:"vendedor,omitempty"`
}

// StageInfo é a visão reduzida do estágio anexada ao lead.
type StageInfo struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color,omitempty"`
}

// VendedorInfo é a visão reduzida do vendedor anexada ao lead.
type VendedorInfo struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}
