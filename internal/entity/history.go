package entity

import "time"

// LeadHistory é um registro imutável de mudança em um lead. Quem escreve é o
// banco (trigger); este serviço só lê.
type LeadHistory struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"lead_id"`
	Change    string    `json:"change"`
	UserID    string    `json:"user_id,omitempty"`
	UserName  string    `json:"user_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
