package entity

// Stage é um estágio do funil de vendas. O slug é o identificador estável
// usado pelas ferramentas (lead, orcamento, negociacao, fechado, curioso...).
// O conjunto vem do banco, não é fixo no código.
type Stage struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	Position int    `json:"position"`
}

// DefaultStageSlug é o estágio inicial de um lead recém-criado.
const DefaultStageSlug = "lead"
