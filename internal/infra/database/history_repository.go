package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-crm-mcp/internal/entity"
)

type HistoryRepository struct {
	DB *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{DB: db}
}

// FindByLead devolve o histórico completo do lead, mais recente primeiro,
// com o nome de quem fez a mudança.
func (r *HistoryRepository) FindByLead(ctx context.Context, leadID string) ([]entity.LeadHistory, error) {
	query := `
		SELECT h.id, h.lead_id, h.change, COALESCE(h.user_id::text, ''),
		       COALESCE(v.name, ''), h.created_at
		FROM lead_history h
		LEFT JOIN vendedores v ON v.id = h.user_id
		WHERE h.lead_id = $1
		ORDER BY h.created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []entity.LeadHistory
	for rows.Next() {
		var entry entity.LeadHistory
		err := rows.Scan(
			&entry.ID,
			&entry.LeadID,
			&entry.Change,
			&entry.UserID,
			&entry.UserName,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
