package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xavierca1/ligue-crm-mcp/internal/entity"
	"github.com/xavierca1/ligue-crm-mcp/internal/usecase"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadSelect = `
	SELECT l.id, l.name, COALESCE(l.phone, ''), COALESCE(l.email, ''),
	       COALESCE(l.stage_id::text, ''), COALESCE(l.vendedor_id::text, ''),
	       l.custom_fields, COALESCE(l.notes, ''), l.position, l.created_at,
	       s.name, s.slug, s.color,
	       v.name, v.role
	FROM leads l
	LEFT JOIN stages s ON s.id = l.stage_id
	LEFT JOIN vendedores v ON v.id = l.vendedor_id
`

// Find lista leads com estágio e vendedor já juntados, mais recentes
// primeiro. Filtros zerados não entram no WHERE; Limit 0 não limita.
func (r *LeadRepository) Find(ctx context.Context, filter usecase.LeadFilter) ([]entity.Lead, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.StageID != "" {
		args = append(args, filter.StageID)
		conditions = append(conditions, "l.stage_id = $"+strconv.Itoa(len(args)))
	}
	if filter.VendedorID != "" {
		args = append(args, filter.VendedorID)
		conditions = append(conditions, "l.vendedor_id = $"+strconv.Itoa(len(args)))
	}

	query := leadSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY l.created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, rows.Err()
}

// FindByID devolve (nil, nil) quando o lead não existe.
func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	row := r.DB.QueryRowContext(ctx, leadSelect+" WHERE l.id = $1", id)
	lead, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, phone, email, stage_id, vendedor_id,
		                   custom_fields, notes, position, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, NULLIF($8, ''), $9, $10)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		lead.ID,
		lead.Name,
		lead.Phone,
		lead.Email,
		lead.StageID,
		lead.VendedorID,
		lead.CustomFields,
		lead.Notes,
		lead.Position,
		lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao criar lead: %w", err)
	}
	return nil
}

// UpdateStage troca o estágio e devolve o lead juntado; (nil, nil) quando o
// lead não existe.
func (r *LeadRepository) UpdateStage(ctx context.Context, leadID, stageID string) (*entity.Lead, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET stage_id = $1 WHERE id = $2`, stageID, leadID)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, leadID)
}

// UpdateCustomFields grava o mapa já mesclado pelo caso de uso; a escrita
// substitui a coluna inteira.
func (r *LeadRepository) UpdateCustomFields(ctx context.Context, leadID string, fields entity.CustomFields) (*entity.Lead, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET custom_fields = $1 WHERE id = $2`, fields, leadID)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, leadID)
}

func (r *LeadRepository) CountByStage(ctx context.Context, stageID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leads WHERE stage_id = $1`, stageID).Scan(&count)
	return count, err
}

// scanLead aceita *sql.Row ou *sql.Rows.
func scanLead(row interface{ Scan(...any) error }) (*entity.Lead, error) {
	var (
		lead         entity.Lead
		stageName    sql.NullString
		stageSlug    sql.NullString
		stageColor   sql.NullString
		vendedorName sql.NullString
		vendedorRole sql.NullString
	)

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Phone,
		&lead.Email,
		&lead.StageID,
		&lead.VendedorID,
		&lead.CustomFields,
		&lead.Notes,
		&lead.Position,
		&lead.CreatedAt,
		&stageName,
		&stageSlug,
		&stageColor,
		&vendedorName,
		&vendedorRole,
	)
	if err != nil {
		return nil, err
	}

	if stageSlug.Valid {
		lead.Stage = &entity.StageInfo{
			Name:  stageName.String,
			Slug:  stageSlug.String,
			Color: stageColor.String,
		}
	}
	if vendedorName.Valid {
		lead.Vendedor = &entity.VendedorInfo{
			Name: vendedorName.String,
			Role: vendedorRole.String,
		}
	}
	return &lead, nil
}
