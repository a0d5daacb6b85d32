package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/ligue-crm-mcp/internal/entity"
)

type StageRepository struct {
	DB *sql.DB
}

func NewStageRepository(db *sql.DB) *StageRepository {
	return &StageRepository{DB: db}
}

// FindBySlug devolve (nil, nil) quando o slug não existe.
func (r *StageRepository) FindBySlug(ctx context.Context, slug string) (*entity.Stage, error) {
	query := `
		SELECT id, slug, name, COALESCE(color, ''), position
		FROM stages
		WHERE slug = $1
	`

	var stage entity.Stage
	err := r.DB.QueryRowContext(ctx, query, slug).Scan(
		&stage.ID,
		&stage.Slug,
		&stage.Name,
		&stage.Color,
		&stage.Position,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stage, nil
}
