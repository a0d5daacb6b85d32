package database

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/xavierca1/ligue-crm-mcp/internal/entity"
)

type CatalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// Search busca somente itens ativos. O texto casa por substring
// (case-insensitive) em produto, descrição OU categoria; o filtro de
// categoria, quando presente, é igualdade exata em AND.
func (r *CatalogRepository) Search(ctx context.Context, query, category string, limit int) ([]entity.CatalogItem, error) {
	sqlQuery := `
		SELECT id, product, COALESCE(description, ''), COALESCE(category, ''),
		       active, price, promo_price
		FROM price_catalog
		WHERE active = TRUE
	`
	var args []any

	if query != "" {
		args = append(args, "%"+query+"%")
		n := strconv.Itoa(len(args))
		sqlQuery += " AND (product ILIKE $" + n +
			" OR description ILIKE $" + n +
			" OR category ILIKE $" + n + ")"
	}
	if category != "" {
		args = append(args, category)
		sqlQuery += " AND category = $" + strconv.Itoa(len(args))
	}

	args = append(args, limit)
	sqlQuery += " ORDER BY product LIMIT $" + strconv.Itoa(len(args))

	rows, err := r.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entity.CatalogItem
	for rows.Next() {
		var (
			item  entity.CatalogItem
			promo sql.NullFloat64
		)
		err := rows.Scan(
			&item.ID,
			&item.Product,
			&item.Description,
			&item.Category,
			&item.Active,
			&item.Price,
			&promo,
		)
		if err != nil {
			return nil, err
		}
		if promo.Valid {
			item.PromoPrice = &promo.Float64
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
