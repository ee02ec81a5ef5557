package postgres

import (
	"context"
	"database/sql"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"

	"github.com/lib/pq"
)

type additionalProductRepository struct {
	db *sql.DB
}

func NewAdditionalProductRepository(db *sql.DB) repository.AdditionalProductRepository {
	return &additionalProductRepository{db: db}
}

func (r *additionalProductRepository) List(ctx context.Context) ([]domain.AdditionalProduct, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, fee, active, created_on FROM additional_products WHERE active ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

// GetByIDs returns the products matching ids. Callers compare result length
// against the request to detect unknown ids.
func (r *additionalProductRepository) GetByIDs(ctx context.Context, ids []int32) ([]domain.AdditionalProduct, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, fee, active, created_on FROM additional_products WHERE id = ANY($1) ORDER BY id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]domain.AdditionalProduct, error) {
	var products []domain.AdditionalProduct
	for rows.Next() {
		var p domain.AdditionalProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Fee, &p.Active, &p.CreatedOn); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
