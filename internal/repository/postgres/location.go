package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type locationRepository struct {
	db *sql.DB
}

func NewLocationRepository(db *sql.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) GetByID(ctx context.Context, id int32) (*domain.Location, error) {
	l := &domain.Location{}
	query := `SELECT id, name, city, active, created_on, updated_on FROM locations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.Name, &l.City, &l.Active, &l.CreatedOn, &l.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *locationRepository) List(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, city, active, created_on, updated_on FROM locations WHERE active ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.City, &l.Active, &l.CreatedOn, &l.UpdatedOn); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}
