package postgres

import (
	"context"
	"database/sql"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type referenceRepository struct {
	db *sql.DB
}

func NewReferenceRepository(db *sql.DB) repository.ReferenceRepository {
	return &referenceRepository{db: db}
}

// listNamed runs a two-column id/name query shared by the flat lookup tables.
func (r *referenceRepository) listNamed(ctx context.Context, query string, args ...interface{}) ([]int32, []string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var ids []int32
	var names []string
	for rows.Next() {
		var id int32
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, nil, err
		}
		ids = append(ids, id)
		names = append(names, name)
	}
	return ids, names, rows.Err()
}

func (r *referenceRepository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	ids, names, err := r.listNamed(ctx, `SELECT id, name FROM brands ORDER BY name`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Brand, len(ids))
	for i := range ids {
		out[i] = domain.Brand{ID: ids[i], Name: names[i]}
	}
	return out, nil
}

func (r *referenceRepository) ListModels(ctx context.Context, brandID int32) ([]domain.VehicleModel, error) {
	query := `SELECT id, brand_id, name FROM vehicle_models`
	args := []interface{}{}
	if brandID != 0 {
		query += ` WHERE brand_id = $1`
		args = append(args, brandID)
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var models []domain.VehicleModel
	for rows.Next() {
		var m domain.VehicleModel
		if err := rows.Scan(&m.ID, &m.BrandID, &m.Name); err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, rows.Err()
}

func (r *referenceRepository) ListColors(ctx context.Context) ([]domain.Color, error) {
	ids, names, err := r.listNamed(ctx, `SELECT id, name FROM colors ORDER BY name`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Color, len(ids))
	for i := range ids {
		out[i] = domain.Color{ID: ids[i], Name: names[i]}
	}
	return out, nil
}

func (r *referenceRepository) ListFuelTypes(ctx context.Context) ([]domain.FuelType, error) {
	ids, names, err := r.listNamed(ctx, `SELECT id, name FROM fuel_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.FuelType, len(ids))
	for i := range ids {
		out[i] = domain.FuelType{ID: ids[i], Name: names[i]}
	}
	return out, nil
}

func (r *referenceRepository) ListGearTypes(ctx context.Context) ([]domain.GearType, error) {
	ids, names, err := r.listNamed(ctx, `SELECT id, name FROM gear_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.GearType, len(ids))
	for i := range ids {
		out[i] = domain.GearType{ID: ids[i], Name: names[i]}
	}
	return out, nil
}

func (r *referenceRepository) ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error) {
	ids, names, err := r.listNamed(ctx, `SELECT id, name FROM vehicle_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.VehicleType, len(ids))
	for i := range ids {
		out[i] = domain.VehicleType{ID: ids[i], Name: names[i]}
	}
	return out, nil
}

func (r *referenceRepository) ListFeatures(ctx context.Context) ([]domain.VehicleFeature, error) {
	ids, names, err := r.listNamed(ctx, `SELECT id, name FROM features ORDER BY name`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.VehicleFeature, len(ids))
	for i := range ids {
		out[i] = domain.VehicleFeature{ID: ids[i], Name: names[i]}
	}
	return out, nil
}
