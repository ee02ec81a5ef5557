package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"

	"github.com/lib/pq"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, name, brand_id, model_id, model_year, color_id, fuel_type_id, gear_type_id, vehicle_type_id, air_conditioning, seats, daily_rental_fee, discount_rate, min_driver_age, min_license_years, status, location_id, created_on, updated_on`

func scanVehicle(row interface{ Scan(dest ...interface{}) error }, v *domain.Vehicle) error {
	return row.Scan(
		&v.ID, &v.Name, &v.BrandID, &v.ModelID, &v.ModelYear,
		&v.ColorID, &v.FuelTypeID, &v.GearTypeID, &v.VehicleTypeID,
		&v.AirConditioning, &v.Seats, &v.DailyRentalFee, &v.DiscountRate,
		&v.MinDriverAge, &v.MinLicenseYears, &v.Status, &v.LocationID,
		&v.CreatedOn, &v.UpdatedOn,
	)
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `INSERT INTO vehicles (name, brand_id, model_id, model_year, color_id, fuel_type_id, gear_type_id, vehicle_type_id, air_conditioning, seats, daily_rental_fee, discount_rate, min_driver_age, min_license_years, status, location_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		v.Name, v.BrandID, v.ModelID, v.ModelYear, v.ColorID, v.FuelTypeID,
		v.GearTypeID, v.VehicleTypeID, v.AirConditioning, v.Seats,
		v.DailyRentalFee, v.DiscountRate, v.MinDriverAge, v.MinLicenseYears,
		v.Status, v.LocationID, now, now,
	).Scan(&v.ID)
	if err != nil {
		return err
	}
	return r.replaceFeatures(ctx, v.ID, v.FeatureIDs)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	err := scanVehicle(r.db.QueryRowContext(ctx, query, id), v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT feature_id FROM vehicle_features WHERE vehicle_id = $1 ORDER BY feature_id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var fid int32
		if err := rows.Scan(&fid); err != nil {
			return nil, err
		}
		v.FeatureIDs = append(v.FeatureIDs, fid)
	}
	return v, rows.Err()
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET name=$1, brand_id=$2, model_id=$3, model_year=$4, color_id=$5, fuel_type_id=$6, gear_type_id=$7, vehicle_type_id=$8, air_conditioning=$9, seats=$10, daily_rental_fee=$11, discount_rate=$12, min_driver_age=$13, min_license_years=$14, status=$15, location_id=$16, updated_on=$17 WHERE id=$18`
	res, err := r.db.ExecContext(ctx, query,
		v.Name, v.BrandID, v.ModelID, v.ModelYear, v.ColorID, v.FuelTypeID,
		v.GearTypeID, v.VehicleTypeID, v.AirConditioning, v.Seats,
		v.DailyRentalFee, v.DiscountRate, v.MinDriverAge, v.MinLicenseYears,
		v.Status, v.LocationID, time.Now().UTC().Format(time.RFC3339), v.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return r.replaceFeatures(ctx, v.ID, v.FeatureIDs)
}

func (r *vehicleRepository) replaceFeatures(ctx context.Context, vehicleID int32, featureIDs []int32) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM vehicle_features WHERE vehicle_id = $1`, vehicleID); err != nil {
		return err
	}
	for _, fid := range featureIDs {
		if _, err := r.db.ExecContext(ctx, `INSERT INTO vehicle_features (vehicle_id, feature_id) VALUES ($1, $2)`, vehicleID, fid); err != nil {
			return err
		}
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vehicleRepository) UpdateLocation(ctx context.Context, vehicleID, locationID int32) error {
	res, err := r.db.ExecContext(ctx, `UPDATE vehicles SET location_id = $1, updated_on = $2 WHERE id = $3`,
		locationID, time.Now().UTC().Format(time.RFC3339), vehicleID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vehicleRepository) Search(ctx context.Context, c domain.VehicleSearchCriteria) ([]domain.Vehicle, int32, error) {
	base := `SELECT v.id, v.name, v.brand_id, v.model_id, v.model_year, v.color_id, v.fuel_type_id, v.gear_type_id, v.vehicle_type_id, v.air_conditioning, v.seats, v.daily_rental_fee, v.discount_rate, v.min_driver_age, v.min_license_years, v.status, v.location_id, v.created_on, v.updated_on FROM vehicles v WHERE v.status = 'AVAILABLE'`

	args := []interface{}{}
	idx := 1
	add := func(clause string, value interface{}) {
		base += fmt.Sprintf(clause, idx)
		args = append(args, value)
		idx++
	}

	if c.LocationID != 0 {
		add(" AND v.location_id = $%d", c.LocationID)
	}
	if c.BrandID != 0 {
		add(" AND v.brand_id = $%d", c.BrandID)
	}
	if c.ModelID != 0 {
		add(" AND v.model_id = $%d", c.ModelID)
	}
	if c.VehicleTypeID != 0 {
		add(" AND v.vehicle_type_id = $%d", c.VehicleTypeID)
	}
	if c.FuelTypeID != 0 {
		add(" AND v.fuel_type_id = $%d", c.FuelTypeID)
	}
	if c.GearTypeID != 0 {
		add(" AND v.gear_type_id = $%d", c.GearTypeID)
	}
	if c.AirConditioning != nil {
		add(" AND v.air_conditioning = $%d", *c.AirConditioning)
	}
	if c.MinPrice != nil {
		add(" AND v.daily_rental_fee >= $%d", *c.MinPrice)
	}
	if c.MaxPrice != nil {
		add(" AND v.daily_rental_fee <= $%d", *c.MaxPrice)
	}
	if c.MinModelYear != 0 {
		add(" AND v.model_year >= $%d", c.MinModelYear)
	}
	if c.MaxModelYear != 0 {
		add(" AND v.model_year <= $%d", c.MaxModelYear)
	}
	if len(c.FeatureIDs) > 0 {
		base += fmt.Sprintf(` AND v.id IN (
			SELECT vehicle_id FROM vehicle_features
			WHERE feature_id = ANY($%d)
			GROUP BY vehicle_id
			HAVING COUNT(DISTINCT feature_id) = $%d)`, idx, idx+1)
		args = append(args, pq.Array(c.FeatureIDs), len(c.FeatureIDs))
		idx += 2
	}
	if c.RentalDate != "" && c.ReturnDate != "" {
		// Same strict-overlap predicate the booking path enforces.
		base += fmt.Sprintf(` AND NOT EXISTS (
			SELECT 1 FROM rentals r
			WHERE r.vehicle_id = v.id
			  AND r.status IN ('PENDING', 'APPROVED')
			  AND r.rental_date < $%d
			  AND r.return_date > $%d)`, idx, idx+1)
		args = append(args, c.ReturnDate, c.RentalDate)
		idx += 2
	}

	var count int32
	countSQL := "SELECT count(*) FROM (" + base + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	switch c.Sort {
	case domain.VehicleSortPriceDesc:
		base += " ORDER BY v.daily_rental_fee DESC"
	case domain.VehicleSortYearDesc:
		base += " ORDER BY v.model_year DESC"
	default:
		base += " ORDER BY v.daily_rental_fee ASC"
	}

	page := c.Page
	if page < 1 {
		page = 1
	}
	pageSize := c.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	base += fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, base, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := scanVehicle(rows, &v); err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, count, rows.Err()
}
