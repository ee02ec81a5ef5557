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

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

// overlapQuery implements strict overlap on [rental_date, return_date):
// existing.rental_date < candidate.return_date AND
// existing.return_date > candidate.rental_date.
// Dates are ISO yyyy-mm-dd strings, so lexicographic comparison is date order.
// utils.Overlaps states the same predicate in Go.
const overlapQuery = `SELECT EXISTS (
	SELECT 1 FROM rentals
	WHERE vehicle_id = $1
	  AND status IN ('PENDING', 'APPROVED')
	  AND rental_date < $3
	  AND return_date > $2
	  AND id <> $4
)`

func (r *rentalRepository) HasOverlap(ctx context.Context, vehicleID int32, rentalDate, returnDate string, excludeID int32) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, overlapQuery, vehicleID, rentalDate, returnDate, excludeID).Scan(&exists)
	return exists, err
}

func (r *rentalRepository) CreateWithProducts(ctx context.Context, rt *domain.Rental, productIDs []int32) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Re-check availability inside the transaction so two concurrent bookings
	// for the same vehicle and overlapping dates cannot both commit.
	var exists bool
	if err := tx.QueryRowContext(ctx, overlapQuery, rt.VehicleID, rt.RentalDate, rt.ReturnDate, int32(0)).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return domain.ErrVehicleUnavailable
	}

	now := time.Now().UTC().Format(time.RFC3339)
	query := `INSERT INTO rentals (vehicle_id, user_id, pickup_location_id, drop_off_location_id, rental_date, return_date, request_date, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		rt.VehicleID, rt.UserID, rt.PickupLocationID, rt.DropOffLocationID,
		rt.RentalDate, rt.ReturnDate, rt.RequestDate, rt.Status, now, now,
	).Scan(&rt.ID)
	if err != nil {
		return translateSerialization(err)
	}

	if err := insertProducts(ctx, tx, rt.ID, productIDs); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return translateSerialization(err)
	}
	rt.ProductIDs = productIDs
	return nil
}

func (r *rentalRepository) UpdateWithProducts(ctx context.Context, rt *domain.Rental, productIDs []int32, checkAvailability bool) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if checkAvailability {
		var exists bool
		if err := tx.QueryRowContext(ctx, overlapQuery, rt.VehicleID, rt.RentalDate, rt.ReturnDate, rt.ID).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return domain.ErrVehicleUnavailable
		}
	}

	query := `UPDATE rentals SET vehicle_id=$1, user_id=$2, pickup_location_id=$3, drop_off_location_id=$4, rental_date=$5, return_date=$6, status=$7, admin_action_date=$8, admin_user_id=$9, updated_on=$10 WHERE id=$11`
	res, err := tx.ExecContext(ctx, query,
		rt.VehicleID, rt.UserID, rt.PickupLocationID, rt.DropOffLocationID,
		rt.RentalDate, rt.ReturnDate, rt.Status, rt.AdminActionDate, rt.AdminUserID,
		time.Now().UTC().Format(time.RFC3339), rt.ID,
	)
	if err != nil {
		return translateSerialization(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}

	// Product assignments are replaced wholesale on every update.
	if _, err := tx.ExecContext(ctx, `DELETE FROM rental_products WHERE rental_id = $1`, rt.ID); err != nil {
		return err
	}
	if err := insertProducts(ctx, tx, rt.ID, productIDs); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return translateSerialization(err)
	}
	rt.ProductIDs = productIDs
	return nil
}

func insertProducts(ctx context.Context, tx *sql.Tx, rentalID int32, productIDs []int32) error {
	for _, pid := range productIDs {
		if _, err := tx.ExecContext(ctx, `INSERT INTO rental_products (rental_id, product_id) VALUES ($1, $2)`, rentalID, pid); err != nil {
			return err
		}
	}
	return nil
}

// translateSerialization maps a Postgres serialization failure (40001) from a
// conflicting concurrent booking to the unavailable business error.
func translateSerialization(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "40001" {
		return domain.ErrVehicleUnavailable
	}
	return err
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET status=$1, admin_action_date=$2, admin_user_id=$3, updated_on=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, rt.Status, rt.AdminActionDate, rt.AdminUserID, time.Now().UTC().Format(time.RFC3339), rt.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT id, vehicle_id, user_id, pickup_location_id, drop_off_location_id, rental_date, return_date, request_date, status, admin_action_date, admin_user_id, created_on, updated_on FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.VehicleID, &rt.UserID, &rt.PickupLocationID, &rt.DropOffLocationID,
		&rt.RentalDate, &rt.ReturnDate, &rt.RequestDate, &rt.Status,
		&rt.AdminActionDate, &rt.AdminUserID, &rt.CreatedOn, &rt.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT product_id FROM rental_products WHERE rental_id = $1 ORDER BY product_id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var pid int32
		if err := rows.Scan(&pid); err != nil {
			return nil, err
		}
		rt.ProductIDs = append(rt.ProductIDs, pid)
	}
	return rt, rows.Err()
}

func (r *rentalRepository) List(ctx context.Context, filter domain.RentalFilter) ([]domain.Rental, int32, error) {
	base := `SELECT r.id, r.vehicle_id, r.user_id, r.pickup_location_id, r.drop_off_location_id, r.rental_date, r.return_date, r.request_date, r.status, r.admin_action_date, r.admin_user_id, r.created_on, r.updated_on
	         FROM rentals r JOIN vehicles v ON v.id = r.vehicle_id WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if filter.UserID != 0 {
		base += fmt.Sprintf(" AND r.user_id = $%d", argIdx)
		args = append(args, filter.UserID)
		argIdx++
	}
	if filter.Status != "" {
		base += fmt.Sprintf(" AND r.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.SearchQuery != "" {
		base += fmt.Sprintf(" AND v.name ILIKE $%d", argIdx)
		args = append(args, "%"+filter.SearchQuery+"%")
		argIdx++
	}

	var count int32
	countSQL := "SELECT count(*) FROM (" + base + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	base += fmt.Sprintf(" ORDER BY r.request_date DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, base, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(
			&rt.ID, &rt.VehicleID, &rt.UserID, &rt.PickupLocationID, &rt.DropOffLocationID,
			&rt.RentalDate, &rt.ReturnDate, &rt.RequestDate, &rt.Status,
			&rt.AdminActionDate, &rt.AdminUserID, &rt.CreatedOn, &rt.UpdatedOn,
		); err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if err := r.loadProducts(ctx, rentals); err != nil {
		return nil, 0, err
	}
	return rentals, count, nil
}

// loadProducts attaches product ids to a page of rentals in one query.
func (r *rentalRepository) loadProducts(ctx context.Context, rentals []domain.Rental) error {
	if len(rentals) == 0 {
		return nil
	}
	ids := make([]int32, len(rentals))
	byID := make(map[int32]*domain.Rental, len(rentals))
	for i := range rentals {
		ids[i] = rentals[i].ID
		byID[rentals[i].ID] = &rentals[i]
	}
	rows, err := r.db.QueryContext(ctx, `SELECT rental_id, product_id FROM rental_products WHERE rental_id = ANY($1) ORDER BY product_id`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var rentalID, productID int32
		if err := rows.Scan(&rentalID, &productID); err != nil {
			return err
		}
		if rt, ok := byID[rentalID]; ok {
			rt.ProductIDs = append(rt.ProductIDs, productID)
		}
	}
	return rows.Err()
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
