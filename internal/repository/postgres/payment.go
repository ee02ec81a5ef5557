package postgres

import (
	"context"
	"database/sql"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (rental_id, amount, method, status, transaction_ref, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.RentalID, p.Amount, p.Method, p.Status, p.TransactionRef, time.Now().UTC().Format(time.RFC3339)).Scan(&p.ID)
}

func (r *paymentRepository) ListByRental(ctx context.Context, rentalID int32) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, rental_id, amount, method, status, transaction_ref, created_on FROM payments WHERE rental_id = $1 ORDER BY created_on`, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.RentalID, &p.Amount, &p.Method, &p.Status, &p.TransactionRef, &p.CreatedOn); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
