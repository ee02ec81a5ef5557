package postgres

import (
	"context"
	"database/sql"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type actionLogRepository struct {
	db *sql.DB
}

func NewActionLogRepository(db *sql.DB) repository.ActionLogRepository {
	return &actionLogRepository{db: db}
}

// Create appends to the action log. There is no update or delete path.
func (r *actionLogRepository) Create(ctx context.Context, e *domain.ActionLog) error {
	query := `INSERT INTO action_logs (user_id, client_ip, action, detail, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, e.UserID, e.ClientIP, e.Action, e.Detail, time.Now().UTC().Format(time.RFC3339)).Scan(&e.ID)
}
