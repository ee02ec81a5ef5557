package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, password_hash, name, role, date_of_birth, license_issue_date, created_on, updated_on`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `INSERT INTO users (email, password_hash, name, role, date_of_birth, license_issue_date, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.Name, u.Role, u.DateOfBirth, u.LicenseIssueDate, now, now).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *userRepository) get(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	u := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role,
		&u.DateOfBirth, &u.LicenseIssueDate, &u.CreatedOn, &u.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email=$1, password_hash=$2, name=$3, role=$4, date_of_birth=$5, license_issue_date=$6, updated_on=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query, u.Email, u.PasswordHash, u.Name, u.Role, u.DateOfBirth, u.LicenseIssueDate, time.Now().UTC().Format(time.RFC3339), u.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
