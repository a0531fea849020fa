package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rk2835/aquahub/internal/database"
	"github.com/rk2835/aquahub/internal/model"
)

type UserRepository struct {
	db database.DBTX
}

func NewUserRepository(db database.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts user and fills in its timestamps. A duplicate email fails
// with the users_email_key unique violation.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, user_type)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, string(user.UserType),
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, email, password_hash, user_type, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	user := &model.User{}
	var userType string
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &userType, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select user by email: %w", err)
	}
	user.UserType = model.UserType(userType)

	return user, nil
}

// DisplayName returns the listing name for a user, or nil without a profile.
func (r *UserRepository) DisplayName(ctx context.Context, user *model.User) (*string, error) {
	query := `
		SELECT CASE
			WHEN u.user_type = 'customer' THEN cp.first_name || ' ' || cp.last_name
			WHEN u.user_type = 'vendor' THEN vp.business_name
		END
		FROM users u
		LEFT JOIN customer_profiles cp ON cp.user_id = u.id
		LEFT JOIN vendor_profiles vp ON vp.user_id = u.id
		WHERE u.id = $1
	`

	var name *string
	if err := r.db.QueryRowContext(ctx, query, user.ID).Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select display name: %w", err)
	}

	return name, nil
}

// ListWithDisplayName returns every user, newest first. Customers are named
// by first and last name, vendors by business name.
func (r *UserRepository) ListWithDisplayName(ctx context.Context) ([]model.UserSummary, error) {
	query := `
		SELECT u.id, u.email, u.user_type, u.created_at,
			CASE
				WHEN u.user_type = 'customer' THEN cp.first_name || ' ' || cp.last_name
				WHEN u.user_type = 'vendor' THEN vp.business_name
			END AS name
		FROM users u
		LEFT JOIN customer_profiles cp ON cp.user_id = u.id
		LEFT JOIN vendor_profiles vp ON vp.user_id = u.id
		ORDER BY u.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []model.UserSummary{}
	for rows.Next() {
		var (
			summary  model.UserSummary
			userType string
		)
		if err := rows.Scan(&summary.ID, &summary.Email, &userType, &summary.CreatedAt, &summary.Name); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		summary.UserType = model.UserType(userType)
		users = append(users, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}
