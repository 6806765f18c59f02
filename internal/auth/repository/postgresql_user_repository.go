// Package repository provides PostgreSQL and MySQL persistence for users.
package repository

import (
	"context"
	"database/sql"
	"errors"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
	"github.com/dernekportal/tcguard/internal/database"
	apperrors "github.com/dernekportal/tcguard/internal/errors"
)

// PostgreSQLUserRepository persists users in PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// Create inserts user. A duplicate email returns ErrUserAlreadyExists.
func (p *PostgreSQLUserRepository) Create(ctx context.Context, user *authDomain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO users (id, name, email, role, is_active, password_hash, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
		user.Name,
		user.Email,
		nullableRole(user.Role),
		user.IsActive,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if database.IsPostgreSQLUniqueViolation(err) {
			return authDomain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByEmail looks a user up by exact email. The stored role is returned
// as-is, empty when NULL.
func (p *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*authDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, email, role, is_active, password_hash, created_at, updated_at
			  FROM users WHERE email = $1`

	var user authDomain.User
	var role sql.NullString
	err := querier.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&role,
		&user.IsActive,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by email")
	}

	user.Role = authDomain.Role(role.String)
	return &user, nil
}

// NewPostgreSQLUserRepository creates a PostgreSQL user repository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

func nullableRole(role authDomain.Role) sql.NullString {
	return sql.NullString{String: string(role), Valid: role != ""}
}
