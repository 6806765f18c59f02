package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
	"github.com/dernekportal/tcguard/internal/database"
	apperrors "github.com/dernekportal/tcguard/internal/errors"
)

// MySQLUserRepository persists users in MySQL with BINARY(16) ids.
type MySQLUserRepository struct {
	db *sql.DB
}

// Create inserts user. A duplicate email returns ErrUserAlreadyExists.
func (m *MySQLUserRepository) Create(ctx context.Context, user *authDomain.User) error {
	querier := database.GetTx(ctx, m.db)

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `INSERT INTO users (id, name, email, role, is_active, password_hash, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		user.Name,
		user.Email,
		nullableRole(user.Role),
		user.IsActive,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if database.IsMySQLUniqueViolation(err) {
			return authDomain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByEmail looks a user up by exact email.
func (m *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*authDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, email, role, is_active, password_hash, created_at, updated_at
			  FROM users WHERE email = ?`

	var user authDomain.User
	var id []byte
	var role sql.NullString
	err := querier.QueryRowContext(ctx, query, email).Scan(
		&id,
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

	user.ID, err = uuid.FromBytes(id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}
	user.Role = authDomain.Role(role.String)
	return &user, nil
}

// NewMySQLUserRepository creates a MySQL user repository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}
