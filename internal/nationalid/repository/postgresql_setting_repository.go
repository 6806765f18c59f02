// Package repository provides PostgreSQL and MySQL persistence for settings,
// beneficiaries, dependents and identifier audit logs.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/dernekportal/tcguard/internal/database"
	apperrors "github.com/dernekportal/tcguard/internal/errors"
	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
)

// PostgreSQLSettingRepository persists system settings in PostgreSQL.
type PostgreSQLSettingRepository struct {
	db *sql.DB
}

// Create inserts setting. A taken category and key returns ErrSettingAlreadyExists.
func (p *PostgreSQLSettingRepository) Create(ctx context.Context, setting *nationalidDomain.Setting) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO system_settings
			  (id, category, setting_key, value, description, data_type, is_sensitive, updated_by, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var updatedBy uuid.NullUUID
	if setting.UpdatedBy != nil {
		updatedBy = uuid.NullUUID{UUID: *setting.UpdatedBy, Valid: true}
	}

	_, err := querier.ExecContext(
		ctx,
		query,
		setting.ID,
		setting.Category,
		setting.Key,
		setting.Value,
		setting.Description,
		setting.DataType,
		setting.IsSensitive,
		updatedBy,
		setting.UpdatedAt,
	)
	if err != nil {
		if database.IsPostgreSQLUniqueViolation(err) {
			return nationalidDomain.ErrSettingAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create setting")
	}
	return nil
}

// Get returns the setting stored under category and key.
func (p *PostgreSQLSettingRepository) Get(
	ctx context.Context,
	category, key string,
) (*nationalidDomain.Setting, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, category, setting_key, value, description, data_type, is_sensitive, updated_by, updated_at
			  FROM system_settings WHERE category = $1 AND setting_key = $2`

	var setting nationalidDomain.Setting
	var updatedBy uuid.NullUUID
	err := querier.QueryRowContext(ctx, query, category, key).Scan(
		&setting.ID,
		&setting.Category,
		&setting.Key,
		&setting.Value,
		&setting.Description,
		&setting.DataType,
		&setting.IsSensitive,
		&updatedBy,
		&setting.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nationalidDomain.ErrSettingNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get setting")
	}

	if updatedBy.Valid {
		setting.UpdatedBy = &updatedBy.UUID
	}
	return &setting, nil
}

// NewPostgreSQLSettingRepository creates a PostgreSQL setting repository.
func NewPostgreSQLSettingRepository(db *sql.DB) *PostgreSQLSettingRepository {
	return &PostgreSQLSettingRepository{db: db}
}
