package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dernekportal/tcguard/internal/database"
	apperrors "github.com/dernekportal/tcguard/internal/errors"
	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
)

// MySQLSettingRepository persists system settings in MySQL with BINARY(16) ids.
type MySQLSettingRepository struct {
	db *sql.DB
}

// Create inserts setting. A taken category and key returns ErrSettingAlreadyExists.
func (m *MySQLSettingRepository) Create(ctx context.Context, setting *nationalidDomain.Setting) error {
	querier := database.GetTx(ctx, m.db)

	id, err := setting.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal setting id")
	}
	updatedBy, err := marshalNullableUUID(setting.UpdatedBy)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal setting updated_by")
	}

	query := `INSERT INTO system_settings
			  (id, category, setting_key, value, description, data_type, is_sensitive, updated_by, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
		if database.IsMySQLUniqueViolation(err) {
			return nationalidDomain.ErrSettingAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create setting")
	}
	return nil
}

// Get returns the setting stored under category and key.
func (m *MySQLSettingRepository) Get(ctx context.Context, category, key string) (*nationalidDomain.Setting, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, category, setting_key, value, description, data_type, is_sensitive, updated_by, updated_at
			  FROM system_settings WHERE category = ? AND setting_key = ?`

	var setting nationalidDomain.Setting
	var id, updatedBy []byte
	err := querier.QueryRowContext(ctx, query, category, key).Scan(
		&id,
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

	if err := setting.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal setting id")
	}
	if setting.UpdatedBy, err = unmarshalNullableUUID(updatedBy); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal setting updated_by")
	}
	return &setting, nil
}

// NewMySQLSettingRepository creates a MySQL setting repository.
func NewMySQLSettingRepository(db *sql.DB) *MySQLSettingRepository {
	return &MySQLSettingRepository{db: db}
}
