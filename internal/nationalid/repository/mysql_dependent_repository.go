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

// MySQLDependentRepository persists dependents in MySQL with BINARY(16) ids.
type MySQLDependentRepository struct {
	mysqlLegacyStore
	db *sql.DB
}

// Create inserts dependent. A taken identifier returns ErrDuplicateIdentifier.
func (m *MySQLDependentRepository) Create(ctx context.Context, dependent *nationalidDomain.Dependent) error {
	querier := database.GetTx(ctx, m.db)

	id, err := dependent.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal dependent id")
	}
	beneficiaryID, err := dependent.BeneficiaryID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal beneficiary id")
	}

	query := `INSERT INTO dependents (` + dependentColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		beneficiaryID,
		dependent.Name,
		dependent.Relationship,
		dependent.BirthDate,
		dependent.Gender,
		dependent.TCNo,
		dependent.Phone,
		dependent.HasDisability,
		dependent.Notes,
		dependent.CreatedAt,
		dependent.UpdatedAt,
	)
	if err != nil {
		if database.IsMySQLUniqueViolation(err) {
			return nationalidDomain.ErrDuplicateIdentifier
		}
		return apperrors.Wrap(err, "failed to create dependent")
	}
	return nil
}

func (m *MySQLDependentRepository) Update(ctx context.Context, dependent *nationalidDomain.Dependent) error {
	querier := database.GetTx(ctx, m.db)

	id, err := dependent.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal dependent id")
	}

	query := `UPDATE dependents
			  SET name = ?, relationship = ?, birth_date = ?, gender = ?, tc_no = ?, phone = ?,
			      has_disability = ?, notes = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		dependent.Name,
		dependent.Relationship,
		dependent.BirthDate,
		dependent.Gender,
		dependent.TCNo,
		dependent.Phone,
		dependent.HasDisability,
		dependent.Notes,
		dependent.UpdatedAt,
		id,
	)
	if err != nil {
		if database.IsMySQLUniqueViolation(err) {
			return nationalidDomain.ErrDuplicateIdentifier
		}
		return apperrors.Wrap(err, "failed to update dependent")
	}
	return requireAffected(result, nationalidDomain.ErrDependentNotFound)
}

func (m *MySQLDependentRepository) Get(ctx context.Context, id uuid.UUID) (*nationalidDomain.Dependent, error) {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal dependent id")
	}

	query := `SELECT ` + dependentColumns + ` FROM dependents WHERE id = ?`

	return m.scanOne(querier.QueryRowContext(ctx, query, idBytes))
}

func (m *MySQLDependentRepository) GetByIdentifier(
	ctx context.Context,
	value string,
) (*nationalidDomain.Dependent, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + dependentColumns + ` FROM dependents WHERE tc_no = ? LIMIT 1`

	return m.scanOne(querier.QueryRowContext(ctx, query, value))
}

// ListByBeneficiary returns the dependents of beneficiaryID oldest first.
func (m *MySQLDependentRepository) ListByBeneficiary(
	ctx context.Context,
	beneficiaryID uuid.UUID,
) ([]*nationalidDomain.Dependent, error) {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := beneficiaryID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal beneficiary id")
	}

	query := `SELECT ` + dependentColumns + ` FROM dependents WHERE beneficiary_id = ? ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, idBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list dependents")
	}
	defer func() {
		_ = rows.Close()
	}()

	dependents := make([]*nationalidDomain.Dependent, 0)
	for rows.Next() {
		dependent, err := scanMySQLDependent(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan dependent")
		}
		dependents = append(dependents, dependent)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate dependents")
	}
	return dependents, nil
}

func (m *MySQLDependentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal dependent id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM dependents WHERE id = ?`, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete dependent")
	}
	return requireAffected(result, nationalidDomain.ErrDependentNotFound)
}

func (m *MySQLDependentRepository) scanOne(row *sql.Row) (*nationalidDomain.Dependent, error) {
	dependent, err := scanMySQLDependent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nationalidDomain.ErrDependentNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get dependent")
	}
	return dependent, nil
}

func scanMySQLDependent(row rowScanner) (*nationalidDomain.Dependent, error) {
	var dependent nationalidDomain.Dependent
	var id, beneficiaryID []byte
	err := row.Scan(
		&id,
		&beneficiaryID,
		&dependent.Name,
		&dependent.Relationship,
		&dependent.BirthDate,
		&dependent.Gender,
		&dependent.TCNo,
		&dependent.Phone,
		&dependent.HasDisability,
		&dependent.Notes,
		&dependent.CreatedAt,
		&dependent.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := dependent.ID.UnmarshalBinary(id); err != nil {
		return nil, err
	}
	if err := dependent.BeneficiaryID.UnmarshalBinary(beneficiaryID); err != nil {
		return nil, err
	}
	return &dependent, nil
}

// NewMySQLDependentRepository creates a MySQL dependent repository.
func NewMySQLDependentRepository(db *sql.DB) *MySQLDependentRepository {
	return &MySQLDependentRepository{
		mysqlLegacyStore: mysqlLegacyStore{
			db:       db,
			table:    "dependents",
			notFound: nationalidDomain.ErrDependentNotFound,
		},
		db: db,
	}
}
