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

// MySQLBeneficiaryRepository persists beneficiaries in MySQL with BINARY(16) ids.
type MySQLBeneficiaryRepository struct {
	mysqlLegacyStore
	db *sql.DB
}

// Create inserts beneficiary. A taken identifier returns ErrDuplicateIdentifier.
func (m *MySQLBeneficiaryRepository) Create(ctx context.Context, beneficiary *nationalidDomain.Beneficiary) error {
	querier := database.GetTx(ctx, m.db)

	id, err := beneficiary.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal beneficiary id")
	}

	query := `INSERT INTO beneficiaries (` + beneficiaryColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		beneficiary.Name,
		beneficiary.TCNo,
		beneficiary.Phone,
		beneficiary.Email,
		beneficiary.Address,
		beneficiary.City,
		beneficiary.District,
		beneficiary.Neighborhood,
		beneficiary.FamilySize,
		string(beneficiary.Status),
		beneficiary.Notes,
		beneficiary.CreatedAt,
		beneficiary.UpdatedAt,
	)
	if err != nil {
		if database.IsMySQLUniqueViolation(err) {
			return nationalidDomain.ErrDuplicateIdentifier
		}
		return apperrors.Wrap(err, "failed to create beneficiary")
	}
	return nil
}

// Update writes every mutable column of beneficiary.
func (m *MySQLBeneficiaryRepository) Update(ctx context.Context, beneficiary *nationalidDomain.Beneficiary) error {
	querier := database.GetTx(ctx, m.db)

	id, err := beneficiary.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal beneficiary id")
	}

	query := `UPDATE beneficiaries
			  SET name = ?, tc_no = ?, phone = ?, email = ?, address = ?, city = ?,
			      district = ?, neighborhood = ?, family_size = ?, status = ?, notes = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		beneficiary.Name,
		beneficiary.TCNo,
		beneficiary.Phone,
		beneficiary.Email,
		beneficiary.Address,
		beneficiary.City,
		beneficiary.District,
		beneficiary.Neighborhood,
		beneficiary.FamilySize,
		string(beneficiary.Status),
		beneficiary.Notes,
		beneficiary.UpdatedAt,
		id,
	)
	if err != nil {
		if database.IsMySQLUniqueViolation(err) {
			return nationalidDomain.ErrDuplicateIdentifier
		}
		return apperrors.Wrap(err, "failed to update beneficiary")
	}
	return requireAffected(result, nationalidDomain.ErrBeneficiaryNotFound)
}

func (m *MySQLBeneficiaryRepository) Get(ctx context.Context, id uuid.UUID) (*nationalidDomain.Beneficiary, error) {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal beneficiary id")
	}

	query := `SELECT ` + beneficiaryColumns + ` FROM beneficiaries WHERE id = ?`

	return m.scanOne(querier.QueryRowContext(ctx, query, idBytes))
}

func (m *MySQLBeneficiaryRepository) GetByIdentifier(
	ctx context.Context,
	value string,
) (*nationalidDomain.Beneficiary, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + beneficiaryColumns + ` FROM beneficiaries WHERE tc_no = ? LIMIT 1`

	return m.scanOne(querier.QueryRowContext(ctx, query, value))
}

// List returns beneficiaries newest first.
func (m *MySQLBeneficiaryRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*nationalidDomain.Beneficiary, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + beneficiaryColumns + ` FROM beneficiaries ORDER BY id DESC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list beneficiaries")
	}
	defer func() {
		_ = rows.Close()
	}()

	beneficiaries := make([]*nationalidDomain.Beneficiary, 0)
	for rows.Next() {
		beneficiary, err := scanMySQLBeneficiary(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan beneficiary")
		}
		beneficiaries = append(beneficiaries, beneficiary)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate beneficiaries")
	}
	return beneficiaries, nil
}

func (m *MySQLBeneficiaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal beneficiary id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM beneficiaries WHERE id = ?`, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete beneficiary")
	}
	return requireAffected(result, nationalidDomain.ErrBeneficiaryNotFound)
}

func (m *MySQLBeneficiaryRepository) scanOne(row *sql.Row) (*nationalidDomain.Beneficiary, error) {
	beneficiary, err := scanMySQLBeneficiary(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nationalidDomain.ErrBeneficiaryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get beneficiary")
	}
	return beneficiary, nil
}

func scanMySQLBeneficiary(row rowScanner) (*nationalidDomain.Beneficiary, error) {
	var beneficiary nationalidDomain.Beneficiary
	var id []byte
	var status string
	err := row.Scan(
		&id,
		&beneficiary.Name,
		&beneficiary.TCNo,
		&beneficiary.Phone,
		&beneficiary.Email,
		&beneficiary.Address,
		&beneficiary.City,
		&beneficiary.District,
		&beneficiary.Neighborhood,
		&beneficiary.FamilySize,
		&status,
		&beneficiary.Notes,
		&beneficiary.CreatedAt,
		&beneficiary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := beneficiary.ID.UnmarshalBinary(id); err != nil {
		return nil, err
	}
	beneficiary.Status = nationalidDomain.BeneficiaryStatus(status)
	return &beneficiary, nil
}

// NewMySQLBeneficiaryRepository creates a MySQL beneficiary repository.
func NewMySQLBeneficiaryRepository(db *sql.DB) *MySQLBeneficiaryRepository {
	return &MySQLBeneficiaryRepository{
		mysqlLegacyStore: mysqlLegacyStore{
			db:       db,
			table:    "beneficiaries",
			notFound: nationalidDomain.ErrBeneficiaryNotFound,
		},
		db: db,
	}
}
