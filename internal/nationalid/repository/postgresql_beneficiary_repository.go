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

const beneficiaryColumns = `id, name, tc_no, phone, email, address, city, district, neighborhood,
			  family_size, status, notes, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// PostgreSQLBeneficiaryRepository persists beneficiaries in PostgreSQL.
type PostgreSQLBeneficiaryRepository struct {
	postgresqlLegacyStore
	db *sql.DB
}

// Create inserts beneficiary. A taken identifier returns ErrDuplicateIdentifier.
func (p *PostgreSQLBeneficiaryRepository) Create(
	ctx context.Context,
	beneficiary *nationalidDomain.Beneficiary,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO beneficiaries (` + beneficiaryColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := querier.ExecContext(
		ctx,
		query,
		beneficiary.ID,
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
		if database.IsPostgreSQLUniqueViolation(err) {
			return nationalidDomain.ErrDuplicateIdentifier
		}
		return apperrors.Wrap(err, "failed to create beneficiary")
	}
	return nil
}

// Update writes every mutable column of beneficiary.
func (p *PostgreSQLBeneficiaryRepository) Update(
	ctx context.Context,
	beneficiary *nationalidDomain.Beneficiary,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE beneficiaries
			  SET name = $1, tc_no = $2, phone = $3, email = $4, address = $5, city = $6,
			      district = $7, neighborhood = $8, family_size = $9, status = $10, notes = $11, updated_at = $12
			  WHERE id = $13`

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
		beneficiary.ID,
	)
	if err != nil {
		if database.IsPostgreSQLUniqueViolation(err) {
			return nationalidDomain.ErrDuplicateIdentifier
		}
		return apperrors.Wrap(err, "failed to update beneficiary")
	}
	return requireAffected(result, nationalidDomain.ErrBeneficiaryNotFound)
}

func (p *PostgreSQLBeneficiaryRepository) Get(ctx context.Context, id uuid.UUID) (*nationalidDomain.Beneficiary, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + beneficiaryColumns + ` FROM beneficiaries WHERE id = $1`

	return p.scanOne(querier.QueryRowContext(ctx, query, id))
}

// GetByIdentifier matches the stored column exactly; callers pass either the
// hash or the raw value.
func (p *PostgreSQLBeneficiaryRepository) GetByIdentifier(
	ctx context.Context,
	value string,
) (*nationalidDomain.Beneficiary, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + beneficiaryColumns + ` FROM beneficiaries WHERE tc_no = $1 LIMIT 1`

	return p.scanOne(querier.QueryRowContext(ctx, query, value))
}

// List returns beneficiaries newest first.
func (p *PostgreSQLBeneficiaryRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*nationalidDomain.Beneficiary, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + beneficiaryColumns + ` FROM beneficiaries ORDER BY id DESC LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list beneficiaries")
	}
	defer func() {
		_ = rows.Close()
	}()

	beneficiaries := make([]*nationalidDomain.Beneficiary, 0)
	for rows.Next() {
		beneficiary, err := scanPostgreSQLBeneficiary(rows)
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

func (p *PostgreSQLBeneficiaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM beneficiaries WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete beneficiary")
	}
	return requireAffected(result, nationalidDomain.ErrBeneficiaryNotFound)
}

func (p *PostgreSQLBeneficiaryRepository) scanOne(row *sql.Row) (*nationalidDomain.Beneficiary, error) {
	beneficiary, err := scanPostgreSQLBeneficiary(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nationalidDomain.ErrBeneficiaryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get beneficiary")
	}
	return beneficiary, nil
}

func scanPostgreSQLBeneficiary(row rowScanner) (*nationalidDomain.Beneficiary, error) {
	var beneficiary nationalidDomain.Beneficiary
	var status string
	err := row.Scan(
		&beneficiary.ID,
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
	beneficiary.Status = nationalidDomain.BeneficiaryStatus(status)
	return &beneficiary, nil
}

// requireAffected returns notFound when result changed no row.
func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

// NewPostgreSQLBeneficiaryRepository creates a PostgreSQL beneficiary repository.
func NewPostgreSQLBeneficiaryRepository(db *sql.DB) *PostgreSQLBeneficiaryRepository {
	return &PostgreSQLBeneficiaryRepository{
		postgresqlLegacyStore: postgresqlLegacyStore{
			db:       db,
			table:    "beneficiaries",
			notFound: nationalidDomain.ErrBeneficiaryNotFound,
		},
		db: db,
	}
}
