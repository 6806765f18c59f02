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

const dependentColumns = `id, beneficiary_id, name, relationship, birth_date, gender, tc_no, phone,
			  has_disability, notes, created_at, updated_at`

// PostgreSQLDependentRepository persists dependents in PostgreSQL.
type PostgreSQLDependentRepository struct {
	postgresqlLegacyStore
	db *sql.DB
}

// Create inserts dependent. A taken identifier returns ErrDuplicateIdentifier.
func (p *PostgreSQLDependentRepository) Create(ctx context.Context, dependent *nationalidDomain.Dependent) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO dependents (` + dependentColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := querier.ExecContext(
		ctx,
		query,
		dependent.ID,
		dependent.BeneficiaryID,
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
		if database.IsPostgreSQLUniqueViolation(err) {
			return nationalidDomain.ErrDuplicateIdentifier
		}
		return apperrors.Wrap(err, "failed to create dependent")
	}
	return nil
}

func (p *PostgreSQLDependentRepository) Update(ctx context.Context, dependent *nationalidDomain.Dependent) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE dependents
			  SET name = $1, relationship = $2, birth_date = $3, gender = $4, tc_no = $5, phone = $6,
			      has_disability = $7, notes = $8, updated_at = $9
			  WHERE id = $10`

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
		dependent.ID,
	)
	if err != nil {
		if database.IsPostgreSQLUniqueViolation(err) {
			return nationalidDomain.ErrDuplicateIdentifier
		}
		return apperrors.Wrap(err, "failed to update dependent")
	}
	return requireAffected(result, nationalidDomain.ErrDependentNotFound)
}

func (p *PostgreSQLDependentRepository) Get(ctx context.Context, id uuid.UUID) (*nationalidDomain.Dependent, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + dependentColumns + ` FROM dependents WHERE id = $1`

	return p.scanOne(querier.QueryRowContext(ctx, query, id))
}

func (p *PostgreSQLDependentRepository) GetByIdentifier(
	ctx context.Context,
	value string,
) (*nationalidDomain.Dependent, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + dependentColumns + ` FROM dependents WHERE tc_no = $1 LIMIT 1`

	return p.scanOne(querier.QueryRowContext(ctx, query, value))
}

// ListByBeneficiary returns the dependents of beneficiaryID oldest first.
func (p *PostgreSQLDependentRepository) ListByBeneficiary(
	ctx context.Context,
	beneficiaryID uuid.UUID,
) ([]*nationalidDomain.Dependent, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + dependentColumns + ` FROM dependents WHERE beneficiary_id = $1 ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, beneficiaryID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list dependents")
	}
	defer func() {
		_ = rows.Close()
	}()

	dependents := make([]*nationalidDomain.Dependent, 0)
	for rows.Next() {
		dependent, err := scanPostgreSQLDependent(rows)
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

func (p *PostgreSQLDependentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM dependents WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete dependent")
	}
	return requireAffected(result, nationalidDomain.ErrDependentNotFound)
}

func (p *PostgreSQLDependentRepository) scanOne(row *sql.Row) (*nationalidDomain.Dependent, error) {
	dependent, err := scanPostgreSQLDependent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nationalidDomain.ErrDependentNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get dependent")
	}
	return dependent, nil
}

func scanPostgreSQLDependent(row rowScanner) (*nationalidDomain.Dependent, error) {
	var dependent nationalidDomain.Dependent
	err := row.Scan(
		&dependent.ID,
		&dependent.BeneficiaryID,
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
	return &dependent, nil
}

// NewPostgreSQLDependentRepository creates a PostgreSQL dependent repository.
func NewPostgreSQLDependentRepository(db *sql.DB) *PostgreSQLDependentRepository {
	return &PostgreSQLDependentRepository{
		postgresqlLegacyStore: postgresqlLegacyStore{
			db:       db,
			table:    "dependents",
			notFound: nationalidDomain.ErrDependentNotFound,
		},
		db: db,
	}
}
