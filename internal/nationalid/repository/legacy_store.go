package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dernekportal/tcguard/internal/database"
	apperrors "github.com/dernekportal/tcguard/internal/errors"
	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
)

// postgresqlLegacyStore runs the identifier queries shared by the beneficiary
// and dependent tables. A stored identifier is legacy plaintext whenever its
// length differs from a hex SHA-256 digest.
type postgresqlLegacyStore struct {
	db       *sql.DB
	table    string
	notFound error
}

func (s postgresqlLegacyStore) ListLegacy(
	ctx context.Context,
	afterID uuid.UUID,
	limit int,
) ([]nationalidDomain.LegacyIdentifier, error) {
	querier := database.GetTx(ctx, s.db)

	query := fmt.Sprintf(`SELECT id, tc_no FROM %s
			  WHERE tc_no IS NOT NULL AND LENGTH(tc_no) <> %d AND id > $1
			  ORDER BY id LIMIT $2`, s.table, nationalidDomain.HashedIdentifierLength)

	rows, err := querier.QueryContext(ctx, query, afterID, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list legacy identifiers")
	}
	defer func() {
		_ = rows.Close()
	}()

	identifiers := make([]nationalidDomain.LegacyIdentifier, 0)
	for rows.Next() {
		var identifier nationalidDomain.LegacyIdentifier
		if err := rows.Scan(&identifier.ID, &identifier.Value); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan legacy identifier")
		}
		identifiers = append(identifiers, identifier)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate legacy identifiers")
	}
	return identifiers, nil
}

func (s postgresqlLegacyStore) CountLegacy(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, s.db)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE tc_no IS NOT NULL AND LENGTH(tc_no) <> %d`,
		s.table, nationalidDomain.HashedIdentifierLength)

	var count int64
	if err := querier.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count legacy identifiers")
	}
	return count, nil
}

func (s postgresqlLegacyStore) ReplaceIdentifier(
	ctx context.Context,
	id uuid.UUID,
	oldValue, newValue string,
) (bool, error) {
	querier := database.GetTx(ctx, s.db)

	query := fmt.Sprintf(`UPDATE %s SET tc_no = $1 WHERE id = $2 AND tc_no = $3`, s.table)

	result, err := querier.ExecContext(ctx, query, newValue, id, oldValue)
	if err != nil {
		if database.IsPostgreSQLUniqueViolation(err) {
			return false, nationalidDomain.ErrDuplicateIdentifier
		}
		return false, apperrors.Wrap(err, "failed to replace identifier")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to get rows affected")
	}
	return affected > 0, nil
}

func (s postgresqlLegacyStore) IdentifierOwner(ctx context.Context, value string) (uuid.UUID, error) {
	querier := database.GetTx(ctx, s.db)

	query := fmt.Sprintf(`SELECT id FROM %s WHERE tc_no = $1 LIMIT 1`, s.table)

	var id uuid.UUID
	if err := querier.QueryRowContext(ctx, query, value).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, s.notFound
		}
		return uuid.Nil, apperrors.Wrap(err, "failed to get identifier owner")
	}
	return id, nil
}

// mysqlLegacyStore is the MySQL counterpart of postgresqlLegacyStore.
type mysqlLegacyStore struct {
	db       *sql.DB
	table    string
	notFound error
}

func (s mysqlLegacyStore) ListLegacy(
	ctx context.Context,
	afterID uuid.UUID,
	limit int,
) ([]nationalidDomain.LegacyIdentifier, error) {
	querier := database.GetTx(ctx, s.db)

	after, err := afterID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal cursor id")
	}

	query := fmt.Sprintf(`SELECT id, tc_no FROM %s
			  WHERE tc_no IS NOT NULL AND CHAR_LENGTH(tc_no) <> %d AND id > ?
			  ORDER BY id LIMIT ?`, s.table, nationalidDomain.HashedIdentifierLength)

	rows, err := querier.QueryContext(ctx, query, after, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list legacy identifiers")
	}
	defer func() {
		_ = rows.Close()
	}()

	identifiers := make([]nationalidDomain.LegacyIdentifier, 0)
	for rows.Next() {
		var identifier nationalidDomain.LegacyIdentifier
		var id []byte
		if err := rows.Scan(&id, &identifier.Value); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan legacy identifier")
		}
		if err := identifier.ID.UnmarshalBinary(id); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal legacy identifier id")
		}
		identifiers = append(identifiers, identifier)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate legacy identifiers")
	}
	return identifiers, nil
}

func (s mysqlLegacyStore) CountLegacy(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, s.db)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE tc_no IS NOT NULL AND CHAR_LENGTH(tc_no) <> %d`,
		s.table, nationalidDomain.HashedIdentifierLength)

	var count int64
	if err := querier.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count legacy identifiers")
	}
	return count, nil
}

func (s mysqlLegacyStore) ReplaceIdentifier(
	ctx context.Context,
	id uuid.UUID,
	oldValue, newValue string,
) (bool, error) {
	querier := database.GetTx(ctx, s.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal id")
	}

	query := fmt.Sprintf(`UPDATE %s SET tc_no = ? WHERE id = ? AND tc_no = ?`, s.table)

	result, err := querier.ExecContext(ctx, query, newValue, idBytes, oldValue)
	if err != nil {
		if database.IsMySQLUniqueViolation(err) {
			return false, nationalidDomain.ErrDuplicateIdentifier
		}
		return false, apperrors.Wrap(err, "failed to replace identifier")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to get rows affected")
	}
	return affected > 0, nil
}

func (s mysqlLegacyStore) IdentifierOwner(ctx context.Context, value string) (uuid.UUID, error) {
	querier := database.GetTx(ctx, s.db)

	query := fmt.Sprintf(`SELECT id FROM %s WHERE tc_no = ? LIMIT 1`, s.table)

	var idBytes []byte
	if err := querier.QueryRowContext(ctx, query, value).Scan(&idBytes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, s.notFound
		}
		return uuid.Nil, apperrors.Wrap(err, "failed to get identifier owner")
	}

	id, err := uuid.FromBytes(idBytes)
	if err != nil {
		return uuid.Nil, apperrors.Wrap(err, "failed to unmarshal identifier owner id")
	}
	return id, nil
}

// marshalNullableUUID returns BINARY(16) bytes for id, or a NULL argument.
func marshalNullableUUID(id *uuid.UUID) (any, error) {
	if id == nil {
		return nil, nil
	}
	return id.MarshalBinary()
}

func unmarshalNullableUUID(b []byte) (*uuid.UUID, error) {
	if b == nil {
		return nil, nil
	}
	id, err := uuid.FromBytes(b)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
