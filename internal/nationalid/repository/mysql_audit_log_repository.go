package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/dernekportal/tcguard/internal/database"
	apperrors "github.com/dernekportal/tcguard/internal/errors"
	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
)

// MySQLAuditLogRepository persists identifier audit logs in MySQL with
// BINARY(16) ids.
type MySQLAuditLogRepository struct {
	db *sql.DB
}

// Create inserts auditLog. Nil metadata is stored as NULL.
func (m *MySQLAuditLogRepository) Create(ctx context.Context, auditLog *nationalidDomain.AuditLog) error {
	querier := database.GetTx(ctx, m.db)

	id, err := auditLog.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal audit log id")
	}
	userID, err := auditLog.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal audit log user_id")
	}
	metadataJSON, err := marshalMetadata(auditLog.Metadata)
	if err != nil {
		return err
	}

	query := `INSERT INTO audit_logs (` + auditLogColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		auditLog.RequestID,
		userID,
		auditLog.Role,
		auditLog.Action,
		auditLog.MaskedIdentifier,
		auditLog.Extra,
		metadataJSON,
		auditLog.Signature,
		auditLog.IsSigned,
		auditLog.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create audit log")
	}
	return nil
}

// List returns logs newest first. Nil bounds are open; both are inclusive.
func (m *MySQLAuditLogRepository) List(
	ctx context.Context,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*nationalidDomain.AuditLog, error) {
	querier := database.GetTx(ctx, m.db)

	var conditions []string
	var args []interface{}

	if createdAtFrom != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *createdAtFrom)
	}

	if createdAtTo != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *createdAtTo)
	}

	query := `SELECT ` + auditLogColumns + ` FROM audit_logs`

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	return m.query(ctx, querier, query, args...)
}

// ListByTimeRange returns every log with start <= created_at <= end, oldest first.
func (m *MySQLAuditLogRepository) ListByTimeRange(
	ctx context.Context,
	start, end time.Time,
) ([]*nationalidDomain.AuditLog, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + auditLogColumns + ` FROM audit_logs
			  WHERE created_at >= ? AND created_at <= ?
			  ORDER BY created_at`

	return m.query(ctx, querier, query, start, end)
}

// DeleteOlderThan removes logs created before olderThan. With dryRun it only
// counts them.
func (m *MySQLAuditLogRepository) DeleteOlderThan(
	ctx context.Context,
	olderThan time.Time,
	dryRun bool,
) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	if dryRun {
		var count int64
		err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_logs WHERE created_at < ?`, olderThan).
			Scan(&count)
		if err != nil {
			return 0, apperrors.Wrap(err, "failed to count audit logs")
		}
		return count, nil
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM audit_logs WHERE created_at < ?`, olderThan)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete audit logs")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get affected rows count")
	}
	return count, nil
}

func (m *MySQLAuditLogRepository) query(
	ctx context.Context,
	querier database.Querier,
	query string,
	args ...interface{},
) ([]*nationalidDomain.AuditLog, error) {
	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list audit logs")
	}
	defer func() {
		_ = rows.Close()
	}()

	auditLogs := make([]*nationalidDomain.AuditLog, 0)
	for rows.Next() {
		var auditLog nationalidDomain.AuditLog
		var idBinary, userIDBinary, metadataJSON []byte

		err := rows.Scan(
			&idBinary,
			&auditLog.RequestID,
			&userIDBinary,
			&auditLog.Role,
			&auditLog.Action,
			&auditLog.MaskedIdentifier,
			&auditLog.Extra,
			&metadataJSON,
			&auditLog.Signature,
			&auditLog.IsSigned,
			&auditLog.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan audit log")
		}

		if err := auditLog.ID.UnmarshalBinary(idBinary); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal audit log id")
		}
		if err := auditLog.UserID.UnmarshalBinary(userIDBinary); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal audit log user_id")
		}
		if auditLog.Metadata, err = unmarshalMetadata(metadataJSON); err != nil {
			return nil, err
		}
		auditLogs = append(auditLogs, &auditLog)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate audit logs")
	}
	return auditLogs, nil
}

// NewMySQLAuditLogRepository creates a MySQL audit log repository.
func NewMySQLAuditLogRepository(db *sql.DB) *MySQLAuditLogRepository {
	return &MySQLAuditLogRepository{db: db}
}
