package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dernekportal/tcguard/internal/httputil"
	"github.com/dernekportal/tcguard/internal/nationalid/http/dto"
	nationalidUseCase "github.com/dernekportal/tcguard/internal/nationalid/usecase"
)

// AuditLogHandler serves the persisted identifier audit trail.
type AuditLogHandler struct {
	auditLogUseCase nationalidUseCase.AuditLogUseCase
	logger          *slog.Logger
}

// NewAuditLogHandler creates an AuditLogHandler.
func NewAuditLogHandler(auditLogUseCase nationalidUseCase.AuditLogUseCase, logger *slog.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUseCase: auditLogUseCase,
		logger:          logger,
	}
}

// ListHandler returns audit logs newest first.
// GET /v1/audit-logs?offset=0&limit=50&created_at_from=...&created_at_to=...
// Both bounds are RFC3339 and inclusive.
func (h *AuditLogHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	createdAtFrom, createdAtTo, err := httputil.ParseTimeRange(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	auditLogs, err := h.auditLogUseCase.List(c.Request.Context(), offset, limit, createdAtFrom, createdAtTo)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAuditLogsToListResponse(auditLogs))
}
