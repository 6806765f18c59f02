package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dernekportal/tcguard/internal/httputil"
	"github.com/dernekportal/tcguard/internal/nationalid/http/dto"
	nationalidUseCase "github.com/dernekportal/tcguard/internal/nationalid/usecase"
)

// LegacyHandler reports progress of the plaintext identifier migration.
type LegacyHandler struct {
	migrationUseCase nationalidUseCase.MigrationUseCase
	logger           *slog.Logger
}

// NewLegacyHandler creates a LegacyHandler.
func NewLegacyHandler(migrationUseCase nationalidUseCase.MigrationUseCase, logger *slog.Logger) *LegacyHandler {
	return &LegacyHandler{
		migrationUseCase: migrationUseCase,
		logger:           logger,
	}
}

// StatusHandler returns the number of records still holding plaintext TC numbers.
// GET /v1/legacy-tc/status.
func (h *LegacyHandler) StatusHandler(c *gin.Context) {
	status, err := h.migrationUseCase.Status(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLegacyStatusToResponse(status))
}
