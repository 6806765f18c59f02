package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dernekportal/tcguard/internal/httputil"
	"github.com/dernekportal/tcguard/internal/nationalid/http/dto"
	nationalidUseCase "github.com/dernekportal/tcguard/internal/nationalid/usecase"
	customValidation "github.com/dernekportal/tcguard/internal/validation"
)

// DependentHandler handles HTTP requests for dependents.
type DependentHandler struct {
	dependentUseCase nationalidUseCase.DependentUseCase
	logger           *slog.Logger
}

// NewDependentHandler creates a DependentHandler.
func NewDependentHandler(dependentUseCase nationalidUseCase.DependentUseCase, logger *slog.Logger) *DependentHandler {
	return &DependentHandler{
		dependentUseCase: dependentUseCase,
		logger:           logger,
	}
}

// CreateHandler adds a dependent to the beneficiary in the path.
// POST /v1/beneficiaries/:id/dependents. Returns 201 Created.
func (h *DependentHandler) CreateHandler(c *gin.Context) {
	beneficiaryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid beneficiary ID format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.CreateDependentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	dependent, err := h.dependentUseCase.Create(c.Request.Context(), req.ToInput(beneficiaryID), callerFrom(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapDependentToResponse(dependent))
}

// ListHandler returns the dependents of a beneficiary.
// GET /v1/beneficiaries/:id/dependents.
func (h *DependentHandler) ListHandler(c *gin.Context) {
	beneficiaryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid beneficiary ID format: must be a valid UUID"),
			h.logger)
		return
	}

	dependents, err := h.dependentUseCase.ListByBeneficiary(c.Request.Context(), beneficiaryID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDependentsToListResponse(dependents))
}

// UpdateHandler applies a partial update to a dependent.
// PATCH /v1/dependents/:id.
func (h *DependentHandler) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid dependent ID format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.UpdateDependentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	dependent, err := h.dependentUseCase.Update(c.Request.Context(), id, req.ToInput(), callerFrom(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDependentToResponse(dependent))
}

// DeleteHandler removes a dependent.
// DELETE /v1/dependents/:id. Returns 204 No Content.
func (h *DependentHandler) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid dependent ID format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.dependentUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// SearchByIdentifierHandler looks a dependent up by raw TC number.
// POST /v1/dependents/search-by-tc.
func (h *DependentHandler) SearchByIdentifierHandler(c *gin.Context) {
	var req dto.SearchByIdentifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	dependent, err := h.dependentUseCase.FindByIdentifier(c.Request.Context(), req.TCNo)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDependentToResponse(dependent))
}
