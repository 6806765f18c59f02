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

// BeneficiaryHandler handles HTTP requests for beneficiaries.
type BeneficiaryHandler struct {
	beneficiaryUseCase nationalidUseCase.BeneficiaryUseCase
	logger             *slog.Logger
}

// NewBeneficiaryHandler creates a BeneficiaryHandler.
func NewBeneficiaryHandler(
	beneficiaryUseCase nationalidUseCase.BeneficiaryUseCase,
	logger *slog.Logger,
) *BeneficiaryHandler {
	return &BeneficiaryHandler{
		beneficiaryUseCase: beneficiaryUseCase,
		logger:             logger,
	}
}

// CreateHandler creates a beneficiary with a hashed TC number.
// POST /v1/beneficiaries. Returns 201 Created.
func (h *BeneficiaryHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	beneficiary, err := h.beneficiaryUseCase.Create(c.Request.Context(), req.ToInput(), callerFrom(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapBeneficiaryToResponse(beneficiary))
}

// GetHandler returns a beneficiary by id.
// GET /v1/beneficiaries/:id.
func (h *BeneficiaryHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid beneficiary ID format: must be a valid UUID"),
			h.logger)
		return
	}

	beneficiary, err := h.beneficiaryUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBeneficiaryToResponse(beneficiary))
}

// ListHandler returns beneficiaries newest first.
// GET /v1/beneficiaries?offset=0&limit=50.
func (h *BeneficiaryHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	beneficiaries, err := h.beneficiaryUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBeneficiariesToListResponse(beneficiaries))
}

// UpdateHandler applies a partial update. A tc_no of "" clears the identifier.
// PATCH /v1/beneficiaries/:id.
func (h *BeneficiaryHandler) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid beneficiary ID format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.UpdateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	beneficiary, err := h.beneficiaryUseCase.Update(c.Request.Context(), id, req.ToInput(), callerFrom(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBeneficiaryToResponse(beneficiary))
}

// DeleteHandler removes a beneficiary and its dependents.
// DELETE /v1/beneficiaries/:id. Returns 204 No Content.
func (h *BeneficiaryHandler) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid beneficiary ID format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.beneficiaryUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// SearchByIdentifierHandler looks a beneficiary up by raw TC number.
// POST /v1/beneficiaries/search-by-tc. Hashed and legacy rows both match.
func (h *BeneficiaryHandler) SearchByIdentifierHandler(c *gin.Context) {
	var req dto.SearchByIdentifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	beneficiary, err := h.beneficiaryUseCase.FindByIdentifier(c.Request.Context(), req.TCNo)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBeneficiaryToResponse(beneficiary))
}
