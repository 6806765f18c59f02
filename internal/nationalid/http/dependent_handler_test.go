package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
	"github.com/dernekportal/tcguard/internal/nationalid/http/dto"
	"github.com/dernekportal/tcguard/internal/nationalid/http/mocks"
)

func newTestDependent(beneficiaryID uuid.UUID) *nationalidDomain.Dependent {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	return &nationalidDomain.Dependent{
		ID:            uuid.Must(uuid.NewV7()),
		BeneficiaryID: beneficiaryID,
		Name:          "Ali Yılmaz",
		Relationship:  "child",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func setupDependentRouter(uc *mocks.MockDependentUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewDependentHandler(uc, discardLogger())

	router := gin.New()
	router.POST("/v1/beneficiaries/:id/dependents", handler.CreateHandler)
	router.GET("/v1/beneficiaries/:id/dependents", handler.ListHandler)
	router.POST("/v1/dependents/search-by-tc", handler.SearchByIdentifierHandler)
	router.PATCH("/v1/dependents/:id", handler.UpdateHandler)
	router.DELETE("/v1/dependents/:id", handler.DeleteHandler)
	return router
}

func TestDependentHandler_CreateHandler(t *testing.T) {
	t.Run("Success_WithoutIdentifier", func(t *testing.T) {
		uc := &mocks.MockDependentUseCase{}
		beneficiaryID := uuid.Must(uuid.NewV7())
		dependent := newTestDependent(beneficiaryID)
		uc.On("Create", mock.Anything, mock.MatchedBy(func(in *nationalidDomain.CreateDependentInput) bool {
			return in.BeneficiaryID == beneficiaryID && in.TCNo == "" && in.Relationship == "child"
		}), (*nationalidDomain.Caller)(nil)).Return(dependent, nil)

		w := doJSON(setupDependentRouter(uc), http.MethodPost,
			"/v1/beneficiaries/"+beneficiaryID.String()+"/dependents",
			`{"name":"Ali Yılmaz","relationship":"child"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp dto.DependentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, beneficiaryID.String(), resp.BeneficiaryID)
		assert.Equal(t, string(nationalidDomain.IdentifierStatusNone), resp.TCNoStatus)
		uc.AssertExpectations(t)
	})

	t.Run("Success_WithIdentifier", func(t *testing.T) {
		uc := &mocks.MockDependentUseCase{}
		beneficiaryID := uuid.Must(uuid.NewV7())
		dependent := newTestDependent(beneficiaryID)
		tc := hashedIdentifier
		dependent.TCNo = &tc
		uc.On("Create", mock.Anything, mock.MatchedBy(func(in *nationalidDomain.CreateDependentInput) bool {
			return in.TCNo == rawIdentifier
		}), mock.Anything).Return(dependent, nil)

		w := doJSON(setupDependentRouter(uc), http.MethodPost,
			"/v1/beneficiaries/"+beneficiaryID.String()+"/dependents",
			`{"name":"Ali Yılmaz","relationship":"child","tc_no":"12345678901","birth_date":"2015-03-01"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotContains(t, w.Body.String(), rawIdentifier)
		assert.NotContains(t, w.Body.String(), hashedIdentifier)
	})

	t.Run("Error_InvalidBeneficiaryID", func(t *testing.T) {
		w := doJSON(setupDependentRouter(&mocks.MockDependentUseCase{}), http.MethodPost,
			"/v1/beneficiaries/nope/dependents", `{"name":"Ali","relationship":"child"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_InvalidBirthDate", func(t *testing.T) {
		beneficiaryID := uuid.Must(uuid.NewV7())
		w := doJSON(setupDependentRouter(&mocks.MockDependentUseCase{}), http.MethodPost,
			"/v1/beneficiaries/"+beneficiaryID.String()+"/dependents",
			`{"name":"Ali","relationship":"child","birth_date":"01/03/2015"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_BeneficiaryNotFound", func(t *testing.T) {
		uc := &mocks.MockDependentUseCase{}
		beneficiaryID := uuid.Must(uuid.NewV7())
		uc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, nationalidDomain.ErrBeneficiaryNotFound)

		w := doJSON(setupDependentRouter(uc), http.MethodPost,
			"/v1/beneficiaries/"+beneficiaryID.String()+"/dependents", `{"name":"Ali","relationship":"child"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDependentHandler_ListHandler(t *testing.T) {
	t.Run("Success_List", func(t *testing.T) {
		uc := &mocks.MockDependentUseCase{}
		beneficiaryID := uuid.Must(uuid.NewV7())
		uc.On("ListByBeneficiary", mock.Anything, beneficiaryID).Return([]*nationalidDomain.Dependent{
			newTestDependent(beneficiaryID),
		}, nil)

		w := doJSON(setupDependentRouter(uc), http.MethodGet, "/v1/beneficiaries/"+beneficiaryID.String()+"/dependents", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.ListDependentsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Data, 1)
	})

	t.Run("Error_InvalidBeneficiaryID", func(t *testing.T) {
		w := doJSON(setupDependentRouter(&mocks.MockDependentUseCase{}), http.MethodGet, "/v1/beneficiaries/x/dependents", "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestDependentHandler_UpdateHandler(t *testing.T) {
	t.Run("Success_SetIdentifier", func(t *testing.T) {
		uc := &mocks.MockDependentUseCase{}
		dependent := newTestDependent(uuid.Must(uuid.NewV7()))
		tc := hashedIdentifier
		dependent.TCNo = &tc
		uc.On("Update", mock.Anything, dependent.ID, mock.MatchedBy(func(in *nationalidDomain.UpdateDependentInput) bool {
			return in.TCNo != nil && *in.TCNo == rawIdentifier
		}), (*nationalidDomain.Caller)(nil)).Return(dependent, nil)

		w := doJSON(setupDependentRouter(uc), http.MethodPatch, "/v1/dependents/"+dependent.ID.String(),
			`{"tc_no":"12345678901"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), hashedIdentifier)
		uc.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		uc := &mocks.MockDependentUseCase{}
		id := uuid.Must(uuid.NewV7())
		uc.On("Update", mock.Anything, id, mock.Anything, mock.Anything).Return(nil, nationalidDomain.ErrDependentNotFound)

		w := doJSON(setupDependentRouter(uc), http.MethodPatch, "/v1/dependents/"+id.String(), `{"name":"Veli"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_EmptyName", func(t *testing.T) {
		id := uuid.Must(uuid.NewV7())
		w := doJSON(setupDependentRouter(&mocks.MockDependentUseCase{}), http.MethodPatch, "/v1/dependents/"+id.String(),
			`{"name":""}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestDependentHandler_DeleteHandler(t *testing.T) {
	t.Run("Success_NoContent", func(t *testing.T) {
		uc := &mocks.MockDependentUseCase{}
		id := uuid.Must(uuid.NewV7())
		uc.On("Delete", mock.Anything, id).Return(nil)

		w := doJSON(setupDependentRouter(uc), http.MethodDelete, "/v1/dependents/"+id.String(), "")

		assert.Equal(t, http.StatusNoContent, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("Error_InvalidUUID", func(t *testing.T) {
		w := doJSON(setupDependentRouter(&mocks.MockDependentUseCase{}), http.MethodDelete, "/v1/dependents/x", "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestDependentHandler_SearchByIdentifierHandler(t *testing.T) {
	t.Run("Success_Found", func(t *testing.T) {
		uc := &mocks.MockDependentUseCase{}
		uc.On("FindByIdentifier", mock.Anything, rawIdentifier).Return(newTestDependent(uuid.Must(uuid.NewV7())), nil)

		w := doJSON(setupDependentRouter(uc), http.MethodPost, "/v1/dependents/search-by-tc", `{"tc_no":"12345678901"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), rawIdentifier)
	})

	t.Run("Error_Forbidden", func(t *testing.T) {
		uc := &mocks.MockDependentUseCase{}
		uc.On("FindByIdentifier", mock.Anything, rawIdentifier).Return(nil, nationalidDomain.ErrInsufficientPermissions)

		w := doJSON(setupDependentRouter(uc), http.MethodPost, "/v1/dependents/search-by-tc", `{"tc_no":"12345678901"}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
