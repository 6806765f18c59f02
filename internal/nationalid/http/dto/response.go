package dto

import (
	"time"

	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
)

// BeneficiaryResponse never carries the stored identifier, only whether it
// is hashed, legacy plaintext or absent.
type BeneficiaryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TCNoStatus   string    `json:"tc_no_status"`
	Phone        string    `json:"phone"`
	Email        *string   `json:"email,omitempty"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	District     string    `json:"district"`
	Neighborhood string    `json:"neighborhood"`
	FamilySize   int       `json:"family_size"`
	Status       string    `json:"status"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MapBeneficiaryToResponse converts a beneficiary to its response body.
func MapBeneficiaryToResponse(b *nationalidDomain.Beneficiary) BeneficiaryResponse {
	return BeneficiaryResponse{
		ID:           b.ID.String(),
		Name:         b.Name,
		TCNoStatus:   string(nationalidDomain.IdentifierStatusOf(b.TCNo)),
		Phone:        b.Phone,
		Email:        b.Email,
		Address:      b.Address,
		City:         b.City,
		District:     b.District,
		Neighborhood: b.Neighborhood,
		FamilySize:   b.FamilySize,
		Status:       string(b.Status),
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// ListBeneficiariesResponse wraps a page of beneficiaries.
type ListBeneficiariesResponse struct {
	Data []BeneficiaryResponse `json:"data"`
}

// MapBeneficiariesToListResponse converts a page of beneficiaries.
func MapBeneficiariesToListResponse(beneficiaries []*nationalidDomain.Beneficiary) ListBeneficiariesResponse {
	data := make([]BeneficiaryResponse, 0, len(beneficiaries))
	for _, b := range beneficiaries {
		data = append(data, MapBeneficiaryToResponse(b))
	}
	return ListBeneficiariesResponse{Data: data}
}

// DependentResponse never carries the stored identifier.
type DependentResponse struct {
	ID            string    `json:"id"`
	BeneficiaryID string    `json:"beneficiary_id"`
	Name          string    `json:"name"`
	Relationship  string    `json:"relationship"`
	BirthDate     *string   `json:"birth_date,omitempty"`
	Gender        *string   `json:"gender,omitempty"`
	TCNoStatus    string    `json:"tc_no_status"`
	Phone         *string   `json:"phone,omitempty"`
	HasDisability bool      `json:"has_disability"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MapDependentToResponse converts a dependent to its response body.
func MapDependentToResponse(d *nationalidDomain.Dependent) DependentResponse {
	return DependentResponse{
		ID:            d.ID.String(),
		BeneficiaryID: d.BeneficiaryID.String(),
		Name:          d.Name,
		Relationship:  d.Relationship,
		BirthDate:     d.BirthDate,
		Gender:        d.Gender,
		TCNoStatus:    string(nationalidDomain.IdentifierStatusOf(d.TCNo)),
		Phone:         d.Phone,
		HasDisability: d.HasDisability,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// ListDependentsResponse wraps the dependents of a beneficiary.
type ListDependentsResponse struct {
	Data []DependentResponse `json:"data"`
}

// MapDependentsToListResponse converts a list of dependents.
func MapDependentsToListResponse(dependents []*nationalidDomain.Dependent) ListDependentsResponse {
	data := make([]DependentResponse, 0, len(dependents))
	for _, d := range dependents {
		data = append(data, MapDependentToResponse(d))
	}
	return ListDependentsResponse{Data: data}
}

// AuditLogResponse is one persisted audit entry. The identifier is masked at
// the source.
type AuditLogResponse struct {
	ID               string         `json:"id"`
	RequestID        string         `json:"request_id"`
	UserID           string         `json:"user_id"`
	Role             string         `json:"role"`
	Action           string         `json:"action"`
	MaskedIdentifier string         `json:"masked_identifier"`
	Extra            string         `json:"extra,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	IsSigned         bool           `json:"is_signed"`
	CreatedAt        time.Time      `json:"created_at"`
}

// ListAuditLogsResponse wraps a page of audit logs.
type ListAuditLogsResponse struct {
	Data []AuditLogResponse `json:"data"`
}

// MapAuditLogsToListResponse converts a page of audit logs.
func MapAuditLogsToListResponse(auditLogs []*nationalidDomain.AuditLog) ListAuditLogsResponse {
	data := make([]AuditLogResponse, 0, len(auditLogs))
	for _, l := range auditLogs {
		data = append(data, AuditLogResponse{
			ID:               l.ID.String(),
			RequestID:        l.RequestID,
			UserID:           l.UserID.String(),
			Role:             l.Role,
			Action:           l.Action,
			MaskedIdentifier: l.MaskedIdentifier,
			Extra:            l.Extra,
			Metadata:         l.Metadata,
			IsSigned:         l.IsSigned,
			CreatedAt:        l.CreatedAt,
		})
	}
	return ListAuditLogsResponse{Data: data}
}

// LegacyStatusResponse reports how many plaintext identifiers remain.
type LegacyStatusResponse struct {
	Beneficiaries int64 `json:"beneficiaries"`
	Dependents    int64 `json:"dependents"`
	Complete      bool  `json:"complete"`
}

// MapLegacyStatusToResponse converts a legacy status report.
func MapLegacyStatusToResponse(status *nationalidDomain.LegacyStatus) LegacyStatusResponse {
	return LegacyStatusResponse{
		Beneficiaries: status.Beneficiaries,
		Dependents:    status.Dependents,
		Complete:      status.Complete(),
	}
}
