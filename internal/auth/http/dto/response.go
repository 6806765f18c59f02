package dto

import "time"

// IssueTokenResponse is returned by POST /v1/token.
type IssueTokenResponse struct {
	Token     string    `json:"token"` //nolint:gosec // bearer token returned to its owner
	ExpiresAt time.Time `json:"expires_at"`
}
