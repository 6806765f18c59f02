package domain

import "time"

// IssueTokenInput holds the credentials exchanged for a bearer token.
type IssueTokenInput struct {
	Email    string
	Password string
}

// IssueTokenOutput is the signed bearer token and its expiry.
type IssueTokenOutput struct {
	Token     string
	ExpiresAt time.Time
}
