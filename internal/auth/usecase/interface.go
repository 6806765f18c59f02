// Package usecase implements the user directory and bearer token flows.
package usecase

import (
	"context"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
	"github.com/dernekportal/tcguard/internal/requestcontext"
)

// UserRepository persists users. It is also the directory used to resolve
// a request identity to a portal user.
type UserRepository interface {
	Create(ctx context.Context, user *authDomain.User) error

	// GetByEmail returns ErrUserNotFound when no user has the email.
	GetByEmail(ctx context.Context, email string) (*authDomain.User, error)
}

// TokenUseCase exchanges credentials for bearer tokens and turns bearer
// tokens back into request identities.
type TokenUseCase interface {
	// Issue verifies the credentials of an active user and signs a token.
	// Unknown emails and wrong passwords both return ErrInvalidCredentials.
	Issue(ctx context.Context, input *authDomain.IssueTokenInput) (*authDomain.IssueTokenOutput, error)

	// Authenticate validates token and returns the identity it carries. It does
	// not consult the directory; role resolution happens where it is needed.
	Authenticate(ctx context.Context, token string) (*requestcontext.Identity, error)
}

// UserUseCase manages portal users.
type UserUseCase interface {
	Create(ctx context.Context, input *authDomain.CreateUserInput) (*authDomain.User, error)
	GetByEmail(ctx context.Context, email string) (*authDomain.User, error)
}
