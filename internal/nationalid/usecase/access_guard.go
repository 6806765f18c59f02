package usecase

import (
	"context"
	"log/slog"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
	apperrors "github.com/dernekportal/tcguard/internal/errors"
	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
	"github.com/dernekportal/tcguard/internal/requestcontext"
)

type sessionResolver struct {
	directory UserDirectory
}

// NewSessionResolver creates a SessionResolver treating the identity's token
// identifier as an email in directory.
func NewSessionResolver(directory UserDirectory) SessionResolver {
	return &sessionResolver{directory: directory}
}

func (s *sessionResolver) Resolve(ctx context.Context) (*nationalidDomain.Caller, error) {
	identity, ok := requestcontext.IdentityFrom(ctx)
	if !ok {
		return nil, nationalidDomain.ErrNoIdentity
	}

	user, err := s.directory.GetByEmail(ctx, identity.TokenIdentifier)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, nationalidDomain.ErrCallerNotFound
		}
		return nil, apperrors.Wrap(err, "failed to resolve caller")
	}
	if !user.IsActive {
		return nil, nationalidDomain.ErrCallerInactive
	}

	return &nationalidDomain.Caller{
		UserID: user.ID,
		Role:   authDomain.RoleOrDefault(user.Role),
	}, nil
}

type accessGuard struct {
	resolver SessionResolver
	logger   *slog.Logger
}

// NewAccessGuard creates an AccessGuard.
func NewAccessGuard(resolver SessionResolver, logger *slog.Logger) AccessGuard {
	return &accessGuard{resolver: resolver, logger: logger}
}

func (g *accessGuard) RequireAccess(ctx context.Context) (*nationalidDomain.Caller, error) {
	caller, err := g.resolver.Resolve(ctx)
	if err != nil {
		g.logger.InfoContext(ctx, "tc access denied: caller not resolved", slog.Any("reason", err))
		return nil, nationalidDomain.ErrAuthenticationRequired
	}
	return g.check(ctx, caller)
}

func (g *accessGuard) Authorize(
	ctx context.Context,
	claim *nationalidDomain.Caller,
) (*nationalidDomain.Caller, error) {
	if claim == nil {
		return g.RequireAccess(ctx)
	}
	return g.check(ctx, claim)
}

func (g *accessGuard) check(ctx context.Context, caller *nationalidDomain.Caller) (*nationalidDomain.Caller, error) {
	if !nationalidDomain.CanAccess(caller.Role) {
		g.logger.InfoContext(ctx, "tc access denied: insufficient role",
			slog.String("user_id", caller.UserID.String()),
			slog.String("role", caller.Role.String()),
		)
		return nil, nationalidDomain.ErrInsufficientPermissions
	}
	return caller, nil
}
