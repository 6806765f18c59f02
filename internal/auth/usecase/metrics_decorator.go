package usecase

import (
	"context"
	"time"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
	"github.com/dernekportal/tcguard/internal/metrics"
	"github.com/dernekportal/tcguard/internal/requestcontext"
)

const metricsDomain = "auth"

type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{next: useCase, metrics: m}
}

func (t *tokenUseCaseWithMetrics) Issue(
	ctx context.Context,
	input *authDomain.IssueTokenInput,
) (*authDomain.IssueTokenOutput, error) {
	start := time.Now()
	output, err := t.next.Issue(ctx, input)
	t.record(ctx, "token_issue", start, err)
	return output, err
}

func (t *tokenUseCaseWithMetrics) Authenticate(ctx context.Context, token string) (*requestcontext.Identity, error) {
	start := time.Now()
	identity, err := t.next.Authenticate(ctx, token)
	t.record(ctx, "token_authenticate", start, err)
	return identity, err
}

func (t *tokenUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusOf(err)
	t.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	t.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

type userUseCaseWithMetrics struct {
	next    UserUseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UserUseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UserUseCase, m metrics.BusinessMetrics) UserUseCase {
	return &userUseCaseWithMetrics{next: useCase, metrics: m}
}

func (u *userUseCaseWithMetrics) Create(
	ctx context.Context,
	input *authDomain.CreateUserInput,
) (*authDomain.User, error) {
	start := time.Now()
	user, err := u.next.Create(ctx, input)
	status := metrics.StatusOf(err)
	u.metrics.RecordOperation(ctx, metricsDomain, "user_create", status)
	u.metrics.RecordDuration(ctx, metricsDomain, "user_create", time.Since(start), status)
	return user, err
}

func (u *userUseCaseWithMetrics) GetByEmail(ctx context.Context, email string) (*authDomain.User, error) {
	start := time.Now()
	user, err := u.next.GetByEmail(ctx, email)
	status := metrics.StatusOf(err)
	u.metrics.RecordOperation(ctx, metricsDomain, "user_get", status)
	u.metrics.RecordDuration(ctx, metricsDomain, "user_get", time.Since(start), status)
	return user, err
}
