// Package mocks provides testify mocks for the auth use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
	"github.com/dernekportal/tcguard/internal/requestcontext"
)

// MockTokenUseCase is a mock implementation of usecase.TokenUseCase.
type MockTokenUseCase struct {
	mock.Mock
}

// Issue mocks TokenUseCase.Issue.
func (m *MockTokenUseCase) Issue(
	ctx context.Context,
	input *authDomain.IssueTokenInput,
) (*authDomain.IssueTokenOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.IssueTokenOutput), args.Error(1)
}

// Authenticate mocks TokenUseCase.Authenticate.
func (m *MockTokenUseCase) Authenticate(ctx context.Context, token string) (*requestcontext.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requestcontext.Identity), args.Error(1)
}
