package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
)

type mockSettingReader struct {
	mock.Mock
}

func (m *mockSettingReader) Get(ctx context.Context, category, key string) (*nationalidDomain.Setting, error) {
	args := m.Called(ctx, category, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Setting), args.Error(1)
}

type mockSaltProvider struct {
	mock.Mock
}

func (m *mockSaltProvider) Salt(ctx context.Context) (string, SaltSource) {
	args := m.Called(ctx)
	return args.String(0), args.Get(1).(SaltSource)
}

type mockAuditRecorder struct {
	mock.Mock
}

func (m *mockAuditRecorder) Record(ctx context.Context, entry nationalidDomain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
