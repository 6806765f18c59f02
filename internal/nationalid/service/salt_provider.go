package service

import (
	"context"
	"log/slog"

	apperrors "github.com/dernekportal/tcguard/internal/errors"
	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
)

// SaltSource tells where a resolved salt came from.
type SaltSource string

const (
	SaltSourceConfigured      SaltSource = "configured"
	SaltSourceFallbackMissing SaltSource = "fallback_missing"
	SaltSourceFallbackEmpty   SaltSource = "fallback_empty"
	SaltSourceFallbackError   SaltSource = "fallback_error"
)

// IsFallback reports whether the fallback salt was used.
func (s SaltSource) IsFallback() bool {
	return s != SaltSourceConfigured
}

type saltProvider struct {
	settings SettingReader
	fallback string
	logger   *slog.Logger
}

// NewSaltProvider creates a SaltProvider reading the security/tc_hash_salt
// setting. An empty fallback is replaced by DefaultFallbackSalt.
func NewSaltProvider(settings SettingReader, fallback string, logger *slog.Logger) SaltProvider {
	if fallback == "" {
		fallback = nationalidDomain.DefaultFallbackSalt
	}
	return &saltProvider{settings: settings, fallback: fallback, logger: logger}
}

func (s *saltProvider) Salt(ctx context.Context) (string, SaltSource) {
	setting, err := s.settings.Get(ctx, nationalidDomain.SaltSettingCategory, nationalidDomain.SaltSettingKey)
	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		s.logger.Debug("tc hash salt not configured, using fallback")
		return s.fallback, SaltSourceFallbackMissing
	case err != nil:
		s.logger.Error("failed to read tc hash salt, using fallback", slog.Any("error", err))
		return s.fallback, SaltSourceFallbackError
	case setting.Value == "":
		s.logger.Warn("tc hash salt is empty, using fallback")
		return s.fallback, SaltSourceFallbackEmpty
	}
	return setting.Value, SaltSourceConfigured
}
