package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
	apperrors "github.com/dernekportal/tcguard/internal/errors"
)

type tokenService struct {
	signingKey []byte
	issuer     string
	expiration time.Duration
	now        func() time.Time
}

func (t *tokenService) Issue(subject string) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(t.expiration)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    t.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	})

	signed, err := token.SignedString(t.signingKey)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}
	return signed, expiresAt, nil
}

func (t *tokenService) Validate(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenUnverifiable
			}
			return t.signingKey, nil
		},
		jwt.WithIssuer(t.issuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", authDomain.ErrTokenExpired
		}
		return "", authDomain.ErrInvalidToken
	}

	if !parsed.Valid || claims.Subject == "" {
		return "", authDomain.ErrInvalidToken
	}
	return claims.Subject, nil
}

// NewTokenService creates an HS256 TokenService.
func NewTokenService(signingKey []byte, issuer string, expiration time.Duration) TokenService {
	return &tokenService{
		signingKey: signingKey,
		issuer:     issuer,
		expiration: expiration,
		now:        time.Now,
	}
}
