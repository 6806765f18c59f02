package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
)

var testSigningKey = []byte("0123456789abcdef0123456789abcdef")

func TestTokenService_IssueAndValidate(t *testing.T) {
	service := NewTokenService(testSigningKey, "tcguard", time.Hour)

	token, expiresAt, err := service.Issue("admin@dernek.org.tr")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	subject, err := service.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@dernek.org.tr", subject)
}

func TestTokenService_Validate(t *testing.T) {
	service := NewTokenService(testSigningKey, "tcguard", time.Hour)

	t.Run("Error_Expired", func(t *testing.T) {
		expired := &tokenService{
			signingKey: testSigningKey,
			issuer:     "tcguard",
			expiration: time.Minute,
			now:        func() time.Time { return time.Now().Add(-2 * time.Hour) },
		}
		token, _, err := expired.Issue("admin@dernek.org.tr")
		require.NoError(t, err)

		_, err = service.Validate(token)
		assert.ErrorIs(t, err, authDomain.ErrTokenExpired)
	})

	t.Run("Error_WrongKey", func(t *testing.T) {
		other := NewTokenService([]byte("another-key-another-key-another!!"), "tcguard", time.Hour)
		token, _, err := other.Issue("admin@dernek.org.tr")
		require.NoError(t, err)

		_, err = service.Validate(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_WrongIssuer", func(t *testing.T) {
		other := NewTokenService(testSigningKey, "someone-else", time.Hour)
		token, _, err := other.Issue("admin@dernek.org.tr")
		require.NoError(t, err)

		_, err = service.Validate(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_NoneAlgorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject: "admin@dernek.org.tr",
			Issuer:  "tcguard",
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.Validate(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_Garbage", func(t *testing.T) {
		_, err := service.Validate("not-a-jwt")
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_MissingSubject", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Issuer:    "tcguard",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		signed, err := token.SignedString(testSigningKey)
		require.NoError(t, err)

		_, err = service.Validate(signed)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})
}
