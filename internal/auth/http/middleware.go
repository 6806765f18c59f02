// Package http provides the bearer token endpoint and the authentication and
// rate limiting middleware.
package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/dernekportal/tcguard/internal/auth/usecase"
	apperrors "github.com/dernekportal/tcguard/internal/errors"
	"github.com/dernekportal/tcguard/internal/httputil"
	"github.com/dernekportal/tcguard/internal/requestcontext"
)

const bearerPrefix = "bearer "

// AuthenticationMiddleware validates the "Bearer <token>" Authorization
// header (prefix matched case-insensitively) and stores the resulting
// identity in the request context. Requests without a valid token are
// rejected with 401.
//
// The middleware does not resolve roles. Handlers that touch identifiers
// resolve the caller through the access guard.
func AuthenticationMiddleware(tokenUseCase authUseCase.TokenUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			logger.Debug("authentication failed: missing or malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		identity, err := tokenUseCase.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := requestcontext.WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
