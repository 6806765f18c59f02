// Package http serves the beneficiary, dependent, audit log and legacy
// status endpoints. Raw TC numbers are accepted only in request bodies and
// never written to responses.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/dernekportal/tcguard/internal/httputil"
	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
	nationalidUseCase "github.com/dernekportal/tcguard/internal/nationalid/usecase"
)

const callerKey = "identifier_caller"

// IdentifierAccessMiddleware rejects requests whose caller may not access
// identifier data: 401 without a resolvable session, 403 for other roles.
// The resolved caller is stored on the gin context for the handlers.
func IdentifierAccessMiddleware(guard nationalidUseCase.AccessGuard, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := guard.RequireAccess(c.Request.Context())
		if err != nil {
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}
		c.Set(callerKey, caller)
		c.Next()
	}
}

// callerFrom returns the caller stored by IdentifierAccessMiddleware, or nil
// when the route is not behind it.
func callerFrom(c *gin.Context) *nationalidDomain.Caller {
	value, ok := c.Get(callerKey)
	if !ok {
		return nil
	}
	caller, _ := value.(*nationalidDomain.Caller)
	return caller
}
