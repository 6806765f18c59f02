package http

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/dernekportal/tcguard/internal/requestcontext"
)

// CustomLoggerMiddleware logs one line per request. Query strings are never
// logged; identifiers travel in bodies only.
func CustomLoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
			slog.String("request_id", requestid.Get(c)),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		logger.LogAttrs(c.Request.Context(), slog.LevelInfo, "http request", attrs...)
	}
}

// RequestContextMiddleware copies the request ID and client details into the
// request context so use cases can attach them to audit logs.
func RequestContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := requestcontext.WithRequestID(c.Request.Context(), requestid.Get(c))
		ctx = requestcontext.WithClientInfo(ctx, requestcontext.NewClientInfo(c.ClientIP(), c.Request.UserAgent()))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
