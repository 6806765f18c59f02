// Package requestcontext holds request-scoped values shared between HTTP
// middleware, CLI commands and use cases. It has no net/http dependency, so
// services read these values without importing the transport layer.
//
// Middleware sets values:
//
//	ctx = requestcontext.WithIdentity(ctx, &requestcontext.Identity{TokenIdentifier: email})
//	ctx = requestcontext.WithRequestID(ctx, requestID)
//
// Use cases read them:
//
//	identity, ok := requestcontext.IdentityFrom(ctx)
package requestcontext

import (
	"context"
	"strings"

	"github.com/mssola/useragent"
)

type (
	identityKey   struct{}
	requestIDKey  struct{}
	clientInfoKey struct{}
)

// Identity is the authenticated caller as established by the transport layer.
// TokenIdentifier is the subject of the bearer token, an email address.
type Identity struct {
	TokenIdentifier string
}

// WithIdentity stores the authenticated identity in ctx.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFrom returns the identity stored in ctx. It reports false when no
// identity is present or its token identifier is blank.
func IdentityFrom(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*Identity)
	if !ok || identity == nil || strings.TrimSpace(identity.TokenIdentifier) == "" {
		return nil, false
	}
	return identity, true
}

// WithRequestID stores the request ID in ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request ID stored in ctx, or "".
func RequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}

// ClientInfo describes the client that issued the request.
type ClientInfo struct {
	IP             string `json:"ip,omitempty"`
	UserAgent      string `json:"user_agent,omitempty"`
	Browser        string `json:"browser,omitempty"`
	BrowserVersion string `json:"browser_version,omitempty"`
	OS             string `json:"os,omitempty"`
	Mobile         bool   `json:"mobile"`
	Bot            bool   `json:"bot"`
}

// NewClientInfo parses the raw User-Agent header into a ClientInfo.
func NewClientInfo(ip, rawUserAgent string) *ClientInfo {
	info := &ClientInfo{IP: ip, UserAgent: rawUserAgent}
	if rawUserAgent == "" {
		return info
	}

	ua := useragent.New(rawUserAgent)
	info.Browser, info.BrowserVersion = ua.Browser()
	info.OS = ua.OS()
	info.Mobile = ua.Mobile()
	info.Bot = ua.Bot()
	return info
}

// WithClientInfo stores the client info in ctx.
func WithClientInfo(ctx context.Context, info *ClientInfo) context.Context {
	return context.WithValue(ctx, clientInfoKey{}, info)
}

// ClientInfoFrom returns the client info stored in ctx, or nil.
func ClientInfoFrom(ctx context.Context) *ClientInfo {
	info, _ := ctx.Value(clientInfoKey{}).(*ClientInfo)
	return info
}
