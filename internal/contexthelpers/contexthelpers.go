// Package contexthelpers provides type-safe access to request-scoped values.
package contexthelpers

import (
	"context"
	"net/http"
)

type contextKey string

const currentPathContextKey = contextKey("currentPath")
const csrfTokenContextKey = contextKey("csrfToken")
const cspNonceContextKey = contextKey("cspNonce")

func CurrentPath(ctx context.Context) string {
	currentPath, ok := ctx.Value(currentPathContextKey).(string)
	if !ok {
		return ""
	}

	return currentPath
}

func SetCurrentPath(r *http.Request, path string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentPathContextKey, path))
}

func CSRFToken(ctx context.Context) string {
	csrfToken, ok := ctx.Value(csrfTokenContextKey).(string)
	if !ok {
		return ""
	}

	return csrfToken
}

func SetCSRFToken(r *http.Request, csrfToken string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), csrfTokenContextKey, csrfToken))
}

func CSPNonce(ctx context.Context) string {
	cspNonce, ok := ctx.Value(cspNonceContextKey).(string)
	if !ok {
		return ""
	}

	return cspNonce
}

func SetCSPNonce(r *http.Request, cspNonce string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), cspNonceContextKey, cspNonce))
}
