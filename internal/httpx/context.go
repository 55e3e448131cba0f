package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	tokenIDKey   contextKey = "tokenID"
	requestIDKey contextKey = "requestID"
	accessKey    contextKey = "access"
)

// accessInfo is filled in by inner handlers for the access log.
type accessInfo struct {
	userID string
}

// UserIDFrom retrieves the authenticated username from the request context.
func UserIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(userIDKey).(string); ok {
		return v
	}
	return ""
}

// TokenIDFrom retrieves the jti of the bearer token used for the request.
func TokenIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(tokenIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithUser returns a new context with the user id and token id.
func ContextWithUser(ctx context.Context, userID, tokenID string) context.Context {
	if info, ok := ctx.Value(accessKey).(*accessInfo); ok {
		info.userID = userID
	}
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, tokenIDKey, tokenID)
}

func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
