package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"civicconnect-api/internal/auth"
)

type ctxKey string

const userKey ctxKey = "user"

// Authenticate validates an Authorization: Bearer <jwt> header and returns a
// context carrying the authenticated username.
func Authenticate(ctx context.Context, header, secret string) (context.Context, error) {
	raw := strings.TrimPrefix(header, "Bearer ")
	if raw == "" {
		return nil, status.Error(codes.Unauthenticated, "no token")
	}

	claims, err := auth.ParseToken(raw, secret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "bad token")
	}
	return context.WithValue(ctx, userKey, claims.Username), nil
}

// Username returns the authenticated username, or "" outside a login.
func Username(ctx context.Context) string {
	if v, ok := ctx.Value(userKey).(string); ok {
		return v
	}
	return ""
}
