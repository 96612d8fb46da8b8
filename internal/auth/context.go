package auth

import (
	"context"
	"net/http"
	"strings"
)

type userIDCtxKey struct{}

// ContextWithUserID stores the authenticated user id, set by the auth middleware.
func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDCtxKey{}, userID)
}

func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDCtxKey{}).(int)
	return userID, ok && userID > 0
}

// TokenFromRequest reads the session token from the Authorization header,
// both "Bearer <token>" and a bare token are accepted.
func TokenFromRequest(r *http.Request) string {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	if token, found := strings.CutPrefix(authHeader, "Bearer "); found {
		return strings.TrimSpace(token)
	}
	return authHeader
}
