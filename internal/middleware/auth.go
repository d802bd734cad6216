package middleware

import (
	"context"

	"connectrpc.com/connect"
	"github.com/mmynk/giftdraw/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for storing the authenticated user ID.
	UserIDKey contextKey = "user_id"
	// EmailKey is the context key for storing the authenticated user's email.
	EmailKey contextKey = "email"
	// AdminKey is the context key for the administrator capability.
	AdminKey contextKey = "admin"
)

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetEmail extracts the user email from the context.
// Returns empty string if not found.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// IsAdmin reports whether the authenticated caller holds the administrator capability.
func IsAdmin(ctx context.Context) bool {
	admin, _ := ctx.Value(AdminKey).(bool)
	return admin
}

func withClaims(ctx context.Context, claims *auth.Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, EmailKey, claims.Email)
	return context.WithValue(ctx, AdminKey, claims.Admin)
}

func claimsFromRequest(jwtManager *auth.JWTManager, req connect.AnyRequest) (*auth.Claims, error) {
	token, err := auth.BearerToken(req.Header().Get("Authorization"))
	if err != nil {
		return nil, err
	}
	return jwtManager.Validate(token)
}

// RequireAdmin returns an interceptor that admits only callers presenting a
// valid bearer token with the admin claim. Missing or bad tokens get
// Unauthenticated; valid non-admin tokens get PermissionDenied.
func RequireAdmin(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			claims, err := claimsFromRequest(jwtManager, req)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}
			if !claims.Admin {
				return nil, connect.NewError(connect.CodePermissionDenied, auth.ErrNotAdmin)
			}
			return next(withClaims(ctx, claims), req)
		}
	}
}

// OptionalAuth returns a middleware that validates JWT tokens if present, but allows
// requests without authentication. Handlers decide what an anonymous caller may do.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if claims, err := claimsFromRequest(jwtManager, req); err == nil {
				ctx = withClaims(ctx, claims)
			}
			return next(ctx, req)
		}
	}
}
