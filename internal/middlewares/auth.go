package middlewares

import (
	"context"
	"net/http"

	"github.com/promptcraft/templates/internal/jwt"
	"github.com/promptcraft/templates/internal/logger"
)

// Tokener defines the minimal interface needed by the auth middlewares.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type claimsKey struct{}

func setClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaimsFromContext retrieves the resolved identity from the
// context. Returns nil for anonymous requests.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims
}

// GetEmailFromContext returns the authenticated email, or "" when the
// request is anonymous.
func GetEmailFromContext(ctx context.Context) string {
	if claims := GetClaimsFromContext(ctx); claims != nil {
		return claims.Email
	}
	return ""
}

// AuthMiddleware returns a middleware that requires a valid access
// token and stores its claims in the request context. Identity is
// trusted from the token; no database round trip happens here.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.Validate(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if claims.TokenType != jwt.TokenTypeAccess {
				logger.Log.Errorw("authorization failed", "err", "not an access token")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(setClaimsToContext(ctx, claims)))
		})
	}
}

// OptionalAuthMiddleware resolves the identity when a valid access
// token is present and proceeds anonymously otherwise. Used by public
// read endpoints that annotate results for a known viewer.
func OptionalAuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokener.Validate(ctx, tokenString)
			if err != nil || claims.TokenType != jwt.TokenTypeAccess {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(setClaimsToContext(ctx, claims)))
		})
	}
}
