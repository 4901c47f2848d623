package handlers

import (
	"context"
	"net/http"

	"github.com/promptcraft/templates/internal/jwt"
	"github.com/promptcraft/templates/internal/middlewares"
)

// stubTokener satisfies middlewares.Tokener with fixed claims, so
// handler tests can run behind the real auth middleware.
type stubTokener struct {
	claims *jwt.Claims
}

func (s stubTokener) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	return "stub-token", nil
}

func (s stubTokener) Validate(ctx context.Context, token string) (*jwt.Claims, error) {
	return s.claims, nil
}

// authed wraps a handler in the auth middleware with a stub identity.
func authed(h http.HandlerFunc, email string) http.Handler {
	tokener := stubTokener{claims: &jwt.Claims{Email: email, Role: "USER", TokenType: jwt.TokenTypeAccess}}
	return middlewares.AuthMiddleware(tokener)(h)
}
