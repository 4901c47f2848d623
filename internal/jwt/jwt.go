package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the token_type claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// ErrInvalidToken is returned when a token fails signature, shape, or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the identity claims resolved from a validated token.
type Claims struct {
	Email     string // Subject email
	Role      string // Role claim, trusted from the token
	TokenType string // access or refresh
}

// TokenPair bundles the access and refresh tokens issued together at
// signup and login. The refresh token is issued but no endpoint
// consumes it yet.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// JWT issues and validates HS256-signed tokens bound to an email and role.
type JWT struct {
	SecretKey  string        // Secret key for signing tokens
	AccessExp  time.Duration // Access token lifetime
	RefreshExp time.Duration // Refresh token lifetime
}

// New creates a new JWT instance.
func New(secretKey string, accessExp, refreshExp time.Duration) *JWT {
	return &JWT{
		SecretKey:  secretKey,
		AccessExp:  accessExp,
		RefreshExp: refreshExp,
	}
}

// GeneratePair creates an access/refresh token pair for the given identity.
func (j *JWT) GeneratePair(ctx context.Context, email, role string) (TokenPair, error) {
	access, err := j.generate(email, role, TokenTypeAccess, j.AccessExp)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := j.generate(email, role, TokenTypeRefresh, j.RefreshExp)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (j *JWT) generate(email, role, tokenType string, exp time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        email,
		"role":       role,
		"token_type": tokenType,
		"iat":        now.Unix(),
		"exp":        now.Add(exp).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// Validate parses the token string and returns its claims if the
// signature is valid and the token has not expired.
func (j *JWT) Validate(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return nil, ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	tokenType, _ := claims["token_type"].(string)

	return &Claims{Email: email, Role: role, TokenType: tokenType}, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
