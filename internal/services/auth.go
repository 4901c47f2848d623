package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/promptcraft/templates/internal/jwt"
	"github.com/promptcraft/templates/internal/logger"
	"github.com/promptcraft/templates/internal/models"
	"github.com/promptcraft/templates/internal/repositories"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, passwordHash string, firstName, lastName *string) (*models.UserDB, error)
}

// TokenPairGenerator defines an interface for issuing token pairs.
type TokenPairGenerator interface {
	GeneratePair(ctx context.Context, email, role string) (jwt.TokenPair, error)
}

// AuthResult is the identity and token pair returned by signup and login.
type AuthResult struct {
	AccessToken      string
	RefreshToken     string
	UserID           int64
	Email            string
	Role             string
	SubscriptionTier string
}

// AuthService handles signup and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenPairGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenPairGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user with USER role and FREE tier and returns
// its identity with a fresh token pair. The raw password is hashed with
// bcrypt and never stored or logged.
func (svc *AuthService) Register(ctx context.Context, email, password string, firstName, lastName *string) (*AuthResult, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("email already exists", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, email, string(hashedPassword), firstName, lastName)
	if err != nil {
		// Two concurrent signups with the same email race past the
		// existence check; the users.email unique constraint decides.
		if repositories.IsUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return svc.issueTokens(ctx, user)
}

// Login authenticates a user by email and password and returns its
// identity with a fresh token pair.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	return svc.issueTokens(ctx, user)
}

func (svc *AuthService) issueTokens(ctx context.Context, user *models.UserDB) (*AuthResult, error) {
	pair, err := svc.jwt.GeneratePair(ctx, user.Email, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token pair", "err", err)
		return nil, err
	}

	return &AuthResult{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		UserID:           user.ID,
		Email:            user.Email,
		Role:             user.Role,
		SubscriptionTier: user.SubscriptionTier,
	}, nil
}
