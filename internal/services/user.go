package services

import (
	"context"

	"github.com/promptcraft/templates/internal/logger"
	"github.com/promptcraft/templates/internal/models"
)

// UserService exposes the current user's profile.
type UserService struct {
	reader UserReader
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader) *UserService {
	return &UserService{reader: reader}
}

// Profile returns the user behind the authenticated email.
func (svc *UserService) Profile(ctx context.Context, email string) (*models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user profile", "email", email, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
