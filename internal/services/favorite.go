package services

import (
	"context"
	"errors"

	"github.com/promptcraft/templates/internal/logger"
	"github.com/promptcraft/templates/internal/models"
	"github.com/promptcraft/templates/internal/repositories"
)

// ErrAlreadyFavorited is returned when a user favorites the same template twice.
var ErrAlreadyFavorited = errors.New("template already favorited")

// FavoriteReader defines read operations over the favorite ledger.
type FavoriteReader interface {
	Exists(ctx context.Context, userID, templateID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]models.FavoritedTemplate, error)
}

// FavoriteWriter defines write operations over the favorite ledger.
type FavoriteWriter interface {
	Save(ctx context.Context, userID, templateID int64) error
	Delete(ctx context.Context, userID, templateID int64) (int64, error)
}

// FavoriteCounter mutates the template favorite counter in place.
type FavoriteCounter interface {
	IncrementFavoriteCount(ctx context.Context, id int64) (int64, error)
	DecrementFavoriteCount(ctx context.Context, id int64) error
}

// FavoriteService maintains the favorite ledger and keeps the template
// favorite counter consistent with it. Both routes run behind the tx
// middleware, so the ledger row and the counter change in one
// transaction.
type FavoriteService struct {
	readRepo     FavoriteReader
	writeRepo    FavoriteWriter
	counterRepo  FavoriteCounter
	templateRepo TemplateReader
	userRepo     UserReader
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(
	readRepo FavoriteReader,
	writeRepo FavoriteWriter,
	counterRepo FavoriteCounter,
	templateRepo TemplateReader,
	userRepo UserReader,
) *FavoriteService {
	return &FavoriteService{
		readRepo:     readRepo,
		writeRepo:    writeRepo,
		counterRepo:  counterRepo,
		templateRepo: templateRepo,
		userRepo:     userRepo,
	}
}

func (s *FavoriteService) resolveUser(ctx context.Context, email string) (*models.UserDB, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to resolve user", "email", email, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Favorite records that the user favorited the template and bumps the
// counter by exactly one. A duplicate pair fails with
// ErrAlreadyFavorited; two identical concurrent requests collapse into
// the unique constraint violation, which aborts the surrounding
// transaction before the counter moves.
func (s *FavoriteService) Favorite(ctx context.Context, userEmail string, templateID int64) error {
	user, err := s.resolveUser(ctx, userEmail)
	if err != nil {
		return err
	}

	template, err := s.templateRepo.GetByID(ctx, nil, templateID)
	if err != nil {
		return err
	}
	if template == nil {
		return ErrTemplateNotFound
	}

	exists, err := s.readRepo.Exists(ctx, user.ID, templateID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyFavorited
	}

	if err := s.writeRepo.Save(ctx, user.ID, templateID); err != nil {
		if repositories.IsUniqueViolation(err) {
			return ErrAlreadyFavorited
		}
		logger.Log.Errorw("failed to save favorite", "user_id", user.ID, "template_id", templateID, "error", err)
		return err
	}

	if _, err := s.counterRepo.IncrementFavoriteCount(ctx, templateID); err != nil {
		logger.Log.Errorw("failed to increment favorite count", "template_id", templateID, "error", err)
		return err
	}

	return nil
}

// Unfavorite deletes the favorite pair if present and lowers the
// counter by exactly one, floored at zero. Unfavoriting something the
// user never favorited is a no-op success.
func (s *FavoriteService) Unfavorite(ctx context.Context, userEmail string, templateID int64) error {
	user, err := s.resolveUser(ctx, userEmail)
	if err != nil {
		return err
	}

	template, err := s.templateRepo.GetByID(ctx, nil, templateID)
	if err != nil {
		return err
	}
	if template == nil {
		return ErrTemplateNotFound
	}

	rowsAffected, err := s.writeRepo.Delete(ctx, user.ID, templateID)
	if err != nil {
		logger.Log.Errorw("failed to delete favorite", "user_id", user.ID, "template_id", templateID, "error", err)
		return err
	}
	if rowsAffected == 0 {
		return nil
	}

	if err := s.counterRepo.DecrementFavoriteCount(ctx, templateID); err != nil {
		logger.Log.Errorw("failed to decrement favorite count", "template_id", templateID, "error", err)
		return err
	}

	return nil
}

// ListFavorites returns the user's favorited templates, most recent first.
func (s *FavoriteService) ListFavorites(ctx context.Context, userEmail string) ([]models.FavoritedTemplate, error) {
	user, err := s.resolveUser(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	return s.readRepo.ListByUser(ctx, user.ID)
}
