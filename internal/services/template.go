package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/promptcraft/templates/internal/logger"
	"github.com/promptcraft/templates/internal/models"
)

// Error variables
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrForbidden        = errors.New("you don't have permission to modify this template")
	ErrInvalidCategory  = errors.New("invalid category")
)

// TemplateReader defines read operations over the template catalog.
type TemplateReader interface {
	ListPublic(ctx context.Context, viewerID *int64, page models.PageRequest) ([]models.TemplateWithViewer, int64, error)
	SearchPublic(ctx context.Context, viewerID *int64, term string, page models.PageRequest) ([]models.TemplateWithViewer, int64, error)
	ListByCategory(ctx context.Context, viewerID *int64, category string, page models.PageRequest) ([]models.TemplateWithViewer, int64, error)
	ListByForDevs(ctx context.Context, viewerID *int64, forDevs bool, page models.PageRequest) ([]models.TemplateWithViewer, int64, error)
	ListPopular(ctx context.Context, viewerID *int64, page models.PageRequest) ([]models.TemplateWithViewer, int64, error)
	GetByID(ctx context.Context, viewerID *int64, id int64) (*models.TemplateWithViewer, error)
}

// TemplateWriter defines write operations over the template catalog.
type TemplateWriter interface {
	Save(ctx context.Context, fields models.TemplateFields, userID int64) (*models.TemplateDB, error)
	Update(ctx context.Context, id, ownerID int64, fields models.TemplateFields) (int64, error)
	Delete(ctx context.Context, id, ownerID int64) (int64, error)
	IncrementUsage(ctx context.Context, id int64) (int64, error)
}

// UserCache caches user ids by email.
type UserCache interface {
	GetUserIDByEmail(ctx context.Context, email string) (int64, error)
	SetUserIDByEmail(ctx context.Context, email string, id int64) error
}

// StatsWriter maintains per-user usage aggregates.
type StatsWriter interface {
	IncrementForToday(ctx context.Context, userID int64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TemplateService implements the catalog operations: public listings
// annotated for the viewer, ownership-gated mutations, and the usage
// counter with its telemetry event stream.
type TemplateService struct {
	readRepo    TemplateReader
	writeRepo   TemplateWriter
	userRepo    UserReader
	userCache   UserCache
	statsRepo   StatsWriter
	kafkaWriter KafkaWriter
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(
	readRepo TemplateReader,
	writeRepo TemplateWriter,
	userRepo UserReader,
	userCache UserCache,
	statsRepo StatsWriter,
	kafkaWriter KafkaWriter,
) *TemplateService {
	return &TemplateService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		userRepo:    userRepo,
		userCache:   userCache,
		statsRepo:   statsRepo,
		kafkaWriter: kafkaWriter,
	}
}

// resolveViewerID maps a viewer email to a user id for favorite
// annotation. Anonymous viewers and emails without a matching user
// resolve to nil. Emails are immutable, so the cached mapping is
// consulted before the database.
func (s *TemplateService) resolveViewerID(ctx context.Context, viewerEmail string) *int64 {
	if viewerEmail == "" {
		return nil
	}

	if s.userCache != nil {
		if id, err := s.userCache.GetUserIDByEmail(ctx, viewerEmail); err == nil {
			return &id
		}
	}

	user, err := s.userRepo.GetByEmail(ctx, viewerEmail)
	if err != nil || user == nil {
		return nil
	}

	if s.userCache != nil {
		if err := s.userCache.SetUserIDByEmail(ctx, viewerEmail, user.ID); err != nil {
			logger.Log.Warnw("failed to cache user id", "email", viewerEmail, "error", err)
		}
	}

	return &user.ID
}

// ListPublic returns one page of public templates.
func (s *TemplateService) ListPublic(ctx context.Context, page models.PageRequest, viewerEmail string) (models.Page[models.TemplateWithViewer], error) {
	page = page.Normalize()
	templates, total, err := s.readRepo.ListPublic(ctx, s.resolveViewerID(ctx, viewerEmail), page)
	if err != nil {
		logger.Log.Errorw("failed to list public templates", "error", err)
		return models.Page[models.TemplateWithViewer]{}, err
	}
	return models.NewPage(templates, total, page), nil
}

// Search returns public templates whose title or content contains the term.
func (s *TemplateService) Search(ctx context.Context, term string, page models.PageRequest, viewerEmail string) (models.Page[models.TemplateWithViewer], error) {
	page = page.Normalize()
	templates, total, err := s.readRepo.SearchPublic(ctx, s.resolveViewerID(ctx, viewerEmail), term, page)
	if err != nil {
		logger.Log.Errorw("failed to search templates", "term", term, "error", err)
		return models.Page[models.TemplateWithViewer]{}, err
	}
	return models.NewPage(templates, total, page), nil
}

// ListByCategory returns public templates in the given category.
func (s *TemplateService) ListByCategory(ctx context.Context, category string, page models.PageRequest, viewerEmail string) (models.Page[models.TemplateWithViewer], error) {
	if !models.IsValidCategory(category) {
		return models.Page[models.TemplateWithViewer]{}, ErrInvalidCategory
	}
	page = page.Normalize()
	templates, total, err := s.readRepo.ListByCategory(ctx, s.resolveViewerID(ctx, viewerEmail), category, page)
	if err != nil {
		logger.Log.Errorw("failed to list templates by category", "category", category, "error", err)
		return models.Page[models.TemplateWithViewer]{}, err
	}
	return models.NewPage(templates, total, page), nil
}

// ListByForDevs returns public templates filtered by the forDevs flag.
func (s *TemplateService) ListByForDevs(ctx context.Context, forDevs bool, page models.PageRequest, viewerEmail string) (models.Page[models.TemplateWithViewer], error) {
	page = page.Normalize()
	templates, total, err := s.readRepo.ListByForDevs(ctx, s.resolveViewerID(ctx, viewerEmail), forDevs, page)
	if err != nil {
		logger.Log.Errorw("failed to list templates by forDevs", "for_devs", forDevs, "error", err)
		return models.Page[models.TemplateWithViewer]{}, err
	}
	return models.NewPage(templates, total, page), nil
}

// ListPopular returns public templates ordered by usage count.
func (s *TemplateService) ListPopular(ctx context.Context, page models.PageRequest, viewerEmail string) (models.Page[models.TemplateWithViewer], error) {
	page = page.Normalize()
	templates, total, err := s.readRepo.ListPopular(ctx, s.resolveViewerID(ctx, viewerEmail), page)
	if err != nil {
		logger.Log.Errorw("failed to list popular templates", "error", err)
		return models.Page[models.TemplateWithViewer]{}, err
	}
	return models.NewPage(templates, total, page), nil
}

// GetByID returns a single template by id. Visibility is intentionally
// not enforced here: private templates are retrievable by id, and
// clients rely on that for share links.
func (s *TemplateService) GetByID(ctx context.Context, id int64, viewerEmail string) (*models.TemplateWithViewer, error) {
	template, err := s.readRepo.GetByID(ctx, s.resolveViewerID(ctx, viewerEmail), id)
	if err != nil {
		logger.Log.Errorw("failed to get template", "id", id, "error", err)
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}
	return template, nil
}

// normalizeFields applies the category default and validates the
// closed category set.
func normalizeFields(fields models.TemplateFields) (models.TemplateFields, error) {
	if fields.Category == "" {
		fields.Category = models.CategoryOther
	}
	if !models.IsValidCategory(fields.Category) {
		return fields, ErrInvalidCategory
	}
	return fields, nil
}

// Create stores a new template owned by the user behind ownerEmail.
// isOfficial is always forced false on this path.
func (s *TemplateService) Create(ctx context.Context, fields models.TemplateFields, ownerEmail string) (*models.TemplateWithViewer, error) {
	fields, err := normalizeFields(fields)
	if err != nil {
		return nil, err
	}

	owner, err := s.userRepo.GetByEmail(ctx, ownerEmail)
	if err != nil {
		logger.Log.Errorw("failed to resolve owner", "email", ownerEmail, "error", err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}

	template, err := s.writeRepo.Save(ctx, fields, owner.ID)
	if err != nil {
		logger.Log.Errorw("failed to save template", "error", err)
		return nil, err
	}

	return &models.TemplateWithViewer{
		TemplateDB:   *template,
		IsFavorited:  false,
		CreatorEmail: &owner.Email,
	}, nil
}

// Update replaces the mutable fields of a template. Only the owner may
// update; official templates have no owner and can never match, so
// they are effectively immutable through this path.
func (s *TemplateService) Update(ctx context.Context, id int64, fields models.TemplateFields, ownerEmail string) (*models.TemplateWithViewer, error) {
	fields, err := normalizeFields(fields)
	if err != nil {
		return nil, err
	}

	template, err := s.readRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	owner, err := s.userRepo.GetByEmail(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}

	if template.UserID == nil || *template.UserID != owner.ID {
		return nil, ErrForbidden
	}

	// Ownership is re-checked inside the UPDATE's WHERE clause, so a
	// concurrent delete cannot slip a write through.
	rowsAffected, err := s.writeRepo.Update(ctx, id, owner.ID, fields)
	if err != nil {
		logger.Log.Errorw("failed to update template", "id", id, "error", err)
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, ErrTemplateNotFound
	}

	updated, err := s.readRepo.GetByID(ctx, &owner.ID, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrTemplateNotFound
	}
	return updated, nil
}

// Delete removes a template owned by the caller along with its
// favorites (storage-layer cascade).
func (s *TemplateService) Delete(ctx context.Context, id int64, ownerEmail string) error {
	template, err := s.readRepo.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if template == nil {
		return ErrTemplateNotFound
	}

	owner, err := s.userRepo.GetByEmail(ctx, ownerEmail)
	if err != nil {
		return err
	}
	if owner == nil {
		return ErrUserNotFound
	}

	if template.UserID == nil || *template.UserID != owner.ID {
		return ErrForbidden
	}

	rowsAffected, err := s.writeRepo.Delete(ctx, id, owner.ID)
	if err != nil {
		logger.Log.Errorw("failed to delete template", "id", id, "error", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

// IncrementUsage bumps the usage counter. No identity is required:
// usage pings are public telemetry. When the caller is authenticated
// their daily usage aggregate is bumped as well, and a usage event is
// published best-effort.
func (s *TemplateService) IncrementUsage(ctx context.Context, id int64, viewerEmail string) error {
	rowsAffected, err := s.writeRepo.IncrementUsage(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to increment usage count", "id", id, "error", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrTemplateNotFound
	}

	if viewerEmail != "" {
		if viewerID := s.resolveViewerID(ctx, viewerEmail); viewerID != nil {
			if err := s.statsRepo.IncrementForToday(ctx, *viewerID); err != nil {
				logger.Log.Errorw("failed to update usage stats", "user_id", *viewerID, "error", err)
			}
		}
	}

	s.publishUsageEvent(ctx, models.UsageEvent{
		EventID:    uuid.NewString(),
		TemplateID: id,
		Email:      viewerEmail,
		Timestamp:  time.Now().Unix(),
	})

	return nil
}

// publishUsageEvent publishes a usage event to Kafka.
func (s *TemplateService) publishUsageEvent(ctx context.Context, event models.UsageEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal usage event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish usage event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Usage event published to Kafka", "event_id", event.EventID, "template_id", event.TemplateID)
	}
}
