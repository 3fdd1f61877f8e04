package services

import (
	"context"
	"time"

	"github.com/vytor/flashdeck/internal/errors"
	"github.com/vytor/flashdeck/internal/flashcard"
	"github.com/vytor/flashdeck/internal/logger"
	"github.com/vytor/flashdeck/internal/models"
	"github.com/vytor/flashdeck/internal/repository"
)

const flashcardResource = "Flashcard"

// FlashcardService handles flashcard-related business logic
type FlashcardService interface {
	List(ctx context.Context) ([]models.Flashcard, error)
	ListByCategory(ctx context.Context, category string) ([]models.Flashcard, error)
	ListProgress(ctx context.Context) ([]models.ProgressEntry, error)
	Create(ctx context.Context, in models.FlashcardInput) ([]models.Flashcard, error)
	Update(ctx context.Context, id int64, in models.FlashcardInput) ([]models.Flashcard, error)
	UpdateProgress(ctx context.Context, id int64, in models.ProgressInput) ([]models.Flashcard, error)
	Delete(ctx context.Context, id int64) ([]models.Flashcard, error)
	ConnectionStatus(ctx context.Context) (*models.ConnectionStatus, error)
	Ready(ctx context.Context) error
}

type flashcardService struct {
	repo repository.FlashcardRepository
	now  func() time.Time
}

// ServiceOption configures a FlashcardService.
type ServiceOption func(*flashcardService)

// WithClock replaces the source of created_at timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *flashcardService) {
		s.now = now
	}
}

// NewFlashcardService creates a new FlashcardService
func NewFlashcardService(repo repository.FlashcardRepository, opts ...ServiceOption) FlashcardService {
	s := &flashcardService{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *flashcardService) List(ctx context.Context) ([]models.Flashcard, error) {
	cards, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewStoreError("Failed to retrieve flashcards", err)
	}
	return cards, nil
}

func (s *flashcardService) ListByCategory(ctx context.Context, category string) ([]models.Flashcard, error) {
	cards, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, errors.NewStoreError("Failed to retrieve flashcards", err)
	}
	return cards, nil
}

func (s *flashcardService) ListProgress(ctx context.Context) ([]models.ProgressEntry, error) {
	entries, err := s.repo.ListProgress(ctx)
	if err != nil {
		return nil, errors.NewStoreError("Failed to retrieve flashcards", err)
	}
	return entries, nil
}

func (s *flashcardService) Create(ctx context.Context, in models.FlashcardInput) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx)

	card, err := flashcard.Prepare(in)
	if err != nil {
		log.Debug("rejected flashcard payload: %v", err)
		return nil, err
	}
	card.CreatedAt = s.now().UTC().Truncate(time.Second)

	created, err := s.repo.Insert(ctx, card)
	if err != nil {
		return nil, errors.NewStoreError("Failed to insert new flashcard", err)
	}
	log.Debug("created %d flashcard rows: category=%s", len(created), card.Category)
	return created, nil
}

// Update applies the same validation and escaping as Create.
func (s *flashcardService) Update(ctx context.Context, id int64, in models.FlashcardInput) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx).WithField("flashcard_id", id)

	u, err := flashcard.PrepareUpdate(in)
	if err != nil {
		log.Debug("rejected flashcard payload: %v", err)
		return nil, err
	}

	const action = "Failed to update the flashcard"
	if err := s.ensureExists(ctx, id, action); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, u)
	if err != nil {
		return nil, errors.NewStoreError(action, err)
	}
	log.Debug("updated %d flashcard rows", len(updated))
	return updated, nil
}

func (s *flashcardService) UpdateProgress(ctx context.Context, id int64, in models.ProgressInput) ([]models.Flashcard, error) {
	if err := flashcard.Validate(in); err != nil {
		return nil, err
	}

	const action = "Failed to update the flashcard"
	if err := s.ensureExists(ctx, id, action); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateProgress(ctx, id, *in.Progress)
	if err != nil {
		return nil, errors.NewStoreError(action, err)
	}
	return updated, nil
}

func (s *flashcardService) Delete(ctx context.Context, id int64) ([]models.Flashcard, error) {
	const action = "Failed to delete the flashcard"
	if err := s.ensureExists(ctx, id, action); err != nil {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, errors.NewStoreError(action, err)
	}
	return deleted, nil
}

// ensureExists runs the id-only existence probe. A probe that returns no
// row is a not-found error, distinct from the store being unreachable.
func (s *flashcardService) ensureExists(ctx context.Context, id int64, action string) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return errors.NewStoreError(action, err)
	}
	if !ok {
		return errors.NewNotFoundError(flashcardResource, id)
	}
	return nil
}

func (s *flashcardService) ConnectionStatus(ctx context.Context) (*models.ConnectionStatus, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, errors.NewStoreError("Failed to reach the row store", err)
	}
	return &models.ConnectionStatus{
		Status:    "successful",
		Driver:    s.repo.Driver(),
		DataCount: count,
	}, nil
}

func (s *flashcardService) Ready(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
