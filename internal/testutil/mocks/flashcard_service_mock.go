package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/flashdeck/internal/models"
)

// MockFlashcardService is a mock implementation of services.FlashcardService
type MockFlashcardService struct {
	mock.Mock
}

func (m *MockFlashcardService) List(ctx context.Context) ([]models.Flashcard, error) {
	args := m.Called(ctx)
	return flashcards(args), args.Error(1)
}

func (m *MockFlashcardService) ListByCategory(ctx context.Context, category string) ([]models.Flashcard, error) {
	args := m.Called(ctx, category)
	return flashcards(args), args.Error(1)
}

func (m *MockFlashcardService) ListProgress(ctx context.Context) ([]models.ProgressEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProgressEntry), args.Error(1)
}

func (m *MockFlashcardService) Create(ctx context.Context, in models.FlashcardInput) ([]models.Flashcard, error) {
	args := m.Called(ctx, in)
	return flashcards(args), args.Error(1)
}

func (m *MockFlashcardService) Update(ctx context.Context, id int64, in models.FlashcardInput) ([]models.Flashcard, error) {
	args := m.Called(ctx, id, in)
	return flashcards(args), args.Error(1)
}

func (m *MockFlashcardService) UpdateProgress(ctx context.Context, id int64, in models.ProgressInput) ([]models.Flashcard, error) {
	args := m.Called(ctx, id, in)
	return flashcards(args), args.Error(1)
}

func (m *MockFlashcardService) Delete(ctx context.Context, id int64) ([]models.Flashcard, error) {
	args := m.Called(ctx, id)
	return flashcards(args), args.Error(1)
}

func (m *MockFlashcardService) ConnectionStatus(ctx context.Context) (*models.ConnectionStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ConnectionStatus), args.Error(1)
}

func (m *MockFlashcardService) Ready(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
