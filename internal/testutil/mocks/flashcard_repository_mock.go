package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/flashdeck/internal/models"
)

// MockFlashcardRepository is a mock implementation of repository.FlashcardRepository
type MockFlashcardRepository struct {
	mock.Mock
}

func flashcards(args mock.Arguments) []models.Flashcard {
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Flashcard)
}

func (m *MockFlashcardRepository) List(ctx context.Context) ([]models.Flashcard, error) {
	args := m.Called(ctx)
	return flashcards(args), args.Error(1)
}

func (m *MockFlashcardRepository) ListByCategory(ctx context.Context, category string) ([]models.Flashcard, error) {
	args := m.Called(ctx, category)
	return flashcards(args), args.Error(1)
}

func (m *MockFlashcardRepository) ListProgress(ctx context.Context) ([]models.ProgressEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProgressEntry), args.Error(1)
}

func (m *MockFlashcardRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlashcardRepository) Insert(ctx context.Context, card models.Flashcard) ([]models.Flashcard, error) {
	args := m.Called(ctx, card)
	return flashcards(args), args.Error(1)
}

func (m *MockFlashcardRepository) Update(ctx context.Context, id int64, u models.FlashcardUpdate) ([]models.Flashcard, error) {
	args := m.Called(ctx, id, u)
	return flashcards(args), args.Error(1)
}

func (m *MockFlashcardRepository) UpdateProgress(ctx context.Context, id int64, progress models.Progress) ([]models.Flashcard, error) {
	args := m.Called(ctx, id, progress)
	return flashcards(args), args.Error(1)
}

func (m *MockFlashcardRepository) Delete(ctx context.Context, id int64) ([]models.Flashcard, error) {
	args := m.Called(ctx, id)
	return flashcards(args), args.Error(1)
}

func (m *MockFlashcardRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockFlashcardRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFlashcardRepository) Driver() string {
	args := m.Called()
	return args.String(0)
}
