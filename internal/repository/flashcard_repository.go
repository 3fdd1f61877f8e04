package repository

import (
	"context"

	"github.com/vytor/flashdeck/internal/models"
)

// FlashcardRepository is the row store client for the flashcards table.
// Mutating calls return the affected rows, mirroring the hosted store's
// response shape; an id that matches nothing yields an empty slice.
type FlashcardRepository interface {
	List(ctx context.Context) ([]models.Flashcard, error)
	ListByCategory(ctx context.Context, category string) ([]models.Flashcard, error)
	ListProgress(ctx context.Context) ([]models.ProgressEntry, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Insert(ctx context.Context, card models.Flashcard) ([]models.Flashcard, error)
	Update(ctx context.Context, id int64, u models.FlashcardUpdate) ([]models.Flashcard, error)
	UpdateProgress(ctx context.Context, id int64, progress models.Progress) ([]models.Flashcard, error)
	Delete(ctx context.Context, id int64) ([]models.Flashcard, error)
	Count(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
	Driver() string
}
