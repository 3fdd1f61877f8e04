package services_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flashdeck/internal/errors"
	"github.com/vytor/flashdeck/internal/models"
	"github.com/vytor/flashdeck/internal/services"
	"github.com/vytor/flashdeck/internal/testutil/mocks"
)

var fixedNow = time.Date(2026, 10, 19, 14, 5, 9, 987654321, time.FixedZone("CEST", 2*60*60))

func newService(repo *mocks.MockFlashcardRepository) services.FlashcardService {
	return services.NewFlashcardService(repo, services.WithClock(func() time.Time { return fixedNow }))
}

func validInput() models.FlashcardInput {
	return models.FlashcardInput{
		Question: "<b>hi</b> there",
		Answer:   "an answer",
		Category: "Coding",
	}
}

func requireCode(t *testing.T, err error, code string, status int) *errors.AppError {
	t.Helper()
	appErr, ok := errors.As(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, status, appErr.Status)
	return appErr
}

func TestCreate_SanitizesAndStampsCreatedAt(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := newService(repo)

	want := models.Flashcard{
		Question:  "&lt;b&gt;hi&lt;/b&gt; there",
		Answer:    "an answer",
		Category:  "coding",
		CreatedAt: time.Date(2026, 10, 19, 12, 5, 9, 0, time.UTC),
	}
	stored := want
	stored.ID = 7
	repo.On("Insert", mock.Anything, want).Return([]models.Flashcard{stored}, nil)

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, int64(7), created[0].ID)
	repo.AssertExpectations(t)
}

func TestCreate_InvalidCategoryNeverTouchesStore(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := newService(repo)

	in := validInput()
	in.Category = "math"

	_, err := svc.Create(context.Background(), in)
	appErr := requireCode(t, err, errors.ErrCodeBadRequest, 400)
	assert.Equal(t, "Invalid category", appErr.Message)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreate_OutOfBoundsNeverTouchesStore(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := newService(repo)

	in := validInput()
	in.Question = "hey"

	_, err := svc.Create(context.Background(), in)
	requireCode(t, err, errors.ErrCodeValidation, 400)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreate_StoreFailure(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := newService(repo)
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil, stderrors.New("network down"))

	_, err := svc.Create(context.Background(), validInput())
	appErr := requireCode(t, err, errors.ErrCodeStore, 500)
	assert.Equal(t, "Failed to insert new flashcard: network down", appErr.Message)
}

func TestUpdate_MissingIDIsNotFound(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := newService(repo)
	repo.On("Exists", mock.Anything, int64(5)).Return(false, nil)

	_, err := svc.Update(context.Background(), 5, validInput())
	appErr := requireCode(t, err, errors.ErrCodeNotFound, 400)
	assert.Equal(t, "Flashcard does not exist", appErr.Message)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_ReappliesSanitization(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := newService(repo)

	repo.On("Exists", mock.Anything, int64(5)).Return(true, nil)
	repo.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(u models.FlashcardUpdate) bool {
		return u.Question == "&lt;b&gt;hi&lt;/b&gt; there" && u.Category == "coding" && u.Progress == nil
	})).Return([]models.Flashcard{{ID: 5}}, nil)

	updated, err := svc.Update(context.Background(), 5, validInput())
	require.NoError(t, err)
	assert.Len(t, updated, 1)
	repo.AssertExpectations(t)
}

func TestUpdate_PassesProgressWhenSent(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := newService(repo)

	p := models.ProgressSomewhat
	in := validInput()
	in.Progress = &p

	repo.On("Exists", mock.Anything, int64(5)).Return(true, nil)
	repo.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(u models.FlashcardUpdate) bool {
		return u.Progress != nil && *u.Progress == models.ProgressSomewhat
	})).Return([]models.Flashcard{{ID: 5, Progress: p}}, nil)

	updated, err := svc.Update(context.Background(), 5, in)
	require.NoError(t, err)
	assert.Equal(t, models.ProgressSomewhat, updated[0].Progress)
	repo.AssertExpectations(t)
}

func TestUpdate_InvalidCategoryRejected(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := newService(repo)

	in := validInput()
	in.Category = "history"

	_, err := svc.Update(context.Background(), 5, in)
	requireCode(t, err, errors.ErrCodeBadRequest, 400)
	repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestUpdate_ProbeFailureIsStoreError(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := newService(repo)
	repo.On("Exists", mock.Anything, int64(5)).Return(false, stderrors.New("timeout"))

	_, err := svc.Update(context.Background(), 5, validInput())
	appErr := requireCode(t, err, errors.ErrCodeStore, 500)
	assert.Equal(t, "Failed to update the flashcard: timeout", appErr.Message)
}

func TestDelete(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := newService(repo)
	repo.On("Exists", mock.Anything, int64(3)).Return(true, nil).Once()
	repo.On("Delete", mock.Anything, int64(3)).Return([]models.Flashcard{{ID: 3}}, nil).Once()

	deleted, err := svc.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted[0].ID)

	repo.On("Exists", mock.Anything, int64(3)).Return(false, nil).Once()
	_, err = svc.Delete(context.Background(), 3)
	requireCode(t, err, errors.ErrCodeNotFound, 400)
	repo.AssertNumberOfCalls(t, "Delete", 1)
}

func TestDelete_StoreFailure(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := newService(repo)
	repo.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	repo.On("Delete", mock.Anything, int64(3)).Return(nil, stderrors.New("locked"))

	_, err := svc.Delete(context.Background(), 3)
	appErr := requireCode(t, err, errors.ErrCodeStore, 500)
	assert.Equal(t, "Failed to delete the flashcard: locked", appErr.Message)
}

func TestUpdateProgress(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := newService(repo)
	p := models.ProgressWell
	repo.On("Exists", mock.Anything, int64(9)).Return(true, nil)
	repo.On("UpdateProgress", mock.Anything, int64(9), models.ProgressWell).
		Return([]models.Flashcard{{ID: 9, Progress: models.ProgressWell}}, nil)

	updated, err := svc.UpdateProgress(context.Background(), 9, models.ProgressInput{Progress: &p})
	require.NoError(t, err)
	assert.Equal(t, models.ProgressWell, updated[0].Progress)
}

func TestUpdateProgress_Validation(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := newService(repo)

	_, err := svc.UpdateProgress(context.Background(), 9, models.ProgressInput{})
	requireCode(t, err, errors.ErrCodeValidation, 400)

	bad := models.Progress(11)
	_, err = svc.UpdateProgress(context.Background(), 9, models.ProgressInput{Progress: &bad})
	requireCode(t, err, errors.ErrCodeValidation, 400)

	repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestUpdateProgress_MissingID(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := newService(repo)
	p := models.ProgressBarely
	repo.On("Exists", mock.Anything, int64(9)).Return(false, nil)

	_, err := svc.UpdateProgress(context.Background(), 9, models.ProgressInput{Progress: &p})
	requireCode(t, err, errors.ErrCodeNotFound, 400)
	repo.AssertNotCalled(t, "UpdateProgress", mock.Anything, mock.Anything, mock.Anything)
}

func TestReads_WrapStoreErrors(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := newService(repo)
	boom := stderrors.New("boom")
	repo.On("List", mock.Anything).Return(nil, boom)
	repo.On("ListByCategory", mock.Anything, "coding").Return(nil, boom)
	repo.On("ListProgress", mock.Anything).Return(nil, boom)

	_, err := svc.List(context.Background())
	requireCode(t, err, errors.ErrCodeStore, 500)
	_, err = svc.ListByCategory(context.Background(), "coding")
	requireCode(t, err, errors.ErrCodeStore, 500)
	_, err = svc.ListProgress(context.Background())
	appErr := requireCode(t, err, errors.ErrCodeStore, 500)
	assert.Equal(t, "Failed to retrieve flashcards: boom", appErr.Message)
}

func TestListByCategory_PassesCategoryVerbatim(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := newService(repo)
	repo.On("ListByCategory", mock.Anything, "Coding").Return([]models.Flashcard{}, nil)

	cards, err := svc.ListByCategory(context.Background(), "Coding")
	require.NoError(t, err)
	assert.Empty(t, cards)
	repo.AssertExpectations(t)
}

func TestConnectionStatus(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := newService(repo)
	repo.On("Count", mock.Anything).Return(4, nil)
	repo.On("Driver").Return("sqlite")

	status, err := svc.ConnectionStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.ConnectionStatus{Status: "successful", Driver: "sqlite", DataCount: 4}, status)
}
