package flashcard_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flashdeck/internal/errors"
	"github.com/vytor/flashdeck/internal/flashcard"
	"github.com/vytor/flashdeck/internal/models"
)

func validInput() models.FlashcardInput {
	return models.FlashcardInput{
		Question: "What does defer do?",
		Answer:   "Schedules a call to run when the function returns.",
		Category: "coding",
	}
}

func TestPrepare_EscapesFreeText(t *testing.T) {
	in := validInput()
	in.Question = "<b>hi</b> there"
	in.Answer = `Tom & "Jerry"`
	in.Explanation = "<script>alert(1)</script>"
	in.Code = "if a < b && c > d {}"

	card, err := flashcard.Prepare(in)
	require.NoError(t, err)

	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt; there", card.Question)
	assert.Equal(t, "Tom &amp; &quot;Jerry&quot;", card.Answer)
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", card.Explanation)
	assert.Equal(t, "if a &lt; b &amp;&amp; c &gt; d {}", card.Code)
}

func TestPrepare_QuoteEntities(t *testing.T) {
	in := validInput()
	in.Question = `He said "hi" it's`

	card, err := flashcard.Prepare(in)
	require.NoError(t, err)
	assert.Equal(t, "He said &quot;hi&quot; it&#x27;s", card.Question)
}

func TestPrepare_KeepsSentProgress(t *testing.T) {
	in := validInput()
	p := models.ProgressBarely
	in.Progress = &p

	card, err := flashcard.Prepare(in)
	require.NoError(t, err)
	assert.Equal(t, models.ProgressBarely, card.Progress)

	u, err := flashcard.PrepareUpdate(in)
	require.NoError(t, err)
	require.NotNil(t, u.Progress)
	assert.Equal(t, models.ProgressBarely, *u.Progress)

	u, err = flashcard.PrepareUpdate(validInput())
	require.NoError(t, err)
	assert.Nil(t, u.Progress)
}

func TestPrepare_AbsentOptionalFieldsStayEmpty(t *testing.T) {
	card, err := flashcard.Prepare(validInput())
	require.NoError(t, err)

	assert.Equal(t, "", card.Explanation)
	assert.Equal(t, "", card.Code)
	assert.Equal(t, models.ProgressUnseen, card.Progress)
	assert.Zero(t, card.ID)
	assert.True(t, card.CreatedAt.IsZero())
}

func TestPrepare_CategoryCaseInsensitive(t *testing.T) {
	for _, c := range []string{"Coding", "CODING", "General", "general"} {
		t.Run(c, func(t *testing.T) {
			in := validInput()
			in.Category = c

			card, err := flashcard.Prepare(in)
			require.NoError(t, err)
			assert.Equal(t, strings.ToLower(c), card.Category)
		})
	}
}

func TestPrepare_RejectsUnknownCategory(t *testing.T) {
	in := validInput()
	in.Category = "math"

	_, err := flashcard.Prepare(in)
	require.Error(t, err)

	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeBadRequest, appErr.Code)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Invalid category", appErr.Message)
}

func TestPrepare_FieldBounds(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.FlashcardInput)
		wantMsg string
	}{
		{"question missing", func(in *models.FlashcardInput) { in.Question = "" }, "question: is required"},
		{"question too short", func(in *models.FlashcardInput) { in.Question = "abcd" }, "question: must be at least 5 characters"},
		{"question too long", func(in *models.FlashcardInput) { in.Question = strings.Repeat("q", 501) }, "question: must be at most 500 characters"},
		{"answer missing", func(in *models.FlashcardInput) { in.Answer = "" }, "answer: is required"},
		{"answer too long", func(in *models.FlashcardInput) { in.Answer = strings.Repeat("a", 1001) }, "answer: must be at most 1000 characters"},
		{"explanation too long", func(in *models.FlashcardInput) { in.Explanation = strings.Repeat("e", 2001) }, "explanation: must be at most 2000 characters"},
		{"code too long", func(in *models.FlashcardInput) { in.Code = strings.Repeat("c", 5001) }, "code: must be at most 5000 characters"},
		{"category missing", func(in *models.FlashcardInput) { in.Category = "" }, "category: is required"},
		{"category too short", func(in *models.FlashcardInput) { in.Category = "ab" }, "category: must be at least 3 characters"},
		{"category too long", func(in *models.FlashcardInput) { in.Category = strings.Repeat("x", 51) }, "category: must be at most 50 characters"},
		{"progress out of range", func(in *models.FlashcardInput) { p := models.Progress(6); in.Progress = &p }, "progress: must be at most 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := flashcard.Prepare(in)
			require.Error(t, err)
			appErr, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
			assert.Contains(t, appErr.Message, tt.wantMsg)
		})
	}
}

func TestPrepare_BoundsUseRawLength(t *testing.T) {
	in := validInput()
	// 500 characters of markup is in bounds even though escaping grows it.
	in.Question = strings.Repeat("<", 500)

	card, err := flashcard.Prepare(in)
	require.NoError(t, err)
	assert.Len(t, card.Question, 500*len("&lt;"))
}

func TestValidate_ProgressInput(t *testing.T) {
	assert.Error(t, flashcard.Validate(models.ProgressInput{}))

	p := models.ProgressWell
	assert.NoError(t, flashcard.Validate(models.ProgressInput{Progress: &p}))

	bad := models.Progress(-1)
	err := flashcard.Validate(models.ProgressInput{Progress: &bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "progress: must be at least 0")
}

func TestNormalizeCategory(t *testing.T) {
	c, ok := flashcard.NormalizeCategory("GeNeRaL")
	assert.True(t, ok)
	assert.Equal(t, "general", c)

	c, ok = flashcard.NormalizeCategory("Algorithms")
	assert.False(t, ok)
	assert.Equal(t, "algorithms", c)
}
