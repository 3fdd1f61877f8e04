package flashcard

import (
	"strings"

	"github.com/vytor/flashdeck/internal/errors"
	"github.com/vytor/flashdeck/internal/models"
)

// htmlEscaper writes the same entities as the rows already in the shared
// table: &quot; and &#x27; for quotes.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// Sanitize HTML-escapes the free-text fields. Absent explanation and code
// are already "" and stay that way.
func Sanitize(in models.FlashcardInput) models.FlashcardInput {
	in.Question = htmlEscaper.Replace(in.Question)
	in.Answer = htmlEscaper.Replace(in.Answer)
	in.Explanation = htmlEscaper.Replace(in.Explanation)
	in.Code = htmlEscaper.Replace(in.Code)
	return in
}

// Prepare turns a client payload into a card ready for persistence:
// field bounds, then category taxonomy, then escaping. Bounds are checked
// on the raw text, before escaping lengthens it.
func Prepare(in models.FlashcardInput) (models.Flashcard, error) {
	if err := Validate(in); err != nil {
		return models.Flashcard{}, err
	}

	category, ok := NormalizeCategory(in.Category)
	if !ok {
		return models.Flashcard{}, errors.NewBadRequestError("Invalid category")
	}

	clean := Sanitize(in)
	card := models.Flashcard{
		Question:    clean.Question,
		Answer:      clean.Answer,
		Explanation: clean.Explanation,
		Code:        clean.Code,
		Category:    category,
		Progress:    models.ProgressUnseen,
	}
	if in.Progress != nil {
		card.Progress = *in.Progress
	}
	return card, nil
}

// PrepareUpdate applies Prepare's rules to a full update. Progress is only
// carried over when the client sent it.
func PrepareUpdate(in models.FlashcardInput) (models.FlashcardUpdate, error) {
	card, err := Prepare(in)
	if err != nil {
		return models.FlashcardUpdate{}, err
	}
	return models.FlashcardUpdate{
		Question:    card.Question,
		Answer:      card.Answer,
		Explanation: card.Explanation,
		Code:        card.Code,
		Category:    card.Category,
		Progress:    in.Progress,
	}, nil
}
