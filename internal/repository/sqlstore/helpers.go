package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/flashdeck/internal/logger"
	"github.com/vytor/flashdeck/internal/models"
)

// Helper functions shared across repository implementations

var flashcardColumns = []string{
	"id", "question", "answer", "explanation", "code", "category", "progress", "created_at",
}

const returningAll = "RETURNING id, question, answer, explanation, code, category, progress, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFlashcard(row rowScanner) (models.Flashcard, error) {
	var c models.Flashcard
	var explanation, code sql.NullString
	err := row.Scan(&c.ID, &c.Question, &c.Answer, &explanation, &code, &c.Category, &c.Progress, timestamp{&c.CreatedAt})
	c.Explanation = explanation.String
	c.Code = code.String
	return c, err
}

// queryFlashcards runs a built statement and collects every returned row.
// The result is never nil so it encodes as [] rather than null.
func queryFlashcards(ctx context.Context, db *sql.DB, log *logger.Logger, q squirrel.Sqlizer) ([]models.Flashcard, error) {
	query, args, err := q.ToSql()
	if err != nil {
		log.WithError(err).Error("failed to build query")
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.WithError(err).Error("query failed")
		return nil, err
	}
	defer rows.Close()

	cards := make([]models.Flashcard, 0)
	for rows.Next() {
		c, err := scanFlashcard(rows)
		if err != nil {
			log.WithError(err).Error("failed to scan flashcard row")
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
}

// timestamp scans created_at whether the driver hands back a time.Time
// (declared DATETIME columns, postgres) or text (RETURNING on SQLite).
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts.t = time.Time{}
		return nil
	case time.Time:
		*ts.t = v.UTC()
		return nil
	case []byte:
		return ts.parse(string(v))
	case string:
		return ts.parse(v)
	default:
		return fmt.Errorf("unsupported created_at type %T", src)
	}
}

func (ts timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*ts.t = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognised created_at value %q", s)
}
