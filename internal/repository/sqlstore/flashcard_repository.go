package sqlstore

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/flashdeck/internal/db"
	"github.com/vytor/flashdeck/internal/logger"
	"github.com/vytor/flashdeck/internal/models"
	"github.com/vytor/flashdeck/internal/repository"
)

type flashcardRepository struct {
	db      *sql.DB
	dialect db.Dialect
	table   string
	builder squirrel.StatementBuilderType
}

// NewFlashcardRepository creates a FlashcardRepository over table using
// the placeholder style of dialect.
func NewFlashcardRepository(conn *sql.DB, dialect db.Dialect, table string) repository.FlashcardRepository {
	return &flashcardRepository{
		db:      conn,
		dialect: dialect,
		table:   table,
		builder: squirrel.StatementBuilder.PlaceholderFormat(dialect.Placeholder()),
	}
}

// FromDB is a convenience for an opened *db.DB.
func FromDB(database *db.DB) repository.FlashcardRepository {
	return NewFlashcardRepository(database.DB, database.Dialect, database.Table)
}

func (r *flashcardRepository) logger(ctx context.Context) *logger.Logger {
	return logger.FromContext(ctx).WithPrefix("flashcard_repo")
}

func (r *flashcardRepository) Driver() string {
	return string(r.dialect)
}

func (r *flashcardRepository) List(ctx context.Context) ([]models.Flashcard, error) {
	log := r.logger(ctx)
	log.Debug("listing flashcards")

	cards, err := queryFlashcards(ctx, r.db, log, r.builder.Select(flashcardColumns...).From(r.table).OrderBy("id"))
	if err != nil {
		return nil, err
	}
	log.Debug("found %d flashcards", len(cards))
	return cards, nil
}

func (r *flashcardRepository) ListByCategory(ctx context.Context, category string) ([]models.Flashcard, error) {
	log := r.logger(ctx)
	log.Debug("listing flashcards: category=%s", category)

	query := r.builder.Select(flashcardColumns...).
		From(r.table).
		Where(squirrel.Eq{"category": category}).
		OrderBy("id")

	cards, err := queryFlashcards(ctx, r.db, log, query)
	if err != nil {
		return nil, err
	}
	log.Debug("found %d flashcards in category %s", len(cards), category)
	return cards, nil
}

func (r *flashcardRepository) ListProgress(ctx context.Context) ([]models.ProgressEntry, error) {
	log := r.logger(ctx)
	log.Debug("listing progress")

	query, args, err := r.builder.Select("question", "progress").From(r.table).OrderBy("id").ToSql()
	if err != nil {
		log.WithError(err).Error("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.WithError(err).Error("failed to query progress")
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.ProgressEntry, 0)
	for rows.Next() {
		var e models.ProgressEntry
		if err := rows.Scan(&e.Question, &e.Progress); err != nil {
			log.WithError(err).Error("failed to scan progress row")
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *flashcardRepository) Exists(ctx context.Context, id int64) (bool, error) {
	log := r.logger(ctx)
	log.Debug("probing flashcard: id=%d", id)

	query, args, err := r.builder.Select("id").From(r.table).Where(squirrel.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		log.WithError(err).Error("failed to build query")
		return false, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.WithError(err).Error("failed to probe flashcard")
		return false, err
	}
	defer rows.Close()

	found := rows.Next()
	if err := rows.Err(); err != nil {
		log.WithError(err).Error("failed to read probe result")
		return false, err
	}
	log.Debug("flashcard id=%d exists=%t", id, found)
	return found, nil
}

func (r *flashcardRepository) Insert(ctx context.Context, c models.Flashcard) ([]models.Flashcard, error) {
	log := r.logger(ctx)
	log.Debug("inserting flashcard: category=%s", c.Category)

	query := r.builder.Insert(r.table).
		Columns("question", "answer", "explanation", "code", "category", "progress", "created_at").
		Values(c.Question, c.Answer, c.Explanation, c.Code, c.Category, c.Progress, c.CreatedAt).
		Suffix(returningAll)

	cards, err := queryFlashcards(ctx, r.db, log, query)
	if err != nil {
		log.WithError(err).Error("failed to insert flashcard")
		return nil, err
	}
	if len(cards) > 0 {
		log.Debug("flashcard inserted: id=%d", cards[0].ID)
	}
	return cards, nil
}

// Update overwrites the client-editable columns. progress is written only
// when u carries one; id and created_at are never written.
func (r *flashcardRepository) Update(ctx context.Context, id int64, u models.FlashcardUpdate) ([]models.Flashcard, error) {
	log := r.logger(ctx)
	log.Debug("updating flashcard: id=%d", id)

	set := map[string]any{
		"question":    u.Question,
		"answer":      u.Answer,
		"explanation": u.Explanation,
		"code":        u.Code,
		"category":    u.Category,
	}
	if u.Progress != nil {
		set["progress"] = *u.Progress
	}

	query := r.builder.Update(r.table).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningAll)

	cards, err := queryFlashcards(ctx, r.db, log, query)
	if err != nil {
		log.WithError(err).Error("failed to update flashcard")
		return nil, err
	}
	log.Debug("updated %d flashcard rows", len(cards))
	return cards, nil
}

func (r *flashcardRepository) UpdateProgress(ctx context.Context, id int64, p models.Progress) ([]models.Flashcard, error) {
	log := r.logger(ctx)
	log.Debug("updating progress: id=%d, progress=%s", id, p)

	query := r.builder.Update(r.table).
		Set("progress", p).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningAll)

	cards, err := queryFlashcards(ctx, r.db, log, query)
	if err != nil {
		log.WithError(err).Error("failed to update progress")
		return nil, err
	}
	return cards, nil
}

func (r *flashcardRepository) Delete(ctx context.Context, id int64) ([]models.Flashcard, error) {
	log := r.logger(ctx)
	log.Debug("deleting flashcard: id=%d", id)

	query := r.builder.Delete(r.table).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningAll)

	cards, err := queryFlashcards(ctx, r.db, log, query)
	if err != nil {
		log.WithError(err).Error("failed to delete flashcard")
		return nil, err
	}
	log.Debug("deleted %d flashcard rows", len(cards))
	return cards, nil
}

func (r *flashcardRepository) Count(ctx context.Context) (int, error) {
	log := r.logger(ctx)

	query, args, err := r.builder.Select("COUNT(*)").From(r.table).ToSql()
	if err != nil {
		log.WithError(err).Error("failed to build query")
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.WithError(err).Error("failed to count flashcards")
		return 0, err
	}
	return count, nil
}

func (r *flashcardRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
