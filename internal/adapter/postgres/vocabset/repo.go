// Package vocabset implements the vocabulary set repository using PostgreSQL.
// Listing uses squirrel because the filter is dynamic (category, level, text
// search, sort column); everything else is raw SQL constants.
package vocabset

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lexicult/lexicult-backend/internal/adapter/postgres"
	"github.com/lexicult/lexicult-backend/internal/domain"
)

// Repo provides vocabulary set persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vocabulary set repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// setColumns are the vocabulary_sets columns in scan order, prefixed for joins.
const setColumns = `s.id, s.title, s.description, s.category, s.level, s.is_premium,
s.is_published, s.rating, s.estimated_minutes, s.author, s.thumbnail, s.created_at, s.updated_at`

// progressColumns join per-user progress onto a set row. The word count is
// computed live; progress fields are zero when the user never studied the set.
const progressColumns = `
(SELECT count(*) FROM vocabulary_words w WHERE w.set_id = s.id) AS word_count,
COALESCE(p.completed_words, 0),
COALESCE(p.accuracy, 0),
COALESCE(p.is_completed, false),
p.last_studied`

const getByIDSQL = `
SELECT ` + setColumns + `,` + progressColumns + `
FROM vocabulary_sets s
LEFT JOIN vocabulary_progress p ON p.set_id = s.id AND p.user_id = $2
WHERE s.id = $1 AND s.is_published`

const wordColumns = `w.id, w.set_id, w.word, w.translation, w.pronunciation,
w.part_of_speech, w.difficulty, w.definition, w.examples, w.synonyms, w.antonyms,
w.tags, w.audio_url, w.image_url, w.position, w.created_at`

const userStateColumns = `
COALESCE(uw.is_favorite, false),
COALESCE(uw.is_learned, false),
COALESCE(uw.mastery_level, 0),
COALESCE(uw.times_seen, 0),
COALESCE(uw.times_correct, 0),
uw.last_reviewed`

const getWordsSQL = `
SELECT ` + wordColumns + `,` + userStateColumns + `
FROM vocabulary_words w
LEFT JOIN user_words uw ON uw.word_id = w.id AND uw.user_id = $2
WHERE w.set_id = $1
ORDER BY w.position ASC`

// normalize applies defaults and clamps the filter.
func normalize(f *domain.SetFilter) {
	switch f.SortBy {
	case "rating", "title", "created_at":
	default:
		f.SortBy = ""
	}

	switch f.SortOrder {
	case "ASC", "DESC":
	default:
		f.SortOrder = "DESC"
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// List returns published sets matching the filter together with the user's
// per-set progress, plus the total count of matching sets.
// Default ordering puts free sets before premium, then rating, then recency.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.SetFilter) ([]domain.SetWithProgress, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)
	normalize(&filter)

	base := builder.
		Select().
		From("vocabulary_sets s").
		Where(sq.Eq{"s.is_published": true})

	if filter.Category != nil && *filter.Category != "" {
		base = base.Where(sq.Eq{"s.category": *filter.Category})
	}
	if filter.Level != nil && *filter.Level != "" {
		base = base.Where(sq.Eq{"s.level": *filter.Level})
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		base = base.Where(sq.Or{
			sq.ILike{"s.title": pattern},
			sq.ILike{"s.description": pattern},
			sq.ILike{"s.category": pattern},
		})
	}

	countSQL, countArgs, err := base.Columns("count(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sets: %w", err)
	}

	query := base.
		Columns(setColumns + "," + progressColumns).
		LeftJoin("vocabulary_progress p ON p.set_id = s.id AND p.user_id = ?", userID).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.SortBy != "" {
		query = query.OrderBy("s."+filter.SortBy+" "+filter.SortOrder, "s.created_at DESC")
	} else {
		query = query.OrderBy("s.is_premium ASC", "s.rating DESC", "s.created_at DESC")
	}

	listSQL, listArgs, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sets: %w", err)
	}
	defer rows.Close()

	sets, err := scanSets(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list sets: %w", err)
	}

	return sets, total, nil
}

// GetByID returns one published set with its words joined against the user's
// learning state. Returns domain.ErrNotFound for missing or unpublished sets.
func (r *Repo) GetByID(ctx context.Context, userID, setID uuid.UUID) (*domain.SetWithProgress, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, setID, userID)

	set, err := scanSet(row)
	if err != nil {
		return nil, mapError(err, "set", setID)
	}

	rows, err := querier.Query(ctx, getWordsSQL, setID, userID)
	if err != nil {
		return nil, mapError(err, "set", setID)
	}
	defer rows.Close()

	words, err := scanWords(rows)
	if err != nil {
		return nil, mapError(err, "set", setID)
	}
	set.Words = words

	return set, nil
}

// GetWords returns the words of a set without user state, ordered by position.
// Used to snapshot the word list when a session starts.
func (r *Repo) GetWords(ctx context.Context, setID uuid.UUID) ([]domain.VocabularyWord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getWordsSQL, setID, uuid.Nil)
	if err != nil {
		return nil, mapError(err, "set", setID)
	}
	defer rows.Close()

	withState, err := scanWords(rows)
	if err != nil {
		return nil, mapError(err, "set", setID)
	}

	words := make([]domain.VocabularyWord, len(withState))
	for i, w := range withState {
		words[i] = w.VocabularyWord
	}

	return words, nil
}

func scanSet(row pgx.Row) (*domain.SetWithProgress, error) {
	var (
		s           domain.SetWithProgress
		lastStudied *time.Time
	)

	if err := row.Scan(
		&s.ID, &s.Title, &s.Description, &s.Category, &s.Level, &s.IsPremium,
		&s.IsPublished, &s.Rating, &s.EstimatedMinutes, &s.Author, &s.Thumbnail,
		&s.CreatedAt, &s.UpdatedAt,
		&s.WordCount, &s.CompletedWords, &s.AccuracyRate, &s.IsCompleted, &lastStudied,
	); err != nil {
		return nil, err
	}

	s.LastStudied = lastStudied
	return &s, nil
}

func scanSets(rows pgx.Rows) ([]domain.SetWithProgress, error) {
	sets := []domain.SetWithProgress{}
	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			return nil, err
		}
		sets = append(sets, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sets, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

func scanWords(rows pgx.Rows) ([]domain.WordWithState, error) {
	words := []domain.WordWithState{}
	for rows.Next() {
		var (
			w   domain.WordWithState
			pos string
			dif string
		)
		if err := rows.Scan(
			&w.ID, &w.SetID, &w.Word, &w.Translation, &w.Pronunciation,
			&pos, &dif, &w.Definition, &w.Examples, &w.Synonyms, &w.Antonyms,
			&w.Tags, &w.AudioURL, &w.ImageURL, &w.Position, &w.CreatedAt,
			&w.IsFavorite, &w.IsLearned, &w.MasteryLevel,
			&w.TimesSeen, &w.TimesCorrect, &w.LastReviewed,
		); err != nil {
			return nil, err
		}
		w.PartOfSpeech = domain.PartOfSpeech(pos)
		w.Difficulty = domain.Difficulty(dif)
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
