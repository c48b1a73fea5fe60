// Package userword implements the per-user word state repository using
// PostgreSQL. All queries use raw SQL constants. The (user_id, word_id) pair
// is the primary key; rows are created on first exposure and never deleted.
package userword

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lexicult/lexicult-backend/internal/adapter/postgres"
	"github.com/lexicult/lexicult-backend/internal/domain"
)

// Repo provides user word state persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userWordColumns = `user_id, word_id, is_favorite, is_learned, mastery_level,
times_seen, times_correct, last_reviewed, next_review, created_at, updated_at`

const getSQL = `
SELECT ` + userWordColumns + `
FROM user_words
WHERE user_id = $1 AND word_id = $2`

const upsertSQL = `
INSERT INTO user_words (user_id, word_id, is_favorite, is_learned, mastery_level,
	times_seen, times_correct, last_reviewed, next_review, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
ON CONFLICT (user_id, word_id) DO UPDATE SET
	is_learned    = EXCLUDED.is_learned,
	mastery_level = EXCLUDED.mastery_level,
	times_seen    = EXCLUDED.times_seen,
	times_correct = EXCLUDED.times_correct,
	last_reviewed = EXCLUDED.last_reviewed,
	next_review   = EXCLUDED.next_review,
	updated_at    = now()
RETURNING ` + userWordColumns

const toggleFavoriteSQL = `
INSERT INTO user_words (user_id, word_id, is_favorite, created_at, updated_at)
VALUES ($1, $2, true, now(), now())
ON CONFLICT (user_id, word_id) DO UPDATE SET
	is_favorite = NOT user_words.is_favorite,
	updated_at  = now()
RETURNING is_favorite`

const aggregateMasterySQL = `
SELECT count(*),
	COALESCE(sum(mastery_level), 0),
	count(*) FILTER (WHERE is_learned)
FROM user_words
WHERE user_id = $1 AND times_seen > 0`

const reviewQueueSQL = `
SELECT ` + stateColumns + `,` + wordColumns + `
FROM user_words uw
JOIN vocabulary_words w ON w.id = uw.word_id
WHERE uw.user_id = $1 AND (uw.next_review IS NULL OR uw.next_review <= $2)
ORDER BY uw.next_review ASC NULLS FIRST, uw.updated_at ASC
LIMIT $3`

const favoritesSQL = `
SELECT ` + wordColumns + `,
	uw.is_favorite, uw.is_learned, uw.mastery_level,
	uw.times_seen, uw.times_correct, uw.last_reviewed
FROM user_words uw
JOIN vocabulary_words w ON w.id = uw.word_id
WHERE uw.user_id = $1 AND uw.is_favorite
ORDER BY uw.updated_at DESC`

const stateColumns = `uw.user_id, uw.word_id, uw.is_favorite, uw.is_learned,
uw.mastery_level, uw.times_seen, uw.times_correct, uw.last_reviewed,
uw.next_review, uw.created_at, uw.updated_at`

const wordColumns = `w.id, w.set_id, w.word, w.translation, w.pronunciation,
w.part_of_speech, w.difficulty, w.definition, w.examples, w.synonyms, w.antonyms,
w.tags, w.audio_url, w.image_url, w.position, w.created_at`

// Get returns the user's state for one word.
// Returns domain.ErrNotFound when the user has never touched the word.
func (r *Repo) Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getSQL, userID, wordID)

	uw, err := scanUserWord(row)
	if err != nil {
		return nil, mapError(err, "user word", wordID)
	}

	return uw, nil
}

// Upsert writes the full scheduler-computed state for one word, creating the
// row on first exposure. is_favorite is only written on insert so a review
// never clobbers a concurrent favorite toggle.
func (r *Repo) Upsert(ctx context.Context, uw *domain.UserWord) (*domain.UserWord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, upsertSQL,
		uw.UserID,
		uw.WordID,
		uw.IsFavorite,
		uw.IsLearned,
		uw.MasteryLevel,
		uw.TimesSeen,
		uw.TimesCorrect,
		nullableTime(uw.LastReviewed),
		nullableTime(uw.NextReview),
	)

	saved, err := scanUserWord(row)
	if err != nil {
		return nil, mapError(err, "user word", uw.WordID)
	}

	return saved, nil
}

// ToggleFavorite flips the favorite flag, creating the state row with
// is_favorite = true if the user has never touched the word.
// Returns the new flag value.
func (r *Repo) ToggleFavorite(ctx context.Context, userID, wordID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var isFavorite bool
	if err := querier.QueryRow(ctx, toggleFavoriteSQL, userID, wordID).Scan(&isFavorite); err != nil {
		return false, mapError(err, "user word", wordID)
	}

	return isFavorite, nil
}

// AggregateMastery returns totals over the user's seen words, used to derive
// the mastery score on stats reads.
func (r *Repo) AggregateMastery(ctx context.Context, userID uuid.UUID) (domain.MasteryAggregate, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var agg domain.MasteryAggregate
	err := querier.QueryRow(ctx, aggregateMasterySQL, userID).
		Scan(&agg.WordCount, &agg.MasterySum, &agg.LearnedCount)
	if err != nil {
		return domain.MasteryAggregate{}, fmt.Errorf("aggregate mastery: %w", err)
	}

	return agg, nil
}

// GetReviewQueue returns words due for review at the given instant, most
// overdue first. Words with no scheduled review come before everything else.
func (r *Repo) GetReviewQueue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.ReviewWord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, reviewQueueSQL, userID, now, limit)
	if err != nil {
		return nil, fmt.Errorf("get review queue: %w", err)
	}
	defer rows.Close()

	queue := []domain.ReviewWord{}
	for rows.Next() {
		var rw domain.ReviewWord
		if err := rows.Scan(
			&rw.UserID, &rw.WordID, &rw.IsFavorite, &rw.IsLearned,
			&rw.MasteryLevel, &rw.TimesSeen, &rw.TimesCorrect, &rw.LastReviewed,
			&rw.NextReview, &rw.CreatedAt, &rw.UpdatedAt,
			&rw.Word.ID, &rw.Word.SetID, &rw.Word.Word, &rw.Word.Translation,
			&rw.Word.Pronunciation, &rw.Word.PartOfSpeech, &rw.Word.Difficulty,
			&rw.Word.Definition, &rw.Word.Examples, &rw.Word.Synonyms,
			&rw.Word.Antonyms, &rw.Word.Tags, &rw.Word.AudioURL, &rw.Word.ImageURL,
			&rw.Word.Position, &rw.Word.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("get review queue: %w", err)
		}
		queue = append(queue, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get review queue: %w", err)
	}

	return queue, nil
}

// GetFavorites returns the user's favorite words with learning state,
// most recently touched first.
func (r *Repo) GetFavorites(ctx context.Context, userID uuid.UUID) ([]domain.WordWithState, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, favoritesSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}
	defer rows.Close()

	words := []domain.WordWithState{}
	for rows.Next() {
		var w domain.WordWithState
		if err := rows.Scan(
			&w.ID, &w.SetID, &w.Word, &w.Translation, &w.Pronunciation,
			&w.PartOfSpeech, &w.Difficulty, &w.Definition, &w.Examples,
			&w.Synonyms, &w.Antonyms, &w.Tags, &w.AudioURL, &w.ImageURL,
			&w.Position, &w.CreatedAt,
			&w.IsFavorite, &w.IsLearned, &w.MasteryLevel,
			&w.TimesSeen, &w.TimesCorrect, &w.LastReviewed,
		); err != nil {
			return nil, fmt.Errorf("get favorites: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}

	return words, nil
}

func scanUserWord(row pgx.Row) (*domain.UserWord, error) {
	var uw domain.UserWord
	if err := row.Scan(
		&uw.UserID, &uw.WordID, &uw.IsFavorite, &uw.IsLearned,
		&uw.MasteryLevel, &uw.TimesSeen, &uw.TimesCorrect,
		&uw.LastReviewed, &uw.NextReview, &uw.CreatedAt, &uw.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &uw, nil
}

func nullableTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC().Truncate(time.Microsecond)
	return &utc
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

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503": // foreign_key_violation: the word does not exist
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
