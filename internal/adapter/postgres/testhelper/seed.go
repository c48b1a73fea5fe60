package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lexicult/lexicult-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedSet creates a published vocabulary set with the given number of words.
// Words are positioned 0..n-1 and returned in that order.
func SeedSet(t *testing.T, pool *pgxpool.Pool, wordCount int) (domain.VocabularySet, []domain.VocabularyWord) {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	set := domain.VocabularySet{
		ID:               uuid.New(),
		Title:            "Test Set " + suffix,
		Description:      "seeded set",
		Category:         "general",
		Level:            "Beginner",
		IsPublished:      true,
		Rating:           4.5,
		EstimatedMinutes: 10,
		Author:           "tester",
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO vocabulary_sets (id, title, description, category, level, is_premium,
			is_published, rating, estimated_minutes, author, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		set.ID, set.Title, set.Description, set.Category, set.Level, set.IsPremium,
		set.IsPublished, set.Rating, set.EstimatedMinutes, set.Author, set.CreatedAt, set.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSet insert set: %v", err)
	}

	words := make([]domain.VocabularyWord, 0, wordCount)
	for i := 0; i < wordCount; i++ {
		w := domain.VocabularyWord{
			ID:           uuid.New(),
			SetID:        set.ID,
			Word:         fmt.Sprintf("word-%s-%d", suffix, i),
			Translation:  fmt.Sprintf("translation-%d", i),
			PartOfSpeech: domain.PartOfSpeechNoun,
			Difficulty:   domain.DifficultyEasy,
			Examples:     []string{},
			Synonyms:     []string{},
			Antonyms:     []string{},
			Tags:         []string{},
			Position:     i,
			CreatedAt:    now,
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO vocabulary_words (id, set_id, word, translation, pronunciation,
				part_of_speech, difficulty, definition, examples, synonyms, antonyms, tags,
				position, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			w.ID, w.SetID, w.Word, w.Translation, w.Pronunciation,
			string(w.PartOfSpeech), string(w.Difficulty), w.Definition,
			w.Examples, w.Synonyms, w.Antonyms, w.Tags, w.Position, w.CreatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedSet insert word: %v", err)
		}

		words = append(words, w)
	}

	return set, words
}

// SeedUserWord creates a user word state row with the given mastery level.
func SeedUserWord(t *testing.T, pool *pgxpool.Pool, userID, wordID uuid.UUID, masteryLevel int) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_words (user_id, word_id, is_learned, mastery_level, times_seen, times_correct)
		 VALUES ($1, $2, $3, $4, 1, 1)`,
		userID, wordID, masteryLevel >= 80, masteryLevel,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUserWord insert: %v", err)
	}
}

// SeedSession creates an ACTIVE learning session over a set.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID, setID uuid.UUID, totalWords int, startedAt time.Time) domain.LearningSession {
	t.Helper()

	s := domain.LearningSession{
		ID:         uuid.New(),
		UserID:     userID,
		SetID:      setID,
		Mode:       domain.LearningModeFlashcard,
		Status:     domain.SessionStatusActive,
		TotalWords: totalWords,
		StartedAt:  startedAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO learning_sessions (id, user_id, set_id, mode, status, total_words, started_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.UserID, s.SetID, string(s.Mode), string(s.Status), s.TotalWords, s.StartedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}

	return s
}
