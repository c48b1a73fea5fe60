// Command sweep-sessions marks ACTIVE learning sessions older than the
// configured TTL as ABANDONED. The server runs the same sweep in-process;
// this binary exists for deployments that prefer an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lexicult/lexicult-backend/internal/adapter/postgres"
	"github.com/lexicult/lexicult-backend/internal/adapter/postgres/session"
	"github.com/lexicult/lexicult-backend/internal/app"
	"github.com/lexicult/lexicult-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	sessionRepo := session.New(pool)

	cutoff := time.Now().Add(-cfg.Learning.SessionTTL)

	abandoned, err := sessionRepo.MarkAbandoned(ctx, cutoff)
	if err != nil {
		logger.Error("session sweep failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
		)
		os.Exit(1)
	}

	logger.Info("session sweep completed",
		slog.Int("abandoned", abandoned),
		slog.Time("cutoff", cutoff),
	)
}
