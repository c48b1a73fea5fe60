package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/lexicult/lexicult-backend/internal/adapter/postgres"
	"github.com/lexicult/lexicult-backend/internal/adapter/postgres/answer"
	"github.com/lexicult/lexicult-backend/internal/adapter/postgres/daily"
	"github.com/lexicult/lexicult-backend/internal/adapter/postgres/progress"
	"github.com/lexicult/lexicult-backend/internal/adapter/postgres/session"
	"github.com/lexicult/lexicult-backend/internal/adapter/postgres/stats"
	"github.com/lexicult/lexicult-backend/internal/adapter/postgres/userword"
	"github.com/lexicult/lexicult-backend/internal/adapter/postgres/vocabset"
	"github.com/lexicult/lexicult-backend/internal/auth"
	"github.com/lexicult/lexicult-backend/internal/config"
	"github.com/lexicult/lexicult-backend/internal/service/learning"
	"github.com/lexicult/lexicult-backend/internal/transport/middleware"
	"github.com/lexicult/lexicult-backend/internal/transport/rest"
)

// sweepInterval is how often stale ACTIVE sessions are marked ABANDONED.
const sweepInterval = time.Hour

// Run is the application entry point. It loads configuration, connects to
// the database, wires the repositories and services, and runs the HTTP
// server until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.Migrate {
		if err := postgres.RunMigrations(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	learningSvc := learning.NewService(
		logger,
		vocabset.New(pool),
		userword.New(pool),
		session.New(pool),
		answer.New(pool),
		progress.New(pool),
		daily.New(pool),
		stats.New(pool),
		txManager,
		clockwork.NewRealClock(),
		cfg.Learning,
	)

	validator := auth.NewTokenValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	learningHandler := rest.NewLearningHandler(learningSvc, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	mux := rest.NewRouter(learningHandler, healthHandler)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
		middleware.Auth(validator),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		mws = append(mws, rateLimiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	handler := middleware.Chain(mws...)(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go sweepAbandonedSessions(ctx, logger, learningSvc)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}

// sweepAbandonedSessions periodically marks stale ACTIVE sessions ABANDONED
// so they stop accepting answers and never reach the aggregates.
func sweepAbandonedSessions(ctx context.Context, logger *slog.Logger, svc *learning.Service) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := svc.SweepAbandonedSessions(ctx)
			if err != nil {
				logger.ErrorContext(ctx, "session sweep failed", slog.String("error", err.Error()))
				continue
			}
			if n > 0 {
				logger.InfoContext(ctx, "stale sessions abandoned", slog.Int("count", n))
			}
		}
	}
}
