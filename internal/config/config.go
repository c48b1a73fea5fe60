package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Learning LearningConfig `yaml:"learning"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// RateLimitPerMinute caps requests per client IP. 0 disables limiting.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"300"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	Migrate         bool          `yaml:"migrate"            env:"DATABASE_MIGRATE"            env-default:"true"`
}

// AuthConfig holds token validation settings. Token issuance belongs to the
// identity service; this backend only validates bearer tokens it receives.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"lexicult"`
}

// LearningConfig holds scheduling and session-lifecycle parameters.
type LearningConfig struct {
	// MasteryGain is added to mastery level on a correct answer.
	MasteryGain int `yaml:"mastery_gain" env:"LEARNING_MASTERY_GAIN" env-default:"5"`
	// MasteryLoss is subtracted from mastery level on an incorrect answer.
	MasteryLoss int `yaml:"mastery_loss" env:"LEARNING_MASTERY_LOSS" env-default:"2"`
	// LearnedThreshold is the mastery level at which a word counts as learned.
	LearnedThreshold int `yaml:"learned_threshold" env:"LEARNING_LEARNED_THRESHOLD" env-default:"80"`
	// ReviewIntervalDays is the next-review delay for words below the threshold.
	ReviewIntervalDays int `yaml:"review_interval_days" env:"LEARNING_REVIEW_INTERVAL_DAYS" env-default:"3"`
	// LearnedIntervalDays is the next-review delay for learned words.
	LearnedIntervalDays int `yaml:"learned_interval_days" env:"LEARNING_LEARNED_INTERVAL_DAYS" env-default:"7"`
	// ReviewQueueLimit caps the default review-queue size.
	ReviewQueueLimit int `yaml:"review_queue_limit" env:"LEARNING_REVIEW_QUEUE_LIMIT" env-default:"20"`
	// SessionTTL is how long after its start an ACTIVE session can still be
	// completed. Older sessions are treated as abandoned.
	SessionTTL time.Duration `yaml:"session_ttl" env:"LEARNING_SESSION_TTL" env-default:"24h"`
	// WeeklyGoalDefault seeds WeeklyVocabGoal for newly created stats rows.
	WeeklyGoalDefault int `yaml:"weekly_goal_default" env:"LEARNING_WEEKLY_GOAL_DEFAULT" env-default:"50"`
	// StreakLookbackDays bounds the daily-record scan for streak computation.
	StreakLookbackDays int `yaml:"streak_lookback_days" env:"LEARNING_STREAK_LOOKBACK_DAYS" env-default:"365"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
