package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	pstrings "smedecl/pkg/platform/strings"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	LogLevel       slog.Level
	LogFormat      string
	AllowedOrigins []string
	RequestTimeout time.Duration

	// Declaration limits
	MaxTargets          int
	ClassifyConcurrency int
}

// Defaults applied when the environment leaves a value unset or unparsable.
const (
	DefaultAddr                = ":8080"
	DefaultLogFormat           = "json"
	DefaultRequestTimeout      = 30 * time.Second
	DefaultMaxTargets          = 20
	DefaultClassifyConcurrency = 4
)

// FromEnv builds a Server config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment win.
func FromEnv() Server {
	_ = godotenv.Load()

	return Server{
		Addr:                stringEnv("SMEDECL_ADDR", DefaultAddr),
		LogLevel:            levelEnv("SMEDECL_LOG_LEVEL", slog.LevelInfo),
		LogFormat:           stringEnv("SMEDECL_LOG_FORMAT", DefaultLogFormat),
		AllowedOrigins:      listEnv("SMEDECL_ALLOWED_ORIGINS", []string{"*"}),
		RequestTimeout:      durationEnv("SMEDECL_REQUEST_TIMEOUT", DefaultRequestTimeout),
		MaxTargets:          intEnv("SMEDECL_MAX_TARGETS", DefaultMaxTargets),
		ClassifyConcurrency: intEnv("SMEDECL_CLASSIFY_CONCURRENCY", DefaultClassifyConcurrency),
	}
}

func stringEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func levelEnv(key string, fallback slog.Level) slog.Level {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		return fallback
	}
	return level
}

func listEnv(key string, fallback []string) []string {
	out := pstrings.SplitList(os.Getenv(key), ",")
	if len(out) == 0 {
		return fallback
	}
	return out
}
