// Package config provides small helpers for reading configuration from
// environment variables with sensible defaults.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// warnBadValue logs a malformed environment value that is being replaced by
// its default. Startup continues; misconfiguration surfaces in the log.
func warnBadValue(key, raw string, def any, err error) {
	attrs := []any{
		slog.String("key", key),
		slog.String("value", raw),
		slog.Any("default", def),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	slog.Warn("malformed environment value, falling back to default", attrs...)
}

// GetEnvString returns the environment variable value, or def when unset or
// empty. No validation, no logging.
func GetEnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetEnvInt parses the environment variable as a base-10 integer. Unset,
// empty, or unparseable values yield def; unparseable ones also log a warning.
func GetEnvInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		warnBadValue(key, raw, def, err)
		return def
	}
	return v
}

// GetEnvBool parses the environment variable with strconv.ParseBool, so the
// usual "1"/"t"/"true" spellings and their negations are accepted. Bad values
// yield def with a warning.
func GetEnvBool(key string, def bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		warnBadValue(key, raw, def, err)
		return def
	}
	return v
}

// GetEnvDuration parses the environment variable with time.ParseDuration
// ("30s", "1h30m"). Bad values yield def with a warning.
func GetEnvDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		warnBadValue(key, raw, def, err)
		return def
	}
	return v
}

// GetEnvStringList splits the environment variable on commas, trimming
// whitespace and dropping empty entries. A value that reduces to nothing
// yields def.
//
//	CORS_ORIGINS="https://a.example, https://b.example"
func GetEnvStringList(key string, def []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	out := make([]string, 0, 4)
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
