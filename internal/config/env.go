package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// envOr parses the variable key with parse. An unset or empty variable keeps
// current; one that fails to parse keeps it too, with a warning.
func envOr[T any](key string, current T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return current
	}
	v, err := parse(raw)
	if err != nil {
		slog.Warn("ignoring malformed environment variable",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Any("error", err))
		return current
	}
	return v
}

func envString(key, current string) string {
	return envOr(key, current, func(s string) (string, error) { return s, nil })
}

func envInt(key string, current int) int {
	return envOr(key, current, strconv.Atoi)
}

func envFloat(key string, current float64) float64 {
	return envOr(key, current, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

// envDuration takes time.ParseDuration syntax: "30s", "1m".
func envDuration(key string, current time.Duration) time.Duration {
	return envOr(key, current, time.ParseDuration)
}
