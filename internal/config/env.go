package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// WorkersFromEnv reads MAX_WORKERS. Zero means unset.
func WorkersFromEnv() (int, error) {
	raw := strings.TrimSpace(os.Getenv("MAX_WORKERS"))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid MAX_WORKERS %q: must be a non-negative integer", raw)
	}
	return n, nil
}

// DatabaseURLFromEnv reads DATABASE_URL.
func DatabaseURLFromEnv() string {
	return strings.TrimSpace(os.Getenv("DATABASE_URL"))
}
