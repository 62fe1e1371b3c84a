package util

import (
	"os"
	"strconv"

	"github.com/bytedance/sonic"
)

// MarshalJSON wraps Sonic for performance
func MarshalJSON(v any) ([]byte, error) {
	return sonic.Marshal(v)
}

// TruncateString truncates string and adds replacement text in the middle
func TruncateString(s string, prefixLen, suffixLen int, replacement string) string {
	if len(s) > prefixLen+suffixLen {
		return s[:prefixLen] + replacement + s[len(s)-suffixLen:]
	}
	return s
}

// GetKeyDisplayName masks an API key for log output
func GetKeyDisplayName(key string) string {
	if key == "" {
		return "unset"
	}
	return TruncateString(key, 3, 3, "***")
}

// GetEnvInt parses an integer env var, returning def when unset or invalid
func GetEnvInt(key string, def int) int {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}
