package config

import (
	"math"
	"net/url"
	"regexp"
)

var apiKeyRegex = regexp.MustCompile(`^lw_[A-Za-z0-9_-]{32}$`)

// ValidAPIKeyFormat reports whether v is a string shaped like a Logwell API
// key: the literal prefix "lw_" followed by exactly 32 characters drawn from
// letters, digits, hyphen and underscore. Non-string values are never valid.
func ValidAPIKeyFormat(v any) bool {
	key, ok := v.(string)
	if !ok || key == "" {
		return false
	}

	return apiKeyRegex.MatchString(key)
}

// validURL reports whether rawURL parses as an absolute URL with both a
// scheme and a host. Parse failures count as invalid.
func validURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	return parsed.Scheme != "" && parsed.Host != ""
}

// asInt coerces the integer kinds a raw config value may arrive as. Floats
// are accepted only when they carry an integral value.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float32:
		return intFromFloat(float64(n))
	case float64:
		return intFromFloat(n)
	}

	return 0, false
}

func intFromFloat(f float64) (int, bool) {
	if f != math.Trunc(f) {
		return 0, false
	}

	return int(f), true
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}

	return 0, false
}
