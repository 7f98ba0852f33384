// Package redact masks secrets that appear in MCP server environments,
// HTTP headers, and log attributes before they reach a terminal.
package redact

import (
	"net/url"
	"strings"
)

// SecretKeyPatterns contains substrings that indicate a key likely holds
// sensitive data. Keys are matched case-insensitively.
var SecretKeyPatterns = []string{
	"TOKEN",
	"KEY",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
	"PRIVATE",
	"COOKIE",
}

// TokenPrefixes contains known API token prefixes that mark a value as
// sensitive regardless of its key.
var TokenPrefixes = []string{
	"ghp_",
	"gho_",
	"ghu_",
	"ghs_",
	"ghr_",
	"github_pat_",
	"sk-",
	"AKIA",
	"xoxb-",
	"xoxp-",
	"Bearer ",
}

// Map returns a copy of m with sensitive values masked.
// A value is sensitive if its key matches SecretKeyPatterns or the value
// starts with one of TokenPrefixes.
func Map(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}

	masked := make(map[string]string, len(m))
	for k, v := range m {
		if IsSecretKey(k) || HasTokenPrefix(v) {
			masked[k] = Mask(v)
			continue
		}
		masked[k] = v
	}
	return masked
}

// Mask hides all but the last four characters of value.
// Values of four characters or fewer are fully masked.
func Mask(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// URL masks the password of a URL with embedded credentials.
// Unparseable URLs are returned unchanged.
func URL(rawURL string) string {
	if rawURL == "" {
		return rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.User == nil {
		return rawURL
	}

	password, ok := parsed.User.Password()
	if !ok || password == "" {
		return rawURL
	}

	parsed.User = url.UserPassword(parsed.User.Username(), Mask(password))
	return parsed.String()
}

// IsSecretKey reports whether the key name suggests sensitive content.
func IsSecretKey(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range SecretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// HasTokenPrefix reports whether value starts with a known token prefix.
func HasTokenPrefix(value string) bool {
	for _, prefix := range TokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
