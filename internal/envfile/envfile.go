// Package envfile reads and rewrites simple KEY=value .env files. The same
// parser backs both configuration loading and key stripping on removal, so
// the two paths can never disagree about what a line means.
package envfile

import (
	"fmt"
	"os"
	"strings"
)

// Parse extracts KEY=value pairs from .env content. Blank lines and
// #-comments are ignored; matching single or double quotes around values are
// stripped.
func Parse(content string) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out[key] = unquote(strings.TrimSpace(value))
	}
	return out
}

// ParseFile reads and parses path. A missing file yields an empty map, not
// an error: a fresh installation simply has no configuration yet.
func ParseFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// StripKeys removes every KEY=value line whose key matches one of keys,
// either exactly or as KEY_ prefix. Comment lines, blank lines and all other
// entries pass through verbatim, order preserved.
func StripKeys(content string, keys []string) string {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			kept = append(kept, line)
			continue
		}

		key, _, ok := strings.Cut(trimmed, "=")
		if !ok {
			kept = append(kept, line)
			continue
		}

		if matchesAny(strings.TrimSpace(key), keys) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func matchesAny(key string, removeKeys []string) bool {
	for _, rk := range removeKeys {
		if key == rk || strings.HasPrefix(key, rk+"_") {
			return true
		}
	}
	return false
}

func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}
