package matcher

import "strings"

// Match reports whether name satisfies pattern: "*" matches everything, an
// empty pattern nothing, a trailing "*" or any other pattern is a prefix.
func Match(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	pattern = strings.TrimSuffix(pattern, "*")
	if pattern == "" {
		return false
	}
	return strings.HasPrefix(name, pattern)
}

// MatchAny reports whether name satisfies at least one pattern.
func MatchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if Match(pattern, name) {
			return true
		}
	}
	return false
}
