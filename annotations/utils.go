package annotations

import "strings"

// EqualNames compares annotation names case-insensitively.
func EqualNames(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// NormalizeName normalizes annotation names for comparison.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
