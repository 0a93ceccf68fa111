// Package strings holds small helpers for list-valued settings.
package strings

import (
	"strings"
)

// SplitList splits raw on sep and returns the trimmed, non-empty parts with
// repeats removed. The first occurrence wins, so order is preserved.
//
// Example:
//
//	SplitList(" https://a/ ,, https://b/,https://a/", ",")
//	// Returns: []string{"https://a/", "https://b/"}
func SplitList(raw, sep string) []string {
	return DedupeAndTrim(strings.Split(raw, sep))
}

// DedupeAndTrim trims each value and drops empties and duplicates.
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
