// Package strings provides string list helpers shared across packages.
package strings

import (
	"maps"
	"slices"
	"strings"
)

// DedupeAndTrim trims every value and drops blanks and repeats. The first
// occurrence of each value keeps its position.
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

// Set builds a membership set from values, normalized as in DedupeAndTrim.
func Set(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range DedupeAndTrim(values) {
		set[v] = struct{}{}
	}
	return set
}

// SortedKeys returns the members of set in ascending order.
func SortedKeys(set map[string]struct{}) []string {
	return slices.Sorted(maps.Keys(set))
}
