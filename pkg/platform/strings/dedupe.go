// Package strings provides string list helpers for configuration parsing.
package strings

import (
	"strings"
)

// SplitList splits raw on sep, trims each element and drops empty and
// repeated entries. Order of first occurrence is kept.
//
//	SplitList(" https://a.example, ,https://b.example,https://a.example", ",")
//	// []string{"https://a.example", "https://b.example"}
func SplitList(raw, sep string) []string {
	return DedupeAndTrim(strings.Split(raw, sep))
}

// DedupeAndTrim removes duplicates and blanks after trimming whitespace.
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
