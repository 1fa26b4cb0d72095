package repository

import "strings"

func joinSet(parts []string) string {
	return strings.Join(parts, ", ")
}

func joinAnd(parts []string) string {
	return strings.Join(parts, " AND ")
}

// toStrings converts typed enum slices into plain strings for text[] columns.
func toStrings[T ~string](vals []T) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		out = append(out, string(v))
	}
	return out
}

func fromStrings[T ~string](vals []string) []T {
	out := make([]T, 0, len(vals))
	for _, v := range vals {
		out = append(out, T(v))
	}
	return out
}
