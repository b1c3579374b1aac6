package userenv

import (
	"path/filepath"
	"strings"
)

// SplitList splits a PATH-style value on semicolons, dropping blank entries.
func SplitList(value string) []string {
	var entries []string
	for _, entry := range strings.Split(value, ";") {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// ContainsPath reports whether the PATH-style value already contains dir.
// Entries are compared cleaned and case-insensitively, matching Windows
// path semantics.
func ContainsPath(value, dir string) bool {
	want := filepath.Clean(dir)
	for _, entry := range SplitList(value) {
		if strings.EqualFold(filepath.Clean(entry), want) {
			return true
		}
	}
	return false
}

// AppendPath returns value with dir appended, trimming any trailing
// semicolons first so the result stays a well-formed list.
func AppendPath(value, dir string) string {
	value = strings.TrimRight(value, ";")
	if value == "" {
		return dir
	}
	return value + ";" + dir
}
