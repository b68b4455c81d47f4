package helper

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify: lowercase, non-alfanumerik jadi "-", potong max n karakter.
func Slugify(s string, n int) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugChars.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if n > 0 && len(s) > n {
		s = strings.Trim(s[:n], "-")
	}
	return s
}
