package resource

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugUnsafe    = regexp.MustCompile(`[^\w\s-]`)
	slugSeparator = regexp.MustCompile(`[-\s]+`)
)

// Slugify converts value into a lowercase, URL-safe form: accents are folded
// to ASCII, punctuation is dropped and runs of whitespace or hyphens become a
// single hyphen.
func Slugify(value string) string {
	fold := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))

	ascii, _, err := transform.String(fold, value)
	if err != nil {
		ascii = value
	}

	ascii = slugUnsafe.ReplaceAllString(ascii, "")
	ascii = strings.ToLower(strings.TrimSpace(ascii))

	return slugSeparator.ReplaceAllString(ascii, "-")
}
