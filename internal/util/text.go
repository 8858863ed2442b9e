package util

import (
	"regexp"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	urls       = regexp.MustCompile(`(?i)\b(?:https?://|www\.)\S+`)
	// RT and FAV as bare words; @RT and #FAV are left alone.
	reserved = regexp.MustCompile(`(^|[^@#\w])(?:RT|FAV)\b:?`)
)

// NormalizeWhitespace trims and collapses whitespace to single spaces.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// CleanTweet strips links and the platform's reserved tokens from a tweet
// body. Mentions, hashtags and emoji are kept.
func CleanTweet(s string) string {
	s = urls.ReplaceAllString(s, " ")
	s = reserved.ReplaceAllString(s, "$1")
	return NormalizeWhitespace(s)
}

// IsEnglish reports whether a tweet language code denotes English.
func IsEnglish(lang string) bool {
	return strings.EqualFold(strings.TrimSpace(lang), "en")
}
