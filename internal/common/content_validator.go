package common

import (
	"errors"
	"regexp"
	"strings"
)

// Post body limits, enforced server-side in addition to the client
const (
	MaxPostWords = 5000
	MaxPostLinks = 3
)

var (
	// ErrTooManyWords is returned when a post body exceeds MaxPostWords
	ErrTooManyWords = errors.New("post body exceeds the 5,000 word limit")
	// ErrTooManyLinks is returned when a post body exceeds MaxPostLinks
	ErrTooManyLinks = errors.New("post body exceeds the 3 link limit")
)

// URL pattern to extract links from content
var urlPattern = regexp.MustCompile(`(?i)https?://[^\s<>\[\]()]+`)

// CountWords counts whitespace-separated tokens in content
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// CountLinks counts http(s) URLs in content
func CountLinks(content string) int {
	return len(urlPattern.FindAllString(content, -1))
}

// ValidatePostBody checks the word and link limits and returns the link
// count so callers can persist it on the post row.
func ValidatePostBody(body string) (linkCount int, err error) {
	if CountWords(body) > MaxPostWords {
		return 0, ErrTooManyWords
	}
	linkCount = CountLinks(body)
	if linkCount > MaxPostLinks {
		return 0, ErrTooManyLinks
	}
	return linkCount, nil
}
