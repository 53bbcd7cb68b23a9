package common

import (
	"strings"
	"testing"
)

func TestCountLinks(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{
			name:     "empty string",
			content:  "",
			expected: 0,
		},
		{
			name:     "no links",
			content:  "plain text with no urls at all",
			expected: 0,
		},
		{
			name:     "single http link",
			content:  "see http://example.com for details",
			expected: 1,
		},
		{
			name:     "single https link",
			content:  "see https://example.com/path?q=1 for details",
			expected: 1,
		},
		{
			name:     "mixed case scheme",
			content:  "HTTPS://EXAMPLE.COM and Http://other.org",
			expected: 2,
		},
		{
			name:     "three links",
			content:  "https://a.com http://b.com https://c.com/x",
			expected: 3,
		},
		{
			name:     "link inside parentheses not merged",
			content:  "(https://a.com) and (https://b.com)",
			expected: 2,
		},
		{
			name:     "ftp scheme ignored",
			content:  "ftp://files.example.com",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountLinks(tt.content); got != tt.expected {
				t.Errorf("CountLinks(%q) = %d, want %d", tt.content, got, tt.expected)
			}
		})
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{name: "empty", content: "", expected: 0},
		{name: "only whitespace", content: "  \n\t ", expected: 0},
		{name: "simple sentence", content: "one two three", expected: 3},
		{name: "extra whitespace", content: "  one \n two\t\tthree  ", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.content); got != tt.expected {
				t.Errorf("CountWords(%q) = %d, want %d", tt.content, got, tt.expected)
			}
		})
	}
}

func TestValidatePostBody(t *testing.T) {
	t.Run("within limits", func(t *testing.T) {
		links, err := ValidatePostBody("hello https://a.com world")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if links != 1 {
			t.Errorf("linkCount = %d, want 1", links)
		}
	})

	t.Run("too many links", func(t *testing.T) {
		_, err := ValidatePostBody("https://a.com https://b.com https://c.com https://d.com")
		if err != ErrTooManyLinks {
			t.Errorf("err = %v, want ErrTooManyLinks", err)
		}
	})

	t.Run("too many words", func(t *testing.T) {
		body := strings.Repeat("word ", MaxPostWords+1)
		_, err := ValidatePostBody(body)
		if err != ErrTooManyWords {
			t.Errorf("err = %v, want ErrTooManyWords", err)
		}
	})

	t.Run("exactly at word limit", func(t *testing.T) {
		body := strings.TrimSpace(strings.Repeat("word ", MaxPostWords))
		if _, err := ValidatePostBody(body); err != nil {
			t.Errorf("unexpected error at limit: %v", err)
		}
	})
}
