package common

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Street Eats", "street-eats"},
		{"punctuation", "Chef's Table: Tokyo!", "chef-s-table-tokyo"},
		{"leading and trailing", "  --Hidden Kitchens--  ", "hidden-kitchens"},
		{"empty", "???", "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestUniqueSlug(t *testing.T) {
	taken := map[string]bool{"summer-issue": true, "summer-issue-2": true}

	if got := UniqueSlug("winter-issue", taken); got != "winter-issue" {
		t.Errorf("expected untouched slug, got %q", got)
	}
	if got := UniqueSlug("summer-issue", taken); got != "summer-issue-3" {
		t.Errorf("expected summer-issue-3, got %q", got)
	}
}
