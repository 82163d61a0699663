package shared

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
)

func TestNewLogger(t *testing.T) {
	t.Run("writes to the given writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		logger.Info("hello")

		if buf.Len() == 0 {
			t.Error("Expected log output, got none")
		}
	})

	t.Run("nil writer defaults to stderr", func(t *testing.T) {
		logger := NewLogger(nil)
		if logger == nil {
			t.Fatal("Expected a logger, got nil")
		}
	})
}

func TestGenerateID(t *testing.T) {
	t.Run("produces a valid UUID", func(t *testing.T) {
		id := GenerateID()
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("Expected a valid UUID, got %q: %v", id, err)
		}
	})

	t.Run("produces unique values", func(t *testing.T) {
		if GenerateID() == GenerateID() {
			t.Error("Expected distinct IDs from consecutive calls")
		}
	})
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Radiohead", "radiohead"},
		{"spaces become hyphens", "in rainbows", "in-rainbows"},
		{"punctuation collapses", "OK Computer: OKNOTOK 1997 2017", "ok-computer-oknotok-1997-2017"},
		{"leading and trailing junk stripped", "  --hello--  ", "hello"},
		{"empty input", "", ""},
		{"only punctuation", "?!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.input); got != tc.want {
				t.Errorf("Slugify(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		name string
		ms   int
		want string
	}{
		{"zero", 0, "0:00"},
		{"under a minute", 45000, "0:45"},
		{"pads seconds", 125000, "2:05"},
		{"long track", 754000, "12:34"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatDuration(tc.ms); got != tc.want {
				t.Errorf("FormatDuration(%d) = %q, want %q", tc.ms, got, tc.want)
			}
		})
	}
}
