package due_test

import (
	"testing"

	"tasktalk/internal/due"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		kind    due.Kind
		dueStr  string
	}{
		{"empty input", "", due.None, ""},
		{"today lowercase", "today", due.Today, "today"},
		{"today mixed case", "Today", due.Today, "today"},
		{"tomorrow uppercase", "TOMORROW", due.Tomorrow, "tomorrow"},
		{"valid date", "25-12-2025", due.Date, "25-12-2025"},
		{"valid date single digits", "1-1-2026", due.Date, "1-1-2026"},
		{"not a date", "not-a-date", due.Unparsed, ""},
		{"invalid calendar date", "32-13-2025", due.Unparsed, ""},
		{"iso order rejected", "2025-12-25", due.Unparsed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := due.Normalize(tt.raw)
			if tok.Kind != tt.kind {
				t.Errorf("Normalize(%q).Kind = %d, want %d", tt.raw, tok.Kind, tt.kind)
			}
			if got := tok.DueString(); got != tt.dueStr {
				t.Errorf("Normalize(%q).DueString() = %q, want %q", tt.raw, got, tt.dueStr)
			}
		})
	}
}

func TestNormalizePassesDateThroughUnchanged(t *testing.T) {
	tok := due.Normalize("25-12-2025")
	if tok.Raw != "25-12-2025" {
		t.Errorf("expected raw date preserved, got %q", tok.Raw)
	}
}

func TestUnparsedKeepsRawInput(t *testing.T) {
	tok := due.Normalize("next thursday")
	if tok.Kind != due.Unparsed {
		t.Fatalf("expected Unparsed, got %d", tok.Kind)
	}
	if tok.Raw != "next thursday" {
		t.Errorf("expected raw input preserved, got %q", tok.Raw)
	}
}
