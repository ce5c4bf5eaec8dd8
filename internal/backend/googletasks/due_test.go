package googletasks

import (
	"testing"
	"time"
)

func TestResolveDue(t *testing.T) {
	now := time.Date(2025, 8, 26, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"", "", false},
		{"today", "2025-08-26T00:00:00Z", true},
		{"Tomorrow", "2025-08-27T00:00:00Z", true},
		{"25-12-2025", "2025-12-25T00:00:00Z", true},
		{"not-a-date", "", false},
	}

	for _, tt := range tests {
		got, ok := resolveDue(tt.in, now)
		if got != tt.want || ok != tt.ok {
			t.Errorf("resolveDue(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolveDueTomorrowCrossesMonth(t *testing.T) {
	now := time.Date(2025, 8, 31, 9, 0, 0, 0, time.UTC)
	got, ok := resolveDue("tomorrow", now)
	if !ok || got != "2025-09-01T00:00:00Z" {
		t.Errorf("resolveDue(tomorrow) = (%q, %v)", got, ok)
	}
}
