package model

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateRange_Absolute(t *testing.T) {
	r, err := ParseDateRange("2018-01-01", "2025-01-01", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Relative() {
		t.Error("absolute range must not be relative")
	}
	if r.Start.After(r.End) {
		t.Error("start must not be after end")
	}
	if r.Label() != "2018-01-01..2025-01-01" {
		t.Errorf("unexpected label %q", r.Label())
	}
}

func TestParseDateRange_EndDefaultsToToday(t *testing.T) {
	r, err := ParseDateRange("2024-01-01", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.End.Before(r.Start) {
		t.Error("defaulted end must not precede start")
	}
	if time.Since(r.End) > 48*time.Hour {
		t.Errorf("expected end near today, got %v", r.End)
	}
}

func TestParseDateRange_Periods(t *testing.T) {
	tests := []struct {
		period string
		days   int
	}{
		{"30d", 30},
		{"26w", 182},
		{"6mo", 180},
		{"2y", 730},
		{"max", 0},
	}
	for _, tt := range tests {
		r, err := ParseDateRange("", "", tt.period)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.period, err)
			continue
		}
		if !r.Relative() {
			t.Errorf("%s: expected relative range", tt.period)
		}
		if got := r.TargetDays(); got != tt.days {
			t.Errorf("%s: expected %d target days, got %d", tt.period, tt.days, got)
		}
	}
}

func TestParseDateRange_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		end    string
		period string
	}{
		{"empty", "", "", ""},
		{"bad start", "01/01/2018", "2025-01-01", ""},
		{"bad end", "2018-01-01", "someday", ""},
		{"start after end", "2025-01-01", "2018-01-01", ""},
		{"bad period", "", "", "2 years"},
		{"zero period", "", "", "0d"},
		{"period and start", "2018-01-01", "", "2y"},
	}
	for _, tt := range tests {
		if _, err := ParseDateRange(tt.start, tt.end, tt.period); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("%s: expected ErrInvalidRange, got %v", tt.name, err)
		}
	}
}
