// ABOUTME: Tests for the calendar Date type.
// ABOUTME: Covers legacy normalization, day math and JSON round-trips.
package models

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-05")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.String() != "2024-01-05" {
		t.Errorf("String() = %s, want 2024-01-05", d.String())
	}

	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-01-06", "2026-01-06"},
		{"2026-01-06T09:30:00.000Z", "2026-01-06"},
		{"2026. 1. 6.", "2026-01-06"},
		{"2026/01/06", "2026-01-06"},
		{"2026년 1월 6일", "2026-01-06"},
		{"garbage", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeDate(tt.in).String(); got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDateMath(t *testing.T) {
	d, _ := ParseDate("2024-01-01")

	if got := d.AddDays(1).String(); got != "2024-01-02" {
		t.Errorf("AddDays(1) = %s", got)
	}
	if got := d.AddDays(31).String(); got != "2024-02-01" {
		t.Errorf("AddDays(31) = %s", got)
	}

	later, _ := ParseDate("2024-01-03")
	if got := d.DaysUntil(later); got != 2 {
		t.Errorf("DaysUntil = %d, want 2", got)
	}
	if got := later.DaysUntil(d); got != -2 {
		t.Errorf("reverse DaysUntil = %d, want -2", got)
	}
	if !d.Before(later) || later.Before(d) {
		t.Error("Before ordering wrong")
	}
}

func TestDateJSON(t *testing.T) {
	d, _ := ParseDate("2024-06-15")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-06-15"` {
		t.Errorf("marshal = %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip: %v != %v", back, d)
	}

	// Legacy and malformed values never fail the record.
	var legacy Date
	if err := json.Unmarshal([]byte(`"2026. 1. 6."`), &legacy); err != nil {
		t.Fatalf("legacy unmarshal: %v", err)
	}
	if legacy.String() != "2026-01-06" {
		t.Errorf("legacy = %s", legacy)
	}

	var bad Date
	if err := json.Unmarshal([]byte(`"???"`), &bad); err != nil {
		t.Fatalf("malformed unmarshal: %v", err)
	}
	if !bad.IsZero() {
		t.Errorf("malformed date should be zero, got %v", bad)
	}

	var null Date
	if err := json.Unmarshal([]byte(`null`), &null); err != nil {
		t.Fatalf("null unmarshal: %v", err)
	}
	if !null.IsZero() {
		t.Error("null should decode to zero date")
	}
}
