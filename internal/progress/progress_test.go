// ABOUTME: Tests for the focus-history recompute pass.
// ABOUTME: Covers streak gaps, idempotence and order preservation.
package progress

import (
	"testing"

	"github.com/fbwogus456-hub/levelup/internal/models"
	"github.com/fbwogus456-hub/levelup/internal/scoring"
)

func focusEntry(t *testing.T, date string, base int, completed bool) *models.FocusEntry {
	t.Helper()
	var d models.Date
	if date != "" {
		var err error
		d, err = models.ParseDate(date)
		if err != nil {
			t.Fatalf("bad test date %q: %v", date, err)
		}
	}
	e := models.NewFocusEntry(d, "phone", 30, "video", false)
	e.BaseScore = base
	e.Completed = completed
	return e
}

func TestRecomputeStreakGapResets(t *testing.T) {
	// Two completed days with a one-day hole between them.
	entries := []*models.FocusEntry{
		focusEntry(t, "2024-01-01", 70, true),
		focusEntry(t, "2024-01-03", 70, true),
	}

	Recompute(entries, scoring.FocusGrades)

	if entries[0].Streak != 1 {
		t.Errorf("first entry streak = %d, want 1", entries[0].Streak)
	}
	if entries[1].Streak != 1 {
		t.Errorf("gapped entry streak = %d, want 1", entries[1].Streak)
	}
}

func TestRecomputeConsecutiveDays(t *testing.T) {
	entries := []*models.FocusEntry{
		focusEntry(t, "2024-01-01", 60, true),
		focusEntry(t, "2024-01-02", 60, true),
		focusEntry(t, "2024-01-03", 60, true),
		focusEntry(t, "2024-01-04", 60, false),
		focusEntry(t, "2024-01-05", 60, true),
	}

	Recompute(entries, scoring.FocusGrades)

	wantStreaks := []int{1, 2, 3, 0, 1}
	for i, want := range wantStreaks {
		if entries[i].Streak != want {
			t.Errorf("entry %d streak = %d, want %d", i, entries[i].Streak, want)
		}
	}

	// Day 3 carries streak 3: 60 + 5 bonus = 65 → grade B.
	if entries[2].FinalScore != 65 || entries[2].Level != "B" {
		t.Errorf("entry 2 = %d/%s, want 65/B", entries[2].FinalScore, entries[2].Level)
	}
	// The incomplete day gets no bonus.
	if entries[3].FinalScore != 60 {
		t.Errorf("incomplete day score = %d, want 60", entries[3].FinalScore)
	}
}

func TestRecomputePreservesOrderAndIsIdempotent(t *testing.T) {
	// Deliberately unsorted input.
	entries := []*models.FocusEntry{
		focusEntry(t, "2024-01-03", 80, true),
		focusEntry(t, "2024-01-01", 50, true),
		focusEntry(t, "2024-01-02", 50, true),
	}
	ids := []string{entries[0].ID.String(), entries[1].ID.String(), entries[2].ID.String()}

	out := Recompute(entries, scoring.FocusGrades)
	for i, e := range out {
		if e.ID.String() != ids[i] {
			t.Fatalf("entry order changed at %d", i)
		}
	}

	// 01-01 starts the streak, 01-02 continues it, 01-03 continues again.
	if out[1].Streak != 1 || out[2].Streak != 2 || out[0].Streak != 3 {
		t.Errorf("streaks = %d/%d/%d, want 1/2/3",
			out[1].Streak, out[2].Streak, out[0].Streak)
	}

	first := make([]int, len(out))
	for i, e := range out {
		first[i] = e.FinalScore
	}
	Recompute(out, scoring.FocusGrades)
	for i, e := range out {
		if e.FinalScore != first[i] {
			t.Errorf("second pass changed entry %d: %d != %d", i, e.FinalScore, first[i])
		}
	}
}

func TestRecomputeDatelessEntries(t *testing.T) {
	dateless := focusEntry(t, "", 72, true)
	dated := focusEntry(t, "2024-01-02", 60, true)
	entries := []*models.FocusEntry{dateless, dated}

	Recompute(entries, scoring.FocusGrades)

	if dateless.Streak != 0 || dateless.FinalScore != 72 {
		t.Errorf("dateless entry = streak %d score %d, want 0/72", dateless.Streak, dateless.FinalScore)
	}
	// The dateless entry must not break the dated walk.
	if dated.Streak != 1 {
		t.Errorf("dated streak = %d, want 1", dated.Streak)
	}
}

func TestRecomputeClampsFinalScore(t *testing.T) {
	entries := []*models.FocusEntry{}
	day, _ := models.ParseDate("2024-01-01")
	for i := 0; i < 8; i++ {
		e := models.NewFocusEntry(day.AddDays(i), "phone", 10, "news", true)
		e.BaseScore = 97
		e.Completed = true
		entries = append(entries, e)
	}

	Recompute(entries, scoring.FocusGrades)

	last := entries[7]
	if last.Streak != 8 {
		t.Fatalf("streak = %d, want 8", last.Streak)
	}
	// 97 + 8 bonus would overflow the scale.
	if last.FinalScore != 100 {
		t.Errorf("final score = %d, want clamped 100", last.FinalScore)
	}
}
