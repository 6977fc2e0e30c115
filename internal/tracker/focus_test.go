// ABOUTME: Tests for focus logging, the session timer and AI analysis.
// ABOUTME: Uses a fake analyze server and a pinned clock.
package tracker

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLogFocusScoresAndRecomputes(t *testing.T) {
	tr, _ := newTestTracker(t)

	entry, err := tr.LogFocus("phone", 30, "video", false)
	if err != nil {
		t.Fatalf("LogFocus: %v", err)
	}
	if entry.BaseScore >= 100 {
		t.Errorf("base score = %d, penalties should apply", entry.BaseScore)
	}
	if entry.Completed {
		t.Error("unintended session must not count as completed")
	}
	if entry.Streak != 0 {
		t.Errorf("streak = %d, want 0 for an unintended session", entry.Streak)
	}

	// An intended session on the same day starts a streak of 1.
	entry, err = tr.LogFocus("laptop", 10, "news", true)
	if err != nil {
		t.Fatalf("second LogFocus: %v", err)
	}
	if entry.Streak != 1 {
		t.Errorf("streak = %d, want 1", entry.Streak)
	}
	if entry.FinalScore != entry.BaseScore {
		t.Errorf("final = %d base = %d, streak 1 carries no bonus", entry.FinalScore, entry.BaseScore)
	}
}

func TestLogFocusValidation(t *testing.T) {
	tr, _ := newTestTracker(t)
	if _, err := tr.LogFocus("", 10, "video", true); err == nil {
		t.Error("empty screen should fail")
	}
	if _, err := tr.LogFocus("phone", 0, "video", true); err == nil {
		t.Error("zero minutes should fail")
	}
}

func TestFocusTimer(t *testing.T) {
	tr, _ := newTestTracker(t)

	if _, err := tr.StopFocus(); !errors.Is(err, ErrNoFocusRunning) {
		t.Errorf("stop without start = %v, want ErrNoFocusRunning", err)
	}

	if err := tr.StartFocus("phone", "social", false); err != nil {
		t.Fatalf("StartFocus: %v", err)
	}
	if err := tr.StartFocus("phone", "social", false); !errors.Is(err, ErrFocusRunning) {
		t.Errorf("double start = %v, want ErrFocusRunning", err)
	}

	// 25 minutes pass.
	start := tr.Now()
	tr.Now = func() time.Time { return start.Add(25 * time.Minute) }

	entry, err := tr.StopFocus()
	if err != nil {
		t.Fatalf("StopFocus: %v", err)
	}
	if entry.Minutes != 25 {
		t.Errorf("minutes = %v, want 25", entry.Minutes)
	}
	if entry.Screen != "phone" || entry.Reason != "social" {
		t.Errorf("entry = %+v", entry)
	}

	// Timer cleared: a new session may start.
	if err := tr.StartFocus("laptop", "", true); err != nil {
		t.Errorf("restart after stop: %v", err)
	}
}

func TestStopFocusMinimumMinute(t *testing.T) {
	tr, _ := newTestTracker(t)
	if err := tr.StartFocus("phone", "chat", true); err != nil {
		t.Fatalf("StartFocus: %v", err)
	}
	// Clock has not moved; the session still counts as one minute.
	entry, err := tr.StopFocus()
	if err != nil {
		t.Fatalf("StopFocus: %v", err)
	}
	if entry.Minutes != 1 {
		t.Errorf("minutes = %v, want the 1-minute floor", entry.Minutes)
	}
}

func TestAnalyzeFocusStoresResult(t *testing.T) {
	tr, stub := newTestTracker(t)
	stub.analysis = "Summary\nCause\nSuggestion"

	entry, err := tr.LogFocus("phone", 40, "video", false)
	if err != nil {
		t.Fatalf("LogFocus: %v", err)
	}

	result, err := tr.AnalyzeFocus(context.Background(), entry)
	if err != nil {
		t.Fatalf("AnalyzeFocus: %v", err)
	}
	if result != stub.analysis {
		t.Errorf("result = %q", result)
	}

	history, err := tr.FocusHistory()
	if err != nil {
		t.Fatalf("FocusHistory: %v", err)
	}
	if len(history) != 1 || history[0].ResultText != stub.analysis {
		t.Errorf("history = %+v, result text should be persisted", history)
	}
}

func TestAnalyzeFocusSurfacesError(t *testing.T) {
	tr, stub := newTestTracker(t)
	stub.analysisE = errors.New("Missing OPENAI_API_KEY in environment variables.")

	entry, err := tr.LogFocus("phone", 20, "game", false)
	if err != nil {
		t.Fatalf("LogFocus: %v", err)
	}
	if _, err := tr.AnalyzeFocus(context.Background(), entry); err == nil {
		t.Error("analysis errors must surface, not degrade")
	}
}
