// ABOUTME: Focus flow: distraction logging, session timer and AI analysis.
// ABOUTME: History is recomputed from scratch on every mutation.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fbwogus456-hub/levelup/internal/mission"
	"github.com/fbwogus456-hub/levelup/internal/models"
	"github.com/fbwogus456-hub/levelup/internal/progress"
	"github.com/fbwogus456-hub/levelup/internal/scoring"
)

var (
	// ErrFocusRunning means "focus start" was called twice.
	ErrFocusRunning = errors.New("a focus session is already running")

	// ErrNoFocusRunning means "focus stop" found no active session.
	ErrNoFocusRunning = errors.New("no focus session is running")
)

// LogFocus records a distraction session, scores it, and re-annotates the
// whole history. A session counts as completed when it was intended:
// deliberate breaks keep the streak, drifting does not.
func (t *Tracker) LogFocus(screen string, minutes float64, reason string, intended bool) (*models.FocusEntry, error) {
	if screen == "" {
		return nil, fmt.Errorf("screen is required")
	}
	if minutes <= 0 {
		return nil, fmt.Errorf("minutes must be positive")
	}

	history, err := t.store.History()
	if err != nil {
		return nil, err
	}

	entry := models.NewFocusEntry(t.today(), screen, minutes, reason, intended)
	entry.BaseScore = scoring.DistractionScore(minutes, reason)
	entry.Completed = intended

	history = append(history, entry)
	progress.Recompute(history, scoring.FocusGrades)

	if err := t.store.SetHistory(history); err != nil {
		return nil, fmt.Errorf("save history: %w", err)
	}
	return entry, nil
}

// AnalyzeFocus runs the AI distraction analysis for an entry and stores
// the result text on it. This is the one flow where AI errors surface to
// the caller instead of degrading to canned text.
func (t *Tracker) AnalyzeFocus(ctx context.Context, entry *models.FocusEntry) (string, error) {
	result, err := t.missions.Analyze(ctx, mission.AnalysisRequest{
		Screen:   entry.Screen,
		Minutes:  entry.Minutes,
		Reason:   entry.Reason,
		Intended: entry.Intended,
	})
	if err != nil {
		return "", err
	}

	history, err := t.store.History()
	if err != nil {
		return result, err
	}
	for _, e := range history {
		if e.ID == entry.ID {
			e.ResultText = result
			break
		}
	}
	if err := t.store.SetHistory(history); err != nil {
		return result, fmt.Errorf("save history: %w", err)
	}
	entry.ResultText = result
	return result, nil
}

// StartFocus begins the session timer.
func (t *Tracker) StartFocus(screen, reason string, intended bool) error {
	if screen == "" {
		return fmt.Errorf("screen is required")
	}

	action, err := t.store.Action()
	if err != nil {
		return err
	}
	if action.Active {
		return ErrFocusRunning
	}

	*action = models.ActionState{
		Active:    true,
		Screen:    screen,
		Reason:    reason,
		Intended:  intended,
		StartedAt: t.Now().UnixMilli(),
	}
	return t.store.SetAction(action)
}

// StopFocus ends the session timer and logs the elapsed session.
func (t *Tracker) StopFocus() (*models.FocusEntry, error) {
	action, err := t.store.Action()
	if err != nil {
		return nil, err
	}
	if !action.Active {
		return nil, ErrNoFocusRunning
	}

	elapsed := t.Now().Sub(time.UnixMilli(action.StartedAt))
	minutes := elapsed.Minutes()
	if minutes < 1 {
		minutes = 1
	}

	entry, err := t.LogFocus(action.Screen, minutes, action.Reason, action.Intended)
	if err != nil {
		return nil, err
	}

	if err := t.store.SetAction(&models.ActionState{}); err != nil {
		return nil, fmt.Errorf("clear action state: %w", err)
	}
	return entry, nil
}

// FocusHistory returns the annotated history, newest first.
func (t *Tracker) FocusHistory() ([]*models.FocusEntry, error) {
	history, err := t.store.History()
	if err != nil {
		return nil, err
	}
	out := make([]*models.FocusEntry, len(history))
	for i, e := range history {
		out[len(history)-1-i] = e
	}
	return out, nil
}
