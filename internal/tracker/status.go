// ABOUTME: Read-side tracker operations: status, history, weekly report.
// ABOUTME: Lazy midnight rollover with decay and goal recomputation.
package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/fbwogus456-hub/levelup/internal/mission"
	"github.com/fbwogus456-hub/levelup/internal/models"
	"github.com/fbwogus456-hub/levelup/internal/progress"
	"github.com/fbwogus456-hub/levelup/internal/scoring"
)

// Status is the header view: score, badge, streak and today's budget.
type Status struct {
	Score       int
	Level       string
	Streak      int
	TodayXP     int
	RemainingXP int
	GoalXP      int
	MinKeepXP   int
	Mission     *models.Mission
	ToMidnight  time.Duration
	CapReached  bool
}

// Status summarizes the current day.
func (t *Tracker) Status() (*Status, error) {
	st, err := t.store.State()
	if err != nil {
		return nil, err
	}
	logs, err := t.store.Logs()
	if err != nil {
		return nil, err
	}

	now := t.Now()
	today := models.DateOf(now)
	todayXP := progress.TodayXP(logs, today)
	remaining := progress.RemainingXP(logs, today)

	return &Status{
		Score:       st.Score,
		Level:       st.Level,
		Streak:      st.Streak,
		TodayXP:     todayXP,
		RemainingXP: remaining,
		GoalXP:      st.GoalXP,
		MinKeepXP:   st.MinKeepXP,
		Mission:     st.MissionFor(today),
		ToMidnight:  untilMidnight(now),
		CapReached:  remaining <= 0,
	}, nil
}

func untilMidnight(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	d := next.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// MaybeRollover runs the midnight pass when the calendar day has changed
// since the last one: one decay step per missed day, then fresh goal and
// keep-level figures. Call before any other operation; it is a no-op
// within the same day.
func (t *Tracker) MaybeRollover() (*progress.RolloverResult, error) {
	ui, err := t.store.UI()
	if err != nil {
		return nil, err
	}
	today := t.today()

	if ui.LastReset == today {
		return nil, nil
	}
	if ui.LastReset.IsZero() {
		// First run: mark the day, nothing to decay yet.
		ui.LastReset = today
		if err := t.store.SetUI(ui); err != nil {
			return nil, fmt.Errorf("save ui state: %w", err)
		}
		return nil, nil
	}

	st, err := t.store.State()
	if err != nil {
		return nil, err
	}
	logs, err := t.store.Logs()
	if err != nil {
		return nil, err
	}

	missed := ui.LastReset.DaysUntil(today)
	if missed < 1 {
		missed = 1
	}

	var res progress.RolloverResult
	score := st.Score
	for i := 0; i < missed; i++ {
		res = progress.Rollover(score, logs, today, t.levels)
		score = res.Decayed
	}

	st.Score = res.Decayed
	st.Level = res.Level
	st.GoalXP = res.GoalXP
	st.MinKeepXP = res.MinKeepXP
	ui.LastReset = today

	if err := t.store.SetState(st); err != nil {
		return nil, fmt.Errorf("save state: %w", err)
	}
	if err := t.store.SetUI(ui); err != nil {
		return nil, fmt.Errorf("save ui state: %w", err)
	}
	return &res, nil
}

// History returns the pruned log entries of the last n days, newest first.
func (t *Tracker) History(n int) ([]*models.LogEntry, error) {
	logs, err := t.store.Logs()
	if err != nil {
		return nil, err
	}
	today := t.today()

	var out []*models.LogEntry
	for _, l := range logs {
		if d := l.Date.DaysUntil(today); d >= 0 && d < n {
			out = append(out, l)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// Weekly builds the 7-day report plus the last AI weekly comment.
func (t *Tracker) Weekly() (*progress.WeeklySummary, string, error) {
	logs, err := t.store.Logs()
	if err != nil {
		return nil, "", err
	}
	ui, err := t.store.UI()
	if err != nil {
		return nil, "", err
	}
	sum := progress.Summarize(logs, t.today(), scoring.HistoryShowDays)
	return &sum, ui.WeeklyComment, nil
}

// RequestNudge asks the AI for the daily pressure message, built from the
// XP gap to today's goal and to the level floor. Falls back silently.
func (t *Tracker) RequestNudge(ctx context.Context) (string, error) {
	st, err := t.store.State()
	if err != nil {
		return "", err
	}
	logs, err := t.store.Logs()
	if err != nil {
		return "", err
	}

	today := t.today()
	yesterday := today.AddDays(-1)
	todayXP := progress.TodayXP(logs, today)

	goal := st.GoalXP
	if goal == 0 {
		goal = progress.RecommendedGoalXP(logs, today)
	}

	return t.missions.Nudge(ctx, mission.NudgeRequest{
		TodayISO:      today.String(),
		YesterdayISO:  yesterday.String(),
		YesterdayXP:   progress.TodayXP(logs, yesterday),
		TodayGoalXP:   goal,
		MinKeepXP:     st.MinKeepXP,
		DeltaToGoalXP: max(0, goal-todayXP),
		DeltaToKeepXP: max(0, st.MinKeepXP-todayXP),
		Level:         st.Level,
		Score:         st.Score,
	}), nil
}
