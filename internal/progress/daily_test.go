// ABOUTME: Tests for daily cap accounting, decay and goal recommendation.
// ABOUTME: Uses hand-built logs; no storage involved.
package progress

import (
	"testing"

	"github.com/fbwogus456-hub/levelup/internal/models"
	"github.com/fbwogus456-hub/levelup/internal/scoring"
)

func logOn(t *testing.T, date string, typ models.ActivityType, xp int) *models.LogEntry {
	t.Helper()
	d, err := models.ParseDate(date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	l := models.NewLogEntry(d, typ, models.ActivityInput{})
	l.XP = xp
	return l
}

func TestTodayXPAndRemaining(t *testing.T) {
	today, _ := models.ParseDate("2024-06-01")
	logs := []*models.LogEntry{
		logOn(t, "2024-06-01", models.ActivityRun, 60),
		logOn(t, "2024-06-01", models.ActivityStudy, 40),
		logOn(t, "2024-05-31", models.ActivityRun, 80),
	}

	if got := TodayXP(logs, today); got != 100 {
		t.Errorf("TodayXP = %d, want 100", got)
	}
	if got := RemainingXP(logs, today); got != 20 {
		t.Errorf("RemainingXP = %d, want 20", got)
	}
}

func TestAward(t *testing.T) {
	tests := []struct {
		computed, remaining, want int
	}{
		{65, 120, 65},
		{65, 20, 20},
		{65, 0, 0},
		{-5, 120, 0},
	}
	for _, tt := range tests {
		if got := Award(tt.computed, tt.remaining); got != tt.want {
			t.Errorf("Award(%d, %d) = %d, want %d", tt.computed, tt.remaining, got, tt.want)
		}
	}
}

func TestRollover(t *testing.T) {
	today, _ := models.ParseDate("2024-06-01")

	// Score 505 decays to 497, dropping from Gold to Silver; keeping
	// Silver needs nothing, regaining Gold needs 3.
	res := Rollover(505, nil, today, scoring.DefaultLevels)
	if res.Decayed != 497 {
		t.Errorf("Decayed = %d, want 497", res.Decayed)
	}
	if res.Level != "Silver" {
		t.Errorf("Level = %s, want Silver", res.Level)
	}
	if res.MinKeepXP != 0 {
		t.Errorf("MinKeepXP = %d, want 0", res.MinKeepXP)
	}

	// A score sitting exactly on a boundary stays above its own floor.
	res = Rollover(308, nil, today, scoring.DefaultLevels)
	if res.Decayed != 300 || res.Level != "Silver" || res.MinKeepXP != 0 {
		t.Errorf("boundary rollover = %+v", res)
	}

	// Decay never goes below zero.
	res = Rollover(3, nil, today, scoring.DefaultLevels)
	if res.Decayed != 0 {
		t.Errorf("Decayed = %d, want 0", res.Decayed)
	}
}

func TestRecommendedGoalXP(t *testing.T) {
	today, _ := models.ParseDate("2024-06-08")

	// Empty history: zero average, but all seven days are inactive, so
	// the surcharge alone carries the goal past the floor: 0 + 6*7 = 42.
	if got := RecommendedGoalXP(nil, today); got != 42 {
		t.Errorf("empty goal = %d, want 42", got)
	}

	// The floor only binds when the surcharge stays small: one active
	// day of 10 XP gives round(10/7)=1 + 6*6 = 37, lifted to 40.
	floorLogs := []*models.LogEntry{logOn(t, today.AddDays(-1).String(), models.ActivityRun, 10)}
	if got := RecommendedGoalXP(floorLogs, today); got != scoring.GoalFloorXP {
		t.Errorf("floored goal = %d, want %d", got, scoring.GoalFloorXP)
	}

	// Busy week: average 80, one zero day in window pushes it up.
	var logs []*models.LogEntry
	for i := 1; i <= 6; i++ {
		logs = append(logs, logOn(t, today.AddDays(-i).String(), models.ActivityRun, 80))
	}
	got := RecommendedGoalXP(logs, today)
	// round(480/7)=69, +6 for the one empty day = 75.
	if got != 75 {
		t.Errorf("goal = %d, want 75", got)
	}

	// Never exceeds the remaining room today.
	logs = append(logs, logOn(t, "2024-06-08", models.ActivityRun, 110))
	if got := RecommendedGoalXP(logs, today); got != 10 {
		t.Errorf("capped goal = %d, want 10", got)
	}
}

func TestSummarize(t *testing.T) {
	today, _ := models.ParseDate("2024-06-07")

	run := logOn(t, "2024-06-06", models.ActivityRun, 60)
	run.CreatedAt = 1
	run.ScoreAfter = 560
	study := logOn(t, "2024-06-06", models.ActivityStudy, 40)
	study.CreatedAt = 2
	study.ScoreAfter = 600
	study.Mission = &models.MissionSnapshot{Text: "stretch", Completed: true, BonusXP: 10}
	old := logOn(t, "2024-05-01", models.ActivityRun, 50)

	sum := Summarize([]*models.LogEntry{run, study, old}, today, 7)

	if sum.TotalXP != 100 || sum.RunXP != 60 || sum.StudyXP != 40 {
		t.Errorf("totals = %d/%d/%d, want 100/60/40", sum.TotalXP, sum.RunXP, sum.StudyXP)
	}
	if sum.MissionRate() != 100 {
		t.Errorf("mission rate = %d, want 100", sum.MissionRate())
	}
	if len(sum.Days) != 7 {
		t.Fatalf("days = %d, want 7", len(sum.Days))
	}
	// 06-06 is the second-to-last day; its closing score follows the
	// latest entry of that day.
	day := sum.Days[5]
	if day.Date.String() != "2024-06-06" || day.ClosingScore != 600 {
		t.Errorf("day = %s closing %d, want 2024-06-06 closing 600", day.Date, day.ClosingScore)
	}
	if sum.Days[0].ClosingScore != -1 {
		t.Error("empty day should have closing score -1")
	}
}
