// ABOUTME: Daily XP cap accounting, midnight decay and goal recommendation.
// ABOUTME: Pure helpers over the activity log; no storage access.
package progress

import (
	"math"

	"github.com/fbwogus456-hub/levelup/internal/models"
	"github.com/fbwogus456-hub/levelup/internal/scoring"
)

// TodayXP sums the XP of all log entries on the given day.
func TodayXP(logs []*models.LogEntry, day models.Date) int {
	total := 0
	for _, l := range logs {
		if l != nil && l.Date == day {
			total += l.XP
		}
	}
	return total
}

// RemainingXP is the room left under the daily cap.
func RemainingXP(logs []*models.LogEntry, day models.Date) int {
	r := scoring.DailyXPCap - TodayXP(logs, day)
	if r < 0 {
		return 0
	}
	return r
}

// Award clamps a computed XP value to the remaining daily room.
// A zero award means the activity must be rejected outright.
func Award(computed int, remaining int) int {
	if computed < 0 {
		computed = 0
	}
	if computed > remaining {
		return remaining
	}
	return computed
}

// RolloverResult is what the midnight pass surfaces to the user.
type RolloverResult struct {
	Decayed   int // score after decay
	Level     string
	GoalXP    int
	MinKeepXP int
}

// Rollover applies the daily decay to a score and recomputes the two
// guidance figures: the minimum XP needed to keep the current level and a
// recommended goal for the day. Call once per calendar day.
func Rollover(score int, logs []*models.LogEntry, today models.Date, levels scoring.Levels) RolloverResult {
	decayed := scoring.Clamp(score-scoring.DailyDecay, scoring.ScoreMin, levels.Max)
	level := levels.LevelFromScore(decayed)

	minKeep := levels.Floor(level) - decayed
	minKeep = scoring.Clamp(minKeep, 0, scoring.DailyXPCap)

	return RolloverResult{
		Decayed:   decayed,
		Level:     level,
		GoalXP:    RecommendedGoalXP(logs, today),
		MinKeepXP: minKeep,
	}
}

// RecommendedGoalXP blends the trailing 7-day average with a surcharge for
// inactive days: each zero-XP day in the window pushes the goal up by 6 XP.
// Floored at the minimum goal, capped at the daily cap and at the room
// still available today.
func RecommendedGoalXP(logs []*models.LogEntry, today models.Date) int {
	total := 0
	zeroDays := 0
	for i := 1; i <= 7; i++ {
		day := today.AddDays(-i)
		xp := TodayXP(logs, day)
		total += xp
		if xp == 0 {
			zeroDays++
		}
	}

	goal := int(math.Round(float64(total)/7)) + 6*zeroDays
	if goal < scoring.GoalFloorXP {
		goal = scoring.GoalFloorXP
	}
	if goal > scoring.DailyXPCap {
		goal = scoring.DailyXPCap
	}
	if remaining := RemainingXP(logs, today); goal > remaining {
		goal = remaining
	}
	return goal
}

// DayTotals summarizes one calendar day for the weekly report.
type DayTotals struct {
	Date         models.Date
	XP           int
	ClosingScore int // score after the day's last entry, -1 when no entries
}

// WeeklySummary aggregates the last n days for the report view.
type WeeklySummary struct {
	Days         []DayTotals
	TotalXP      int
	RunXP        int
	StudyXP      int
	MissionDone  int
	MissionTotal int
}

// MissionRate is the completion percentage, 0 when nothing was attached.
func (w WeeklySummary) MissionRate() int {
	if w.MissionTotal == 0 {
		return 0
	}
	return int(math.Round(float64(w.MissionDone) / float64(w.MissionTotal) * 100))
}

// Summarize builds the weekly report over the n days ending today.
func Summarize(logs []*models.LogEntry, today models.Date, n int) WeeklySummary {
	var sum WeeklySummary
	for i := n - 1; i >= 0; i-- {
		day := today.AddDays(-i)
		totals := DayTotals{Date: day, ClosingScore: -1}

		var lastCreated int64
		for _, l := range logs {
			if l == nil || l.Date != day {
				continue
			}
			totals.XP += l.XP
			sum.TotalXP += l.XP
			switch l.Type {
			case models.ActivityRun:
				sum.RunXP += l.XP
			case models.ActivityStudy:
				sum.StudyXP += l.XP
			}
			if l.Mission != nil {
				sum.MissionTotal++
				if l.Mission.Completed {
					sum.MissionDone++
				}
			}
			if l.CreatedAt >= lastCreated {
				lastCreated = l.CreatedAt
				totals.ClosingScore = l.ScoreAfter
			}
		}
		sum.Days = append(sum.Days, totals)
	}
	return sum
}
