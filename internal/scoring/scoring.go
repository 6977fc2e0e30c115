// ABOUTME: Pure XP and score formulas for the habit flows.
// ABOUTME: No state, no clocks; every function maps inputs to a number.
package scoring

import (
	"math"

	"github.com/fbwogus456-hub/levelup/internal/models"
)

const (
	ScoreMin = 0
	ScoreMax = 1000

	// DailyXPCap is the maximum XP a user can accrue per calendar day
	// across all activities, mission bonus included.
	DailyXPCap = 120

	MissionBonusXP = 10

	// DailyDecay is subtracted from the score at each midnight rollover.
	DailyDecay = 8

	// GoalFloorXP is the minimum recommended daily goal.
	GoalFloorXP = 40

	LogRetentionDays = 90
	HistoryShowDays  = 7

	runXPCap   = 80
	studyXPCap = 80
)

// RunXP scores a run: 10 XP per km plus a pace bonus, capped at 80.
// Pace bonus: +10 at 5:30 min/km or faster, +5 at 6:30 or faster.
// Non-positive distance or time yields 0.
func RunXP(km, minutes float64) int {
	if km <= 0 || minutes <= 0 {
		return 0
	}
	xp := int(math.Round(10 * km))

	pace := minutes / km
	switch {
	case pace <= 5.5:
		xp += 10
	case pace <= 6.5:
		xp += 5
	}

	if xp > runXPCap {
		xp = runXPCap
	}
	if xp < 0 {
		xp = 0
	}
	return xp
}

// StudyXP scores a study session: 8 XP per set, capped at 80.
func StudyXP(sets int) int {
	if sets <= 0 {
		return 0
	}
	xp := sets * 8
	if xp > studyXPCap {
		xp = studyXPCap
	}
	return xp
}

// StreakBonus is the step bonus for consecutive active days.
func StreakBonus(streak int) int {
	switch {
	case streak >= 7:
		return 8
	case streak >= 3:
		return 5
	case streak >= 2:
		return 3
	default:
		return 0
	}
}

// InitialScore seeds the score from the onboarding profile. Base 500,
// adjusted by BMI, sleep, exercise and study habits, with a small age
// correction, clamped to the score range.
func InitialScore(p models.Profile) int {
	score := 500.0

	if h := p.HeightCm / 100; h > 0 && p.WeightKg > 0 {
		bmi := p.WeightKg / (h * h)
		switch {
		case bmi >= 18.5 && bmi <= 24.9:
			score += 60
		case bmi >= 17 && bmi < 18.5:
			score += 20
		case bmi > 24.9 && bmi <= 29.9:
			score += 10
		default:
			score -= 30
		}
	}

	switch sleep := p.SleepHours; {
	case sleep >= 7 && sleep <= 8:
		score += 70
	case sleep >= 6 && sleep < 7:
		score += 40
	case sleep > 8 && sleep <= 9:
		score += 40
	case sleep >= 5 && sleep < 6:
		score += 10
	default:
		score -= 40
	}

	// The onboarding form offers fixed choices (0/1/3/5 sessions,
	// 0/1/3/6 hours); other values leave the score untouched.
	switch p.ExercisePerWeek {
	case 0:
		score -= 20
	case 1:
		score += 20
	case 3:
		score += 50
	case 5:
		score += 80
	}

	switch p.StudyHoursPerDay {
	case 0:
		score -= 10
	case 1:
		score += 20
	case 3:
		score += 50
	case 6:
		score += 80
	}

	if p.Age >= 10 && p.Age <= 60 {
		score += ClampF(20-math.Abs(float64(p.Age)-22), -10, 20)
	}

	return Clamp(int(math.Round(score)), ScoreMin, ScoreMax)
}

// Clamp bounds n to [min, max].
func Clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// ClampF bounds f to [min, max].
func ClampF(f, min, max float64) float64 {
	return math.Max(min, math.Min(max, f))
}
