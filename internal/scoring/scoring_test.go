// ABOUTME: Tests for XP formulas and the initial-score arithmetic.
// ABOUTME: Covers caps, monotonicity and the onboarding scenario.
package scoring

import (
	"testing"

	"github.com/fbwogus456-hub/levelup/internal/models"
)

func TestRunXP(t *testing.T) {
	tests := []struct {
		name    string
		km      float64
		minutes float64
		want    int
	}{
		{"zero distance", 0, 30, 0},
		{"zero time", 5, 0, 0},
		{"negative distance", -2, 30, 0},
		{"5km at 5.0 pace gets fast bonus", 5, 25, 60},
		{"5km at 6.0 pace gets slow bonus", 5, 30, 55},
		{"5km at 8.0 pace gets no bonus", 5, 40, 50},
		{"long run hits the cap", 12, 90, 80},
		{"cap applies after bonus", 7.5, 40, 80},
		{"short run rounds distance", 1.2, 10, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RunXP(tt.km, tt.minutes); got != tt.want {
				t.Errorf("RunXP(%v, %v) = %d, want %d", tt.km, tt.minutes, got, tt.want)
			}
		})
	}
}

func TestRunXPMonotonicInDistance(t *testing.T) {
	// Fixed easy pace so the bonus tier never changes while km grows.
	prev := 0
	for km := 0.5; km <= 15; km += 0.5 {
		got := RunXP(km, km*8)
		if got < prev {
			t.Fatalf("RunXP decreased at km=%v: %d < %d", km, got, prev)
		}
		if got > 80 || got < 0 {
			t.Fatalf("RunXP(%v) = %d out of [0,80]", km, got)
		}
		prev = got
	}
}

func TestStudyXP(t *testing.T) {
	tests := []struct {
		sets int
		want int
	}{
		{-1, 0},
		{0, 0},
		{1, 8},
		{5, 40},
		{10, 80},
		{25, 80},
	}

	for _, tt := range tests {
		if got := StudyXP(tt.sets); got != tt.want {
			t.Errorf("StudyXP(%d) = %d, want %d", tt.sets, got, tt.want)
		}
	}
}

func TestStreakBonus(t *testing.T) {
	tests := []struct {
		streak int
		want   int
	}{
		{0, 0}, {1, 0}, {2, 3}, {3, 5}, {6, 5}, {7, 8}, {30, 8},
	}

	for _, tt := range tests {
		if got := StreakBonus(tt.streak); got != tt.want {
			t.Errorf("StreakBonus(%d) = %d, want %d", tt.streak, got, tt.want)
		}
	}
}

func TestInitialScoreScenario(t *testing.T) {
	// 500 base, +60 normal BMI, +70 optimal sleep, +50 exercise,
	// +50 study, +17 age term (20 - |25-22|).
	p := models.Profile{
		Age:              25,
		SleepHours:       7.5,
		HeightCm:         175,
		WeightKg:         70,
		ExercisePerWeek:  3,
		StudyHoursPerDay: 3,
	}

	want := 500 + 60 + 70 + 50 + 50 + 17
	if got := InitialScore(p); got != want {
		t.Errorf("InitialScore = %d, want %d", got, want)
	}
}

func TestInitialScoreClamped(t *testing.T) {
	p := models.Profile{
		Age:              22,
		SleepHours:       7.5,
		HeightCm:         175,
		WeightKg:         70,
		ExercisePerWeek:  5,
		StudyHoursPerDay: 6,
	}
	// 500+60+70+80+80+20 = 810, inside range; push it over with a
	// direct check of the clamp helper instead of fabricating inputs.
	if got := InitialScore(p); got != 810 {
		t.Errorf("InitialScore = %d, want 810", got)
	}
	if got := Clamp(1200, ScoreMin, ScoreMax); got != ScoreMax {
		t.Errorf("Clamp(1200) = %d, want %d", got, ScoreMax)
	}
	if got := Clamp(-5, ScoreMin, ScoreMax); got != ScoreMin {
		t.Errorf("Clamp(-5) = %d, want %d", got, ScoreMin)
	}
}
