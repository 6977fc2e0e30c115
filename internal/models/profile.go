// ABOUTME: Profile model for the one-time onboarding form.
// ABOUTME: Immutable after creation except by full reset.
package models

import "fmt"

// Profile holds the lifestyle answers collected once at onboarding.
// It is only used to seed the initial score.
type Profile struct {
	Age              int     `json:"age"`
	SleepHours       float64 `json:"sleepHours"`
	HeightCm         float64 `json:"heightCm"`
	WeightKg         float64 `json:"weightKg"`
	ExercisePerWeek  int     `json:"exercisePerWeek"`
	StudyHoursPerDay int     `json:"studyHoursPerDay"`
}

// Validate checks the required fields. Age, sleep, height and weight are
// mandatory; exercise and study frequency may be zero.
func (p *Profile) Validate() error {
	if p.Age <= 0 {
		return fmt.Errorf("age is required")
	}
	if p.SleepHours <= 0 {
		return fmt.Errorf("sleep hours are required")
	}
	if p.HeightCm <= 0 {
		return fmt.Errorf("height is required")
	}
	if p.WeightKg <= 0 {
		return fmt.Errorf("weight is required")
	}
	if p.ExercisePerWeek < 0 || p.StudyHoursPerDay < 0 {
		return fmt.Errorf("exercise and study frequency cannot be negative")
	}
	return nil
}
