// ABOUTME: Focus (distraction-logging) history records on the 0-100 scale.
// ABOUTME: Streak, final score and grade are recomputed on every mutation.
package models

import (
	"time"

	"github.com/google/uuid"
)

// FocusEntry is one logged distraction session. BaseScore comes straight
// from the penalty formula; Streak, FinalScore and Level are derived
// annotations owned by the recompute pass.
type FocusEntry struct {
	ID         uuid.UUID `json:"id"`
	Date       Date      `json:"dateISO"`
	LocalDate  string    `json:"date,omitempty"` // legacy locale string, display only
	Screen     string    `json:"screen"`
	Minutes    float64   `json:"minutes"`
	Reason     string    `json:"reason"`
	Intended   bool      `json:"intended"`
	BaseScore  int       `json:"baseScore"`
	Completed  bool      `json:"completed"`
	Streak     int       `json:"streak"`
	FinalScore int       `json:"finalScore"`
	Level      string    `json:"level"`
	ResultText string    `json:"resultText,omitempty"`
}

// NewFocusEntry creates a focus record for the given day.
func NewFocusEntry(day Date, screen string, minutes float64, reason string, intended bool) *FocusEntry {
	return &FocusEntry{
		ID:        uuid.New(),
		Date:      day,
		LocalDate: day.Time().Format(time.DateOnly),
		Screen:    screen,
		Minutes:   minutes,
		Reason:    reason,
		Intended:  intended,
	}
}
