// ABOUTME: Append-only activity log models for the XP flow.
// ABOUTME: Entries older than the retention window are pruned on write.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType distinguishes log entries.
type ActivityType string

const (
	ActivityRun     ActivityType = "run"
	ActivityStudy   ActivityType = "study"
	ActivityMission ActivityType = "mission"
)

// ActivityInput is the raw input that produced an entry's XP. Exactly the
// fields for the entry's type are set.
type ActivityInput struct {
	Km      float64 `json:"km,omitempty"`
	Minutes float64 `json:"minutes,omitempty"`
	Sets    int     `json:"sets,omitempty"`
	Bonus   bool    `json:"bonus,omitempty"`
}

// MissionSnapshot freezes the mission as it looked when the entry was
// written, for history display.
type MissionSnapshot struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	BonusXP   int    `json:"bonusXp"`
}

// LogEntry is one awarded activity. ScoreBefore/ScoreAfter record the
// score transition so history can be rendered without replaying.
type LogEntry struct {
	ID          uuid.UUID        `json:"id"`
	CreatedAt   int64            `json:"createdAt"` // unix milliseconds
	Date        Date             `json:"dateISO"`
	Type        ActivityType     `json:"type"`
	Input       ActivityInput    `json:"input"`
	XP          int              `json:"xp"`
	ScoreBefore int              `json:"scoreBefore"`
	ScoreAfter  int              `json:"scoreAfter"`
	Mission     *MissionSnapshot `json:"mission"`
}

// NewLogEntry creates an entry for today with a fresh ID.
func NewLogEntry(day Date, typ ActivityType, input ActivityInput) *LogEntry {
	return &LogEntry{
		ID:        uuid.New(),
		CreatedAt: time.Now().UnixMilli(),
		Date:      day,
		Type:      typ,
		Input:     input,
	}
}

// PruneLogs drops entries older than retentionDays before today, and
// entries that never got a usable date.
func PruneLogs(logs []*LogEntry, today Date, retentionDays int) []*LogEntry {
	kept := logs[:0]
	for _, l := range logs {
		if l == nil || l.Date.IsZero() {
			continue
		}
		if l.Date.DaysUntil(today) <= retentionDays {
			kept = append(kept, l)
		}
	}
	return kept
}
