// ABOUTME: Tracker state and daily mission models.
// ABOUTME: One State instance per store; mutated by every activity.
package models

// Mission is the AI-generated daily task. Valid only for its calendar day;
// a stale mission is replaced on the next activity.
type Mission struct {
	Date      Date   `json:"dateISO"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	BonusXP   int    `json:"bonusXp"`
}

// State is the primary progress record: score, level badge, streak and
// today's mission. GoalXP and MinKeepXP are refreshed at the daily rollover.
type State struct {
	Score        int      `json:"score"`
	Level        string   `json:"level"`
	Streak       int      `json:"streak"`
	LastActive   Date     `json:"lastActiveISO"`
	TodayMission *Mission `json:"todayMission"`

	// Rollover outputs: recommended XP for today and the minimum XP
	// needed to keep the current level after decay.
	GoalXP    int `json:"goalXp,omitempty"`
	MinKeepXP int `json:"minKeepXp,omitempty"`
}

// MissionFor returns the stored mission if it belongs to the given day.
func (s *State) MissionFor(day Date) *Mission {
	if s.TodayMission == nil || s.TodayMission.Date != day {
		return nil
	}
	return s.TodayMission
}

// UIState carries presentation flags that survive restarts: the selected
// activity tab, the last AI weekly comment, and the last rollover day.
type UIState struct {
	ActiveTab     string `json:"activeTab"`
	WeeklyComment string `json:"weeklyComment"`
	LastReset     Date   `json:"lastResetISO"`
}

// ActionState is the running focus-session timer started by "focus start".
type ActionState struct {
	Active    bool   `json:"active"`
	Screen    string `json:"screen"`
	Reason    string `json:"reason"`
	Intended  bool   `json:"intended"`
	StartedAt int64  `json:"startedAt"` // unix milliseconds
}
