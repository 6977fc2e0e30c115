// ABOUTME: Distraction-penalty scoring for the focus flow.
// ABOUTME: Saturating time penalty plus a fixed per-reason penalty table.
package scoring

import "math"

// reasonPenalties is a closed table; unknown reasons take the default.
var reasonPenalties = map[string]int{
	"video":    10,
	"social":   10,
	"game":     12,
	"chat":     6,
	"shopping": 8,
	"news":     5,
}

const defaultReasonPenalty = 8

// TimePenalty grows with session length but saturates near 50, so a
// single long session cannot zero the score on its own.
func TimePenalty(minutes float64) float64 {
	if minutes <= 0 {
		return 0
	}
	return 50 * (1 - math.Exp(-minutes/60))
}

// ReasonPenalty looks up the fixed penalty for a distraction reason.
func ReasonPenalty(reason string) int {
	if p, ok := reasonPenalties[reason]; ok {
		return p
	}
	return defaultReasonPenalty
}

// DistractionScore rates a distraction session on the 0-100 scale:
// 100 minus the time and reason penalties, clamped.
func DistractionScore(minutes float64, reason string) int {
	score := 100 - TimePenalty(minutes) - float64(ReasonPenalty(reason))
	return Clamp(int(math.Round(score)), 0, 100)
}
