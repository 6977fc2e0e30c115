// ABOUTME: Streak/level recompute pass over the focus history.
// ABOUTME: Single deterministic walk; idempotent, order-preserving.
package progress

import (
	"sort"

	"github.com/fbwogus456-hub/levelup/internal/models"
	"github.com/fbwogus456-hub/levelup/internal/scoring"
)

// Recompute annotates every focus entry with its streak, final score and
// grade, derived solely from the base scores and dates. The input slice is
// returned with entries in their original order; the working pass re-sorts
// a separate slice of the same pointers, so mutation lands on the right
// entries regardless of input order.
//
// Streak rule: an entry continues the streak only when it is completed and
// dated exactly one day after the previous dated entry. Otherwise the
// streak restarts at 1 (completed) or 0 (not). Entries without a date are
// excluded from streak propagation entirely.
func Recompute(entries []*models.FocusEntry, grades scoring.Levels) []*models.FocusEntry {
	dated := make([]*models.FocusEntry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		if e.Date.IsZero() {
			e.Streak = 0
			e.FinalScore = scoring.Clamp(e.BaseScore, 0, grades.Max)
			e.Level = grades.LevelFromScore(e.FinalScore)
			continue
		}
		dated = append(dated, e)
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].Date.Before(dated[j].Date)
	})

	var prev models.Date
	streak := 0
	for _, e := range dated {
		switch {
		case !prev.IsZero() && prev.DaysUntil(e.Date) == 1 && e.Completed:
			streak++
		case e.Completed:
			streak = 1
		default:
			streak = 0
		}

		e.Streak = streak
		e.FinalScore = scoring.Clamp(e.BaseScore+scoring.StreakBonus(streak), 0, grades.Max)
		e.Level = grades.LevelFromScore(e.FinalScore)
		prev = e.Date
	}

	return entries
}
