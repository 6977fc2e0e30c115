// ABOUTME: Level badge mapping with configurable thresholds.
// ABOUTME: Covers the 0-1000 badge ladder and the 0-100 focus grades.
package scoring

// Levels maps a score range onto ordered badge names. Bounds[i] is the
// lowest score (inclusive) that earns Names[i+1]; scores below Bounds[0]
// earn Names[0].
type Levels struct {
	Names  []string
	Bounds []int
	Max    int
}

// DefaultLevels is the 0-1000 ladder used by the XP flow.
var DefaultLevels = Levels{
	Names:  []string{"Bronze", "Silver", "Gold", "Platinum", "Diamond"},
	Bounds: []int{300, 500, 700, 850},
	Max:    ScoreMax,
}

// FocusGrades is the 0-100 ladder used by the focus flow.
var FocusGrades = Levels{
	Names:  []string{"D", "C", "B", "A", "S"},
	Bounds: []int{40, 60, 75, 90},
	Max:    100,
}

// LevelFromScore returns the badge for a score. Total on the whole range:
// every score maps to exactly one badge, boundaries inclusive below.
func (l Levels) LevelFromScore(score int) string {
	for i := len(l.Bounds) - 1; i >= 0; i-- {
		if score >= l.Bounds[i] {
			return l.Names[i+1]
		}
	}
	return l.Names[0]
}

// Floor returns the lowest score that still earns the given badge, 0 for
// the bottom badge or an unknown name.
func (l Levels) Floor(name string) int {
	for i, n := range l.Names {
		if n == name {
			if i == 0 {
				return 0
			}
			return l.Bounds[i-1]
		}
	}
	return 0
}
