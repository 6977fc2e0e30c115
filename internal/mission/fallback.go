// ABOUTME: Hardcoded fallback content used when the AI call fails.
// ABOUTME: Deterministic per activity type so the flow never dead-ends.
package mission

// FallbackWeekly is the weekly comment used when none comes back.
const FallbackWeekly = "This week, focus on starting small and not breaking the chain."

// FallbackNudge is the nudge shown when the AI call fails.
const FallbackNudge = "Log one short activity before midnight and protect your streak."

// FallbackMission returns the canned mission for an activity type.
func FallbackMission(activityType string) MissionReply {
	var text string
	switch activityType {
	case "run":
		text = "Today's mission: stretch for 8 minutes after your run, then check it off."
	case "study":
		text = "Today's mission: write down 3 tasks for tomorrow, then check them off."
	default:
		text = "Today's mission: tidy up for 10 minutes, then check it off."
	}
	return MissionReply{MissionText: text, WeeklyComment: FallbackWeekly}
}
