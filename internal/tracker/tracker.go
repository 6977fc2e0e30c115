// ABOUTME: Tracker service: the applyActivity, mission and reset flows.
// ABOUTME: Owns all state mutation; storage and AI client are injected.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fbwogus456-hub/levelup/internal/mission"
	"github.com/fbwogus456-hub/levelup/internal/models"
	"github.com/fbwogus456-hub/levelup/internal/progress"
	"github.com/fbwogus456-hub/levelup/internal/scoring"
	"github.com/fbwogus456-hub/levelup/internal/storage"
)

var (
	// ErrDailyCapReached signals a rejected activity: nothing was logged
	// and nothing changed. Not a failure, a defined no-op outcome.
	ErrDailyCapReached = errors.New("daily XP cap reached")

	// ErrNoProfile gates every activity until onboarding is done.
	ErrNoProfile = errors.New("no profile yet, run 'levelup profile set' first")

	// ErrNoMission means there is no mission for today to complete.
	ErrNoMission = errors.New("no mission for today")
)

// MissionService is the AI boundary. mission.Client implements it; tests
// substitute a stub.
type MissionService interface {
	Mission(ctx context.Context, req mission.MissionRequest) mission.MissionReply
	Nudge(ctx context.Context, req mission.NudgeRequest) string
	Analyze(ctx context.Context, req mission.AnalysisRequest) (string, error)
}

// Tracker coordinates scoring, the daily cap, missions and persistence.
// All the original's module-level state lives here explicitly.
type Tracker struct {
	store    *storage.Store
	missions MissionService
	levels   scoring.Levels

	// Now is the clock; tests pin it.
	Now func() time.Time
}

// New creates a Tracker over an opened store.
func New(store *storage.Store, missions MissionService) *Tracker {
	return &Tracker{
		store:    store,
		missions: missions,
		levels:   scoring.DefaultLevels,
		Now:      time.Now,
	}
}

func (t *Tracker) today() models.Date {
	return models.DateOf(t.Now())
}

// SetProfile stores the onboarding profile and restarts progress from the
// computed initial score. Existing logs are cleared to keep the weekly
// report consistent.
func (t *Tracker) SetProfile(p models.Profile) (*models.State, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := t.store.SetProfile(&p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	initial := scoring.InitialScore(p)
	st := &models.State{
		Score: initial,
		Level: t.levels.LevelFromScore(initial),
	}
	if err := t.store.SetState(st); err != nil {
		return nil, fmt.Errorf("save state: %w", err)
	}
	if err := t.store.SetLogs(nil); err != nil {
		return nil, fmt.Errorf("clear logs: %w", err)
	}
	return st, nil
}

// Profile returns the stored profile, nil when onboarding hasn't happened.
func (t *Tracker) Profile() (*models.Profile, error) {
	return t.store.Profile()
}

// ApplyResult reports what one activity submission did.
type ApplyResult struct {
	Type        models.ActivityType
	BaseXP      int
	StreakBonus int
	XP          int
	ScoreBefore int
	ScoreAfter  int
	Streak      int
	Mission     *models.Mission
	NewMission  bool // true when this submission generated today's mission
}

// LogRun records a run. Rejected without mutation when inputs are invalid
// or the daily cap leaves no room.
func (t *Tracker) LogRun(ctx context.Context, km, minutes float64) (*ApplyResult, error) {
	if km <= 0 || minutes <= 0 {
		return nil, fmt.Errorf("run needs a positive distance and time")
	}
	return t.applyActivity(ctx, models.ActivityRun,
		scoring.RunXP(km, minutes),
		models.ActivityInput{Km: km, Minutes: minutes})
}

// LogStudy records a study session of the given number of sets.
func (t *Tracker) LogStudy(ctx context.Context, sets int) (*ApplyResult, error) {
	if sets <= 0 {
		return nil, fmt.Errorf("study needs a positive set count")
	}
	return t.applyActivity(ctx, models.ActivityStudy,
		scoring.StudyXP(sets),
		models.ActivityInput{Sets: sets})
}

func (t *Tracker) applyActivity(ctx context.Context, typ models.ActivityType, baseXP int, input models.ActivityInput) (*ApplyResult, error) {
	profile, err := t.store.Profile()
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNoProfile
	}

	st, err := t.store.State()
	if err != nil {
		return nil, err
	}
	logs, err := t.store.Logs()
	if err != nil {
		return nil, err
	}

	today := t.today()
	logs = models.PruneLogs(logs, today, scoring.LogRetentionDays)

	// Same-day activity keeps the streak; exactly one day after the last
	// active day extends it; anything else restarts at 1.
	streak := st.Streak
	switch {
	case st.LastActive == today:
	case !st.LastActive.IsZero() && st.LastActive.DaysUntil(today) == 1:
		streak++
	default:
		streak = 1
	}

	bonus := scoring.StreakBonus(streak)
	remaining := progress.RemainingXP(logs, today)
	xp := progress.Award(baseXP+bonus, remaining)
	if xp <= 0 {
		return nil, ErrDailyCapReached
	}

	before := st.Score
	after := scoring.Clamp(before+xp, scoring.ScoreMin, scoring.ScoreMax)

	entry := models.NewLogEntry(today, typ, input)
	entry.XP = xp
	entry.ScoreBefore = before
	entry.ScoreAfter = after

	st.Score = after
	st.Level = t.levels.LevelFromScore(after)
	st.Streak = streak
	st.LastActive = today

	result := &ApplyResult{
		Type:        typ,
		BaseXP:      baseXP,
		StreakBonus: bonus,
		XP:          xp,
		ScoreBefore: before,
		ScoreAfter:  after,
		Streak:      streak,
	}

	// Generate today's mission on the first qualifying activity. The
	// client absorbs every failure into fallback text, so this cannot
	// abort the submission.
	if st.MissionFor(today) == nil {
		reply := t.missions.Mission(ctx, mission.MissionRequest{
			TodayISO:     today.String(),
			ActivityType: string(typ),
			Recent:       recentSummaries(logs, today),
		})
		st.TodayMission = &models.Mission{
			Date:    today,
			Text:    reply.MissionText,
			BonusXP: scoring.MissionBonusXP,
		}
		result.NewMission = true

		if reply.WeeklyComment != "" {
			if ui, err := t.store.UI(); err == nil {
				ui.WeeklyComment = reply.WeeklyComment
				_ = t.store.SetUI(ui)
			}
		}
	}

	if m := st.TodayMission; m != nil {
		entry.Mission = &models.MissionSnapshot{Text: m.Text, Completed: m.Completed, BonusXP: m.BonusXP}
	}
	result.Mission = st.TodayMission

	logs = append(logs, entry)
	if err := t.store.SetLogs(logs); err != nil {
		return nil, fmt.Errorf("save logs: %w", err)
	}
	if err := t.store.SetState(st); err != nil {
		return nil, fmt.Errorf("save state: %w", err)
	}
	return result, nil
}

func recentSummaries(logs []*models.LogEntry, today models.Date) []mission.LogSummary {
	var out []mission.LogSummary
	for _, l := range logs {
		if l.Date.DaysUntil(today) > 6 {
			continue
		}
		out = append(out, mission.LogSummary{
			DateISO: l.Date.String(),
			Type:    string(l.Type),
			XP:      l.XP,
			Input:   l.Input,
		})
	}
	if len(out) > 20 {
		out = out[len(out)-20:]
	}
	return out
}

// MissionResult reports a mission completion.
type MissionResult struct {
	BonusXP     int // actually credited, 0 when the cap had no room
	ScoreBefore int
	ScoreAfter  int
	CapBlocked  bool
}

// CompleteMission marks today's mission done and credits its bonus XP
// within the remaining daily room. With no room left the completion is
// still recorded but nothing else mutates.
func (t *Tracker) CompleteMission() (*MissionResult, error) {
	st, err := t.store.State()
	if err != nil {
		return nil, err
	}

	today := t.today()
	m := st.MissionFor(today)
	if m == nil {
		return nil, ErrNoMission
	}
	if m.Completed {
		return &MissionResult{ScoreBefore: st.Score, ScoreAfter: st.Score}, nil
	}

	logs, err := t.store.Logs()
	if err != nil {
		return nil, err
	}
	logs = models.PruneLogs(logs, today, scoring.LogRetentionDays)

	bonus := progress.Award(m.BonusXP, progress.RemainingXP(logs, today))
	if bonus <= 0 {
		m.Completed = true
		if err := t.store.SetState(st); err != nil {
			return nil, fmt.Errorf("save state: %w", err)
		}
		return &MissionResult{ScoreBefore: st.Score, ScoreAfter: st.Score, CapBlocked: true}, nil
	}

	before := st.Score
	after := scoring.Clamp(before+bonus, scoring.ScoreMin, scoring.ScoreMax)

	st.Score = after
	st.Level = t.levels.LevelFromScore(after)
	m.Completed = true

	entry := models.NewLogEntry(today, models.ActivityMission, models.ActivityInput{Bonus: true})
	entry.XP = bonus
	entry.ScoreBefore = before
	entry.ScoreAfter = after
	entry.Mission = &models.MissionSnapshot{Text: m.Text, Completed: true, BonusXP: m.BonusXP}

	logs = append(logs, entry)
	if err := t.store.SetLogs(logs); err != nil {
		return nil, fmt.Errorf("save logs: %w", err)
	}
	if err := t.store.SetState(st); err != nil {
		return nil, fmt.Errorf("save state: %w", err)
	}
	return &MissionResult{BonusXP: bonus, ScoreBefore: before, ScoreAfter: after}, nil
}

// Reset wipes every blob: profile, state, logs, history, UI flags.
func (t *Tracker) Reset() error {
	return t.store.Reset()
}
