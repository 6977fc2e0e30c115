// ABOUTME: MCP tool implementations for the habit tracker.
// ABOUTME: Exposes activity logging, missions, focus and status reads.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/fbwogus456-hub/levelup/internal/models"
	"github.com/fbwogus456-hub/levelup/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// set_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_profile",
		Description: "Set the onboarding profile and restart progress from the computed initial score",
	}, s.handleSetProfile)

	// log_run
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_run",
		Description: "Log a run (distance and time) and earn XP within today's cap",
	}, s.handleLogRun)

	// log_study
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_study",
		Description: "Log a study session (number of sets) and earn XP within today's cap",
	}, s.handleLogStudy)

	// log_focus
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_focus",
		Description: "Log a screen distraction session and get its focus score",
	}, s.handleLogFocus)

	// complete_mission
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_mission",
		Description: "Mark today's mission done and credit its bonus XP",
	}, s.handleCompleteMission)

	// get_status
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_status",
		Description: "Get the current score, level, streak and today's XP budget",
	}, s.handleGetStatus)

	// get_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_history",
		Description: "List recent activity log entries, newest first",
	}, s.handleGetHistory)

	// get_weekly
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_weekly",
		Description: "Get the 7-day XP summary and the latest weekly comment",
	}, s.handleGetWeekly)
}

// Tool input/output types

// The jsonschema tag is the field description; fields without omitempty
// are required in the generated schema.

type setProfileInput struct {
	Age              int     `json:"age" jsonschema:"Age in years"`
	SleepHours       float64 `json:"sleep_hours" jsonschema:"Average sleep per night in hours"`
	HeightCm         float64 `json:"height_cm" jsonschema:"Height in centimeters"`
	WeightKg         float64 `json:"weight_kg" jsonschema:"Weight in kilograms"`
	ExercisePerWeek  int     `json:"exercise_per_week" jsonschema:"Exercise sessions per week"`
	StudyHoursPerDay int     `json:"study_hours_per_day" jsonschema:"Study hours per day"`
}

type logRunInput struct {
	Km      float64 `json:"km" jsonschema:"Distance in kilometers"`
	Minutes float64 `json:"minutes" jsonschema:"Duration in minutes"`
}

type logStudyInput struct {
	Sets int `json:"sets" jsonschema:"Number of study sets completed"`
}

type logFocusInput struct {
	Screen   string  `json:"screen" jsonschema:"What was on screen (app or site)"`
	Minutes  float64 `json:"minutes" jsonschema:"Session length in minutes"`
	Reason   string  `json:"reason,omitempty" jsonschema:"Why (video, social, game, chat, shopping, news)"`
	Intended bool    `json:"intended,omitempty" jsonschema:"Whether the session was a deliberate break"`
}

type activityOutput struct {
	XP          int    `json:"xp"`
	StreakBonus int    `json:"streak_bonus"`
	Score       int    `json:"score"`
	Level       string `json:"level"`
	Streak      int    `json:"streak"`
	Mission     string `json:"mission,omitempty"`
	Message     string `json:"message"`
}

type focusOutput struct {
	BaseScore  int    `json:"base_score"`
	FinalScore int    `json:"final_score"`
	Grade      string `json:"grade"`
	Streak     int    `json:"streak"`
	Message    string `json:"message"`
}

type missionOutput struct {
	BonusXP int    `json:"bonus_xp"`
	Score   int    `json:"score"`
	Message string `json:"message"`
}

type historyInput struct {
	Days int `json:"days,omitempty" jsonschema:"How many days back to list (default 7)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleSetProfile(ctx context.Context, req *mcp.CallToolRequest, input setProfileInput) (*mcp.CallToolResult, simpleOutput, error) {
	st, err := s.tracker.SetProfile(models.Profile{
		Age:              input.Age,
		SleepHours:       input.SleepHours,
		HeightCm:         input.HeightCm,
		WeightKg:         input.WeightKg,
		ExercisePerWeek:  input.ExercisePerWeek,
		StudyHoursPerDay: input.StudyHoursPerDay,
	})
	if err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Profile saved. Starting score %d (%s).", st.Score, st.Level),
	}, nil
}

func (s *Server) handleLogRun(ctx context.Context, req *mcp.CallToolRequest, input logRunInput) (*mcp.CallToolResult, activityOutput, error) {
	res, err := s.tracker.LogRun(ctx, input.Km, input.Minutes)
	return s.activityResult(res, err, fmt.Sprintf("Run %.1f km in %.0f min", input.Km, input.Minutes))
}

func (s *Server) handleLogStudy(ctx context.Context, req *mcp.CallToolRequest, input logStudyInput) (*mcp.CallToolResult, activityOutput, error) {
	res, err := s.tracker.LogStudy(ctx, input.Sets)
	return s.activityResult(res, err, fmt.Sprintf("Study %d sets", input.Sets))
}

func (s *Server) activityResult(res *tracker.ApplyResult, err error, what string) (*mcp.CallToolResult, activityOutput, error) {
	if errors.Is(err, tracker.ErrDailyCapReached) {
		return nil, activityOutput{Message: "Daily XP cap reached, nothing was logged. Come back tomorrow."}, nil
	}
	if err != nil {
		return nil, activityOutput{}, err
	}

	st, serr := s.tracker.Status()
	if serr != nil {
		return nil, activityOutput{}, serr
	}

	out := activityOutput{
		XP:          res.XP,
		StreakBonus: res.StreakBonus,
		Score:       res.ScoreAfter,
		Level:       st.Level,
		Streak:      res.Streak,
		Message:     fmt.Sprintf("%s: +%d XP. Score %d (%s), streak %d.", what, res.XP, res.ScoreAfter, st.Level, res.Streak),
	}
	if res.Mission != nil && !res.Mission.Completed {
		out.Mission = res.Mission.Text
	}
	return nil, out, nil
}

func (s *Server) handleLogFocus(ctx context.Context, req *mcp.CallToolRequest, input logFocusInput) (*mcp.CallToolResult, focusOutput, error) {
	entry, err := s.tracker.LogFocus(input.Screen, input.Minutes, input.Reason, input.Intended)
	if err != nil {
		return nil, focusOutput{}, err
	}
	return nil, focusOutput{
		BaseScore:  entry.BaseScore,
		FinalScore: entry.FinalScore,
		Grade:      entry.Level,
		Streak:     entry.Streak,
		Message:    fmt.Sprintf("Focus score %d (%s), streak %d.", entry.FinalScore, entry.Level, entry.Streak),
	}, nil
}

func (s *Server) handleCompleteMission(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, missionOutput, error) {
	res, err := s.tracker.CompleteMission()
	if err != nil {
		return nil, missionOutput{}, err
	}
	out := missionOutput{BonusXP: res.BonusXP, Score: res.ScoreAfter}
	switch {
	case res.CapBlocked:
		out.Message = "Mission completed, but the daily cap left no room for the bonus."
	case res.BonusXP == 0:
		out.Message = "Mission was already completed today."
	default:
		out.Message = fmt.Sprintf("Mission completed: +%d bonus XP. Score %d.", res.BonusXP, res.ScoreAfter)
	}
	return nil, out, nil
}

func (s *Server) handleGetStatus(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	st, err := s.tracker.Status()
	if err != nil {
		return nil, nil, err
	}

	out := map[string]any{
		"score":        st.Score,
		"level":        st.Level,
		"streak":       st.Streak,
		"today_xp":     st.TodayXP,
		"remaining_xp": st.RemainingXP,
		"goal_xp":      st.GoalXP,
		"min_keep_xp":  st.MinKeepXP,
		"cap_reached":  st.CapReached,
	}
	if st.Mission != nil {
		out["mission"] = st.Mission.Text
		out["mission_completed"] = st.Mission.Completed
	}
	return nil, out, nil
}

func (s *Server) handleGetHistory(ctx context.Context, req *mcp.CallToolRequest, input historyInput) (*mcp.CallToolResult, any, error) {
	if input.Days <= 0 {
		input.Days = 7
	}

	entries, err := s.tracker.History(input.Days)
	if err != nil {
		return nil, nil, err
	}
	if len(entries) == 0 {
		return nil, map[string]any{"message": "No log entries yet."}, nil
	}
	return nil, entries, nil
}

func (s *Server) handleGetWeekly(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	sum, comment, err := s.tracker.Weekly()
	if err != nil {
		return nil, nil, err
	}
	return nil, map[string]any{
		"days":          sum.Days,
		"total_xp":      sum.TotalXP,
		"run_xp":        sum.RunXP,
		"study_xp":      sum.StudyXP,
		"missions_done": sum.MissionDone,
		"mission_total": sum.MissionTotal,
		"mission_rate":  sum.MissionRate(),
		"comment":       comment,
	}, nil
}
