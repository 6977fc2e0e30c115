// ABOUTME: Client for the /api/analyze mission, nudge and analysis calls.
// ABOUTME: Single attempt, no retry; mission/nudge failures become fallbacks.
package mission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fbwogus456-hub/levelup/internal/models"
)

// LogSummary is the trimmed log entry sent as recent context, at most 20.
type LogSummary struct {
	DateISO string               `json:"dateISO"`
	Type    string               `json:"type"`
	XP      int                  `json:"xp"`
	Input   models.ActivityInput `json:"input"`
}

// MissionRequest asks for today's mission plus a weekly comment.
type MissionRequest struct {
	Mode         string       `json:"mode"`
	TodayISO     string       `json:"todayISO"`
	ActivityType string       `json:"activityType"`
	Recent       []LogSummary `json:"recent"`
}

// MissionReply is the mission-mode response.
type MissionReply struct {
	MissionText   string `json:"missionText"`
	WeeklyComment string `json:"weeklyComment"`
}

// NudgeRequest asks for a short pressure message about today's XP gap.
type NudgeRequest struct {
	Mode          string `json:"mode"`
	TodayISO      string `json:"todayISO"`
	YesterdayISO  string `json:"yesterdayISO"`
	YesterdayXP   int    `json:"yesterdayXP"`
	TodayGoalXP   int    `json:"todayGoalXP"`
	MinKeepXP     int    `json:"minKeepXP"`
	DeltaToGoalXP int    `json:"deltaToGoalXP"`
	DeltaToKeepXP int    `json:"deltaToKeepXP"`
	Level         string `json:"level"`
	Score         int    `json:"score"`
}

// AnalysisRequest is the distraction-analysis call. It carries no mode
// field; the server treats that shape as analysis.
type AnalysisRequest struct {
	Screen   string  `json:"screen"`
	Minutes  float64 `json:"minutes"`
	Reason   string  `json:"reason"`
	Intended bool    `json:"intended"`
}

// Client posts to the analyze endpoint. The injected http.Client owns the
// timeout; there is no retry and no cancellation beyond the context.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given endpoint URL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Mission fetches today's mission. It never fails: any transport error,
// non-2xx status or unusable body yields the deterministic fallback for
// the activity type, so activity logging is never blocked on the AI.
func (c *Client) Mission(ctx context.Context, req MissionRequest) MissionReply {
	req.Mode = "mission"
	if len(req.Recent) > 20 {
		req.Recent = req.Recent[len(req.Recent)-20:]
	}

	var reply MissionReply
	if err := c.post(ctx, req, &reply); err != nil {
		return FallbackMission(req.ActivityType)
	}

	reply.MissionText = strings.TrimSpace(reply.MissionText)
	reply.WeeklyComment = strings.TrimSpace(reply.WeeklyComment)
	if reply.MissionText == "" {
		fb := FallbackMission(req.ActivityType)
		reply.MissionText = fb.MissionText
		if reply.WeeklyComment == "" {
			reply.WeeklyComment = fb.WeeklyComment
		}
	}
	return reply
}

// Nudge fetches the daily pressure message, falling back silently.
func (c *Client) Nudge(ctx context.Context, req NudgeRequest) string {
	req.Mode = "nudge"

	var reply struct {
		NudgeText string `json:"nudgeText"`
	}
	if err := c.post(ctx, req, &reply); err != nil {
		return FallbackNudge
	}
	if text := strings.TrimSpace(reply.NudgeText); text != "" {
		return text
	}
	return FallbackNudge
}

// Analyze runs the distraction analysis. Unlike the other modes, errors
// surface to the caller with upstream detail; the focus flow displays them.
func (c *Client) Analyze(ctx context.Context, req AnalysisRequest) (string, error) {
	var reply struct {
		Result string `json:"result"`
	}
	if err := c.post(ctx, req, &reply); err != nil {
		return "", err
	}
	result := strings.TrimSpace(reply.Result)
	if result == "" {
		return "", fmt.Errorf("analysis returned empty result")
	}
	return result, nil
}

func (c *Client) post(ctx context.Context, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("post %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("analyze endpoint: %s (status %d)", apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("analyze endpoint returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
