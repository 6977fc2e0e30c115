// ABOUTME: The analyze HTTP server: one POST endpoint with three modes.
// ABOUTME: Mission and nudge expect JSON from the model and degrade to raw
// text when it sends prose instead.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const missingKeyMessage = "Missing OPENAI_API_KEY in environment variables."

// Server owns the gin router and the model client.
type Server struct {
	cfg Config
	log *zap.Logger
	ai  TextGenerator
}

// New wires the router. The TextGenerator may be nil, in which case the
// real OpenAI client is built from the config.
func New(cfg Config, log *zap.Logger, ai TextGenerator) *Server {
	if ai == nil {
		ai = NewOpenAI(cfg)
	}
	return &Server{cfg: cfg, log: log, ai: ai}
}

// Router builds the gin engine.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())

	r.POST("/api/analyze", s.handleAnalyze)
	r.NoRoute(func(c *gin.Context) {
		if c.Request.URL.Path == "/api/analyze" {
			c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	return r
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	s.log.Info("analyze server listening", zap.String("addr", s.cfg.Addr), zap.String("model", s.cfg.OpenAIModel))
	return s.Router().Run(s.cfg.Addr)
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

// analyzeRequest is the union of all three modes. Mode selects mission or
// nudge; a request without a mode is a distraction analysis.
type analyzeRequest struct {
	Mode string `json:"mode"`

	// mission
	TodayISO     string          `json:"todayISO"`
	ActivityType string          `json:"activityType"`
	Recent       json.RawMessage `json:"recent"`

	// nudge
	YesterdayISO  string `json:"yesterdayISO"`
	YesterdayXP   int    `json:"yesterdayXP"`
	TodayGoalXP   int    `json:"todayGoalXP"`
	MinKeepXP     int    `json:"minKeepXP"`
	DeltaToGoalXP int    `json:"deltaToGoalXP"`
	DeltaToKeepXP int    `json:"deltaToKeepXP"`
	Level         string `json:"level"`
	Score         int    `json:"score"`

	// analysis
	Screen   string  `json:"screen"`
	Minutes  float64 `json:"minutes"`
	Reason   string  `json:"reason"`
	Intended bool    `json:"intended"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	if s.cfg.OpenAIKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": missingKeyMessage})
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	switch req.Mode {
	case "mission":
		s.handleMission(c, req)
	case "nudge":
		s.handleNudge(c, req)
	default:
		s.handleAnalysis(c, req)
	}
}

func (s *Server) handleMission(c *gin.Context, req analyzeRequest) {
	input := "Today: " + req.TodayISO + "\nActivity just logged: " + req.ActivityType +
		"\nRecent log entries (JSON): " + string(req.Recent)

	raw, err := s.ai.Generate(c.Request.Context(), missionInstructions, input)
	if err != nil {
		s.upstreamError(c, err)
		return
	}

	var reply struct {
		MissionText   string `json:"missionText"`
		WeeklyComment string `json:"weeklyComment"`
	}
	if !parseModelJSON(raw, &reply) || reply.MissionText == "" {
		// Prose instead of JSON: treat the whole answer as the mission.
		reply.MissionText = strings.TrimSpace(raw)
	}
	c.JSON(http.StatusOK, gin.H{
		"missionText":   reply.MissionText,
		"weeklyComment": reply.WeeklyComment,
	})
}

func (s *Server) handleNudge(c *gin.Context, req analyzeRequest) {
	payload, _ := json.Marshal(req)
	raw, err := s.ai.Generate(c.Request.Context(), nudgeInstructions, string(payload))
	if err != nil {
		s.upstreamError(c, err)
		return
	}

	var reply struct {
		NudgeText string `json:"nudgeText"`
	}
	if !parseModelJSON(raw, &reply) || reply.NudgeText == "" {
		reply.NudgeText = strings.TrimSpace(raw)
	}
	c.JSON(http.StatusOK, gin.H{"nudgeText": reply.NudgeText})
}

func (s *Server) handleAnalysis(c *gin.Context, req analyzeRequest) {
	payload, _ := json.Marshal(map[string]any{
		"screen":   req.Screen,
		"minutes":  req.Minutes,
		"reason":   req.Reason,
		"intended": req.Intended,
	})
	raw, err := s.ai.Generate(c.Request.Context(), analysisInstructions, string(payload))
	if err != nil {
		s.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": strings.TrimSpace(raw)})
}

func (s *Server) upstreamError(c *gin.Context, err error) {
	s.log.Warn("openai call failed", zap.Error(err))

	// Relay the upstream status and raw body when we have them.
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		c.JSON(upstream.Status, gin.H{"error": upstream.Message, "raw": upstream.Raw})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

// parseModelJSON unmarshals model output that may be wrapped in markdown
// code fences. Returns false when the text is not JSON at all.
func parseModelJSON(raw string, out any) bool {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if i := strings.LastIndex(text, "```"); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
	}
	return json.Unmarshal([]byte(text), out) == nil
}

const missionInstructions = `You are a habit coach for a gamified activity tracker.
Given today's date, the activity type just logged and the recent log entries,
write one small, concrete mission for today plus one encouraging comment about
the past week. The mission must be measurable, doable in 10-20 minutes and
free of self-deprecation. Answer with a JSON object only:
{"missionText": "...", "weeklyComment": "..."}
Keep the mission under 100 characters.`

const nudgeInstructions = `You are a habit coach. Given today's XP progress,
the daily goal and the score needed to keep the current level, write one short
urgent-but-kind message pushing the user to act before midnight. Answer with a
JSON object only: {"nudgeText": "..."} in at most two sentences.`

const analysisInstructions = `You analyze a phone/screen distraction session.
Given the screen, minutes spent, stated reason and whether it was intended,
answer in exactly three short lines of plain text:
1) a one-line summary of what happened,
2) the likely underlying cause,
3) one concrete suggestion for next time.`
