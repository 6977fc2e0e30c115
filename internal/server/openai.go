// ABOUTME: Minimal OpenAI Responses API client for the analyze server.
// ABOUTME: One endpoint, no retry; text is pulled from output_text or the
// first output item.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TextGenerator produces model text from an instruction/input pair. The
// handlers depend on this; tests substitute a stub.
type TextGenerator interface {
	Generate(ctx context.Context, instructions, input string) (string, error)
}

// UpstreamError carries the OpenAI status and raw body so handlers can
// relay them.
type UpstreamError struct {
	Status  int
	Message string
	Raw     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("openai: %s (status %d)", e.Message, e.Status)
}

// OpenAI calls the Responses API.
type OpenAI struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenAI creates a Responses API client from the server config.
func NewOpenAI(cfg Config) *OpenAI {
	return &OpenAI{
		baseURL:    strings.TrimRight(cfg.OpenAIBaseURL, "/"),
		apiKey:     cfg.OpenAIKey,
		model:      cfg.OpenAIModel,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type responsesRequest struct {
	Model        string `json:"model"`
	Instructions string `json:"instructions,omitempty"`
	Input        string `json:"input"`
}

type responsesReply struct {
	OutputText string `json:"output_text"`
	Output     []struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate runs one Responses API call and returns the output text.
func (o *OpenAI) Generate(ctx context.Context, instructions, input string) (string, error) {
	payload, err := json.Marshal(responsesRequest{
		Model:        o.model,
		Instructions: instructions,
		Input:        input,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/responses", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call openai: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("read openai response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr responsesReply
		msg := "request failed"
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		return "", &UpstreamError{Status: resp.StatusCode, Message: msg, Raw: string(data)}
	}

	var reply responsesReply
	if err := json.Unmarshal(data, &reply); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}

	// Convenience field first, then the structured output items.
	if text := strings.TrimSpace(reply.OutputText); text != "" {
		return text, nil
	}
	if len(reply.Output) > 0 && len(reply.Output[0].Content) > 0 {
		if text := strings.TrimSpace(reply.Output[0].Content[0].Text); text != "" {
			return text, nil
		}
	}
	return "", fmt.Errorf("openai returned no output text")
}
