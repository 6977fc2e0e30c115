// ABOUTME: Tests for the Responses API client against a fake upstream.
// ABOUTME: Covers output extraction, error relaying and timeouts.
package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func fakeUpstream(t *testing.T, status int, body string) *OpenAI {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/responses" {
			t.Errorf("path = %s, want /responses", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("auth header = %q", got)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewOpenAI(Config{OpenAIBaseURL: srv.URL, OpenAIKey: "sk-test", OpenAIModel: "gpt-4.1-mini"})
}

func TestGenerateOutputText(t *testing.T) {
	ai := fakeUpstream(t, 200, `{"output_text":"hello there"}`)
	got, err := ai.Generate(context.Background(), "sys", "user")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "hello there" {
		t.Errorf("got %q", got)
	}
}

func TestGenerateStructuredOutputFallback(t *testing.T) {
	ai := fakeUpstream(t, 200, `{"output":[{"content":[{"text":"from items"}]}]}`)
	got, err := ai.Generate(context.Background(), "sys", "user")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "from items" {
		t.Errorf("got %q", got)
	}
}

func TestGenerateUpstreamError(t *testing.T) {
	ai := fakeUpstream(t, 429, `{"error":{"message":"rate limited"}}`)
	_, err := ai.Generate(context.Background(), "sys", "user")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("error = %v, want upstream message", err)
	}
}

func TestGenerateEmptyOutput(t *testing.T) {
	ai := fakeUpstream(t, 200, `{"output":[]}`)
	if _, err := ai.Generate(context.Background(), "sys", "user"); err == nil {
		t.Error("empty output should error")
	}
}
