package claudeService

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key")
	if err != nil {
		t.Fatal(err)
	}
	client.baseURL = server.URL
	return client, server
}

func TestClientCompleteParsesTextBlock(t *testing.T) {
	var captured messagesRequest
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-API-Key") != "test-key" {
			t.Error("missing API key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatal(err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"type":"text","text":"hello there"}]}`))
	})

	answer, err := client.Complete(context.Background(), CompletionConfig{
		Model:        "claude-sonnet-4-20250514",
		MaxTokens:    100,
		Temperature:  0.7,
		SystemPrompt: "static prompt",
		ContextBlock: "dynamic context",
		Question:     "hi",
	})
	if err != nil {
		t.Fatal(err)
	}
	if answer != "hello there" {
		t.Errorf("expected %q, got %q", "hello there", answer)
	}

	if len(captured.System) != 2 {
		t.Fatalf("expected 2 system blocks, got %d", len(captured.System))
	}
	if captured.System[0].CacheControl == nil || captured.System[0].CacheControl.Type != "ephemeral" {
		t.Error("static system block should carry the prompt-caching flag")
	}
	if captured.System[1].CacheControl != nil {
		t.Error("dynamic context block must not be cached")
	}
}

func TestClientCompleteSurfacesAPIErrors(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(529) // anthropic's overloaded status
		w.Write([]byte(`{"error":{"type":"overloaded_error","message":"Overloaded"}}`))
	})

	if _, err := client.Complete(context.Background(), CompletionConfig{Question: "hi"}); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestClientCompleteRejectsEmptyContent(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[]}`))
	})

	if _, err := client.Complete(context.Background(), CompletionConfig{Question: "hi"}); err == nil {
		t.Fatal("expected error for empty content")
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(""); err == nil {
		t.Error("expected error for missing API key")
	}
}
