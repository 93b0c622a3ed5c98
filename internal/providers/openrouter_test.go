package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func openRouterServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenRouterChat(t *testing.T) {
	srv := openRouterServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", auth)
		}

		var req openRouterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(req.Messages) != 2 {
			t.Errorf("got %d messages, want 2", len(req.Messages))
		}

		resp := map[string]any{
			"id":    "gen-1",
			"model": "test/model",
			"choices": []map[string]any{
				{
					"message":       map[string]any{"role": "assistant", "content": `{"tin": "123"}`},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		}
		json.NewEncoder(w).Encode(resp)
	})

	client := NewOpenRouterClient(OpenRouterConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		RPS:     1000,
	})

	result, err := client.Chat(context.Background(), &ChatRequest{
		Messages: []Message{
			{Role: "system", Content: "system prompt"},
			{Role: "user", Content: "user prompt"},
		},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if !result.Success {
		t.Error("result not marked successful")
	}
	if result.Content != `{"tin": "123"}` {
		t.Errorf("content: got %q", result.Content)
	}
	if result.TotalTokens != 15 {
		t.Errorf("total tokens: got %d, want 15", result.TotalTokens)
	}
	if result.RequestID == "" {
		t.Error("request ID not assigned")
	}
}

func TestOpenRouterChatSendsResponseFormat(t *testing.T) {
	srv := openRouterServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req openRouterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.ResponseFormat == nil {
			t.Fatal("request body missing response_format")
		}
		if req.ResponseFormat.Type != "json_schema" {
			t.Errorf("response_format type: got %q", req.ResponseFormat.Type)
		}
		var js struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(req.ResponseFormat.JSONSchema, &js); err != nil || js.Name != "roster_record" {
			t.Errorf("json_schema payload: got %s", req.ResponseFormat.JSONSchema)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"model": "test/model",
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "{}"}},
			},
		})
	})

	client := NewOpenRouterClient(OpenRouterConfig{APIKey: "k", BaseURL: srv.URL, RPS: 1000})
	_, err := client.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "x"}},
		ResponseFormat: &ResponseFormat{
			Type:       "json_schema",
			JSONSchema: json.RawMessage(`{"name":"roster_record","strict":true,"schema":{"type":"object"}}`),
		},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
}

func TestOpenRouterChatRetriesServerError(t *testing.T) {
	var calls atomic.Int64
	srv := openRouterServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "upstream unavailable", http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"model": "test/model",
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "ok"}},
			},
		})
	})

	client := NewOpenRouterClient(OpenRouterConfig{
		APIKey:     "k",
		BaseURL:    srv.URL,
		RPS:        1000,
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
	})

	result, err := client.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "x"}},
	})
	if err != nil {
		t.Fatalf("Chat failed after retry: %v", err)
	}
	if result.Content != "ok" {
		t.Errorf("content: got %q", result.Content)
	}
	if calls.Load() != 2 {
		t.Errorf("server calls: got %d, want 2", calls.Load())
	}
}

func TestOpenRouterChatClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int64
	srv := openRouterServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad request", http.StatusBadRequest)
	})

	client := NewOpenRouterClient(OpenRouterConfig{
		APIKey:     "k",
		BaseURL:    srv.URL,
		RPS:        1000,
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
	})

	result, err := client.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "x"}},
	})
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if result.Success {
		t.Error("result should not be successful")
	}
	if calls.Load() != 1 {
		t.Errorf("server calls: got %d, want 1 (no retries)", calls.Load())
	}
}

func TestOpenRouterChatEmptyChoices(t *testing.T) {
	srv := openRouterServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"model": "m", "choices": []any{}})
	})

	client := NewOpenRouterClient(OpenRouterConfig{APIKey: "k", BaseURL: srv.URL, RPS: 1000})
	_, err := client.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "x"}},
	})
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}
