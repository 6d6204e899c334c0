package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"relationship-os/pkg/gemini"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (gemini.IGemini, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := gemini.New(gemini.Config{
		APIKey: "test-api-key",
		Model:  "gemini-test",
		APIURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client, ts
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := gemini.New(gemini.Config{})
	if err == nil {
		t.Fatalf("expected error for missing API key")
	}
}

func TestGenerateContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Structured output must be requested via responseMimeType.
		genCfg, ok := body["generationConfig"].(map[string]any)
		if !ok || genCfg["responseMimeType"] != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{"content": {"role": "model", "parts": [{"text": "{\"days_ago\": 1}"}]}}
			],
			"usageMetadata": {"promptTokenCount": 10, "candidatesTokenCount": 5, "totalTokenCount": 15}
		}`))
	})

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "system"}}},
		Messages: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: "hello"}}},
		},
		Temperature: 0.1,
		MaxTokens:   200,
		JSONOutput:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text != `{"days_ago": 1}` {
		t.Errorf("unexpected content: %+v", resp.Content)
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("expected 15 total tokens, got %d", resp.Usage.TotalTokens)
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "boom"}`))
	})

	_, err := client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "hi"}}}},
	})
	if err == nil {
		t.Fatalf("expected error for 500 response")
	}
}

func TestGenerateContent_EmptyCandidates(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"candidates": []}`))
	})

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "hi"}}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Content.Parts) != 0 {
		t.Errorf("expected empty content, got %+v", resp.Content)
	}
}
