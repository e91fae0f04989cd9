package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"intent-gateway/pkg/gemini"
)

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Has("key") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get("x-goog-api-key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"code":401,"message":"API key not valid","status":"UNAUTHENTICATED"}}`))
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch req.Contents[0].Parts[0].Text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		case "cause_block":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"candidates":[],"promptFeedback":{"blockReason":"SAFETY"}}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked " },
							{ "text": "response string" }
						],
						"role": "model"
					},
					"finishReason": "STOP"
				}
			]
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "Hello world"}}},
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text, err := resp.Text()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "mocked response string" {
			t.Errorf("unexpected content response: %s", text)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		}

		_, err := client.GenerateContent(context.Background(), req)
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", apiErr.StatusCode)
		}
	})

	t.Run("Blocked Prompt", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_block"}}},
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := resp.Text(); !errors.Is(err, gemini.ErrBlocked) {
			t.Errorf("expected ErrBlocked, got %v", err)
		}
	})

	t.Run("Bad Key", func(t *testing.T) {
		c2, err := gemini.New(gemini.Config{APIKey: "wrong-key", APIURL: ts.URL})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		_, err = c2.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "x"}}}},
		})
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.Status != "UNAUTHENTICATED" || apiErr.Message != "API key not valid" {
			t.Errorf("unexpected error details: %+v", apiErr)
		}
	})
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); !errors.Is(err, gemini.ErrAPIKeyRequired) {
		t.Errorf("expected ErrAPIKeyRequired, got %v", err)
	}
}

func TestGenerateResponse_Text(t *testing.T) {
	tests := []struct {
		name    string
		resp    gemini.GenerateResponse
		want    string
		wantErr error
	}{
		{
			name:    "no candidates",
			resp:    gemini.GenerateResponse{},
			wantErr: gemini.ErrEmptyResponse,
		},
		{
			name: "safety finish",
			resp: gemini.GenerateResponse{Candidates: []gemini.Candidate{
				{FinishReason: gemini.FinishReasonSafety},
			}},
			wantErr: gemini.ErrBlocked,
		},
		{
			name: "empty parts",
			resp: gemini.GenerateResponse{Candidates: []gemini.Candidate{
				{Content: gemini.Content{Parts: []gemini.Part{}}, FinishReason: gemini.FinishReasonStop},
			}},
			wantErr: gemini.ErrEmptyResponse,
		},
		{
			name: "text",
			resp: gemini.GenerateResponse{Candidates: []gemini.Candidate{
				{Content: gemini.Content{Parts: []gemini.Part{{Text: "{}"}}}},
			}},
			want: "{}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.resp.Text()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
