package deepseek

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid api key","type":"authentication_error"}}`))
			return
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Model != DefaultModel {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Write([]byte(`{"id":"1","model":"deepseek-chat","choices":[{"index":0,"message":{"role":"assistant","content":"{\"intent\":\"GetProducts\"}"},"finish_reason":"stop"}],"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15}}`))
	}))
	defer ts.Close()

	t.Run("success", func(t *testing.T) {
		c, err := New(Config{APIKey: "test-key", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := c.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Content: "hi"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text, err := resp.Text()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != `{"intent":"GetProducts"}` {
			t.Errorf("unexpected text: %s", text)
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("expected 15 total tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("unauthorized", func(t *testing.T) {
		c, _ := New(Config{APIKey: "bad", BaseURL: ts.URL})

		_, err := c.GenerateContent(context.Background(), &Request{})
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "invalid api key" {
			t.Errorf("unexpected error: %+v", apiErr)
		}
	})
}

func TestResponseText_ContentFilter(t *testing.T) {
	resp := &Response{Choices: []Choice{{FinishReason: FinishReasonContentFilter}}}
	if _, err := resp.Text(); !errors.Is(err, ErrContentFiltered) {
		t.Errorf("expected ErrContentFiltered, got %v", err)
	}
}

func TestResponseText_NoChoices(t *testing.T) {
	resp := &Response{}
	if _, err := resp.Text(); !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestNew_UsesProvidedHTTPClient(t *testing.T) {
	hc := &http.Client{}
	c, err := New(Config{APIKey: "k", BaseURL: "http://example.invalid/v1/", HTTPClient: hc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.client != hc {
		t.Error("expected the provided HTTP client to be used")
	}
	if c.baseURL != "http://example.invalid/v1" {
		t.Errorf("expected trailing slash trimmed, got %s", c.baseURL)
	}
}
