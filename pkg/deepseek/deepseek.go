package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to the DeepSeek chat completions endpoint, or to any
// OpenAI-compatible server reachable at Config.BaseURL.
// It is safe for concurrent use.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

var _ IDeepSeek = (*Client)(nil)

// New creates a DeepSeek client. APIKey is required; the other fields fall
// back to DefaultModel, DefaultBaseURL and DefaultTimeout.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		client:  httpClient,
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent posts one chat completion request. req.Model defaults to
// the client's model. A non-200 answer is returned as *APIError carrying the
// provider's error message when the body has one.
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req.Model == "" {
		req.Model = c.model
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("deepseek: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("deepseek: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("deepseek: send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("deepseek: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
		var errResp ErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error.Message != "" {
			apiErr.Message = errResp.Error.Message
		}
		return nil, apiErr
	}

	var result Response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("deepseek: parse response: %w", err)
	}

	return &result, nil
}

// Text returns the content of the first choice.
//
// ErrContentFiltered is reported when the provider withheld the answer and
// ErrEmptyResponse when there is no choice at all.
func (r *Response) Text() (string, error) {
	if len(r.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	if r.Choices[0].FinishReason == FinishReasonContentFilter {
		return "", ErrContentFiltered
	}
	return r.Choices[0].Message.Content, nil
}
