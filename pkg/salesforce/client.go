package salesforce

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"intent-gateway/pkg/log"
)

const tracerName = "intent-gateway/pkg/salesforce"

// Client executes SOQL queries with the session held by an Authenticator.
// It is safe for concurrent use.
type Client struct {
	auth       *Authenticator
	httpClient *http.Client
	apiVersion string
	l          log.Logger
}

// New creates a query client over auth.
func New(auth *Authenticator, cfg Config, l log.Logger) *Client {
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = auth.httpClient
	}
	return &Client{
		auth:       auth,
		httpClient: httpClient,
		apiVersion: cfg.APIVersion,
		l:          l,
	}
}

// Authenticate makes sure a session is available.
func (c *Client) Authenticate(ctx context.Context) error {
	_, err := c.auth.Session(ctx)
	return err
}

// Query runs a SOQL statement and returns the first page of records.
// A 401 invalidates the cached session; the error is still returned.
func (c *Client) Query(ctx context.Context, soql string) (*QueryResult, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "salesforce.Query")
	defer span.End()
	span.SetAttributes(attribute.String("salesforce.api_version", c.apiVersion))

	sess, err := c.auth.Session(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "authentication failed")
		return nil, err
	}

	endpoint := sess.InstanceURL + fmt.Sprintf(queryPath, c.apiVersion) + "?" + url.Values{"q": {soql}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("salesforce: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return nil, &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("read body: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseAPIError(resp.StatusCode, body)
		if apiErr.Is(ErrSessionExpired) {
			c.auth.Invalidate(ctx, sess)
		}
		span.RecordError(apiErr)
		span.SetStatus(codes.Error, apiErr.ErrorCode)
		return nil, apiErr
	}

	var result QueryResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("decode body: %v", err)}
	}
	span.SetAttributes(attribute.Int("salesforce.total_size", result.TotalSize))

	return &result, nil
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Message: string(body)}

	var errs []apiErrorBody
	if err := json.Unmarshal(body, &errs); err == nil && len(errs) > 0 {
		apiErr.ErrorCode = errs[0].ErrorCode
		apiErr.Message = errs[0].Message
		return apiErr
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
