package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intent-gateway/internal/intent"
	"intent-gateway/internal/metrics"
	"intent-gateway/internal/router"
	"intent-gateway/pkg/gemini"
	"intent-gateway/pkg/llmprovider"
	"intent-gateway/pkg/salesforce"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

const testSchema = `
intents:
  - name: GetProducts
    description: Retrieves products.
    slots:
      - name: product_family
        description: Product family.
  - name: UnsupportedRequest
    description: Anything else.
`

type fakeClassifier struct {
	raw     string
	err     error
	prompts []string
}

func (f *fakeClassifier) Classify(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.raw, f.err
}

type fakeSession struct{}

func (fakeSession) Query(ctx context.Context, soql string) (*salesforce.QueryResult, error) {
	return &salesforce.QueryResult{Done: true}, nil
}

type captured struct {
	calls int
	slots intent.Slots
	sess  intent.Session
}

func newUseCase(t *testing.T, cls intent.Classifier, m *metrics.Metrics, rec *captured, fault error) *implUseCase {
	t.Helper()

	schema, err := intent.ParseSchema([]byte(testSchema))
	require.NoError(t, err)

	r, err := router.New([]router.Registration{
		{Intent: intent.IntentGetProducts, Handler: router.HandlerFunc(
			func(ctx context.Context, sess intent.Session, slots intent.Slots) (intent.HandlerResult, error) {
				rec.calls++
				rec.slots = slots
				rec.sess = sess
				if fault != nil {
					return intent.Failure("Error communicating with Salesforce API: " + fault.Error()), fault
				}
				return intent.Success("Found 0 products.", []any{}), nil
			})},
		{Intent: intent.IntentUnsupportedRequest, Handler: router.HandlerFunc(
			func(ctx context.Context, sess intent.Session, slots intent.Slots) (intent.HandlerResult, error) {
				return intent.Success("canned", nil), nil
			})},
	}, &mockLogger{})
	require.NoError(t, err)

	return New(&mockLogger{}, cls, schema, r, fakeSession{}, m)
}

func TestDispatch_Success(t *testing.T) {
	cls := &fakeClassifier{raw: "```json\n{\"intent\":\"GetProducts\",\"slots\":{\"product_family\":\"Solar\"}}\n```"}
	rec := &captured{}
	m := metrics.New()
	uc := newUseCase(t, cls, m, rec, nil)

	out, err := uc.Dispatch(context.Background(), intent.DispatchInput{Query: "solar products please"})
	require.NoError(t, err)

	assert.Equal(t, intent.StatusSuccess, out.Result.Status)
	assert.Equal(t, "GetProducts", out.Classification.Intent)
	assert.Equal(t, intent.Slots{"product_family": "Solar"}, rec.slots)
	assert.Equal(t, fakeSession{}, rec.sess)
	assert.Equal(t, cls.raw, out.Raw)

	require.Len(t, cls.prompts, 1)
	assert.Contains(t, cls.prompts[0], `User's query: "solar products please"`)
	assert.Contains(t, cls.prompts[0], "name: GetProducts")

	n, err := testutil.GatherAndCount(m.Registry(), "intent_gateway_dispatch_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDispatch_EmptyQuery(t *testing.T) {
	for _, q := range []string{"", "   \n\t"} {
		cls := &fakeClassifier{}
		uc := newUseCase(t, cls, nil, &captured{}, nil)

		out, err := uc.Dispatch(context.Background(), intent.DispatchInput{Query: q})
		assert.ErrorIs(t, err, intent.ErrInvalidInput)
		assert.Equal(t, intent.MsgMissingQuery, out.Result.Message)
		assert.Empty(t, cls.prompts, "model must not be called")
	}
}

func TestDispatch_ModelFailure(t *testing.T) {
	cls := &fakeClassifier{err: &intent.ModelError{Kind: intent.ErrModelUnavailable, Err: errors.New("quota exceeded")}}
	rec := &captured{}
	uc := newUseCase(t, cls, nil, rec, nil)

	out, err := uc.Dispatch(context.Background(), intent.DispatchInput{Query: "hi"})
	assert.ErrorIs(t, err, intent.ErrModelUnavailable)
	assert.Equal(t, "Error communicating with the AI assistant: model unavailable", out.Result.Message)
	assert.Equal(t, intent.StatusError, out.Result.Status)
	assert.Len(t, cls.prompts, 1)
	assert.Zero(t, rec.calls)
}

func TestDispatch_ExtractionFailures(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
		wantMsg string
	}{
		{"prose", "Sure! Here are the products.", intent.ErrMalformedResponse, intent.MsgMalformedResponse},
		{"missing intent", `{"slots":{}}`, intent.ErrMissingIntent, intent.MsgMissingIntent},
		{"blank intent", `{"intent":"  ","slots":{}}`, intent.ErrMissingIntent, intent.MsgMissingIntent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &captured{}
			uc := newUseCase(t, &fakeClassifier{raw: tt.raw}, nil, rec, nil)

			out, err := uc.Dispatch(context.Background(), intent.DispatchInput{Query: "q"})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, out.Result.Message)
			assert.Equal(t, tt.raw, out.Raw)
			assert.Zero(t, rec.calls)
		})
	}
}

func TestDispatch_UnknownIntent(t *testing.T) {
	uc := newUseCase(t, &fakeClassifier{raw: `{"intent":"CreateQuote","slots":{}}`}, nil, &captured{}, nil)

	out, err := uc.Dispatch(context.Background(), intent.DispatchInput{Query: "make a quote"})
	assert.ErrorIs(t, err, intent.ErrUnknownIntent)
	assert.Equal(t, "Unsupported intent: CreateQuote", out.Result.Message)
	assert.Equal(t, "CreateQuote", out.Classification.Intent)
}

func TestDispatch_UnknownIntentMetricLabel(t *testing.T) {
	m := metrics.New()
	for i := 0; i < 20; i++ {
		cls := &fakeClassifier{raw: fmt.Sprintf(`{"intent":"Injected%d"}`, i)}
		uc := newUseCase(t, cls, m, &captured{}, nil)
		_, err := uc.Dispatch(context.Background(), intent.DispatchInput{Query: "q"})
		require.ErrorIs(t, err, intent.ErrUnknownIntent)
	}
	uc := newUseCase(t, &fakeClassifier{raw: `{"intent":"GetProducts"}`}, m, &captured{}, nil)
	_, err := uc.Dispatch(context.Background(), intent.DispatchInput{Query: "q"})
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(m.Registry(), "intent_gateway_dispatch_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	expected := `
# HELP intent_gateway_dispatch_total Dispatched queries by intent and outcome.
# TYPE intent_gateway_dispatch_total counter
intent_gateway_dispatch_total{intent="GetProducts",outcome="success"} 1
intent_gateway_dispatch_total{intent="unknown",outcome="unknown_intent"} 20
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "intent_gateway_dispatch_total"))
}

func TestDispatch_ModelErrorHidesProviderDetail(t *testing.T) {
	gem, err := gemini.New(gemini.Config{APIKey: "SECRET-KEY-123", APIURL: "http://127.0.0.1:1", Timeout: time.Second})
	require.NoError(t, err)
	mgr := llmprovider.NewManager([]llmprovider.Provider{llmprovider.NewGeminiAdapter(gem)}, &llmprovider.Config{}, &mockLogger{})
	cls := NewClassifier(&mockLogger{}, mgr, nil)
	uc := newUseCase(t, cls, nil, &captured{}, nil)

	out, err := uc.Dispatch(context.Background(), intent.DispatchInput{Query: "solar products"})
	require.ErrorIs(t, err, intent.ErrModelUnavailable)
	assert.NotContains(t, out.Result.Message, "SECRET-KEY-123")
	assert.NotContains(t, out.Result.Message, "127.0.0.1")
	assert.Equal(t, "Error communicating with the AI assistant: model unavailable", out.Result.Message)
}

func TestDispatch_DownstreamFault(t *testing.T) {
	uc := newUseCase(t, &fakeClassifier{raw: `{"intent":"GetProducts"}`}, nil, &captured{}, errors.New("MALFORMED_QUERY: bad"))

	out, err := uc.Dispatch(context.Background(), intent.DispatchInput{Query: "q"})
	assert.ErrorIs(t, err, intent.ErrDownstreamFault)
	assert.True(t, out.Result.IsError())
	assert.Equal(t, "Error communicating with Salesforce API: MALFORMED_QUERY: bad", out.Result.Message)
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, metrics.OutcomeSuccess, outcomeOf(nil))
	assert.Equal(t, metrics.OutcomeInvalidInput, outcomeOf(intent.ErrInvalidInput))
	assert.Equal(t, metrics.OutcomeModelError, outcomeOf(&intent.ModelError{Kind: intent.ErrModelRejected, Err: errors.New("x")}))
	assert.Equal(t, metrics.OutcomeParseError, outcomeOf(&intent.ExtractError{Kind: intent.ErrMalformedResponse}))
	assert.Equal(t, metrics.OutcomeUnknownIntent, outcomeOf(intent.ErrUnknownIntent))
	assert.Equal(t, metrics.OutcomeDownstreamFail, outcomeOf(intent.ErrDownstreamFault))
}

type fakeGenerator struct {
	resp *llmprovider.Response
	err  error
	req  *llmprovider.Request
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.req = req
	return f.resp, f.err
}

func TestClassifier(t *testing.T) {
	t.Run("returns text unmodified", func(t *testing.T) {
		gen := &fakeGenerator{resp: &llmprovider.Response{Content: llmprovider.Message{Parts: []llmprovider.Part{{Text: "```json\n{}\n```"}}}}}
		c := NewClassifier(&mockLogger{}, gen, nil)

		text, err := c.Classify(context.Background(), "prompt")
		require.NoError(t, err)
		assert.Equal(t, "```json\n{}\n```", text)
		require.Len(t, gen.req.Messages, 1)
		assert.Equal(t, "prompt", gen.req.Messages[0].Parts[0].Text)
	})

	t.Run("blocked content is a rejection", func(t *testing.T) {
		gen := &fakeGenerator{err: &llmprovider.ProviderError{Provider: "gemini", Kind: llmprovider.ErrContentBlocked, Err: errors.New("SAFETY")}}
		_, err := NewClassifier(&mockLogger{}, gen, nil).Classify(context.Background(), "p")
		assert.ErrorIs(t, err, intent.ErrModelRejected)
		assert.NotErrorIs(t, err, intent.ErrModelUnavailable)
	})

	t.Run("anything else is unavailability", func(t *testing.T) {
		gen := &fakeGenerator{err: llmprovider.ErrNoProvidersConfigured}
		_, err := NewClassifier(&mockLogger{}, gen, nil).Classify(context.Background(), "p")
		assert.ErrorIs(t, err, intent.ErrModelUnavailable)
		assert.ErrorIs(t, err, llmprovider.ErrNoProvidersConfigured)
	})
}
