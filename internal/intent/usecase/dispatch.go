package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"intent-gateway/internal/intent"
	"intent-gateway/internal/metrics"
)

const tracerName = "intent-gateway/internal/intent/usecase"

// Dispatch runs one query through prompt, model, extraction and routing.
// Nothing is retried.
func (uc *implUseCase) Dispatch(ctx context.Context, input intent.DispatchInput) (out intent.DispatchOutput, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "intent.Dispatch")
	start := time.Now()
	defer func() {
		outcome := outcomeOf(err)
		uc.metrics.ObserveDispatch(intentLabel(out.Classification.Intent, err), outcome, time.Since(start))
		span.SetAttributes(
			attribute.String("intent", out.Classification.Intent),
			attribute.String("outcome", outcome),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome)
		}
		span.End()
	}()

	if strings.TrimSpace(input.Query) == "" {
		out.Result = intent.Failure(intent.MsgMissingQuery)
		return out, intent.ErrInvalidInput
	}

	uc.l.Infof(ctx, "%s: received query %q", LogPrefixDispatch, input.Query)

	prompt := intent.BuildPrompt(input.Query, uc.schema.Text())

	raw, err := uc.classifier.Classify(ctx, prompt)
	if err != nil {
		uc.l.Errorf(ctx, "%s: classifier.Classify: %v", LogPrefixDispatch, err)
		out.Result = intent.Failure(fmt.Sprintf(intent.MsgModelError, modelErrorDetail(err)))
		return out, err
	}
	out.Raw = raw
	uc.l.Debugf(ctx, "%s: raw model output: %s", LogPrefixDispatch, raw)

	res, err := intent.Extract(raw)
	if err != nil {
		uc.l.Warnf(ctx, "%s: intent.Extract: %v", LogPrefixDispatch, err)
		if errors.Is(err, intent.ErrMissingIntent) {
			out.Result = intent.Failure(intent.MsgMissingIntent)
		} else {
			out.Result = intent.Failure(intent.MsgMalformedResponse)
		}
		return out, err
	}
	out.Classification = res

	uc.l.Infof(ctx, "%s: classified as %s", LogPrefixDispatch, res.Intent)

	out.Result, err = uc.router.Dispatch(ctx, res.Intent, res.Slots, uc.session)
	return out, err
}

// intentLabel keeps metric cardinality bounded by the router's table: a name
// the model made up is counted as metrics.IntentUnknown.
func intentLabel(name string, err error) string {
	if errors.Is(err, intent.ErrUnknownIntent) {
		return metrics.IntentUnknown
	}
	return name
}

// modelErrorDetail is the caller-facing part of a model failure. Provider
// errors can carry request URLs and credentials, so only the kind is exposed.
func modelErrorDetail(err error) string {
	var me *intent.ModelError
	if errors.As(err, &me) && me.Kind != nil {
		return me.Kind.Error()
	}
	return intent.ErrModelUnavailable.Error()
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, intent.ErrInvalidInput):
		return metrics.OutcomeInvalidInput
	case errors.Is(err, intent.ErrModelUnavailable), errors.Is(err, intent.ErrModelRejected):
		return metrics.OutcomeModelError
	case errors.Is(err, intent.ErrMalformedResponse), errors.Is(err, intent.ErrMissingIntent):
		return metrics.OutcomeParseError
	case errors.Is(err, intent.ErrUnknownIntent):
		return metrics.OutcomeUnknownIntent
	default:
		return metrics.OutcomeDownstreamFail
	}
}
