package router

import (
	"context"
	"fmt"
	"runtime/debug"

	"intent-gateway/internal/intent"
)

// Dispatch runs the handler registered for name. The returned result is always
// well-formed: an unknown intent or a handler fault is described by the result
// and classified by err (intent.ErrUnknownIntent or intent.ErrDownstreamFault).
func (r *IntentRouter) Dispatch(ctx context.Context, name string, slots intent.Slots, sess intent.Session) (result intent.HandlerResult, err error) {
	h, ok := r.table[name]
	if !ok {
		r.l.Warnf(ctx, "%s: no handler for intent %q", LogPrefixDispatch, name)
		return intent.Failure(fmt.Sprintf(intent.MsgUnsupportedIntent, name)),
			fmt.Errorf("%w: %s", intent.ErrUnknownIntent, name)
	}

	if slots == nil {
		slots = intent.Slots{}
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.l.Errorf(ctx, "%s: handler %s panicked: %v\n%s", LogPrefixDispatch, name, rec, debug.Stack())
			result = intent.Failure(fmt.Sprintf(ErrMsgHandlerPanic, rec))
			err = fmt.Errorf("%w: %s: panic: %v", intent.ErrDownstreamFault, name, rec)
		}
	}()

	r.l.Infof(ctx, "%s: invoking %s with slots %v", LogPrefixDispatch, name, map[string]string(slots))
	result, err = h.Handle(ctx, sess, slots)
	if err != nil {
		r.l.Errorf(ctx, "%s: handler %s failed: %v", LogPrefixDispatch, name, err)
		if result.Status == "" {
			result = intent.Failure(fmt.Sprintf(ErrMsgHandlerFault, err.Error()))
		}
		return result, fmt.Errorf("%w: %s: %w", intent.ErrDownstreamFault, name, err)
	}
	if result.Status == "" {
		result.Status = intent.StatusSuccess
	}

	return result, nil
}
