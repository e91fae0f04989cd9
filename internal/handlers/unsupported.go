package handlers

import (
	"context"

	"intent-gateway/internal/intent"
	"intent-gateway/pkg/log"
)

// Unsupported handles the UnsupportedRequest intent. It ignores its inputs.
type Unsupported struct {
	l log.Logger
}

// NewUnsupported creates the fallback handler.
func NewUnsupported(l log.Logger) *Unsupported {
	return &Unsupported{l: l}
}

func (h *Unsupported) Handle(ctx context.Context, _ intent.Session, _ intent.Slots) (intent.HandlerResult, error) {
	h.l.Debugf(ctx, "%s: returning canned response", LogPrefixUnsupported)
	return intent.Success(MsgUnsupportedRequestText, nil), nil
}
