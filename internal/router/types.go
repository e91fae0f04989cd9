package router

import (
	"context"

	"intent-gateway/internal/intent"
)

// Handler performs the domain action for one intent. It always returns a
// well-formed result; a non-nil error marks a downstream fault that the
// result already describes.
type Handler interface {
	Handle(ctx context.Context, sess intent.Session, slots intent.Slots) (intent.HandlerResult, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, sess intent.Session, slots intent.Slots) (intent.HandlerResult, error)

func (f HandlerFunc) Handle(ctx context.Context, sess intent.Session, slots intent.Slots) (intent.HandlerResult, error) {
	return f(ctx, sess, slots)
}

// Registration binds an intent name to its handler.
type Registration struct {
	Intent  string
	Handler Handler
}
