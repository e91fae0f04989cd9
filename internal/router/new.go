package router

import (
	"context"
	"fmt"

	"intent-gateway/internal/intent"
	"intent-gateway/pkg/log"
)

// Router is the interface for intent dispatch
type Router interface {
	Dispatch(ctx context.Context, name string, slots intent.Slots, sess intent.Session) (intent.HandlerResult, error)
	Intents() []string
}

// IntentRouter maps intent names to handlers. The table is built once and
// only read afterwards, so it needs no locking.
type IntentRouter struct {
	table map[string]Handler
	names []string
	l     log.Logger
}

// Ensure IntentRouter implements Router interface
var _ Router = (*IntentRouter)(nil)

// New creates a new IntentRouter from a registration table.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(regs []Registration, l log.Logger) (*IntentRouter, error) {
	r := &IntentRouter{
		table: make(map[string]Handler, len(regs)),
		names: make([]string, 0, len(regs)),
		l:     l,
	}

	for _, reg := range regs {
		if reg.Intent == "" {
			return nil, fmt.Errorf("router: registration with empty intent name")
		}
		if reg.Handler == nil {
			return nil, fmt.Errorf("router: nil handler for intent %q", reg.Intent)
		}
		if _, dup := r.table[reg.Intent]; dup {
			return nil, fmt.Errorf("router: intent %q registered twice", reg.Intent)
		}
		r.table[reg.Intent] = reg.Handler
		r.names = append(r.names, reg.Intent)
	}

	return r, nil
}

// Intents returns registered intent names in registration order.
func (r *IntentRouter) Intents() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
