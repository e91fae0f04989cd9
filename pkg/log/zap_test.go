package log

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStructured(t *testing.T) {
	tests := []struct {
		name string
		arg  []any
		ok   bool
	}{
		{"message only", []any{"hello"}, false},
		{"message with pairs", []any{"hello", "k", 1, "k2", "v"}, true},
		{"odd pair", []any{"hello", "k"}, false},
		{"non string key", []any{"hello", 1, 2}, false},
		{"non string message", []any{42, "k", "v"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := structured(tt.arg)
			if ok != tt.ok {
				t.Errorf("structured(%v) ok = %v, want %v", tt.arg, ok, tt.ok)
			}
		})
	}
}

func TestRequestIDField(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewFromZap(zap.New(core))

	ctx := WithRequestID(context.Background(), "req-123")
	l.Info(ctx, "dispatched", "intent", "GetProducts")
	l.Infof(context.Background(), "plain %s", "line")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-123" {
		t.Errorf("expected request_id field, got %v", fields)
	}
	if fields["intent"] != "GetProducts" {
		t.Errorf("expected intent field, got %v", fields)
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Errorf("did not expect request_id without context value")
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel("debug") != zap.DebugLevel {
		t.Error("debug")
	}
	if parseLevel("bogus") != zap.InfoLevel {
		t.Error("default should be info")
	}
}
