package multilog

import (
	"context"
	"log/slog"
)

type nop struct{}

// Discard is a handler that is never enabled and drops anything it is
// handed anyway.
var Discard slog.Handler = nop{}

func (n nop) Enabled(context.Context, slog.Level) bool {
	return false
}

func (n nop) Handle(context.Context, slog.Record) error {
	return nil
}

func (n nop) WithAttrs([]slog.Attr) slog.Handler {
	return n
}

func (n nop) WithGroup(string) slog.Handler {
	return n
}
