package multilog

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Counter is a handler that counts the records it is handed and drops
// them. It is always enabled. Handy as a fan-out child in tests and
// benchmarks.
type Counter struct {
	Count int64
}

var _ slog.Handler = &Counter{}

func (c *Counter) Enabled(context.Context, slog.Level) bool {
	return true
}

func (c *Counter) Handle(context.Context, slog.Record) error {
	atomic.AddInt64(&c.Count, 1)
	return nil
}

func (c *Counter) WithAttrs([]slog.Attr) slog.Handler {
	return c
}

func (c *Counter) WithGroup(string) slog.Handler {
	return c
}
