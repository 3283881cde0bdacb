package multilog

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Gate passes records through to Handler until disabled. While the gate
// is closed it reports not-enabled, so a fan-out whose only open
// question is this child lets slog skip the record entirely.
type Gate struct {
	DisabledFlag int64
	Handler      slog.Handler
}

var _ slog.Handler = &Gate{}

func (g *Gate) Enabled(ctx context.Context, level slog.Level) bool {
	return !g.Disabled() && g.Handler.Enabled(ctx, level)
}

func (g *Gate) Handle(ctx context.Context, r slog.Record) error {
	if g.Disabled() {
		return nil
	}
	return g.Handler.Handle(ctx, r)
}

func (g *Gate) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Gate{
		DisabledFlag: atomic.LoadInt64(&g.DisabledFlag),
		Handler:      g.Handler.WithAttrs(attrs),
	}
}

func (g *Gate) WithGroup(name string) slog.Handler {
	return &Gate{
		DisabledFlag: atomic.LoadInt64(&g.DisabledFlag),
		Handler:      g.Handler.WithGroup(name),
	}
}

// Flush forwards to the wrapped handler even while the gate is closed,
// so records accepted before Disable still make it out.
func (g *Gate) Flush() {
	if f, ok := g.Handler.(Flusher); ok {
		f.Flush()
	}
}

func (g *Gate) Disabled() bool {
	return atomic.LoadInt64(&g.DisabledFlag) == 1
}

func (g *Gate) Disable() {
	atomic.StoreInt64(&g.DisabledFlag, 1)
}

func (g *Gate) Enable() {
	atomic.StoreInt64(&g.DisabledFlag, 0)
}
