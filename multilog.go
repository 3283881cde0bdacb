package multilog

import (
	"context"
	"errors"
	"log/slog"
)

// A Flusher is a handler that can push buffered records out to wherever
// they finally live. Flushing is best effort and carries no error: a
// child that cannot flush absorbs that itself.
type Flusher interface {
	Flush()
}

// MultiHandler fans each record out to an ordered list of child
// handlers. The list is fixed at construction; iteration order is
// construction order. MultiHandler itself holds no mutable state, so it
// is safe for concurrent use as long as each child is.
type MultiHandler struct {
	children []slog.Handler
	// level, when set, gates every child. Install plants the coarsest
	// level any child cares about so slog can skip building records
	// nobody would keep.
	level slog.Leveler
}

var _ slog.Handler = &MultiHandler{}
var _ Flusher = &MultiHandler{}

// New returns a MultiHandler over the given children, in the given
// order. The slice is copied; an empty list is valid and yields a
// handler that is never enabled.
func New(children ...slog.Handler) *MultiHandler {
	return &MultiHandler{
		children: append([]slog.Handler(nil), children...),
	}
}

// Enabled reports whether any child would keep a record at this level.
// A false return lets slog skip materializing the record entirely.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.level != nil && level < h.level.Level() {
		return false
	}
	for _, c := range h.children {
		if c.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle delivers the record to every child whose own Enabled admits
// it, in construction order. A failing child does not stop delivery to
// the children after it; the errors are joined. A slow child slows the
// whole emission, deliberately: per-child queues would trade away the
// record ordering callers expect from slog.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, c := range h.children {
		if !c.Enabled(ctx, r.Level) {
			continue
		}
		if err := c.Handle(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithAttrs returns a MultiHandler over each child's WithAttrs
// derivation, in the same order and behind the same level gate.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	children := make([]slog.Handler, len(h.children))
	for i, c := range h.children {
		children[i] = c.WithAttrs(attrs)
	}
	return &MultiHandler{children: children, level: h.level}
}

// WithGroup returns a MultiHandler over each child's WithGroup
// derivation.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	children := make([]slog.Handler, len(h.children))
	for i, c := range h.children {
		children[i] = c.WithGroup(name)
	}
	return &MultiHandler{children: children, level: h.level}
}

// Flush flushes every child that knows how, in construction order.
func (h *MultiHandler) Flush() {
	for _, c := range h.children {
		if f, ok := c.(Flusher); ok {
			f.Flush()
		}
	}
}
