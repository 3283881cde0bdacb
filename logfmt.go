package multilog

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/go-logfmt/logfmt"
)

// LogfmtHandler encodes each record as a single logfmt line. Useful as
// a fan-out child for machine-read log files alongside a human-readable
// console child.
type LogfmtHandler struct {
	out   io.Writer
	mu    *sync.Mutex
	level slog.Leveler

	prefix string      // open group path, dot separated
	attrs  []slog.Attr // bound attrs, keys already carry their group path
}

// NewLogfmtHandler returns a handler that encodes records to w in
// logfmt format. Records below level are rejected by Enabled; a nil
// level means slog.LevelInfo. The handler makes one Write call per
// record under its own lock, so w does not need to be safe for
// concurrent use.
func NewLogfmtHandler(w io.Writer, level slog.Leveler) slog.Handler {
	if w == io.Discard {
		return Discard
	}
	return &LogfmtHandler{
		out:   w,
		mu:    &sync.Mutex{},
		level: level,
	}
}

func (l *LogfmtHandler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if l.level != nil {
		min = l.level.Level()
	}
	return level >= min
}

func (l *LogfmtHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	enc := logfmt.NewEncoder(&buf)
	if !r.Time.IsZero() {
		if err := enc.EncodeKeyval("ts", r.Time.Format(time.RFC3339)); err != nil {
			return err
		}
	}
	if err := enc.EncodeKeyval("level", r.Level.String()); err != nil {
		return err
	}
	if err := enc.EncodeKeyval("msg", r.Message); err != nil {
		return err
	}
	for _, a := range l.attrs {
		if err := encodeAttr(enc, "", a); err != nil {
			return err
		}
	}
	var attrErr error
	r.Attrs(func(a slog.Attr) bool {
		attrErr = encodeAttr(enc, l.prefix, a)
		return attrErr == nil
	})
	if attrErr != nil {
		return attrErr
	}
	if err := enc.EndRecord(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := l.out.Write(buf.Bytes())
	return err
}

func encodeAttr(enc *logfmt.Encoder, prefix string, a slog.Attr) error {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p = p + a.Key + "."
		}
		for _, g := range a.Value.Group() {
			if err := encodeAttr(enc, p, g); err != nil {
				return err
			}
		}
		return nil
	}
	if a.Equal(slog.Attr{}) {
		return nil
	}
	return enc.EncodeKeyval(prefix+a.Key, a.Value.Any())
}

func (l *LogfmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return l
	}
	c := l.clone()
	for _, a := range attrs {
		c.attrs = append(c.attrs, slog.Attr{Key: l.prefix + a.Key, Value: a.Value})
	}
	return c
}

func (l *LogfmtHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return l
	}
	c := l.clone()
	c.prefix = l.prefix + name + "."
	return c
}

func (l *LogfmtHandler) clone() *LogfmtHandler {
	return &LogfmtHandler{
		out:    l.out,
		mu:     l.mu, // derived handlers share the write lock
		level:  l.level,
		prefix: l.prefix,
		attrs:  append([]slog.Attr(nil), l.attrs...),
	}
}

// Flush forwards to the underlying writer when it is buffered.
func (l *LogfmtHandler) Flush() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if f, ok := l.out.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}
