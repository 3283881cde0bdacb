package multilog

import (
	"context"
	"log/slog"
	"time"

	kitlog "github.com/go-kit/log"
)

// FromGokit adapts a go-kit logger into a handler usable as a fan-out
// child. Records below level are rejected by Enabled; a nil level means
// slog.LevelInfo. Record attrs become trailing keyvals after ts, level
// and msg; attrs bound through WithAttrs become the logger's With
// context.
func FromGokit(logger kitlog.Logger, level slog.Leveler) slog.Handler {
	return &gokitHandler{logger: logger, level: level}
}

type gokitHandler struct {
	logger kitlog.Logger
	level  slog.Leveler
	prefix string
}

func (g *gokitHandler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if g.level != nil {
		min = g.level.Level()
	}
	return level >= min
}

func (g *gokitHandler) Handle(_ context.Context, r slog.Record) error {
	keyvals := make([]interface{}, 0, 6+2*r.NumAttrs())
	if !r.Time.IsZero() {
		keyvals = append(keyvals, "ts", r.Time.Format(time.RFC3339))
	}
	keyvals = append(keyvals, "level", r.Level.String(), "msg", r.Message)
	r.Attrs(func(a slog.Attr) bool {
		keyvals = flattenAttr(keyvals, g.prefix, a)
		return true
	})
	return g.logger.Log(keyvals...)
}

func flattenAttr(keyvals []interface{}, prefix string, a slog.Attr) []interface{} {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p = p + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			keyvals = flattenAttr(keyvals, p, ga)
		}
		return keyvals
	}
	if a.Equal(slog.Attr{}) {
		return keyvals
	}
	return append(keyvals, prefix+a.Key, a.Value.Any())
}

func (g *gokitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return g
	}
	keyvals := make([]interface{}, 0, 2*len(attrs))
	for _, a := range attrs {
		keyvals = flattenAttr(keyvals, g.prefix, a)
	}
	return &gokitHandler{
		logger: kitlog.With(g.logger, keyvals...),
		level:  g.level,
		prefix: g.prefix,
	}
}

func (g *gokitHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return g
	}
	return &gokitHandler{
		logger: g.logger,
		level:  g.level,
		prefix: g.prefix + name + ".",
	}
}
