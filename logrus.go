package multilog

import (
	"context"
	"log/slog"

	"github.com/sirupsen/logrus"
)

// FromLogrus adapts a logrus logger into a handler usable as a fan-out
// child. Enablement follows the logrus logger's own level, so raising
// or lowering it keeps working after the fan-out is installed. Record
// attrs become logrus fields.
func FromLogrus(logger *logrus.Logger) slog.Handler {
	return &logrusHandler{logger: logger, entry: logrus.NewEntry(logger)}
}

type logrusHandler struct {
	logger *logrus.Logger
	entry  *logrus.Entry // carries fields bound through WithAttrs
	prefix string
}

func (l *logrusHandler) Enabled(_ context.Context, level slog.Level) bool {
	return l.logger.IsLevelEnabled(logrusLevel(level))
}

func (l *logrusHandler) Handle(_ context.Context, r slog.Record) error {
	e := l.entry
	if r.NumAttrs() > 0 {
		fields := make(logrus.Fields, r.NumAttrs())
		r.Attrs(func(a slog.Attr) bool {
			addField(fields, l.prefix, a)
			return true
		})
		e = e.WithFields(fields)
	}
	if !r.Time.IsZero() {
		e = e.WithTime(r.Time)
	}
	e.Log(logrusLevel(r.Level), r.Message)
	return nil
}

func addField(fields logrus.Fields, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p = p + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			addField(fields, p, ga)
		}
		return
	}
	if a.Equal(slog.Attr{}) {
		return
	}
	fields[prefix+a.Key] = a.Value.Any()
}

func (l *logrusHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return l
	}
	fields := make(logrus.Fields, len(attrs))
	for _, a := range attrs {
		addField(fields, l.prefix, a)
	}
	return &logrusHandler{
		logger: l.logger,
		entry:  l.entry.WithFields(fields),
		prefix: l.prefix,
	}
}

func (l *logrusHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return l
	}
	return &logrusHandler{
		logger: l.logger,
		entry:  l.entry,
		prefix: l.prefix + name + ".",
	}
}

// logrusLevel maps a slog level onto the logrus scale. Levels between
// the named slog constants land on the nearer, less severe logrus
// level; anything below Debug is Trace.
func logrusLevel(level slog.Level) logrus.Level {
	switch {
	case level < slog.LevelDebug:
		return logrus.TraceLevel
	case level < slog.LevelInfo:
		return logrus.DebugLevel
	case level < slog.LevelWarn:
		return logrus.InfoLevel
	case level < slog.LevelError:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
