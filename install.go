package multilog

import (
	"errors"
	"log/slog"
	"sync/atomic"
)

// ErrAlreadyInstalled is returned by Install when an earlier call has
// already claimed the process-wide default logger.
var ErrAlreadyInstalled = errors.New("multilog: a process-wide handler is already installed")

var installedFlag int64

// Install builds a MultiHandler over children and registers it as the
// process-wide default logger. Install is a once-per-process operation:
// the second and later calls return ErrAlreadyInstalled and leave the
// first handler in place.
//
// The level threshold of an individual child can't be asked for, so
// level declares the most permissive level any child would accept.
// Records below it are dropped before their arguments are ever
// formatted; each child still applies its own, possibly stricter,
// filter on the rest.
//
// Programs that want the default logger without the level gate or the
// once-only guard can call slog.SetDefault(slog.New(multilog.New(...)))
// themselves; the two paths are otherwise equivalent.
func Install(level slog.Level, children ...slog.Handler) (*MultiHandler, error) {
	if !atomic.CompareAndSwapInt64(&installedFlag, 0, 1) {
		return nil, ErrAlreadyInstalled
	}
	h := New(children...)
	h.level = level
	slog.SetDefault(slog.New(h))
	return h, nil
}
