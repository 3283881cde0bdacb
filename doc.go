// Package multilog dispatches every log record to an ordered collection
// of slog handlers, letting a program stand more than one logging
// backend behind the single process-wide default logger.
//
// The fan-out itself holds no state after construction and takes no
// locks, so it is safe from any goroutine slog drives it from. Each
// child handler carries that same obligation: a child shared with the
// fan-out must be safe for concurrent use.
package multilog
