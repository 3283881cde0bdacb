package multilog

import (
	"log/slog"
	"os"

	"github.com/sirupsen/logrus"
)

// A console backend for humans next to a logfmt journal for machines,
// behind the one default logger. Install declares Debug as the coarsest
// level any child wants so nothing the journal would keep is filtered
// upstream.
func ExampleInstall() {
	console := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	journal := NewLogfmtHandler(os.Stdout, slog.LevelDebug)
	if _, err := Install(slog.LevelDebug, console, journal); err != nil {
		panic(err)
	}
	slog.Info("listening", "addr", ":8080")
}

// The manual path: hand the fan-out to slog yourself. No coarse level
// gate is planted and nothing stops a later SetDefault.
func ExampleNew() {
	h := New(
		slog.NewJSONHandler(os.Stdout, nil),
		FromLogrus(logrus.StandardLogger()),
	)
	slog.SetDefault(slog.New(h))
	slog.Warn("disk almost full", "pct", 93)
}
