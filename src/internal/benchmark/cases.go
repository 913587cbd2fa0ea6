package benchmark

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"github.com/maksimkurb/debug-tools/src/internal/debuglog"
)

const (
	benchmarkName    = "benchmark"
	benchmarkMessage = "Message"

	enabledCategory  debuglog.Mask = 1 << 0
	disabledCategory debuglog.Mask = 1 << 1
)

// DebugLoggerDisabled logs with a category outside the logger's mask.
func DebugLoggerDisabled() Case {
	return Case{
		Name: "debuglog-disabled",
		Run: func(iterations int) {
			logger := debuglog.NewCustom(debuglog.Config{Mask: enabledCategory, Name: benchmarkName},
				debuglog.NewStreamSink(io.Discard))
			for i := 0; i < iterations; i++ {
				_ = logger.Log(disabledCategory, benchmarkMessage)
			}
		},
	}
}

// DebugLoggerEnabled logs every call to a discarding stream.
func DebugLoggerEnabled() Case {
	return Case{
		Name: "debuglog-enabled",
		Run: func(iterations int) {
			logger := debuglog.NewCustom(debuglog.Config{Mask: debuglog.AllCategories, Name: benchmarkName},
				debuglog.NewStreamSink(io.Discard))
			for i := 0; i < iterations; i++ {
				_ = logger.Log(enabledCategory, benchmarkMessage)
			}
		},
	}
}

// SlogDisabled issues debug calls to a slog logger whose level is Warn.
func SlogDisabled() Case {
	return Case{
		Name: "slog-disabled",
		Run: func(iterations int) {
			logger := newSlogLogger(slog.LevelWarn).With("logger", benchmarkName)
			for i := 0; i < iterations; i++ {
				logger.Debug(benchmarkMessage)
			}
		},
	}
}

// SlogEnabled issues debug calls that pass the level check.
func SlogEnabled() Case {
	return Case{
		Name: "slog-enabled",
		Run: func(iterations int) {
			logger := newSlogLogger(slog.LevelDebug).With("logger", benchmarkName)
			ctx := context.Background()
			for i := 0; i < iterations; i++ {
				logger.DebugContext(ctx, benchmarkMessage)
			}
		},
	}
}

func newSlogLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level}))
}

var registry = map[string]func() Case{
	"debuglog-disabled": DebugLoggerDisabled,
	"debuglog-enabled":  DebugLoggerEnabled,
	"slog-disabled":     SlogDisabled,
	"slog-enabled":      SlogEnabled,
}

// Lookup returns the built-in case with the given name.
func Lookup(name string) (Case, bool) {
	factory, ok := registry[name]
	if !ok {
		return Case{}, false
	}
	return factory(), true
}

// Names lists the built-in cases.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
