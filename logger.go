package kmeanstree

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kmeanstree-specific structured fields.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. If handler is nil, it
// defaults to a text handler writing to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NoopLogger creates a Logger that discards everything.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(1000)}))}
}

// LogBuild logs a full tree build.
func (l *Logger) LogBuild(ctx context.Context, size, dim int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed", "size", size, "dimension", dim, "error", err)
		return
	}
	l.InfoContext(ctx, "build completed", "size", size, "dimension", dim)
}

// LogInsert logs an AddPoints call.
func (l *Logger) LogInsert(ctx context.Context, count int, rebuilt bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "insert failed", "count", count, "error", err)
		return
	}
	l.DebugContext(ctx, "insert completed", "count", count, "triggered_rebuild", rebuilt)
}

// LogRebuild logs a full tree rebuild triggered by growth past threshold.
func (l *Logger) LogRebuild(ctx context.Context, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "rebuild failed", "size", size, "error", err)
		return
	}
	l.InfoContext(ctx, "rebuild completed", "size", size)
}

// LogSearch logs a nearest-neighbor search.
func (l *Logger) LogSearch(ctx context.Context, k, checks, found int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed", "k", k, "checks", checks, "error", err)
		return
	}
	l.DebugContext(ctx, "search completed", "k", k, "checks", checks, "found", found)
}

// LogCut logs a cluster-cut request.
func (l *Logger) LogCut(ctx context.Context, requested, returned int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "cut failed", "requested", requested, "error", err)
		return
	}
	l.DebugContext(ctx, "cut completed", "requested", requested, "returned", returned)
}
