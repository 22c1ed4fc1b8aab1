// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package logger provides a structured logger carried in a context and the
// printf-style Logf type.
package logger

import (
	"context"
	"io"
	"log/slog"
)

// Logf is the basic logger type: a printf-like func. Like [log.Printf], the
// format need not end in a newline. Logf functions must be safe for concurrent
// use.
type Logf func(format string, args ...any)

// Write implements the [io.Writer] interface.
func (f Logf) Write(p []byte) (n int, err error) {
	f("%s", p)
	return len(p), nil
}

// Logger is a [slog.Logger] together with the variable controlling its level.
type Logger struct {
	*slog.Logger
	Level *slog.LevelVar
}

// New returns a Logger that writes text records to w at Info level.
// Records carry no timestamp: they are meant for a terminal.
func New(w io.Writer) *Logger {
	level := new(slog.LevelVar)
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return &Logger{Logger: slog.New(h), Level: level}
}

type ctxKey struct{}

var discard = &Logger{
	Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	Level:  new(slog.LevelVar),
}

// Put returns a copy of ctx that carries l.
func Put(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// Get returns the Logger carried by ctx, or one that discards everything.
func Get(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return discard
}

// Debug logs at [slog.LevelDebug] with the logger from ctx.
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// Info logs at [slog.LevelInfo] with the logger from ctx.
func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn logs at [slog.LevelWarn] with the logger from ctx.
func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

// Error logs at [slog.LevelError] with the logger from ctx.
func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelError, msg, attrs...)
}
