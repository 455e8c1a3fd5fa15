// Copyright 2019 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package log is a thin structured-logging façade over log/slog, mirroring
// go-ethereum's log package: a package-level root logger, leveled
// convenience functions, and a Logger interface so call sites never depend
// on slog directly.
package log

import (
	"context"
	"log/slog"
	"os"
)

// Logger is the interface the interpreter and executor log through.
type Logger interface {
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
	With(ctx ...any) Logger
}

type slogLogger struct {
	inner *slog.Logger
}

func (l *slogLogger) Debug(msg string, ctx ...any) { l.inner.Debug(msg, ctx...) }
func (l *slogLogger) Info(msg string, ctx ...any)  { l.inner.Info(msg, ctx...) }
func (l *slogLogger) Warn(msg string, ctx ...any)  { l.inner.Warn(msg, ctx...) }
func (l *slogLogger) Error(msg string, ctx ...any) { l.inner.Error(msg, ctx...) }

func (l *slogLogger) With(ctx ...any) Logger {
	return &slogLogger{inner: l.inner.With(ctx...)}
}

var root Logger = &slogLogger{inner: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))}

// Root returns the root logger of the package.
func Root() Logger { return root }

// SetDefault replaces the root logger, e.g. to redirect to a JSON handler
// or raise the level when embedding this core in a larger node.
func SetDefault(l Logger) { root = l }

// New returns a new Logger with ctx key/value pairs attached to every record,
// matching go-ethereum's log.New(ctx ...interface{}) Logger idiom.
func New(ctx ...any) Logger { return root.With(ctx...) }

func Debug(msg string, ctx ...any) { root.Debug(msg, ctx...) }
func Info(msg string, ctx ...any)  { root.Info(msg, ctx...) }
func Warn(msg string, ctx ...any)  { root.Warn(msg, ctx...) }
func Error(msg string, ctx ...any) { root.Error(msg, ctx...) }

// FromContext extracts a Logger stashed in ctx by WithContext, falling back
// to the root logger — used by the executor to thread a per-call logger
// through without widening every handler's signature.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return l
	}
	return root
}

type loggerKey struct{}

// WithContext stashes l into ctx for later retrieval via FromContext.
func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}
