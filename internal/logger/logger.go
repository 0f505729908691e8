// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the work-diary server and CLI.
//
// Every line is a JSON object carrying the process role, a timestamp and the
// fully-qualified name of the calling function in the "func" field.
// Request and operation scoped loggers travel in context.Context and are read
// back with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// clientLogFile is created next to the CLI binary.
const clientLogFile = "work-diary.log"

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a logger for a long-running process that writes to stdout.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// NewClientLogger returns a logger for the CLI. The CLI prints the feed to
// stdout, so log lines go to a file beside the executable instead, or to
// stderr when that file cannot be opened.
func NewClientLogger(role string) *Logger {
	return New(clientOutput(), role)
}

func clientOutput() io.Writer {
	execPath, err := os.Executable()
	if err != nil {
		return os.Stderr
	}
	f, err := os.OpenFile(filepath.Join(filepath.Dir(execPath), clientLogFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return os.Stderr
	}
	return f
}

// New builds a debug-level JSON logger writing to w and tags it with role.
func New(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		Logger: zerolog.New(w).With().Str("role", role).Timestamp().Caller().Logger(),
	}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Tagged returns a copy of l that adds key=value to every line. l itself is
// left untouched.
func (l *Logger) Tagged(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. zerolog falls back to its
// disabled default logger when none is attached, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
