// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default slog logger for commands,
// with the verbosity level selected by build tags and levels
// colored by terminal capability.
package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through the -v and -q command line flags. It defaults to
// [slog.LevelInfo], or the level implied by the debug and release
// build tags.
var UserLevel = defaultUserLevel

// SetDefaultLogger sets the default logger to be a [Handler] with the
// level of [UserLevel] writing to stderr.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// Handler is a [slog.Handler] that writes one line per record:
// a colored level tag, the message, and any attributes as key=value.
type Handler struct {
	mu    *sync.Mutex
	out   *termenv.Output
	attrs []slog.Attr
	group string
}

// NewHandler returns a new [Handler] writing to w.
func NewHandler(w io.Writer) *Handler {
	return &Handler{mu: &sync.Mutex{}, out: termenv.NewOutput(w)}
}

// Enabled reports whether level is at or above [UserLevel].
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= UserLevel
}

// Handle writes the record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(LevelColor(h.out, r.Level, r.Level.String()))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	write := func(group string, a slog.Attr) {
		if a.Equal(slog.Attr{}) {
			return
		}
		sb.WriteByte(' ')
		if group != "" {
			sb.WriteString(group)
			sb.WriteByte('.')
		}
		sb.WriteString(a.Key)
		sb.WriteByte('=')
		sb.WriteString(a.Value.Resolve().String())
	}
	for _, a := range h.attrs {
		write("", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		write(h.group, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

// WithAttrs returns a handler that also writes the given attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

// WithGroup returns a handler that qualifies attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	if nh.group != "" {
		name = nh.group + "." + name
	}
	nh.group = name
	return &nh
}

// LevelColor applies the color associated with the given level to the
// given string, as supported by out.
func LevelColor(out *termenv.Output, level slog.Level, str string) string {
	var c termenv.Color
	switch {
	case level >= slog.LevelError:
		c = termenv.ANSIBrightRed
	case level >= slog.LevelWarn:
		c = termenv.ANSIBrightYellow
	case level >= slog.LevelInfo:
		c = termenv.ANSIBrightCyan
	default:
		c = termenv.ANSIBrightBlack
	}
	return out.String(str).Foreground(c).Bold().String()
}
