// Package log provides the structured logger used while building and
// checking a program. It is a section-filtering slog handler adapted
// from the teacher's internal/log: records below slog.LevelWarn are only
// shown if they carry a "section" attribute matching one enabled via
// EnableSections (wired to the --trace CLI flag); everything at Warn or
// above always shows.
package log

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
)

var (
	mu              sync.Mutex
	enabledSections = []string{}
	level           = new(slog.LevelVar)
)

var loggerOpts = &slog.HandlerOptions{
	Level: level,
	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == "time" {
			return slog.Attr{}
		}
		return a
	},
}

// Logger is the process-wide logger every package in this module logs
// through.
var Logger = slog.New(&filteringHandler{underlying: slog.NewTextHandler(os.Stderr, loggerOpts)})

// SetLevel changes the minimum level Logger will emit.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// EnableSections restricts which "section"-tagged records below
// slog.LevelWarn are shown. Passing none disables all sub-warning trace
// output, which is the default.
func EnableSections(sections ...string) {
	mu.Lock()
	defer mu.Unlock()
	enabledSections = sections
}

var _ slog.Handler = &filteringHandler{}

type filteringHandler struct {
	underlying slog.Handler
}

func (f *filteringHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return f.underlying.Enabled(ctx, lvl)
}

func (f *filteringHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= slog.LevelWarn {
		return f.underlying.Handle(ctx, record)
	}
	mu.Lock()
	sections := enabledSections
	mu.Unlock()

	wantSection := false
	record.Attrs(func(attr slog.Attr) bool {
		wantSection = wantSection || attr.Key == "section" && slices.ContainsFunc(sections, func(section string) bool {
			return strings.HasPrefix(attr.Value.String(), section)
		})
		return !wantSection
	})
	if !wantSection {
		return nil
	}
	return f.underlying.Handle(ctx, record)
}

func (f *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &filteringHandler{underlying: f.underlying.WithAttrs(attrs)}
}

func (f *filteringHandler) WithGroup(name string) slog.Handler {
	return &filteringHandler{underlying: f.underlying.WithGroup(name)}
}

// Section returns a logger pre-tagged with "section", the way every
// package's trace calls in this module identify themselves for
// --trace filtering.
func Section(name string) *slog.Logger {
	return Logger.With("section", name)
}
