// Package log provides loggers for the gotimer library.
package log

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(d time.Duration) slog.Value {
		return slog.StringValue(d.String())
	}),
)

// Console returns a logger that writes human-readable records to stdout.
func Console() *slog.Logger {
	return slog.New(newHandler(
		console.NewHandler(os.Stdout, &console.HandlerOptions{
			AddSource:  true,
			Level:      slog.LevelDebug,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// Dev returns a developer logger with verbose, sorted output.
func Dev() *slog.Logger {
	return slog.New(newHandler(
		devslog.NewHandler(os.Stdout, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     slog.LevelDebug,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

var noop = slog.New(noopHandler{})

// Noop returns a logger that discards all records.
func Noop() *slog.Logger { return noop }

var def atomic.Pointer[slog.Logger]

func init() { def.Store(noop) }

// Default returns the logger used by schedulers with no configured logger.
// It is the [Noop] logger until replaced with [SetDefault].
func Default() *slog.Logger { return def.Load() }

// SetDefault replaces the default logger. A nil l resets it to [Noop].
func SetDefault(l *slog.Logger) {
	if l == nil {
		l = noop
	}
	def.Store(l)
}
