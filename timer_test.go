package gotimer_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/ghettovoice/gotimer"
)

func TestTimer_LogValue(t *testing.T) {
	t.Parallel()

	t.Run("zero handle", func(t *testing.T) {
		got := gotimer.Timer{}.LogValue()
		if got.Kind() != slog.KindString || got.String() != "<zero>" {
			t.Errorf("Timer{}.LogValue() = %v, want \"<zero>\"", got)
		}
	})

	t.Run("live handle", func(t *testing.T) {
		sched := gotimer.NewScheduler(nil)
		tmr, err := sched.EveryAt(gotimer.Timespec{}, 50*time.Millisecond, noop, nil)
		if err != nil {
			t.Fatalf("sched.EveryAt(now, 50ms, fn, nil) error = %v, want nil", err)
		}

		v := tmr.LogValue()
		if v.Kind() != slog.KindGroup {
			t.Fatalf("tmr.LogValue().Kind() = %v, want %v", v.Kind(), slog.KindGroup)
		}
		attrs := make(map[string]slog.Value, 4)
		for _, a := range v.Group() {
			attrs[a.Key] = a.Value
		}
		if got := attrs["expiry"].Resolve(); got.String() != "50ms" {
			t.Errorf("expiry attr = %v, want 50ms", got)
		}
		if got, ok := attrs["periodic"]; !ok || got.Kind() != slog.KindBool || !got.Bool() {
			t.Errorf("periodic attr = %v, want true", got)
		}
	})
}
