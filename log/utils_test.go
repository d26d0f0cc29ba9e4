package log_test

import (
	"log/slog"
	"testing"

	"github.com/ghettovoice/gotimer/log"
)

type pair struct{ X, Y int }

func TestFmtValue(t *testing.T) {
	t.Parallel()

	if got, want := log.FmtValue(pair{1, 2}, false).LogValue().String(), "{X:1 Y:2}"; got != want {
		t.Errorf("log.FmtValue(pair, false).LogValue() = %q, want %q", got, want)
	}
	if got, want := log.FmtValue(pair{1, 2}, true).LogValue().String(), "log_test.pair{X:1, Y:2}"; got != want {
		t.Errorf("log.FmtValue(pair, true).LogValue() = %q, want %q", got, want)
	}
}

func TestCalcValue(t *testing.T) {
	t.Parallel()

	calls := 0
	v := log.CalcValue(func() any {
		calls++
		return calls
	})
	if calls != 0 {
		t.Fatalf("calls before LogValue = %d, want 0", calls)
	}
	if got := v.LogValue(); got.Kind() != slog.KindInt64 || got.Int64() != 1 {
		t.Errorf("v.LogValue() = %v, want 1", got)
	}

	raw := log.CalcValue(func() any { return slog.StringValue("done") })
	if got := raw.LogValue(); got.Kind() != slog.KindString || got.String() != "done" {
		t.Errorf("raw.LogValue() = %v, want \"done\"", got)
	}
}

func TestStringValue(t *testing.T) {
	t.Parallel()

	if got := log.StringValue("abc").LogValue(); got.String() != "abc" {
		t.Errorf("log.StringValue(\"abc\").LogValue() = %q, want \"abc\"", got.String())
	}
	if got := log.StringValue([]byte("xyz")).LogValue(); got.String() != "xyz" {
		t.Errorf("log.StringValue([]byte(\"xyz\")).LogValue() = %q, want \"xyz\"", got.String())
	}
}
