package gotimer

import (
	"log/slog"
	"time"
)

const nsecPerSec = int64(time.Second)

// Timespec is an absolute monotonic instant split into whole seconds and
// nanoseconds. Nsec is kept in [0, 1e9) by all operations in this package.
//
// Timespec values are comparable with ==, ordered with [Timespec.Compare],
// and carry no wall-clock meaning: they only relate to other readings of
// the same [Clock].
type Timespec struct {
	Sec  int64
	Nsec int64
}

// Add returns the instant d after ts. Negative durations move backwards.
// The result is normalized.
func (ts Timespec) Add(d time.Duration) Timespec {
	ts.Sec += int64(d / time.Second)
	ts.Nsec += int64(d % time.Second)
	switch {
	case ts.Nsec >= nsecPerSec:
		ts.Sec++
		ts.Nsec -= nsecPerSec
	case ts.Nsec < 0:
		ts.Sec--
		ts.Nsec += nsecPerSec
	}
	return ts
}

// Sub returns the duration ts-u.
func (ts Timespec) Sub(u Timespec) time.Duration {
	return time.Duration(ts.Sec-u.Sec)*time.Second + time.Duration(ts.Nsec-u.Nsec)
}

// Compare orders two instants: -1 if ts is before u, 0 if equal, +1 if after.
func (ts Timespec) Compare(u Timespec) int {
	switch {
	case ts.Sec < u.Sec:
		return -1
	case ts.Sec > u.Sec:
		return 1
	case ts.Nsec < u.Nsec:
		return -1
	case ts.Nsec > u.Nsec:
		return 1
	}
	return 0
}

// Before reports whether ts is strictly before u.
func (ts Timespec) Before(u Timespec) bool { return ts.Compare(u) < 0 }

// After reports whether ts is strictly after u.
func (ts Timespec) After(u Timespec) bool { return ts.Compare(u) > 0 }

// String renders ts as the elapsed duration since the clock zero.
func (ts Timespec) String() string {
	return (time.Duration(ts.Sec)*time.Second + time.Duration(ts.Nsec)).String()
}

// LogValue implements [slog.LogValuer].
func (ts Timespec) LogValue() slog.Value { return slog.StringValue(ts.String()) }
