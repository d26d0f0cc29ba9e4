package gotimer

import (
	"fmt"
	"log/slog"
	"time"
)

// Callback is invoked when a timer fires. It receives the user data the
// timer was created with and the time the firing run was invoked at.
//
// Callbacks may call back into the owning [Scheduler]: cancel or reset any
// timer, including their own, create new timers, even destroy the scheduler.
// Calling [Scheduler.Run] from a callback is a no-op.
type Callback func(data any, now Timespec)

// Timer is a handle to a pending timer of a [Scheduler].
// The zero Timer is invalid.
//
// A handle stays valid across reschedules and resets. Cancellation and
// one-shot firing retire the timer; from then on the handle is stale and
// every operation on it reports [ErrInvalidTimer], even after the
// underlying record has been recycled into a new timer.
type Timer struct {
	rec *timerRecord
	gen uint64
}

// LogValue implements [slog.LogValuer].
func (t Timer) LogValue() slog.Value {
	if t.rec == nil {
		return slog.StringValue("<zero>")
	}
	return slog.GroupValue(
		slog.String("ptr", fmt.Sprintf("%p", t.rec)),
		slog.Uint64("gen", t.gen),
		slog.Any("expiry", t.rec.expiry),
		slog.Bool("periodic", t.rec.periodic),
	)
}

// timerRecord is the pooled timer state. Active records sit on the
// scheduler's deadline list through prev/next; pooled records form a
// singly-linked free list through next. gen increments once per
// retirement, which is what invalidates outstanding handles.
type timerRecord struct {
	expiry   Timespec
	interval time.Duration
	periodic bool
	fn       Callback
	data     any

	prev, next *timerRecord

	owner  *Scheduler
	gen    uint64
	active bool
}
