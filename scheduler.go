package gotimer

//go:generate go tool errtrace -w .

import (
	"iter"
	"log/slog"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gotimer/internal/errorutil"
	"github.com/ghettovoice/gotimer/log"
)

// SchedulerOptions are the options for a [Scheduler].
type SchedulerOptions struct {
	// Clock is the time source for operations called without an explicit
	// current time. If nil, [SystemClock] is used.
	Clock Clock
	// MaxTimers caps the number of timer records the scheduler may own,
	// pending and pooled together. Creation fails with [ErrTooManyTimers]
	// once the cap is reached. If 0, the scheduler is unbounded.
	MaxTimers int
	// Preallocate warms the record pool with this many records up front.
	// Values above MaxTimers are clamped to it.
	Preallocate int
	// Logger is the logger.
	// If nil, [log.Default] is used.
	Logger *slog.Logger
}

func (o *SchedulerOptions) clock() Clock {
	if o == nil || o.Clock == nil {
		return SystemClock
	}
	return o.Clock
}

func (o *SchedulerOptions) maxTimers() int {
	if o == nil || o.MaxTimers < 0 {
		return 0
	}
	return o.MaxTimers
}

func (o *SchedulerOptions) preallocate() int {
	if o == nil || o.Preallocate <= 0 {
		return 0
	}
	if m := o.maxTimers(); m > 0 && o.Preallocate > m {
		return m
	}
	return o.Preallocate
}

func (o *SchedulerOptions) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// Scheduler manages one-shot and periodic timers for a single-threaded
// event loop. It keeps pending timers ordered by expiry, reports how long
// the loop may sleep, and fires due timers on demand. It never blocks and
// never spawns goroutines.
//
// A Scheduler is not safe for concurrent use.
type Scheduler struct {
	active  timerList
	free    *timerRecord
	freeLen int
	total   int
	running bool

	clock Clock
	max   int
	log   *slog.Logger
}

// NewScheduler creates a new [Scheduler].
// Options are optional, if nil, default values are used (see [SchedulerOptions]).
func NewScheduler(opts *SchedulerOptions) *Scheduler {
	s := &Scheduler{
		clock: opts.clock(),
		max:   opts.maxTimers(),
		log:   opts.log(),
	}
	for range opts.preallocate() {
		s.total++
		s.release(&timerRecord{owner: s})
	}
	return s
}

// Now returns the scheduler clock's current time, for use as the explicit
// time argument of the ...At operations.
func (s *Scheduler) Now() Timespec { return s.clock.Now() }

// After schedules fn to run once, d after the current time.
// A zero or negative d makes the timer due on the next run.
func (s *Scheduler) After(d time.Duration, fn Callback, data any) (Timer, error) {
	return errtrace.Wrap2(s.scheduleAt(s.clock.Now(), d, fn, data, false))
}

// AfterAt is [Scheduler.After] with an explicit current time.
func (s *Scheduler) AfterAt(now Timespec, d time.Duration, fn Callback, data any) (Timer, error) {
	return errtrace.Wrap2(s.scheduleAt(now, d, fn, data, false))
}

// Every schedules fn to run every d, first d after the current time.
// The period is anchored to the timer's own schedule, not to when runs
// happen, so late runs do not drift it. d must be positive.
func (s *Scheduler) Every(d time.Duration, fn Callback, data any) (Timer, error) {
	return errtrace.Wrap2(s.scheduleAt(s.clock.Now(), d, fn, data, true))
}

// EveryAt is [Scheduler.Every] with an explicit current time.
func (s *Scheduler) EveryAt(now Timespec, d time.Duration, fn Callback, data any) (Timer, error) {
	return errtrace.Wrap2(s.scheduleAt(now, d, fn, data, true))
}

func (s *Scheduler) scheduleAt(now Timespec, d time.Duration, fn Callback, data any, periodic bool) (Timer, error) {
	if fn == nil {
		return Timer{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil callback"))
	}
	if periodic && d <= 0 {
		return Timer{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("non-positive interval %v", d))
	}
	rec, err := s.acquire()
	if err != nil {
		return Timer{}, errtrace.Wrap(err)
	}
	rec.expiry = now.Add(d)
	rec.interval = d
	rec.periodic = periodic
	rec.fn = fn
	rec.data = data
	rec.active = true
	s.active.insert(rec)
	tmr := Timer{rec: rec, gen: rec.gen}
	s.log.Debug("timer scheduled", "timer", tmr, "in", d)
	return tmr, nil
}

// Timeout reports how long the caller may sleep before the earliest pending
// timer is due. The wait is clamped to zero for overdue timers. ok is false
// when no timers are pending and the caller may sleep indefinitely.
func (s *Scheduler) Timeout() (wait time.Duration, ok bool) {
	return s.TimeoutAt(s.clock.Now())
}

// TimeoutAt is [Scheduler.Timeout] with an explicit current time.
func (s *Scheduler) TimeoutAt(now Timespec) (wait time.Duration, ok bool) {
	head := s.active.front()
	if head == nil {
		return 0, false
	}
	d := head.expiry.Sub(now)
	if d < 0 {
		d = 0
	}
	return d, true
}

// Run fires every pending timer whose expiry is at or before the current
// time, in deadline order, and returns the number of callbacks invoked.
// One-shot timers are retired after firing; periodic timers advance by
// their interval from the previous expiry and may fire again within the
// same run if still due. Timers created by callbacks during a run may or
// may not fire in that run.
func (s *Scheduler) Run() int { return s.RunAt(s.clock.Now()) }

// RunAt is [Scheduler.Run] with an explicit current time.
func (s *Scheduler) RunAt(now Timespec) int {
	if s.running {
		return 0
	}
	s.running = true
	defer func() { s.running = false }()

	fired := 0
	t := s.active.head
	for t != nil && !now.Before(t.expiry) {
		// The callback may retire t or next, or retire and recycle them
		// into new timers. Capture generations to tell.
		next := t.next
		var nextGen uint64
		if next != nil {
			nextGen = next.gen
		}
		gen := t.gen

		t.fn(t.data, now)
		fired++

		if t.active && t.gen == gen {
			if t.periodic {
				t.expiry = t.expiry.Add(t.interval)
				s.active.resort(t)
			} else {
				s.retire(t)
			}
		}
		switch {
		case next == nil:
			t = nil
		case next.active && next.gen == nextGen:
			t = next
		default:
			t = s.active.head
		}
	}
	if fired > 0 {
		s.log.Debug("timers fired", "count", fired, "now", now,
			"next", log.CalcValue(func() any {
				if head := s.active.front(); head != nil {
					return head.expiry
				}
				return nil
			}))
	}
	return fired
}

// Reset re-arms t to fire its interval from the current time.
// The handle stays valid. For a periodic timer the schedule anchor moves
// to the reset time.
func (s *Scheduler) Reset(t Timer) error {
	return errtrace.Wrap(s.ResetAt(s.clock.Now(), t))
}

// ResetAt is [Scheduler.Reset] with an explicit current time.
func (s *Scheduler) ResetAt(now Timespec, t Timer) error {
	rec := s.lookup(t)
	if rec == nil {
		return errtrace.Wrap(ErrInvalidTimer)
	}
	rec.expiry = now.Add(rec.interval)
	s.active.resort(rec)
	s.log.Debug("timer reset", "timer", t)
	return nil
}

// Cancel retires t without firing it. The handle becomes invalid and the
// record returns to the pool for reuse.
func (s *Scheduler) Cancel(t Timer) error {
	rec := s.lookup(t)
	if rec == nil {
		return errtrace.Wrap(ErrInvalidTimer)
	}
	s.retire(rec)
	s.log.Debug("timer canceled", "timer", t)
	return nil
}

// Valid reports whether t is a live handle of this scheduler.
func (s *Scheduler) Valid(t Timer) bool { return s.lookup(t) != nil }

// Len returns the number of pending timers.
func (s *Scheduler) Len() int { return s.active.size }

// Deadlines iterates over pending expiries in firing order.
// The scheduler must not be mutated during iteration.
func (s *Scheduler) Deadlines() iter.Seq[Timespec] {
	return func(yield func(Timespec) bool) {
		for t := s.active.head; t != nil; t = t.next {
			if !yield(t.expiry) {
				return
			}
		}
	}
}

// Cleanup releases the pooled records kept for reuse, returning their
// capacity to the allocator. Pending timers are untouched.
func (s *Scheduler) Cleanup() {
	n := s.freeLen
	for s.free != nil {
		t := s.free
		s.free = t.next
		t.next = nil
		t.owner = nil
		s.total--
	}
	s.freeLen = 0
	if n > 0 {
		s.log.Debug("timer pool drained", "released", n)
	}
}

// Destroy cancels every pending timer, invalidating all outstanding
// handles, and drops the record pool. The scheduler stays usable.
func (s *Scheduler) Destroy() {
	n := s.active.size
	for s.active.head != nil {
		s.retire(s.active.head)
	}
	s.Cleanup()
	if n > 0 {
		s.log.Debug("scheduler destroyed", "canceled", n)
	}
}

// lookup resolves a handle to its record, nil when the handle is zero,
// stale, or belongs to another scheduler.
func (s *Scheduler) lookup(t Timer) *timerRecord {
	if t.rec == nil || t.rec.owner != s || !t.rec.active || t.rec.gen != t.gen {
		return nil
	}
	return t.rec
}

// acquire pops a pooled record or allocates a fresh one under the cap.
func (s *Scheduler) acquire() (*timerRecord, error) {
	if t := s.free; t != nil {
		s.free = t.next
		s.freeLen--
		t.next = nil
		return t, nil
	}
	if s.max > 0 && s.total >= s.max {
		return nil, errtrace.Wrap(ErrTooManyTimers)
	}
	s.total++
	return &timerRecord{owner: s}, nil
}

// retire unlinks an active record and returns it to the pool.
func (s *Scheduler) retire(t *timerRecord) {
	s.active.remove(t)
	s.release(t)
}

// release pushes a record onto the free list. The generation bump is what
// invalidates outstanding handles; callback and data are dropped so the
// collector can reclaim whatever they capture.
func (s *Scheduler) release(t *timerRecord) {
	t.gen++
	t.active = false
	t.fn = nil
	t.data = nil
	t.prev = nil
	t.next = s.free
	s.free = t
	s.freeLen++
}
