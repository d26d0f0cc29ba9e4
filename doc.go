// Package gotimer implements deadline scheduling for single-threaded,
// event-driven programs.
//
// A [Scheduler] keeps pending timers in a list sorted by absolute monotonic
// expiry and never blocks. The embedding event loop asks how long it may
// sleep ([Scheduler.Timeout]), sleeps in its own select or poller, then
// fires whatever became due ([Scheduler.Run]). One-shot and fixed-interval
// periodic timers are supported, and retired timer records are recycled
// through an internal pool, so steady-state operation allocates nothing.
//
// The typical loop:
//
//	sched := gotimer.NewScheduler(nil)
//	sched.Every(time.Second, tick, nil)
//	for {
//		wait, ok := sched.Timeout()
//		// ... block on I/O for up to wait, or forever if !ok ...
//		sched.Run()
//	}
//
// Loops that already know the current time can pass it explicitly through
// the ...At variants ([Scheduler.RunAt], [Scheduler.TimeoutAt], and so on)
// to avoid repeated clock reads within one wakeup.
//
// A Scheduler is not safe for concurrent use. All calls, including those
// made from timer callbacks, must happen on one goroutine or be serialized
// by the caller.
package gotimer
