package gotimer

import "time"

//go:generate go tool mockgen -package clockmock -destination internal/testutil/clockmock/clock.mock.go github.com/ghettovoice/gotimer Clock

// Clock supplies monotonic time to a [Scheduler].
type Clock interface {
	// Now returns the current monotonic time.
	Now() Timespec
}

// SystemClock reads the process monotonic clock.
// Its readings count from an anchor taken at process start.
var SystemClock Clock = systemClock{}

var procStart = time.Now()

type systemClock struct{}

func (systemClock) Now() Timespec { return Timespec{}.Add(time.Since(procStart)) }
