package gotimer

import "github.com/ghettovoice/gotimer/internal/errorutil"

// Scheduler errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrInvalidTimer is returned for operations on a zero, canceled,
	// already fired or foreign timer handle.
	ErrInvalidTimer Error = "invalid timer"
	// ErrTooManyTimers is returned when a scheduler reached its configured
	// timer limit.
	ErrTooManyTimers Error = "too many timers"
)

// Error represents a gotimer error.
// See [errorutil.Error].
type Error = errorutil.Error
