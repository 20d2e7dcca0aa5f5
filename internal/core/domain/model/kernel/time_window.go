package kernel

import (
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrTimeWindowIsNotConstructed is returned when attempting to use an improperly
// initialized TimeWindow. TimeWindows must be created via NewTimeWindow.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow constructor")

// TimeWindow represents a validated scheduling interval with start strictly
// before end. It is an immutable value object used for pickup/delivery windows
// and route schedules.
type TimeWindow struct {
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

// NewTimeWindow creates a TimeWindow after validating that both bounds are set
// and that start precedes end.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("start")
	}
	if end.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("end")
	}
	if !start.Before(end) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("time window",
			fmt.Errorf("start %s is not before end %s", start, end))
	}

	return TimeWindow{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the TimeWindow was properly constructed via NewTimeWindow.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

// Start returns the inclusive start of the window.
func (w TimeWindow) Start() time.Time {
	return w.start
}

// End returns the exclusive end of the window.
func (w TimeWindow) End() time.Time {
	return w.end
}

// Duration returns the planned length of the window.
func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}
