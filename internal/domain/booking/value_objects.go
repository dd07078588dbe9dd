package booking

import (
	"time"

	"shareit/internal/pkg/errs"
)

// Period is the half-open-in-spirit booking window. Both bounds are
// validated at creation time; a reconstructed Period from storage is taken
// as-is.
type Period struct {
	start time.Time
	end   time.Time
}

// NewPeriod validates the window against now. Interval errors win over
// backdating errors so callers always see the first failing check.
func NewPeriod(start, end, now time.Time) (Period, error) {
	if !end.After(start) {
		return Period{}, errs.ErrInvalidInterval
	}
	if start.Before(now) || end.Before(now) {
		return Period{}, errs.ErrBackdatedBooking
	}
	return Period{start: start, end: end}, nil
}

func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

// Contains reports whether now falls strictly inside the window.
func (p Period) Contains(now time.Time) bool {
	return p.start.Before(now) && p.end.After(now)
}

func (p Period) EndedBefore(now time.Time) bool {
	return p.end.Before(now)
}

func (p Period) StartsAfter(now time.Time) bool {
	return p.start.After(now)
}
