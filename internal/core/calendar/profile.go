package calendar

import (
	"time"

	perr "workdays/internal/platform/errors"
)

// DefaultTimezone is the business timezone. It has no daylight saving
// transitions, so civil arithmetic never crosses an offset change.
const DefaultTimezone = "America/Bogota"

// Profile is the fixed working-hours configuration, in whole hours.
// Invariant: 0 <= Start < LunchStart < LunchEnd < End <= 24. A profile that
// violates this could make the advancer loops spin forever, so it is checked
// once when the Calculator is built, never per call.
type Profile struct {
	Start      int
	LunchStart int
	LunchEnd   int
	End        int
}

// DefaultProfile returns the standard office hours: 08:00-12:00 and 13:00-17:00.
func DefaultProfile() Profile {
	return Profile{Start: 8, LunchStart: 12, LunchEnd: 13, End: 17}
}

// Validate checks the profile ordering invariant
func (p Profile) Validate() error {
	if p.Start < 0 || p.End > 24 {
		return perr.InvalidArgf("working hours out of range: start=%d end=%d", p.Start, p.End)
	}
	if !(p.Start < p.LunchStart && p.LunchStart < p.LunchEnd && p.LunchEnd < p.End) {
		return perr.InvalidArgf(
			"working hours must satisfy start < lunchStart < lunchEnd < end, got %d/%d/%d/%d",
			p.Start, p.LunchStart, p.LunchEnd, p.End)
	}
	return nil
}

// minutes-of-day boundaries, half-open everywhere

func (p Profile) startMin() int      { return p.Start * 60 }
func (p Profile) lunchStartMin() int { return p.LunchStart * 60 }
func (p Profile) lunchEndMin() int   { return p.LunchEnd * 60 }
func (p Profile) endMin() int        { return p.End * 60 }

// LoadLocation resolves the business timezone, defaulting to DefaultTimezone
// when tz is empty
func LoadLocation(tz string) (*time.Location, error) {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "unknown timezone %q", tz)
	}
	return loc, nil
}
