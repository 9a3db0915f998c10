package calendar

import (
	"math"
	"time"
)

// Calculator performs all business-calendar arithmetic. It is stateless beyond
// its immutable configuration, so a single instance is safe for concurrent use
// from any number of goroutines.
type Calculator struct {
	profile  Profile
	loc      *time.Location
	holidays *HolidaySet
}

// New builds a Calculator, validating the profile once up front
func New(p Profile, loc *time.Location, holidays *HolidaySet) (*Calculator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Calculator{profile: p, loc: loc, holidays: holidays}, nil
}

// Profile returns the working-hours configuration
func (c *Calculator) Profile() Profile { return c.profile }

// Location returns the business timezone
func (c *Calculator) Location() *time.Location { return c.loc }

// IsWorkingDay reports whether t falls on a Monday-Friday that is not a holiday
func (c *Calculator) IsWorkingDay(t time.Time) bool {
	wd := t.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !c.holidays.Contains(t)
}

// IsWorkingHour reports whether t's time of day is inside a working segment:
// [start, lunchStart) or [lunchEnd, end), interval start inclusive, end exclusive
func (c *Calculator) IsWorkingHour(t time.Time) bool {
	min := t.Hour()*60 + t.Minute()
	return (min >= c.profile.startMin() && min < c.profile.lunchStartMin()) ||
		(min >= c.profile.lunchEndMin() && min < c.profile.endMin())
}

// AdjustToWorkingTime snaps an arbitrary starting instant to the anchor from
// which day/hour addition behaves predictably:
//
//  1. non-working day: scan backward to the previous working day, pinned to close
//  2. before opening: previous working day, pinned to close
//  3. inside the lunch hour, or exactly at its end: pinned to the last instant
//     of the pre-lunch segment (lunchStart:59:59.999)
//  4. at or after close: same day, pinned to close
//  5. otherwise: same day/hour/minute with seconds and sub-seconds zeroed
func (c *Calculator) AdjustToWorkingTime(t time.Time) time.Time {
	if !c.IsWorkingDay(t) {
		return c.at(c.previousWorkingDay(t), c.profile.End, 0, 0, 0)
	}

	hour, minute := t.Hour(), t.Minute()

	if hour < c.profile.Start {
		return c.at(c.previousWorkingDay(t), c.profile.End, 0, 0, 0)
	}

	if c.atLunchBoundary(hour, minute) {
		return c.at(t, c.profile.LunchStart, 59, 59, int(999*time.Millisecond))
	}

	if hour >= c.profile.End {
		return c.at(t, c.profile.End, 0, 0, 0)
	}

	return c.at(t, hour, minute, 0, 0)
}

// NextWorkingMoment returns t unchanged when it is already a working instant,
// otherwise the earliest working instant after it
func (c *Calculator) NextWorkingMoment(t time.Time) time.Time {
	if c.IsWorkingDay(t) && c.IsWorkingHour(t) {
		return t
	}

	cur := t
	if c.IsWorkingDay(cur) {
		hour, minute := cur.Hour(), cur.Minute()
		switch {
		case hour < c.profile.Start:
			return c.at(cur, c.profile.Start, 0, 0, 0)
		case c.atLunchBoundary(hour, minute):
			return c.at(cur, c.profile.LunchEnd, 0, 0, 0)
		case hour >= c.profile.End:
			cur = c.at(cur.AddDate(0, 0, 1), c.profile.Start, 0, 0, 0)
		}
	} else {
		cur = c.at(cur.AddDate(0, 0, 1), c.profile.Start, 0, 0, 0)
	}

	for !c.IsWorkingDay(cur) {
		cur = c.at(cur.AddDate(0, 0, 1), c.profile.Start, 0, 0, 0)
	}
	return cur
}

// AddWorkingDays advances t by n working days, skipping weekends and holidays.
// Time of day is carried through unchanged; n == 0 is the identity.
func (c *Calculator) AddWorkingDays(t time.Time, n int) time.Time {
	cur := t
	for remaining := n; remaining > 0; {
		cur = cur.AddDate(0, 0, 1)
		if c.IsWorkingDay(cur) {
			remaining--
		}
	}
	return cur
}

// AddWorkingHours advances t by a duration of business time. Fractional hours
// are rounded to whole minutes once, up front (half away from zero); the loop
// then consumes work segments, skipping lunch and end-of-day rollovers.
// hours == 0 is the identity.
func (c *Calculator) AddWorkingHours(t time.Time, hours float64) time.Time {
	remaining := int(math.Round(hours * 60))
	if remaining == 0 {
		return t
	}

	cur := c.NextWorkingMoment(t)
	for remaining > 0 {
		cur = c.NextWorkingMoment(cur)
		hour, minute := cur.Hour(), cur.Minute()

		// current segment ends at lunch or at close
		segEnd := c.profile.End
		if hour < c.profile.LunchStart {
			segEnd = c.profile.LunchStart
		}
		untilBoundary := (segEnd-hour)*60 - minute

		if remaining <= untilBoundary {
			cur = cur.Add(time.Duration(remaining) * time.Minute)
			remaining = 0
			break
		}

		remaining -= untilBoundary
		cur = c.at(cur, segEnd, 0, 0, 0)
		if segEnd == c.profile.LunchStart {
			// skip the break, stay on the same day
			cur = c.at(cur, c.profile.LunchEnd, 0, 0, 0)
		} else {
			// roll to the next working day's opening
			for {
				cur = c.at(cur.AddDate(0, 0, 1), c.profile.Start, 0, 0, 0)
				if c.IsWorkingDay(cur) {
					break
				}
			}
		}
	}
	return cur
}

// Calculate resolves a full advance request: convert to the business timezone,
// anchor the start when anything is being added, apply days then hours (always
// in that order), and convert back to UTC.
func (c *Calculator) Calculate(start time.Time, days int, hours float64) time.Time {
	cur := start.In(c.loc)

	if days > 0 || hours > 0 {
		cur = c.AdjustToWorkingTime(cur)
	}
	if days > 0 {
		cur = c.AddWorkingDays(cur, days)
	}
	if hours > 0 {
		cur = c.AddWorkingHours(cur, hours)
	}

	return cur.UTC()
}

// atLunchBoundary is the exact-start special case shared by the normalizer and
// NextWorkingMoment: anywhere inside the lunch-start hour, or exactly at the
// lunch-end hour with zero minutes
func (c *Calculator) atLunchBoundary(hour, minute int) bool {
	return hour == c.profile.LunchStart || (hour == c.profile.LunchEnd && minute == 0)
}

// previousWorkingDay scans backward one day at a time until a working day
func (c *Calculator) previousWorkingDay(t time.Time) time.Time {
	cur := t
	for {
		cur = cur.AddDate(0, 0, -1)
		if c.IsWorkingDay(cur) {
			return cur
		}
	}
}

// at rebuilds t's calendar date with the given clock fields in the business location
func (c *Calculator) at(t time.Time, hour, minute, sec, nsec int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, sec, nsec, t.Location())
}
