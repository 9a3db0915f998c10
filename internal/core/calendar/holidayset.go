package calendar

import (
	"sort"
	"time"
)

// dateLayout is the civil-date key format used for holiday lookups
const dateLayout = "2006-01-02"

// HolidaySet is a frozen collection of civil dates that are non-working
// regardless of weekday. It is built once, before the engine is ever invoked,
// and only read afterwards; there is no mutation path past construction.
type HolidaySet struct {
	dates map[string]struct{}
}

// NewHolidaySet builds a set from YYYY-MM-DD date strings. Entries that do not
// parse as calendar dates are dropped; the caller decides whether to log them.
func NewHolidaySet(dates []string) (*HolidaySet, []string) {
	set := make(map[string]struct{}, len(dates))
	var rejected []string
	for _, d := range dates {
		if _, err := time.Parse(dateLayout, d); err != nil {
			rejected = append(rejected, d)
			continue
		}
		set[d] = struct{}{}
	}
	return &HolidaySet{dates: set}, rejected
}

// Contains reports whether t's civil date is a holiday. t must already be
// expressed in the business location.
func (s *HolidaySet) Contains(t time.Time) bool {
	if s == nil {
		return false
	}
	_, ok := s.dates[t.Format(dateLayout)]
	return ok
}

// Len returns the number of holidays in the set
func (s *HolidaySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dates)
}

// Dates returns the holiday dates in ascending order
func (s *HolidaySet) Dates() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.dates))
	for d := range s.dates {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
