package calendar

import (
	"testing"
	"time"
)

func TestNewHolidaySet_RejectsMalformed(t *testing.T) {
	t.Parallel()

	set, rejected := NewHolidaySet([]string{
		"2025-01-01",
		"2025-13-40", // impossible date
		"01/01/2025", // wrong layout
		"2025-12-25",
		"",
	})
	if set.Len() != 2 {
		t.Fatalf("expected 2 kept, got %d", set.Len())
	}
	if len(rejected) != 3 {
		t.Fatalf("expected 3 rejected, got %v", rejected)
	}
}

func TestHolidaySetContains(t *testing.T) {
	t.Parallel()

	set, _ := NewHolidaySet([]string{"2025-01-01"})
	loc := time.FixedZone("-05", -5*60*60)

	if !set.Contains(time.Date(2025, 1, 1, 23, 0, 0, 0, loc)) {
		t.Fatal("civil new year should be a holiday")
	}
	if set.Contains(time.Date(2025, 1, 2, 0, 0, 0, 0, loc)) {
		t.Fatal("january 2 is not a holiday")
	}
}

func TestHolidaySet_NilSafe(t *testing.T) {
	t.Parallel()

	var s *HolidaySet
	if s.Contains(time.Now()) {
		t.Fatal("nil set contains nothing")
	}
	if s.Len() != 0 {
		t.Fatal("nil set has zero length")
	}
	if s.Dates() != nil {
		t.Fatal("nil set has no dates")
	}
}

func TestHolidaySet_DatesSorted(t *testing.T) {
	t.Parallel()

	set, _ := NewHolidaySet([]string{"2025-12-25", "2025-01-01", "2025-07-20"})
	got := set.Dates()
	want := []string{"2025-01-01", "2025-07-20", "2025-12-25"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}
