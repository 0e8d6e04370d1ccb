package period

import (
	"errors"
	"testing"
	"time"
)

func TestRangeWeeklyStartsSunday(t *testing.T) {
	now := time.Date(2026, time.September, 9, 15, 30, 0, 0, time.UTC) // Wednesday

	start, end, err := Range("weekly", "", "", now)
	if err != nil {
		t.Fatalf("Range() error = %v", err)
	}
	if got := start.Format("2006-01-02"); got != "2026-09-06" {
		t.Errorf("start = %s, want 2026-09-06", got)
	}
	if got := end.Format("2006-01-02"); got != "2026-09-13" {
		t.Errorf("end = %s, want 2026-09-13", got)
	}
}

func TestRangeDaily(t *testing.T) {
	now := time.Date(2026, time.February, 28, 23, 59, 0, 0, time.UTC)

	start, end, err := Range("daily", "", "", now)
	if err != nil {
		t.Fatalf("Range() error = %v", err)
	}
	if got := start.Format("2006-01-02"); got != "2026-02-28" {
		t.Errorf("start = %s", got)
	}
	if got := end.Format("2006-01-02"); got != "2026-03-01" {
		t.Errorf("end = %s, want day after a non-leap February", got)
	}
}

func TestRangeMonthly(t *testing.T) {
	now := time.Date(2026, time.September, 9, 12, 0, 0, 0, time.UTC)

	start, end, err := Range("monthly", "", "", now)
	if err != nil {
		t.Fatalf("Range() error = %v", err)
	}
	if got := start.Format("2006-01-02"); got != "2026-09-01" {
		t.Errorf("start = %s", got)
	}
	if got := end.Format("2006-01-02"); got != "2026-10-01" {
		t.Errorf("end = %s", got)
	}
}

func TestRangeCustomInclusiveEnd(t *testing.T) {
	start, end, err := Range("custom", "2026-01-10", "2026-01-20", time.Now())
	if err != nil {
		t.Fatalf("Range() error = %v", err)
	}
	if got := start.Format("2006-01-02"); got != "2026-01-10" {
		t.Errorf("start = %s", got)
	}
	// end_date is inclusive, so the window extends one day past it
	if got := end.Format("2006-01-02"); got != "2026-01-21" {
		t.Errorf("end = %s", got)
	}
}

// The returned end bound is exclusive and consumers compare with a strict
// less-than. A row dated exactly on the end bound must fall outside the
// window, otherwise a daily listing picks up tomorrow's appointments.
func TestRangeEndBoundIsExclusive(t *testing.T) {
	now := time.Date(2026, time.September, 9, 8, 0, 0, 0, time.UTC)
	within := func(v time.Time, start, end *time.Time) bool {
		return !v.Before(*start) && v.Before(*end)
	}

	cases := []struct {
		name      string
		startDate string
		endDate   string
		inside    time.Time
		outside   time.Time
	}{
		{"daily", "", "",
			time.Date(2026, time.September, 9, 23, 59, 59, 0, time.UTC),
			time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)},
		{"weekly", "", "",
			time.Date(2026, time.September, 12, 12, 0, 0, 0, time.UTC),
			time.Date(2026, time.September, 13, 0, 0, 0, 0, time.UTC)},
		{"custom", "2026-09-01", "2026-09-05",
			time.Date(2026, time.September, 5, 18, 0, 0, 0, time.UTC),
			time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		start, end, err := Range(c.name, c.startDate, c.endDate, now)
		if err != nil {
			t.Fatalf("Range(%q) error = %v", c.name, err)
		}
		if !within(c.inside, start, end) {
			t.Errorf("%s: %s should be inside [%s, %s)", c.name, c.inside, start, end)
		}
		if within(c.outside, start, end) {
			t.Errorf("%s: %s should be outside [%s, %s)", c.name, c.outside, start, end)
		}
	}
}

func TestRangeUnbounded(t *testing.T) {
	for _, name := range []string{"", "all"} {
		start, end, err := Range(name, "", "", time.Now())
		if err != nil || start != nil || end != nil {
			t.Errorf("Range(%q) = %v %v %v, want unbounded", name, start, end, err)
		}
	}
}

func TestRangeInvalid(t *testing.T) {
	cases := []struct {
		name      string
		startDate string
		endDate   string
	}{
		{"hourly", "", ""},
		{"custom", "2026-01-01", ""},
		{"custom", "", "2026-01-31"},
		{"custom", "01/01/2026", "2026-01-31"},
	}
	for _, c := range cases {
		if _, _, err := Range(c.name, c.startDate, c.endDate, time.Now()); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("Range(%q,%q,%q) error = %v, want ErrInvalidPeriod", c.name, c.startDate, c.endDate, err)
		}
	}
}
