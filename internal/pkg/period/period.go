// Package period resolves named reporting periods to time windows.
package period

import (
	"errors"
	"time"
)

// ErrInvalidPeriod is returned for unknown period names or an incomplete
// custom range.
var ErrInvalidPeriod = errors.New("invalid period, allowed values: daily, weekly, monthly, custom")

// Range resolves a named period to a half-open [start, end) window.
// Weeks start on Sunday. An empty period means no filtering.
func Range(name, startDate, endDate string, now time.Time) (*time.Time, *time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch name {
	case "", "all":
		return nil, nil, nil
	case "daily":
		end := today.AddDate(0, 0, 1)
		return &today, &end, nil
	case "weekly":
		start := today.AddDate(0, 0, -int(today.Weekday()))
		end := start.AddDate(0, 0, 7)
		return &start, &end, nil
	case "monthly":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0)
		return &start, &end, nil
	case "custom":
		if startDate == "" || endDate == "" {
			return nil, nil, ErrInvalidPeriod
		}
		start, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return nil, nil, ErrInvalidPeriod
		}
		endDay, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return nil, nil, ErrInvalidPeriod
		}
		end := endDay.AddDate(0, 0, 1)
		return &start, &end, nil
	default:
		return nil, nil, ErrInvalidPeriod
	}
}
