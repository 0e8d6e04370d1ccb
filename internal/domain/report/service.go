package report

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidDateRange is returned for malformed start/end dates.
var ErrInvalidDateRange = errors.New("invalid date format, expected YYYY-MM-DD")

// Buckets holds one collection's counts grouped three ways.
type Buckets struct {
	DateWise  map[string]int `json:"dateWise"`
	MonthWise map[string]int `json:"monthWise"`
	WeekWise  map[string]int `json:"weekWise"`
}

// Summary carries overall totals alongside the detailed buckets.
type Summary struct {
	TotalAppointments int `json:"totalAppointments"`
	TotalPayments     int `json:"totalPayments"`
	TotalReviews      int `json:"totalReviews"`
}

// Report is the full activity report payload.
type Report struct {
	Summary  Summary `json:"reportSummary"`
	Detailed struct {
		Appointments *Buckets `json:"appointments"`
		Payments     *Buckets `json:"payments"`
		Reviews      *Buckets `json:"reviews"`
	} `json:"detailedReport"`
}

// Source provides creation timestamps per collection.
type Source interface {
	AppointmentTimes(ctx context.Context, start, end *time.Time) ([]time.Time, error)
	PaymentTimes(ctx context.Context, start, end *time.Time) ([]time.Time, error)
	ReviewTimes(ctx context.Context, start, end *time.Time) ([]time.Time, error)
}

// Service builds activity reports.
type Service struct {
	source Source
}

// NewService creates the report service.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Generate builds the report for an optional inclusive date range. Both
// bounds must be given together; with neither, the report covers all time.
func (s *Service) Generate(ctx context.Context, startDate, endDate string) (*Report, error) {
	var start, end *time.Time
	if startDate != "" && endDate != "" {
		from, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		to, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		// Inclusive end: extend to the last instant of the end day.
		to = to.Add(24*time.Hour - time.Nanosecond)
		start, end = &from, &to
	}

	appointments, err := s.source.AppointmentTimes(ctx, start, end)
	if err != nil {
		return nil, err
	}
	payments, err := s.source.PaymentTimes(ctx, start, end)
	if err != nil {
		return nil, err
	}
	reviews, err := s.source.ReviewTimes(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Summary: Summary{
			TotalAppointments: len(appointments),
			TotalPayments:     len(payments),
			TotalReviews:      len(reviews),
		},
	}
	report.Detailed.Appointments = Bucketize(appointments)
	report.Detailed.Payments = Bucketize(payments)
	report.Detailed.Reviews = Bucketize(reviews)
	return report, nil
}

// Bucketize groups timestamps by date (YYYY-MM-DD), month (YYYY-M, no zero
// padding) and week (YYYY-WW).
func Bucketize(times []time.Time) *Buckets {
	b := &Buckets{
		DateWise:  make(map[string]int),
		MonthWise: make(map[string]int),
		WeekWise:  make(map[string]int),
	}
	for _, t := range times {
		t = t.UTC()
		b.DateWise[t.Format("2006-01-02")]++
		b.MonthWise[fmt.Sprintf("%d-%d", t.Year(), int(t.Month()))]++
		b.WeekWise[fmt.Sprintf("%d-%d", t.Year(), weekNumber(t))]++
	}
	return b
}

// weekNumber counts weeks from January 1st, offset by the weekday January
// 1st falls on. This intentionally differs from ISO-8601 week numbering.
func weekNumber(t time.Time) int {
	startOfYear := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	pastDays := t.Sub(startOfYear).Hours() / 24
	return int(math.Ceil((pastDays + float64(startOfYear.Weekday()) + 1) / 7))
}
