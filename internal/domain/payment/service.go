package payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/snaphire/snaphire-api/internal/pkg/period"
)

// EarningsReport summarises a photographer's payments for dashboards.
type EarningsReport struct {
	TotalPayments     int                `json:"total_payments"`
	TotalEarnings     float64            `json:"total_earnings"`
	AveragePerPayment float64            `json:"average_per_payment"`
	ByDate            map[string]float64 `json:"by_date"`
	ByClient          map[string]float64 `json:"by_client"`
	ByStatus          map[string]float64 `json:"by_status"`
	ByMethod          map[string]float64 `json:"by_method"`
}

// Lister is the payment read surface the earnings view needs.
type Lister interface {
	ListByPhotographer(ctx context.Context, photographerID uuid.UUID, start, end *time.Time) ([]WithClient, error)
}

// Service computes photographer earnings views.
type Service struct {
	repo Lister
}

// NewService creates the payment service.
func NewService(repo Lister) *Service {
	return &Service{repo: repo}
}

// Earnings returns a photographer's payment records for the requested window
// together with aggregated graph data.
func (s *Service) Earnings(ctx context.Context, photographerID uuid.UUID, window, startDate, endDate string) ([]WithClient, *EarningsReport, error) {
	start, end, err := period.Range(window, startDate, endDate, time.Now())
	if err != nil {
		return nil, nil, err
	}

	payments, err := s.repo.ListByPhotographer(ctx, photographerID, start, end)
	if err != nil {
		return nil, nil, err
	}

	report := &EarningsReport{
		TotalPayments: len(payments),
		ByDate:        make(map[string]float64),
		ByClient:      make(map[string]float64),
		ByStatus:      make(map[string]float64),
		ByMethod:      make(map[string]float64),
	}

	for i := range payments {
		p := &payments[i]
		report.TotalEarnings += p.Amount

		date := p.CreatedAt.Format("2006-01-02")
		report.ByDate[date] += p.Amount
		report.ByClient[p.ClientName] += p.Amount
		report.ByStatus[string(p.Status)] += p.Amount
		report.ByMethod[p.PaymentMethod] += p.Amount
	}

	if len(payments) > 0 {
		report.AveragePerPayment = report.TotalEarnings / float64(len(payments))
	}

	return payments, report, nil
}
