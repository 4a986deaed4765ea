// Package reportservice manages business logic layer of organization reports.
package reportservice

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/trade-ledger/internal/domain"
)

// Client provides remote boundary interface needed by report service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package reportservice
type Client interface {
	SupplierOutstanding(ctx context.Context, organizationID string) ([]domain.OutstandingRow, error)
}

// Row is one display-ready outstanding report line.
type Row struct {
	Name    string
	Balance decimal.Decimal
}

// Report holds the supplier outstanding rows sorted by balance
// descending, with their grand total.
type Report struct {
	Rows  []Row
	Total decimal.Decimal
}

// Service facilitates report service layer logic.
type Service struct {
	client Client
}

// New returns report service struct to manage report bussines logic.
func New(c Client) *Service {
	return &Service{client: c}
}

// SupplierOutstanding fetches and aggregates the supplier outstanding
// report. A malformed balance rejects the whole report and names the
// offending row.
func (s *Service) SupplierOutstanding(ctx context.Context, organizationID string) (Report, error) {
	l := zerolog.Ctx(ctx)

	raw, err := s.client.SupplierOutstanding(ctx, organizationID)
	if err != nil {
		l.Error().Err(err).Send()
		return Report{}, err
	}

	report := Report{Rows: make([]Row, 0, len(raw))}

	for i, r := range raw {
		balance, err := decimal.NewFromString(r.Balance)
		if err != nil {
			return Report{}, &domain.MalformedRowError{Index: i, Cause: err}
		}

		report.Rows = append(report.Rows, Row{Name: r.Name, Balance: balance})
		report.Total = report.Total.Add(balance)
	}

	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].Balance.GreaterThan(report.Rows[j].Balance)
	})

	return report, nil
}
