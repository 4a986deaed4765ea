// Package statementservice manages business logic layer of customer statements.
package statementservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/trade-ledger/internal/domain"
	"github.com/go-petr/trade-ledger/pkg/moneypkg"
)

// Client provides remote boundary interface needed by statement service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package statementservice
type Client interface {
	CustomerStatement(ctx context.Context, organizationID string, from, to time.Time, customerID string) (domain.Statement, error)
}

// Query holds the statement filters. It is validated before any network
// call is made.
type Query struct {
	From       time.Time `validate:"required"`
	To         time.Time `validate:"required"`
	CustomerID string    `validate:"required"`
}

// Line is one display-ready statement row. Debit or Credit holds the
// formatted amount depending on the entry polarity, the other side "-".
type Line struct {
	Entry   domain.LedgerEntry
	Debit   string
	Credit  string
	Balance string
}

// View is a display-ready customer statement.
type View struct {
	OpeningBalance string
	Lines          []Line
}

// Service facilitates statement service layer logic.
type Service struct {
	client   Client
	validate *validator.Validate
}

// New returns statement service struct to manage statement bussines logic.
func New(c Client) *Service {
	v := validator.New()
	v.RegisterStructValidation(validQuery, Query{})

	return &Service{client: c, validate: v}
}

func validQuery(sl validator.StructLevel) {
	q := sl.Current().Interface().(Query)
	if !q.From.IsZero() && !q.To.IsZero() && q.From.After(q.To) {
		sl.ReportError(q.To, "To", "To", "daterange", "")
	}
}

// ValidateQuery checks the statement filters without fetching anything.
func (s *Service) ValidateQuery(q Query) error {
	err := s.validate.Struct(q)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			switch {
			case fe.Tag() == "daterange":
				return domain.ErrInvalidDateRange
			case fe.Field() == "CustomerID":
				return domain.ErrCustomerRequired
			}
		}
	}

	return err
}

// RunningBalances computes the balance after each entry is applied, in
// input order, seeded from the opening balance. The signed arithmetic is
// DEBIT-positive. It fails closed: one malformed entry rejects the whole
// computation and the error names the offending index.
func RunningBalances(entries []domain.LedgerEntry, opening domain.OpeningBalance) ([]decimal.Decimal, error) {
	previous, err := signedAmount(opening.Amount, opening.Type)
	if err != nil {
		return nil, fmt.Errorf("opening balance: %w", err)
	}

	balances := make([]decimal.Decimal, 0, len(entries))

	for i, entry := range entries {
		delta, err := signedAmount(entry.Amount, entry.EntryType)
		if err != nil {
			return nil, &domain.MalformedEntryError{Index: i, Cause: err}
		}

		previous = previous.Add(delta)
		balances = append(balances, previous)
	}

	return balances, nil
}

func signedAmount(amount string, entryType domain.EntryType) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Decimal{}, err
	}

	switch entryType {
	case domain.Debit:
		return d, nil
	case domain.Credit:
		return d.Neg(), nil
	}

	return decimal.Decimal{}, fmt.Errorf("unrecognized entry type %q", entryType)
}

// Statement validates the query, fetches the raw statement and renders
// the display-ready view with running balances.
func (s *Service) Statement(ctx context.Context, organizationID string, q Query) (View, error) {
	l := zerolog.Ctx(ctx)

	if err := s.ValidateQuery(q); err != nil {
		l.Info().Err(err).Send()
		return View{}, err
	}

	statement, err := s.client.CustomerStatement(ctx, organizationID, q.From, q.To, q.CustomerID)
	if err != nil {
		l.Error().Err(err).Send()
		return View{}, err
	}

	return Render(statement)
}

// Render turns a raw statement into a display-ready view. Rendering is
// all or nothing: a malformed entry blocks the whole table rather than
// leaving a partially filled balance column.
func Render(statement domain.Statement) (View, error) {
	balances, err := RunningBalances(statement.Entries, statement.Opening)
	if err != nil {
		return View{}, err
	}

	opening, err := signedAmount(statement.Opening.Amount, statement.Opening.Type)
	if err != nil {
		return View{}, fmt.Errorf("opening balance: %w", err)
	}

	view := View{
		OpeningBalance: moneypkg.FormatBalance(opening),
		Lines:          make([]Line, 0, len(statement.Entries)),
	}

	for i, entry := range statement.Entries {
		amount, err := decimal.NewFromString(entry.Amount)
		if err != nil {
			return View{}, &domain.MalformedEntryError{Index: i, Cause: err}
		}

		line := Line{
			Entry:   entry,
			Debit:   "-",
			Credit:  "-",
			Balance: moneypkg.FormatBalance(balances[i]),
		}

		if entry.EntryType == domain.Debit {
			line.Debit = moneypkg.Format(amount)
		} else {
			line.Credit = moneypkg.Format(amount)
		}

		view.Lines = append(view.Lines, line)
	}

	return view, nil
}
