// Package orderservice manages business logic layer of orders: summary
// rollups and line item mutations.
package orderservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/trade-ledger/internal/domain"
	"github.com/go-petr/trade-ledger/pkg/moneypkg"
)

// Client provides remote boundary interface needed by order service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package orderservice
type Client interface {
	Order(ctx context.Context, organizationID, orderID string) (domain.Order, error)

	CreateSale(ctx context.Context, organizationID string, arg domain.CreateSaleParams) (domain.SaleItem, error)
	UpdateSale(ctx context.Context, organizationID, saleID string, arg domain.CreateSaleParams) (domain.SaleItem, error)
	DeleteSale(ctx context.Context, organizationID, saleID string) error

	CreatePurchase(ctx context.Context, organizationID string, arg domain.CreatePurchaseParams) (domain.PurchaseItem, error)
	UpdatePurchase(ctx context.Context, organizationID, purchaseID string, arg domain.CreatePurchaseParams) (domain.PurchaseItem, error)
	DeletePurchase(ctx context.Context, organizationID, purchaseID string) error

	CreateExpense(ctx context.Context, organizationID string, arg domain.CreateExpenseParams) (domain.ExpenseItem, error)
	UpdateExpense(ctx context.Context, organizationID, expenseID string, arg domain.CreateExpenseParams) (domain.ExpenseItem, error)
	DeleteExpense(ctx context.Context, organizationID, expenseID string) error
}

// Service facilitates order service layer logic.
type Service struct {
	client Client
}

// New returns order service struct to manage order bussines logic.
func New(c Client) *Service {
	return &Service{client: c}
}

// LineAmount derives a sale or purchase line amount from its rate and
// weight, rounded to 2 decimal places.
func LineAmount(price, weight decimal.Decimal) decimal.Decimal {
	return moneypkg.Round2(price.Mul(weight))
}

// Summarize computes the rollups over one order's line items. Empty
// collections contribute zero to every sum they feed.
func Summarize(order domain.Order) domain.OrderSummary {
	var s domain.OrderSummary

	for _, sale := range order.Sales {
		s.TotalSalesWeight = s.TotalSalesWeight.Add(sale.Weight)
		s.TotalSalesAmount = s.TotalSalesAmount.Add(sale.Amount)
		s.TotalPaid = s.TotalPaid.Add(sale.Paid)
	}

	for _, purchase := range order.Purchases {
		s.TotalPurchaseWeight = s.TotalPurchaseWeight.Add(purchase.Weight)
		s.TotalPurchaseAmount = s.TotalPurchaseAmount.Add(purchase.Amount)
	}

	for _, expense := range order.Expenses {
		s.TotalExpenseAmount = s.TotalExpenseAmount.Add(expense.Amount)
	}

	// Sign conventions preserved as observed upstream: a positive
	// WeightDifference means more was sold than purchased.
	s.WeightDifference = s.TotalSalesWeight.Sub(s.TotalPurchaseWeight)
	s.NetProfit = s.TotalSalesAmount.Sub(s.TotalPurchaseAmount).Sub(s.TotalExpenseAmount)

	return s
}

// Get fetches one order with its decoded line item collections.
func (s *Service) Get(ctx context.Context, organizationID, orderID string) (domain.Order, error) {
	return s.client.Order(ctx, organizationID, orderID)
}

// Summary fetches one order and computes its rollups.
func (s *Service) Summary(ctx context.Context, organizationID, orderID string) (domain.OrderSummary, error) {
	order, err := s.client.Order(ctx, organizationID, orderID)
	if err != nil {
		return domain.OrderSummary{}, err
	}

	return Summarize(order), nil
}

func validLine(ctx context.Context, weight, price decimal.Decimal) error {
	l := zerolog.Ctx(ctx)

	if weight.LessThanOrEqual(decimal.Zero) {
		l.Info().Err(domain.ErrNonPositiveWeight).Send()
		return domain.ErrNonPositiveWeight
	}

	if price.LessThanOrEqual(decimal.Zero) {
		l.Info().Err(domain.ErrNonPositivePrice).Send()
		return domain.ErrNonPositivePrice
	}

	return nil
}

// CreateSale validates and creates a sale line. The returned item carries
// the server-derived fields and is ready to be patched into the local
// collection by the caller.
func (s *Service) CreateSale(ctx context.Context, organizationID string, arg domain.CreateSaleParams) (domain.SaleItem, error) {
	if err := validLine(ctx, arg.Weight, arg.Price); err != nil {
		return domain.SaleItem{}, err
	}

	if arg.Paid.IsNegative() {
		return domain.SaleItem{}, domain.ErrNegativeAmount
	}

	return s.client.CreateSale(ctx, organizationID, arg)
}

// UpdateSale validates and updates a sale line.
func (s *Service) UpdateSale(ctx context.Context, organizationID, saleID string, arg domain.CreateSaleParams) (domain.SaleItem, error) {
	if err := validLine(ctx, arg.Weight, arg.Price); err != nil {
		return domain.SaleItem{}, err
	}

	if arg.Paid.IsNegative() {
		return domain.SaleItem{}, domain.ErrNegativeAmount
	}

	return s.client.UpdateSale(ctx, organizationID, saleID, arg)
}

// DeleteSale deletes a sale line.
func (s *Service) DeleteSale(ctx context.Context, organizationID, saleID string) error {
	return s.client.DeleteSale(ctx, organizationID, saleID)
}

// CreatePurchase validates and creates a purchase line.
func (s *Service) CreatePurchase(ctx context.Context, organizationID string, arg domain.CreatePurchaseParams) (domain.PurchaseItem, error) {
	if err := validLine(ctx, arg.Weight, arg.Price); err != nil {
		return domain.PurchaseItem{}, err
	}

	return s.client.CreatePurchase(ctx, organizationID, arg)
}

// UpdatePurchase validates and updates a purchase line.
func (s *Service) UpdatePurchase(ctx context.Context, organizationID, purchaseID string, arg domain.CreatePurchaseParams) (domain.PurchaseItem, error) {
	if err := validLine(ctx, arg.Weight, arg.Price); err != nil {
		return domain.PurchaseItem{}, err
	}

	return s.client.UpdatePurchase(ctx, organizationID, purchaseID, arg)
}

// DeletePurchase deletes a purchase line.
func (s *Service) DeletePurchase(ctx context.Context, organizationID, purchaseID string) error {
	return s.client.DeletePurchase(ctx, organizationID, purchaseID)
}

// CreateExpense validates and creates an expense line.
func (s *Service) CreateExpense(ctx context.Context, organizationID string, arg domain.CreateExpenseParams) (domain.ExpenseItem, error) {
	if arg.Amount.IsNegative() {
		return domain.ExpenseItem{}, domain.ErrNegativeAmount
	}

	return s.client.CreateExpense(ctx, organizationID, arg)
}

// UpdateExpense validates and updates an expense line.
func (s *Service) UpdateExpense(ctx context.Context, organizationID, expenseID string, arg domain.CreateExpenseParams) (domain.ExpenseItem, error) {
	if arg.Amount.IsNegative() {
		return domain.ExpenseItem{}, domain.ErrNegativeAmount
	}

	return s.client.UpdateExpense(ctx, organizationID, expenseID, arg)
}

// DeleteExpense deletes an expense line.
func (s *Service) DeleteExpense(ctx context.Context, organizationID, expenseID string) error {
	return s.client.DeleteExpense(ctx, organizationID, expenseID)
}
