package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/trade-ledger/internal/domain"
	"github.com/go-petr/trade-ledger/pkg/moneypkg"
)

// The backend names each list's item array after the item type instead
// of using one field. The irregularity stays inside this package.
const (
	listTitleSales    = "Sales"
	listTitlePurchase = "Purchase"
	listTitleExpense  = "Expense"
)

type partyRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type saleCard struct {
	ID       string          `json:"id"`
	Customer partyRef        `json:"customer"`
	Box      int             `json:"box"`
	Weight   decimal.Decimal `json:"weight"`
	Price    decimal.Decimal `json:"price"`
	Amount   decimal.Decimal `json:"amount"`
	Paid     decimal.Decimal `json:"paid"`
}

func (c saleCard) item() domain.SaleItem {
	return domain.SaleItem{
		ID:           c.ID,
		CustomerID:   c.Customer.ID,
		CustomerName: c.Customer.Name,
		Box:          c.Box,
		Weight:       c.Weight,
		Price:        c.Price,
		Amount:       c.Amount,
		Paid:         c.Paid,
	}
}

type purchaseCard struct {
	ID       string          `json:"id"`
	Supplier partyRef        `json:"supplier"`
	Box      int             `json:"box"`
	Weight   decimal.Decimal `json:"weight"`
	Price    decimal.Decimal `json:"price"`
	Amount   decimal.Decimal `json:"amount"`
}

func (c purchaseCard) item() domain.PurchaseItem {
	return domain.PurchaseItem{
		ID:           c.ID,
		SupplierID:   c.Supplier.ID,
		SupplierName: c.Supplier.Name,
		Box:          c.Box,
		Weight:       c.Weight,
		Price:        c.Price,
		Amount:       c.Amount,
	}
}

type expenseCard struct {
	ID          string          `json:"id"`
	ExpanceName string          `json:"expanceName"`
	Amount      decimal.Decimal `json:"amount"`
}

func (c expenseCard) item() domain.ExpenseItem {
	return domain.ExpenseItem{
		ID:          c.ID,
		Description: c.ExpanceName,
		Amount:      c.Amount,
	}
}

type orderList struct {
	Title        string         `json:"title"`
	Card         []saleCard     `json:"card"`
	PurchaseCard []purchaseCard `json:"PurchaseCard"`
	ExpanceCard  []expenseCard  `json:"ExpanceCard"`
}

type orderPayload struct {
	ID      string      `json:"id"`
	Date    time.Time   `json:"date"`
	Product partyRef    `json:"product"`
	Vehicle partyRef    `json:"vehicle"`
	Lists   []orderList `json:"lists"`
}

// Order fetches one order and flattens its titled lists into canonical
// sale, purchase and expense collections.
func (c *Client) Order(ctx context.Context, organizationID, orderID string) (domain.Order, error) {
	raw, err := c.get(ctx, orgPath(organizationID, "/order/"+url.PathEscape(orderID)), nil)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return domain.Order{}, domain.ErrOrderNotFound
		}

		return domain.Order{}, err
	}

	var payload orderPayload
	if err := decodeBody(raw, &payload); err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		ID:      payload.ID,
		Date:    payload.Date,
		Product: payload.Product.Name,
		Vehicle: payload.Vehicle.Name,
	}

	for _, list := range payload.Lists {
		switch list.Title {
		case listTitleSales:
			for _, card := range list.Card {
				order.Sales = append(order.Sales, card.item())
			}
		case listTitlePurchase:
			for _, card := range list.PurchaseCard {
				order.Purchases = append(order.Purchases, card.item())
			}
		case listTitleExpense:
			for _, card := range list.ExpanceCard {
				order.Expenses = append(order.Expenses, card.item())
			}
		default:
			return domain.Order{}, fmt.Errorf("%w: %q", domain.ErrUnknownListTitle, list.Title)
		}
	}

	return order, nil
}

// saleBody builds the sale mutation payload. The backend expects the
// derived amount alongside price and weight.
func saleBody(arg domain.CreateSaleParams) map[string]any {
	return map[string]any{
		"listId":     arg.ListID,
		"customerId": arg.CustomerID,
		"box":        arg.Box,
		"weight":     arg.Weight,
		"price":      arg.Price,
		"amount":     moneypkg.Round2(arg.Price.Mul(arg.Weight)),
		"paid":       arg.Paid,
	}
}

func purchaseBody(arg domain.CreatePurchaseParams) map[string]any {
	return map[string]any{
		"listId":     arg.ListID,
		"supplierId": arg.SupplierID,
		"box":        arg.Box,
		"weight":     arg.Weight,
		"price":      arg.Price,
		"amount":     moneypkg.Round2(arg.Price.Mul(arg.Weight)),
	}
}
