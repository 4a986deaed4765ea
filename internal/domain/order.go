package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderNotFound indicates that the order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrUnknownListTitle indicates an order list the client does not recognize.
	ErrUnknownListTitle = errors.New("unknown order list title")
	// ErrNonPositiveWeight indicates a sale or purchase line without a positive weight.
	ErrNonPositiveWeight = errors.New("weight must be positive")
	// ErrNonPositivePrice indicates a sale or purchase line without a positive price.
	ErrNonPositivePrice = errors.New("price must be positive")
	// ErrNegativeAmount indicates negative amount.
	ErrNegativeAmount = errors.New("negative amount")
)

// SaleItem is a single sale line attached to an order.
type SaleItem struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Box          int             `json:"box"`
	Weight       decimal.Decimal `json:"weight"`
	Price        decimal.Decimal `json:"price"`
	Amount       decimal.Decimal `json:"amount"`
	Paid         decimal.Decimal `json:"paid"`
}

// PurchaseItem is a single purchase line attached to an order.
type PurchaseItem struct {
	ID           string          `json:"id"`
	SupplierID   string          `json:"supplierId"`
	SupplierName string          `json:"supplierName"`
	Box          int             `json:"box"`
	Weight       decimal.Decimal `json:"weight"`
	Price        decimal.Decimal `json:"price"`
	Amount       decimal.Decimal `json:"amount"`
}

// ExpenseItem is a single free-entered expense line attached to an order.
type ExpenseItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Order holds one order with its sale, purchase and expense lines already
// decoded into canonical collections.
type Order struct {
	ID        string         `json:"id"`
	Date      time.Time      `json:"date"`
	Product   string         `json:"product"`
	Vehicle   string         `json:"vehicle"`
	Sales     []SaleItem     `json:"sales"`
	Purchases []PurchaseItem `json:"purchases"`
	Expenses  []ExpenseItem  `json:"expenses"`
}

// CreateSaleParams holds the fields needed to create or edit a sale line.
// Amount is derived by the service, never supplied by the caller.
type CreateSaleParams struct {
	ListID     string          `json:"listId"`
	CustomerID string          `json:"customerId"`
	Box        int             `json:"box"`
	Weight     decimal.Decimal `json:"weight"`
	Price      decimal.Decimal `json:"price"`
	Paid       decimal.Decimal `json:"paid"`
}

// CreatePurchaseParams holds the fields needed to create or edit a purchase line.
type CreatePurchaseParams struct {
	ListID     string          `json:"listId"`
	SupplierID string          `json:"supplierId"`
	Box        int             `json:"box"`
	Weight     decimal.Decimal `json:"weight"`
	Price      decimal.Decimal `json:"price"`
}

// CreateExpenseParams holds the fields needed to create or edit an expense line.
// The amount is free-entered, not derived.
type CreateExpenseParams struct {
	ListID      string          `json:"listId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// OrderSummary holds the rollups over one order's line items. All values
// are signed; WeightDifference is sales minus purchase and NetProfit may
// be negative.
type OrderSummary struct {
	TotalSalesWeight    decimal.Decimal
	TotalSalesAmount    decimal.Decimal
	TotalPaid           decimal.Decimal
	TotalPurchaseWeight decimal.Decimal
	TotalPurchaseAmount decimal.Decimal
	TotalExpenseAmount  decimal.Decimal
	WeightDifference    decimal.Decimal
	NetProfit           decimal.Decimal
}
