package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrSupplierRequired indicates that no supplier was selected for a payment voucher.
	ErrSupplierRequired = errors.New("supplier is required")
	// ErrPaymentTypeInvalid indicates an unsupported voucher payment type.
	ErrPaymentTypeInvalid = errors.New("payment type must be Cash, Bank or G-pay")
	// ErrNonPositiveAmount indicates a voucher without a positive amount.
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// PettyCashVoucher is a single petty cash payment record.
type PettyCashVoucher struct {
	ID          string    `json:"id"`
	MasterName  string    `json:"masterName"`
	Amount      string    `json:"amount"` // decimal string
	Date        time.Time `json:"date"`
	PaymentType string    `json:"payment_type"`
	Description string    `json:"description"`
}

// PaymentVoucher is money paid out to a supplier.
type PaymentVoucher struct {
	ID          string          `json:"id"`
	SupplierID  string          `json:"supplierId"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	PaymentType string          `json:"payment_type"`
	Description string          `json:"description"`
}

// ReceiptVoucher is money received from a customer.
type ReceiptVoucher struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	PaymentType string          `json:"payment_type"`
	Description string          `json:"description"`
}

// CreatePaymentParams holds the fields needed to create or edit a payment voucher.
type CreatePaymentParams struct {
	SupplierID  string          `json:"supplierId"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	PaymentType string          `json:"payment_type"`
	Description string          `json:"description"`
}

// CreateReceiptParams holds the fields needed to create or edit a receipt voucher.
type CreateReceiptParams struct {
	CustomerID  string          `json:"customerId"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	PaymentType string          `json:"payment_type"`
	Description string          `json:"description"`
}

// MasterItem is one entry of a form-support master list, such as petty
// cash masters or expense categories.
type MasterItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
