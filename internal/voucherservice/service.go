// Package voucherservice manages business logic layer of payment,
// receipt and petty cash vouchers.
package voucherservice

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/trade-ledger/internal/domain"
	"github.com/go-petr/trade-ledger/internal/listservice"
	"github.com/go-petr/trade-ledger/pkg/pagepkg"
)

// Client provides remote boundary interface needed by voucher service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package voucherservice
type Client interface {
	Payment(ctx context.Context, organizationID, paymentID string) (domain.PaymentVoucher, error)
	CreatePayment(ctx context.Context, organizationID string, arg domain.CreatePaymentParams) (domain.PaymentVoucher, error)
	UpdatePayment(ctx context.Context, organizationID, paymentID string, arg domain.CreatePaymentParams) (domain.PaymentVoucher, error)

	Receipt(ctx context.Context, organizationID, receiptID string) (domain.ReceiptVoucher, error)
	CreateReceipt(ctx context.Context, organizationID string, arg domain.CreateReceiptParams) (domain.ReceiptVoucher, error)
	UpdateReceipt(ctx context.Context, organizationID, receiptID string, arg domain.CreateReceiptParams) (domain.ReceiptVoucher, error)
	DeleteReceipt(ctx context.Context, organizationID, receiptID string) error

	PettyCash(ctx context.Context, organizationID string, page, limit int) (pagepkg.Page[domain.PettyCashVoucher], error)
	PettyCashVoucher(ctx context.Context, organizationID, voucherID string) (domain.PettyCashVoucher, error)

	PettyMasters(ctx context.Context, organizationID string) ([]domain.MasterItem, error)
	ExpenseCategories(ctx context.Context, organizationID string) ([]domain.MasterItem, error)
}

// voucherFields is the validated shape shared by payment and receipt
// params. PartyID is the supplier for payments, the customer for receipts.
type voucherFields struct {
	PartyID     string `validate:"required"`
	PaymentType string `validate:"required,oneof=Cash Bank G-pay"`
	Amount      decimal.Decimal
}

// Service facilitates voucher service layer logic.
type Service struct {
	client   Client
	validate *validator.Validate
}

// New returns voucher service struct to manage voucher bussines logic.
func New(c Client) *Service {
	return &Service{client: c, validate: validator.New()}
}

func (s *Service) validVoucher(ctx context.Context, f voucherFields, missingParty error) error {
	l := zerolog.Ctx(ctx)

	if err := s.validate.Struct(f); err != nil {
		var ve validator.ValidationErrors
		mapped := err

		if errors.As(err, &ve) {
			switch ve[0].Field() {
			case "PartyID":
				mapped = missingParty
			case "PaymentType":
				mapped = domain.ErrPaymentTypeInvalid
			}
		}

		l.Info().Err(mapped).Send()

		return mapped
	}

	if f.Amount.LessThanOrEqual(decimal.Zero) {
		l.Info().Err(domain.ErrNonPositiveAmount).Send()
		return domain.ErrNonPositiveAmount
	}

	return nil
}

// Payment fetches one payment voucher.
func (s *Service) Payment(ctx context.Context, organizationID, paymentID string) (domain.PaymentVoucher, error) {
	return s.client.Payment(ctx, organizationID, paymentID)
}

// CreatePayment validates and creates a payment voucher.
func (s *Service) CreatePayment(ctx context.Context, organizationID string, arg domain.CreatePaymentParams) (domain.PaymentVoucher, error) {
	fields := voucherFields{PartyID: arg.SupplierID, PaymentType: arg.PaymentType, Amount: arg.Amount}
	if err := s.validVoucher(ctx, fields, domain.ErrSupplierRequired); err != nil {
		return domain.PaymentVoucher{}, err
	}

	return s.client.CreatePayment(ctx, organizationID, arg)
}

// UpdatePayment validates and edits a payment voucher.
func (s *Service) UpdatePayment(ctx context.Context, organizationID, paymentID string, arg domain.CreatePaymentParams) (domain.PaymentVoucher, error) {
	fields := voucherFields{PartyID: arg.SupplierID, PaymentType: arg.PaymentType, Amount: arg.Amount}
	if err := s.validVoucher(ctx, fields, domain.ErrSupplierRequired); err != nil {
		return domain.PaymentVoucher{}, err
	}

	return s.client.UpdatePayment(ctx, organizationID, paymentID, arg)
}

// Receipt fetches one receipt voucher.
func (s *Service) Receipt(ctx context.Context, organizationID, receiptID string) (domain.ReceiptVoucher, error) {
	return s.client.Receipt(ctx, organizationID, receiptID)
}

// CreateReceipt validates and creates a receipt voucher.
func (s *Service) CreateReceipt(ctx context.Context, organizationID string, arg domain.CreateReceiptParams) (domain.ReceiptVoucher, error) {
	fields := voucherFields{PartyID: arg.CustomerID, PaymentType: arg.PaymentType, Amount: arg.Amount}
	if err := s.validVoucher(ctx, fields, domain.ErrCustomerRequired); err != nil {
		return domain.ReceiptVoucher{}, err
	}

	return s.client.CreateReceipt(ctx, organizationID, arg)
}

// UpdateReceipt validates and edits a receipt voucher.
func (s *Service) UpdateReceipt(ctx context.Context, organizationID, receiptID string, arg domain.CreateReceiptParams) (domain.ReceiptVoucher, error) {
	fields := voucherFields{PartyID: arg.CustomerID, PaymentType: arg.PaymentType, Amount: arg.Amount}
	if err := s.validVoucher(ctx, fields, domain.ErrCustomerRequired); err != nil {
		return domain.ReceiptVoucher{}, err
	}

	return s.client.UpdateReceipt(ctx, organizationID, receiptID, arg)
}

// DeleteReceipt deletes one receipt voucher.
func (s *Service) DeleteReceipt(ctx context.Context, organizationID, receiptID string) error {
	return s.client.DeleteReceipt(ctx, organizationID, receiptID)
}

// PettyCashVoucher fetches one petty cash voucher.
func (s *Service) PettyCashVoucher(ctx context.Context, organizationID, voucherID string) (domain.PettyCashVoucher, error) {
	return s.client.PettyCashVoucher(ctx, organizationID, voucherID)
}

// PettyCashController returns a paginated list controller over the
// organization's petty cash vouchers.
func (s *Service) PettyCashController(organizationID string, pageSize int) *listservice.Controller[domain.PettyCashVoucher] {
	key := func(v domain.PettyCashVoucher) string { return v.ID }

	fetch := func(ctx context.Context, page, limit int) (pagepkg.Page[domain.PettyCashVoucher], error) {
		return s.client.PettyCash(ctx, organizationID, page, limit)
	}

	return listservice.New(pageSize, key, fetch)
}

// PettyMasters lists the organization's petty cash masters for form selection.
func (s *Service) PettyMasters(ctx context.Context, organizationID string) ([]domain.MasterItem, error) {
	return s.client.PettyMasters(ctx, organizationID)
}

// ExpenseCategories lists the organization's expense categories for form selection.
func (s *Service) ExpenseCategories(ctx context.Context, organizationID string) ([]domain.MasterItem, error) {
	return s.client.ExpenseCategories(ctx, organizationID)
}
