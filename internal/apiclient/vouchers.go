package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-petr/trade-ledger/internal/domain"
)

// The backend spells the receipt resource "reciept"; the misspelling is
// part of the wire contract and stays inside this package.
const receiptResource = "/reciept"

// Payment fetches one payment voucher.
func (c *Client) Payment(ctx context.Context, organizationID, paymentID string) (domain.PaymentVoucher, error) {
	raw, err := c.get(ctx, orgPath(organizationID, "/payment/"+url.PathEscape(paymentID)), nil)
	if err != nil {
		return domain.PaymentVoucher{}, err
	}

	var voucher domain.PaymentVoucher
	if err := decodeBody(raw, &voucher); err != nil {
		return domain.PaymentVoucher{}, err
	}

	return voucher, nil
}

// CreatePayment creates a payment voucher on the backend.
func (c *Client) CreatePayment(ctx context.Context, organizationID string, arg domain.CreatePaymentParams) (domain.PaymentVoucher, error) {
	var voucher domain.PaymentVoucher
	err := c.send(ctx, http.MethodPost, orgPath(organizationID, "/payment"), arg, &voucher)
	if err != nil {
		return domain.PaymentVoucher{}, err
	}

	return voucher, nil
}

// UpdatePayment edits a payment voucher on the backend.
func (c *Client) UpdatePayment(ctx context.Context, organizationID, paymentID string, arg domain.CreatePaymentParams) (domain.PaymentVoucher, error) {
	var voucher domain.PaymentVoucher
	err := c.send(ctx, http.MethodPatch, orgPath(organizationID, "/payment/"+url.PathEscape(paymentID)), arg, &voucher)
	if err != nil {
		return domain.PaymentVoucher{}, err
	}

	return voucher, nil
}

// Receipt fetches one receipt voucher.
func (c *Client) Receipt(ctx context.Context, organizationID, receiptID string) (domain.ReceiptVoucher, error) {
	raw, err := c.get(ctx, orgPath(organizationID, receiptResource+"/"+url.PathEscape(receiptID)), nil)
	if err != nil {
		return domain.ReceiptVoucher{}, err
	}

	var voucher domain.ReceiptVoucher
	if err := decodeBody(raw, &voucher); err != nil {
		return domain.ReceiptVoucher{}, err
	}

	return voucher, nil
}

// CreateReceipt creates a receipt voucher on the backend.
func (c *Client) CreateReceipt(ctx context.Context, organizationID string, arg domain.CreateReceiptParams) (domain.ReceiptVoucher, error) {
	var voucher domain.ReceiptVoucher
	err := c.send(ctx, http.MethodPost, orgPath(organizationID, receiptResource), arg, &voucher)
	if err != nil {
		return domain.ReceiptVoucher{}, err
	}

	return voucher, nil
}

// UpdateReceipt edits a receipt voucher on the backend.
func (c *Client) UpdateReceipt(ctx context.Context, organizationID, receiptID string, arg domain.CreateReceiptParams) (domain.ReceiptVoucher, error) {
	var voucher domain.ReceiptVoucher
	err := c.send(ctx, http.MethodPatch, orgPath(organizationID, receiptResource+"/"+url.PathEscape(receiptID)), arg, &voucher)
	if err != nil {
		return domain.ReceiptVoucher{}, err
	}

	return voucher, nil
}

// DeleteReceipt deletes one receipt voucher.
func (c *Client) DeleteReceipt(ctx context.Context, organizationID, receiptID string) error {
	return c.send(ctx, http.MethodDelete, orgPath(organizationID, receiptResource+"/"+url.PathEscape(receiptID)), nil, nil)
}

// PettyCashVoucher fetches one petty cash voucher.
func (c *Client) PettyCashVoucher(ctx context.Context, organizationID, voucherID string) (domain.PettyCashVoucher, error) {
	raw, err := c.get(ctx, orgPath(organizationID, "/petty-cash/"+url.PathEscape(voucherID)), nil)
	if err != nil {
		return domain.PettyCashVoucher{}, err
	}

	var payload voucherPayload
	if err := decodeBody(raw, &payload); err != nil {
		return domain.PettyCashVoucher{}, err
	}

	return payload.voucher(), nil
}

// PettyMasters lists the organization's petty cash masters.
func (c *Client) PettyMasters(ctx context.Context, organizationID string) ([]domain.MasterItem, error) {
	return c.masterList(ctx, organizationID, "/petty-master")
}

// ExpenseCategories lists the organization's expense categories.
func (c *Client) ExpenseCategories(ctx context.Context, organizationID string) ([]domain.MasterItem, error) {
	return c.masterList(ctx, organizationID, "/expance")
}

func (c *Client) masterList(ctx context.Context, organizationID, path string) ([]domain.MasterItem, error) {
	raw, err := c.get(ctx, orgPath(organizationID, path), nil)
	if err != nil {
		return nil, err
	}

	var items []domain.MasterItem
	if err := decodeBody(raw, &items); err != nil {
		return nil, err
	}

	return items, nil
}
