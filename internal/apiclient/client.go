// Package apiclient manages the remote boundary: it talks to the trade
// ledger REST backend and decodes its irregular response shapes into
// canonical domain types.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/trade-ledger/internal/domain"
	"github.com/go-petr/trade-ledger/internal/middleware"
	"github.com/go-petr/trade-ledger/pkg/configpkg"
	"github.com/go-petr/trade-ledger/pkg/errorspkg"
	"github.com/go-petr/trade-ledger/pkg/pagepkg"
	"github.com/go-petr/trade-ledger/pkg/tokenpkg"
)

var errNotFound = errors.New("not found")

// decodeBody maps an undecodable success body to ErrInternal: the
// backend answered but with something the client cannot make sense of.
func decodeBody(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", errorspkg.ErrInternal, err)
	}

	return nil
}

// Client provides access to the trade ledger backend API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client talking to the given base URL through the given
// http client. Authorization and logging are the transport's concern.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

// NewFromConfig wires the client with the bearer auth and logging
// round trippers.
func NewFromConfig(config configpkg.Config, logger zerolog.Logger, tokens *tokenpkg.Cache) *Client {
	transport := &middleware.LoggingRoundTripper{
		Logger: logger,
		Next:   &middleware.AuthRoundTripper{Tokens: tokens},
	}

	return New(config.APIBaseURL, &http.Client{
		Timeout:   config.HTTPTimeout,
		Transport: transport,
	})
}

// get performs a GET and returns the raw body so list endpoints can run
// the dual-shape page decode on it.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	return c.do(req)
}

// send performs a mutation with a JSON body and decodes the response
// into out when out is not nil.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}

		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	raw, err := c.do(req)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	return decodeBody(raw, out)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorspkg.ErrTransient, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorspkg.ErrTransient, err)
	}

	switch {
	case res.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: %s", errorspkg.ErrTransient, res.Status)
	case res.StatusCode == http.StatusNotFound:
		return nil, errNotFound
	case res.StatusCode >= http.StatusBadRequest:
		var body struct {
			Error string `json:"error"`
		}

		if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
			return nil, errors.New(body.Error)
		}

		return nil, errors.New(res.Status)
	}

	return raw, nil
}

func orgPath(organizationID, rest string) string {
	return "/api/" + url.PathEscape(organizationID) + rest
}

// CustomerStatement fetches the raw ledger statement for one customer
// over a date range.
func (c *Client) CustomerStatement(ctx context.Context, organizationID string, from, to time.Time, customerID string) (domain.Statement, error) {
	query := url.Values{}
	query.Set("from", from.Format(time.RFC3339))
	query.Set("to", to.Format(time.RFC3339))
	query.Set("customerId", customerID)

	raw, err := c.get(ctx, orgPath(organizationID, "/reports/customer-statement"), query)
	if err != nil {
		return domain.Statement{}, err
	}

	var payload struct {
		Entries        []domain.LedgerEntry `json:"entries"`
		OpeningBalance json.Number          `json:"opening_balance"`
		OpeningType    domain.EntryType     `json:"opening_type"`
	}

	if err := decodeBody(raw, &payload); err != nil {
		return domain.Statement{}, err
	}

	opening := payload.OpeningBalance.String()
	if opening == "" {
		opening = "0"
	}

	return domain.Statement{
		Entries: payload.Entries,
		Opening: domain.OpeningBalance{Amount: opening, Type: payload.OpeningType},
	}, nil
}

// SupplierOutstanding fetches the supplier outstanding report rows.
func (c *Client) SupplierOutstanding(ctx context.Context, organizationID string) ([]domain.OutstandingRow, error) {
	raw, err := c.get(ctx, orgPath(organizationID, "/reports/sup-out"), nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Result []struct {
			Name    string      `json:"name"`
			Balance json.Number `json:"balance"`
		} `json:"result"`
	}

	if err := decodeBody(raw, &payload); err != nil {
		return nil, err
	}

	rows := make([]domain.OutstandingRow, 0, len(payload.Result))
	for _, r := range payload.Result {
		rows = append(rows, domain.OutstandingRow{Name: r.Name, Balance: r.Balance.String()})
	}

	return rows, nil
}

// Customers lists the organization's customers.
func (c *Client) Customers(ctx context.Context, organizationID string) ([]domain.Customer, error) {
	raw, err := c.get(ctx, orgPath(organizationID, "/customer"), nil)
	if err != nil {
		return nil, err
	}

	var customers []domain.Customer
	if err := decodeBody(raw, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}

// Suppliers lists the organization's suppliers.
func (c *Client) Suppliers(ctx context.Context, organizationID string) ([]domain.Supplier, error) {
	raw, err := c.get(ctx, orgPath(organizationID, "/supplier"), nil)
	if err != nil {
		return nil, err
	}

	var suppliers []domain.Supplier
	if err := decodeBody(raw, &suppliers); err != nil {
		return nil, err
	}

	return suppliers, nil
}

type voucherPayload struct {
	ID          string      `json:"id"`
	Amount      json.Number `json:"amount"`
	Date        time.Time   `json:"date"`
	PaymentType string      `json:"payment_type"`
	Description string      `json:"description"`
	PettyMaster struct {
		Name string `json:"name"`
	} `json:"pettyMaster"`
}

func (v voucherPayload) voucher() domain.PettyCashVoucher {
	return domain.PettyCashVoucher{
		ID:          v.ID,
		MasterName:  v.PettyMaster.Name,
		Amount:      v.Amount.String(),
		Date:        v.Date,
		PaymentType: v.PaymentType,
		Description: v.Description,
	}
}

// PettyCash fetches one page of petty cash vouchers.
func (c *Client) PettyCash(ctx context.Context, organizationID string, page, limit int) (pagepkg.Page[domain.PettyCashVoucher], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	raw, err := c.get(ctx, orgPath(organizationID, "/petty-cash"), query)
	if err != nil {
		return pagepkg.Page[domain.PettyCashVoucher]{}, err
	}

	decoded, err := pagepkg.Decode[voucherPayload](raw)
	if err != nil {
		return pagepkg.Page[domain.PettyCashVoucher]{}, err
	}

	out := pagepkg.Page[domain.PettyCashVoucher]{
		Items:      make([]domain.PettyCashVoucher, 0, len(decoded.Items)),
		TotalPages: decoded.TotalPages,
		HasTotal:   decoded.HasTotal,
	}

	for _, v := range decoded.Items {
		out.Items = append(out.Items, v.voucher())
	}

	return out, nil
}

// DeletePettyCash deletes one petty cash voucher.
func (c *Client) DeletePettyCash(ctx context.Context, organizationID, voucherID string) error {
	return c.send(ctx, http.MethodDelete, orgPath(organizationID, "/petty-cash/"+url.PathEscape(voucherID)), nil, nil)
}

// CreateSale creates a sale line on the backend.
func (c *Client) CreateSale(ctx context.Context, organizationID string, arg domain.CreateSaleParams) (domain.SaleItem, error) {
	var card saleCard
	err := c.send(ctx, http.MethodPost, orgPath(organizationID, "/card"), saleBody(arg), &card)
	if err != nil {
		return domain.SaleItem{}, err
	}

	return card.item(), nil
}

// UpdateSale edits a sale line on the backend.
func (c *Client) UpdateSale(ctx context.Context, organizationID, saleID string, arg domain.CreateSaleParams) (domain.SaleItem, error) {
	var card saleCard
	err := c.send(ctx, http.MethodPatch, orgPath(organizationID, "/card/"+url.PathEscape(saleID)), saleBody(arg), &card)
	if err != nil {
		return domain.SaleItem{}, err
	}

	return card.item(), nil
}

// DeleteSale deletes a sale line on the backend.
func (c *Client) DeleteSale(ctx context.Context, organizationID, saleID string) error {
	return c.send(ctx, http.MethodDelete, orgPath(organizationID, "/card/"+url.PathEscape(saleID)), nil, nil)
}

// CreatePurchase creates a purchase line on the backend.
func (c *Client) CreatePurchase(ctx context.Context, organizationID string, arg domain.CreatePurchaseParams) (domain.PurchaseItem, error) {
	var card purchaseCard
	err := c.send(ctx, http.MethodPost, orgPath(organizationID, "/card-purchase"), purchaseBody(arg), &card)
	if err != nil {
		return domain.PurchaseItem{}, err
	}

	return card.item(), nil
}

// UpdatePurchase edits a purchase line on the backend.
func (c *Client) UpdatePurchase(ctx context.Context, organizationID, purchaseID string, arg domain.CreatePurchaseParams) (domain.PurchaseItem, error) {
	var card purchaseCard
	err := c.send(ctx, http.MethodPatch, orgPath(organizationID, "/card-purchase/"+url.PathEscape(purchaseID)), purchaseBody(arg), &card)
	if err != nil {
		return domain.PurchaseItem{}, err
	}

	return card.item(), nil
}

// DeletePurchase deletes a purchase line on the backend.
func (c *Client) DeletePurchase(ctx context.Context, organizationID, purchaseID string) error {
	return c.send(ctx, http.MethodDelete, orgPath(organizationID, "/card-purchase/"+url.PathEscape(purchaseID)), nil, nil)
}

// CreateExpense creates an expense line on the backend.
func (c *Client) CreateExpense(ctx context.Context, organizationID string, arg domain.CreateExpenseParams) (domain.ExpenseItem, error) {
	var card expenseCard
	err := c.send(ctx, http.MethodPost, orgPath(organizationID, "/card-expence"), arg, &card)
	if err != nil {
		return domain.ExpenseItem{}, err
	}

	return card.item(), nil
}

// UpdateExpense edits an expense line on the backend.
func (c *Client) UpdateExpense(ctx context.Context, organizationID, expenseID string, arg domain.CreateExpenseParams) (domain.ExpenseItem, error) {
	var card expenseCard
	err := c.send(ctx, http.MethodPatch, orgPath(organizationID, "/card-expence/"+url.PathEscape(expenseID)), arg, &card)
	if err != nil {
		return domain.ExpenseItem{}, err
	}

	return card.item(), nil
}

// DeleteExpense deletes an expense line on the backend.
func (c *Client) DeleteExpense(ctx context.Context, organizationID, expenseID string) error {
	return c.send(ctx, http.MethodDelete, orgPath(organizationID, "/card-expence/"+url.PathEscape(expenseID)), nil, nil)
}
