package statementservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/trade-ledger/internal/domain"
	"github.com/go-petr/trade-ledger/pkg/errorspkg"
	"github.com/go-petr/trade-ledger/pkg/randompkg"
)

func entry(amount string, entryType domain.EntryType) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:          randompkg.String(10),
		Date:        time.Now().Truncate(time.Second).UTC(),
		Description: randompkg.String(12),
		Amount:      amount,
		EntryType:   entryType,
	}
}

func TestRunningBalances(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		opening domain.OpeningBalance
		entries []domain.LedgerEntry
		want    []string
	}{
		{
			name:    "EmptyEntries",
			opening: domain.OpeningBalance{Amount: "500", Type: domain.Debit},
			entries: nil,
			want:    []string{},
		},
		{
			name:    "SingleDebit",
			opening: domain.OpeningBalance{Amount: "500", Type: domain.Debit},
			entries: []domain.LedgerEntry{entry("200", domain.Debit)},
			want:    []string{"700"},
		},
		{
			name:    "SingleCredit",
			opening: domain.OpeningBalance{Amount: "500", Type: domain.Debit},
			entries: []domain.LedgerEntry{entry("200", domain.Credit)},
			want:    []string{"300"},
		},
		{
			name:    "SignCrossingZero",
			opening: domain.OpeningBalance{Amount: "100", Type: domain.Debit},
			entries: []domain.LedgerEntry{
				entry("150", domain.Credit),
				entry("10", domain.Debit),
			},
			want: []string{"-50", "-40"},
		},
		{
			name:    "CreditOpening",
			opening: domain.OpeningBalance{Amount: "100", Type: domain.Credit},
			entries: []domain.LedgerEntry{entry("40", domain.Debit)},
			want:    []string{"-60"},
		},
		{
			name:    "FractionalPrecision",
			opening: domain.OpeningBalance{Amount: "0.1", Type: domain.Debit},
			entries: []domain.LedgerEntry{
				entry("0.2", domain.Debit),
				entry("0.3", domain.Credit),
			},
			want: []string{"0.3", "0"},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := RunningBalances(tc.entries, tc.opening)
			require.NoError(t, err)
			require.Len(t, got, len(tc.want))

			for i, want := range tc.want {
				require.True(t, got[i].Equal(decimal.RequireFromString(want)),
					"balance[%d] = %s, want %s", i, got[i], want)
			}
		})
	}
}

func TestRunningBalancesIdempotence(t *testing.T) {
	t.Parallel()

	opening := domain.OpeningBalance{Amount: randompkg.MoneyAmountBetween(0, 1000), Type: domain.Debit}
	entries := []domain.LedgerEntry{
		entry(randompkg.MoneyAmountBetween(0, 500), domain.Debit),
		entry(randompkg.MoneyAmountBetween(0, 500), domain.Credit),
		entry(randompkg.MoneyAmountBetween(0, 500), domain.Credit),
	}

	first, err := RunningBalances(entries, opening)
	require.NoError(t, err)

	second, err := RunningBalances(entries, opening)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		require.True(t, first[i].Equal(second[i]))
	}
}

func TestRunningBalancesMalformed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		opening   domain.OpeningBalance
		entries   []domain.LedgerEntry
		wantIndex int
	}{
		{
			name:    "NonNumericAmount",
			opening: domain.OpeningBalance{Amount: "500", Type: domain.Debit},
			entries: []domain.LedgerEntry{
				entry("100", domain.Debit),
				entry("abc", domain.Credit),
				entry("50", domain.Debit),
			},
			wantIndex: 1,
		},
		{
			name:    "UnrecognizedEntryType",
			opening: domain.OpeningBalance{Amount: "500", Type: domain.Debit},
			entries: []domain.LedgerEntry{
				entry("100", "TRANSFER"),
			},
			wantIndex: 0,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := RunningBalances(tc.entries, tc.opening)
			require.Nil(t, got, "no partial output on failure")

			var malformed *domain.MalformedEntryError
			require.ErrorAs(t, err, &malformed)
			require.Equal(t, tc.wantIndex, malformed.Index)
		})
	}
}

func TestRunningBalancesMalformedOpening(t *testing.T) {
	t.Parallel()

	opening := domain.OpeningBalance{Amount: "not-a-number", Type: domain.Debit}

	got, err := RunningBalances([]domain.LedgerEntry{entry("100", domain.Debit)}, opening)
	require.Nil(t, got)
	require.Error(t, err)
}

func TestValidateQuery(t *testing.T) {
	t.Parallel()

	now := time.Now()

	service := New(nil)

	testCases := []struct {
		name    string
		query   Query
		wantErr error
	}{
		{
			name:  "OK",
			query: Query{From: now.AddDate(0, -1, 0), To: now, CustomerID: "cus1"},
		},
		{
			name:  "SameDay",
			query: Query{From: now, To: now, CustomerID: "cus1"},
		},
		{
			name:    "FromAfterTo",
			query:   Query{From: now, To: now.AddDate(0, 0, -1), CustomerID: "cus1"},
			wantErr: domain.ErrInvalidDateRange,
		},
		{
			name:    "MissingCustomer",
			query:   Query{From: now.AddDate(0, -1, 0), To: now},
			wantErr: domain.ErrCustomerRequired,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := service.ValidateQuery(tc.query)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestStatement(t *testing.T) {
	org := "org_" + randompkg.String(8)
	now := time.Now().Truncate(time.Second).UTC()

	okQuery := Query{From: now.AddDate(0, -1, 0), To: now, CustomerID: "cus1"}

	okStatement := domain.Statement{
		Opening: domain.OpeningBalance{Amount: "100", Type: domain.Debit},
		Entries: []domain.LedgerEntry{
			entry("150", domain.Credit),
			entry("10", domain.Debit),
		},
	}

	testCases := []struct {
		name          string
		query         Query
		buildStubs    func(client *MockClient)
		checkResponse func(t *testing.T, view View, err error)
	}{
		{
			name:  "InvalidRange",
			query: Query{From: now, To: now.AddDate(0, 0, -1), CustomerID: "cus1"},
			buildStubs: func(client *MockClient) {
				client.EXPECT().
					CustomerStatement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, view View, err error) {
				require.ErrorIs(t, err, domain.ErrInvalidDateRange)
				require.Empty(t, view)
			},
		},
		{
			name:  "FetchError",
			query: okQuery,
			buildStubs: func(client *MockClient) {
				client.EXPECT().
					CustomerStatement(gomock.Any(), gomock.Eq(org), gomock.Eq(okQuery.From), gomock.Eq(okQuery.To), gomock.Eq("cus1")).
					Times(1).
					Return(domain.Statement{}, errorspkg.ErrTransient)
			},
			checkResponse: func(t *testing.T, view View, err error) {
				require.ErrorIs(t, err, errorspkg.ErrTransient)
				require.Empty(t, view)
			},
		},
		{
			name:  "MalformedEntry",
			query: okQuery,
			buildStubs: func(client *MockClient) {
				bad := okStatement
				bad.Entries = []domain.LedgerEntry{entry("abc", domain.Debit)}

				client.EXPECT().
					CustomerStatement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(bad, nil)
			},
			checkResponse: func(t *testing.T, view View, err error) {
				var malformed *domain.MalformedEntryError
				require.ErrorAs(t, err, &malformed)
				require.Equal(t, 0, malformed.Index)
				require.Empty(t, view, "no partially rendered table")
			},
		},
		{
			name:  "OK",
			query: okQuery,
			buildStubs: func(client *MockClient) {
				client.EXPECT().
					CustomerStatement(gomock.Any(), gomock.Eq(org), gomock.Eq(okQuery.From), gomock.Eq(okQuery.To), gomock.Eq("cus1")).
					Times(1).
					Return(okStatement, nil)
			},
			checkResponse: func(t *testing.T, view View, err error) {
				require.NoError(t, err)
				require.Equal(t, "₹100.00 Dr", view.OpeningBalance)
				require.Len(t, view.Lines, 2)

				require.Equal(t, "-", view.Lines[0].Debit)
				require.Equal(t, "₹150.00", view.Lines[0].Credit)
				require.Equal(t, "₹50.00 Cr", view.Lines[0].Balance)

				require.Equal(t, "₹10.00", view.Lines[1].Debit)
				require.Equal(t, "-", view.Lines[1].Credit)
				require.Equal(t, "₹40.00 Cr", view.Lines[1].Balance)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := NewMockClient(ctrl)
			tc.buildStubs(client)

			service := New(client)

			view, err := service.Statement(context.Background(), org, tc.query)
			tc.checkResponse(t, view, err)
		})
	}
}
