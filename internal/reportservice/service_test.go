package reportservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/trade-ledger/internal/domain"
	"github.com/go-petr/trade-ledger/pkg/errorspkg"
	"github.com/go-petr/trade-ledger/pkg/randompkg"
)

func TestSupplierOutstanding(t *testing.T) {
	org := "org_" + randompkg.String(8)

	testCases := []struct {
		name          string
		buildStubs    func(client *MockClient)
		checkResponse func(t *testing.T, report Report, err error)
	}{
		{
			name: "FetchError",
			buildStubs: func(client *MockClient) {
				client.EXPECT().
					SupplierOutstanding(gomock.Any(), gomock.Eq(org)).
					Times(1).
					Return(nil, errorspkg.ErrTransient)
			},
			checkResponse: func(t *testing.T, report Report, err error) {
				require.ErrorIs(t, err, errorspkg.ErrTransient)
				require.Empty(t, report)
			},
		},
		{
			name: "MalformedBalance",
			buildStubs: func(client *MockClient) {
				client.EXPECT().
					SupplierOutstanding(gomock.Any(), gomock.Eq(org)).
					Times(1).
					Return([]domain.OutstandingRow{
						{Name: "ok", Balance: "10"},
						{Name: "bad", Balance: "ten"},
					}, nil)
			},
			checkResponse: func(t *testing.T, report Report, err error) {
				var malformed *domain.MalformedRowError
				require.ErrorAs(t, err, &malformed)
				require.Equal(t, 1, malformed.Index)
				require.Contains(t, err.Error(), "row 1")
				require.Empty(t, report)
			},
		},
		{
			name: "SortedWithTotal",
			buildStubs: func(client *MockClient) {
				client.EXPECT().
					SupplierOutstanding(gomock.Any(), gomock.Eq(org)).
					Times(1).
					Return([]domain.OutstandingRow{
						{Name: "small", Balance: "120.50"},
						{Name: "big", Balance: "9000"},
						{Name: "negative", Balance: "-45"},
					}, nil)
			},
			checkResponse: func(t *testing.T, report Report, err error) {
				require.NoError(t, err)
				require.Len(t, report.Rows, 3)

				require.Equal(t, "big", report.Rows[0].Name)
				require.Equal(t, "small", report.Rows[1].Name)
				require.Equal(t, "negative", report.Rows[2].Name)

				require.True(t, report.Total.Equal(decimal.RequireFromString("9075.5")))
			},
		},
		{
			name: "Empty",
			buildStubs: func(client *MockClient) {
				client.EXPECT().
					SupplierOutstanding(gomock.Any(), gomock.Eq(org)).
					Times(1).
					Return([]domain.OutstandingRow{}, nil)
			},
			checkResponse: func(t *testing.T, report Report, err error) {
				require.NoError(t, err)
				require.Empty(t, report.Rows)
				require.True(t, report.Total.IsZero())
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

			report, err := service.SupplierOutstanding(context.Background(), org)
			tc.checkResponse(t, report, err)
		})
	}
}
