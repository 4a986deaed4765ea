package apiclient

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/trade-ledger/internal/domain"
)

func TestPayment(t *testing.T) {
	client := newStub(t, func(r *gin.Engine) {
		r.GET("/api/:org/payment/:id", func(c *gin.Context) {
			require.Equal(t, "pay1", c.Param("id"))

			c.JSON(http.StatusOK, gin.H{
				"id":           "pay1",
				"supplierId":   "su1",
				"amount":       2500.5,
				"date":         "2024-04-02T00:00:00Z",
				"payment_type": "Bank",
				"description":  "April settlement",
			})
		})
	})

	got, err := client.Payment(context.Background(), testOrg, "pay1")
	require.NoError(t, err)

	require.Equal(t, "su1", got.SupplierID)
	require.Equal(t, "Bank", got.PaymentType)
	require.True(t, got.Amount.Equal(decimal.RequireFromString("2500.5")))
	require.Equal(t, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), got.Date)
}

func TestCreatePayment(t *testing.T) {
	client := newStub(t, func(r *gin.Engine) {
		r.POST("/api/:org/payment", func(c *gin.Context) {
			var body map[string]any
			require.NoError(t, c.BindJSON(&body))

			require.Equal(t, "su1", body["supplierId"])
			require.Equal(t, "Cash", body["payment_type"])
			require.Equal(t, "2500", body["amount"])

			c.JSON(http.StatusCreated, gin.H{
				"id":           "pay9",
				"supplierId":   "su1",
				"amount":       2500,
				"payment_type": "Cash",
			})
		})
	})

	got, err := client.CreatePayment(context.Background(), testOrg, domain.CreatePaymentParams{
		SupplierID:  "su1",
		Amount:      decimal.RequireFromString("2500"),
		Date:        time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
		PaymentType: "Cash",
	})
	require.NoError(t, err)
	require.Equal(t, "pay9", got.ID)
}

func TestUpdateReceiptPath(t *testing.T) {
	client := newStub(t, func(r *gin.Engine) {
		// The backend spells the resource "reciept".
		r.PATCH("/api/:org/reciept/:id", func(c *gin.Context) {
			require.Equal(t, "rec1", c.Param("id"))

			var body map[string]any
			require.NoError(t, c.BindJSON(&body))
			require.Equal(t, "c1", body["customerId"])

			c.JSON(http.StatusOK, gin.H{
				"id":           "rec1",
				"customerId":   "c1",
				"amount":       "1200.50",
				"payment_type": "G-pay",
			})
		})
	})

	got, err := client.UpdateReceipt(context.Background(), testOrg, "rec1", domain.CreateReceiptParams{
		CustomerID:  "c1",
		Amount:      decimal.RequireFromString("1200.50"),
		PaymentType: "G-pay",
	})
	require.NoError(t, err)

	require.Equal(t, "rec1", got.ID)
	require.True(t, got.Amount.Equal(decimal.RequireFromString("1200.50")))
}

func TestDeleteReceipt(t *testing.T) {
	var deleted string

	client := newStub(t, func(r *gin.Engine) {
		r.DELETE("/api/:org/reciept/:id", func(c *gin.Context) {
			deleted = c.Param("id")
			c.Status(http.StatusNoContent)
		})
	})

	require.NoError(t, client.DeleteReceipt(context.Background(), testOrg, "rec2"))
	require.Equal(t, "rec2", deleted)
}

func TestPettyCashVoucher(t *testing.T) {
	client := newStub(t, func(r *gin.Engine) {
		r.GET("/api/:org/petty-cash/:id", func(c *gin.Context) {
			require.Equal(t, "v1", c.Param("id"))

			c.JSON(http.StatusOK, gin.H{
				"id":           "v1",
				"amount":       350.5,
				"payment_type": "Cash",
				"description":  "Diesel",
				"pettyMaster":  gin.H{"name": "Fuel"},
			})
		})
	})

	got, err := client.PettyCashVoucher(context.Background(), testOrg, "v1")
	require.NoError(t, err)

	require.Equal(t, "Fuel", got.MasterName)
	require.Equal(t, "350.5", got.Amount)
}

func TestMasterLists(t *testing.T) {
	client := newStub(t, func(r *gin.Engine) {
		r.GET("/api/:org/petty-master", func(c *gin.Context) {
			c.JSON(http.StatusOK, []gin.H{{"id": "m1", "name": "Fuel"}})
		})
		r.GET("/api/:org/expance", func(c *gin.Context) {
			c.JSON(http.StatusOK, []gin.H{{"id": "e1", "name": "Ice"}, {"id": "e2", "name": "Freight"}})
		})
	})

	masters, err := client.PettyMasters(context.Background(), testOrg)
	require.NoError(t, err)
	require.Equal(t, []domain.MasterItem{{ID: "m1", Name: "Fuel"}}, masters)

	categories, err := client.ExpenseCategories(context.Background(), testOrg)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	require.Equal(t, "Freight", categories[1].Name)
}
