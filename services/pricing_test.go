package services

import (
	"testing"

	"github.com/ardena/ardena-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSubtotal(t *testing.T) {
	lines := []CartLine{
		{Product: models.Product{Name: "a"}, Quantity: 2, Price: decimal.RequireFromString("10.00")},
		{Product: models.Product{Name: "b"}, Quantity: 1, Price: decimal.RequireFromString("19.99")},
	}
	assert.True(t, Subtotal(lines).Equal(decimal.RequireFromString("39.99")))
}

func TestSubtotalEmpty(t *testing.T) {
	assert.True(t, Subtotal(nil).IsZero())
}

func TestApplyDiscount(t *testing.T) {
	total := decimal.RequireFromString("40.00")
	assert.True(t, ApplyDiscount(total, 10).Equal(decimal.RequireFromString("36.00")))
	assert.True(t, ApplyDiscount(total, 100).IsZero())
	assert.True(t, ApplyDiscount(total, 0).Equal(total), "zero discount leaves the total alone")
}

func TestOrderTotalEvaluationOrder(t *testing.T) {
	subtotal := decimal.RequireFromString("100.00")
	// discount first (100 -> 90), then tax (90 -> 81), then shipping (81 -> 76).
	got := OrderTotal(subtotal, 10, 10, decimal.RequireFromString("5.00"))
	assert.True(t, got.Equal(decimal.RequireFromString("76.00")), "got %s", got)
}

func TestOrderTotalNoAdjustments(t *testing.T) {
	subtotal := decimal.RequireFromString("25.50")
	got := OrderTotal(subtotal, 0, 0, decimal.Zero)
	assert.True(t, got.Equal(subtotal))
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(3600), MinorUnits(decimal.RequireFromString("36.00")))
	assert.Equal(t, int64(1999), MinorUnits(decimal.RequireFromString("19.99")))
	assert.Equal(t, int64(1000), MinorUnits(decimal.RequireFromString("9.999")))
}
