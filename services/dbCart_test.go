package services

import (
	"testing"
	"time"

	"github.com/ardena/ardena-api/models"
	"github.com/ardena/ardena-api/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBCartAddAndTotals(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "totals@example.com")
	shirt := seedProduct(t, db, "Shirt", "10.00", 10)
	shoes := seedProduct(t, db, "Shoes", "20.00", 10)

	cart, err := NewDBCart(db, user.ID)
	require.NoError(t, err)

	require.NoError(t, cart.Add(shirt.ID, 2, false))
	require.NoError(t, cart.Add(shoes.ID, 1, false))

	count, err := cart.TotalItems()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	total, err := cart.TotalPrice()
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("40.00")), "got %s", total)
}

func TestDBCartCouponDiscountsTotal(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "coupon@example.com")
	shirt := seedProduct(t, db, "Shirt", "10.00", 10)
	shoes := seedProduct(t, db, "Shoes", "20.00", 10)
	coupon := seedCoupon(t, db, "TEN", 10)

	cart, err := NewDBCart(db, user.ID)
	require.NoError(t, err)
	require.NoError(t, cart.Add(shirt.ID, 2, false))
	require.NoError(t, cart.Add(shoes.ID, 1, false))
	require.NoError(t, cart.AddCoupon(&coupon))

	total, err := cart.TotalPrice()
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("36.00")), "got %s", total)
}

func TestDBCartExpiredCouponNotApplied(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "expired@example.com")
	shirt := seedProduct(t, db, "Shirt", "10.00", 10)

	coupon := models.Coupon{
		Code:     "STALE",
		Discount: 50,
		Active:   true,
		ValidTo:  time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&coupon).Error)

	cart, err := NewDBCart(db, user.ID)
	require.NoError(t, err)
	require.NoError(t, cart.Add(shirt.ID, 1, false))
	require.NoError(t, cart.AddCoupon(&coupon))

	total, err := cart.TotalPrice()
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("10.00")), "got %s", total)
}

func TestDBCartAddQuantitySemantics(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "qty@example.com")
	shirt := seedProduct(t, db, "Shirt", "10.00", 10)

	cart, err := NewDBCart(db, user.ID)
	require.NoError(t, err)

	require.NoError(t, cart.Add(shirt.ID, 2, false))
	require.NoError(t, cart.Add(shirt.ID, 3, false))
	count, err := cart.TotalItems()
	require.NoError(t, err)
	assert.Equal(t, 5, count, "default add increments")

	require.NoError(t, cart.Add(shirt.ID, 4, true))
	count, err = cart.TotalItems()
	require.NoError(t, err)
	assert.Equal(t, 4, count, "updateQuantity overwrites")
}

func TestDBCartSubtractQuantity(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "subtract@example.com")
	shirt := seedProduct(t, db, "Shirt", "10.00", 10)

	cart, err := NewDBCart(db, user.ID)
	require.NoError(t, err)
	require.NoError(t, cart.Add(shirt.ID, 2, false))

	require.NoError(t, cart.SubtractQuantity(shirt.ID))
	count, err := cart.TotalItems()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, cart.SubtractQuantity(shirt.ID))
	count, err = cart.TotalItems()
	require.NoError(t, err)
	assert.Equal(t, 0, count, "line disappears at quantity zero")

	// Subtracting a product that is not in the cart is a no-op.
	require.NoError(t, cart.SubtractQuantity(shirt.ID))
}

func TestDBCartPriceSnapshot(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "snapshot@example.com")
	shirt := seedProduct(t, db, "Shirt", "10.00", 10)

	cart, err := NewDBCart(db, user.ID)
	require.NoError(t, err)
	require.NoError(t, cart.Add(shirt.ID, 1, false))

	// Price hike after the line was created does not change the cart.
	require.NoError(t, db.Model(&shirt).Update("price", decimal.RequireFromString("99.00")).Error)

	total, err := cart.TotalPrice()
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("10.00")), "got %s", total)
}

func TestDBCartUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "unknown@example.com")

	cart, err := NewDBCart(db, user.ID)
	require.NoError(t, err)

	err = cart.Add(12345, 1, false)
	assert.ErrorIs(t, err, utils.ErrProductNotExist)
}

func TestDBCartCouponOnEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "emptycoupon@example.com")
	coupon := seedCoupon(t, db, "TEN", 10)

	cart, err := NewDBCart(db, user.ID)
	require.NoError(t, err)

	err = cart.AddCoupon(&coupon)
	assert.ErrorIs(t, err, utils.ErrCouponOnEmptyCart)
	assert.False(t, cart.CouponIsUsed())
}

func TestCartServiceEmptyingCartDropsCoupon(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "dropcoupon@example.com")
	shirt := seedProduct(t, db, "Shirt", "10.00", 10)
	coupon := seedCoupon(t, db, "TEN", 10)

	backend, err := NewDBCart(db, user.ID)
	require.NoError(t, err)
	cart := NewCartServiceWithBackend(backend)

	require.NoError(t, cart.Add(shirt.ID, 1, false))
	require.NoError(t, cart.AddCoupon(&coupon))
	assert.True(t, cart.CouponIsUsed())

	require.NoError(t, cart.Remove(shirt.ID))

	got, err := cart.GetCoupon()
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, cart.CouponIsUsed())
}

func TestCartServiceSubtractToEmptyDropsCoupon(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "subdrop@example.com")
	shirt := seedProduct(t, db, "Shirt", "10.00", 10)
	coupon := seedCoupon(t, db, "TEN", 10)

	backend, err := NewDBCart(db, user.ID)
	require.NoError(t, err)
	cart := NewCartServiceWithBackend(backend)

	require.NoError(t, cart.Add(shirt.ID, 1, false))
	require.NoError(t, cart.AddCoupon(&coupon))

	require.NoError(t, cart.SubtractQuantity(shirt.ID))
	assert.False(t, cart.CouponIsUsed())
}

func TestDBCartItems(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "items@example.com")
	shirt := seedProduct(t, db, "Shirt", "10.00", 10)

	cart, err := NewDBCart(db, user.ID)
	require.NoError(t, err)
	require.NoError(t, cart.Add(shirt.ID, 3, false))

	lines, err := cart.Items()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Shirt", lines[0].Product.Name)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.True(t, lines[0].TotalPrice.Equal(decimal.RequireFromString("30.00")))
}
