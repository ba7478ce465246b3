package services

import (
	"encoding/json"
	"testing"

	"github.com/ardena/ardena-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSessionCartSumsQuantities(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "merge-sum@example.com")
	shirt := seedProduct(t, db, "Shirt", "10.00", 10)

	// Anonymous cart keyed by the visitor's session.
	sessionKey := "anon-session-1"
	anonCart := models.Cart{SessionKey: &sessionKey}
	require.NoError(t, db.Create(&anonCart).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID:    anonCart.ID,
		ProductID: shirt.ID,
		Quantity:  2,
		Price:     decimal.RequireFromString("10.00"),
	}).Error)

	// The user already had one of the same product at an older price.
	userCart, err := NewDBCart(db, user.ID)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.CartItem{
		CartID:    userCart.cart.ID,
		ProductID: shirt.ID,
		Quantity:  1,
		Price:     decimal.RequireFromString("9.00"),
	}).Error)

	require.NoError(t, MergeSessionCart(db, user.ID, sessionKey))

	var item models.CartItem
	require.NoError(t, db.Where("cart_id = ?", userCart.cart.ID).First(&item).Error)
	assert.Equal(t, 3, item.Quantity)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("9.00")), "existing line keeps its price")

	var count int64
	db.Model(&models.Cart{}).Where("session_key = ?", sessionKey).Count(&count)
	assert.EqualValues(t, 0, count, "session cart is deleted")
}

func TestMergeSessionCartCopiesNewLines(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "merge-copy@example.com")
	shoes := seedProduct(t, db, "Shoes", "20.00", 10)

	sessionKey := "anon-session-2"
	anonCart := models.Cart{SessionKey: &sessionKey}
	require.NoError(t, db.Create(&anonCart).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID:    anonCart.ID,
		ProductID: shoes.ID,
		Quantity:  1,
		Price:     decimal.RequireFromString("18.00"),
	}).Error)

	require.NoError(t, MergeSessionCart(db, user.ID, sessionKey))

	userCart, err := NewDBCart(db, user.ID)
	require.NoError(t, err)
	lines, err := userCart.Items()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.True(t, lines[0].Price.Equal(decimal.RequireFromString("18.00")), "session price travels with the line")
}

func TestMergeSessionCartNoSessionCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "merge-none@example.com")

	assert.NoError(t, MergeSessionCart(db, user.ID, "missing-session"))
	assert.NoError(t, MergeSessionCart(db, user.ID, ""))
}

func TestSnapshotCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "snapshot-cart@example.com")
	shirt := seedProduct(t, db, "Shirt", "10.00", 10)

	cart, err := NewDBCart(db, user.ID)
	require.NoError(t, err)
	require.NoError(t, cart.Add(shirt.ID, 2, false))

	require.NoError(t, SnapshotCart(db, user.ID))

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)

	var saved []struct {
		ProductID uint   `json:"productId"`
		Quantity  int    `json:"quantity"`
		Price     string `json:"price"`
	}
	require.NoError(t, json.Unmarshal(reloaded.SavedCart, &saved))
	require.Len(t, saved, 1)
	assert.Equal(t, shirt.ID, saved[0].ProductID)
	assert.Equal(t, 2, saved[0].Quantity)
	assert.Equal(t, "10.00", saved[0].Price)
}
