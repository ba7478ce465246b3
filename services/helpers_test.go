package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ardena/ardena-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database named after the test so parallel
// tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductAttributes{},
		&models.Coupon{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	require.NoError(t, err)
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string, stock int) models.Product {
	t.Helper()
	product := models.Product{
		Name:  name,
		Slug:  strings.ToLower(name),
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{
		Email:            email,
		FirstName:        "Test",
		LastName:         "User",
		Password:         "not-a-real-hash",
		Role:             "customer",
		AccountActivated: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCoupon(t *testing.T, db *gorm.DB, code string, discount int) models.Coupon {
	t.Helper()
	coupon := models.Coupon{
		Code:     code,
		Discount: discount,
		Active:   true,
		ValidTo:  time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, db.Create(&coupon).Error)
	return coupon
}

// fakeSession is an in-memory SessionStore.
type fakeSession struct {
	id     string
	values map[interface{}]interface{}
	saves  int
}

func newFakeSession(id string) *fakeSession {
	return &fakeSession{id: id, values: map[interface{}]interface{}{}}
}

func (f *fakeSession) ID() string { return f.id }

func (f *fakeSession) Get(key interface{}) interface{} { return f.values[key] }

func (f *fakeSession) Set(key interface{}, val interface{}) { f.values[key] = val }

func (f *fakeSession) Delete(key interface{}) { delete(f.values, key) }

func (f *fakeSession) Save() error {
	f.saves++
	return nil
}

// fakeCharger records charges and returns a canned result. onCharge, when
// set, runs before the result is returned.
type fakeCharger struct {
	paymentID string
	err       error
	amounts   []int64
	onCharge  func()
}

func (f *fakeCharger) Charge(card CardInformation, amountMinorUnits int64, currency string) (string, error) {
	f.amounts = append(f.amounts, amountMinorUnits)
	if f.onCharge != nil {
		f.onCharge()
	}
	if f.err != nil {
		return "", f.err
	}
	return f.paymentID, nil
}

func validCard() *CardInformation {
	return &CardInformation{
		CardNumber:  "4242 4242 4242 4242",
		ExpiryMonth: "12",
		ExpiryYear:  fmt.Sprint(time.Now().Year() + 1),
		Cvc:         "123",
	}
}
