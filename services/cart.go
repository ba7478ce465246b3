package services

import (
	"github.com/ardena/ardena-api/middlewares"
	"github.com/ardena/ardena-api/models"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartLine is one cart entry as the rest of the system sees it, regardless of
// which backend produced it.
type CartLine struct {
	Product    models.Product  `json:"product"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// CartBackend is the operation set both cart storage strategies implement, so
// checkout stays backend-agnostic.
type CartBackend interface {
	Add(productID uint, quantity int, updateQuantity bool) error
	SubtractQuantity(productID uint) error
	Remove(productID uint) error
	Clear() error
	AddCoupon(coupon *models.Coupon) error
	RemoveCoupon() error
	GetCoupon() (*models.Coupon, error)
	CouponIsUsed() bool
	TotalPrice() (decimal.Decimal, error)
	TotalItems() (int, error)
	Items() ([]CartLine, error)
}

// CartService selects the backend once per request based on authentication
// state and maintains the empty-cart coupon invariant on top of it.
type CartService struct {
	backend    CartBackend
	sessionKey string
}

func NewCartService(ctx *gin.Context, db *gorm.DB) (*CartService, error) {
	if userID, ok := middlewares.CurrentUserID(ctx); ok {
		backend, err := NewDBCart(db, userID)
		if err != nil {
			return nil, err
		}
		return &CartService{backend: backend}, nil
	}
	sess := sessions.Default(ctx)
	return &CartService{backend: NewSessionCart(db, sess), sessionKey: sess.ID()}, nil
}

func NewCartServiceWithBackend(backend CartBackend) *CartService {
	return &CartService{backend: backend}
}

func (s *CartService) Backend() CartBackend { return s.backend }
func (s *CartService) SessionID() string    { return s.sessionKey }

func (s *CartService) Add(productID uint, quantity int, updateQuantity bool) error {
	return s.backend.Add(productID, quantity, updateQuantity)
}

func (s *CartService) SubtractQuantity(productID uint) error {
	if err := s.backend.SubtractQuantity(productID); err != nil {
		return err
	}
	return s.handleEmptyCart()
}

func (s *CartService) Remove(productID uint) error {
	if err := s.backend.Remove(productID); err != nil {
		return err
	}
	return s.handleEmptyCart()
}

func (s *CartService) Clear() error {
	if err := s.backend.Clear(); err != nil {
		return err
	}
	return s.handleEmptyCart()
}

func (s *CartService) AddCoupon(coupon *models.Coupon) error {
	return s.backend.AddCoupon(coupon)
}

func (s *CartService) RemoveCoupon() error {
	return s.backend.RemoveCoupon()
}

// GetCoupon drops a coupon left on an emptied cart before reporting it.
func (s *CartService) GetCoupon() (*models.Coupon, error) {
	if err := s.handleEmptyCart(); err != nil {
		return nil, err
	}
	return s.backend.GetCoupon()
}

func (s *CartService) CouponIsUsed() bool {
	return s.backend.CouponIsUsed()
}

func (s *CartService) TotalPrice() (decimal.Decimal, error) {
	return s.backend.TotalPrice()
}

func (s *CartService) TotalItems() (int, error) {
	return s.backend.TotalItems()
}

func (s *CartService) Items() ([]CartLine, error) {
	return s.backend.Items()
}

// A cart with zero items has no coupon.
func (s *CartService) handleEmptyCart() error {
	count, err := s.backend.TotalItems()
	if err != nil {
		return err
	}
	if count == 0 && s.backend.CouponIsUsed() {
		return s.backend.RemoveCoupon()
	}
	return nil
}
