package services

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/ardena/ardena-api/models"
	"github.com/ardena/ardena-api/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	sessionCartKey   = "cart"
	sessionCouponKey = "coupon_id"
)

// SessionStore is the slice of the session API the cart needs. Satisfied by
// gin-contrib/sessions.Session.
type SessionStore interface {
	ID() string
	Get(key interface{}) interface{}
	Set(key interface{}, val interface{})
	Delete(key interface{})
	Save() error
}

type sessionLine struct {
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// SessionCart keeps cart state in the caller's session as a mapping from
// product id to quantity and the unit price snapshotted at add time.
type SessionCart struct {
	db       *gorm.DB
	session  SessionStore
	lines    map[string]sessionLine
	couponID uint
}

func NewSessionCart(db *gorm.DB, session SessionStore) *SessionCart {
	cart := &SessionCart{db: db, session: session, lines: map[string]sessionLine{}}
	if raw, ok := session.Get(sessionCartKey).(string); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &cart.lines); err != nil {
			cart.lines = map[string]sessionLine{}
		}
	}
	if id, ok := session.Get(sessionCouponKey).(uint); ok {
		cart.couponID = id
	}
	return cart
}

// save writes the cart back and persists the session.
func (s *SessionCart) save() error {
	raw, err := json.Marshal(s.lines)
	if err != nil {
		return err
	}
	s.session.Set(sessionCartKey, string(raw))
	return s.session.Save()
}

func (s *SessionCart) Add(productID uint, quantity int, updateQuantity bool) error {
	key := strconv.FormatUint(uint64(productID), 10)
	if _, ok := s.lines[key]; !ok {
		var product models.Product
		if err := s.db.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrProductNotExist
			}
			return err
		}
		s.lines[key] = sessionLine{Quantity: 0, Price: product.Price.StringFixed(2)}
	}
	line := s.lines[key]
	if updateQuantity {
		line.Quantity = quantity
	} else {
		line.Quantity += quantity
	}
	s.lines[key] = line
	return s.save()
}

func (s *SessionCart) SubtractQuantity(productID uint) error {
	key := strconv.FormatUint(uint64(productID), 10)
	if line, ok := s.lines[key]; ok {
		if line.Quantity == 1 {
			delete(s.lines, key)
		} else {
			line.Quantity--
			s.lines[key] = line
		}
	}
	return s.save()
}

func (s *SessionCart) Remove(productID uint) error {
	key := strconv.FormatUint(uint64(productID), 10)
	if _, ok := s.lines[key]; ok {
		delete(s.lines, key)
		return s.save()
	}
	return nil
}

func (s *SessionCart) Clear() error {
	s.lines = map[string]sessionLine{}
	s.session.Delete(sessionCartKey)
	return s.session.Save()
}

func (s *SessionCart) AddCoupon(coupon *models.Coupon) error {
	if len(s.lines) == 0 {
		return utils.ErrCouponOnEmptyCart
	}
	s.couponID = coupon.ID
	s.session.Set(sessionCouponKey, coupon.ID)
	return s.session.Save()
}

func (s *SessionCart) RemoveCoupon() error {
	s.couponID = 0
	s.session.Delete(sessionCouponKey)
	return s.session.Save()
}

func (s *SessionCart) GetCoupon() (*models.Coupon, error) {
	if s.couponID == 0 {
		return nil, nil
	}
	var coupon models.Coupon
	if err := s.db.First(&coupon, s.couponID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

func (s *SessionCart) CouponIsUsed() bool {
	return s.couponID != 0
}

func (s *SessionCart) TotalItems() (int, error) {
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count, nil
}

func (s *SessionCart) TotalPrice() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range s.lines {
		price, err := decimal.NewFromString(line.Price)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	coupon, err := s.GetCoupon()
	if err != nil {
		return decimal.Zero, err
	}
	if coupon != nil && coupon.IsValid(time.Now()) {
		total = ApplyDiscount(total, coupon.Discount)
	}
	return total, nil
}

func (s *SessionCart) Items() ([]CartLine, error) {
	ids := make([]uint, 0, len(s.lines))
	for key := range s.lines {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var products []models.Product
	if err := s.db.Preload("Images").Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}

	lines := make([]CartLine, 0, len(products))
	for _, product := range products {
		line := s.lines[strconv.FormatUint(uint64(product.ID), 10)]
		price, err := decimal.NewFromString(line.Price)
		if err != nil {
			return nil, err
		}
		qty := decimal.NewFromInt(int64(line.Quantity))
		lines = append(lines, CartLine{
			Product:    product,
			Quantity:   line.Quantity,
			Price:      price,
			TotalPrice: price.Mul(qty),
		})
	}
	return lines, nil
}

// MergeInto folds this session cart into a persistent cart, then empties the
// session. Used after login.
func (s *SessionCart) MergeInto(dst *DBCart) error {
	for key, line := range s.lines {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			continue
		}
		if line.Quantity <= 0 {
			continue
		}
		if err := dst.Add(uint(id), line.Quantity, false); err != nil {
			return err
		}
	}
	if err := s.Clear(); err != nil {
		return err
	}
	return s.RemoveCoupon()
}
