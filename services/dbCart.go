package services

import (
	"errors"
	"time"

	"github.com/ardena/ardena-api/models"
	"github.com/ardena/ardena-api/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DBCart keeps cart state in Cart/CartItem rows looked up or created for the
// requesting user. Unit prices are snapshotted into the row when the line is
// first created, matching how order items freeze prices at checkout.
type DBCart struct {
	db   *gorm.DB
	cart models.Cart
}

func NewDBCart(db *gorm.DB, userID uint) (*DBCart, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: &userID}
		err = db.Create(&cart).Error
	}
	if err != nil {
		return nil, err
	}
	return &DBCart{db: db, cart: cart}, nil
}

func (c *DBCart) Cart() *models.Cart { return &c.cart }

func (c *DBCart) Add(productID uint, quantity int, updateQuantity bool) error {
	var product models.Product
	if err := c.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrProductNotExist
		}
		return err
	}

	var item models.CartItem
	err := c.db.Where("cart_id = ? AND product_id = ?", c.cart.ID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = models.CartItem{
			CartID:    c.cart.ID,
			ProductID: productID,
			Quantity:  0,
			Price:     product.Price,
		}
		if err := c.db.Create(&item).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	if updateQuantity {
		item.Quantity = quantity
	} else {
		item.Quantity += quantity
	}
	return c.db.Save(&item).Error
}

func (c *DBCart) SubtractQuantity(productID uint) error {
	var item models.CartItem
	err := c.db.Where("cart_id = ? AND product_id = ?", c.cart.ID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	item.Quantity--
	if item.Quantity <= 0 {
		return c.db.Delete(&item).Error
	}
	return c.db.Save(&item).Error
}

func (c *DBCart) Remove(productID uint) error {
	return c.db.Where("cart_id = ? AND product_id = ?", c.cart.ID, productID).
		Delete(&models.CartItem{}).Error
}

func (c *DBCart) Clear() error {
	return c.db.Where("cart_id = ?", c.cart.ID).Delete(&models.CartItem{}).Error
}

func (c *DBCart) AddCoupon(coupon *models.Coupon) error {
	count, err := c.TotalItems()
	if err != nil {
		return err
	}
	if count == 0 {
		return utils.ErrCouponOnEmptyCart
	}
	c.cart.CouponID = &coupon.ID
	return c.db.Model(&c.cart).Update("coupon_id", coupon.ID).Error
}

func (c *DBCart) RemoveCoupon() error {
	c.cart.CouponID = nil
	return c.db.Model(&c.cart).Update("coupon_id", nil).Error
}

func (c *DBCart) GetCoupon() (*models.Coupon, error) {
	if c.cart.CouponID == nil {
		return nil, nil
	}
	var coupon models.Coupon
	if err := c.db.First(&coupon, *c.cart.CouponID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

func (c *DBCart) CouponIsUsed() bool {
	return c.cart.CouponID != nil
}

func (c *DBCart) TotalItems() (int, error) {
	var items []models.CartItem
	if err := c.db.Where("cart_id = ?", c.cart.ID).Find(&items).Error; err != nil {
		return 0, err
	}
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count, nil
}

func (c *DBCart) TotalPrice() (decimal.Decimal, error) {
	var items []models.CartItem
	if err := c.db.Where("cart_id = ?", c.cart.ID).Find(&items).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice())
	}
	coupon, err := c.GetCoupon()
	if err != nil {
		return decimal.Zero, err
	}
	if coupon != nil && coupon.IsValid(time.Now()) {
		total = ApplyDiscount(total, coupon.Discount)
	}
	return total, nil
}

func (c *DBCart) Items() ([]CartLine, error) {
	var items []models.CartItem
	err := c.db.Where("cart_id = ?", c.cart.ID).
		Preload("Product").Preload("Product.Images").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartLine{
			Product:    item.Product,
			Quantity:   item.Quantity,
			Price:      item.Price,
			TotalPrice: item.TotalPrice(),
		})
	}
	return lines, nil
}
