package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Coupon struct {
	gorm.Model
	Code      string    `json:"code" gorm:"uniqueIndex;size:50" binding:"required"`
	Discount  int       `json:"discount" binding:"required,min=1,max=100"`
	Active    bool      `json:"active" gorm:"default:true"`
	ValidFrom time.Time `json:"validFrom" gorm:"autoCreateTime"`
	ValidTo   time.Time `json:"validTo" binding:"required"`
}

// IsValid reports whether the coupon can still be applied to a cart.
func (c *Coupon) IsValid(now time.Time) bool {
	if !c.Active {
		return false
	}
	if !c.ValidFrom.IsZero() && now.Before(c.ValidFrom) {
		return false
	}
	return !now.After(c.ValidTo)
}

// Cart belongs to exactly one user or one anonymous session key.
type Cart struct {
	gorm.Model
	UserID     *uint      `json:"userId" gorm:"uniqueIndex"`
	SessionKey *string    `json:"sessionKey" gorm:"uniqueIndex;size:40"`
	CouponID   *uint      `json:"couponId"`
	Coupon     *Coupon    `json:"coupon" gorm:"constraint:OnDelete:SET NULL"`
	Items      []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

type CartItem struct {
	gorm.Model
	CartID    uint            `json:"cartId" gorm:"uniqueIndex:idx_cart_product"`
	ProductID uint            `json:"productId" gorm:"uniqueIndex:idx_cart_product"`
	Product   Product         `json:"product"`
	Quantity  int             `json:"quantity" gorm:"default:1"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
}

func (i *CartItem) TotalPrice() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
