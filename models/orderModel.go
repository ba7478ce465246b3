package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusCanceled = "canceled"
	PaymentStatusFailed   = "failed"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusInTransit  = "in_transit"
	OrderStatusDelivered  = "delivered"
	OrderStatusCanceled   = "canceled"
)

const (
	PaymentTypeCard   = "card"
	PaymentTypeCrypto = "crypto"
)

// Order is an immutable snapshot of a checkout attempt. CustomerID is
// nullable: guest checkout is allowed.
type Order struct {
	gorm.Model
	OrderNumber      string      `json:"orderNumber" gorm:"uniqueIndex;size:50"`
	CustomerID       *uint       `json:"customerId"`
	FirstName        string      `json:"firstName"`
	LastName         string      `json:"lastName"`
	Email            string      `json:"email"`
	Phone            string      `json:"phone"`
	ShippingAddress  string      `json:"shippingAddress"`
	ShippingCity     string      `json:"shippingCity"`
	ShippingPostcode string      `json:"shippingPostcode"`
	ShippingCountry  string      `json:"shippingCountry"`
	PaymentID        string      `json:"paymentId"`
	PaymentType      string      `json:"paymentType" gorm:"size:20;default:card"`
	PaymentStatus    string      `json:"paymentStatus" gorm:"size:50;default:pending"`
	OrderStatus      string      `json:"orderStatus" gorm:"size:50;default:pending"`
	CouponID         *uint       `json:"couponId"`
	Coupon           *Coupon     `json:"coupon" gorm:"constraint:OnDelete:SET NULL"`
	OrderItems       []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem freezes quantity and unit price at order-creation time.
type OrderItem struct {
	gorm.Model
	OrderID   uint            `json:"orderId"`
	ProductID uint            `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Quantity  int             `json:"quantity"`
}

func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
