package services

import (
	"log"

	"github.com/ardena/ardena-api/models"
	"github.com/ardena/ardena-api/utils"
	"gorm.io/gorm"
)

// CheckoutInfo is the shipping/contact snapshot captured on the order.
type CheckoutInfo struct {
	CustomerID       *uint
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	ShippingAddress  string
	ShippingCity     string
	ShippingPostcode string
	ShippingCountry  string
	PaymentType      string
}

// CheckoutService converts a priced cart into a persisted order, invoking the
// payment provider for card checkouts and compensating on failure.
type CheckoutService struct {
	DB      *gorm.DB
	Cart    *CartService
	Charger Charger
}

// Checkout runs the checkout state machine. On a card-payment failure the
// order row is deleted and the cart is left untouched.
func (s *CheckoutService) Checkout(info CheckoutInfo, card *CardInformation) (*models.Order, string, error) {
	count, err := s.Cart.TotalItems()
	if err != nil {
		return nil, "", err
	}
	if count == 0 {
		return nil, "", utils.ErrCartEmpty
	}

	if info.PaymentType == models.PaymentTypeCard {
		if card == nil {
			return nil, "", utils.NewAPIError(400, "invalid_card", "Card information is required")
		}
		if err := card.Validate(); err != nil {
			return nil, "", err
		}
	}

	lines, err := s.Cart.Items()
	if err != nil {
		return nil, "", err
	}
	total, err := s.Cart.TotalPrice()
	if err != nil {
		return nil, "", err
	}
	coupon, err := s.Cart.GetCoupon()
	if err != nil {
		return nil, "", err
	}

	order := models.Order{
		OrderNumber:      utils.GenerateOrderNumber(),
		CustomerID:       info.CustomerID,
		FirstName:        info.FirstName,
		LastName:         info.LastName,
		Email:            info.Email,
		Phone:            info.Phone,
		ShippingAddress:  info.ShippingAddress,
		ShippingCity:     info.ShippingCity,
		ShippingPostcode: info.ShippingPostcode,
		ShippingCountry:  info.ShippingCountry,
		PaymentType:      info.PaymentType,
		PaymentStatus:    models.PaymentStatusPending,
		OrderStatus:      models.OrderStatusPending,
	}
	if coupon != nil {
		order.CouponID = &coupon.ID
	}

	// Order and items are created in one transaction so a partial failure
	// leaves no orphaned order.
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, line := range lines {
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: line.Product.ID,
				Name:      line.Product.Name,
				Price:     line.Price,
				Quantity:  line.Quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	if info.PaymentType != models.PaymentTypeCard {
		if err := s.Cart.Clear(); err != nil {
			return nil, "", err
		}
		return &order, "", nil
	}

	paymentID, err := s.Charger.Charge(*card, MinorUnits(total), "usd")
	if err != nil {
		// Compensate: drop the unpaid order, keep the cart.
		if dbErr := s.DB.Model(&order).Update("payment_status", models.PaymentStatusFailed).Error; dbErr != nil {
			log.Println("Error marking order failed after payment failure:", dbErr)
		}
		if dbErr := s.DB.Select("OrderItems").Delete(&order).Error; dbErr != nil {
			log.Println("Error deleting order after payment failure:", dbErr)
		}
		return nil, "", err
	}

	err = s.DB.Model(&order).Updates(map[string]any{
		"payment_status": models.PaymentStatusPaid,
		"payment_id":     paymentID,
	}).Error
	if err != nil {
		return nil, "", err
	}
	order.PaymentStatus = models.PaymentStatusPaid
	order.PaymentID = paymentID

	if err := s.Cart.Clear(); err != nil {
		return nil, "", err
	}
	return &order, paymentID, nil
}

// PlaceOrder is the stock-aware checkout used by the simpler orders flow:
// every line's stock is re-checked inside the transaction, any shortfall
// aborts the whole order, and on success stock is decremented per line and
// the cart is emptied.
func PlaceOrder(db *gorm.DB, userID uint) (*models.Order, error) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).Preload("Items").First(&cart).Error; err != nil {
		return nil, utils.ErrCartEmpty
	}
	if len(cart.Items) == 0 {
		return nil, utils.ErrCartEmpty
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	order := models.Order{
		OrderNumber:   utils.GenerateOrderNumber(),
		CustomerID:    &userID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		Phone:         user.Phone,
		PaymentStatus: models.PaymentStatusPending,
		OrderStatus:   models.OrderStatusPending,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, cartItem := range cart.Items {
			var product models.Product
			if err := tx.First(&product, cartItem.ProductID).Error; err != nil {
				return utils.ErrProductNotExist
			}
			if product.Stock < cartItem.Quantity {
				return utils.InsufficientStock(product.Name)
			}
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  cartItem.Quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", product.ID, cartItem.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", cartItem.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return utils.InsufficientStock(product.Name)
			}
		}
		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
