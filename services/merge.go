package services

import (
	"encoding/json"
	"errors"

	"github.com/ardena/ardena-api/models"
	"gorm.io/gorm"
)

// MergeSessionCart reconciles a session-keyed cart into the user's persistent
// cart after login: quantities are summed for matching products, other lines
// are copied, and the session cart is deleted. No-op when there is no session
// key or no session cart.
func MergeSessionCart(db *gorm.DB, userID uint, sessionKey string) error {
	if sessionKey == "" {
		return nil
	}

	var sessionCart models.Cart
	err := db.Where("session_key = ?", sessionKey).Preload("Items").First(&sessionCart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if sessionCart.UserID != nil && *sessionCart.UserID == userID {
		return nil
	}

	userCart, err := NewDBCart(db, userID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, item := range sessionCart.Items {
			var existing models.CartItem
			err := tx.Where("cart_id = ? AND product_id = ?", userCart.cart.ID, item.ProductID).
				First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				line := models.CartItem{
					CartID:    userCart.cart.ID,
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					Price:     item.Price,
				}
				if err := tx.Create(&line).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			existing.Quantity += item.Quantity
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("cart_id = ?", sessionCart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&sessionCart).Error
	})
}

// SnapshotCart stores the user's cart lines into User.SavedCart at logout.
// Best-effort: failures are reported but nothing depends on the snapshot.
func SnapshotCart(db *gorm.DB, userID uint) error {
	cart, err := NewDBCart(db, userID)
	if err != nil {
		return err
	}
	lines, err := cart.Items()
	if err != nil {
		return err
	}

	type savedLine struct {
		ProductID uint   `json:"productId"`
		Quantity  int    `json:"quantity"`
		Price     string `json:"price"`
	}
	saved := make([]savedLine, 0, len(lines))
	for _, line := range lines {
		saved = append(saved, savedLine{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			Price:     line.Price.StringFixed(2),
		})
	}
	raw, err := json.Marshal(saved)
	if err != nil {
		return err
	}
	return db.Model(&models.User{}).Where("id = ?", userID).
		Update("saved_cart", raw).Error
}
