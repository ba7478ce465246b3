package services

import (
	"encoding/json"

	"github.com/ardena/ardena-api/models"
	"gorm.io/gorm"
)

const sessionWishlistKey = "wishlist"

// WishlistService keeps a session-scoped list of product ids.
type WishlistService struct {
	db      *gorm.DB
	session SessionStore
	ids     []uint
}

func NewWishlistService(db *gorm.DB, session SessionStore) *WishlistService {
	w := &WishlistService{db: db, session: session}
	if raw, ok := session.Get(sessionWishlistKey).(string); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &w.ids); err != nil {
			w.ids = nil
		}
	}
	return w
}

func (w *WishlistService) save() error {
	raw, err := json.Marshal(w.ids)
	if err != nil {
		return err
	}
	w.session.Set(sessionWishlistKey, string(raw))
	return w.session.Save()
}

func (w *WishlistService) Add(productID uint) error {
	for _, id := range w.ids {
		if id == productID {
			return nil
		}
	}
	w.ids = append(w.ids, productID)
	return w.save()
}

func (w *WishlistService) Remove(productID uint) error {
	for i, id := range w.ids {
		if id == productID {
			w.ids = append(w.ids[:i], w.ids[i+1:]...)
			return w.save()
		}
	}
	return nil
}

func (w *WishlistService) Clear() error {
	w.ids = nil
	return w.save()
}

func (w *WishlistService) Products() ([]models.Product, error) {
	if len(w.ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	err := w.db.Preload("Images").Where("id IN ?", w.ids).Find(&products).Error
	return products, err
}
