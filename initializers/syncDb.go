package initializers

import (
	"log"

	"github.com/ardena/ardena-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.PasswordReset{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductAttributes{},
		&models.Coupon{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.News{},
		&models.Contact{},
		&models.SubscribedUser{},
	)
	log.Println("Database synced successfully.")
}
