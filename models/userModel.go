package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email                  string `json:"email" gorm:"uniqueIndex;size:255" binding:"required,email"`
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	Phone                  string `json:"phone"`
	Password               string `json:"password"`
	Role                   string `json:"role"`
	AccountActivated       bool   `json:"accountActivated"`
	AccountActivationToken string `json:"-"`
	// SavedCart holds a best-effort snapshot of the cart taken at logout.
	SavedCart datatypes.JSON `json:"savedCart"`
}

type PasswordReset struct {
	Token     string    `json:"token" gorm:"uniqueIndex;size:100"`
	UserID    uint      `json:"userId" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
