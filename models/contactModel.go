package models

import "gorm.io/gorm"

type Contact struct {
	gorm.Model
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type SubscribedUser struct {
	gorm.Model
	Email string `json:"email" gorm:"uniqueIndex;size:50" binding:"required,email"`
}
