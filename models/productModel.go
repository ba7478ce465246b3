package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex;size:100" binding:"required"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:255"`
	Description string `json:"description"`
	ImageUrl    string `json:"imageUrl"`
}

type ProductAttributes struct {
	gorm.Model
	Brand     string `json:"brand" binding:"required"`
	Material  string `json:"material"`
	Style     string `json:"style"`
	Size      int    `json:"size"`
	ProductID uint   `json:"productId" gorm:"uniqueIndex" binding:"required"`
}

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID uint   `json:"productId" binding:"required"`
}

type Product struct {
	gorm.Model
	Name        string             `json:"name" gorm:"uniqueIndex;size:100" binding:"required"`
	Slug        string             `json:"slug" gorm:"uniqueIndex;size:255"`
	SKU         string             `json:"sku" gorm:"size:100"`
	Description string             `json:"description"`
	Price       decimal.Decimal    `json:"price" gorm:"type:decimal(10,2)" binding:"required"`
	Stock       int                `json:"stock"`
	Views       int                `json:"views"`
	CategoryID  *uint              `json:"categoryId"`
	Colors      datatypes.JSON     `json:"colors"`
	Attributes  *ProductAttributes `json:"attributes" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images      []ProductImage     `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
