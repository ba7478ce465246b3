package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/ardena/ardena-api/initializers"
	"github.com/ardena/ardena-api/models"
	"github.com/ardena/ardena-api/services"
	"github.com/ardena/ardena-api/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func wishlist(ctx *gin.Context) *services.WishlistService {
	return services.NewWishlistService(initializers.DB, sessions.Default(ctx))
}

func findProduct(ctx *gin.Context) (*models.Product, bool) {
	productID, ok := parseProductID(ctx)
	if !ok {
		return nil, false
	}
	var product models.Product
	if err := initializers.DB.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderError(ctx, utils.ErrProductNotExist)
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch product")
		}
		return nil, false
	}
	return &product, true
}

func GetWishlist(ctx *gin.Context) {
	products, err := wishlist(ctx).Products()
	if err != nil {
		log.Println("Wishlist error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch wishlist")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products})
}

func AddToWishlist(ctx *gin.Context) {
	product, ok := findProduct(ctx)
	if !ok {
		return
	}
	if err := wishlist(ctx).Add(product.ID); err != nil {
		log.Println("Wishlist error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update wishlist")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": product.Name + " added to wishlist"})
}

func RemoveFromWishlist(ctx *gin.Context) {
	product, ok := findProduct(ctx)
	if !ok {
		return
	}
	if err := wishlist(ctx).Remove(product.ID); err != nil {
		log.Println("Wishlist error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update wishlist")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": product.Name + " removed from wishlist"})
}
