package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ardena/ardena-api/initializers"
	"github.com/ardena/ardena-api/models"
	"github.com/ardena/ardena-api/services"
	"github.com/ardena/ardena-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// cartResponse is the envelope every cart endpoint returns.
func cartResponse(cart *services.CartService) (gin.H, error) {
	lines, err := cart.Items()
	if err != nil {
		return nil, err
	}
	totalPrice, err := cart.TotalPrice()
	if err != nil {
		return nil, err
	}
	totalItems, err := cart.TotalItems()
	if err != nil {
		return nil, err
	}

	couponIsUsed := cart.CouponIsUsed()
	coupon, err := cart.GetCoupon()
	if err != nil {
		return nil, err
	}
	var couponData gin.H
	if coupon != nil {
		couponData = gin.H{"name": coupon.Code, "discount": coupon.Discount}
	} else {
		couponIsUsed = false
	}

	return gin.H{
		"products":       lines,
		"total_items":    totalItems,
		"subtotal_price": services.Subtotal(lines),
		"total_price":    totalPrice,
		"coupon_is_used": couponIsUsed,
		"coupon":         couponData,
		"sessionid":      cart.SessionID(),
	}, nil
}

func respondWithCart(ctx *gin.Context, cart *services.CartService) {
	response, err := cartResponse(cart)
	if err != nil {
		log.Println("Cart response error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to read cart")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, response)
}

func requestCart(ctx *gin.Context) (*services.CartService, bool) {
	cart, err := services.NewCartService(ctx, initializers.DB)
	if err != nil {
		log.Println("Cart init error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to load cart")
		return nil, false
	}
	return cart, true
}

func parseProductID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("productId"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return 0, false
	}
	return uint(id), true
}

func GetCartDetail(ctx *gin.Context) {
	cart, ok := requestCart(ctx)
	if !ok {
		return
	}
	respondWithCart(ctx, cart)
}

func AddCartItem(ctx *gin.Context) {
	productID, ok := parseProductID(ctx)
	if !ok {
		return
	}

	var body struct {
		Quantity       int  `json:"quantity"`
		UpdateQuantity bool `json:"update_quantity"`
	}
	body.Quantity = 1
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&body); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}
	}
	if body.Quantity < 1 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Quantity must be at least 1")
		return
	}

	cart, ok := requestCart(ctx)
	if !ok {
		return
	}
	if err := cart.Add(productID, body.Quantity, body.UpdateQuantity); err != nil {
		renderError(ctx, err)
		return
	}
	respondWithCart(ctx, cart)
}

func SubtractCartItem(ctx *gin.Context) {
	productID, ok := parseProductID(ctx)
	if !ok {
		return
	}
	cart, ok := requestCart(ctx)
	if !ok {
		return
	}
	if err := cart.SubtractQuantity(productID); err != nil {
		renderError(ctx, err)
		return
	}
	respondWithCart(ctx, cart)
}

func RemoveCartItem(ctx *gin.Context) {
	productID, ok := parseProductID(ctx)
	if !ok {
		return
	}
	cart, ok := requestCart(ctx)
	if !ok {
		return
	}
	if err := cart.Remove(productID); err != nil {
		renderError(ctx, err)
		return
	}
	respondWithCart(ctx, cart)
}

func ApplyCoupon(ctx *gin.Context) {
	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var coupon models.Coupon
	err := initializers.DB.Where("code = ? AND active = ?", body.Code, true).First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderError(ctx, utils.ErrCouponNotExist)
		} else {
			log.Println("Coupon lookup error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to look up coupon")
		}
		return
	}
	if !coupon.IsValid(time.Now()) {
		renderError(ctx, utils.ErrCouponExpired)
		return
	}

	cart, ok := requestCart(ctx)
	if !ok {
		return
	}
	if err := cart.AddCoupon(&coupon); err != nil {
		renderError(ctx, err)
		return
	}
	respondWithCart(ctx, cart)
}

func RemoveCoupon(ctx *gin.Context) {
	cart, ok := requestCart(ctx)
	if !ok {
		return
	}
	if err := cart.RemoveCoupon(); err != nil {
		renderError(ctx, err)
		return
	}
	respondWithCart(ctx, cart)
}
