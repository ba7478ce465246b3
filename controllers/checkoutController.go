package controllers

import (
	"net/http"

	"github.com/ardena/ardena-api/initializers"
	"github.com/ardena/ardena-api/middlewares"
	"github.com/ardena/ardena-api/models"
	"github.com/ardena/ardena-api/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type checkoutBody struct {
	FirstName        string                    `json:"first_name" binding:"required"`
	LastName         string                    `json:"last_name" binding:"required"`
	Email            string                    `json:"email" binding:"required,email"`
	Phone            string                    `json:"phone" binding:"required"`
	ShippingAddress  string                    `json:"shipping_address" binding:"required"`
	ShippingCity     string                    `json:"shipping_city" binding:"required"`
	ShippingPostcode string                    `json:"shipping_postcode" binding:"required"`
	ShippingCountry  string                    `json:"shipping_country" binding:"required"`
	PaymentType      string                    `json:"payment_type"`
	CardInformation  *services.CardInformation `json:"card_information"`
}

func (b *checkoutBody) toInfo(ctx *gin.Context) services.CheckoutInfo {
	info := services.CheckoutInfo{
		FirstName:        b.FirstName,
		LastName:         b.LastName,
		Email:            b.Email,
		Phone:            b.Phone,
		ShippingAddress:  b.ShippingAddress,
		ShippingCity:     b.ShippingCity,
		ShippingPostcode: b.ShippingPostcode,
		ShippingCountry:  b.ShippingCountry,
		PaymentType:      b.PaymentType,
	}
	if userID, ok := middlewares.CurrentUserID(ctx); ok {
		info.CustomerID = &userID
	}
	return info
}

func newCheckoutService(ctx *gin.Context) (*services.CheckoutService, bool) {
	cart, ok := requestCart(ctx)
	if !ok {
		return nil, false
	}
	return &services.CheckoutService{
		DB:      initializers.DB,
		Cart:    cart,
		Charger: services.NewStripeCharger(),
	}, true
}

// Checkout handles card checkout: order creation, charge and compensation.
func Checkout(ctx *gin.Context) {
	var body checkoutBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	body.PaymentType = models.PaymentTypeCard

	checkout, ok := newCheckoutService(ctx)
	if !ok {
		return
	}
	order, paymentID, err := checkout.Checkout(body.toInfo(ctx), body.CardInformation)
	if err != nil {
		renderError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"order":      order,
		"payment_id": paymentID,
		"message":    "Order created and payment successful",
		"sessionid":  sessions.Default(ctx).ID(),
	})
}

// AlternativeCheckout creates a pending order for non-card payment methods.
func AlternativeCheckout(ctx *gin.Context) {
	var body checkoutBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if body.PaymentType == "" || body.PaymentType == models.PaymentTypeCard {
		body.PaymentType = models.PaymentTypeCrypto
	}

	checkout, ok := newCheckoutService(ctx)
	if !ok {
		return
	}
	order, _, err := checkout.Checkout(body.toInfo(ctx), nil)
	if err != nil {
		renderError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"order":     order,
		"message":   "Order created",
		"sessionid": sessions.Default(ctx).ID(),
	})
}

// PlaceOrder is the stock-aware checkout for authenticated shoppers.
func PlaceOrder(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	order, err := services.PlaceOrder(initializers.DB, userID)
	if err != nil {
		renderError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order placed",
		"orderId": order.ID,
	})
}
