package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Ardena API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- POST "/auth/logout" - Leave user account
- POST "/auth/verify-email/:activationToken" - Activate user account
- POST "/auth/forgot-password" - Request password reset
- POST "/auth/reset-password/:resetToken" - Reset user password

PRODUCT
- GET "/product" - Get all products
- GET "/product/:id" - Get product by ID
- GET "/category" - Get all categories
- POST "/product" - Create new product (admin)
- POST "/product-specs" - Add product specifications (admin)
- POST "/product-images" - Add product images (admin)
- POST "/category" - Create new category (admin)

CART
- GET "/cart" - Get cart contents
- POST "/cart/add/:productId" - Add product to cart
- POST "/cart/subtract/:productId" - Reduce product quantity
- DELETE "/cart/remove/:productId" - Remove product from cart
- POST "/cart/coupon/apply" - Apply a coupon code
- POST "/cart/coupon/remove" - Remove applied coupon

WISHLIST
- GET "/wishlist" - Get wishlist contents
- POST "/wishlist/:productId" - Add product to wishlist
- DELETE "/wishlist/:productId" - Remove product from wishlist

CHECKOUT & ORDER
- POST "/checkout" - Pay for the cart by card
- POST "/checkout/alternative" - Checkout with an alternative payment method
- POST "/order" - Place a stock-reserving order
- GET "/order/mine" - Get your orders
- GET "/order/:orderId" - Get order by ID
- GET "/order" - Retrieve all orders (admin)
- GET "/order/undelivered" - Count undelivered orders (admin)
- PATCH "/order/:orderId" - Update order status (admin)
- DELETE "/order/:orderId" - Delete order by ID (admin)

COUPON (admin)
- POST "/coupon" - Create coupon
- GET "/coupon" - Get all coupons
- GET "/coupon/:couponId" - Get coupon by ID
- PATCH "/coupon/:couponId" - Update coupon
- DELETE "/coupon/:couponId" - Delete coupon

NEWS
- GET "/news" - Get news articles
- GET "/news/:newsId" - Get news article by ID
- POST "/news" - Create news article (admin)
- PATCH "/news/:newsId" - Update news article (admin)
- DELETE "/news/:newsId" - Delete news article (admin)

CONTACT
- POST "/contact" - Send us a message
- GET "/contact" - Read received messages (admin)
- POST "/subscribe" - Subscribe to our newsletter`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
