package routes

import (
	"github.com/ardena/ardena-api/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart")
	{
		cart.GET("", controllers.GetCartDetail)
		cart.POST("/add/:productId", controllers.AddCartItem)
		cart.POST("/subtract/:productId", controllers.SubtractCartItem)
		cart.DELETE("/remove/:productId", controllers.RemoveCartItem)
		cart.POST("/coupon/apply", controllers.ApplyCoupon)
		cart.POST("/coupon/remove", controllers.RemoveCoupon)
	}
}
