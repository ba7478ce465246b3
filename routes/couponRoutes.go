package routes

import (
	"github.com/ardena/ardena-api/controllers"
	"github.com/ardena/ardena-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CouponRoutes(server *gin.Engine) {
	coupon := server.Group("/coupon", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		coupon.POST("", controllers.CreateCoupon)
		coupon.GET("", controllers.GetCoupons)
		coupon.GET("/:couponId", controllers.GetCoupon)
		coupon.PATCH("/:couponId", controllers.UpdateCoupon)
		coupon.DELETE("/:couponId", controllers.DeleteCoupon)
	}
}
