package routes

import (
	"github.com/ardena/ardena-api/controllers"
	"github.com/ardena/ardena-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/checkout", controllers.Checkout)
	server.POST("/checkout/alternative", controllers.AlternativeCheckout)
	server.POST("/order", middlewares.RequireAuth(), controllers.PlaceOrder)
	server.GET("/order/mine", middlewares.RequireAuth(), controllers.GetMyOrders)
	server.GET("/order/:orderId", middlewares.RequireAuth(), controllers.GetOrderById)

	admin := server.Group("/", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/order", controllers.GetOrders)
		admin.GET("/order/undelivered", controllers.GetUndeliveredOrders)
		admin.PATCH("/order/:orderId", controllers.UpdateOrderStatus)
		admin.DELETE("/order/:orderId", controllers.DeleteOrder)
	}
}
