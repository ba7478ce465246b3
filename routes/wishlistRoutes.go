package routes

import (
	"github.com/ardena/ardena-api/controllers"
	"github.com/gin-gonic/gin"
)

func WishlistRoutes(server *gin.Engine) {
	wishlist := server.Group("/wishlist")
	{
		wishlist.GET("", controllers.GetWishlist)
		wishlist.POST("/:productId", controllers.AddToWishlist)
		wishlist.DELETE("/:productId", controllers.RemoveFromWishlist)
	}
}
