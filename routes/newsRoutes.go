package routes

import (
	"github.com/ardena/ardena-api/controllers"
	"github.com/ardena/ardena-api/middlewares"
	"github.com/gin-gonic/gin"
)

func NewsRoutes(server *gin.Engine) {
	server.GET("/news", controllers.GetNews)
	server.GET("/news/:newsId", controllers.GetNewsById)

	admin := server.Group("/news", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreateNews)
		admin.PATCH("/:newsId", controllers.UpdateNews)
		admin.DELETE("/:newsId", controllers.DeleteNews)
	}
}
