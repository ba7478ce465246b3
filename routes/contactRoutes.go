package routes

import (
	"github.com/ardena/ardena-api/controllers"
	"github.com/ardena/ardena-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ContactRoutes(server *gin.Engine) {
	server.POST("/contact", controllers.CreateContactMessage)
	server.GET("/contact", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.GetContactMessages)
	server.POST("/subscribe", controllers.Subscribe)
}
