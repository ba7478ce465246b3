package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/ardena/ardena-api/initializers"
	"github.com/ardena/ardena-api/models"
	"github.com/gin-gonic/gin"
)

func CreateContactMessage(ctx *gin.Context) {
	var contact models.Contact
	if err := ctx.ShouldBindJSON(&contact); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := initializers.DB.Create(&contact).Error; err != nil {
		log.Println("Contact message error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save message")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Message received. We will get back to you soon."})
}

func GetContactMessages(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	offset := (page - 1) * limit

	var messages []models.Contact
	result := initializers.DB.Order("created_at desc").Limit(limit).Offset(offset).Find(&messages)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch messages")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"messages": messages})
}

func Subscribe(ctx *gin.Context) {
	var subscriber models.SubscribedUser
	if err := ctx.ShouldBindJSON(&subscriber); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var existing models.SubscribedUser
	if err := initializers.DB.Where("email = ?", subscriber.Email).First(&existing).Error; err == nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Already subscribed."})
		return
	}

	if err := initializers.DB.Create(&subscriber).Error; err != nil {
		log.Println("Subscription error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to subscribe")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Subscribed successfully."})
}
