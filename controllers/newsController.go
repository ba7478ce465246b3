package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/ardena/ardena-api/initializers"
	"github.com/ardena/ardena-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Each non-default news type is a single slot: assigning a taken type demotes
// the previous holder to default.
func demotePreviousNewsType(tx *gorm.DB, newsType string, excludeID uint) error {
	if newsType == "" || newsType == models.NewsTypeDefault {
		return nil
	}
	return tx.Model(&models.News{}).
		Where("type = ? AND id != ?", newsType, excludeID).
		Update("type", models.NewsTypeDefault).Error
}

func CreateNews(ctx *gin.Context) {
	var news models.News
	if err := ctx.ShouldBindJSON(&news); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if news.Type == "" {
		news.Type = models.NewsTypeDefault
	}
	if !models.IsNewsType(news.Type) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown news type")
		return
	}

	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&news).Error; err != nil {
			return err
		}
		return demotePreviousNewsType(tx, news.Type, news.ID)
	})
	if err != nil {
		log.Println("News creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create news")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"news": news})
}

func GetNews(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	offset := (page - 1) * limit

	query := initializers.DB.Order("created_at desc")
	if newsType := ctx.Query("type"); newsType != "" {
		query = query.Where("type = ?", newsType)
	}

	var news []models.News
	if err := query.Limit(limit).Offset(offset).Find(&news).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch news")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"news": news})
}

func GetNewsById(ctx *gin.Context) {
	newsId, err := strconv.Atoi(ctx.Param("newsId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid news ID")
		return
	}

	var news models.News
	if err := initializers.DB.First(&news, newsId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "News not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch news")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"news": news})
}

func UpdateNews(ctx *gin.Context) {
	newsId, err := strconv.Atoi(ctx.Param("newsId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid news ID")
		return
	}

	var news models.News
	if err := initializers.DB.First(&news, newsId).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "News not found")
		return
	}

	var body struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
		Type    *string `json:"type"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if body.Title != nil {
		news.Title = *body.Title
	}
	if body.Content != nil {
		news.Content = *body.Content
	}
	if body.Type != nil {
		if !models.IsNewsType(*body.Type) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Unknown news type")
			return
		}
		news.Type = *body.Type
	}

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&news).Error; err != nil {
			return err
		}
		return demotePreviousNewsType(tx, news.Type, news.ID)
	})
	if err != nil {
		log.Println("News update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update news")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"news": news})
}

func DeleteNews(ctx *gin.Context) {
	newsId, err := strconv.Atoi(ctx.Param("newsId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid news ID")
		return
	}

	if result := initializers.DB.Delete(&models.News{}, newsId); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to delete news")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "News deleted successfully."})
}
